// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound transport used to download
// subscription documents from their providers.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without depending on the
// HTTP client library.
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/subscription_adapter_mock.go -package=mock

// SubscriptionAdapter downloads the raw subscription document.
type SubscriptionAdapter interface {
	// FetchSubscription performs a single GET of rawURL and returns the
	// response body. Transport failures and non-2xx statuses are returned
	// as errors; nothing is retried.
	FetchSubscription(ctx context.Context, rawURL string) ([]byte, error)
}
