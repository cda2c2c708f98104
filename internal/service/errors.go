// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrFetch is returned when the subscription could not be downloaded:
	// transport failure, timeout or a non-2xx status.
	ErrFetch = errors.New("fetch error")
	// ErrParse is returned when the subscription or the override file is not
	// valid YAML or its top level is not a mapping.
	ErrParse = errors.New("parse error")
	// ErrIO is returned when the override file cannot be read or the result
	// cannot be written.
	ErrIO = errors.New("io error")

	ErrSubscriptionURLNotSet = errors.New("SUBSCRIPTION_URL environment variable is not set")
)
