// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock
package service

import (
	"context"
	"io"

	"github.com/marchocode/clash-merger/models"
)

// ConverterService turns a remote subscription into the merged document
// served to clients.
type ConverterService interface {
	// Fetch downloads the subscription at rawURL, parses it and applies the
	// subscription rewrites: "rules" is dropped and "proxy-groups" is cut
	// down to its first group, renamed to PROXY.
	Fetch(ctx context.Context, rawURL string) (*models.Document, error)
	// Merge applies the override file at overridePath on top of doc and
	// returns doc.
	Merge(doc *models.Document, overridePath string) (*models.Document, error)
	// Serialize writes doc as YAML to w.
	Serialize(doc *models.Document, w io.Writer) error
	// Convert runs Fetch, Merge and Serialize with the configured
	// subscription URL and override path.
	Convert(ctx context.Context, w io.Writer) error
}

type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
