package service

import (
	"context"
	"testing"

	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_ReturnsAppInfoServiceInterface(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	require.NotNil(t, svc)
	var _ AppInfoService = svc
}

// ─────────────────────────────────────────────
// GetBuildInfo
// ─────────────────────────────────────────────

func TestGetBuildInfo_ReturnsConfiguredInfo(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-01-02", "abc123")
	svc := NewAppInfoService(info, logger.Nop())

	assert.Equal(t, info, svc.GetBuildInfo(context.Background()))
}

func TestGetBuildInfo_EmptyFieldsAreNotAvailable(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("", "", ""), logger.Nop())

	got := svc.GetBuildInfo(context.Background())

	assert.Equal(t, "N/A", got.Version)
	assert.Equal(t, "N/A", got.Date)
	assert.Equal(t, "N/A", got.Commit)
}

func TestGetBuildInfo_DifferentInstances_Independent(t *testing.T) {
	svc1 := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())
	svc2 := NewAppInfoService(models.NewAppBuildInfo("2.0.0", "", ""), logger.Nop())

	assert.Equal(t, "1.0.0", svc1.GetBuildInfo(context.Background()).Version)
	assert.Equal(t, "2.0.0", svc2.GetBuildInfo(context.Background()).Version)
}

func TestGetBuildInfo_CancelledContext_StillReturnsInfo(t *testing.T) {
	svc := NewAppInfoService(models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetBuildInfo(ctx).Version)
}
