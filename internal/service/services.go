package service

import (
	"github.com/marchocode/clash-merger/internal/adapter"
	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/models"
)

type Services struct {
	ConverterService ConverterService
	AppInfoService   AppInfoService
}

func NewServices(subscriptionAdapter adapter.SubscriptionAdapter, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	converter := NewConverterService(subscriptionAdapter, cfg.Subscription, logger)

	return &Services{
		ConverterService: NewConverterLoggingService(logger).Wrap(converter),
		AppInfoService:   NewAppInfoService(buildInfo, logger),
	}
}
