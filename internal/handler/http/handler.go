package http

import (
	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/service"
)

type Handler struct {
	services *service.Services
	token    string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	if cfg.Token == "" {
		logger.Warn().Msg("TOKEN is not set, every subscription request will be rejected")
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		token:    cfg.Token,
		logger:   logger,
	}
}
