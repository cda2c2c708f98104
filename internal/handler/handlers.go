package handler

import (
	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/handler/http"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Auth, logger),
	}, nil
}
