package main

import (
	"fmt"

	"github.com/marchocode/clash-merger/internal/adapter"
	"github.com/marchocode/clash-merger/internal/config"
	"github.com/marchocode/clash-merger/internal/handler"
	"github.com/marchocode/clash-merger/internal/logger"
	"github.com/marchocode/clash-merger/internal/server"
	"github.com/marchocode/clash-merger/internal/service"
	"github.com/marchocode/clash-merger/models"
)

const role = "clash-merger"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Debug().
		Str("http_address", cfg.Server.HTTPAddress).
		Str("override_path", cfg.Subscription.OverridePath).
		Str("user_agent", cfg.Subscription.UserAgent).
		Dur("request_timeout", cfg.Subscription.RequestTimeout).
		Bool("subscription_url_set", cfg.Subscription.URL != "").
		Bool("token_set", cfg.Auth.Token != "").
		Msg("received configs")

	subscriptionAdapter := adapter.NewHTTPSubscriptionAdapter(cfg.Subscription, log)
	services := service.NewServices(subscriptionAdapter, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
