// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Default values applied to fields left empty by every other source.
const (
	DefaultHTTPAddress    = "0.0.0.0:8080"
	DefaultUserAgent      = "clash/v1.7.5"
	DefaultOverridePath   = "custom.yaml"
	DefaultRequestTimeout = 30 * time.Second
	DefaultLogLevel       = "info"
)

// StructuredConfig is the top-level configuration container for the
// clash-merger service. It is built once at startup from environment
// variables, command-line flags, an optional JSON file and defaults, and is
// then passed explicitly to every component that needs it.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log level.
	App App `envPrefix:"APP_"`

	// Auth holds the static token guarding the subscription endpoint.
	Auth Auth

	// Subscription describes where the upstream document lives, how it is
	// fetched and which local override file is merged into it.
	Subscription Subscription

	// Server holds the listen address of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Auth holds the static path token.
type Auth struct {
	// Token is compared byte-for-byte with the {token} path segment of
	// GET /sub/{token}. When empty every request is rejected.
	// Env: TOKEN
	Token string `env:"TOKEN"`
}

// Subscription holds the upstream fetch and override settings.
type Subscription struct {
	// URL is the remote subscription address. When empty the endpoint
	// answers 500 without contacting anything.
	// Env: SUBSCRIPTION_URL
	URL string `env:"SUBSCRIPTION_URL"`

	// UserAgent is sent with every fetch so upstream providers serve the
	// Clash-flavoured document.
	// Env: SUBSCRIPTION_USER_AGENT
	UserAgent string `env:"SUBSCRIPTION_USER_AGENT"`

	// RequestTimeout bounds a single upstream fetch (e.g. "30s").
	// Env: SUBSCRIPTION_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SUBSCRIPTION_REQUEST_TIMEOUT"`

	// OverridePath is the local YAML file merged into every fetched
	// document.
	// Env: OVERRIDE_PATH
	OverridePath string `env:"OVERRIDE_PATH"`
}

// Server holds network settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// GetStructuredConfig loads, merges, and validates the service
// configuration. Sources are consulted in the following priority order
// (the first source holding a non-zero value for a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{LogLevel: DefaultLogLevel},
		Subscription: Subscription{
			UserAgent:      DefaultUserAgent,
			RequestTimeout: DefaultRequestTimeout,
			OverridePath:   DefaultOverridePath,
		},
		Server: Server{HTTPAddress: DefaultHTTPAddress},
	}
}
