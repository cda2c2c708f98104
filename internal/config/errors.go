package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidSubscriptionConfigs indicates an empty override path or a
	// negative fetch timeout.
	ErrInvalidSubscriptionConfigs = errors.New("invalid subscription configuration")
)
