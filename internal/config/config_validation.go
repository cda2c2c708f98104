// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] before it is used at
// startup.
//
// Token and subscription URL may be empty: an empty token makes every
// request unauthorized and an empty URL is reported per request with
// HTTP 500.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Subscription.OverridePath == "" || cfg.Subscription.RequestTimeout < 0 {
		return ErrInvalidSubscriptionConfigs
	}

	return nil
}
