// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and duration are required", ErrInvalidAppConfigs)
	}

	// an empty metrics path disables the endpoint
	if path := cfg.Server.MetricsPath; path != "" && (!strings.HasPrefix(path, "/") || path == "/") {
		return fmt.Errorf("%w: metrics path %q must be an absolute non-root path", ErrInvalidServerConfigs, path)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	return nil
}
