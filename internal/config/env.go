// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads [StructuredConfig] from the process environment. Variable
// names come from the `env` and `envPrefix` tags, e.g. APP_OVERDUE_THRESHOLD
// or STORAGE_REDIS_URL. Unset variables leave zero values, which the merge
// step skips.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
