// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.OverdueThreshold <= 0 {
		return fmt.Errorf("%w: overdue threshold must be positive", ErrInvalidAppConfigs)
	}

	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverMemory:
		return nil
	case DriverFile:
		if s.Files.StatePath == "" {
			return fmt.Errorf("%w: file driver needs a state path", ErrInvalidStorageConfigs)
		}
	case DriverRedis:
		if s.Redis.URL == "" {
			return fmt.Errorf("%w: redis driver needs a URL", ErrInvalidStorageConfigs)
		}
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.SessionPath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.RefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
