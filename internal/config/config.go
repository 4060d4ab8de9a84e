// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-key-keeper server. It aggregates all sub-configurations and is
// populated by merging defaults, an optional .env file, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the overdue threshold and the office name used in reminders.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the persistence backend for the
	// office state.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the server address and timeout used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds intervals of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OverdueThreshold is how long a key may stay checked out before it is
	// reported as overdue. A checkout is overdue only when strictly older.
	// Env: APP_OVERDUE_THRESHOLD
	OverdueThreshold time.Duration `env:"OVERDUE_THRESHOLD"`

	// OfficeName is the sender name written into return reminders.
	// Env: APP_OFFICE_NAME
	OfficeName string `env:"OFFICE_NAME"`

	// SeedDemoKeys adds the demo key set when the storage is empty.
	// Default accounts are always seeded into an empty storage.
	// Env: APP_SEED_DEMO_KEYS
	SeedDemoKeys bool `env:"SEED_DEMO_KEYS"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// Driver selects the backend: file, memory, redis, sqlite or postgres.
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings.
	Files Files `envPrefix:"FILES_"`

	// Redis holds the redis connection settings.
	Redis Redis `envPrefix:"REDIS_"`
}

// Supported values of [Storage.Driver].
const (
	DriverFile     = "file"
	DriverMemory   = "memory"
	DriverRedis    = "redis"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server.
	// An empty value disables it.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the connection string: a PostgreSQL URI for the postgres
	// driver or a file path for the sqlite driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings.
type Files struct {
	// StatePath is the JSON document used by the file driver.
	// Env: STORAGE_FILES_STATE_PATH
	StatePath string `env:"STATE_PATH"`

	// SessionPath is where the client keeps its current session.
	// Env: STORAGE_FILES_SESSION_PATH
	SessionPath string `env:"SESSION_PATH"`
}

// Redis holds settings of the redis key-value backend.
type Redis struct {
	// URL in redis://[user:pass@]host:port/db form.
	// Env: STORAGE_REDIS_URL
	URL string `env:"URL"`

	// KeyPrefix namespaces the stored records.
	// Env: STORAGE_REDIS_KEY_PREFIX
	KeyPrefix string `env:"KEY_PREFIX"`
}

// Adapter holds the outbound settings used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the server API (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single client request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval is how often the client re-reads keys and the log.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// OverdueReportInterval is how often the server logs overdue checkouts.
	// Env: WORKERS_OVERDUE_REPORT_INTERVAL
	OverdueReportInterval time.Duration `env:"OVERDUE_REPORT_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. .env file in the working directory, if present
//  3. Environment variables
//  4. Command-line flags
//  5. JSON file (path resolved from sources 3 and 4)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(defaultDotEnvPath).
		withEnv().
		withFlags().
		withJSON().
		build()
}
