// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Maxim Levkin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// launchcopy application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends, both the
	// relational database and the single-file JSON store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP
	// server.
	Server Server `envPrefix:"SERVER_"`

	// Generator holds settings for the external copy generation service.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "24h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// File holds the settings of the single-file JSON store used when no
	// database DSN is configured.
	File File `envPrefix:"FILE_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the database connection string. A "postgres://" or
	// "postgresql://" prefix selects PostgreSQL; any other non-empty
	// value is treated as a SQLite database file path. When empty, the
	// single-file JSON store is used instead.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// File holds settings for the single-file JSON store.
type File struct {
	// Path is the location of the JSON store file.
	// Env: STORAGE_FILE_PATH
	Path string `env:"PATH"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Generator holds settings for the external copy generation API.
type Generator struct {
	// APIKey authenticates requests to the generation API. When empty and
	// DemoMode is off, generation requests fail with a configuration
	// error.
	// Env: GENERATOR_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL overrides the generation API endpoint. Empty selects the
	// built-in default.
	// Env: GENERATOR_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the generation model identifier. Empty selects the
	// built-in default.
	// Env: GENERATOR_MODEL
	Model string `env:"MODEL"`

	// Timeout bounds a single generation API call.
	// Env: GENERATOR_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// DemoMode serves canned copy instead of calling the generation API.
	// Useful for local development without an API key.
	// Env: GENERATOR_DEMO_MODE
	DemoMode bool `env:"DEMO_MODE"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
