// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// file-sharing server. It is populated by merging defaults, environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing settings, password hashing cost, logging and
	// the application version.
	App App `envPrefix:"APP_"`

	// Auth holds the registration bounds for logins and passwords.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds the metadata database and the upload directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session tokens.
	// Leaking it lets anyone forge a session for any user.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the adaptive cost factor of password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// CookieSecure marks the session cookie Secure (HTTPS only).
	// Env: APP_COOKIE_SECURE
	CookieSecure bool `env:"COOKIE_SECURE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds the inclusive length bounds enforced at registration.
type Auth struct {
	// Env: AUTH_MIN_LOGIN_LENGTH
	MinLoginLength int `env:"MIN_LOGIN_LENGTH"`
	// Env: AUTH_MAX_LOGIN_LENGTH
	MaxLoginLength int `env:"MAX_LOGIN_LENGTH"`
	// Env: AUTH_MIN_PASSWORD_LENGTH
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH"`
	// Env: AUTH_MAX_PASSWORD_LENGTH
	MaxPasswordLength int `env:"MAX_PASSWORD_LENGTH"`
}

// Storage groups the configuration of the metadata database and the
// file storage root.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the upload directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the metadata database.
type DB struct {
	// DSN selects the backend: "postgres://..." or "postgresql://..." opens
	// PostgreSQL through pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns limits the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Files holds file-system settings for uploaded files.
type Files struct {
	// UploadDir is the storage root. Anonymous uploads are stored directly
	// inside it, authenticated uploads in a subdirectory named after the
	// uploader's login.
	// Env: STORAGE_FILES_UPLOAD_DIR
	UploadDir string `env:"UPLOAD_DIR"`

	// AllowedExtensions is the extension allow-list, e.g. ".txt,.png".
	// Env: STORAGE_FILES_ALLOWED_EXTENSIONS
	AllowedExtensions []string `env:"ALLOWED_EXTENSIONS" envSeparator:","`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// MaxUploadSize is the maximum accepted request body size in bytes.
	// Env: SERVER_MAX_UPLOAD_SIZE
	MaxUploadSize int64 `env:"MAX_UPLOAD_SIZE"`
}

// Workers holds configuration for the background report worker.
type Workers struct {
	// ReportInterval is the period of the storage report. Zero disables it.
	// Env: WORKERS_REPORT_INTERVAL
	ReportInterval time.Duration `env:"REPORT_INTERVAL"`

	// ReportLimit is the number of retention and eviction candidates listed
	// in each report.
	// Env: WORKERS_REPORT_LIMIT
	ReportLimit uint64 `env:"REPORT_LIMIT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
