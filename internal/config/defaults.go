// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultHTTPAddress       = "localhost:8080"
	DefaultTokenIssuer       = "the-tempest"
	DefaultTokenDuration     = 24 * time.Hour
	DefaultMinLoginLength    = 6
	DefaultMaxLoginLength    = 15
	DefaultMinPasswordLength = 6
	DefaultMaxPasswordLength = 64
	DefaultRequestTimeout    = time.Minute
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultMaxUploadSize     = 32 << 20
	DefaultMaxOpenConns      = 10
	DefaultReportLimit       = 10
)

// DefaultAllowedExtensions is the extension allow-list used when none is
// configured.
var DefaultAllowedExtensions = []string{".txt", ".png", ".jpg", ".jpeg", ".gif"}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			BcryptCost:    bcrypt.DefaultCost,
			LogLevel:      "info",
		},
		Auth: Auth{
			MinLoginLength:    DefaultMinLoginLength,
			MaxLoginLength:    DefaultMaxLoginLength,
			MinPasswordLength: DefaultMinPasswordLength,
			MaxPasswordLength: DefaultMaxPasswordLength,
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: DefaultMaxOpenConns},
			Files: Files{
				AllowedExtensions: append([]string(nil), DefaultAllowedExtensions...),
			},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
			MaxUploadSize:   DefaultMaxUploadSize,
		},
		Workers: Workers{
			ReportLimit: DefaultReportLimit,
		},
	}
}
