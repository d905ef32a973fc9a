// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the merged [StructuredConfig] is complete enough to
// serve traffic. Every returned error wraps one of the ErrInvalid* sentinels.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and a positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Auth.MinLoginLength < 1 || cfg.Auth.MinLoginLength > cfg.Auth.MaxLoginLength {
		return fmt.Errorf("%w: login length bounds [%d, %d]", ErrInvalidAuthConfigs,
			cfg.Auth.MinLoginLength, cfg.Auth.MaxLoginLength)
	}
	if cfg.Auth.MinPasswordLength < 1 || cfg.Auth.MinPasswordLength > cfg.Auth.MaxPasswordLength {
		return fmt.Errorf("%w: password length bounds [%d, %d]", ErrInvalidAuthConfigs,
			cfg.Auth.MinPasswordLength, cfg.Auth.MaxPasswordLength)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Files.UploadDir == "" {
		return fmt.Errorf("%w: upload directory is required", ErrInvalidStorageConfigs)
	}
	if len(cfg.Storage.Files.AllowedExtensions) == 0 {
		return fmt.Errorf("%w: at least one allowed extension is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: http address is required", ErrInvalidServerConfigs)
	}

	return nil
}

// normalizeExtensions lower-cases the allow-list entries, adds the leading
// dot where missing and drops blanks and duplicates.
func normalizeExtensions(extensions []string) []string {
	seen := make(map[string]struct{}, len(extensions))
	normalized := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if _, ok := seen[ext]; ok {
			continue
		}
		seen[ext] = struct{}{}
		normalized = append(normalized, ext)
	}

	return normalized
}
