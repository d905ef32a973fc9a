// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate]. Any of them is
// fatal at startup.
var (
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAuthConfigs indicates inconsistent login or password bounds.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates a missing DSN, upload directory or
	// an empty extension allow-list.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
