// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/moonburnt/the-tempest/internal/validators"
)

// Registration validation errors.
var (
	ErrEmptyLogin            = validators.ErrEmptyLogin
	ErrEmptyPassword         = validators.ErrEmptyPassword
	ErrLoginLengthInvalid    = validators.ErrLoginLengthInvalid
	ErrPasswordLengthInvalid = validators.ErrPasswordLengthInvalid
	ErrLoginCharsetInvalid   = validators.ErrLoginCharsetInvalid
)

var (
	ErrLoginTaken      = errors.New("login is already taken")
	ErrInvalidLogin    = errors.New("invalid login")
	ErrInvalidPassword = errors.New("invalid password")
	ErrUnauthenticated = errors.New("authentication required")

	ErrTokenCreationFailed = errors.New("token creation failed")
)

var (
	ErrNoFileSelected  = errors.New("no file selected")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrStorageIO       = errors.New("storage I/O failure")
	ErrNotFound        = errors.New("file not found")
	ErrUnknownKind     = errors.New("unknown kind")
)

var ErrVersionIsNotSpecified = errors.New("app version is not specified")
