// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLogin            = errors.New("login is required")
	ErrEmptyPassword         = errors.New("password is required")
	ErrLoginLengthInvalid    = errors.New("login length is out of bounds")
	ErrPasswordLengthInvalid = errors.New("password length is out of bounds")
	ErrLoginCharsetInvalid   = errors.New("login may contain only latin letters, digits, '_' and '-'")
)
