// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/models"
)

// Field name constants accepted by [CredentialsValidator.Validate] to
// restrict validation to a subset of fields.
const (
	// FieldLogin targets the login: presence, length bounds and charset.
	FieldLogin = "login"

	// FieldPassword targets the password: presence and length bounds.
	FieldPassword = "password"
)

// CredentialsValidator checks registration input against the configured
// login and password bounds. Bounds are inclusive and measured in
// characters.
type CredentialsValidator struct {
	minLogin, maxLogin       int
	minPassword, maxPassword int
}

// NewCredentialsValidator constructs a [CredentialsValidator] from the auth
// section of the configuration.
func NewCredentialsValidator(cfg config.Auth) Validator {
	return &CredentialsValidator{
		minLogin:    cfg.MinLoginLength,
		maxLogin:    cfg.MaxLoginLength,
		minPassword: cfg.MinPasswordLength,
		maxPassword: cfg.MaxPasswordLength,
	}
}

// Validate accepts models.Credentials or *models.Credentials. Without fields
// both login and password are checked, login first.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if err := v.validateLogin(creds.Login); err != nil {
				return err
			}
		case FieldPassword:
			if err := v.validatePassword(creds.Password); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *CredentialsValidator) validateLogin(login string) error {
	if strings.TrimSpace(login) == "" {
		return ErrEmptyLogin
	}

	n := utf8.RuneCountInString(login)
	if n < v.minLogin || n > v.maxLogin {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLoginLengthInvalid, n, v.minLogin, v.maxLogin)
	}

	// logins become directory names under the storage root
	for _, r := range login {
		if !isLoginRune(r) {
			return ErrLoginCharsetInvalid
		}
	}

	return nil
}

func (v *CredentialsValidator) validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}

	n := utf8.RuneCountInString(password)
	if n < v.minPassword || n > v.maxPassword {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrPasswordLengthInvalid, n, v.minPassword, v.maxPassword)
	}

	return nil
}

func isLoginRune(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r >= '0' && r <= '9' ||
		r == '_' || r == '-'
}
