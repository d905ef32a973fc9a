// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordBytes is the longest input bcrypt accepts.
const bcryptMaxPasswordBytes = 72

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewPasswordHasher returns a bcrypt [PasswordHasher]. A cost outside
// bcrypt's range falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of password. Passwords longer than 72 bytes
// are rejected with ErrPasswordLengthInvalid.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordBytes {
		return "", fmt.Errorf("%w: longer than %d bytes", ErrPasswordLengthInvalid, bcryptMaxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
