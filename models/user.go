// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// PasswordHash is never serialized.
type User struct {
	// UserID is the durable identifier embedded into session tokens.
	UserID int64 `json:"-"`

	// Login is the unique, case-sensitive user login. It doubles as the name
	// of the user's storage subdirectory.
	Login string `json:"login"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// RegisteredAt is the UTC time of registration.
	RegisteredAt time.Time `json:"registered_at"`

	// LastAccessAt is the UTC time of the last successful login.
	LastAccessAt time.Time `json:"last_access_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the login/password pair submitted by the register and
// login forms.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Identity is the resolved identity of an authenticated request.
//
// A nil *Identity stands for an anonymous request. Handlers resolve it once
// per request and pass it explicitly to the services.
type Identity struct {
	UserID int64  `json:"user_id"`
	Login  string `json:"login"`
}

// IsAnonymous reports whether i describes an anonymous caller.
func (i *Identity) IsAnonymous() bool {
	return i == nil
}

// Session describes the caller of a request as seen by the session gate.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	Login         string `json:"login,omitempty"`
}
