// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the server:
// type-safe context keys, session token signing and parsing, JSON response
// writing and a resty-based HTTP client.
package utils

import (
	"context"

	"github.com/moonburnt/the-tempest/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the session middleware stores the
// resolved *models.Identity of the request.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity. A nil identity is
// stored as well, marking the request as resolved and anonymous.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// GetIdentityFromContext retrieves the identity stored by WithIdentity.
//
// Returns nil for anonymous requests and for contexts that never went
// through the session middleware.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(IdentityCtxKey).(*models.Identity)
	return identity
}
