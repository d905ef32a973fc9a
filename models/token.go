// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the claim set of a session token: the registered claims
// with the user id in "sub" plus the user's login.
type SessionClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login"`
}

// Token wraps a session JWT.
//
// SignedString holds the compact serialized form of the token, the value
// sent to the client in the session cookie. UserID and Login are parsed
// copies of the claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	SessionClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	UserID int64 `json:"-"`
}

// Identity returns the identity carried by the token.
func (t *Token) Identity() *Identity {
	return &Identity{UserID: t.UserID, Login: t.Login}
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
