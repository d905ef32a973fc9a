// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation rules that are shared by the
// service and transport layers.
//
// A [Validator] checks a value and may be restricted to a subset of named
// fields, so a caller can validate only what a given operation needs.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/validator_mock.go -package=mock

// Validator validates an input value, optionally only the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
