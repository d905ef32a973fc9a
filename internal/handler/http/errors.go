// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request decoding errors. Both are reported to the client with status 400
// or 413 and never reach the service layer.
var (
	// ErrInvalidRequestBody is returned when a form, multipart or JSON body
	// cannot be parsed.
	ErrInvalidRequestBody = errors.New("invalid request body")

	// ErrRequestTooLarge is returned when the body exceeds the configured
	// upload size limit.
	ErrRequestTooLarge = errors.New("file is too large")
)
