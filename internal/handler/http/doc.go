// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the file-sharing
// server.
//
// It wires the chi router, the form and JSON handlers for registration,
// login, uploads and downloads, and the middleware chain: request tracing,
// access logging, session resolution and response compression. Handlers
// read the caller's identity once from the request context and pass it to
// the service layer explicitly.
package http
