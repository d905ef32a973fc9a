// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNothingToServe means NewServer got neither an HTTP handler nor an
// address to bind it to.
var errNothingToServe = errors.New("server: no http handler or listen address")
