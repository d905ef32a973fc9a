// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var errNoHTTPAddress = errors.New("handler: http listen address is empty")
