// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import "errors"

// ErrInvalidFilename is returned when nothing usable is left of a filename
// after sanitization.
var ErrInvalidFilename = errors.New("invalid filename")
