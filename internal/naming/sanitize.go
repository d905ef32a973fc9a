// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"path"
	"strings"
	"unicode"
)

// maxNameLength caps the sanitized name so that the suffixed stored name
// stays under the common 255-byte filename limit.
const maxNameLength = 200

// windowsDeviceNames are reserved on Windows regardless of extension.
// Sanitize appends "_" to such a stem.
var windowsDeviceNames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {}, "COM5": {}, "COM6": {}, "COM7": {}, "COM8": {}, "COM9": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {}, "LPT4": {}, "LPT5": {}, "LPT6": {}, "LPT7": {}, "LPT8": {}, "LPT9": {},
}

// Sanitize reduces rawName to a safe single path segment.
//
// Both "/" and "\" are treated as separators and only the last segment is
// kept. Whitespace runs become "_", every other character outside
// [A-Za-z0-9._-] is dropped, and leading or trailing dots and underscores are
// trimmed, so the result never contains a separator, never equals "." or
// "..", and never starts with a dot. Returns ErrInvalidFilename if nothing is
// left.
func Sanitize(rawName string) (string, error) {
	name := rawName
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	b.Grow(len(name))
	pendingSpace := false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = true
			continue
		case isSafeRune(r):
			if pendingSpace && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}

	sanitized := strings.Trim(b.String(), "._")
	if len(sanitized) > maxNameLength {
		sanitized = truncate(sanitized)
	}
	if sanitized == "" {
		return "", ErrInvalidFilename
	}

	ext := path.Ext(sanitized)
	stem := strings.TrimSuffix(sanitized, ext)
	if _, reserved := windowsDeviceNames[strings.ToUpper(stem)]; reserved {
		sanitized = stem + "_" + ext
	}

	return sanitized, nil
}

// IsSafeName reports whether name is usable as a single path segment as is:
// non-empty, at most 255 bytes, only [A-Za-z0-9._-] and no leading dot.
func IsSafeName(name string) bool {
	if name == "" || len(name) > 255 || name[0] == '.' {
		return false
	}
	for _, r := range name {
		if !isSafeRune(r) {
			return false
		}
	}
	return true
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// truncate shortens the stem of an over-long name, keeping its extension.
func truncate(name string) string {
	ext := path.Ext(name)
	if len(ext) >= maxNameLength/2 {
		ext = ""
	}
	stem := strings.TrimRight(name[:maxNameLength-len(ext)], "._")
	return stem + ext
}
