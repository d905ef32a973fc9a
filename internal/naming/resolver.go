// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/moonburnt/the-tempest/models"
)

// Extension returns the lower-cased extension of name including the dot,
// or "" if name has none.
func Extension(name string) string {
	return strings.ToLower(path.Ext(name))
}

// Disambiguate inserts a random version 4 UUID between the stem and the
// extension of an already sanitized name: "report.txt" becomes
// "report-<uuid>.txt". The extension is lower-cased.
func Disambiguate(sanitizedName string) string {
	return disambiguate(sanitizedName, uuid.NewString())
}

func disambiguate(sanitizedName, suffix string) string {
	ext := path.Ext(sanitizedName)
	stem := strings.TrimSuffix(sanitizedName, ext)
	if stem == "" {
		return suffix + strings.ToLower(ext)
	}
	return stem + "-" + suffix + strings.ToLower(ext)
}

// Resolver combines Sanitize and Disambiguate. The zero value is ready to
// use; Suffix may be replaced to make stored names predictable in tests.
type Resolver struct {
	// Suffix returns the disambiguating suffix. Defaults to uuid.NewString.
	Suffix func() string
}

// NewResolver returns a Resolver producing UUID suffixes.
func NewResolver() *Resolver {
	return &Resolver{Suffix: uuid.NewString}
}

// Resolve sanitizes rawName and derives its stored name.
func (r *Resolver) Resolve(rawName string) (models.ResolvedName, error) {
	sanitized, err := Sanitize(rawName)
	if err != nil {
		return models.ResolvedName{}, fmt.Errorf("%w: %q", err, rawName)
	}

	suffix := uuid.NewString
	if r != nil && r.Suffix != nil {
		suffix = r.Suffix
	}

	return models.ResolvedName{
		OriginalName: sanitized,
		StoredName:   disambiguate(sanitized, suffix()),
		Extension:    Extension(sanitized),
	}, nil
}
