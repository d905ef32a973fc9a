// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var storedNamePattern = regexp.MustCompile(`^report-[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}\.txt$`)

func TestDisambiguate_Format(t *testing.T) {
	got := Disambiguate("report.txt")
	assert.Regexp(t, storedNamePattern, got)
}

func TestDisambiguate_LowercasesExtension(t *testing.T) {
	assert.Equal(t, "photo-x.jpg", disambiguate("photo.JPG", "x"))
	assert.Equal(t, "archive.tar-x.gz", disambiguate("archive.tar.gz", "x"))
	assert.Equal(t, "README-x", disambiguate("README", "x"))
}

// TestDisambiguate_NoCollisions generates many stored names for the same
// input and expects all of them to differ.
func TestDisambiguate_NoCollisions(t *testing.T) {
	const n = 10000
	seen := make(map[string]struct{}, n)

	for i := 0; i < n; i++ {
		name := Disambiguate("report.txt")
		_, dup := seen[name]
		require.False(t, dup, "collision after %d names: %s", i, name)
		seen[name] = struct{}{}
	}

	assert.Len(t, seen, n)
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		"a.TXT":      ".txt",
		"a.b.Png":    ".png",
		"noext":      "",
		"trailing.":  ".",
		"photo.jpeg": ".jpeg",
	}
	for in, want := range tests {
		assert.Equal(t, want, Extension(in), in)
	}
}

func TestResolver_Resolve(t *testing.T) {
	r := &Resolver{Suffix: func() string { return "fixed" }}

	got, err := r.Resolve("../My Photo.JPG")

	require.NoError(t, err)
	assert.Equal(t, "My_Photo.JPG", got.OriginalName)
	assert.Equal(t, "My_Photo-fixed.jpg", got.StoredName)
	assert.Equal(t, ".jpg", got.Extension)
}

func TestResolver_ExtensionMatchesStoredName(t *testing.T) {
	r := NewResolver()

	got, err := r.Resolve("notes.TxT")

	require.NoError(t, err)
	assert.Equal(t, got.Extension, Extension(got.StoredName))
	assert.Equal(t, ".txt", got.Extension)
}

func TestResolver_InvalidFilename(t *testing.T) {
	var r *Resolver

	_, err := r.Resolve("..")

	assert.ErrorIs(t, err, ErrInvalidFilename)
}
