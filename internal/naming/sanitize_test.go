// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package naming

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_Accepted(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain", raw: "report.txt", expected: "report.txt"},
		{name: "keeps case", raw: "Photo.JPG", expected: "Photo.JPG"},
		{name: "unix path", raw: "/etc/passwd", expected: "passwd"},
		{name: "windows path", raw: `C:\Users\bob\notes.txt`, expected: "notes.txt"},
		{name: "traversal", raw: "../../secret.txt", expected: "secret.txt"},
		{name: "spaces", raw: "my  holiday photo.png", expected: "my_holiday_photo.png"},
		{name: "leading dot", raw: ".bashrc", expected: "bashrc"},
		{name: "leading and trailing junk", raw: "  ..__hello__..  ", expected: "hello"},
		{name: "non ascii dropped", raw: "résumé.txt", expected: "rsum.txt"},
		{name: "control characters dropped", raw: "a\x00b\x1fc.txt", expected: "abc.txt"},
		{name: "shell characters dropped", raw: "rm -rf $(HOME);.txt", expected: "rm_-rf_HOME.txt"},
		{name: "reserved device name", raw: "CON.txt", expected: "CON_.txt"},
		{name: "reserved device name lower case", raw: "nul", expected: "nul_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sanitize(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitize_Rejected(t *testing.T) {
	for _, raw := range []string{"", "   ", "..", ".", "/", `\`, "../..", "???", "日本語", "dir/", "__.__"} {
		t.Run(raw, func(t *testing.T) {
			got, err := Sanitize(raw)
			assert.ErrorIs(t, err, ErrInvalidFilename)
			assert.Empty(t, got)
		})
	}
}

// TestSanitize_OutputIsSingleSafeSegment checks the output shape for a set
// of hostile inputs.
func TestSanitize_OutputIsSingleSafeSegment(t *testing.T) {
	inputs := []string{
		"../../../etc/passwd",
		"..\\..\\windows\\system32\\config",
		"a/../b.txt",
		"....//....//x.gif",
		"x\x00/../y.txt",
		"%2e%2e%2fetc.txt",
		"normal.txt",
		". . . .txt",
	}

	for _, raw := range inputs {
		got, err := Sanitize(raw)
		if err != nil {
			assert.ErrorIs(t, err, ErrInvalidFilename)
			continue
		}
		assert.NotContains(t, got, "/", raw)
		assert.NotContains(t, got, `\`, raw)
		assert.NotEqual(t, "..", got, raw)
		assert.NotEqual(t, ".", got, raw)
		assert.False(t, strings.HasPrefix(got, "."), raw)
		for _, segment := range strings.Split(got, "/") {
			assert.NotEqual(t, "..", segment)
		}
	}
}

func TestSanitize_TruncatesLongNames(t *testing.T) {
	raw := strings.Repeat("a", 300) + ".txt"

	got, err := Sanitize(raw)

	require.NoError(t, err)
	assert.Len(t, got, maxNameLength)
	assert.True(t, strings.HasSuffix(got, ".txt"))
}

func TestIsSafeName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"report.txt", true},
		{"alice_01", true},
		{"a-b.c", true},
		{"", false},
		{".", false},
		{"..", false},
		{".hidden", false},
		{"a/b", false},
		{`a\b`, false},
		{"with space", false},
		{"résumé", false},
		{"../etc", false},
		{strings.Repeat("a", 256), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsSafeName(tt.name), tt.name)
	}
}

// TestSanitize_OutputIsSafeName ties the two functions together.
func TestSanitize_OutputIsSafeName(t *testing.T) {
	for _, raw := range []string{"CON.txt", "my file.png", "../../x.gif", strings.Repeat("b", 400)} {
		got, err := Sanitize(raw)
		require.NoError(t, err)
		assert.True(t, IsSafeName(got), got)
		assert.True(t, IsSafeName(Disambiguate(got)), got)
	}
}
