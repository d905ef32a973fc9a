// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"no file", service.ErrNoFileSelected, http.StatusBadRequest, "no file selected"},
		{"wrapped file type", fmt.Errorf("%w: %w", service.ErrInvalidFileType, errors.New("empty name")), http.StatusBadRequest, "invalid file type"},
		{"charset", service.ErrLoginCharsetInvalid, http.StatusBadRequest, service.ErrLoginCharsetInvalid.Error()},
		{"taken", service.ErrLoginTaken, http.StatusConflict, "login is already taken"},
		{"unauthenticated", service.ErrUnauthenticated, http.StatusUnauthorized, "authentication required"},
		{"not found", fmt.Errorf("%w: %w", service.ErrNotFound, store.ErrFileNotFound), http.StatusNotFound, "file not found"},
		{"storage", fmt.Errorf("%w: %w", service.ErrStorageIO, store.ErrWritingFile), http.StatusInternalServerError, "Internal Server Error"},
		{"too large", ErrRequestTooLarge, http.StatusRequestEntityTooLarge, "file is too large"},
		{"unknown", errors.New("something"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
			assert.Equal(t, tt.wantMessage, messageFromError(tt.err))
		})
	}
}

// TestErrorStatusMap_KeysDoNotWrapEachOther keeps the map lookup
// deterministic.
func TestErrorStatusMap_KeysDoNotWrapEachOther(t *testing.T) {
	for a := range errorStatusMap {
		for b := range errorStatusMap {
			if a == b {
				continue
			}
			assert.Falsef(t, errors.Is(a, b), "%q wraps %q", a, b)
		}
	}
}
