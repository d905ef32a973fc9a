// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/utils"
)

// errorStatusMap lists every error a client may see. None of the keys
// wraps another key, so the lookup order does not matter.
var errorStatusMap = map[error]int{
	ErrInvalidRequestBody: http.StatusBadRequest,
	ErrRequestTooLarge:    http.StatusRequestEntityTooLarge,

	service.ErrEmptyLogin:            http.StatusBadRequest,
	service.ErrEmptyPassword:         http.StatusBadRequest,
	service.ErrLoginLengthInvalid:    http.StatusBadRequest,
	service.ErrPasswordLengthInvalid: http.StatusBadRequest,
	service.ErrLoginCharsetInvalid:   http.StatusBadRequest,
	service.ErrLoginTaken:            http.StatusConflict,
	service.ErrInvalidLogin:          http.StatusUnauthorized,
	service.ErrInvalidPassword:       http.StatusUnauthorized,
	service.ErrUnauthenticated:       http.StatusUnauthorized,

	service.ErrNoFileSelected:  http.StatusBadRequest,
	service.ErrInvalidFileType: http.StatusBadRequest,
	service.ErrNotFound:        http.StatusNotFound,
	service.ErrStorageIO:       http.StatusInternalServerError,
}

func matchError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := matchError(err)
	return status
}

// messageFromError returns the text shown to the user. Wrapped details and
// server-side failures are replaced by the sentinel text or the status text.
func messageFromError(err error) string {
	target, status := matchError(err)
	if target == nil || status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return target.Error()
}

// writeError logs err and answers with its mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, messageFromError(err), status)
}
