// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/moonburnt/the-tempest/internal/logger"
)

// withLogging writes one access log entry per request. Client errors are
// logged at warn level and server errors at error level.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(started)).
			Msg("request served")
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
