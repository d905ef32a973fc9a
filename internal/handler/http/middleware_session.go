// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/utils"
	"github.com/rs/zerolog"
)

const sessionCookieName = "session"

// withSession resolves the caller's identity once per request and stores it
// in the request context. Missing, invalid or expired tokens leave the
// request anonymous; they are never an error at this point.
//
// The token is read from the session cookie, with "Authorization: Bearer"
// accepted as a fallback for API clients.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := sessionToken(r)
		if token == "" {
			next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, nil)))
			return
		}

		identity := h.services.AuthService.Resolve(ctx, token)
		if identity != nil {
			log := logger.FromRequest(r).GetChildLogger()
			log.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("login", identity.Login)
			})
			ctx = log.WithContext(ctx)
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// loginRequired rejects anonymous requests with 401.
func (h *Handler) loginRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if utils.GetIdentityFromContext(r.Context()) == nil {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func sessionToken(r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token
		}
	}

	return ""
}
