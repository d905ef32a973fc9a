// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("login", user.Login).Msg("user registered")
	http.Redirect(w, r, homePath, http.StatusSeeOther)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString, int(h.tokenDuration.Seconds())))
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))

	log.Info().Str("login", token.Login).Msg("user logged in")
	http.Redirect(w, r, afterLoginURL, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	http.Redirect(w, r, homePath, http.StatusSeeOther)
}

func (h *Handler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

// decodeCredentials reads login and password from a JSON body or from an
// urlencoded / multipart form.
func decodeCredentials(r *http.Request) (models.Credentials, error) {
	var creds models.Credentials

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
			return creds, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return creds, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return creds, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
	} else if err := r.ParseForm(); err != nil {
		return creds, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	creds.Login = r.PostFormValue("login")
	creds.Password = r.PostFormValue("password")
	return creds, nil
}
