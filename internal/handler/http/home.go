// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/moonburnt/the-tempest/internal/utils"
	"github.com/moonburnt/the-tempest/models"
)

const (
	homePath      = "/"
	afterLoginURL = "/my_uploads"
)

// home reports who the caller is. It is where register and logout send the
// browser.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	var session models.Session
	if identity := utils.GetIdentityFromContext(r.Context()); !identity.IsAnonymous() {
		session = models.Session{Authenticated: true, Login: identity.Login}
	}
	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}
