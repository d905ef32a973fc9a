// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/utils"
)

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	stats, err := h.services.FileService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, stats, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing stats")
	}
}
