// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
	"github.com/moonburnt/the-tempest/internal/utils"
	"github.com/moonburnt/the-tempest/models"
)

// multipartMemory is the part of a multipart body kept in memory, the rest
// is spooled to temporary files by mime/multipart.
const multipartMemory = 8 << 20

const uploadFormField = "file"

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		writeError(w, r, uploadFormError(err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			log.Warn().Err(err).Msg("error removing multipart temporary files")
		}
	}()

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		writeError(w, r, uploadFormError(err))
		return
	}
	defer file.Close()

	stored, err := h.services.FileService.Upload(ctx, utils.GetIdentityFromContext(ctx), models.Upload{
		FileName: header.Filename,
		Content:  file,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, stored.Link(), http.StatusSeeOther)
}

func uploadFormError(err error) error {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: %w", ErrRequestTooLarge, err)
	case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingFile):
		return fmt.Errorf("%w: %w", service.ErrNoFileSelected, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	content, err := h.services.FileService.Download(ctx, models.Download{
		Name:     chi.URLParam(r, "name"),
		Location: chi.URLParam(r, "directory"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	defer func() {
		if err := content.Content.Close(); err != nil {
			log.Warn().Err(err).Str("name", content.Name).Msg("error closing stored file")
		}
	}()

	http.ServeContent(w, r, content.Name, content.ModTime, content.Content)
}

func (h *Handler) myUploads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	files, err := h.services.FileService.ListUploads(ctx, utils.GetIdentityFromContext(ctx))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if files == nil {
		files = []models.FileRecord{}
	}

	if _, err = utils.WriteJSON(w, models.UploadList{Files: files, Length: len(files)}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing uploads list")
	}
}
