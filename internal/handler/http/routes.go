// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withSession)

	// files
	router.Group(func(r chi.Router) {
		r.Post("/upload", h.upload)
		r.Get("/uploads/{name}", h.download)
		r.Post("/uploads/{name}", h.download)
		r.Get("/uploads/{directory}/{name}", h.download)
		r.Post("/uploads/{directory}/{name}", h.download)
	})

	// session
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Get("/auth/logout", h.logout)
		r.Post("/auth/logout", h.logout)
	})

	// JSON views
	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Get(homePath, h.home)
		r.With(h.loginRequired).Get("/my_uploads", h.myUploads)
		r.Get("/api/stats", h.stats)
		r.Get("/api/version", h.version)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
