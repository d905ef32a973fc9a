// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/handler/http"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHTTPAddress
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
