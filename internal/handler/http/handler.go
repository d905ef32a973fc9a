// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/service"
)

type Handler struct {
	services *service.Services

	cookieSecure   bool
	tokenDuration  time.Duration
	maxUploadSize  int64
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookieSecure:   cfg.App.CookieSecure,
		tokenDuration:  cfg.App.TokenDuration,
		maxUploadSize:  cfg.Server.MaxUploadSize,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
