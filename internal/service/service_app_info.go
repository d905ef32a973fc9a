// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService serves build. A configured APP_VERSION replaces the
// build version.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version != "" {
		build.Version = cfg.Version
	}
	if build.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		info:   build,
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
