// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/moonburnt/the-tempest/internal/validators"
	"github.com/moonburnt/the-tempest/models"
)

type Services struct {
	AuthService    AuthService
	FileService    FileService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			NewPasswordHasher(cfg.App.BcryptCost),
			validators.NewCredentialsValidator(cfg.Auth),
			cfg.App,
			logger,
		),
		FileService: NewFileService(
			storages.FileRepository,
			storages.UserRepository,
			storages.FileStorage,
			cfg.Storage.Files,
			logger,
		),
		AppInfoService: appInfoService,
	}, nil
}
