// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
)

// Storages groups the persistence components used by the service layer.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	FileRepository FileRepository
	FileStorage    FileStorage
}

// NewStorages connects to the metadata database, applies migrations and
// prepares the upload root.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	files, err := NewDiskStorage(cfg.Files.UploadDir, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		FileRepository: NewFileRepository(db, log),
		FileStorage:    files,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
