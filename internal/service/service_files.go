// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/naming"
	"github.com/moonburnt/the-tempest/internal/store"
	"github.com/moonburnt/the-tempest/models"
)

// fileService is the concrete implementation of FileService.
//
// An upload goes through: file presence, extension allow-list, name
// resolution, partitioning, write, metadata record. The write and the
// record are not atomic: a failed record leaves an orphan file, which is
// logged.
type fileService struct {
	fileRepository store.FileRepository
	userRepository store.UserRepository
	fileStorage    store.FileStorage

	resolver          *naming.Resolver
	allowedExtensions map[string]struct{}

	now func() time.Time

	logger *logger.Logger
}

// NewFileService constructs a FileService. cfg.AllowedExtensions must
// already be normalized (lower-cased, with a leading dot).
func NewFileService(
	fileRepository store.FileRepository,
	userRepository store.UserRepository,
	fileStorage store.FileStorage,
	cfg config.Files,
	logger *logger.Logger,
) FileService {
	allowed := make(map[string]struct{}, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[ext] = struct{}{}
	}

	return &fileService{
		fileRepository:    fileRepository,
		userRepository:    userRepository,
		fileStorage:       fileStorage,
		resolver:          naming.NewResolver(),
		allowedExtensions: allowed,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *fileService) Upload(ctx context.Context, identity *models.Identity, upload models.Upload) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if upload.Content == nil || strings.TrimSpace(upload.FileName) == "" {
		return models.StoredFile{}, ErrNoFileSelected
	}

	if !s.IsAllowedExtension(upload.FileName) {
		return models.StoredFile{}, ErrInvalidFileType
	}

	resolved, err := s.resolver.Resolve(upload.FileName)
	if err != nil {
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrInvalidFileType, err)
	}
	// sanitizing may rewrite the extension
	if _, ok := s.allowedExtensions[resolved.Extension]; !ok {
		return models.StoredFile{}, ErrInvalidFileType
	}

	dir, err := s.fileStorage.ResolveDirectory(identity)
	if err != nil {
		log.Err(err).Str("func", "*fileService.Upload").Msg("error resolving upload directory")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	written, err := s.fileStorage.Save(ctx, dir, resolved.StoredName, upload.Content)
	if err != nil {
		log.Err(err).Str("func", "*fileService.Upload").Str("stored_name", resolved.StoredName).Msg("error writing upload")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	stored := models.StoredFile{StoredName: resolved.StoredName}
	record := models.FileRecord{
		StoredName:   resolved.StoredName,
		OriginalName: resolved.OriginalName,
	}
	if identity != nil {
		stored.Location = identity.Login
		record.UploaderLogin = identity.Login
		record.Location = identity.Login
	}

	now := s.now().UTC()
	record.UploadedAt = now
	record.LastAccessedAt = now

	if _, err := s.fileRepository.Insert(ctx, record); err != nil {
		log.Err(err).Str("func", "*fileService.Upload").
			Str("path", path.Join(dir, resolved.StoredName)).
			Msg("file written but its metadata was not recorded")
	}

	log.Info().
		Str("stored_name", stored.StoredName).
		Str("location", stored.Location).
		Int64("size", written).
		Msg("file uploaded")

	return stored, nil
}

// Download records the access and opens the file. The access update is
// best effort.
func (s *fileService) Download(ctx context.Context, download models.Download) (models.FileContent, error) {
	log := logger.FromContext(ctx)

	if !naming.IsSafeName(download.Name) || (download.Location != "" && !naming.IsSafeName(download.Location)) {
		return models.FileContent{}, ErrNotFound
	}

	err := s.fileRepository.TouchAccess(ctx, download.Name, download.Location, s.now().UTC())
	switch {
	case errors.Is(err, store.ErrFileRecordNotFound):
		log.Debug().Str("stored_name", download.Name).Str("location", download.Location).Msg("download of an unrecorded file")
	case err != nil:
		log.Warn().Err(err).Str("stored_name", download.Name).Msg("error updating last access time")
	}

	content, err := s.fileStorage.Open(download.Location, download.Name)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.FileContent{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*fileService.Download").Str("stored_name", download.Name).Msg("error opening file")
		return models.FileContent{}, fmt.Errorf("%w: %w", ErrStorageIO, err)
	}

	return content, nil
}

func (s *fileService) ListUploads(ctx context.Context, identity *models.Identity) ([]models.FileRecord, error) {
	if identity == nil {
		return nil, ErrUnauthenticated
	}

	records, err := s.fileRepository.ListByUploader(ctx, identity.Login)
	if err != nil {
		return nil, fmt.Errorf("error listing uploads of %q: %w", identity.Login, err)
	}

	return records, nil
}

func (s *fileService) CountAll(ctx context.Context, kind models.Kind) (int64, error) {
	switch kind {
	case models.KindUsers:
		return s.userRepository.Count(ctx)
	case models.KindFiles:
		return s.fileRepository.Count(ctx)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func (s *fileService) Stats(ctx context.Context) (models.Stats, error) {
	users, err := s.CountAll(ctx, models.KindUsers)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error counting users: %w", err)
	}

	files, err := s.CountAll(ctx, models.KindFiles)
	if err != nil {
		return models.Stats{}, fmt.Errorf("error counting files: %w", err)
	}

	return models.Stats{Users: users, Files: files}, nil
}

func (s *fileService) OldestUploads(ctx context.Context, limit uint64) ([]models.FileRecord, error) {
	return s.fileRepository.ListOldestUploaded(ctx, limit)
}

func (s *fileService) EvictionCandidates(ctx context.Context, limit uint64) ([]models.FileRecord, error) {
	return s.fileRepository.ListLeastRecentlyAccessed(ctx, limit)
}

// IsAllowedExtension matches case-insensitively.
func (s *fileService) IsAllowedExtension(name string) bool {
	_, ok := s.allowedExtensions[naming.Extension(name)]
	return ok
}
