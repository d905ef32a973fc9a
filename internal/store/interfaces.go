// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"io"
	"time"

	"github.com/moonburnt/the-tempest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID set.
	// Returns ErrLoginAlreadyExists if the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByLogin returns ErrNoUserWasFound if no user has login.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	// TouchLastAccess sets the last access time of the user.
	TouchLastAccess(ctx context.Context, userID int64, now time.Time) error
	// Count returns the number of registered users.
	Count(ctx context.Context) (int64, error)
}

// FileRepository persists the metadata of uploaded files.
type FileRepository interface {
	// Insert stores record and returns it with ID set.
	// Returns ErrDuplicateStoredName if (location, stored name) is taken.
	Insert(ctx context.Context, record models.FileRecord) (models.FileRecord, error)
	// TouchAccess moves the last access time of the record forward to now.
	// An older now leaves the record untouched. Returns
	// ErrFileRecordNotFound if no record matches.
	TouchAccess(ctx context.Context, storedName, location string, now time.Time) error
	// ListByUploader returns every record uploaded by login.
	ListByUploader(ctx context.Context, login string) ([]models.FileRecord, error)
	// ListOldestUploaded returns up to limit records, oldest upload first.
	ListOldestUploaded(ctx context.Context, limit uint64) ([]models.FileRecord, error)
	// ListLeastRecentlyAccessed returns up to limit records, least recently
	// downloaded first.
	ListLeastRecentlyAccessed(ctx context.Context, limit uint64) ([]models.FileRecord, error)
	// Count returns the number of stored records.
	Count(ctx context.Context) (int64, error)
}

// FileStorage places uploaded bytes under the storage root.
type FileStorage interface {
	// ResolveDirectory returns the directory for files of identity, creating
	// it if needed: the root for a nil identity, root/<login> otherwise.
	ResolveDirectory(identity *models.Identity) (string, error)
	// Save writes r to dir/name. The file must not exist yet. On failure no
	// file is left behind.
	Save(ctx context.Context, dir, name string, r io.Reader) (int64, error)
	// Open opens name inside location ("" for the root).
	// Returns ErrFileNotFound if there is no such regular file.
	Open(location, name string) (models.FileContent, error)
}
