// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/moonburnt/the-tempest/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PasswordHasher derives and checks password hashes.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. Any failure, including
	// a malformed hash, is reported as a mismatch.
	Verify(password, hash string) bool
}

// AuthService registers users, checks credentials and resolves sessions.
type AuthService interface {
	// Register validates creds and persists a new user.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)
	// Login checks creds and issues a new session token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	// Resolve returns the identity carried by a session token, or nil when
	// the token is missing, malformed, forged or expired.
	Resolve(ctx context.Context, token string) *models.Identity
}

// FileService places uploads, records their metadata and serves them back.
type FileService interface {
	// Upload stores the file for identity (nil for anonymous uploads).
	Upload(ctx context.Context, identity *models.Identity, upload models.Upload) (models.StoredFile, error)
	// Download opens a stored file and records the access.
	Download(ctx context.Context, download models.Download) (models.FileContent, error)
	// ListUploads returns the files uploaded by identity.
	ListUploads(ctx context.Context, identity *models.Identity) ([]models.FileRecord, error)
	// CountAll returns the number of stored entities of kind.
	CountAll(ctx context.Context, kind models.Kind) (int64, error)
	// Stats returns user and file counts.
	Stats(ctx context.Context) (models.Stats, error)
	// OldestUploads returns up to limit records, oldest upload first.
	OldestUploads(ctx context.Context, limit uint64) ([]models.FileRecord, error)
	// EvictionCandidates returns up to limit records, least recently
	// downloaded first.
	EvictionCandidates(ctx context.Context, limit uint64) ([]models.FileRecord, error)
	// IsAllowedExtension reports whether the extension of name is in the
	// configured allow-list.
	IsAllowedExtension(name string) bool
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}
