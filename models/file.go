// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"io"
	"path"
	"time"
)

// FileRecord is the metadata of one uploaded file.
//
// UploaderLogin and Location are empty for anonymous uploads. For
// authenticated uploads both are equal to the uploader's login.
type FileRecord struct {
	// ID is the surrogate key assigned by the metadata store.
	ID int64 `json:"-"`

	// StoredName is the on-disk name: sanitized stem, random suffix and the
	// lower-cased extension. Unique within Location.
	StoredName string `json:"stored_name"`

	// OriginalName is the sanitized client filename without the suffix.
	OriginalName string `json:"original_name"`

	// UploaderLogin is the login of the authenticated uploader.
	UploaderLogin string `json:"uploader,omitempty"`

	// Location is the subdirectory of the storage root holding the file.
	Location string `json:"location,omitempty"`

	// UploadedAt is the UTC time the record was created.
	UploadedAt time.Time `json:"uploaded_at"`

	// LastAccessedAt is the UTC time of the latest download. It never moves
	// backwards and is never earlier than UploadedAt.
	LastAccessedAt time.Time `json:"last_accessed_at"`
}

// TableName returns the name of the database table
// associated with the FileRecord model.
func (f FileRecord) TableName() string {
	return "files"
}

// Link returns the download path of the record.
func (f FileRecord) Link() string {
	return StoredFile{StoredName: f.StoredName, Location: f.Location}.Link()
}

// ResolvedName is the output of the naming resolver for a single upload.
type ResolvedName struct {
	// OriginalName is the sanitized client filename.
	OriginalName string
	// StoredName is OriginalName with a random suffix inserted before the
	// extension.
	StoredName string
	// Extension is the lower-cased extension of OriginalName, with the dot.
	Extension string
}

// Upload is a single file received from a client.
type Upload struct {
	// FileName is the raw, client-supplied filename.
	FileName string
	// Content streams the file bytes.
	Content io.Reader
}

// StoredFile identifies a file that was written by an upload.
type StoredFile struct {
	StoredName string `json:"stored_name"`
	Location   string `json:"location,omitempty"`
}

// Link returns "/uploads/<name>" for anonymous files and
// "/uploads/<location>/<name>" for files inside a user directory.
func (s StoredFile) Link() string {
	if s.Location == "" {
		return path.Join("/uploads", s.StoredName)
	}
	return path.Join("/uploads", s.Location, s.StoredName)
}

// Download addresses a stored file by name and optional directory.
type Download struct {
	Name     string
	Location string
}

// FileContent is an opened stored file ready to be streamed back.
// The caller must close Content.
type FileContent struct {
	Name    string
	ModTime time.Time
	Size    int64
	Content io.ReadSeekCloser
}
