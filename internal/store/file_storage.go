// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/internal/naming"
	"github.com/moonburnt/the-tempest/models"
)

const (
	dirPerm  = 0o750
	filePerm = 0o640
)

// diskStorage is the local filesystem implementation of [FileStorage].
//
// Layout: root/<storedName> for anonymous uploads and
// root/<login>/<storedName> for authenticated ones.
type diskStorage struct {
	root   string
	logger *logger.Logger
}

// NewDiskStorage creates the storage root if it is missing and returns a
// [FileStorage] rooted at its absolute path.
func NewDiskStorage(root string, logger *logger.Logger) (FileStorage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	if err := os.MkdirAll(abs, dirPerm); err != nil {
		logger.Err(err).Str("func", "NewDiskStorage").Str("root", abs).Msg("error creating storage root")
		return nil, fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	logger.Debug().Str("root", abs).Msg("creating disk storage")
	return &diskStorage{root: abs, logger: logger}, nil
}

// ResolveDirectory returns the directory for identity. The login must be a
// safe single path segment even though registration already restricts it.
// MkdirAll makes concurrent first uploads of the same user safe.
func (s *diskStorage) ResolveDirectory(identity *models.Identity) (string, error) {
	if identity == nil {
		return s.root, nil
	}

	dir, err := s.join(identity.Login)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		s.logger.Err(err).Str("func", "*diskStorage.ResolveDirectory").Str("dir", dir).Msg("error creating user directory")
		return "", fmt.Errorf("%w: %w", ErrCreatingDirectory, err)
	}

	return dir, nil
}

// Save writes r into dir/name. O_EXCL refuses to overwrite an existing file.
// A failed or cancelled write removes the partial file.
func (s *diskStorage) Save(ctx context.Context, dir, name string, r io.Reader) (int64, error) {
	if !s.contains(dir) || !isSafeSegment(name) {
		return 0, ErrPathOutsideRoot
	}
	path := filepath.Join(dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	written, err := io.Copy(f, &contextReader{ctx: ctx, r: r})
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Err(rmErr).Str("func", "*diskStorage.Save").Str("path", path).Msg("error removing partial file")
		}
		return 0, fmt.Errorf("%w: %w", ErrWritingFile, err)
	}

	return written, nil
}

// Open opens location/name for reading.
func (s *diskStorage) Open(location, name string) (models.FileContent, error) {
	if !isSafeSegment(name) {
		return models.FileContent{}, ErrFileNotFound
	}

	dir := s.root
	if location != "" {
		var err error
		if dir, err = s.join(location); err != nil {
			return models.FileContent{}, ErrFileNotFound
		}
	}
	path := filepath.Join(dir, name)

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.FileContent{}, ErrFileNotFound
	}
	if err != nil {
		return models.FileContent{}, fmt.Errorf("error opening file: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return models.FileContent{}, fmt.Errorf("error reading file info: %w", err)
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return models.FileContent{}, ErrFileNotFound
	}

	return models.FileContent{
		Name:    name,
		ModTime: info.ModTime(),
		Size:    info.Size(),
		Content: f,
	}, nil
}

// join resolves a single directory segment under the root.
func (s *diskStorage) join(segment string) (string, error) {
	if !isSafeSegment(segment) {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideRoot, segment)
	}

	dir := filepath.Join(s.root, segment)
	if !s.contains(dir) || dir == s.root {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideRoot, segment)
	}

	return dir, nil
}

// contains reports whether path is the root or one of its descendants.
func (s *diskStorage) contains(path string) bool {
	rel, err := filepath.Rel(s.root, filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

func isSafeSegment(segment string) bool {
	return naming.IsSafeName(segment)
}

// contextReader stops a copy once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
