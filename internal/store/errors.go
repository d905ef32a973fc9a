// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists in the database.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the requested login.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDuplicateStoredName is returned when a file record with the same
	// location and stored name already exists.
	ErrDuplicateStoredName = errors.New("duplicate stored name")

	// ErrFileRecordNotFound is returned when no file record matches the
	// requested location and stored name.
	ErrFileRecordNotFound = errors.New("file record was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDialect is returned for a DSN no driver is registered for.
	ErrUnsupportedDialect = errors.New("unsupported database dialect")
)

// File storage errors.
var (
	// ErrFileNotFound is returned when the requested file does not exist on
	// disk or is not a regular file.
	ErrFileNotFound = errors.New("file not found")

	// ErrPathOutsideRoot is returned when a location or name would resolve
	// to a path outside the storage root.
	ErrPathOutsideRoot = errors.New("path is outside the storage root")

	// ErrCreatingDirectory is returned when a storage directory cannot be
	// created.
	ErrCreatingDirectory = errors.New("error creating storage directory")

	// ErrWritingFile is returned when an upload cannot be written to disk.
	ErrWritingFile = errors.New("error writing file")
)
