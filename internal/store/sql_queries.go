// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable = "users"
	filesTable = "files"
)

var (
	userColumns = []string{"user_id", "login", "password_hash", "registered_at", "last_access_at"}

	fileColumns = []string{
		"id", "stored_name", "original_name", "uploader_login",
		"location", "uploaded_at", "last_accessed_at",
	}
)

func (db *DB) createUserQuery(login, passwordHash string, registeredAt, lastAccessAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(usersTable).
		Columns("login", "password_hash", "registered_at", "last_access_at").
		Values(login, passwordHash, registeredAt, lastAccessAt).
		Suffix("RETURNING user_id")
}

func (db *DB) findUserByLoginQuery(login string) sq.SelectBuilder {
	return db.builder.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"login": login})
}

func (db *DB) touchUserQuery(userID int64, now time.Time) sq.UpdateBuilder {
	return db.builder.
		Update(usersTable).
		Set("last_access_at", now).
		Where(sq.Eq{"user_id": userID})
}

func (db *DB) insertFileQuery(storedName, originalName string, uploader any, location string, uploadedAt, lastAccessedAt time.Time) sq.InsertBuilder {
	return db.builder.
		Insert(filesTable).
		Columns("stored_name", "original_name", "uploader_login", "location", "uploaded_at", "last_accessed_at").
		Values(storedName, originalName, uploader, location, uploadedAt, lastAccessedAt).
		Suffix("RETURNING id")
}

// touchFileQuery moves last_accessed_at forward only: a concurrent or
// delayed touch with an older timestamp keeps the newer value but still
// matches the row.
func (db *DB) touchFileQuery(storedName, location string, now time.Time) sq.UpdateBuilder {
	return db.builder.
		Update(filesTable).
		Set("last_accessed_at", sq.Expr("CASE WHEN last_accessed_at < ? THEN ? ELSE last_accessed_at END", now, now)).
		Where(sq.Eq{"location": location}).
		Where(sq.Eq{"stored_name": storedName})
}

func (db *DB) listFilesQuery() sq.SelectBuilder {
	return db.builder.
		Select(fileColumns...).
		From(filesTable)
}
