// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/moonburnt/the-tempest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFileRepo(t *testing.T) (*fileRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &fileRepository{db: db, logger: db.logger}, mock
}

// ── Insert ────────────────────────────────────────────────────────────────────

func TestFileInsert_Authenticated(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	record := models.FileRecord{
		StoredName:     "photo-abc.jpg",
		OriginalName:   "photo.jpg",
		UploaderLogin:  "alice1",
		Location:       "alice1",
		UploadedAt:     now,
		LastAccessedAt: now,
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO files (stored_name,original_name,uploader_login,location,uploaded_at,last_accessed_at) VALUES ($1,$2,$3,$4,$5,$6) RETURNING id")).
		WithArgs("photo-abc.jpg", "photo.jpg", "alice1", "alice1", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	saved, err := repo.Insert(context.Background(), record)

	require.NoError(t, err)
	assert.Equal(t, int64(11), saved.ID)
	assert.Equal(t, "alice1", saved.UploaderLogin)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestFileInsert_AnonymousStoresNullUploader verifies that an anonymous
// record is written with a NULL uploader and an empty location.
func TestFileInsert_AnonymousStoresNullUploader(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO files").
		WithArgs("notes-abc.txt", "notes.txt", nil, "", now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.Insert(context.Background(), models.FileRecord{
		StoredName:     "notes-abc.txt",
		OriginalName:   "notes.txt",
		UploadedAt:     now,
		LastAccessedAt: now,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileInsert_Duplicate(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("INSERT INTO files").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Insert(context.Background(), models.FileRecord{StoredName: "a-1.txt"})

	assert.ErrorIs(t, err, ErrDuplicateStoredName)
}

func TestFileInsert_OtherError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("INSERT INTO files").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.Insert(context.Background(), models.FileRecord{StoredName: "a-1.txt"})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrDuplicateStoredName)
}

// ── TouchAccess ───────────────────────────────────────────────────────────────

func TestFileTouchAccess_Success(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE files SET last_accessed_at = CASE WHEN last_accessed_at < $1 THEN $2 ELSE last_accessed_at END WHERE location = $3 AND stored_name = $4")).
		WithArgs(now, now, "alice1", "photo-abc.jpg").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.TouchAccess(context.Background(), "photo-abc.jpg", "alice1", now)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFileTouchAccess_NotFound(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("UPDATE files").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.TouchAccess(context.Background(), "missing.txt", "", time.Now())

	assert.ErrorIs(t, err, ErrFileRecordNotFound)
}

func TestFileTouchAccess_ExecError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectExec("UPDATE files").WillReturnError(errors.New("timeout"))

	err := repo.TouchAccess(context.Background(), "a.txt", "", time.Now())

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── listing ───────────────────────────────────────────────────────────────────

func fileRows(records ...models.FileRecord) *sqlmock.Rows {
	rows := sqlmock.NewRows(fileColumns)
	for _, r := range records {
		var uploader any
		if r.UploaderLogin != "" {
			uploader = r.UploaderLogin
		}
		rows.AddRow(r.ID, r.StoredName, r.OriginalName, uploader, r.Location, r.UploadedAt, r.LastAccessedAt)
	}
	return rows
}

func TestListByUploader(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Now().UTC()
	want := []models.FileRecord{
		{ID: 1, StoredName: "a-1.txt", OriginalName: "a.txt", UploaderLogin: "alice1", Location: "alice1", UploadedAt: now, LastAccessedAt: now},
		{ID: 2, StoredName: "b-2.png", OriginalName: "b.png", UploaderLogin: "alice1", Location: "alice1", UploadedAt: now, LastAccessedAt: now},
	}

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, stored_name, original_name, uploader_login, location, uploaded_at, last_accessed_at FROM files WHERE uploader_login = $1 ORDER BY id ASC")).
		WithArgs("alice1").
		WillReturnRows(fileRows(want...))

	got, err := repo.ListByUploader(context.Background(), "alice1")

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListByUploader_Empty(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").WillReturnRows(fileRows())

	got, err := repo.ListByUploader(context.Background(), "bob123")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListOldestUploaded_UsesUploadOrder(t *testing.T) {
	repo, mock := newTestFileRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("FROM files ORDER BY uploaded_at ASC, id ASC LIMIT 5")).
		WillReturnRows(fileRows(models.FileRecord{ID: 4, StoredName: "x-4.txt", UploadedAt: now, LastAccessedAt: now}))

	got, err := repo.ListOldestUploaded(context.Background(), 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0].UploaderLogin)
}

func TestListLeastRecentlyAccessed_UsesAccessOrder(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM files ORDER BY last_accessed_at ASC, id ASC LIMIT 3")).
		WillReturnRows(fileRows())

	_, err := repo.ListLeastRecentlyAccessed(context.Background(), 3)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList_QueryError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").WillReturnError(errors.New("gone"))

	_, err := repo.ListOldestUploaded(context.Background(), 1)

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestList_ScanError(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM files").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.ListByUploader(context.Background(), "alice1")

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestFileCount(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM files")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestFileCount_Error(t *testing.T) {
	repo, mock := newTestFileRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("gone"))

	_, err := repo.Count(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
