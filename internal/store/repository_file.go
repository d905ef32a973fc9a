// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/models"
)

// fileRepository is the SQL implementation of [FileRepository] over the
// "files" table. Anonymous uploads are stored with a NULL uploader and an
// empty location, so that (location, stored_name) stays a plain UNIQUE key.
type fileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFileRepository constructs a [FileRepository].
func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	logger.Debug().Msg("creating file repository")
	return &fileRepository{
		db:     db,
		logger: logger,
	}
}

// Insert persists record and returns it with the database-assigned ID.
// A unique violation is reported as [ErrDuplicateStoredName].
func (r *fileRepository) Insert(ctx context.Context, record models.FileRecord) (models.FileRecord, error) {
	log := logger.FromContext(ctx)

	uploader := sql.NullString{String: record.UploaderLogin, Valid: record.UploaderLogin != ""}
	query, args, err := r.db.insertFileQuery(
		record.StoredName, record.OriginalName, uploader, record.Location,
		record.UploadedAt, record.LastAccessedAt,
	).ToSql()
	if err != nil {
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.ID); err != nil {
		if r.db.isConflict(err) {
			log.Warn().Str("func", "*fileRepository.Insert").
				Str("stored_name", record.StoredName).
				Str("location", record.Location).
				Msg("stored name already recorded")
			return models.FileRecord{}, ErrDuplicateStoredName
		}

		log.Err(err).Str("func", "*fileRepository.Insert").Msg("error inserting file record")
		return models.FileRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// TouchAccess moves last_accessed_at of the record forward to now.
func (r *fileRepository) TouchAccess(ctx context.Context, storedName, location string, now time.Time) error {
	query, args, err := r.db.touchFileQuery(storedName, location, now).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileRepository.TouchAccess").Msg("error updating file record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFileRecordNotFound
	}

	return nil
}

// ListByUploader returns the records uploaded by login in insertion order.
func (r *fileRepository) ListByUploader(ctx context.Context, login string) ([]models.FileRecord, error) {
	return r.list(ctx, "*fileRepository.ListByUploader",
		r.db.listFilesQuery().Where(sq.Eq{"uploader_login": login}).OrderBy("id ASC"))
}

// ListOldestUploaded walks files_uploaded_at_idx.
func (r *fileRepository) ListOldestUploaded(ctx context.Context, limit uint64) ([]models.FileRecord, error) {
	return r.list(ctx, "*fileRepository.ListOldestUploaded",
		r.db.listFilesQuery().OrderBy("uploaded_at ASC", "id ASC").Limit(limit))
}

// ListLeastRecentlyAccessed walks files_last_accessed_at_idx.
func (r *fileRepository) ListLeastRecentlyAccessed(ctx context.Context, limit uint64) ([]models.FileRecord, error) {
	return r.list(ctx, "*fileRepository.ListLeastRecentlyAccessed",
		r.db.listFilesQuery().OrderBy("last_accessed_at ASC", "id ASC").Limit(limit))
}

// Count returns the number of file records.
func (r *fileRepository) Count(ctx context.Context) (int64, error) {
	return r.db.count(ctx, filesTable)
}

func (r *fileRepository) list(ctx context.Context, funcName string, builder sq.SelectBuilder) ([]models.FileRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error querying file records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.FileRecord, 0)
	for rows.Next() {
		var (
			record   models.FileRecord
			uploader sql.NullString
		)
		if err := rows.Scan(
			&record.ID, &record.StoredName, &record.OriginalName, &uploader,
			&record.Location, &record.UploadedAt, &record.LastAccessedAt,
		); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning file record")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		record.UploaderLogin = uploader.String
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating file records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}
