// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/moonburnt/the-tempest/internal/config"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/migrations"
)

// DB wraps *sql.DB with the dialect-specific pieces the repositories need:
// a squirrel statement builder using the dialect's placeholders and a
// classifier for driver errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// newDB assembles a DB around an open connection. Only the pgx and sqlite3
// dialects are known.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case migrations.DialectSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	return db, nil
}

// NewConnect opens the metadata database named by cfg.DSN. DSNs starting
// with postgres:// or postgresql:// are opened with pgx, everything else is
// treated as a SQLite database file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Dialect returns the driver name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded migrations of the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.dialect); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error applying migrations")
		return err
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("dialect", db.dialect).Msg("migrations applied")
	return nil
}

// isConflict reports whether err is a unique constraint violation.
func (db *DB) isConflict(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.Classify(err) == Conflict
}

// count runs SELECT COUNT(*) over table.
func (db *DB) count(ctx context.Context, table string) (int64, error) {
	query, args, err := db.builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}
