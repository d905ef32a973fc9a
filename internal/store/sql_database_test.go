// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/moonburnt/the-tempest/internal/logger"
	"github.com/moonburnt/the-tempest/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_Dialects(t *testing.T) {
	tests := []struct {
		dialect     string
		placeholder string
		wantErr     error
	}{
		{dialect: migrations.DialectPostgres, placeholder: "$1"},
		{dialect: migrations.DialectSQLite, placeholder: "?"},
		{dialect: "mysql", wantErr: ErrUnsupportedDialect},
		{dialect: "", wantErr: ErrUnsupportedDialect},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { conn.Close() })

			db, err := newDB(conn, tt.dialect, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, db)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.dialect, db.Dialect())

			query, _, err := db.findUserByLoginQuery("alice").ToSql()
			require.NoError(t, err)
			assert.Contains(t, query, tt.placeholder)
		})
	}
}
