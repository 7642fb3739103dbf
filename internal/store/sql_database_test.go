// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPingDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &DB{
		DB:                 conn,
		driver:             config.DriverSQLite,
		logger:             logger.Nop(),
		errorClassificator: NewSQLiteErrorClassifier(),
	}, mock
}

func TestDB_PingWithRetry_RetriesTransientFailure(t *testing.T) {
	db, mock := newPingDB(t)

	mock.ExpectPing().WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})
	mock.ExpectPing()

	require.NoError(t, db.pingWithRetry(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_PingWithRetry_StopsOnPermanentFailure(t *testing.T) {
	db, mock := newPingDB(t)

	permanent := sqlite3.Error{Code: sqlite3.ErrCantOpen}
	mock.ExpectPing().WillReturnError(permanent)

	err := db.pingWithRetry(context.Background())
	assert.ErrorIs(t, err, permanent)
	assert.NoError(t, mock.ExpectationsWereMet())
}
