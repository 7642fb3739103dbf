// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-accounts/internal/config"
	"github.com/MKhiriev/go-user-accounts/internal/logger"
	"github.com/MKhiriev/go-user-accounts/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// Startup ping backoff: 200ms doubling, at most pingMaxRetries retries.
const (
	pingBaseDelay  = 200 * time.Millisecond
	pingMaxRetries = 5
)

// DB is an open connection pool together with the dialect it speaks.
type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// Migrate applies the embedded schema migrations for the DB's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// builder returns a squirrel statement builder using the placeholder style
// of the connected database.
func (db *DB) builder() sq.StatementBuilderType {
	return statementBuilder(db.driver)
}

func statementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// pingWithRetry pings the database, retrying with exponential backoff while
// the DB's classifier reports the failure as transient. The database
// container commonly starts together with the service.
func (db *DB) pingWithRetry(ctx context.Context) error {
	backoff := retry.WithMaxRetries(pingMaxRetries, retry.NewExponential(pingBaseDelay))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).Int("attempt", attempt).Msg("database is not ready, retrying ping")
			return retry.RetryableError(err)
		}
		return err
	})
}
