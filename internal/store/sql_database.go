// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/migrations"
)

// DB wraps an open *sql.DB together with the dialect-specific pieces the
// repositories need: the squirrel statement builder (placeholder format) and
// the driver error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            newStatementBuilder(driver),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded schema migrations using the dialect of the
// connected driver.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB, db.driver); err != nil {
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}
	return nil
}

// wrap attaches stepErr to a driver error. Errors the classifier deems
// retryable are additionally marked with ErrStoreUnavailable.
func (db *DB) wrap(stepErr, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, stepErr, err)
	}
	if errors.Is(err, sql.ErrConnDone) {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, stepErr, err)
	}
	return fmt.Errorf("%w: %w", stepErr, err)
}

func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverSQLite {
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}
