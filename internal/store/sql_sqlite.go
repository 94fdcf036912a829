// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.DSN. The file is created by
// the driver when missing. Only one connection is kept open so that an
// in-memory database (":memory:") keeps its schema between calls.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(config.DriverSQLite, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, config.DriverSQLite, NewSQLiteErrorClassifier(), log), nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
// A busy or locked database file is worth retrying, anything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return NonRetryable
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}
	return NonRetryable
}
