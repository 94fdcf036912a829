// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
)

// NewConnectPostgres opens a pgx connection pool for cfg.DSN, limits its size
// and verifies the connection with a ping.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open(config.DriverPostgres, cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxOpenConns / 2)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), log), nil
}
