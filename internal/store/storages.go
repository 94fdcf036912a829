// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
)

// Storages groups the repositories used by the service layer together with
// the database connection that backs them, if any.
type Storages struct {
	RestaurantRepository RestaurantRepository

	db *DB
}

// NewStorages picks the backend from cfg.DB: an empty DSN selects the
// in-memory repository, otherwise a SQLite or PostgreSQL connection is opened
// and migrated.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		log.Info().Str("func", "NewStorages").Msg("no database DSN configured, using in-memory storage")
		return &Storages{
			RestaurantRepository: NewMemoryRestaurantRepository(log),
		}, nil
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		RestaurantRepository: NewRestaurantRepository(db, log),
		db:                   db,
	}, nil
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres, "":
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// PingContext checks the database connection. In-memory storages are always
// reachable.
func (s *Storages) PingContext(ctx context.Context) error {
	if s.db == nil {
		return nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the database connection, if one was opened.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
