// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations for every supported
// SQL dialect.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Supported goose dialects. They match the database/sql driver names.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// ErrUnsupportedDialect is returned for a dialect without embedded migrations.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// Migrate applies all pending migrations of the given dialect to db.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	dir, err := migrationsDir(dialect)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func migrationsDir(dialect string) (string, error) {
	switch dialect {
	case DialectPostgres:
		return "postgres", nil
	case DialectSQLite:
		return "sqlite", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}
}
