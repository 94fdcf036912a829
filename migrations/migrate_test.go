// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // no expectations: goose's first query fails

	err = Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedDialect))
}

func TestMigrate_SQLiteInMemory(t *testing.T) {
	db, err := sql.Open(DialectSQLite, ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, DialectSQLite))

	// second run is a no-op
	require.NoError(t, Migrate(db, DialectSQLite))

	_, err = db.Exec(`INSERT INTO restaurants (name, address, cuisine_type) VALUES (?, ?, ?)`, "Sabor Caseiro", "Rua A, 10", "Brasileira")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM restaurants`).Scan(&count))
	assert.Equal(t, 1, count)
}
