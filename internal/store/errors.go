// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable wraps driver errors that were classified as
	// [Retryable]: the database is temporarily unreachable or rolled the
	// operation back, so the same request may succeed later.
	ErrStoreUnavailable = errors.New("store is temporarily unavailable")

	// ErrRestaurantNotSaved is returned when an INSERT or UPDATE completes
	// without a driver error but no row was written.
	ErrRestaurantNotSaved = errors.New("restaurant was not saved")

	// ErrUnknownDriver is returned by [NewStorages] when the configured
	// database driver is neither pgx nor sqlite3.
	ErrUnknownDriver = errors.New("unknown database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan restaurant row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan restaurant rows")

	// ErrMigrating is returned when schema migrations could not be applied.
	ErrMigrating = errors.New("failed to apply migrations")
)
