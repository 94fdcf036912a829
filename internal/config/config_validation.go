// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN != "" {
		switch cfg.Storage.DB.Driver {
		case DriverPostgres, DriverSQLite:
		default:
			return ErrInvalidStorageConfigs
		}
	}
	if cfg.Storage.DB.MaxOpenConns < 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

// driverFromDSN guesses the database driver from the shape of dsn.
// SQLite DSNs are file URIs, ":memory:" or paths ending in ".db";
// everything else is treated as PostgreSQL.
func driverFromDSN(dsn string) string {
	switch {
	case strings.HasPrefix(dsn, "file:"),
		strings.HasPrefix(dsn, ":memory:"),
		strings.HasSuffix(dsn, ".db"),
		strings.HasSuffix(dsn, ".sqlite"):
		return DriverSQLite
	default:
		return DriverPostgres
	}
}
