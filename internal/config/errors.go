// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by validate when required configuration groups
// are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or negative timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an unknown database driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
