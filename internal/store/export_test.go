// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// NewDB exposes newDB to the external store_test package, which uses the
// generated mocks and therefore cannot live inside package store.
var NewDB = newDB
