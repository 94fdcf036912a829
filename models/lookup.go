// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Lookup is the result of fetching a single record by its identity.
// It has exactly two variants: Found, carrying the record, and NotFound.
//
// Store failures are reported separately through an error value, so a
// NotFound lookup always means "the record does not exist".
type Lookup[T any] struct {
	value T
	found bool
}

// Found constructs the variant holding an existing record.
func Found[T any](value T) Lookup[T] {
	return Lookup[T]{value: value, found: true}
}

// NotFound constructs the variant signalling an absent record.
func NotFound[T any]() Lookup[T] {
	return Lookup[T]{}
}

// Value returns the record and true for Found, or the zero value and false
// for NotFound.
func (l Lookup[T]) Value() (T, bool) {
	return l.value, l.found
}

// IsFound reports whether l is the Found variant.
func (l Lookup[T]) IsFound() bool {
	return l.found
}
