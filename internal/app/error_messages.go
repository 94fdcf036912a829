// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// restaurant API handlers and the command-line client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries. Keeping them in one place keeps the
// wording identical between the routes.
package app

const (
	// MsgInvalidJSON is returned when a request body is not a single
	// well-formed Restaurant JSON object.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidRestaurantID is returned when the {id} path segment is not a
	// positive integer.
	MsgInvalidRestaurantID = "invalid restaurant id"
)
