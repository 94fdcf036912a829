// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrRestaurantNotFound is returned when the requested id does not exist
	// in the store.
	ErrRestaurantNotFound = errors.New("restaurant not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
