// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-restaurante/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/restaurant_repository_mock.go -package=mock

// RestaurantRepository is the persistence port of the restaurant resource.
//
// FindByID reports absence through the returned [models.Lookup]; the error is
// reserved for store faults. The three Find* searches share one policy:
// case-insensitive substring match, ordered by id ascending.
type RestaurantRepository interface {
	FindAll(ctx context.Context) ([]models.Restaurant, error)
	FindByID(ctx context.Context, id int64) (models.Lookup[models.Restaurant], error)
	// Save inserts restaurant when its ID is zero and assigns a new id,
	// otherwise it replaces the stored record with the same id.
	Save(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByName(ctx context.Context, name string) ([]models.Restaurant, error)
	FindByAddress(ctx context.Context, address string) ([]models.Restaurant, error)
	FindByCuisineType(ctx context.Context, cuisineType string) ([]models.Restaurant, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Pinger is implemented by storages that can report their liveness.
type Pinger interface {
	PingContext(ctx context.Context) error
}
