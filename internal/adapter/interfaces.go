// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-restaurante/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/restaurant_adapter_mock.go -package=mock

// RestaurantAdapter is the client side of the /restaurantes API. Non-2xx
// answers are returned as errors wrapping ErrBadRequest, ErrNotFound,
// ErrInternalServerError or ErrServiceUnavailable.
type RestaurantAdapter interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	Get(ctx context.Context, id int64) (models.Restaurant, error)
	Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	Update(ctx context.Context, id int64, restaurant models.Restaurant) (models.Restaurant, error)
	Delete(ctx context.Context, id int64) error

	SearchByName(ctx context.Context, name string) ([]models.Restaurant, error)
	SearchByAddress(ctx context.Context, address string) ([]models.Restaurant, error)
	SearchByCuisine(ctx context.Context, cuisineType string) ([]models.Restaurant, error)

	// Version returns the plain-text version reported by the server.
	Version(ctx context.Context) (string, error)
}
