// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-restaurante/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/restaurant_service_mock.go -package=mock -exclude_interfaces=RestaurantServiceWrapper

// RestaurantService is the resource access layer of the restaurant API.
// Update and Delete look the record up first and fail with
// [ErrRestaurantNotFound] when it is absent.
type RestaurantService interface {
	List(ctx context.Context) ([]models.Restaurant, error)
	GetByID(ctx context.Context, id int64) (models.Restaurant, error)
	Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error)
	Update(ctx context.Context, id int64, restaurant models.Restaurant) (models.Restaurant, error)
	Delete(ctx context.Context, id int64) error

	SearchByName(ctx context.Context, name string) ([]models.Restaurant, error)
	SearchByAddress(ctx context.Context, address string) ([]models.Restaurant, error)
	SearchByCuisine(ctx context.Context, cuisineType string) ([]models.Restaurant, error)
}

// AppInfoService exposes build and version information of the running
// application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// RestaurantServiceWrapper defines middleware composition for RestaurantService.
// Implementations wrap an existing RestaurantService to add behavior such as
// logging.
type RestaurantServiceWrapper interface {
	Wrap(RestaurantService) RestaurantService // returns a decorated RestaurantService applying additional behavior
}
