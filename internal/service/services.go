// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/store"
)

type Services struct {
	RestaurantService RestaurantService
	AppInfoService    AppInfoService
}

// NewServices builds the service layer on top of storages. The restaurant
// service is wrapped with call logging.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	restaurantService := NewRestaurantLoggingService().
		Wrap(NewRestaurantService(storages.RestaurantRepository, logger))

	return &Services{
		RestaurantService: restaurantService,
		AppInfoService:    appInfoService,
	}, nil
}
