// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/store"
	"github.com/MKhiriev/go-restaurante/models"
)

// restaurantService delegates to the repository. It keeps no state of its
// own: existence is checked against the store on every Update and Delete.
//
// The check and the following write are two separate store calls, so a
// concurrent delete may slip in between them.
type restaurantService struct {
	restaurantRepository store.RestaurantRepository

	logger *logger.Logger
}

func NewRestaurantService(restaurantRepository store.RestaurantRepository, logger *logger.Logger) RestaurantService {
	return &restaurantService{
		restaurantRepository: restaurantRepository,
		logger:               logger,
	}
}

func (s *restaurantService) List(ctx context.Context) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing restaurants: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) GetByID(ctx context.Context, id int64) (models.Restaurant, error) {
	lookup, err := s.restaurantRepository.FindByID(ctx, id)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error finding restaurant %d: %w", id, err)
	}

	restaurant, ok := lookup.Value()
	if !ok {
		return models.Restaurant{}, ErrRestaurantNotFound
	}
	return restaurant, nil
}

// Create ignores any id sent by the client so that it can never overwrite an
// existing record.
func (s *restaurantService) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	created, err := s.restaurantRepository.Save(ctx, restaurant.WithID(0))
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error creating restaurant: %w", err)
	}
	return created, nil
}

// Update fully replaces the stored restaurant. The path id always wins over
// the id in the payload.
func (s *restaurantService) Update(ctx context.Context, id int64, restaurant models.Restaurant) (models.Restaurant, error) {
	lookup, err := s.restaurantRepository.FindByID(ctx, id)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error finding restaurant %d: %w", id, err)
	}
	if !lookup.IsFound() {
		return models.Restaurant{}, ErrRestaurantNotFound
	}

	updated, err := s.restaurantRepository.Save(ctx, restaurant.WithID(id))
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("error updating restaurant %d: %w", id, err)
	}
	return updated, nil
}

func (s *restaurantService) Delete(ctx context.Context, id int64) error {
	lookup, err := s.restaurantRepository.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("error finding restaurant %d: %w", id, err)
	}
	if !lookup.IsFound() {
		return ErrRestaurantNotFound
	}

	if err = s.restaurantRepository.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("error deleting restaurant %d: %w", id, err)
	}
	return nil
}

func (s *restaurantService) SearchByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching restaurants by name: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) SearchByAddress(ctx context.Context, address string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.FindByAddress(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("error searching restaurants by address: %w", err)
	}
	return restaurants, nil
}

func (s *restaurantService) SearchByCuisine(ctx context.Context, cuisineType string) ([]models.Restaurant, error) {
	restaurants, err := s.restaurantRepository.FindByCuisineType(ctx, cuisineType)
	if err != nil {
		return nil, fmt.Errorf("error searching restaurants by cuisine type: %w", err)
	}
	return restaurants, nil
}
