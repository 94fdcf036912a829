// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

// memoryRestaurantRepository keeps restaurants in a map guarded by a RWMutex.
// Ids are taken from a counter that only grows, so a deleted id is never
// handed out again.
type memoryRestaurantRepository struct {
	mu          sync.RWMutex
	restaurants map[int64]models.Restaurant
	lastID      int64
	logger      *logger.Logger
}

// NewMemoryRestaurantRepository constructs an empty in-memory
// [RestaurantRepository].
func NewMemoryRestaurantRepository(logger *logger.Logger) RestaurantRepository {
	logger.Debug().Msg("creating in-memory restaurant repository")
	return &memoryRestaurantRepository{
		restaurants: make(map[int64]models.Restaurant),
		logger:      logger,
	}
}

func (m *memoryRestaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	return m.filter(ctx, func(models.Restaurant) bool { return true })
}

func (m *memoryRestaurantRepository) FindByID(ctx context.Context, id int64) (models.Lookup[models.Restaurant], error) {
	if err := ctx.Err(); err != nil {
		return models.NotFound[models.Restaurant](), err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	restaurant, ok := m.restaurants[id]
	if !ok {
		return models.NotFound[models.Restaurant](), nil
	}
	return models.Found(restaurant), nil
}

func (m *memoryRestaurantRepository) Save(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return models.Restaurant{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if restaurant.IsNew() {
		m.lastID++
		restaurant = restaurant.WithID(m.lastID)
	} else if restaurant.ID > m.lastID {
		m.lastID = restaurant.ID
	}

	m.restaurants[restaurant.ID] = restaurant
	return restaurant, nil
}

func (m *memoryRestaurantRepository) DeleteByID(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.restaurants, id)
	return nil
}

func (m *memoryRestaurantRepository) FindByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	return m.filter(ctx, func(r models.Restaurant) bool { return containsFold(r.Name, name) })
}

func (m *memoryRestaurantRepository) FindByAddress(ctx context.Context, address string) ([]models.Restaurant, error) {
	return m.filter(ctx, func(r models.Restaurant) bool { return containsFold(r.Address, address) })
}

func (m *memoryRestaurantRepository) FindByCuisineType(ctx context.Context, cuisineType string) ([]models.Restaurant, error) {
	return m.filter(ctx, func(r models.Restaurant) bool { return containsFold(r.CuisineType, cuisineType) })
}

// filter returns the restaurants matching keep, ordered by id.
func (m *memoryRestaurantRepository) filter(ctx context.Context, keep func(models.Restaurant) bool) ([]models.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	results := make([]models.Restaurant, 0, len(m.restaurants))
	for _, r := range m.restaurants {
		if keep(r) {
			results = append(results, r)
		}
	}

	slices.SortFunc(results, func(a, b models.Restaurant) int {
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
		return 0
	})

	return results, nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
