// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

func seedRestaurants(t *testing.T, repo RestaurantRepository) []models.Restaurant {
	t.Helper()

	input := []models.Restaurant{
		{Name: "Sabor Caseiro", Address: "Rua A, 10", CuisineType: "Brasileira"},
		{Name: "Sushi Bar", Address: "Avenida B, 20", CuisineType: "Japonesa"},
		{Name: "Cantina do Sabor", Address: "Rua C, 30", CuisineType: "Italiana"},
	}

	saved := make([]models.Restaurant, 0, len(input))
	for _, r := range input {
		s, err := repo.Save(context.Background(), r)
		require.NoError(t, err)
		saved = append(saved, s)
	}
	return saved
}

// restaurantRepositoryContract runs the behaviour every RestaurantRepository
// implementation must share.
func restaurantRepositoryContract(t *testing.T, newRepo func(t *testing.T) RestaurantRepository) {
	ctx := context.Background()

	t.Run("empty store lists nothing", func(t *testing.T) {
		repo := newRepo(t)
		got, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("save assigns increasing ids", func(t *testing.T) {
		repo := newRepo(t)
		saved := seedRestaurants(t, repo)
		assert.Equal(t, int64(1), saved[0].ID)
		assert.Equal(t, int64(2), saved[1].ID)
		assert.Equal(t, int64(3), saved[2].ID)
	})

	t.Run("find by id", func(t *testing.T) {
		repo := newRepo(t)
		saved := seedRestaurants(t, repo)

		lookup, err := repo.FindByID(ctx, saved[1].ID)
		require.NoError(t, err)
		got, ok := lookup.Value()
		require.True(t, ok)
		assert.Equal(t, saved[1], got)

		lookup, err = repo.FindByID(ctx, 999)
		require.NoError(t, err)
		assert.False(t, lookup.IsFound())
	})

	t.Run("save with id replaces", func(t *testing.T) {
		repo := newRepo(t)
		saved := seedRestaurants(t, repo)

		replaced := models.Restaurant{ID: saved[0].ID, Name: "Novo Nome", Address: "", CuisineType: "Mineira"}
		got, err := repo.Save(ctx, replaced)
		require.NoError(t, err)
		assert.Equal(t, replaced, got)

		lookup, err := repo.FindByID(ctx, saved[0].ID)
		require.NoError(t, err)
		stored, _ := lookup.Value()
		assert.Equal(t, replaced, stored)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("delete removes and ids are not reused", func(t *testing.T) {
		repo := newRepo(t)
		saved := seedRestaurants(t, repo)

		require.NoError(t, repo.DeleteByID(ctx, saved[2].ID))
		require.NoError(t, repo.DeleteByID(ctx, 999))

		lookup, err := repo.FindByID(ctx, saved[2].ID)
		require.NoError(t, err)
		assert.False(t, lookup.IsFound())

		next, err := repo.Save(ctx, models.Restaurant{Name: "Outro"})
		require.NoError(t, err)
		assert.Equal(t, int64(4), next.ID)
	})

	t.Run("searches are case-insensitive substring matches ordered by id", func(t *testing.T) {
		repo := newRepo(t)
		saved := seedRestaurants(t, repo)

		byName, err := repo.FindByName(ctx, "SABOR")
		require.NoError(t, err)
		assert.Equal(t, []models.Restaurant{saved[0], saved[2]}, byName)

		byAddress, err := repo.FindByAddress(ctx, "avenida")
		require.NoError(t, err)
		assert.Equal(t, []models.Restaurant{saved[1]}, byAddress)

		byCuisine, err := repo.FindByCuisineType(ctx, "ital")
		require.NoError(t, err)
		assert.Equal(t, []models.Restaurant{saved[2]}, byCuisine)

		none, err := repo.FindByName(ctx, "Churrascaria")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)
	})

	t.Run("wildcards are matched literally", func(t *testing.T) {
		repo := newRepo(t)
		seedRestaurants(t, repo)

		got, err := repo.FindByName(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestMemoryRestaurantRepository(t *testing.T) {
	restaurantRepositoryContract(t, func(t *testing.T) RestaurantRepository {
		return NewMemoryRestaurantRepository(logger.Nop())
	})
}

func TestMemoryRestaurantRepository_CanceledContext(t *testing.T) {
	repo := NewMemoryRestaurantRepository(logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = repo.Save(ctx, models.Restaurant{Name: "x"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryRestaurantRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryRestaurantRepository(logger.Nop())

	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(context.Background(), models.Restaurant{Name: "concurrent"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 50)
	for i, r := range all {
		assert.Equal(t, int64(i+1), r.ID)
	}
}
