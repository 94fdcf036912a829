// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

// restaurantRepository is the SQL implementation of [RestaurantRepository].
// It works against the "restaurants" table on both PostgreSQL and SQLite;
// dialect differences are confined to the placeholder format of the embedded
// [*DB] statement builder.
type restaurantRepository struct {
	*DB
	logger *logger.Logger
}

// NewRestaurantRepository constructs a [RestaurantRepository] backed by db.
func NewRestaurantRepository(db *DB, logger *logger.Logger) RestaurantRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating restaurant repository")
	return &restaurantRepository{
		DB:     db,
		logger: logger,
	}
}

// FindAll returns every restaurant ordered by id.
func (r *restaurantRepository) FindAll(ctx context.Context) ([]models.Restaurant, error) {
	query, args, err := buildFindAllQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRestaurants(ctx, "*restaurantRepository.FindAll", query, args)
}

// FindByID looks a restaurant up by primary key. A missing row is reported as
// [models.NotFound], not as an error.
func (r *restaurantRepository) FindByID(ctx context.Context, id int64) (models.Lookup[models.Restaurant], error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindByIDQuery(r.builder, id)
	if err != nil {
		return models.NotFound[models.Restaurant](), fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var restaurant models.Restaurant
	err = r.DB.QueryRowContext(ctx, query, args...).
		Scan(&restaurant.ID, &restaurant.Name, &restaurant.Address, &restaurant.CuisineType)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.NotFound[models.Restaurant](), nil
	case err != nil:
		log.Err(err).
			Str("func", "*restaurantRepository.FindByID").
			Int64("id", id).
			Msg("failed to query restaurant")
		return models.NotFound[models.Restaurant](), r.wrap(ErrScanningRow, err)
	}

	return models.Found(restaurant), nil
}

// Save inserts a new restaurant when its ID is zero, otherwise it replaces all
// fields of the row with that id. A replace that matches no row falls back to
// an insert that keeps the given id.
func (r *restaurantRepository) Save(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	if restaurant.IsNew() {
		return r.insert(ctx, restaurant)
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(r.builder, restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.Save").
			Int64("id", restaurant.ID).
			Msg("failed to update restaurant")
		return models.Restaurant{}, r.wrap(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Restaurant{}, r.wrap(ErrExecutingStatement, err)
	}
	if affected > 0 {
		return restaurant, nil
	}

	log.Debug().
		Str("func", "*restaurantRepository.Save").
		Int64("id", restaurant.ID).
		Msg("no row updated, inserting with explicit id")

	return r.insertWithID(ctx, restaurant)
}

// DeleteByID removes the row with the given id. Deleting a missing row is not
// an error.
func (r *restaurantRepository) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.DeleteByID").
			Int64("id", id).
			Msg("failed to delete restaurant")
		return r.wrap(ErrExecutingStatement, err)
	}

	return nil
}

func (r *restaurantRepository) FindByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	return r.findContaining(ctx, "*restaurantRepository.FindByName", columnName, name)
}

func (r *restaurantRepository) FindByAddress(ctx context.Context, address string) ([]models.Restaurant, error) {
	return r.findContaining(ctx, "*restaurantRepository.FindByAddress", columnAddress, address)
}

func (r *restaurantRepository) FindByCuisineType(ctx context.Context, cuisineType string) ([]models.Restaurant, error) {
	return r.findContaining(ctx, "*restaurantRepository.FindByCuisineType", columnCuisineType, cuisineType)
}

func (r *restaurantRepository) findContaining(ctx context.Context, funcName, column, text string) ([]models.Restaurant, error) {
	query, args, err := buildContainsQuery(r.builder, column, text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryRestaurants(ctx, funcName, query, args)
}

func (r *restaurantRepository) insert(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(r.builder, restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.insert").
			Str("name", restaurant.Name).
			Msg("failed to insert restaurant")
		return models.Restaurant{}, r.wrap(ErrExecutingStatement, err)
	}

	return restaurant.WithID(id), nil
}

func (r *restaurantRepository) insertWithID(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertWithIDQuery(r.builder, restaurant)
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*restaurantRepository.insertWithID").
			Int64("id", restaurant.ID).
			Msg("failed to insert restaurant")
		return models.Restaurant{}, r.wrap(ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.Restaurant{}, ErrRestaurantNotSaved
	}

	return restaurant, nil
}

func (r *restaurantRepository) queryRestaurants(ctx context.Context, funcName, query string, args []any) ([]models.Restaurant, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, r.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Restaurant, 0)
	for rows.Next() {
		var item models.Restaurant
		if err = rows.Scan(&item.ID, &item.Name, &item.Address, &item.CuisineType); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, r.wrap(ErrScanningRows, err)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error during rows iteration")
		return nil, r.wrap(ErrScanningRows, err)
	}

	return results, nil
}
