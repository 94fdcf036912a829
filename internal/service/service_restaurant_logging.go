// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

// RestaurantLoggingService logs every call of the wrapped RestaurantService
// with the request-scoped logger.
type RestaurantLoggingService struct {
	inner RestaurantService
}

func NewRestaurantLoggingService() RestaurantServiceWrapper {
	return &RestaurantLoggingService{}
}

func (l *RestaurantLoggingService) Wrap(wrapped RestaurantService) RestaurantService {
	l.inner = wrapped
	return l
}

func (l *RestaurantLoggingService) List(ctx context.Context) ([]models.Restaurant, error) {
	start := time.Now()
	restaurants, err := l.inner.List(ctx)
	logCall(ctx, "List", start, err).Int("count", len(restaurants)).Send()
	return restaurants, err
}

func (l *RestaurantLoggingService) GetByID(ctx context.Context, id int64) (models.Restaurant, error) {
	start := time.Now()
	restaurant, err := l.inner.GetByID(ctx, id)
	logCall(ctx, "GetByID", start, err).Int64("id", id).Send()
	return restaurant, err
}

func (l *RestaurantLoggingService) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	start := time.Now()
	created, err := l.inner.Create(ctx, restaurant)
	logCall(ctx, "Create", start, err).Int64("id", created.ID).Send()
	return created, err
}

func (l *RestaurantLoggingService) Update(ctx context.Context, id int64, restaurant models.Restaurant) (models.Restaurant, error) {
	start := time.Now()
	updated, err := l.inner.Update(ctx, id, restaurant)
	logCall(ctx, "Update", start, err).Int64("id", id).Send()
	return updated, err
}

func (l *RestaurantLoggingService) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := l.inner.Delete(ctx, id)
	logCall(ctx, "Delete", start, err).Int64("id", id).Send()
	return err
}

func (l *RestaurantLoggingService) SearchByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	start := time.Now()
	restaurants, err := l.inner.SearchByName(ctx, name)
	logCall(ctx, "SearchByName", start, err).Str("name", name).Int("count", len(restaurants)).Send()
	return restaurants, err
}

func (l *RestaurantLoggingService) SearchByAddress(ctx context.Context, address string) ([]models.Restaurant, error) {
	start := time.Now()
	restaurants, err := l.inner.SearchByAddress(ctx, address)
	logCall(ctx, "SearchByAddress", start, err).Str("address", address).Int("count", len(restaurants)).Send()
	return restaurants, err
}

func (l *RestaurantLoggingService) SearchByCuisine(ctx context.Context, cuisineType string) ([]models.Restaurant, error) {
	start := time.Now()
	restaurants, err := l.inner.SearchByCuisine(ctx, cuisineType)
	logCall(ctx, "SearchByCuisine", start, err).Str("cuisine_type", cuisineType).Int("count", len(restaurants)).Send()
	return restaurants, err
}

// logCall starts a log event for a finished service call. Not-found is an
// expected outcome and is logged at info level, other errors at error level.
func logCall(ctx context.Context, operation string, start time.Time, err error) *zerolog.Event {
	log := logger.FromContext(ctx)

	var event *zerolog.Event
	switch {
	case err == nil:
		event = log.Debug()
	case errors.Is(err, ErrRestaurantNotFound):
		event = log.Info().Err(err)
	default:
		event = log.Err(err)
	}

	return event.
		Str("func", "RestaurantService."+operation).
		Dur("duration", time.Since(start))
}
