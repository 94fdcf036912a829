// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/utils"
	"github.com/MKhiriev/go-restaurante/models"
)

type httpRestaurantAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPRestaurantAdapter constructs a resty-backed [RestaurantAdapter].
// The address may be "host:port" or a full URL; plain addresses get the
// http scheme.
func NewHTTPRestaurantAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (RestaurantAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpRestaurantAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRestaurantAdapter) List(ctx context.Context) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&restaurants).
		Get("/restaurantes")
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(restaurants), nil
}

func (h *httpRestaurantAdapter) Get(ctx context.Context, id int64) (models.Restaurant, error) {
	var restaurant models.Restaurant

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&restaurant).
		Get("/restaurantes/{id}")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Restaurant{}, err
	}

	return restaurant, nil
}

func (h *httpRestaurantAdapter) Create(ctx context.Context, restaurant models.Restaurant) (models.Restaurant, error) {
	var created models.Restaurant

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(restaurant).
		SetResult(&created).
		Post("/restaurantes")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("create request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Restaurant{}, err
	}

	return created, nil
}

func (h *httpRestaurantAdapter) Update(ctx context.Context, id int64, restaurant models.Restaurant) (models.Restaurant, error) {
	var updated models.Restaurant

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetBody(restaurant).
		SetResult(&updated).
		Put("/restaurantes/{id}")
	if err != nil {
		return models.Restaurant{}, fmt.Errorf("update request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Restaurant{}, err
	}

	return updated, nil
}

func (h *httpRestaurantAdapter) Delete(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete("/restaurantes/{id}")
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpRestaurantAdapter) SearchByName(ctx context.Context, name string) ([]models.Restaurant, error) {
	return h.search(ctx, "nome", name)
}

func (h *httpRestaurantAdapter) SearchByAddress(ctx context.Context, address string) ([]models.Restaurant, error) {
	return h.search(ctx, "endereco", address)
}

func (h *httpRestaurantAdapter) SearchByCuisine(ctx context.Context, cuisineType string) ([]models.Restaurant, error) {
	return h.search(ctx, "cozinha", cuisineType)
}

// search calls /restaurantes/{field}/{text}. resty path-escapes text, so
// slashes and spaces stay inside one segment.
func (h *httpRestaurantAdapter) search(ctx context.Context, field, text string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("text", text).
		SetResult(&restaurants).
		Get("/restaurantes/" + field + "/{text}")
	if err != nil {
		return nil, fmt.Errorf("search by %s request: %w", field, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return nonNil(restaurants), nil
}

func (h *httpRestaurantAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func nonNil(restaurants []models.Restaurant) []models.Restaurant {
	if restaurants == nil {
		return []models.Restaurant{}
	}
	return restaurants
}
