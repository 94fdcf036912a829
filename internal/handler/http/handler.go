// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/metrics"
	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/internal/store"
)

type Handler struct {
	services *service.Services
	storage  store.Pinger
	metrics  *metrics.HTTPMetrics

	openAPIDocument []byte
	cfg             config.Server

	logger *logger.Logger
}

// NewHandler prepares the HTTP layer: it renders the OpenAPI document once
// and creates the request metrics. storage is pinged by the health check.
func NewHandler(services *service.Services, storage store.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	document, err := buildOpenAPIDocument(cfg.App)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:        services,
		storage:         storage,
		metrics:         metrics.NewHTTPMetrics(),
		openAPIDocument: document,
		cfg:             cfg.Server,
		logger:          logger,
	}, nil
}
