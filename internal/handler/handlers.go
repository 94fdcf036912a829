// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/handler/http"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the transport handlers for every configured address.
// storage is used by the health check and may be nil.
func NewHandlers(services *service.Services, storage store.Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, storage, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
