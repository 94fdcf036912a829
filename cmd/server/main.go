// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/handler"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/server"
	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/internal/store"
	"github.com/MKhiriev/go-restaurante/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("restaurante-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("server", cfg.Server).Any("app", cfg.App).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
