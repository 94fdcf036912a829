// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-restaurante/internal/adapter"
	"github.com/MKhiriev/go-restaurante/internal/client"
	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("restaurante-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	restaurantAdapter, err := adapter.NewHTTPRestaurantAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(restaurantAdapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
