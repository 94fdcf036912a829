// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/handler"
	"github.com/MKhiriev/go-restaurante/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

// run serves until ctx is cancelled or the listener fails.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil {
		return errNoServersToRun
	}

	serveErr := make(chan error, 1)

	s.logger.Info().Msg("Launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.Shutdown()
	<-serveErr
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
