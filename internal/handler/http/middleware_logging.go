// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-restaurante/internal/logger"
)

// withLogging writes one access log entry per request using the logger that
// withTraceID put into the request context. Server errors are logged at warn
// level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.WithLevel(zerolog.WarnLevel)
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if route := rctx.RoutePattern(); route != "" {
				event = event.Str("route", route)
			}
		}

		event.
			Str("uri", uri).
			Str("method", method).
			Str("remote_addr", r.RemoteAddr).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
