// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics records every request under its chi route pattern. The pattern
// is only complete after routing, so it is read once the handler returned.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.metrics.RequestStarted()

		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		status := mw.status
		if status == 0 {
			status = http.StatusOK
		}

		var route string
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		h.metrics.RequestFinished(r.Method, route, status, time.Since(start))
	})
}
