// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, withLogging, h.withMetrics, middleware.Recoverer, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Route("/restaurantes", func(r chi.Router) {
		r.Get("/", h.listRestaurants)
		r.Post("/", h.createRestaurant)

		r.Get("/{id}", h.getRestaurant)
		r.Put("/{id}", h.updateRestaurant)
		r.Delete("/{id}", h.deleteRestaurant)

		r.Get("/nome/{nome}", h.searchByName)
		r.Get("/endereco/{endereco}", h.searchByAddress)
		r.Get("/cozinha/{cozinha}", h.searchByCuisine)
	})

	// service routes
	router.Group(func(r chi.Router) {
		r.Get("/openapi.json", h.getOpenAPIDocument)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/healthz", h.healthCheck)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
