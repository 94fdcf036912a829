// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/models"
)

func TestWithMetrics_RecordsRoutePattern(t *testing.T) {
	h, restaurants, _ := newMockedHandler(t)
	restaurants.EXPECT().GetByID(gomock.Any(), int64(1)).Return(models.Restaurant{ID: 1}, nil)
	restaurants.EXPECT().GetByID(gomock.Any(), int64(2)).Return(models.Restaurant{}, service.ErrRestaurantNotFound)

	router := h.Init()
	for _, path := range []string{"/restaurantes/1", "/restaurantes/2", "/nope"} {
		rec := serveRouter(router, http.MethodGet, path)
		require.NotZero(t, rec.Code)
	}

	rec := serveRouter(router, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `restaurante_http_requests_total{method="GET",route="/restaurantes/{id}",status="200"} 1`)
	assert.Contains(t, body, `restaurante_http_requests_total{method="GET",route="/restaurantes/{id}",status="404"} 1`)
	assert.Contains(t, body, `restaurante_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
	assert.Contains(t, body, `restaurante_http_request_duration_seconds_bucket`)
	assert.Contains(t, body, `restaurante_http_requests_in_flight 1`, "the /metrics request itself is in flight")
}
