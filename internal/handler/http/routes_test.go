// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/internal/store"
	"github.com/MKhiriev/go-restaurante/models"
)

// newInMemoryHandler wires the real services over the in-memory store.
func newInMemoryHandler(t *testing.T) *Handler {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	services, err := service.NewServices(storages, testConfig(), logger.Nop())
	require.NoError(t, err)

	h, err := NewHandler(services, storages, testConfig(), logger.Nop())
	require.NoError(t, err)
	return h
}

func TestRoutes_CreateGetDeleteScenario(t *testing.T) {
	h := newInMemoryHandler(t)

	rec := serve(h, http.MethodPost, "/restaurantes",
		`{"name":"Sabor Caseiro","address":"Rua A, 10","cuisineType":"Brasileira"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeRestaurant(t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, sabor().WithID(1), created)

	rec = serve(h, http.MethodGet, "/restaurantes/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created, decodeRestaurant(t, rec))

	rec = serve(h, http.MethodDelete, "/restaurantes/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())

	rec = serve(h, http.MethodGet, "/restaurantes/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestRoutes_UpdateIsFullReplaceKeepingPathID(t *testing.T) {
	h := newInMemoryHandler(t)

	rec := serve(h, http.MethodPost, "/restaurantes",
		`{"name":"Sabor Caseiro","address":"Rua A, 10","cuisineType":"Brasileira"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodPut, "/restaurantes/1", `{"id":77,"name":"Cantina"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.Restaurant{ID: 1, Name: "Cantina"}, decodeRestaurant(t, rec))

	rec = serve(h, http.MethodGet, "/restaurantes/77", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodPut, "/restaurantes/5", `{"name":"Fantasma"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/restaurantes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRestaurants(t, rec), 1)
}

func TestRoutes_AbsentIDsAreNotFound(t *testing.T) {
	h := newInMemoryHandler(t)
	require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/restaurantes",
		`{"name":"Sabor Caseiro","address":"Rua A, 10","cuisineType":"Brasileira"}`).Code)

	for _, id := range []string{"0", "-1", "-9223372036854775808", "999"} {
		for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
			t.Run(method+" "+id, func(t *testing.T) {
				body := ""
				if method == http.MethodPut {
					body = `{"name":"Fantasma"}`
				}

				rec := serve(h, method, "/restaurantes/"+id, body)

				assert.Equal(t, http.StatusNotFound, rec.Code)
				assert.Zero(t, rec.Body.Len())
			})
		}
	}

	rec := serve(h, http.MethodGet, "/restaurantes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []models.Restaurant{sabor().WithID(1)}, decodeRestaurants(t, rec))
}

func TestRoutes_NotFoundStaysEmptyForGzipClients(t *testing.T) {
	h := newInMemoryHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/restaurantes/999", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestRoutes_UnknownPathsAreEmptyNotFound(t *testing.T) {
	h := newInMemoryHandler(t)

	for _, path := range []string{"/restaurantes/nome/", "/restaurantes/1/extra", "/nada"} {
		t.Run(path, func(t *testing.T) {
			rec := serve(h, http.MethodGet, path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Zero(t, rec.Body.Len())
		})
	}
}

func TestRoutes_ListAndSearch(t *testing.T) {
	h := newInMemoryHandler(t)

	rec := serve(h, http.MethodGet, "/restaurantes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	seed := []string{
		`{"name":"Sabor Caseiro","address":"Rua A, 10","cuisineType":"Brasileira"}`,
		`{"name":"Cantina Italiana","address":"Av. Brasil, 200","cuisineType":"Italiana"}`,
		`{"name":"Sabor do Mar","address":"Rua das Flores, 5","cuisineType":"Frutos do Mar"}`,
	}
	for _, body := range seed {
		require.Equal(t, http.StatusCreated, serve(h, http.MethodPost, "/restaurantes", body).Code)
	}

	rec = serve(h, http.MethodGet, "/restaurantes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeRestaurants(t, rec), len(seed))

	tests := []struct {
		path    string
		wantIDs []int64
	}{
		{"/restaurantes/nome/sabor", []int64{1, 3}},
		{"/restaurantes/nome/Cantina%20Italiana", []int64{2}},
		{"/restaurantes/endereco/rua", []int64{1, 3}},
		{"/restaurantes/cozinha/italiana", []int64{2}},
		{"/restaurantes/cozinha/Japonesa", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(h, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusOK, rec.Code)

			ids := []int64{}
			for _, r := range decodeRestaurants(t, rec) {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestRoutes_IDsAreNotReused(t *testing.T) {
	h := newInMemoryHandler(t)
	body := `{"name":"Sabor Caseiro","address":"Rua A, 10","cuisineType":"Brasileira"}`

	var last int64
	for i := 0; i < 3; i++ {
		rec := serve(h, http.MethodPost, "/restaurantes", body)
		require.Equal(t, http.StatusCreated, rec.Code)
		last = decodeRestaurant(t, rec).ID
	}
	require.Equal(t, http.StatusNoContent, serve(h, http.MethodDelete, "/restaurantes/"+strconv.FormatInt(last, 10), "").Code)

	rec := serve(h, http.MethodPost, "/restaurantes", body)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Greater(t, decodeRestaurant(t, rec).ID, last)
}

func TestRoutes_HealthzInMemory(t *testing.T) {
	h := newInMemoryHandler(t)

	rec := serve(h, http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
