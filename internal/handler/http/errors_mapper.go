// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-restaurante/internal/service"
	"github.com/MKhiriev/go-restaurante/internal/store"
	"github.com/MKhiriev/go-restaurante/internal/utils"
)

// errorStatusMap is checked in order; the first match wins. Store errors
// wrapped with store.ErrStoreUnavailable also wrap a step error, so the
// unavailable entry has to come first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrRestaurantNotFound, http.StatusNotFound},
	{utils.ErrInvalidID, http.StatusBadRequest},
	{utils.ErrInvalidJSON, http.StatusBadRequest},

	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
	{store.ErrRestaurantNotSaved, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Not-found carries an
// empty body, every other status its short plain-text description.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFromError(err)
	if status == http.StatusNotFound {
		w.WriteHeader(status)
		return status
	}

	http.Error(w, http.StatusText(status), status)
	return status
}
