// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/utils"
)

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status, code := "ok", http.StatusOK
	if h.storage != nil {
		if err := h.storage.PingContext(r.Context()); err != nil {
			log.Err(err).Msg("health check failed")
			status, code = "unavailable", http.StatusServiceUnavailable
		}
	}

	if _, err := utils.WriteJSON(w, map[string]string{"status": status}, code); err != nil {
		log.Err(err).Msg("error writing health status")
	}
}
