// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-restaurante/internal/app"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/internal/utils"
	"github.com/MKhiriev/go-restaurante/models"
)

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	restaurants, err := h.services.RestaurantService.List(r.Context())
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("error listing restaurants")
		return
	}

	if _, err = utils.WriteJSON(w, restaurants, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing restaurants")
	}
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Err(err).Msg(app.MsgInvalidRestaurantID)
		http.Error(w, app.MsgInvalidRestaurantID, http.StatusBadRequest)
		return
	}

	restaurant, err := h.services.RestaurantService.GetByID(r.Context(), id)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int64("id", id).Int("status", status).Msg("error getting restaurant")
		return
	}

	if _, err = utils.WriteJSON(w, restaurant, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing restaurant")
	}
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var restaurant models.Restaurant
	if err := utils.ReadJSON(r.Body, &restaurant); err != nil {
		log.Debug().Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.RestaurantService.Create(r.Context(), restaurant)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int("status", status).Msg("error creating restaurant")
		return
	}

	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing created restaurant")
	}
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Err(err).Msg(app.MsgInvalidRestaurantID)
		http.Error(w, app.MsgInvalidRestaurantID, http.StatusBadRequest)
		return
	}

	var restaurant models.Restaurant
	if err = utils.ReadJSON(r.Body, &restaurant); err != nil {
		log.Debug().Err(err).Msg(app.MsgInvalidJSON)
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.RestaurantService.Update(r.Context(), id, restaurant)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Int64("id", id).Int("status", status).Msg("error updating restaurant")
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing updated restaurant")
	}
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		log.Debug().Err(err).Msg(app.MsgInvalidRestaurantID)
		http.Error(w, app.MsgInvalidRestaurantID, http.StatusBadRequest)
		return
	}

	if err = h.services.RestaurantService.Delete(r.Context(), id); err != nil {
		status := writeError(w, err)
		log.Err(err).Int64("id", id).Int("status", status).Msg("error deleting restaurant")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchByName(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "nome", h.services.RestaurantService.SearchByName)
}

func (h *Handler) searchByAddress(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "endereco", h.services.RestaurantService.SearchByAddress)
}

func (h *Handler) searchByCuisine(w http.ResponseWriter, r *http.Request) {
	h.search(w, r, "cozinha", h.services.RestaurantService.SearchByCuisine)
}

// pathParam returns the decoded URL parameter. chi reads parameters from the
// raw path when the request path carries escapes such as %2F.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}

// searchFunc is one of the RestaurantService search methods.
type searchFunc func(ctx context.Context, text string) ([]models.Restaurant, error)

func (h *Handler) search(w http.ResponseWriter, r *http.Request, param string, find searchFunc) {
	log := logger.FromRequest(r)

	text := pathParam(r, param)
	restaurants, err := find(r.Context(), text)
	if err != nil {
		status := writeError(w, err)
		log.Err(err).Str(param, text).Int("status", status).Msg("error searching restaurants")
		return
	}

	if _, err = utils.WriteJSON(w, restaurants, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing restaurants")
	}
}
