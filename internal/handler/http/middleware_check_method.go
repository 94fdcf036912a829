// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A known path requested with an unsupported method answers 404 instead of
// chi's default 405. Requests whose method does match, including ones under
// mounted subrouters, are served by router as usual.
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// notFound answers paths no route knows with the same empty 404 that an
// absent restaurant gets.
func notFound(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNotFound)
}
