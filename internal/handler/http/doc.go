// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the restaurant API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, Prometheus metrics and response compression are handled in
// this package before requests are delegated to the service layer. The
// OpenAPI document of the routes is generated once at startup.
package http
