// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a resty-backed client that sends every request to
// baseURL, gives up after timeout and asks for JSON responses. A zero timeout
// leaves the request unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/restaurantes")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
