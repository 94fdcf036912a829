// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the HTTP API.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics counts and times served requests, labelled by route pattern
// rather than raw path so that ids do not blow up label cardinality.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge

	gatherer prometheus.Gatherer
}

// NewHTTPMetrics registers the collectors on a fresh registry that also
// carries the Go runtime and process collectors.
func NewHTTPMetrics() *HTTPMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return newHTTPMetricsWithRegistry(registry, registry)
}

func newHTTPMetricsWithRegistry(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *HTTPMetrics {
	return &HTTPMetrics{
		requestsTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "restaurante_http_requests_total",
			Help: "Total number of HTTP requests served",
		}, []string{"method", "route", "status"}),
		requestDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "restaurante_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "route"}),
		inFlight: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "restaurante_http_requests_in_flight",
			Help: "Number of HTTP requests currently being served",
		}),
		gatherer: gatherer,
	}
}

// RequestStarted marks a request as in flight.
func (m *HTTPMetrics) RequestStarted() {
	m.inFlight.Inc()
}

// RequestFinished records a completed request.
func (m *HTTPMetrics) RequestFinished(method, route string, status int, duration time.Duration) {
	m.inFlight.Dec()
	if route == "" {
		route = "unmatched"
	}
	m.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler serves the collected metrics in the Prometheus exposition format.
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	counter := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(counter); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return counter
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	histogram := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(histogram); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return histogram
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	gauge := prometheus.NewGauge(opts)
	if err := registerer.Register(gauge); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			if existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge); ok {
				return existing
			}
		}
		panic(err)
	}
	return gauge
}
