// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// LogLevel is the minimal level the client logs at.
	LogLevel string
	// Args holds the positional arguments left after flag parsing
	// (the client command and its operands).
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads env, flags and the optional JSON file exactly like
// [GetStructuredConfig], maps only the fields relevant to the client runtime,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
		Args:     b.args,
	}

	return clientCfg, clientCfg.validate()
}
