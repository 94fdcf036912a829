// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.applyDefaults()

	return config, config.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, rest, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	b.args = rest
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

// applyDefaults fills the zero-valued fields that have a sensible default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Version == "" {
		cfg.App.Version = DefaultVersion
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.App.Title == "" {
		cfg.App.Title = DefaultTitle
	}
	if cfg.App.Description == "" {
		cfg.App.Description = DefaultDescription
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.Driver == "" && cfg.Storage.DB.DSN != "" {
		cfg.Storage.DB.Driver = driverFromDSN(cfg.Storage.DB.DSN)
	}
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = cfg.Server.HTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
}
