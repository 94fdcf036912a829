// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for the JSON file source.
// Durations are accepted either as strings ("30s") or as nanosecond numbers.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		LogLevel     string `json:"log_level"`
		Title        string `json:"title"`
		Description  string `json:"description"`
		ContactName  string `json:"contact_name"`
		ContactEmail string `json:"contact_email"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn"`
			Driver       string `json:"driver"`
			MaxOpenConns int    `json:"max_open_conns"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string   `json:"http_address"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:      jsonCfg.App.Version,
			LogLevel:     jsonCfg.App.LogLevel,
			Title:        jsonCfg.App.Title,
			Description:  jsonCfg.App.Description,
			ContactName:  jsonCfg.App.ContactName,
			ContactEmail: jsonCfg.App.ContactEmail,
		},
		Storage: Storage{
			DB: DB{
				DSN:          jsonCfg.Storage.DB.DSN,
				Driver:       jsonCfg.Storage.DB.Driver,
				MaxOpenConns: jsonCfg.Storage.DB.MaxOpenConns,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
