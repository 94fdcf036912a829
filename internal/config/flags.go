// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
// It returns the parsed config and the positional arguments left after the
// last flag.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-s server address used by the client, in format [host]:[port] or URL
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout (e.g., "10s")
//	-log-level log level (debug, info, warn, error)
//	-app-version application version
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var shutdownTimeout time.Duration
	var logLevel string
	var appVersion string

	fs := flag.NewFlagSet("restaurante", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 10s)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&appVersion, "app-version", "", "Application version")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  appVersion,
			LogLevel: logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:     serverAddress.String(),
			RequestTimeout:  requestTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
