// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities shared by the HTTP
// server and the client adapter: JSON request and response helpers, path id
// parsing, trace id generation and HTTP client initialization.
package utils
