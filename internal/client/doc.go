// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the restaurant API.
//
// A command and its operands are taken from the positional arguments, sent
// to the server through the adapter, and the answer is printed as JSON.
package client
