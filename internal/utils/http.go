// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

var (
	// ErrInvalidID is returned by ParseID for anything that is not a
	// decimal int64.
	ErrInvalidID = errors.New("invalid id")

	// ErrInvalidJSON is returned by ReadJSON when the body is not a single
	// well-formed JSON value.
	ErrInvalidJSON = errors.New("invalid JSON")
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes exactly one JSON value from r into dst. An empty body,
// malformed JSON or trailing data after the value yield [ErrInvalidJSON].
func ReadJSON(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrInvalidJSON)
	}

	return nil
}

// ParseID converts a path segment into an int64 id. Zero and negative ids are
// valid input; they are simply never present in the store.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidID, raw, err)
	}
	return id, nil
}
