// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"key": "value"}

	n, err := WriteJSON(w, data, http.StatusCreated)

	require.NoError(t, err)
	assert.NotZero(t, n)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	expected, _ := json.Marshal(data)
	assert.Equal(t, string(expected), w.Body.String())
}

func TestWriteJSON_EmptySliceIsArray(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, []string{}, http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, "[]", w.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, math.Inf(1), http.StatusOK)

	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "valid object", body: `{"name":"Sabor"}`, want: "Sabor"},
		{name: "trailing whitespace", body: "{\"name\":\"Sabor\"}\n", want: "Sabor"},
		{name: "unknown fields are ignored", body: `{"name":"Sabor","extra":1}`, want: "Sabor"},
		{name: "empty body", body: "", wantErr: true},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "wrong type", body: `{"name":5}`, wantErr: true},
		{name: "trailing data", body: `{"name":"a"}{"name":"b"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := ReadJSON(strings.NewReader(tt.body), &got)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidJSON))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "9223372036854775807", want: math.MaxInt64},
		{raw: "0", want: 0},
		{raw: "-3", want: -3},
		{raw: "-9223372036854775808", want: math.MinInt64},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "1.5", wantErr: true},
		{raw: "9223372036854775808", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseID(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewTraceID(t *testing.T) {
	first := NewTraceID()
	second := NewTraceID()

	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}
