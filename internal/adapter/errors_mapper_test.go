// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithStatus(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantErr     error
		wantNil     bool
		wantMessage string
	}{
		{name: "200", status: http.StatusOK, wantNil: true},
		{name: "201", status: http.StatusCreated, wantNil: true},
		{name: "204", status: http.StatusNoContent, wantNil: true},
		{name: "400", status: http.StatusBadRequest, body: "invalid restaurant id", wantErr: ErrBadRequest, wantMessage: "invalid restaurant id"},
		{name: "404 empty body", status: http.StatusNotFound, wantErr: ErrNotFound, wantMessage: "Not Found"},
		{name: "500", status: http.StatusInternalServerError, body: "Internal Server Error", wantErr: ErrInternalServerError},
		{name: "503", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "418 unmapped", status: http.StatusTeapot, body: "tea", wantMessage: "http 418: tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWithStatus(t, tt.status, tt.body))

			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMessage != "" {
				assert.Contains(t, err.Error(), tt.wantMessage)
			}
		})
	}
}
