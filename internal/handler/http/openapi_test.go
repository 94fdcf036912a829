// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-restaurante/internal/config"
)

type openAPIDocument struct {
	Openapi string `json:"openapi"`
	Info    struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Version     string `json:"version"`
		Contact     *struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"contact"`
	} `json:"info"`
	Tags []struct {
		Name string `json:"name"`
	} `json:"tags"`
	Paths map[string]map[string]struct {
		Tags       []string                   `json:"tags"`
		Summary    string                     `json:"summary"`
		Parameters []map[string]any           `json:"parameters"`
		Responses  map[string]json.RawMessage `json:"responses"`
	} `json:"paths"`
}

func parseOpenAPI(t *testing.T, document []byte) openAPIDocument {
	t.Helper()
	var doc openAPIDocument
	require.NoError(t, json.Unmarshal(document, &doc))
	return doc
}

func TestBuildOpenAPIDocument_Info(t *testing.T) {
	document, err := buildOpenAPIDocument(testConfig().App)
	require.NoError(t, err)

	doc := parseOpenAPI(t, document)
	assert.True(t, strings.HasPrefix(doc.Openapi, "3."))
	assert.Equal(t, "IFSul Restaurante API", doc.Info.Title)
	assert.Equal(t, "API de Busca de Restaurantes do IFSul", doc.Info.Description)
	assert.Equal(t, "0.0.1", doc.Info.Version)
	require.NotNil(t, doc.Info.Contact)
	assert.Equal(t, "IFSul", doc.Info.Contact.Name)
	assert.Equal(t, "contato@ifsul.edu.br", doc.Info.Contact.Email)

	require.Len(t, doc.Tags, 1)
	assert.Equal(t, restaurantTag, doc.Tags[0].Name)
}

func TestBuildOpenAPIDocument_NoContact(t *testing.T) {
	document, err := buildOpenAPIDocument(config.App{Title: "t", Version: "1"})
	require.NoError(t, err)

	doc := parseOpenAPI(t, document)
	assert.Nil(t, doc.Info.Contact)
	assert.Empty(t, doc.Info.Description)
}

func TestBuildOpenAPIDocument_Operations(t *testing.T) {
	document, err := buildOpenAPIDocument(testConfig().App)
	require.NoError(t, err)
	doc := parseOpenAPI(t, document)

	for _, op := range apiOperations {
		t.Run(op.method+" "+op.path, func(t *testing.T) {
			methods, ok := doc.Paths[op.path]
			require.True(t, ok, "path %s is not documented", op.path)

			operation, ok := methods[strings.ToLower(op.method)]
			require.True(t, ok, "method %s is not documented", op.method)

			assert.Equal(t, op.summary, operation.Summary)
			assert.Equal(t, []string{restaurantTag}, operation.Tags)
			assert.Contains(t, operation.Responses, strconv.Itoa(op.status))

			if op.pathParam != "" {
				require.Len(t, operation.Parameters, 1)
				assert.Equal(t, op.pathParam, operation.Parameters[0]["name"])
				assert.Equal(t, "path", operation.Parameters[0]["in"])
			}
			if op.pathParam == "id" {
				require.Contains(t, operation.Responses, "400")
				assert.Contains(t, string(operation.Responses["400"]), "Id não numérico")
				assert.Contains(t, operation.Responses, "404")
			}
		})
	}
}

func TestBuildOpenAPIDocument_CoversEveryRestaurantRoute(t *testing.T) {
	documented := make(map[string]bool)
	for _, op := range apiOperations {
		documented[op.method+" "+op.path] = true
	}

	for _, rc := range expectedRoutes {
		if !strings.HasPrefix(rc.pattern, "/restaurantes") {
			continue
		}
		path := strings.TrimSuffix(rc.pattern, "/")
		assert.Truef(t, documented[rc.method+" "+path], "%s %s is routed but not documented", rc.method, path)
	}
}

func TestGetOpenAPIDocument_ViaRouter(t *testing.T) {
	h, _, _ := newMockedHandler(t)

	rec := serve(h, http.MethodGet, "/openapi.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, string(h.openAPIDocument), rec.Body.String())
}
