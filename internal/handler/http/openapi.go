// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/swaggest/jsonschema-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/MKhiriev/go-restaurante/internal/config"
	"github.com/MKhiriev/go-restaurante/internal/logger"
	"github.com/MKhiriev/go-restaurante/models"
)

const restaurantTag = "Restaurante"

// apiOperation describes one documented route.
type apiOperation struct {
	method      string
	path        string
	summary     string
	pathParam   string
	paramSchema any
	requestBody bool
	status      int
	description string
	response    any
}

var apiOperations = []apiOperation{
	{
		method:      http.MethodGet,
		path:        "/restaurantes",
		summary:     "Retorna uma lista de restaurantes",
		status:      http.StatusOK,
		description: "Retorna um array com os restaurantes encontrados",
		response:    []models.Restaurant{},
	},
	{
		method:      http.MethodGet,
		path:        "/restaurantes/{id}",
		summary:     "Retorna um restaurante através de um ID",
		pathParam:   "id",
		paramSchema: int64(0),
		status:      http.StatusOK,
		description: "Busca um restaurante no banco através de um Id informado",
		response:    models.Restaurant{},
	},
	{
		method:      http.MethodPost,
		path:        "/restaurantes",
		summary:     "Cria um restaurante",
		requestBody: true,
		status:      http.StatusCreated,
		description: "Salva um restaurante no banco",
		response:    models.Restaurant{},
	},
	{
		method:      http.MethodPut,
		path:        "/restaurantes/{id}",
		summary:     "Atualiza o restaurante",
		pathParam:   "id",
		paramSchema: int64(0),
		requestBody: true,
		status:      http.StatusOK,
		description: "Atualiza um restaurante com os dados informados",
		response:    models.Restaurant{},
	},
	{
		method:      http.MethodDelete,
		path:        "/restaurantes/{id}",
		summary:     "Deleta o restaurante",
		pathParam:   "id",
		paramSchema: int64(0),
		status:      http.StatusNoContent,
		description: "Remove um restaurante do sistema",
	},
	{
		method:      http.MethodGet,
		path:        "/restaurantes/nome/{nome}",
		summary:     "Retorna uma lista de restaurantes baseados no nome",
		pathParam:   "nome",
		paramSchema: "",
		status:      http.StatusOK,
		description: "Retorna um array com os restaurantes encontrados que tenham o nome informado",
		response:    []models.Restaurant{},
	},
	{
		method:      http.MethodGet,
		path:        "/restaurantes/endereco/{endereco}",
		summary:     "Retorna uma lista de restaurantes baseados no endereço",
		pathParam:   "endereco",
		paramSchema: "",
		status:      http.StatusOK,
		description: "Retorna um array com os restaurantes encontrados que tenham o endereço informado",
		response:    []models.Restaurant{},
	},
	{
		method:      http.MethodGet,
		path:        "/restaurantes/cozinha/{cozinha}",
		summary:     "Retorna uma lista de restaurantes baseados na cozinha",
		pathParam:   "cozinha",
		paramSchema: "",
		status:      http.StatusOK,
		description: "Retorna um array com os restaurantes encontrados que tenham a cozinha informada",
		response:    []models.Restaurant{},
	},
}

// buildOpenAPIDocument renders the OpenAPI 3 description of the restaurant
// routes as JSON.
func buildOpenAPIDocument(app config.App) ([]byte, error) {
	spec := &openapi3.Spec{
		Openapi: "3.0.3",
		Info: openapi3.Info{
			Title:   app.Title,
			Version: app.Version,
		},
		Tags: []openapi3.Tag{
			{Name: restaurantTag, Description: ptr("Métodos ligados a classe Restaurante")},
		},
	}
	if app.Description != "" {
		spec.Info.Description = ptr(app.Description)
	}
	if app.ContactName != "" || app.ContactEmail != "" {
		spec.Info.Contact = &openapi3.Contact{}
		if app.ContactName != "" {
			spec.Info.Contact.Name = ptr(app.ContactName)
		}
		if app.ContactEmail != "" {
			spec.Info.Contact.Email = ptr(app.ContactEmail)
		}
	}

	for _, op := range apiOperations {
		operation, err := op.definition()
		if err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrBuildingOpenAPI, op.method, op.path, err)
		}
		if err = spec.AddOperation(op.method, op.path, operation); err != nil {
			return nil, fmt.Errorf("%w: %s %s: %w", ErrBuildingOpenAPI, op.method, op.path, err)
		}
	}

	document, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingOpenAPI, err)
	}
	return document, nil
}

func (op apiOperation) definition() (openapi3.Operation, error) {
	operation := openapi3.Operation{
		Tags:    []string{restaurantTag},
		Summary: ptr(op.summary),
		Responses: openapi3.Responses{
			MapOfResponseOrRefValues: make(map[string]openapi3.ResponseOrRef),
		},
	}

	if op.pathParam != "" {
		schema, err := reflectSchema(op.paramSchema)
		if err != nil {
			return openapi3.Operation{}, err
		}
		operation.Parameters = append(operation.Parameters, openapi3.ParameterOrRef{
			Parameter: &openapi3.Parameter{
				Name:     op.pathParam,
				In:       openapi3.ParameterInPath,
				Required: ptr(true),
				Schema:   schema,
			},
		})
	}

	if op.requestBody {
		schema, err := reflectSchema(models.Restaurant{})
		if err != nil {
			return openapi3.Operation{}, err
		}
		operation.RequestBody = &openapi3.RequestBodyOrRef{
			RequestBody: &openapi3.RequestBody{
				Required: ptr(true),
				Content: map[string]openapi3.MediaType{
					"application/json": {Schema: schema},
				},
			},
		}
	}

	success := &openapi3.Response{Description: op.description}
	if op.response != nil {
		schema, err := reflectSchema(op.response)
		if err != nil {
			return openapi3.Operation{}, err
		}
		success.Content = map[string]openapi3.MediaType{
			"application/json": {Schema: schema},
		}
	}
	operation.Responses.MapOfResponseOrRefValues[strconv.Itoa(op.status)] = openapi3.ResponseOrRef{Response: success}

	if op.pathParam == "id" {
		operation.Responses.MapOfResponseOrRefValues[strconv.Itoa(http.StatusBadRequest)] = openapi3.ResponseOrRef{
			Response: &openapi3.Response{Description: "Id não numérico"},
		}
		operation.Responses.MapOfResponseOrRefValues[strconv.Itoa(http.StatusNotFound)] = openapi3.ResponseOrRef{
			Response: &openapi3.Response{Description: "Restaurante não encontrado"},
		}
	} else if op.requestBody {
		operation.Responses.MapOfResponseOrRefValues[strconv.Itoa(http.StatusBadRequest)] = openapi3.ResponseOrRef{
			Response: &openapi3.Response{Description: "JSON inválido"},
		}
	}

	return operation, nil
}

func reflectSchema(value any) (*openapi3.SchemaOrRef, error) {
	var reflector jsonschema.Reflector

	jsonSchema, err := reflector.Reflect(value, jsonschema.InlineRefs)
	if err != nil {
		return nil, err
	}

	var schemaOrRef openapi3.SchemaOrRef
	schemaOrRef.FromJSONSchema(jsonSchema.ToSchemaOrBool())
	return &schemaOrRef, nil
}

func ptr[T any](v T) *T {
	return &v
}

func (h *Handler) getOpenAPIDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(h.openAPIDocument); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing openapi document")
	}
}
