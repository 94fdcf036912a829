// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Restaurant is the only resource exposed by the service.
//
// ID is assigned by the store on creation and never changes afterwards.
// A zero ID means the record has not been persisted yet.
type Restaurant struct {
	// ID is the store-assigned identifier of the restaurant.
	ID int64 `json:"id,omitempty" db:"id" description:"Identificador gerado pelo banco"`

	// Name is the restaurant's display name. Searchable.
	Name string `json:"name" db:"name" description:"Nome do restaurante"`

	// Address is the restaurant's street address. Searchable.
	Address string `json:"address" db:"address" description:"Endereço do restaurante"`

	// CuisineType describes the kind of food served (e.g. "Brasileira"). Searchable.
	CuisineType string `json:"cuisineType" db:"cuisine_type" description:"Tipo de cozinha"`
}

// IsNew reports whether r has not been assigned an ID by the store yet.
func (r Restaurant) IsNew() bool {
	return r.ID == 0
}

// WithID returns a copy of r carrying the given id.
func (r Restaurant) WithID(id int64) Restaurant {
	r.ID = id
	return r
}
