// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-restaurante/models"
)

const (
	restaurantsTable = "restaurants"

	columnID          = "id"
	columnName        = "name"
	columnAddress     = "address"
	columnCuisineType = "cuisine_type"
)

var restaurantColumns = []string{columnID, columnName, columnAddress, columnCuisineType}

// likeEscaper escapes LIKE wildcards so that user input is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildFindAllQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(restaurantColumns...).
		From(restaurantsTable).
		OrderBy(columnID).
		ToSql()
}

func buildFindByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}

// buildContainsQuery selects rows whose column contains text, ignoring case.
func buildContainsQuery(b sq.StatementBuilderType, column, text string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"

	return b.Select(restaurantColumns...).
		From(restaurantsTable).
		Where(sq.Expr(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column), pattern)).
		OrderBy(columnID).
		ToSql()
}

func buildInsertQuery(b sq.StatementBuilderType, r models.Restaurant) (string, []any, error) {
	return b.Insert(restaurantsTable).
		Columns(columnName, columnAddress, columnCuisineType).
		Values(r.Name, r.Address, r.CuisineType).
		Suffix("RETURNING " + columnID).
		ToSql()
}

// buildInsertWithIDQuery keeps the caller's id; used when a replace found no
// row to update.
func buildInsertWithIDQuery(b sq.StatementBuilderType, r models.Restaurant) (string, []any, error) {
	return b.Insert(restaurantsTable).
		Columns(restaurantColumns...).
		Values(r.ID, r.Name, r.Address, r.CuisineType).
		ToSql()
}

func buildUpdateQuery(b sq.StatementBuilderType, r models.Restaurant) (string, []any, error) {
	return b.Update(restaurantsTable).
		Set(columnName, r.Name).
		Set(columnAddress, r.Address).
		Set(columnCuisineType, r.CuisineType).
		Where(sq.Eq{columnID: r.ID}).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(restaurantsTable).
		Where(sq.Eq{columnID: id}).
		ToSql()
}
