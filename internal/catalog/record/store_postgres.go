// Copyright (c) 2026 Geodex. All rights reserved.

package record

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geodexhq/geodex/internal/catalog/metadata"
	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/database/schema"
	"github.com/geodexhq/geodex/internal/platform/dberr"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// # Browse Store

// Store serves the descriptor-driven sub-record queries.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL backed browse store.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ownershipJoin builds the joins that connect a sub-record row to the root
// metadata row carrying the owner, aliased as m.
func ownershipJoin(descriptor Descriptor) string {
	if descriptor.ViaIdentification {
		return fmt.Sprintf(
			" JOIN %s i ON c.%s = i.%s JOIN %s m ON i.%s = m.%s",
			schema.CatalogIdentification.Table,
			descriptor.ParentKey,
			schema.CatalogIdentification.ID,
			schema.CatalogMetadata.Table,
			schema.CatalogIdentification.MetadataID,
			schema.CatalogMetadata.ID,
		)
	}
	return fmt.Sprintf(
		" JOIN %s m ON c.%s = m.%s",
		schema.CatalogMetadata.Table,
		descriptor.ParentKey,
		schema.CatalogMetadata.ID,
	)
}

// selectList prefixes every column with the sub-record alias.
func selectList(descriptor Descriptor) string {
	columns := make([]string, len(descriptor.Columns))
	for i, column := range descriptor.Columns {
		columns[i] = "c." + column
	}
	return strings.Join(columns, ", ")
}

// idColumn and createdAtColumn exploit the descriptor column convention:
// primary key first, timestamps last.
func idColumn(descriptor Descriptor) string {
	return descriptor.Columns[0]
}

func createdAtColumn(descriptor Descriptor) string {
	return descriptor.Columns[len(descriptor.Columns)-2]
}

/*
List returns one owner-scoped page of a sub-record type, newest first, plus
the total count (COUNT(*) OVER() window).

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - descriptor: Which sub-record type to browse
  - params: Pagination parameters

Returns:
  - []any: The page of entities (concrete catalog domain types)
  - int: Total rows within scope
  - error: Retrieval failures
*/
func (store *Store) List(context context.Context, scope metadata.Scope, descriptor Descriptor, params pagination.Params) ([]any, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s, COUNT(*) OVER() AS total_count FROM %s c%s WHERE TRUE",
		selectList(descriptor), descriptor.Table, ownershipJoin(descriptor),
	))
	if !scope.Unrestricted() {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s = $%d", schema.CatalogMetadata.UserID, argID))
		args = append(args, scope.UserID)
		argID++
	}
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY c.%s DESC", createdAtColumn(descriptor)))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, params.Limit, params.Offset())

	rows, err := store.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "record_list_failed")
	}
	defer rows.Close()

	var entities []any
	var total int
	for rows.Next() {
		entity, targets := descriptor.NewEntity()
		targets = append(targets, &total)
		if err := rows.Scan(targets...); err != nil {
			return nil, 0, dberr.Wrap(err, "record_list_scan_failed")
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "record_list_rows_failed")
	}
	return entities, total, nil
}

/*
Get returns one owner-scoped sub-record by id.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - descriptor: Which sub-record type to fetch
  - id: Sub-record identifier

Returns:
  - any: The entity (concrete catalog domain type)
  - error: apperr.NotFound (missing or out of scope) or retrieval failures
*/
func (store *Store) Get(context context.Context, scope metadata.Scope, descriptor Descriptor, id string) (any, error) {

	var queryBuilder strings.Builder
	args := []any{id}

	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s FROM %s c%s WHERE c.%s = $1",
		selectList(descriptor), descriptor.Table, ownershipJoin(descriptor),
		idColumn(descriptor),
	))
	if !scope.Unrestricted() {
		queryBuilder.WriteString(fmt.Sprintf(" AND m.%s = $2", schema.CatalogMetadata.UserID))
		args = append(args, scope.UserID)
	}

	entity, targets := descriptor.NewEntity()
	err := store.pool.QueryRow(context, queryBuilder.String(), args...).Scan(targets...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(descriptor.Label + " not found")
		}
		return nil, dberr.Wrap(err, "record_get_failed")
	}
	return entity, nil
}
