// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"context"

	"github.com/geodexhq/geodex/pkg/pagination"
)

// # Aggregate Data Access

// Repository defines the persistence contract for metadata aggregates.
//
// Every read and write receives the caller's [Scope]; implementations apply
// it as a predicate so out-of-scope rows are indistinguishable from missing
// ones. Aggregate writes are atomic: root and sub-records commit together or
// not at all.
type Repository interface {

	/*
		Create persists a brand-new aggregate (root plus supplied sub-records)
		in a single transaction.

		Parameters:
		  - context: context.Context
		  - record: *Metadata (IDs and timestamps already assigned)

		Returns:
		  - error: Constraint violations or connectivity failures
	*/
	Create(context context.Context, record *Metadata) error

	/*
		FindByID returns the fully hydrated aggregate with the given ID, if it
		is inside the scope.

		Parameters:
		  - context: context.Context
		  - scope: Scope
		  - id: string

		Returns:
		  - *Metadata: Hydrated aggregate including all sub-records
		  - error: apperr.NotFound (missing or out of scope) or retrieval failures
	*/
	FindByID(context context.Context, scope Scope, id string) (*Metadata, error)

	/*
		List returns a page of hydrated aggregates matching the filter, inside
		the scope, ordered by creation time (newest first).

		Parameters:
		  - context: context.Context
		  - scope: Scope
		  - filter: Filter
		  - params: pagination.Params

		Returns:
		  - []*Metadata: Page of aggregates
		  - int: Total matching count
		  - error: Retrieval failures
	*/
	List(context context.Context, scope Scope, filter Filter, params pagination.Params) ([]*Metadata, int, error)

	/*
		Save persists an already-merged aggregate: the root row is updated and
		every present sub-record is upserted, all in one transaction. Absent
		sub-records are left untouched.

		Parameters:
		  - context: context.Context
		  - record: *Metadata

		Returns:
		  - error: Persistence failures
	*/
	Save(context context.Context, record *Metadata) error

	/*
		SaveMany persists several already-merged aggregates in one shared
		transaction: either every aggregate commits or none does.

		Parameters:
		  - context: context.Context
		  - records: []*Metadata

		Returns:
		  - error: Persistence failures (the whole batch is rolled back)
	*/
	SaveMany(context context.Context, records []*Metadata) error

	/*
		UpdateStatus overwrites only the status column of the root row.

		Parameters:
		  - context: context.Context
		  - id: string
		  - status: Status

		Returns:
		  - error: Persistence failures
	*/
	UpdateStatus(context context.Context, id string, status Status) error

	/*
		Delete removes the aggregate with the given ID, if it is inside the
		scope. Sub-records are deleted first, then the root, all in one
		transaction.

		Parameters:
		  - context: context.Context
		  - scope: Scope
		  - id: string

		Returns:
		  - error: apperr.NotFound (missing or out of scope) or deletion failures
	*/
	Delete(context context.Context, scope Scope, id string) error

	/*
		DeleteMany removes every in-scope aggregate among the given IDs and
		reports how many were actually deleted. Out-of-scope and unknown IDs
		are skipped silently.

		Parameters:
		  - context: context.Context
		  - scope: Scope
		  - ids: []string

		Returns:
		  - int: Number of deleted aggregates
		  - error: Deletion failures
	*/
	DeleteMany(context context.Context, scope Scope, ids []string) (int, error)
}
