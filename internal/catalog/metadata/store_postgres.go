// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/database/schema"
	"github.com/geodexhq/geodex/internal/platform/dberr"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// # PostgreSQL Repository

// querier is satisfied by both *pgxpool.Pool and pgx.Tx, so hydration and
// upsert helpers run identically inside and outside a transaction.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// metadataRepository implements the [Repository] interface using pgx.
//
// The aggregate spans ten tables. Writes always run in one transaction;
// reads hydrate nested blocks with batched ANY($1) lookups so a listing
// costs a fixed number of queries regardless of page size.
type metadataRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed catalog store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &metadataRepository{pool: pool}
}

// Create inserts the root row and every present nested block atomically.
func (repository *metadataRepository) Create(context context.Context, record *Metadata) error {

	// 1. Open the aggregate transaction.
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "catalog_create_begin_failed")
	}
	defer transaction.Rollback(context)

	// 2. Insert the root row.
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s, %s
	`,
		schema.CatalogMetadata.Table,
		schema.CatalogMetadata.ID,
		schema.CatalogMetadata.UserID,
		schema.CatalogMetadata.Status,
		schema.CatalogMetadata.MetadataLinkage,
		schema.CatalogMetadata.MetadataStandard,
		schema.CatalogMetadata.Language,
		schema.CatalogMetadata.CharacterSet,
		schema.CatalogMetadata.DateStamp,
		schema.CatalogMetadata.CreatedAt,
		schema.CatalogMetadata.UpdatedAt,
	)

	err = transaction.QueryRow(context, query,
		record.ID,
		record.UserID,
		record.Status,
		record.MetadataLinkage,
		record.MetadataStandard,
		record.Language,
		record.CharacterSet,
		record.DateStamp,
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_create_root_failed")
	}

	// 3. Persist nested blocks, then commit.
	if err := persistChildren(context, transaction, record); err != nil {
		return err
	}
	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "catalog_create_commit_failed")
	}
	return nil
}

// FindByID retrieves one fully hydrated aggregate.
//
// The scope predicate is part of the lookup itself: a record owned by
// someone else produces the exact same NotFound as a record that does not
// exist, so the API never leaks which ids are taken.
func (repository *metadataRepository) FindByID(context context.Context, scope Scope, id string) (*Metadata, error) {

	var queryBuilder strings.Builder
	args := []any{id}

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.CatalogMetadata.ID,
		schema.CatalogMetadata.UserID,
		schema.CatalogMetadata.Status,
		schema.CatalogMetadata.MetadataLinkage,
		schema.CatalogMetadata.MetadataStandard,
		schema.CatalogMetadata.Language,
		schema.CatalogMetadata.CharacterSet,
		schema.CatalogMetadata.DateStamp,
		schema.CatalogMetadata.CreatedAt,
		schema.CatalogMetadata.UpdatedAt,
		schema.CatalogMetadata.Table,
		schema.CatalogMetadata.ID,
	))
	if !scope.Unrestricted() {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $2", schema.CatalogMetadata.UserID))
		args = append(args, scope.UserID)
	}

	record := &Metadata{}
	err := repository.pool.QueryRow(context, queryBuilder.String(), args...).Scan(
		&record.ID,
		&record.UserID,
		&record.Status,
		&record.MetadataLinkage,
		&record.MetadataStandard,
		&record.Language,
		&record.CharacterSet,
		&record.DateStamp,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Metadata record not found")
		}
		return nil, dberr.Wrap(err, "catalog_find_failed")
	}

	if err := repository.hydrate(context, repository.pool, []*Metadata{record}); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns a filtered, newest-first page of hydrated aggregates and the
// total match count (via a COUNT(*) OVER() window, avoiding a second query).
func (repository *metadataRepository) List(context context.Context, scope Scope, filter Filter, params pagination.Params) ([]*Metadata, int, error) {

	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s,
			COUNT(*) OVER() AS total_count
		FROM %s
		WHERE TRUE
	`,
		schema.CatalogMetadata.ID,
		schema.CatalogMetadata.UserID,
		schema.CatalogMetadata.Status,
		schema.CatalogMetadata.MetadataLinkage,
		schema.CatalogMetadata.MetadataStandard,
		schema.CatalogMetadata.Language,
		schema.CatalogMetadata.CharacterSet,
		schema.CatalogMetadata.DateStamp,
		schema.CatalogMetadata.CreatedAt,
		schema.CatalogMetadata.UpdatedAt,
		schema.CatalogMetadata.Table,
	))

	// Scope filtering
	if !scope.Unrestricted() {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $%d", schema.CatalogMetadata.UserID, argID))
		args = append(args, scope.UserID)
		argID++
	}

	// Status filtering
	if len(filter.Status) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = ANY($%d)", schema.CatalogMetadata.Status, argID))
		args = append(args, filter.Status)
		argID++
	}

	// Creation window filtering
	if filter.StartDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s >= $%d", schema.CatalogMetadata.CreatedAt, argID))
		args = append(args, *filter.StartDate)
		argID++
	}
	if filter.EndDate != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s <= $%d", schema.CatalogMetadata.CreatedAt, argID))
		args = append(args, *filter.EndDate)
		argID++
	}

	// Title search via the identification block
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM %s i WHERE i.%s = %s.%s AND i.%s ILIKE $%d)",
			schema.CatalogIdentification.Table,
			schema.CatalogIdentification.MetadataID,
			schema.CatalogMetadata.Table, schema.CatalogMetadata.ID,
			schema.CatalogIdentification.Title,
			argID,
		))
		args = append(args, "%"+filter.Query+"%")
		argID++
	}

	// Newest first, id as tiebreaker
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY %s DESC, %s DESC",
		schema.CatalogMetadata.CreatedAt, schema.CatalogMetadata.ID))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, params.Limit, params.Offset())

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "catalog_list_failed")
	}
	defer rows.Close()

	var records []*Metadata
	var total int
	for rows.Next() {
		record := &Metadata{}
		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Status,
			&record.MetadataLinkage,
			&record.MetadataStandard,
			&record.Language,
			&record.CharacterSet,
			&record.DateStamp,
			&record.CreatedAt,
			&record.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "catalog_list_scan_failed")
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "catalog_list_rows_failed")
	}

	if err := repository.hydrate(context, repository.pool, records); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// Save persists an already-merged aggregate in one transaction.
func (repository *metadataRepository) Save(context context.Context, record *Metadata) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "catalog_save_begin_failed")
	}
	defer transaction.Rollback(context)

	if err := saveAggregate(context, transaction, record); err != nil {
		return err
	}
	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "catalog_save_commit_failed")
	}
	return nil
}

// SaveMany persists several aggregates in one shared transaction.
func (repository *metadataRepository) SaveMany(context context.Context, records []*Metadata) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "catalog_save_many_begin_failed")
	}
	defer transaction.Rollback(context)

	for _, record := range records {
		if err := saveAggregate(context, transaction, record); err != nil {
			return err
		}
	}
	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "catalog_save_many_commit_failed")
	}
	return nil
}

// UpdateStatus overwrites only the status column of the root row.
func (repository *metadataRepository) UpdateStatus(context context.Context, id string, status Status) error {
	query := fmt.Sprintf(`
		UPDATE %s SET %s = $1, %s = NOW() WHERE %s = $2
	`,
		schema.CatalogMetadata.Table,
		schema.CatalogMetadata.Status,
		schema.CatalogMetadata.UpdatedAt,
		schema.CatalogMetadata.ID,
	)

	tag, err := repository.pool.Exec(context, query, status, id)
	if err != nil {
		return dberr.Wrap(err, "catalog_update_status_failed")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Metadata record not found")
	}
	return nil
}

// Delete removes an aggregate and every nested block, children first.
func (repository *metadataRepository) Delete(context context.Context, scope Scope, id string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "catalog_delete_begin_failed")
	}
	defer transaction.Rollback(context)

	// 1. Resolve visibility before touching anything.
	visible, err := visibleIDs(context, transaction, scope, []string{id})
	if err != nil {
		return err
	}
	if len(visible) == 0 {
		return apperr.NotFound("Metadata record not found")
	}

	// 2. Cascade children, then the root.
	if err := deleteAggregates(context, transaction, visible); err != nil {
		return err
	}
	if err := transaction.Commit(context); err != nil {
		return dberr.Wrap(err, "catalog_delete_commit_failed")
	}
	return nil
}

// DeleteMany removes every visible record in ids and reports the count.
// Missing or out-of-scope ids are skipped, never reported.
func (repository *metadataRepository) DeleteMany(context context.Context, scope Scope, ids []string) (int, error) {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return 0, dberr.Wrap(err, "catalog_delete_many_begin_failed")
	}
	defer transaction.Rollback(context)

	visible, err := visibleIDs(context, transaction, scope, ids)
	if err != nil {
		return 0, err
	}
	if len(visible) == 0 {
		if err := transaction.Commit(context); err != nil {
			return 0, dberr.Wrap(err, "catalog_delete_many_commit_failed")
		}
		return 0, nil
	}

	if err := deleteAggregates(context, transaction, visible); err != nil {
		return 0, err
	}
	if err := transaction.Commit(context); err != nil {
		return 0, dberr.Wrap(err, "catalog_delete_many_commit_failed")
	}
	return len(visible), nil
}

// # Write Helpers

// saveAggregate updates the root row and upserts every present nested block
// within the supplied transaction.
func saveAggregate(context context.Context, transaction pgx.Tx, record *Metadata) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
		WHERE %s = $6
		RETURNING %s
	`,
		schema.CatalogMetadata.Table,
		schema.CatalogMetadata.MetadataLinkage,
		schema.CatalogMetadata.MetadataStandard,
		schema.CatalogMetadata.Language,
		schema.CatalogMetadata.CharacterSet,
		schema.CatalogMetadata.DateStamp,
		schema.CatalogMetadata.UpdatedAt,
		schema.CatalogMetadata.ID,
		schema.CatalogMetadata.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		record.MetadataLinkage,
		record.MetadataStandard,
		record.Language,
		record.CharacterSet,
		record.DateStamp,
		record.ID,
	).Scan(&record.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Metadata record not found")
		}
		return dberr.Wrap(err, "catalog_save_root_failed")
	}

	return persistChildren(context, transaction, record)
}

// persistChildren upserts every nested block present on the aggregate.
// Absent blocks are left untouched; partial updates never drop children.
func persistChildren(context context.Context, transaction pgx.Tx, record *Metadata) error {
	if info := record.Identification; info != nil {
		if err := upsertIdentification(context, transaction, info); err != nil {
			return err
		}
		if contact := info.PointOfContact; contact != nil {
			contact.IdentificationID = info.ID
			if err := upsertPointOfContact(context, transaction, contact); err != nil {
				return err
			}
		}
		if constraints := info.Constraints; constraints != nil {
			constraints.IdentificationID = info.ID
			if err := upsertConstraints(context, transaction, constraints); err != nil {
				return err
			}
		}
		if extent := info.TemporalExtent; extent != nil {
			extent.IdentificationID = info.ID
			if err := upsertTemporalExtent(context, transaction, extent); err != nil {
				return err
			}
		}
	}
	if dist := record.Distribution; dist != nil {
		if err := upsertDistribution(context, transaction, dist); err != nil {
			return err
		}
	}
	if lineage := record.Lineage; lineage != nil {
		if err := upsertLineage(context, transaction, lineage); err != nil {
			return err
		}
	}
	if system := record.ReferenceSystem; system != nil {
		if err := upsertReferenceSystem(context, transaction, system); err != nil {
			return err
		}
	}
	if contact := record.Contact; contact != nil {
		if err := upsertMetadataContact(context, transaction, contact); err != nil {
			return err
		}
	}
	if quality := record.Quality; quality != nil {
		if err := upsertQuality(context, transaction, quality); err != nil {
			return err
		}
	}
	return nil
}

// Each child table carries a UNIQUE constraint on its parent foreign key, so
// "insert or merge" is a single ON CONFLICT statement. RETURNING feeds the
// canonical id and timestamps back into the entity.

func upsertIdentification(context context.Context, transaction pgx.Tx, info *IdentificationInfo) error {
	keywords := info.Keywords
	if keywords == nil {
		keywords = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogIdentification.Table,
		schema.CatalogIdentification.ID,
		schema.CatalogIdentification.MetadataID,
		schema.CatalogIdentification.Title,
		schema.CatalogIdentification.ProductionDate,
		schema.CatalogIdentification.EditionDate,
		schema.CatalogIdentification.Abstract,
		schema.CatalogIdentification.SpatialRepType,
		schema.CatalogIdentification.EquivalentScale,
		schema.CatalogIdentification.BoundingBox,
		schema.CatalogIdentification.UpdateFrequency,
		schema.CatalogIdentification.Keywords,
		schema.CatalogIdentification.KeywordType,
		schema.CatalogIdentification.TopicCategory,
		schema.CatalogIdentification.MetadataID,
		schema.CatalogIdentification.Title, schema.CatalogIdentification.Title,
		schema.CatalogIdentification.ProductionDate, schema.CatalogIdentification.ProductionDate,
		schema.CatalogIdentification.EditionDate, schema.CatalogIdentification.EditionDate,
		schema.CatalogIdentification.Abstract, schema.CatalogIdentification.Abstract,
		schema.CatalogIdentification.SpatialRepType, schema.CatalogIdentification.SpatialRepType,
		schema.CatalogIdentification.EquivalentScale, schema.CatalogIdentification.EquivalentScale,
		schema.CatalogIdentification.BoundingBox, schema.CatalogIdentification.BoundingBox,
		schema.CatalogIdentification.UpdateFrequency, schema.CatalogIdentification.UpdateFrequency,
		schema.CatalogIdentification.Keywords, schema.CatalogIdentification.Keywords,
		schema.CatalogIdentification.KeywordType, schema.CatalogIdentification.KeywordType,
		schema.CatalogIdentification.TopicCategory, schema.CatalogIdentification.TopicCategory,
		schema.CatalogIdentification.UpdatedAt,
		schema.CatalogIdentification.ID,
		schema.CatalogIdentification.CreatedAt,
		schema.CatalogIdentification.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		info.ID,
		info.MetadataID,
		info.Title,
		info.ProductionDate,
		info.EditionDate,
		info.Abstract,
		info.SpatialRepType,
		info.EquivalentScale,
		info.BoundingBox,
		info.UpdateFrequency,
		keywords,
		info.KeywordType,
		info.TopicCategory,
	).Scan(&info.ID, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_identification_failed")
	}
	return nil
}

func upsertPointOfContact(context context.Context, transaction pgx.Tx, contact *PointOfContact) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogPointOfContact.Table,
		schema.CatalogPointOfContact.ID,
		schema.CatalogPointOfContact.IdentificationID,
		schema.CatalogPointOfContact.Name,
		schema.CatalogPointOfContact.Organization,
		schema.CatalogPointOfContact.Email,
		schema.CatalogPointOfContact.Phone,
		schema.CatalogPointOfContact.Address,
		schema.CatalogPointOfContact.Role,
		schema.CatalogPointOfContact.IdentificationID,
		schema.CatalogPointOfContact.Name, schema.CatalogPointOfContact.Name,
		schema.CatalogPointOfContact.Organization, schema.CatalogPointOfContact.Organization,
		schema.CatalogPointOfContact.Email, schema.CatalogPointOfContact.Email,
		schema.CatalogPointOfContact.Phone, schema.CatalogPointOfContact.Phone,
		schema.CatalogPointOfContact.Address, schema.CatalogPointOfContact.Address,
		schema.CatalogPointOfContact.Role, schema.CatalogPointOfContact.Role,
		schema.CatalogPointOfContact.UpdatedAt,
		schema.CatalogPointOfContact.ID,
		schema.CatalogPointOfContact.CreatedAt,
		schema.CatalogPointOfContact.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		contact.ID,
		contact.IdentificationID,
		contact.Name,
		contact.Organization,
		contact.Email,
		contact.Phone,
		contact.Address,
		contact.Role,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_point_of_contact_failed")
	}
	return nil
}

func upsertConstraints(context context.Context, transaction pgx.Tx, constraints *ResourceConstraints) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogResourceConstraints.Table,
		schema.CatalogResourceConstraints.ID,
		schema.CatalogResourceConstraints.IdentificationID,
		schema.CatalogResourceConstraints.AccessConstraints,
		schema.CatalogResourceConstraints.UseConstraints,
		schema.CatalogResourceConstraints.OtherConstraints,
		schema.CatalogResourceConstraints.IdentificationID,
		schema.CatalogResourceConstraints.AccessConstraints, schema.CatalogResourceConstraints.AccessConstraints,
		schema.CatalogResourceConstraints.UseConstraints, schema.CatalogResourceConstraints.UseConstraints,
		schema.CatalogResourceConstraints.OtherConstraints, schema.CatalogResourceConstraints.OtherConstraints,
		schema.CatalogResourceConstraints.UpdatedAt,
		schema.CatalogResourceConstraints.ID,
		schema.CatalogResourceConstraints.CreatedAt,
		schema.CatalogResourceConstraints.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		constraints.ID,
		constraints.IdentificationID,
		constraints.AccessConstraints,
		constraints.UseConstraints,
		constraints.OtherConstraints,
	).Scan(&constraints.ID, &constraints.CreatedAt, &constraints.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_constraints_failed")
	}
	return nil
}

func upsertTemporalExtent(context context.Context, transaction pgx.Tx, extent *TemporalExtent) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogTemporalExtent.Table,
		schema.CatalogTemporalExtent.ID,
		schema.CatalogTemporalExtent.IdentificationID,
		schema.CatalogTemporalExtent.StartDate,
		schema.CatalogTemporalExtent.EndDate,
		schema.CatalogTemporalExtent.Frequency,
		schema.CatalogTemporalExtent.IdentificationID,
		schema.CatalogTemporalExtent.StartDate, schema.CatalogTemporalExtent.StartDate,
		schema.CatalogTemporalExtent.EndDate, schema.CatalogTemporalExtent.EndDate,
		schema.CatalogTemporalExtent.Frequency, schema.CatalogTemporalExtent.Frequency,
		schema.CatalogTemporalExtent.UpdatedAt,
		schema.CatalogTemporalExtent.ID,
		schema.CatalogTemporalExtent.CreatedAt,
		schema.CatalogTemporalExtent.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		extent.ID,
		extent.IdentificationID,
		extent.StartDate,
		extent.EndDate,
		extent.Frequency,
	).Scan(&extent.ID, &extent.CreatedAt, &extent.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_temporal_extent_failed")
	}
	return nil
}

func upsertDistribution(context context.Context, transaction pgx.Tx, dist *Distribution) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogDistribution.Table,
		schema.CatalogDistribution.ID,
		schema.CatalogDistribution.MetadataID,
		schema.CatalogDistribution.Name,
		schema.CatalogDistribution.Address,
		schema.CatalogDistribution.PhoneNo,
		schema.CatalogDistribution.Weblink,
		schema.CatalogDistribution.Format,
		schema.CatalogDistribution.DistributorEmail,
		schema.CatalogDistribution.OrderProcess,
		schema.CatalogDistribution.MetadataID,
		schema.CatalogDistribution.Name, schema.CatalogDistribution.Name,
		schema.CatalogDistribution.Address, schema.CatalogDistribution.Address,
		schema.CatalogDistribution.PhoneNo, schema.CatalogDistribution.PhoneNo,
		schema.CatalogDistribution.Weblink, schema.CatalogDistribution.Weblink,
		schema.CatalogDistribution.Format, schema.CatalogDistribution.Format,
		schema.CatalogDistribution.DistributorEmail, schema.CatalogDistribution.DistributorEmail,
		schema.CatalogDistribution.OrderProcess, schema.CatalogDistribution.OrderProcess,
		schema.CatalogDistribution.UpdatedAt,
		schema.CatalogDistribution.ID,
		schema.CatalogDistribution.CreatedAt,
		schema.CatalogDistribution.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		dist.ID,
		dist.MetadataID,
		dist.Name,
		dist.Address,
		dist.PhoneNo,
		dist.Weblink,
		dist.Format,
		dist.DistributorEmail,
		dist.OrderProcess,
	).Scan(&dist.ID, &dist.CreatedAt, &dist.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_distribution_failed")
	}
	return nil
}

func upsertLineage(context context.Context, transaction pgx.Tx, lineage *ResourceLineage) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogLineage.Table,
		schema.CatalogLineage.ID,
		schema.CatalogLineage.MetadataID,
		schema.CatalogLineage.Statement,
		schema.CatalogLineage.HierarchyLevel,
		schema.CatalogLineage.ProcessSoftware,
		schema.CatalogLineage.ProcessDate,
		schema.CatalogLineage.MetadataID,
		schema.CatalogLineage.Statement, schema.CatalogLineage.Statement,
		schema.CatalogLineage.HierarchyLevel, schema.CatalogLineage.HierarchyLevel,
		schema.CatalogLineage.ProcessSoftware, schema.CatalogLineage.ProcessSoftware,
		schema.CatalogLineage.ProcessDate, schema.CatalogLineage.ProcessDate,
		schema.CatalogLineage.UpdatedAt,
		schema.CatalogLineage.ID,
		schema.CatalogLineage.CreatedAt,
		schema.CatalogLineage.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		lineage.ID,
		lineage.MetadataID,
		lineage.Statement,
		lineage.HierarchyLevel,
		lineage.ProcessSoftware,
		lineage.ProcessDate,
	).Scan(&lineage.ID, &lineage.CreatedAt, &lineage.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_lineage_failed")
	}
	return nil
}

func upsertReferenceSystem(context context.Context, transaction pgx.Tx, system *ReferenceSystem) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogReferenceSystem.Table,
		schema.CatalogReferenceSystem.ID,
		schema.CatalogReferenceSystem.MetadataID,
		schema.CatalogReferenceSystem.Identifier,
		schema.CatalogReferenceSystem.Code,
		schema.CatalogReferenceSystem.MetadataID,
		schema.CatalogReferenceSystem.Identifier, schema.CatalogReferenceSystem.Identifier,
		schema.CatalogReferenceSystem.Code, schema.CatalogReferenceSystem.Code,
		schema.CatalogReferenceSystem.UpdatedAt,
		schema.CatalogReferenceSystem.ID,
		schema.CatalogReferenceSystem.CreatedAt,
		schema.CatalogReferenceSystem.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		system.ID,
		system.MetadataID,
		system.Identifier,
		system.Code,
	).Scan(&system.ID, &system.CreatedAt, &system.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_reference_system_failed")
	}
	return nil
}

func upsertMetadataContact(context context.Context, transaction pgx.Tx, contact *MetadataContact) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogMetadataContact.Table,
		schema.CatalogMetadataContact.ID,
		schema.CatalogMetadataContact.MetadataID,
		schema.CatalogMetadataContact.Name,
		schema.CatalogMetadataContact.Organization,
		schema.CatalogMetadataContact.Email,
		schema.CatalogMetadataContact.Phone,
		schema.CatalogMetadataContact.Address,
		schema.CatalogMetadataContact.Role,
		schema.CatalogMetadataContact.Weblink,
		schema.CatalogMetadataContact.MetadataID,
		schema.CatalogMetadataContact.Name, schema.CatalogMetadataContact.Name,
		schema.CatalogMetadataContact.Organization, schema.CatalogMetadataContact.Organization,
		schema.CatalogMetadataContact.Email, schema.CatalogMetadataContact.Email,
		schema.CatalogMetadataContact.Phone, schema.CatalogMetadataContact.Phone,
		schema.CatalogMetadataContact.Address, schema.CatalogMetadataContact.Address,
		schema.CatalogMetadataContact.Role, schema.CatalogMetadataContact.Role,
		schema.CatalogMetadataContact.Weblink, schema.CatalogMetadataContact.Weblink,
		schema.CatalogMetadataContact.UpdatedAt,
		schema.CatalogMetadataContact.ID,
		schema.CatalogMetadataContact.CreatedAt,
		schema.CatalogMetadataContact.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		contact.ID,
		contact.MetadataID,
		contact.Name,
		contact.Organization,
		contact.Email,
		contact.Phone,
		contact.Address,
		contact.Role,
		contact.Weblink,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_metadata_contact_failed")
	}
	return nil
}

func upsertQuality(context context.Context, transaction pgx.Tx, quality *DataQuality) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s,
			%s = EXCLUDED.%s, %s = NOW()
		RETURNING %s, %s, %s
	`,
		schema.CatalogDataQuality.Table,
		schema.CatalogDataQuality.ID,
		schema.CatalogDataQuality.MetadataID,
		schema.CatalogDataQuality.CompletenessReport,
		schema.CatalogDataQuality.AccuracyReport,
		schema.CatalogDataQuality.ProcessDescription,
		schema.CatalogDataQuality.ProcessDate,
		schema.CatalogDataQuality.MetadataID,
		schema.CatalogDataQuality.CompletenessReport, schema.CatalogDataQuality.CompletenessReport,
		schema.CatalogDataQuality.AccuracyReport, schema.CatalogDataQuality.AccuracyReport,
		schema.CatalogDataQuality.ProcessDescription, schema.CatalogDataQuality.ProcessDescription,
		schema.CatalogDataQuality.ProcessDate, schema.CatalogDataQuality.ProcessDate,
		schema.CatalogDataQuality.UpdatedAt,
		schema.CatalogDataQuality.ID,
		schema.CatalogDataQuality.CreatedAt,
		schema.CatalogDataQuality.UpdatedAt,
	)

	err := transaction.QueryRow(context, query,
		quality.ID,
		quality.MetadataID,
		quality.CompletenessReport,
		quality.AccuracyReport,
		quality.ProcessDescription,
		quality.ProcessDate,
	).Scan(&quality.ID, &quality.CreatedAt, &quality.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "catalog_upsert_quality_failed")
	}
	return nil
}

// # Delete Helpers

// visibleIDs resolves which of the requested ids exist within the scope.
func visibleIDs(context context.Context, transaction pgx.Tx, scope Scope, ids []string) ([]string, error) {
	var queryBuilder strings.Builder
	args := []any{ids}

	queryBuilder.WriteString(fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = ANY($1)",
		schema.CatalogMetadata.ID,
		schema.CatalogMetadata.Table,
		schema.CatalogMetadata.ID,
	))
	if !scope.Unrestricted() {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s = $2", schema.CatalogMetadata.UserID))
		args = append(args, scope.UserID)
	}

	rows, err := transaction.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_resolve_ids_failed")
	}
	defer rows.Close()

	var visible []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "catalog_resolve_ids_scan_failed")
		}
		visible = append(visible, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_resolve_ids_rows_failed")
	}
	return visible, nil
}

// deleteAggregates removes the aggregates for the given root ids, deepest
// children first so no foreign key is ever dangling mid-transaction.
func deleteAggregates(context context.Context, transaction pgx.Tx, ids []string) error {

	// 1. Grandchildren hanging off the identification blocks.
	identificationFilter := fmt.Sprintf(
		"(SELECT %s FROM %s WHERE %s = ANY($1))",
		schema.CatalogIdentification.ID,
		schema.CatalogIdentification.Table,
		schema.CatalogIdentification.MetadataID,
	)
	grandchildren := []struct{ table, parent string }{
		{schema.CatalogPointOfContact.Table, schema.CatalogPointOfContact.IdentificationID},
		{schema.CatalogResourceConstraints.Table, schema.CatalogResourceConstraints.IdentificationID},
		{schema.CatalogTemporalExtent.Table, schema.CatalogTemporalExtent.IdentificationID},
	}
	for _, child := range grandchildren {
		query := fmt.Sprintf("DELETE FROM %s WHERE %s IN %s", child.table, child.parent, identificationFilter)
		if _, err := transaction.Exec(context, query, ids); err != nil {
			return dberr.Wrap(err, "catalog_delete_children_failed")
		}
	}

	// 2. Direct children of the root.
	children := []struct{ table, parent string }{
		{schema.CatalogIdentification.Table, schema.CatalogIdentification.MetadataID},
		{schema.CatalogDistribution.Table, schema.CatalogDistribution.MetadataID},
		{schema.CatalogLineage.Table, schema.CatalogLineage.MetadataID},
		{schema.CatalogReferenceSystem.Table, schema.CatalogReferenceSystem.MetadataID},
		{schema.CatalogMetadataContact.Table, schema.CatalogMetadataContact.MetadataID},
		{schema.CatalogDataQuality.Table, schema.CatalogDataQuality.MetadataID},
	}
	for _, child := range children {
		query := fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)", child.table, child.parent)
		if _, err := transaction.Exec(context, query, ids); err != nil {
			return dberr.Wrap(err, "catalog_delete_children_failed")
		}
	}

	// 3. The roots themselves.
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = ANY($1)",
		schema.CatalogMetadata.Table, schema.CatalogMetadata.ID)
	if _, err := transaction.Exec(context, query, ids); err != nil {
		return dberr.Wrap(err, "catalog_delete_root_failed")
	}
	return nil
}
