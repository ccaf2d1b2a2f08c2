// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"context"
	"fmt"

	"github.com/geodexhq/geodex/internal/platform/database/schema"
	"github.com/geodexhq/geodex/internal/platform/dberr"
)

// # Aggregate Hydration

// hydrate attaches every nested block to the given root records.
//
// Each child table is loaded once with a WHERE parent = ANY($1) batch, so a
// full page of aggregates costs nine child queries total instead of nine per
// record.
func (repository *metadataRepository) hydrate(context context.Context, q querier, records []*Metadata) error {
	if len(records) == 0 {
		return nil
	}

	// Root index for attachment.
	ids := make([]string, 0, len(records))
	byID := make(map[string]*Metadata, len(records))
	for _, record := range records {
		ids = append(ids, record.ID)
		byID[record.ID] = record
	}

	// 1. Identification blocks first; their ids key the grandchildren.
	infoByID, err := loadIdentifications(context, q, ids, byID)
	if err != nil {
		return err
	}
	if len(infoByID) > 0 {
		infoIDs := make([]string, 0, len(infoByID))
		for id := range infoByID {
			infoIDs = append(infoIDs, id)
		}
		if err := loadPointOfContacts(context, q, infoIDs, infoByID); err != nil {
			return err
		}
		if err := loadConstraints(context, q, infoIDs, infoByID); err != nil {
			return err
		}
		if err := loadTemporalExtents(context, q, infoIDs, infoByID); err != nil {
			return err
		}
	}

	// 2. Remaining direct children of the root.
	if err := loadDistributions(context, q, ids, byID); err != nil {
		return err
	}
	if err := loadLineages(context, q, ids, byID); err != nil {
		return err
	}
	if err := loadReferenceSystems(context, q, ids, byID); err != nil {
		return err
	}
	if err := loadMetadataContacts(context, q, ids, byID); err != nil {
		return err
	}
	if err := loadQualities(context, q, ids, byID); err != nil {
		return err
	}
	return nil
}

func loadIdentifications(context context.Context, q querier, ids []string, byID map[string]*Metadata) (map[string]*IdentificationInfo, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
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
		schema.CatalogIdentification.CreatedAt,
		schema.CatalogIdentification.UpdatedAt,
		schema.CatalogIdentification.Table,
		schema.CatalogIdentification.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "catalog_load_identification_failed")
	}
	defer rows.Close()

	infoByID := make(map[string]*IdentificationInfo)
	for rows.Next() {
		info := &IdentificationInfo{}
		err := rows.Scan(
			&info.ID,
			&info.MetadataID,
			&info.Title,
			&info.ProductionDate,
			&info.EditionDate,
			&info.Abstract,
			&info.SpatialRepType,
			&info.EquivalentScale,
			&info.BoundingBox,
			&info.UpdateFrequency,
			&info.Keywords,
			&info.KeywordType,
			&info.TopicCategory,
			&info.CreatedAt,
			&info.UpdatedAt,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "catalog_load_identification_scan_failed")
		}
		if record, ok := byID[info.MetadataID]; ok {
			record.Identification = info
		}
		infoByID[info.ID] = info
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "catalog_load_identification_rows_failed")
	}
	return infoByID, nil
}

func loadPointOfContacts(context context.Context, q querier, infoIDs []string, infoByID map[string]*IdentificationInfo) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogPointOfContact.ID,
		schema.CatalogPointOfContact.IdentificationID,
		schema.CatalogPointOfContact.Name,
		schema.CatalogPointOfContact.Organization,
		schema.CatalogPointOfContact.Email,
		schema.CatalogPointOfContact.Phone,
		schema.CatalogPointOfContact.Address,
		schema.CatalogPointOfContact.Role,
		schema.CatalogPointOfContact.CreatedAt,
		schema.CatalogPointOfContact.UpdatedAt,
		schema.CatalogPointOfContact.Table,
		schema.CatalogPointOfContact.IdentificationID,
	)

	rows, err := q.Query(context, query, infoIDs)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_point_of_contact_failed")
	}
	defer rows.Close()

	for rows.Next() {
		contact := &PointOfContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.IdentificationID,
			&contact.Name,
			&contact.Organization,
			&contact.Email,
			&contact.Phone,
			&contact.Address,
			&contact.Role,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_point_of_contact_scan_failed")
		}
		if info, ok := infoByID[contact.IdentificationID]; ok {
			info.PointOfContact = contact
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_point_of_contact_rows_failed")
}

func loadConstraints(context context.Context, q querier, infoIDs []string, infoByID map[string]*IdentificationInfo) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogResourceConstraints.ID,
		schema.CatalogResourceConstraints.IdentificationID,
		schema.CatalogResourceConstraints.AccessConstraints,
		schema.CatalogResourceConstraints.UseConstraints,
		schema.CatalogResourceConstraints.OtherConstraints,
		schema.CatalogResourceConstraints.CreatedAt,
		schema.CatalogResourceConstraints.UpdatedAt,
		schema.CatalogResourceConstraints.Table,
		schema.CatalogResourceConstraints.IdentificationID,
	)

	rows, err := q.Query(context, query, infoIDs)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_constraints_failed")
	}
	defer rows.Close()

	for rows.Next() {
		constraints := &ResourceConstraints{}
		err := rows.Scan(
			&constraints.ID,
			&constraints.IdentificationID,
			&constraints.AccessConstraints,
			&constraints.UseConstraints,
			&constraints.OtherConstraints,
			&constraints.CreatedAt,
			&constraints.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_constraints_scan_failed")
		}
		if info, ok := infoByID[constraints.IdentificationID]; ok {
			info.Constraints = constraints
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_constraints_rows_failed")
}

func loadTemporalExtents(context context.Context, q querier, infoIDs []string, infoByID map[string]*IdentificationInfo) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogTemporalExtent.ID,
		schema.CatalogTemporalExtent.IdentificationID,
		schema.CatalogTemporalExtent.StartDate,
		schema.CatalogTemporalExtent.EndDate,
		schema.CatalogTemporalExtent.Frequency,
		schema.CatalogTemporalExtent.CreatedAt,
		schema.CatalogTemporalExtent.UpdatedAt,
		schema.CatalogTemporalExtent.Table,
		schema.CatalogTemporalExtent.IdentificationID,
	)

	rows, err := q.Query(context, query, infoIDs)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_temporal_extent_failed")
	}
	defer rows.Close()

	for rows.Next() {
		extent := &TemporalExtent{}
		err := rows.Scan(
			&extent.ID,
			&extent.IdentificationID,
			&extent.StartDate,
			&extent.EndDate,
			&extent.Frequency,
			&extent.CreatedAt,
			&extent.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_temporal_extent_scan_failed")
		}
		if info, ok := infoByID[extent.IdentificationID]; ok {
			info.TemporalExtent = extent
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_temporal_extent_rows_failed")
}

func loadDistributions(context context.Context, q querier, ids []string, byID map[string]*Metadata) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogDistribution.ID,
		schema.CatalogDistribution.MetadataID,
		schema.CatalogDistribution.Name,
		schema.CatalogDistribution.Address,
		schema.CatalogDistribution.PhoneNo,
		schema.CatalogDistribution.Weblink,
		schema.CatalogDistribution.Format,
		schema.CatalogDistribution.DistributorEmail,
		schema.CatalogDistribution.OrderProcess,
		schema.CatalogDistribution.CreatedAt,
		schema.CatalogDistribution.UpdatedAt,
		schema.CatalogDistribution.Table,
		schema.CatalogDistribution.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_distribution_failed")
	}
	defer rows.Close()

	for rows.Next() {
		dist := &Distribution{}
		err := rows.Scan(
			&dist.ID,
			&dist.MetadataID,
			&dist.Name,
			&dist.Address,
			&dist.PhoneNo,
			&dist.Weblink,
			&dist.Format,
			&dist.DistributorEmail,
			&dist.OrderProcess,
			&dist.CreatedAt,
			&dist.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_distribution_scan_failed")
		}
		if record, ok := byID[dist.MetadataID]; ok {
			record.Distribution = dist
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_distribution_rows_failed")
}

func loadLineages(context context.Context, q querier, ids []string, byID map[string]*Metadata) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogLineage.ID,
		schema.CatalogLineage.MetadataID,
		schema.CatalogLineage.Statement,
		schema.CatalogLineage.HierarchyLevel,
		schema.CatalogLineage.ProcessSoftware,
		schema.CatalogLineage.ProcessDate,
		schema.CatalogLineage.CreatedAt,
		schema.CatalogLineage.UpdatedAt,
		schema.CatalogLineage.Table,
		schema.CatalogLineage.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_lineage_failed")
	}
	defer rows.Close()

	for rows.Next() {
		lineage := &ResourceLineage{}
		err := rows.Scan(
			&lineage.ID,
			&lineage.MetadataID,
			&lineage.Statement,
			&lineage.HierarchyLevel,
			&lineage.ProcessSoftware,
			&lineage.ProcessDate,
			&lineage.CreatedAt,
			&lineage.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_lineage_scan_failed")
		}
		if record, ok := byID[lineage.MetadataID]; ok {
			record.Lineage = lineage
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_lineage_rows_failed")
}

func loadReferenceSystems(context context.Context, q querier, ids []string, byID map[string]*Metadata) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogReferenceSystem.ID,
		schema.CatalogReferenceSystem.MetadataID,
		schema.CatalogReferenceSystem.Identifier,
		schema.CatalogReferenceSystem.Code,
		schema.CatalogReferenceSystem.CreatedAt,
		schema.CatalogReferenceSystem.UpdatedAt,
		schema.CatalogReferenceSystem.Table,
		schema.CatalogReferenceSystem.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_reference_system_failed")
	}
	defer rows.Close()

	for rows.Next() {
		system := &ReferenceSystem{}
		err := rows.Scan(
			&system.ID,
			&system.MetadataID,
			&system.Identifier,
			&system.Code,
			&system.CreatedAt,
			&system.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_reference_system_scan_failed")
		}
		if record, ok := byID[system.MetadataID]; ok {
			record.ReferenceSystem = system
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_reference_system_rows_failed")
}

func loadMetadataContacts(context context.Context, q querier, ids []string, byID map[string]*Metadata) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogMetadataContact.ID,
		schema.CatalogMetadataContact.MetadataID,
		schema.CatalogMetadataContact.Name,
		schema.CatalogMetadataContact.Organization,
		schema.CatalogMetadataContact.Email,
		schema.CatalogMetadataContact.Phone,
		schema.CatalogMetadataContact.Address,
		schema.CatalogMetadataContact.Role,
		schema.CatalogMetadataContact.Weblink,
		schema.CatalogMetadataContact.CreatedAt,
		schema.CatalogMetadataContact.UpdatedAt,
		schema.CatalogMetadataContact.Table,
		schema.CatalogMetadataContact.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_metadata_contact_failed")
	}
	defer rows.Close()

	for rows.Next() {
		contact := &MetadataContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.MetadataID,
			&contact.Name,
			&contact.Organization,
			&contact.Email,
			&contact.Phone,
			&contact.Address,
			&contact.Role,
			&contact.Weblink,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_metadata_contact_scan_failed")
		}
		if record, ok := byID[contact.MetadataID]; ok {
			record.Contact = contact
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_metadata_contact_rows_failed")
}

func loadQualities(context context.Context, q querier, ids []string, byID map[string]*Metadata) error {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s WHERE %s = ANY($1)
	`,
		schema.CatalogDataQuality.ID,
		schema.CatalogDataQuality.MetadataID,
		schema.CatalogDataQuality.CompletenessReport,
		schema.CatalogDataQuality.AccuracyReport,
		schema.CatalogDataQuality.ProcessDescription,
		schema.CatalogDataQuality.ProcessDate,
		schema.CatalogDataQuality.CreatedAt,
		schema.CatalogDataQuality.UpdatedAt,
		schema.CatalogDataQuality.Table,
		schema.CatalogDataQuality.MetadataID,
	)

	rows, err := q.Query(context, query, ids)
	if err != nil {
		return dberr.Wrap(err, "catalog_load_quality_failed")
	}
	defer rows.Close()

	for rows.Next() {
		quality := &DataQuality{}
		err := rows.Scan(
			&quality.ID,
			&quality.MetadataID,
			&quality.CompletenessReport,
			&quality.AccuracyReport,
			&quality.ProcessDescription,
			&quality.ProcessDate,
			&quality.CreatedAt,
			&quality.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "catalog_load_quality_scan_failed")
		}
		if record, ok := byID[quality.MetadataID]; ok {
			record.Quality = quality
		}
	}
	return dberr.Wrap(rows.Err(), "catalog_load_quality_rows_failed")
}
