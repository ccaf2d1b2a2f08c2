// Copyright (c) 2026 Geodex. All rights reserved.

/*
Package record provides read-only browsing of the nine catalog sub-record
types (identification blocks, contacts, constraints, temporal extents,
distributions, lineages, reference systems, metadata contacts, and data
quality reports).

Every endpoint is owner-scoped through the same ownership traversal the
aggregate uses: a sub-record is visible exactly when its root metadata record
is. Mutations are deliberately absent — sub-records change only through the
aggregate update path and disappear only through the parent cascade.

The nine types share one store and one handler, driven by a table of
[Descriptor] values instead of nine near-identical repositories.
*/
package record

import (
	"github.com/geodexhq/geodex/internal/catalog/metadata"
	"github.com/geodexhq/geodex/internal/platform/database/schema"
)

// Descriptor wires one sub-record type into the shared store and handler.
type Descriptor struct {
	// Path is the URL segment the type is served under (e.g. "lineages").
	Path string

	// Label names the type in NotFound messages.
	Label string

	// Table is the fully qualified table name.
	Table string

	// Columns is the select list, aligned one-to-one with the scan targets
	// returned by NewEntity. The first entry is always the primary key and
	// the last two are always createdat/updatedat; the store relies on this.
	Columns []string

	// ParentKey is the column linking the row to its parent.
	ParentKey string

	// ViaIdentification marks types that hang off the identification block
	// instead of the metadata root, requiring one extra join for scoping.
	ViaIdentification bool

	// NewEntity allocates an empty entity and returns it together with the
	// scan destinations for Columns, in the same order.
	NewEntity func() (entity any, targets []any)
}

// Descriptors enumerates every browsable sub-record type.
//
// Scan targets reuse the catalog domain entities, so browse responses and
// aggregate responses always serialize identically.
var Descriptors = []Descriptor{
	{
		Path:      "identifications",
		Label:     "Identification",
		Table:     schema.CatalogIdentification.Table,
		ParentKey: schema.CatalogIdentification.MetadataID,
		Columns: []string{
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
		},
		NewEntity: func() (any, []any) {
			info := &metadata.IdentificationInfo{}
			return info, []any{
				&info.ID, &info.MetadataID, &info.Title, &info.ProductionDate,
				&info.EditionDate, &info.Abstract, &info.SpatialRepType,
				&info.EquivalentScale, &info.BoundingBox, &info.UpdateFrequency,
				&info.Keywords, &info.KeywordType, &info.TopicCategory,
				&info.CreatedAt, &info.UpdatedAt,
			}
		},
	},
	{
		Path:              "contacts",
		Label:             "Point of contact",
		Table:             schema.CatalogPointOfContact.Table,
		ParentKey:         schema.CatalogPointOfContact.IdentificationID,
		ViaIdentification: true,
		Columns: []string{
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
		},
		NewEntity: func() (any, []any) {
			contact := &metadata.PointOfContact{}
			return contact, []any{
				&contact.ID, &contact.IdentificationID, &contact.Name,
				&contact.Organization, &contact.Email, &contact.Phone,
				&contact.Address, &contact.Role, &contact.CreatedAt, &contact.UpdatedAt,
			}
		},
	},
	{
		Path:              "constraints",
		Label:             "Resource constraints",
		Table:             schema.CatalogResourceConstraints.Table,
		ParentKey:         schema.CatalogResourceConstraints.IdentificationID,
		ViaIdentification: true,
		Columns: []string{
			schema.CatalogResourceConstraints.ID,
			schema.CatalogResourceConstraints.IdentificationID,
			schema.CatalogResourceConstraints.AccessConstraints,
			schema.CatalogResourceConstraints.UseConstraints,
			schema.CatalogResourceConstraints.OtherConstraints,
			schema.CatalogResourceConstraints.CreatedAt,
			schema.CatalogResourceConstraints.UpdatedAt,
		},
		NewEntity: func() (any, []any) {
			constraints := &metadata.ResourceConstraints{}
			return constraints, []any{
				&constraints.ID, &constraints.IdentificationID,
				&constraints.AccessConstraints, &constraints.UseConstraints,
				&constraints.OtherConstraints, &constraints.CreatedAt, &constraints.UpdatedAt,
			}
		},
	},
	{
		Path:              "temporal-extents",
		Label:             "Temporal extent",
		Table:             schema.CatalogTemporalExtent.Table,
		ParentKey:         schema.CatalogTemporalExtent.IdentificationID,
		ViaIdentification: true,
		Columns: []string{
			schema.CatalogTemporalExtent.ID,
			schema.CatalogTemporalExtent.IdentificationID,
			schema.CatalogTemporalExtent.StartDate,
			schema.CatalogTemporalExtent.EndDate,
			schema.CatalogTemporalExtent.Frequency,
			schema.CatalogTemporalExtent.CreatedAt,
			schema.CatalogTemporalExtent.UpdatedAt,
		},
		NewEntity: func() (any, []any) {
			extent := &metadata.TemporalExtent{}
			return extent, []any{
				&extent.ID, &extent.IdentificationID, &extent.StartDate,
				&extent.EndDate, &extent.Frequency, &extent.CreatedAt, &extent.UpdatedAt,
			}
		},
	},
	{
		Path:      "distributions",
		Label:     "Distribution",
		Table:     schema.CatalogDistribution.Table,
		ParentKey: schema.CatalogDistribution.MetadataID,
		Columns: []string{
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
		},
		NewEntity: func() (any, []any) {
			dist := &metadata.Distribution{}
			return dist, []any{
				&dist.ID, &dist.MetadataID, &dist.Name, &dist.Address,
				&dist.PhoneNo, &dist.Weblink, &dist.Format,
				&dist.DistributorEmail, &dist.OrderProcess,
				&dist.CreatedAt, &dist.UpdatedAt,
			}
		},
	},
	{
		Path:      "lineages",
		Label:     "Resource lineage",
		Table:     schema.CatalogLineage.Table,
		ParentKey: schema.CatalogLineage.MetadataID,
		Columns: []string{
			schema.CatalogLineage.ID,
			schema.CatalogLineage.MetadataID,
			schema.CatalogLineage.Statement,
			schema.CatalogLineage.HierarchyLevel,
			schema.CatalogLineage.ProcessSoftware,
			schema.CatalogLineage.ProcessDate,
			schema.CatalogLineage.CreatedAt,
			schema.CatalogLineage.UpdatedAt,
		},
		NewEntity: func() (any, []any) {
			lineage := &metadata.ResourceLineage{}
			return lineage, []any{
				&lineage.ID, &lineage.MetadataID, &lineage.Statement,
				&lineage.HierarchyLevel, &lineage.ProcessSoftware,
				&lineage.ProcessDate, &lineage.CreatedAt, &lineage.UpdatedAt,
			}
		},
	},
	{
		Path:      "reference-systems",
		Label:     "Reference system",
		Table:     schema.CatalogReferenceSystem.Table,
		ParentKey: schema.CatalogReferenceSystem.MetadataID,
		Columns: []string{
			schema.CatalogReferenceSystem.ID,
			schema.CatalogReferenceSystem.MetadataID,
			schema.CatalogReferenceSystem.Identifier,
			schema.CatalogReferenceSystem.Code,
			schema.CatalogReferenceSystem.CreatedAt,
			schema.CatalogReferenceSystem.UpdatedAt,
		},
		NewEntity: func() (any, []any) {
			system := &metadata.ReferenceSystem{}
			return system, []any{
				&system.ID, &system.MetadataID, &system.Identifier,
				&system.Code, &system.CreatedAt, &system.UpdatedAt,
			}
		},
	},
	{
		Path:      "metadata-contacts",
		Label:     "Metadata contact",
		Table:     schema.CatalogMetadataContact.Table,
		ParentKey: schema.CatalogMetadataContact.MetadataID,
		Columns: []string{
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
		},
		NewEntity: func() (any, []any) {
			contact := &metadata.MetadataContact{}
			return contact, []any{
				&contact.ID, &contact.MetadataID, &contact.Name,
				&contact.Organization, &contact.Email, &contact.Phone,
				&contact.Address, &contact.Role, &contact.Weblink,
				&contact.CreatedAt, &contact.UpdatedAt,
			}
		},
	},
	{
		Path:      "data-quality",
		Label:     "Data quality",
		Table:     schema.CatalogDataQuality.Table,
		ParentKey: schema.CatalogDataQuality.MetadataID,
		Columns: []string{
			schema.CatalogDataQuality.ID,
			schema.CatalogDataQuality.MetadataID,
			schema.CatalogDataQuality.CompletenessReport,
			schema.CatalogDataQuality.AccuracyReport,
			schema.CatalogDataQuality.ProcessDescription,
			schema.CatalogDataQuality.ProcessDate,
			schema.CatalogDataQuality.CreatedAt,
			schema.CatalogDataQuality.UpdatedAt,
		},
		NewEntity: func() (any, []any) {
			quality := &metadata.DataQuality{}
			return quality, []any{
				&quality.ID, &quality.MetadataID, &quality.CompletenessReport,
				&quality.AccuracyReport, &quality.ProcessDescription,
				&quality.ProcessDate, &quality.CreatedAt, &quality.UpdatedAt,
			}
		},
	},
}
