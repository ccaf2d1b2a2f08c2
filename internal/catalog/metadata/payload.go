// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import "time"

// Payloads are the write-side shapes of the aggregate. Every field is
// optional; a nil pointer (or nil map/slice) means "not supplied", which the
// merge step translates into "leave unchanged". This is what makes PATCH
// semantics explicit instead of relying on zero-value guessing.

// # Payload Types

// Payload is the client-writable projection of a [Metadata] aggregate.
//
// The owner is deliberately absent: it always comes from the authenticated
// request, never from the payload.
type Payload struct {
	ID               string     `json:"id,omitempty"` // Used by bulk update only.
	Status           *string    `json:"status"`
	MetadataLinkage  *string    `json:"metadata_linkage"`
	MetadataStandard *string    `json:"metadata_standard"`
	Language         *string    `json:"language"`
	CharacterSet     *string    `json:"character_set"`
	DateStamp        *time.Time `json:"date_stamp"`

	Identification  *IdentificationPayload  `json:"identification"`
	Distribution    *DistributionPayload    `json:"distribution"`
	Lineage         *LineagePayload         `json:"lineage"`
	ReferenceSystem *ReferenceSystemPayload `json:"reference_system"`
	Contact         *ContactPayload         `json:"contact"`
	Quality         *DataQualityPayload     `json:"quality"`
}

// IdentificationPayload is the write shape of an identification block.
type IdentificationPayload struct {
	Title           *string     `json:"title"`
	ProductionDate  *time.Time  `json:"production_date"`
	EditionDate     *time.Time  `json:"edition_date"`
	Abstract        *string     `json:"abstract"`
	SpatialRepType  *string     `json:"spatial_rep_type"`
	EquivalentScale *float64    `json:"equivalent_scale"`
	BoundingBox     BoundingBox `json:"geographic_bounding_box"`
	UpdateFrequency *string     `json:"update_frequency"`
	Keywords        []string    `json:"keywords"`
	KeywordType     *string     `json:"keyword_type"`
	TopicCategory   *string     `json:"topic_category"`

	PointOfContact *ContactPayload        `json:"point_of_contact"`
	Constraints    *ConstraintsPayload    `json:"constraints"`
	TemporalExtent *TemporalExtentPayload `json:"temporal_extent"`
}

// ContactPayload is the shared write shape of contact-style blocks.
type ContactPayload struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	Role         *string `json:"role"`
	Weblink      *string `json:"weblink"` // Metadata contact only.
}

// ConstraintsPayload is the write shape of a resource constraints block.
type ConstraintsPayload struct {
	AccessConstraints *string `json:"access_constraints"`
	UseConstraints    *string `json:"use_constraints"`
	OtherConstraints  *string `json:"other_constraints"`
}

// TemporalExtentPayload is the write shape of a temporal extent block.
type TemporalExtentPayload struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Frequency *string    `json:"frequency"`
}

// DistributionPayload is the write shape of a distribution block.
type DistributionPayload struct {
	Name             *string `json:"name"`
	Address          *string `json:"address"`
	PhoneNo          *string `json:"phone_no"`
	Weblink          *string `json:"weblink"`
	Format           *string `json:"format"`
	DistributorEmail *string `json:"distributor_email"`
	OrderProcess     *string `json:"order_process"`
}

// LineagePayload is the write shape of a resource lineage block.
type LineagePayload struct {
	Statement       *string    `json:"statement"`
	HierarchyLevel  *int       `json:"hierarchy_level"`
	ProcessSoftware *string    `json:"process_software"`
	ProcessDate     *time.Time `json:"process_date"`
}

// ReferenceSystemPayload is the write shape of a reference system block.
type ReferenceSystemPayload struct {
	Identifier *string `json:"identifier"`
	Code       *string `json:"code"`
}

// DataQualityPayload is the write shape of a data quality block.
type DataQualityPayload struct {
	CompletenessReport *string    `json:"completeness_report"`
	AccuracyReport     *string    `json:"accuracy_report"`
	ProcessDescription *string    `json:"process_description"`
	ProcessDate        *time.Time `json:"process_date"`
}

// # Merge Law

// setString overwrites dst only when src was supplied.
func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ApplyTo merges the supplied fields of the payload into the aggregate.
//
// Absent fields stay untouched. Absent nested blocks stay untouched too; a
// present block is merged into the existing child, or materialized as a new
// (ID-less) child when the aggregate does not have one yet. Identifier
// assignment is the service's job.
func (p *Payload) ApplyTo(record *Metadata) {
	setString(&record.MetadataLinkage, p.MetadataLinkage)
	setString(&record.MetadataStandard, p.MetadataStandard)
	setString(&record.Language, p.Language)
	setString(&record.CharacterSet, p.CharacterSet)
	if p.DateStamp != nil {
		record.DateStamp = p.DateStamp
	}

	if p.Identification != nil {
		if record.Identification == nil {
			record.Identification = &IdentificationInfo{}
		}
		p.Identification.applyTo(record.Identification)
	}

	if p.Distribution != nil {
		if record.Distribution == nil {
			record.Distribution = &Distribution{}
		}
		p.Distribution.applyTo(record.Distribution)
	}

	if p.Lineage != nil {
		if record.Lineage == nil {
			record.Lineage = &ResourceLineage{}
		}
		p.Lineage.applyTo(record.Lineage)
	}

	if p.ReferenceSystem != nil {
		if record.ReferenceSystem == nil {
			record.ReferenceSystem = &ReferenceSystem{}
		}
		p.ReferenceSystem.applyTo(record.ReferenceSystem)
	}

	if p.Contact != nil {
		if record.Contact == nil {
			record.Contact = &MetadataContact{}
		}
		p.Contact.applyToMetadataContact(record.Contact)
	}

	if p.Quality != nil {
		if record.Quality == nil {
			record.Quality = &DataQuality{}
		}
		p.Quality.applyTo(record.Quality)
	}
}

func (p *IdentificationPayload) applyTo(info *IdentificationInfo) {
	setString(&info.Title, p.Title)
	if p.ProductionDate != nil {
		info.ProductionDate = *p.ProductionDate
	}
	if p.EditionDate != nil {
		info.EditionDate = p.EditionDate
	}
	setString(&info.Abstract, p.Abstract)
	if p.SpatialRepType != nil {
		info.SpatialRepType = SpatialRepType(*p.SpatialRepType)
	}
	if p.EquivalentScale != nil {
		info.EquivalentScale = p.EquivalentScale
	}
	if p.BoundingBox != nil {
		info.BoundingBox = p.BoundingBox
	}
	setString(&info.UpdateFrequency, p.UpdateFrequency)
	if p.Keywords != nil {
		info.Keywords = p.Keywords
	}
	setString(&info.KeywordType, p.KeywordType)
	setString(&info.TopicCategory, p.TopicCategory)

	if p.PointOfContact != nil {
		if info.PointOfContact == nil {
			info.PointOfContact = &PointOfContact{}
		}
		p.PointOfContact.applyToPointOfContact(info.PointOfContact)
	}

	if p.Constraints != nil {
		if info.Constraints == nil {
			info.Constraints = &ResourceConstraints{}
		}
		p.Constraints.applyTo(info.Constraints)
	}

	if p.TemporalExtent != nil {
		if info.TemporalExtent == nil {
			info.TemporalExtent = &TemporalExtent{}
		}
		p.TemporalExtent.applyTo(info.TemporalExtent)
	}
}

func (p *ContactPayload) applyToPointOfContact(contact *PointOfContact) {
	setString(&contact.Name, p.Name)
	setString(&contact.Organization, p.Organization)
	setString(&contact.Email, p.Email)
	setString(&contact.Phone, p.Phone)
	setString(&contact.Address, p.Address)
	setString(&contact.Role, p.Role)
}

func (p *ContactPayload) applyToMetadataContact(contact *MetadataContact) {
	setString(&contact.Name, p.Name)
	setString(&contact.Organization, p.Organization)
	setString(&contact.Email, p.Email)
	setString(&contact.Phone, p.Phone)
	setString(&contact.Address, p.Address)
	setString(&contact.Role, p.Role)
	setString(&contact.Weblink, p.Weblink)
}

func (p *ConstraintsPayload) applyTo(constraints *ResourceConstraints) {
	setString(&constraints.AccessConstraints, p.AccessConstraints)
	setString(&constraints.UseConstraints, p.UseConstraints)
	setString(&constraints.OtherConstraints, p.OtherConstraints)
}

func (p *TemporalExtentPayload) applyTo(extent *TemporalExtent) {
	if p.StartDate != nil {
		extent.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		extent.EndDate = p.EndDate
	}
	setString(&extent.Frequency, p.Frequency)
}

func (p *DistributionPayload) applyTo(distribution *Distribution) {
	setString(&distribution.Name, p.Name)
	setString(&distribution.Address, p.Address)
	setString(&distribution.PhoneNo, p.PhoneNo)
	setString(&distribution.Weblink, p.Weblink)
	setString(&distribution.Format, p.Format)
	setString(&distribution.DistributorEmail, p.DistributorEmail)
	setString(&distribution.OrderProcess, p.OrderProcess)
}

func (p *LineagePayload) applyTo(lineage *ResourceLineage) {
	setString(&lineage.Statement, p.Statement)
	if p.HierarchyLevel != nil {
		lineage.HierarchyLevel = *p.HierarchyLevel
	}
	setString(&lineage.ProcessSoftware, p.ProcessSoftware)
	if p.ProcessDate != nil {
		lineage.ProcessDate = p.ProcessDate
	}
}

func (p *ReferenceSystemPayload) applyTo(system *ReferenceSystem) {
	setString(&system.Identifier, p.Identifier)
	setString(&system.Code, p.Code)
}

func (p *DataQualityPayload) applyTo(quality *DataQuality) {
	setString(&quality.CompletenessReport, p.CompletenessReport)
	setString(&quality.AccuracyReport, p.AccuracyReport)
	setString(&quality.ProcessDescription, p.ProcessDescription)
	if p.ProcessDate != nil {
		quality.ProcessDate = p.ProcessDate
	}
}
