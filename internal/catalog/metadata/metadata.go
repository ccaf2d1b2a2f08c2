// Copyright (c) 2026 Geodex. All rights reserved.

/*
Package metadata defines the core domain of the Geodex catalog: structured,
ISO-19115-like descriptions of geospatial datasets.

A metadata record is an aggregate: one root plus up to nine one-to-one
sub-records. Six hang directly off the root (identification, distribution,
lineage, reference system, metadata contact, data quality) and three hang off
the identification block (point of contact, resource constraints, temporal
extent). The aggregate is created, updated, and deleted atomically.

Core Responsibility:

  - Lifecycle: Drafts are registered, published, and eventually archived.
  - Ownership: Every record belongs to exactly one user account.
  - Integrity: Nested blocks never outlive their parent.

This package acts as the source of truth for all catalog data models.
*/
package metadata

import "time"

// # Domain Enums

// Status represents the publication state of a metadata record.
type Status string

const (
	// StatusDraft is the initial state of every new record.
	StatusDraft Status = "DRAFT"

	// StatusPublished marks a record as publicly released.
	StatusPublished Status = "PUBLISHED"

	// StatusArchived marks a published record as retired.
	StatusArchived Status = "ARCHIVED"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// SpatialRepType classifies how the described dataset represents space.
type SpatialRepType string

const (
	SpatialRepVector SpatialRepType = "VECTOR"
	SpatialRepRaster SpatialRepType = "RASTER"
)

// IsValid reports whether s is a recognised [SpatialRepType] value.
func (s SpatialRepType) IsValid() bool {
	return s == SpatialRepVector || s == SpatialRepRaster
}

// # Allow-lists

// Languages accepted for the metadata language field, stored lowercase.
var AllowedLanguages = []string{"en", "fr", "es"}

// Character encodings accepted for the character_set field, stored lowercase.
var AllowedCharacterSets = []string{"utf8", "utf16", "ascii", "iso-8859-1"}

// AllowedTopicCategories are the nineteen ISO topic categories, stored lowercase.
var AllowedTopicCategories = []string{
	"farming",
	"biota",
	"boundaries",
	"climatologymeteorologyatmosphere",
	"economy",
	"elevation",
	"environment",
	"geoscientificinformation",
	"health",
	"imagerybasemapsearthcover",
	"intelligencemilitary",
	"inlandwaters",
	"location",
	"oceans",
	"planningcadastre",
	"society",
	"structure",
	"transportation",
	"utilitiescommunication",
}

// # Core Entities

// BoundingBox is the geographic extent of the described dataset.
//
// It must contain exactly the keys north, south, east, and west with numeric
// values, and it round-trips through the API exactly as submitted.
type BoundingBox map[string]float64

// Keys required in every [BoundingBox].
var BoundingBoxKeys = []string{"north", "south", "east", "west"}

// Metadata is the aggregate root of the Geodex catalog.
type Metadata struct {
	ID               string     `json:"id"`
	Status           Status     `json:"status"`
	UserID           string     `json:"user_id"`
	MetadataLinkage  string     `json:"metadata_linkage,omitempty"`
	MetadataStandard string     `json:"metadata_standard,omitempty"`
	Language         string     `json:"language,omitempty"`
	CharacterSet     string     `json:"character_set,omitempty"`
	DateStamp        *time.Time `json:"date_stamp,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`

	// Nested blocks. nil means the block was never supplied.
	Identification  *IdentificationInfo `json:"identification,omitempty"`
	Distribution    *Distribution       `json:"distribution,omitempty"`
	Lineage         *ResourceLineage    `json:"lineage,omitempty"`
	ReferenceSystem *ReferenceSystem    `json:"reference_system,omitempty"`
	Contact         *MetadataContact    `json:"contact,omitempty"`
	Quality         *DataQuality        `json:"quality,omitempty"`
}

// IdentificationInfo describes what the dataset is.
type IdentificationInfo struct {
	ID              string         `json:"id"`
	MetadataID      string         `json:"metadata_id"`
	Title           string         `json:"title"`
	ProductionDate  time.Time      `json:"production_date"`
	EditionDate     *time.Time     `json:"edition_date,omitempty"`
	Abstract        string         `json:"abstract"`
	SpatialRepType  SpatialRepType `json:"spatial_rep_type"`
	EquivalentScale *float64       `json:"equivalent_scale,omitempty"`
	BoundingBox     BoundingBox    `json:"geographic_bounding_box"`
	UpdateFrequency string         `json:"update_frequency,omitempty"`
	Keywords        []string       `json:"keywords"`
	KeywordType     string         `json:"keyword_type,omitempty"`
	TopicCategory   string         `json:"topic_category,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`

	// Children of the identification block.
	PointOfContact *PointOfContact      `json:"point_of_contact,omitempty"`
	Constraints    *ResourceConstraints `json:"constraints,omitempty"`
	TemporalExtent *TemporalExtent      `json:"temporal_extent,omitempty"`
}

// PointOfContact identifies who is responsible for the described resource.
type PointOfContact struct {
	ID               string    `json:"id"`
	IdentificationID string    `json:"identification_id"`
	Name             string    `json:"name"`
	Organization     string    `json:"organization"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	Role             string    `json:"role"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ResourceConstraints captures legal and usage restrictions on the resource.
type ResourceConstraints struct {
	ID                string    `json:"id"`
	IdentificationID  string    `json:"identification_id"`
	AccessConstraints string    `json:"access_constraints,omitempty"`
	UseConstraints    string    `json:"use_constraints,omitempty"`
	OtherConstraints  string    `json:"other_constraints,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TemporalExtent is the time span the described dataset covers.
type TemporalExtent struct {
	ID               string     `json:"id"`
	IdentificationID string     `json:"identification_id"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"`
	Frequency        string     `json:"frequency,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Distribution describes how the dataset can be obtained.
type Distribution struct {
	ID               string    `json:"id"`
	MetadataID       string    `json:"metadata_id"`
	Name             string    `json:"name"`
	Address          string    `json:"address,omitempty"`
	PhoneNo          string    `json:"phone_no,omitempty"`
	Weblink          string    `json:"weblink,omitempty"`
	Format           string    `json:"format,omitempty"`
	DistributorEmail string    `json:"distributor_email,omitempty"`
	OrderProcess     string    `json:"order_process,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ResourceLineage records the provenance of the dataset.
type ResourceLineage struct {
	ID              string     `json:"id"`
	MetadataID      string     `json:"metadata_id"`
	Statement       string     `json:"statement"`
	HierarchyLevel  int        `json:"hierarchy_level"`
	ProcessSoftware string     `json:"process_software,omitempty"`
	ProcessDate     *time.Time `json:"process_date,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// ReferenceSystem identifies the coordinate reference system in use.
type ReferenceSystem struct {
	ID         string    `json:"id"`
	MetadataID string    `json:"metadata_id"`
	Identifier string    `json:"identifier"`
	Code       string    `json:"code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MetadataContact identifies who maintains the metadata record itself.
type MetadataContact struct {
	ID           string    `json:"id"`
	MetadataID   string    `json:"metadata_id"`
	Name         string    `json:"name"`
	Organization string    `json:"organization"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         string    `json:"role"`
	Weblink      string    `json:"weblink,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DataQuality summarizes completeness and accuracy assessments.
type DataQuality struct {
	ID                 string     `json:"id"`
	MetadataID         string     `json:"metadata_id"`
	CompletenessReport string     `json:"completeness_report,omitempty"`
	AccuracyReport     string     `json:"accuracy_report,omitempty"`
	ProcessDescription string     `json:"process_description,omitempty"`
	ProcessDate        *time.Time `json:"process_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// # Search & Filtering

// Filter holds the parameters for a filtered metadata list query.
type Filter struct {
	Status    []Status   `json:"status,omitempty"`
	StartDate *time.Time `json:"start_date,omitempty"` // created_at lower bound
	EndDate   *time.Time `json:"end_date,omitempty"`   // created_at upper bound
	Query     string     `json:"q,omitempty"`          // title search term
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID               = "id"
	FieldStatus           = "status"
	FieldMetadataLinkage  = "metadata_linkage"
	FieldMetadataStandard = "metadata_standard"
	FieldLanguage         = "language"
	FieldCharacterSet     = "character_set"
	FieldDateStamp        = "date_stamp"

	FieldTitle           = "title"
	FieldProductionDate  = "production_date"
	FieldEditionDate     = "edition_date"
	FieldAbstract        = "abstract"
	FieldSpatialRepType  = "spatial_rep_type"
	FieldEquivalentScale = "equivalent_scale"
	FieldBoundingBox     = "geographic_bounding_box"
	FieldUpdateFrequency = "update_frequency"
	FieldKeywords        = "keywords"
	FieldKeywordType     = "keyword_type"
	FieldTopicCategory   = "topic_category"

	FieldName           = "name"
	FieldOrganization   = "organization"
	FieldEmail          = "email"
	FieldPhone          = "phone"
	FieldAddress        = "address"
	FieldRole           = "role"
	FieldWeblink        = "weblink"
	FieldFormat         = "format"
	FieldPhoneNo        = "phone_no"
	FieldDistEmail      = "distributor_email"
	FieldOrderProcess   = "order_process"
	FieldStatement      = "statement"
	FieldHierarchyLevel = "hierarchy_level"
	FieldProcessDate    = "process_date"
	FieldStartDate      = "start_date"
	FieldEndDate        = "end_date"
	FieldIdentifier     = "identifier"
	FieldCode           = "code"
	FieldIDs            = "ids"
	FieldItems          = "items"
	FieldDeletedCount   = "deleted_count"
)
