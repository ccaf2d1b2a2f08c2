// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"context"
	"strings"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/validate"
	"github.com/geodexhq/geodex/pkg/keyword"
	"github.com/geodexhq/geodex/pkg/pagination"
	"github.com/geodexhq/geodex/pkg/uuidv7"
)

// # Cache Contract

// Page is one cached slice of a filtered listing.
type Page struct {
	Items []*Metadata `json:"items"`
	Total int         `json:"total"`
}

// Cache is a best-effort read-through cache for catalog responses.
//
// Implementations must treat every failure as a miss: the service never
// distinguishes "not cached" from "cache down", and correctness never
// depends on the cache being reachable.
type Cache interface {
	// GetRecord returns a cached aggregate, or ok=false on a miss.
	GetRecord(context context.Context, scope Scope, id string) (*Metadata, bool)

	// SetRecord stores an aggregate under the scope it was fetched with.
	SetRecord(context context.Context, scope Scope, record *Metadata)

	// GetPage returns a cached listing page, or ok=false on a miss.
	GetPage(context context.Context, scope Scope, filter Filter, params pagination.Params) (*Page, bool)

	// SetPage stores a listing page under the scope it was fetched with.
	SetPage(context context.Context, scope Scope, filter Filter, params pagination.Params, page *Page)

	// Invalidate drops every cached catalog entry. Called after any write;
	// the catalog favors coarse invalidation over stale reads.
	Invalidate(context context.Context)
}

// # Service

// Service implements the catalog business logic on top of a [Repository].
//
// All methods take a [Scope]: non-admin callers only ever see (and touch)
// their own records, and anything outside the scope behaves as missing.
type Service struct {
	repository Repository
	cache      Cache
}

// NewService creates a new catalog service. The cache is optional; a nil
// cache disables read caching without changing any other behavior.
func NewService(repository Repository, cache Cache) *Service {
	return &Service{
		repository: repository,
		cache:      cache,
	}
}

// BulkResult reports the outcome of one item in a bulk create.
type BulkResult struct {
	Index  int              `json:"index"`
	Record *Metadata        `json:"record,omitempty"`
	Error  *apperr.AppError `json:"error,omitempty"`
}

/*
Create registers a new metadata record owned by the calling user.

The owner always comes from the scope; a user id inside the payload is
ignored. Status defaults to DRAFT unless the payload carries a valid
explicit status.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope (must be authenticated)
  - payload: Client-supplied fields for the new aggregate

Returns:
  - *Metadata: The persisted aggregate with all identifiers assigned
  - error: apperr.Unauthorized, validation failures, or persistence failures
*/
func (s *Service) Create(context context.Context, scope Scope, payload *Payload) (*Metadata, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}

	// 1. Build the aggregate from scratch; the merge law treats an empty
	// record as the base, so create and update share one code path.
	record := &Metadata{
		Status: StatusDraft,
		UserID: scope.UserID,
	}
	if payload.Status != nil {
		record.Status = Status(strings.ToUpper(*payload.Status))
	}
	payload.ApplyTo(record)

	// 2. Normalize and validate the merged aggregate.
	normalize(record)
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	// 3. Assign identifiers and persist atomically.
	assignIdentifiers(record)
	if err := s.repository.Create(context, record); err != nil {
		return nil, err
	}

	s.invalidate(context)
	return record, nil
}

/*
Get returns one fully hydrated aggregate visible to the caller.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - id: Root record identifier

Returns:
  - *Metadata: The aggregate with all nested blocks loaded
  - error: apperr.Unauthorized, apperr.NotFound, or retrieval failures
*/
func (s *Service) Get(context context.Context, scope Scope, id string) (*Metadata, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}

	if s.cache != nil {
		if record, ok := s.cache.GetRecord(context, scope, id); ok {
			return record, nil
		}
	}

	record, err := s.repository.FindByID(context, scope, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetRecord(context, scope, record)
	}
	return record, nil
}

/*
List returns a filtered, newest-first page of aggregates visible to the
caller, plus the total match count.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - filter: Status, created-at window, and title search filters
  - params: Pagination parameters

Returns:
  - []*Metadata: The requested page
  - int: Total records matching filter within scope
  - error: apperr.Unauthorized or retrieval failures
*/
func (s *Service) List(context context.Context, scope Scope, filter Filter, params pagination.Params) ([]*Metadata, int, error) {
	if !scope.Authenticated {
		return nil, 0, apperr.Unauthorized("Authentication required")
	}

	if s.cache != nil {
		if page, ok := s.cache.GetPage(context, scope, filter, params); ok {
			return page.Items, page.Total, nil
		}
	}

	records, total, err := s.repository.List(context, scope, filter, params)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		s.cache.SetPage(context, scope, filter, params, &Page{Items: records, Total: total})
	}
	return records, total, nil
}

/*
Update applies a partial payload to an existing aggregate.

Only supplied fields change; absent nested blocks stay untouched, and a
supplied block is merged into the existing child or created when missing.
Ownership and status are never writable through this path.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - id: Root record identifier
  - payload: Fields to merge into the aggregate

Returns:
  - *Metadata: The updated aggregate
  - error: apperr.Unauthorized, apperr.NotFound, validation failures, or persistence failures
*/
func (s *Service) Update(context context.Context, scope Scope, id string, payload *Payload) (*Metadata, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}

	// 1. Load the current aggregate; out-of-scope records surface as missing.
	record, err := s.repository.FindByID(context, scope, id)
	if err != nil {
		return nil, err
	}

	// 2. Merge, normalize, validate.
	payload.ApplyTo(record)
	normalize(record)
	if err := validateRecord(record); err != nil {
		return nil, err
	}

	// 3. Give newly materialized children their identifiers, then persist
	// the whole aggregate in one transaction.
	assignIdentifiers(record)
	if err := s.repository.Save(context, record); err != nil {
		return nil, err
	}

	s.invalidate(context)
	return record, nil
}

/*
Delete removes an aggregate and all nested blocks.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - id: Root record identifier

Returns:
  - error: apperr.Unauthorized, apperr.NotFound, or deletion failures
*/
func (s *Service) Delete(context context.Context, scope Scope, id string) error {
	if !scope.Authenticated {
		return apperr.Unauthorized("Authentication required")
	}

	if err := s.repository.Delete(context, scope, id); err != nil {
		return err
	}

	s.invalidate(context)
	return nil
}

/*
Publish moves a draft record into the published state.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - id: Root record identifier

Returns:
  - *Metadata: The record with its new status
  - error: apperr.Unauthorized, apperr.NotFound, apperr.GuardViolation, or persistence failures
*/
func (s *Service) Publish(context context.Context, scope Scope, id string) (*Metadata, error) {
	return s.transition(context, scope, id, (*Metadata).Publish)
}

/*
Archive moves a published record into the archived state.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - id: Root record identifier

Returns:
  - *Metadata: The record with its new status
  - error: apperr.Unauthorized, apperr.NotFound, apperr.GuardViolation, or persistence failures
*/
func (s *Service) Archive(context context.Context, scope Scope, id string) (*Metadata, error) {
	return s.transition(context, scope, id, (*Metadata).Archive)
}

// transition loads a scoped record, applies a lifecycle guard, and persists
// the resulting status.
func (s *Service) transition(context context.Context, scope Scope, id string, apply func(*Metadata) error) (*Metadata, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}

	record, err := s.repository.FindByID(context, scope, id)
	if err != nil {
		return nil, err
	}
	if err := apply(record); err != nil {
		return nil, err
	}
	if err := s.repository.UpdateStatus(context, id, record.Status); err != nil {
		return nil, err
	}

	s.invalidate(context)
	return record, nil
}

/*
BulkCreate registers several records in one call.

Items are independent: each is validated and persisted on its own, and a
failure in one never affects the others. The result slice is index-aligned
with the input and carries either the created record or the item's error.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope (owner of every created record)
  - payloads: Client-supplied items

Returns:
  - []BulkResult: One entry per input item, in input order
  - error: apperr.Unauthorized or an empty-input validation failure
*/
func (s *Service) BulkCreate(context context.Context, scope Scope, payloads []Payload) ([]BulkResult, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if len(payloads) == 0 {
		return nil, validate.RequiredError(FieldItems, "At least one item is required")
	}

	results := make([]BulkResult, len(payloads))
	for i := range payloads {
		record, err := s.Create(context, scope, &payloads[i])
		results[i] = BulkResult{Index: i, Record: record, Error: apperr.As(err)}
		if err != nil && apperr.As(err) == nil {
			// Non-domain failure (storage down): abort instead of
			// reporting an opaque per-item error.
			return nil, err
		}
	}
	return results, nil
}

/*
BulkUpdate applies several partial payloads in one shared transaction.

Every payload must carry the id of the record it targets. The batch is
all-or-nothing: if any record is missing, out of scope, or invalid after
the merge, nothing is persisted.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - payloads: Items to merge, each addressed by its id field

Returns:
  - []*Metadata: The updated aggregates, in input order
  - error: apperr.Unauthorized, apperr.NotFound, validation failures, or persistence failures
*/
func (s *Service) BulkUpdate(context context.Context, scope Scope, payloads []Payload) ([]*Metadata, error) {
	if !scope.Authenticated {
		return nil, apperr.Unauthorized("Authentication required")
	}
	if len(payloads) == 0 {
		return nil, validate.RequiredError(FieldItems, "At least one item is required")
	}

	// 1. Resolve and merge every target before touching storage.
	records := make([]*Metadata, len(payloads))
	for i := range payloads {
		if payloads[i].ID == "" {
			return nil, validate.RequiredError(FieldID, "Each item must include an id")
		}
		record, err := s.repository.FindByID(context, scope, payloads[i].ID)
		if err != nil {
			return nil, err
		}
		payloads[i].ApplyTo(record)
		normalize(record)
		if err := validateRecord(record); err != nil {
			return nil, err
		}
		assignIdentifiers(record)
		records[i] = record
	}

	// 2. Persist the whole batch in one transaction.
	if err := s.repository.SaveMany(context, records); err != nil {
		return nil, err
	}

	s.invalidate(context)
	return records, nil
}

/*
BulkDelete removes several records and reports how many were deleted.

Identifiers that are missing or out of scope are skipped silently, so the
returned count can be lower than the number of ids submitted.

Parameters:
  - context: context.Context
  - scope: The caller's visibility scope
  - ids: Root record identifiers

Returns:
  - int: Number of records actually deleted
  - error: apperr.Unauthorized, an empty-input validation failure, or deletion failures
*/
func (s *Service) BulkDelete(context context.Context, scope Scope, ids []string) (int, error) {
	if !scope.Authenticated {
		return 0, apperr.Unauthorized("Authentication required")
	}
	if len(ids) == 0 {
		return 0, validate.RequiredError(FieldIDs, "At least one id is required")
	}

	deleted, err := s.repository.DeleteMany(context, scope, ids)
	if err != nil {
		return 0, err
	}

	s.invalidate(context)
	return deleted, nil
}

// invalidate drops the read cache after any successful write.
func (s *Service) invalidate(context context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(context)
	}
}

// # Normalization & Validation

// normalize canonicalizes case-insensitive fields and keyword lists so
// storage and comparisons always see one spelling.
func normalize(record *Metadata) {
	record.Language = strings.ToLower(strings.TrimSpace(record.Language))
	record.CharacterSet = strings.ToLower(strings.TrimSpace(record.CharacterSet))

	if info := record.Identification; info != nil {
		info.Title = strings.TrimSpace(info.Title)
		info.SpatialRepType = SpatialRepType(strings.ToUpper(string(info.SpatialRepType)))
		info.TopicCategory = strings.ToLower(strings.TrimSpace(info.TopicCategory))
		if info.Keywords != nil {
			info.Keywords = keyword.NormalizeAll(info.Keywords)
		}
	}
}

// validateRecord checks the merged aggregate. All rules run so that one
// response can report every problem at once.
func validateRecord(record *Metadata) error {
	v := &validate.Validator{}

	v.OneOf(FieldStatus, string(record.Status),
		string(StatusDraft), string(StatusPublished), string(StatusArchived))
	if record.Language != "" {
		v.OneOf(FieldLanguage, record.Language, AllowedLanguages...)
	}
	if record.CharacterSet != "" {
		v.OneOf(FieldCharacterSet, record.CharacterSet, AllowedCharacterSets...)
	}
	v.NotFuture(FieldDateStamp, record.DateStamp)

	if info := record.Identification; info != nil {
		validateIdentification(v, info)
	}
	if dist := record.Distribution; dist != nil {
		v.Required(FieldName, dist.Name)
		if dist.Weblink != "" {
			v.URL(FieldWeblink, dist.Weblink)
		}
		if dist.DistributorEmail != "" {
			v.Email(FieldDistEmail, dist.DistributorEmail)
		}
	}
	if lineage := record.Lineage; lineage != nil {
		v.Required(FieldStatement, lineage.Statement)
		v.NonNegative(FieldHierarchyLevel, lineage.HierarchyLevel)
		v.NotFuture(FieldProcessDate, lineage.ProcessDate)
	}
	if system := record.ReferenceSystem; system != nil {
		v.Required(FieldIdentifier, system.Identifier)
		v.Required(FieldCode, system.Code)
	}
	if contact := record.Contact; contact != nil {
		v.Required(FieldName, contact.Name)
		v.Required(FieldRole, contact.Role)
		if contact.Email != "" {
			v.Email(FieldEmail, contact.Email)
		} else {
			v.Required(FieldEmail, contact.Email)
		}
		if contact.Weblink != "" {
			v.URL(FieldWeblink, contact.Weblink)
		}
	}
	if quality := record.Quality; quality != nil {
		v.NotFuture(FieldProcessDate, quality.ProcessDate)
	}

	return v.Err()
}

// validateIdentification checks the identification block and its children.
func validateIdentification(v *validate.Validator, info *IdentificationInfo) {
	v.Required(FieldTitle, info.Title).MinLen(FieldTitle, info.Title, 3).MaxLen(FieldTitle, info.Title, 255)
	v.Custom(FieldProductionDate, info.ProductionDate.IsZero(), "This field is required")
	if info.Abstract != "" {
		v.MinLen(FieldAbstract, info.Abstract, 10)
	}
	v.Custom(FieldSpatialRepType, !info.SpatialRepType.IsValid(),
		"Must be one of: VECTOR, RASTER")
	v.Custom(FieldBoundingBox, !hasBoundingBoxKeys(info.BoundingBox),
		"Must contain north, south, east, and west coordinates")
	if info.TopicCategory != "" {
		v.OneOf(FieldTopicCategory, info.TopicCategory, AllowedTopicCategories...)
	}
	if info.EquivalentScale != nil {
		v.Custom(FieldEquivalentScale, *info.EquivalentScale <= 0, "Must be a positive number")
	}

	if contact := info.PointOfContact; contact != nil {
		v.Required(FieldName, contact.Name)
		v.Required(FieldRole, contact.Role)
		if contact.Email != "" {
			v.Email(FieldEmail, contact.Email)
		} else {
			v.Required(FieldEmail, contact.Email)
		}
	}
	if extent := info.TemporalExtent; extent != nil {
		v.Custom(FieldStartDate, extent.StartDate.IsZero(), "This field is required")
		v.Custom(FieldEndDate,
			extent.EndDate != nil && !extent.StartDate.IsZero() && extent.EndDate.Before(extent.StartDate),
			"Must not be before start_date")
	}
}

// hasBoundingBoxKeys reports whether the box carries exactly the four
// required compass keys.
func hasBoundingBoxKeys(box BoundingBox) bool {
	if len(box) != len(BoundingBoxKeys) {
		return false
	}
	for _, key := range BoundingBoxKeys {
		if _, ok := box[key]; !ok {
			return false
		}
	}
	return true
}

// # Identifier Assignment

// assignIdentifiers gives the root and every present child a UUIDv7 and
// wires parent foreign keys, leaving already-persisted identifiers alone.
func assignIdentifiers(record *Metadata) {
	if record.ID == "" {
		record.ID = uuidv7.New()
	}

	if info := record.Identification; info != nil {
		if info.ID == "" {
			info.ID = uuidv7.New()
		}
		info.MetadataID = record.ID

		if contact := info.PointOfContact; contact != nil {
			if contact.ID == "" {
				contact.ID = uuidv7.New()
			}
			contact.IdentificationID = info.ID
		}
		if constraints := info.Constraints; constraints != nil {
			if constraints.ID == "" {
				constraints.ID = uuidv7.New()
			}
			constraints.IdentificationID = info.ID
		}
		if extent := info.TemporalExtent; extent != nil {
			if extent.ID == "" {
				extent.ID = uuidv7.New()
			}
			extent.IdentificationID = info.ID
		}
	}

	if dist := record.Distribution; dist != nil {
		if dist.ID == "" {
			dist.ID = uuidv7.New()
		}
		dist.MetadataID = record.ID
	}
	if lineage := record.Lineage; lineage != nil {
		if lineage.ID == "" {
			lineage.ID = uuidv7.New()
		}
		lineage.MetadataID = record.ID
	}
	if system := record.ReferenceSystem; system != nil {
		if system.ID == "" {
			system.ID = uuidv7.New()
		}
		system.MetadataID = record.ID
	}
	if contact := record.Contact; contact != nil {
		if contact.ID == "" {
			contact.ID = uuidv7.New()
		}
		contact.MetadataID = record.ID
	}
	if quality := record.Quality; quality != nil {
		if quality.ID == "" {
			quality.ID = uuidv7.New()
		}
		quality.MetadataID = record.ID
	}
}
