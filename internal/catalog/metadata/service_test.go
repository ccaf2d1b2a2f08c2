// Copyright (c) 2026 Geodex. All rights reserved.

package metadata_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/catalog/metadata"
	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/pkg/pagination"
	"github.com/geodexhq/geodex/pkg/pointer"
)

// # Test Fakes

// fakeRepo is an in-memory [metadata.Repository]. FindByID returns deep
// copies, matching the real store where every read produces fresh rows.
type fakeRepo struct {
	records map[string]*metadata.Metadata
	order   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*metadata.Metadata)}
}

func clone(record *metadata.Metadata) *metadata.Metadata {
	raw, _ := json.Marshal(record)
	copied := &metadata.Metadata{}
	_ = json.Unmarshal(raw, copied)
	return copied
}

func (r *fakeRepo) Create(_ context.Context, record *metadata.Metadata) error {
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	r.records[record.ID] = clone(record)
	r.order = append(r.order, record.ID)
	return nil
}

func (r *fakeRepo) FindByID(_ context.Context, scope metadata.Scope, id string) (*metadata.Metadata, error) {
	record, ok := r.records[id]
	if !ok || !scope.CanSee(record.UserID) {
		return nil, apperr.NotFound("Metadata record not found")
	}
	return clone(record), nil
}

func (r *fakeRepo) List(_ context.Context, scope metadata.Scope, filter metadata.Filter, params pagination.Params) ([]*metadata.Metadata, int, error) {
	var matches []*metadata.Metadata
	for i := len(r.order) - 1; i >= 0; i-- {
		record := r.records[r.order[i]]
		if !scope.CanSee(record.UserID) {
			continue
		}
		if len(filter.Status) > 0 && !containsStatus(filter.Status, record.Status) {
			continue
		}
		matches = append(matches, clone(record))
	}

	total := len(matches)
	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return matches[start:end], total, nil
}

func containsStatus(statuses []metadata.Status, status metadata.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Save(_ context.Context, record *metadata.Metadata) error {
	if _, ok := r.records[record.ID]; !ok {
		return apperr.NotFound("Metadata record not found")
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = clone(record)
	return nil
}

func (r *fakeRepo) SaveMany(ctx context.Context, records []*metadata.Metadata) error {
	for _, record := range records {
		if err := r.Save(ctx, record); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id string, status metadata.Status) error {
	record, ok := r.records[id]
	if !ok {
		return apperr.NotFound("Metadata record not found")
	}
	record.Status = status
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, scope metadata.Scope, id string) error {
	record, ok := r.records[id]
	if !ok || !scope.CanSee(record.UserID) {
		return apperr.NotFound("Metadata record not found")
	}
	r.remove(id)
	return nil
}

func (r *fakeRepo) DeleteMany(_ context.Context, scope metadata.Scope, ids []string) (int, error) {
	deleted := 0
	for _, id := range ids {
		record, ok := r.records[id]
		if !ok || !scope.CanSee(record.UserID) {
			continue
		}
		r.remove(id)
		deleted++
	}
	return deleted, nil
}

func (r *fakeRepo) remove(id string) {
	delete(r.records, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// fakeCache records invalidations and never hits.
type fakeCache struct {
	invalidations int
}

func (c *fakeCache) GetRecord(context.Context, metadata.Scope, string) (*metadata.Metadata, bool) {
	return nil, false
}
func (c *fakeCache) SetRecord(context.Context, metadata.Scope, *metadata.Metadata) {}
func (c *fakeCache) GetPage(context.Context, metadata.Scope, metadata.Filter, pagination.Params) (*metadata.Page, bool) {
	return nil, false
}
func (c *fakeCache) SetPage(context.Context, metadata.Scope, metadata.Filter, pagination.Params, *metadata.Page) {
}
func (c *fakeCache) Invalidate(context.Context) { c.invalidations++ }

// # Helpers

func newTestService() (*metadata.Service, *fakeRepo, *fakeCache) {
	repo := newFakeRepo()
	cache := &fakeCache{}
	return metadata.NewService(repo, cache), repo, cache
}

func userScope(id string) metadata.Scope {
	return metadata.ScopeFor(id, sec.RoleUser)
}

func adminScope() metadata.Scope {
	return metadata.ScopeFor("admin-1", sec.RoleAdmin)
}

// validPayload builds a payload that passes every validation rule.
func validPayload(title string) *metadata.Payload {
	production := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	return &metadata.Payload{
		MetadataStandard: pointer.To("ISO 19115"),
		Language:         pointer.To("en"),
		Identification: &metadata.IdentificationPayload{
			Title:          pointer.To(title),
			ProductionDate: &production,
			Abstract:       pointer.To("A dataset covering the national road network."),
			SpatialRepType: pointer.To("VECTOR"),
			BoundingBox:    metadata.BoundingBox{"north": 14.2, "south": 9.5, "east": 46.5, "west": 41.8},
		},
	}
}

// # Service Tests

func TestCreate_ForcesOwnerAndDefaultStatus(t *testing.T) {
	service, repo, cache := newTestService()

	record, err := service.Create(context.Background(), userScope("alice"), validPayload("Road network"))
	require.NoError(t, err)

	assert.Equal(t, "alice", record.UserID)
	assert.Equal(t, metadata.StatusDraft, record.Status)
	assert.NotEmpty(t, record.ID)
	require.NotNil(t, record.Identification)
	assert.NotEmpty(t, record.Identification.ID)
	assert.Equal(t, record.ID, record.Identification.MetadataID)

	assert.Len(t, repo.records, 1)
	assert.Equal(t, 1, cache.invalidations)
}

func TestCreate_TitleTooShort(t *testing.T) {
	service, repo, _ := newTestService()

	_, err := service.Create(context.Background(), userScope("alice"), validPayload("AB"))
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, repo.records)
}

func TestCreate_BoundingBoxMustHaveFourKeys(t *testing.T) {
	service, _, _ := newTestService()

	payload := validPayload("Road network")
	payload.Identification.BoundingBox = metadata.BoundingBox{"north": 14.2, "south": 9.5, "east": 46.5}

	_, err := service.Create(context.Background(), userScope("alice"), payload)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	require.NotEmpty(t, appErr.Details)

	found := false
	for _, detail := range appErr.Details {
		if detail.Field == "geographic_bounding_box" {
			found = true
			assert.Equal(t, "Must contain north, south, east, and west coordinates", detail.Message)
		}
	}
	assert.True(t, found)
}

func TestCreate_NormalizesVocabulary(t *testing.T) {
	service, _, _ := newTestService()

	payload := validPayload("Ocean temperature grid")
	payload.Language = pointer.To("EN")
	payload.Identification.TopicCategory = pointer.To("Oceans")
	payload.Identification.Keywords = []string{"  Température ", "temperature", "OCEAN"}

	record, err := service.Create(context.Background(), userScope("alice"), payload)
	require.NoError(t, err)

	assert.Equal(t, "en", record.Language)
	assert.Equal(t, "oceans", record.Identification.TopicCategory)
	assert.Equal(t, []string{"temperature", "ocean"}, record.Identification.Keywords)
}

func TestGet_OutOfScopeBehavesAsMissing(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	record, err := service.Create(ctx, userScope("alice"), validPayload("Road network"))
	require.NoError(t, err)

	// The owner and an admin both see it.
	_, err = service.Get(ctx, userScope("alice"), record.ID)
	require.NoError(t, err)
	_, err = service.Get(ctx, adminScope(), record.ID)
	require.NoError(t, err)

	// A peer gets the same answer as for a nonexistent id.
	_, err = service.Get(ctx, userScope("bob"), record.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

func TestList_RoleVisibility(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()

	_, err := service.Create(ctx, userScope("alice"), validPayload("Alice dataset one"))
	require.NoError(t, err)
	_, err = service.Create(ctx, userScope("alice"), validPayload("Alice dataset two"))
	require.NoError(t, err)
	_, err = service.Create(ctx, userScope("bob"), validPayload("Bob dataset"))
	require.NoError(t, err)

	params := pagination.Params{Page: 1, Limit: 20}

	records, total, err := service.List(ctx, userScope("alice"), metadata.Filter{}, params)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, records, 2)

	_, total, err = service.List(ctx, adminScope(), metadata.Filter{}, params)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
}

func TestUpdate_PartialMergeKeepsAbsentFields(t *testing.T) {
	service, _, cache := newTestService()
	ctx := context.Background()
	scope := userScope("alice")

	record, err := service.Create(ctx, scope, validPayload("Road network"))
	require.NoError(t, err)
	writes := cache.invalidations

	updated, err := service.Update(ctx, scope, record.ID, &metadata.Payload{
		Identification: &metadata.IdentificationPayload{
			Title: pointer.To("Road network 2026"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Road network 2026", updated.Identification.Title)
	assert.Equal(t, "A dataset covering the national road network.", updated.Identification.Abstract)
	assert.Equal(t, record.Identification.ID, updated.Identification.ID)
	assert.Equal(t, writes+1, cache.invalidations)
}

func TestUpdate_MaterializedChildGetsIdentifier(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()
	scope := userScope("alice")

	record, err := service.Create(ctx, scope, validPayload("Road network"))
	require.NoError(t, err)
	require.Nil(t, record.Lineage)

	updated, err := service.Update(ctx, scope, record.ID, &metadata.Payload{
		Lineage: &metadata.LineagePayload{
			Statement:      pointer.To("Digitized from survey sheets"),
			HierarchyLevel: pointer.To(1),
		},
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Lineage)
	assert.NotEmpty(t, updated.Lineage.ID)
	assert.Equal(t, record.ID, updated.Lineage.MetadataID)
}

func TestLifecycle_PublishThenArchive(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()
	scope := userScope("alice")

	record, err := service.Create(ctx, scope, validPayload("Road network"))
	require.NoError(t, err)

	published, err := service.Publish(ctx, scope, record.ID)
	require.NoError(t, err)
	assert.Equal(t, metadata.StatusPublished, published.Status)

	// Publishing twice trips the guard.
	_, err = service.Publish(ctx, scope, record.ID)
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "GUARD_VIOLATION", appErr.Code)
	assert.Equal(t, "Can only publish draft metadata", appErr.Message)

	archived, err := service.Archive(ctx, scope, record.ID)
	require.NoError(t, err)
	assert.Equal(t, metadata.StatusArchived, archived.Status)
}

func TestBulkCreate_ReportsPerItemOutcomes(t *testing.T) {
	service, repo, _ := newTestService()

	results, err := service.BulkCreate(context.Background(), userScope("alice"), []metadata.Payload{
		*validPayload("First dataset"),
		*validPayload("AB"), // fails title validation
		*validPayload("Third dataset"),
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.NotNil(t, results[0].Record)
	assert.Nil(t, results[0].Error)

	assert.Nil(t, results[1].Record)
	require.NotNil(t, results[1].Error)
	assert.Equal(t, "VALIDATION_ERROR", results[1].Error.Code)

	assert.NotNil(t, results[2].Record)

	// Only the valid items were persisted.
	assert.Len(t, repo.records, 2)
}

func TestBulkUpdate_AllOrNothing(t *testing.T) {
	service, repo, _ := newTestService()
	ctx := context.Background()
	scope := userScope("alice")

	record, err := service.Create(ctx, scope, validPayload("Road network"))
	require.NoError(t, err)

	_, err = service.BulkUpdate(ctx, scope, []metadata.Payload{
		{ID: record.ID, Identification: &metadata.IdentificationPayload{Title: pointer.To("Renamed dataset")}},
		{ID: "does-not-exist", MetadataStandard: pointer.To("ISO 19115-2")},
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// The first item must not have been persisted.
	assert.Equal(t, "Road network", repo.records[record.ID].Identification.Title)
}

func TestBulkDelete_SkipsOutOfScopeSilently(t *testing.T) {
	service, repo, _ := newTestService()
	ctx := context.Background()

	first, err := service.Create(ctx, userScope("alice"), validPayload("First dataset"))
	require.NoError(t, err)
	second, err := service.Create(ctx, userScope("alice"), validPayload("Second dataset"))
	require.NoError(t, err)
	foreign, err := service.Create(ctx, userScope("bob"), validPayload("Bob dataset"))
	require.NoError(t, err)

	deleted, err := service.BulkDelete(ctx, userScope("alice"), []string{first.ID, second.ID, foreign.ID, "missing"})
	require.NoError(t, err)
	assert.Equal(t, 2, deleted)

	// Bob's record survived.
	assert.Len(t, repo.records, 1)
	_, err = service.Get(ctx, userScope("bob"), foreign.ID)
	assert.NoError(t, err)
}

func TestStatusNotWritableThroughUpdate(t *testing.T) {
	service, _, _ := newTestService()
	ctx := context.Background()
	scope := userScope("alice")

	record, err := service.Create(ctx, scope, validPayload("Road network"))
	require.NoError(t, err)

	updated, err := service.Update(ctx, scope, record.ID, &metadata.Payload{
		Status: pointer.To("PUBLISHED"),
	})
	require.NoError(t, err)
	assert.Equal(t, metadata.StatusDraft, updated.Status, "status only moves through publish/archive")
}
