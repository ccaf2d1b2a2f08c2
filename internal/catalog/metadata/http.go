// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/geodexhq/geodex/internal/platform/request"
	"github.com/geodexhq/geodex/internal/platform/respond"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/internal/platform/validate"
	"github.com/geodexhq/geodex/pkg/pagination"
	"github.com/geodexhq/geodex/pkg/query"
	"github.com/geodexhq/geodex/pkg/slice"
)

// Handler implements the HTTP layer for the metadata catalog.
type Handler struct {
	catalogService *Service
}

// NewHandler constructs a new catalog [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{catalogService: service}
}

// Routes returns a [chi.Router] configured with the catalog endpoints.
//
// Bulk routes are registered before the {id} routes so the literal path
// segments never match as identifiers.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listRecords)
	router.Post("/", handler.createRecord)

	router.Post("/bulk_create", handler.bulkCreate)
	router.Post("/bulk_update", handler.bulkUpdate)
	router.Post("/bulk_delete", handler.bulkDelete)

	router.Get("/{id}", handler.getRecord)
	router.Patch("/{id}", handler.updateRecord)
	router.Delete("/{id}", handler.deleteRecord)
	router.Post("/{id}/publish", handler.publishRecord)
	router.Post("/{id}/archive", handler.archiveRecord)

	return router
}

// scopeFrom builds the catalog visibility scope from verified claims.
func scopeFrom(request *http.Request) (Scope, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return Anonymous(), err
	}
	return ScopeFor(claims.UserID, sec.UserRole(claims.Role)), nil
}

/*
GET /api/v1/metadata.

Description: Lists the metadata records visible to the requester, newest
first. Supports status, creation-window, and title filters.

Query Parameters:
  - status: Comma-separated status values (DRAFT, PUBLISHED, ARCHIVED)
  - start_date / end_date: Creation window bounds (RFC 3339 or YYYY-MM-DD)
  - q: Title search term
  - page / limit: Pagination

Response:
  - 200: []Metadata: Paginated record page
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listRecords(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	filter := filterFromRequest(request)
	params := pagination.FromRequest(request)

	records, total, err := handler.catalogService.List(request.Context(), scope, filter, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, pagination.NewMeta(params.Page, params.Limit, total))
}

// filterFromRequest parses the catalog listing filters off the query string.
func filterFromRequest(request *http.Request) Filter {
	filter := Filter{
		Query:     strings.TrimSpace(request.URL.Query().Get("q")),
		StartDate: query.Time(request.URL.Query().Get("start_date")),
		EndDate:   query.Time(request.URL.Query().Get("end_date")),
	}
	filter.Status = slice.Map(
		query.StringSlice(request.URL.Query().Get("status")),
		func(raw string) Status { return Status(strings.ToUpper(raw)) },
	)
	return filter
}

/*
POST /api/v1/metadata.

Description: Registers a new metadata record owned by the requester. The
record starts as DRAFT unless the payload carries an explicit status.

Request:
  - body: Payload (Root fields plus optional nested blocks)

Response:
  - 201: Metadata: The created aggregate
  - 400: Validation: Invalid input data
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) createRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload Payload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	record, err := handler.catalogService.Create(request.Context(), scope, &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

/*
GET /api/v1/metadata/{id}.

Description: Retrieves one fully hydrated record, subject to the requester's
visibility. Out-of-scope records are indistinguishable from missing ones.

Response:
  - 200: Metadata: The hydrated aggregate
  - 404: ErrNotFound: Missing or out-of-scope record
*/
func (handler *Handler) getRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	record, err := handler.catalogService.Get(request.Context(), scope, chi.URLParam(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
PATCH /api/v1/metadata/{id}.

Description: Applies a partial update. Only supplied fields change; nested
blocks are merged, never replaced wholesale. Ownership and status are not
writable through this endpoint.

Request:
  - body: Payload (Partial JSON)

Response:
  - 200: Metadata: The updated aggregate
  - 400: Validation: Invalid input data
  - 404: ErrNotFound: Missing or out-of-scope record
*/
func (handler *Handler) updateRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var payload Payload
	if err := requestutil.DecodeJSON(request, &payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	record, err := handler.catalogService.Update(request.Context(), scope, chi.URLParam(request, "id"), &payload)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

/*
DELETE /api/v1/metadata/{id}.

Description: Removes a record and every nested block.

Response:
  - 204: No Content: Record deleted
  - 404: ErrNotFound: Missing or out-of-scope record
*/
func (handler *Handler) deleteRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.catalogService.Delete(request.Context(), scope, chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
POST /api/v1/metadata/{id}/publish.

Description: Moves a draft record into the published state.

Response:
  - 200: {"status": "metadata published"}
  - 400: GuardViolation: Record is not a draft
  - 404: ErrNotFound: Missing or out-of-scope record
*/
func (handler *Handler) publishRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.catalogService.Publish(request.Context(), scope, chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldStatus: "metadata published"})
}

/*
POST /api/v1/metadata/{id}/archive.

Description: Moves a published record into the archived state.

Response:
  - 200: {"status": "metadata archived"}
  - 400: GuardViolation: Record is not published
  - 404: ErrNotFound: Missing or out-of-scope record
*/
func (handler *Handler) archiveRecord(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if _, err := handler.catalogService.Archive(request.Context(), scope, chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldStatus: "metadata archived"})
}

// bulkItemsRequest wraps a batch of payloads for the bulk write endpoints.
type bulkItemsRequest struct {
	Items []Payload `json:"items"`
}

/*
POST /api/v1/metadata/bulk_create.

Description: Registers several records in one call. Items are independent;
the response reports success or failure per item, index-aligned with the
input.

Request:
  - body: {"items": [Payload, ...]}

Response:
  - 201: []BulkResult: Per-item outcomes
  - 400: Validation: Empty batch
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) bulkCreate(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input bulkItemsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	results, err := handler.catalogService.BulkCreate(request.Context(), scope, input.Items)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, results)
}

/*
POST /api/v1/metadata/bulk_update.

Description: Applies several partial updates in one transaction. Each item
must carry the id of the record it targets; the batch is all-or-nothing.

Request:
  - body: {"items": [Payload (with id), ...]}

Response:
  - 200: []Metadata: The updated aggregates, in input order
  - 400: Validation: Invalid input data
  - 404: ErrNotFound: A target is missing or out of scope
*/
func (handler *Handler) bulkUpdate(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input bulkItemsRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	records, err := handler.catalogService.BulkUpdate(request.Context(), scope, input.Items)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, records)
}

// bulkDeleteRequest lists the records targeted by a bulk delete.
type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

/*
POST /api/v1/metadata/bulk_delete.

Description: Removes several records. Missing or out-of-scope ids are
skipped silently; the response reports how many records were deleted.

Request:
  - body: {"ids": ["...", ...]}

Response:
  - 200: {"deleted_count": N}
  - 400: Validation: Empty batch
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) bulkDelete(writer http.ResponseWriter, request *http.Request) {
	scope, err := scopeFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input bulkDeleteRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	deleted, err := handler.catalogService.BulkDelete(request.Context(), scope, input.IDs)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]int{FieldDeletedCount: deleted})
}
