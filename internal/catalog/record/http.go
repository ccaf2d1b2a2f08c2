// Copyright (c) 2026 Geodex. All rights reserved.

package record

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geodexhq/geodex/internal/catalog/metadata"
	requestutil "github.com/geodexhq/geodex/internal/platform/request"
	"github.com/geodexhq/geodex/internal/platform/respond"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// Handler serves the read-only sub-record browsing endpoints.
type Handler struct {
	store *Store
}

// NewHandler constructs a new browse [Handler].
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// Routes returns a [chi.Router] with a list and a get route for every
// descriptor in [Descriptors].
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	for _, descriptor := range Descriptors {
		router.Get("/"+descriptor.Path, handler.list(descriptor))
		router.Get("/"+descriptor.Path+"/{id}", handler.get(descriptor))
	}

	return router
}

// scopeFrom builds the catalog visibility scope from verified claims.
func scopeFrom(request *http.Request) (metadata.Scope, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return metadata.Anonymous(), err
	}
	return metadata.ScopeFor(claims.UserID, sec.UserRole(claims.Role)), nil
}

/*
GET /api/v1/{type}.

Description: Lists the sub-records of one type visible to the requester,
newest first. The nine types share this handler; the descriptor decides the
table and the ownership traversal.

Response:
  - 200: []entity: Paginated page of the concrete sub-record type
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) list(descriptor Descriptor) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		scope, err := scopeFrom(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		params := pagination.FromRequest(request)

		entities, total, err := handler.store.List(request.Context(), scope, descriptor, params)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.Paginated(writer, entities, pagination.NewMeta(params.Page, params.Limit, total))
	}
}

/*
GET /api/v1/{type}/{id}.

Description: Retrieves one sub-record, subject to the requester's
visibility. Out-of-scope rows are indistinguishable from missing ones.

Response:
  - 200: entity: The sub-record
  - 404: ErrNotFound: Missing or out-of-scope row
*/
func (handler *Handler) get(descriptor Descriptor) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		scope, err := scopeFrom(request)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		entity, err := handler.store.Get(request.Context(), scope, descriptor, chi.URLParam(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		respond.OK(writer, entity)
	}
}
