// Copyright (c) 2026 Geodex. All rights reserved.

/*
Package account provides the HTTP delivery layer for user administration.

# Security

All endpoints in this package require an active authentication session provided
by the RequireAuth middleware. Visibility is role-filtered inside the service.
*/
package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	requestutil "github.com/geodexhq/geodex/internal/platform/request"
	"github.com/geodexhq/geodex/internal/platform/respond"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/internal/platform/validate"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// Handler implements the HTTP layer for user account management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Routes returns a [chi.Router] configured with the account domain's endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listUsers)
	router.Get("/{id}", handler.getUser)
	router.Patch("/{id}", handler.updateUser)
	router.Delete("/{id}", handler.deactivateUser)

	return router
}

// requesterFrom builds the service-level requester identity from verified claims.
func requesterFrom(request *http.Request) (Requester, error) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		return Requester{}, err
	}

	return Requester{
		UserID: claims.UserID,
		Role:   sec.UserRole(claims.Role),
	}, nil
}

/*
GET /api/v1/users.

Description: Lists the accounts visible to the requester. Administrators see
every account; regular users receive only their own.

Response:
  - 200: []User: Paginated account page
  - 401: ErrUnauthorized: Authentication required
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	requester, err := requesterFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	users, total, err := handler.accountService.ListUsers(request.Context(), requester, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, users, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/users/{id}.

Description: Retrieves a single account, subject to the requester's visibility.

Response:
  - 200: User: Hydrated account
  - 404: ErrNotFound: Missing or out-of-scope account
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	requester, err := requesterFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID := chi.URLParam(request, "id")
	if userID == "" {
		respond.Error(writer, request, apperr.NotFound("User not found"))
		return
	}

	user, err := handler.accountService.GetProfile(request.Context(), requester, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateUserRequest defines the expected JSON payload for profile updates.
type updateUserRequest struct {
	Name         *string `json:"name"`
	Organization *string `json:"organization"`
}

/*
PATCH /api/v1/users/{id}.

Description: Applies partial updates to an account's mutable profile fields.

Request:
  - body: updateUserRequest (Partial JSON)

Response:
  - 200: User: The updated profile
  - 400: ErrInvalidJSON/Validation: Invalid input data
  - 404: ErrNotFound: Missing or out-of-scope account
*/
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	requester, err := requesterFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateUserRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	v := &validate.Validator{}
	if input.Name != nil {
		v.MinLen("name", *input.Name, 2).MaxLen("name", *input.Name, 255)
	}
	if input.Organization != nil {
		v.MaxLen("organization", *input.Organization, 255)
	}

	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.UpdateProfile(request.Context(), requester, chi.URLParam(request, "id"), UpdateProfileInput{
		Name:         input.Name,
		Organization: input.Organization,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
DELETE /api/v1/users/{id}.

Description: Deactivates an account and revokes its sessions. Rows are kept
for retention; only sign-in is disabled.

Response:
  - 204: No Content: Account deactivated
  - 404: ErrNotFound: Missing or out-of-scope account
*/
func (handler *Handler) deactivateUser(writer http.ResponseWriter, request *http.Request) {
	requester, err := requesterFrom(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.DeactivateAccount(request.Context(), requester, chi.URLParam(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
