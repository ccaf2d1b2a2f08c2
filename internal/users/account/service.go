// Copyright (c) 2026 Geodex. All rights reserved.

package account

import (
	"context"
	"fmt"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/sec"
	"github.com/geodexhq/geodex/internal/users/auth"
	"github.com/geodexhq/geodex/pkg/pagination"
	"github.com/geodexhq/geodex/pkg/pointer"
)

// Requester identifies who is performing an account operation.
type Requester struct {
	UserID string
	Role   sec.UserRole
}

// Service implements account administration use cases.
type Service struct {
	accountRepository AccountRepository
	sessionRepository auth.SessionRepository
}

// NewService constructs a new account [Service].
func NewService(accountRepo AccountRepository, sessionRepo auth.SessionRepository) *Service {
	return &Service{
		accountRepository: accountRepo,
		sessionRepository: sessionRepo,
	}
}

/*
GetProfile retrieves a single account, subject to the requester's visibility.

Description: Administrators can resolve any account; regular users can only
resolve themselves. An out-of-scope lookup behaves exactly like a missing
record.

Parameters:
  - context: context.Context
  - requester: Requester
  - id: string

Returns:
  - *auth.User: Hydrated account
  - error: apperr.NotFound or storage failures
*/
func (service *Service) GetProfile(context context.Context, requester Requester, id string) (*auth.User, error) {
	if !requester.Role.IsAdmin() && requester.UserID != id {
		return nil, apperr.NotFound("User not found")
	}

	return service.accountRepository.FindByID(context, id)
}

/*
ListUsers retrieves a page of accounts visible to the requester.

Description: Administrators see every account; regular users see a
single-element page containing only themselves.

Parameters:
  - context: context.Context
  - requester: Requester
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total matching count
  - error: Retrieval failures
*/
func (service *Service) ListUsers(context context.Context, requester Requester, params pagination.Params) ([]auth.User, int, error) {
	onlyUserID := ""
	if !requester.Role.IsAdmin() {
		onlyUserID = requester.UserID
	}

	return service.accountRepository.List(context, onlyUserID, params)
}

// UpdateProfileInput carries the optional profile fields of a PATCH request.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	Name         *string
	Organization *string
}

/*
UpdateProfile applies a partial update to an account's mutable fields.

Parameters:
  - context: context.Context
  - requester: Requester
  - id: string
  - input: UpdateProfileInput

Returns:
  - *auth.User: The updated account
  - error: apperr.NotFound or persistence failures
*/
func (service *Service) UpdateProfile(context context.Context, requester Requester, id string, input UpdateProfileInput) (*auth.User, error) {
	user, err := service.GetProfile(context, requester, id)
	if err != nil {
		return nil, err
	}

	// Merge only the fields the caller actually supplied.
	user.Name = pointer.Fallback(input.Name, user.Name)
	user.Organization = pointer.Fallback(input.Organization, user.Organization)

	if err := service.accountRepository.Update(context, user); err != nil {
		return nil, fmt.Errorf("account_service_update_failed: %w", err)
	}

	return user, nil
}

/*
DeactivateAccount disables sign-in for an account and revokes its sessions.

Description: The account row and its owned catalog records survive. Only
administrators and the account owner may deactivate.

Parameters:
  - context: context.Context
  - requester: Requester
  - id: string

Returns:
  - error: apperr.NotFound or persistence failures
*/
func (service *Service) DeactivateAccount(context context.Context, requester Requester, id string) error {
	if _, err := service.GetProfile(context, requester, id); err != nil {
		return err
	}

	if err := service.accountRepository.Deactivate(context, id); err != nil {
		return fmt.Errorf("account_service_deactivate_failed: %w", err)
	}

	// Security cleanup: a deactivated account keeps no live sessions.
	_ = service.sessionRepository.RevokeAll(context, id)

	return nil
}
