// Copyright (c) 2026 Geodex. All rights reserved.

/*
Package account handles user profile administration.

It provides functionalities for users to view and update their identity data,
and for administrators to browse and deactivate accounts.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Visibility: Listing is role-filtered; a regular user only ever sees
    their own account, while administrators see everyone.
*/
package account

import (
	"context"

	"github.com/geodexhq/geodex/internal/users/auth"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id string) (*auth.User, error)

	/*
		List retrieves a page of user accounts, optionally restricted to a
		single owner ID.

		Parameters:
		  - context: context.Context
		  - onlyUserID: string (empty string means no restriction)
		  - params: pagination.Params

		Returns:
		  - []auth.User: Page of accounts
		  - int: Total matching count
		  - error: Retrieval failures
	*/
	List(context context.Context, onlyUserID string, params pagination.Params) ([]auth.User, int, error)

	/*
		Update modifies the mutable profile fields of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: Storage or constraint failures
	*/
	Update(context context.Context, user *auth.User) error

	/*
		Deactivate flags an account as inactive.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Execution failures
	*/
	Deactivate(context context.Context, id string) error
}
