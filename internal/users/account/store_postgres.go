// Copyright (c) 2026 Geodex. All rights reserved.

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/platform/dberr"
	"github.com/geodexhq/geodex/internal/users/auth"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
FindByID retrieves a user record by their unique ID.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *auth.User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id string) (*auth.User, error) {
	const query = `
		SELECT id, email, passwordhash, name, role, COALESCE(organization, ''), isactive, createdat, updatedat
		FROM users.account
		WHERE id = $1`

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.Organization,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("postgres_account_repo_find_by_id_failed: %w", err)
	}

	return user, nil
}

/*
List retrieves a page of user accounts ordered by creation time (newest first).

Description: When onlyUserID is non-empty the result set is restricted to that
single account, which implements the non-admin visibility rule at the SQL layer.

Parameters:
  - context: context.Context
  - onlyUserID: string
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total matching count
  - error: Retrieval failures
*/
func (repository *PostgresAccountRepository) List(context context.Context, onlyUserID string, params pagination.Params) ([]auth.User, int, error) {
	const countQuery = `
		SELECT COUNT(*)
		FROM users.account
		WHERE ($1 = '' OR id = $1::uuid)`

	var total int
	if err := repository.pool.QueryRow(context, countQuery, onlyUserID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_count_failed: %w", err)
	}

	const listQuery = `
		SELECT id, email, passwordhash, name, role, COALESCE(organization, ''), isactive, createdat, updatedat
		FROM users.account
		WHERE ($1 = '' OR id = $1::uuid)
		ORDER BY createdat DESC
		LIMIT $2 OFFSET $3`

	rows, err := repository.pool.Query(context, listQuery, onlyUserID, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_list_failed: %w", err)
	}
	defer rows.Close()

	users := make([]auth.User, 0, params.Limit)
	for rows.Next() {
		var user auth.User
		if err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.PasswordHash,
			&user.Name,
			&user.Role,
			&user.Organization,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("postgres_account_repo_scan_failed: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres_account_repo_rows_failed: %w", err)
	}

	return users, total, nil
}

/*
Update persists changes to a user's mutable profile fields.

Parameters:
  - context: context.Context
  - user: *auth.User

Returns:
  - error: Update failures
*/
func (repository *PostgresAccountRepository) Update(context context.Context, user *auth.User) error {
	const query = `
		UPDATE users.account
		SET name = $2, organization = $3, updatedat = $4
		WHERE id = $1`

	user.UpdatedAt = time.Now()

	var organization any
	if user.Organization != "" {
		organization = user.Organization
	}

	_, err := repository.pool.Exec(context, query, user.ID, user.Name, organization, user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "postgres_account_repo_update_failed")
	}

	return nil
}

/*
Deactivate flags an account as inactive without removing the row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution failures
*/
func (repository *PostgresAccountRepository) Deactivate(context context.Context, id string) error {
	const query = "UPDATE users.account SET isactive = FALSE, updatedat = $2 WHERE id = $1"
	_, err := repository.pool.Exec(context, query, id, time.Now())
	if err != nil {
		return fmt.Errorf("postgres_account_repo_deactivate_failed: %w", err)
	}
	return nil
}
