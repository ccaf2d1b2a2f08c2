// Copyright (c) 2026 Geodex. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/geodexhq/geodex/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource not found")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Integrity violations surface as validation-style field errors so a
	//    duplicate email reads the same as any other bad input.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   constraintField(pgErr.ConstraintName),
				Message: "Already exists",
			})
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   constraintField(pgErr.ConstraintName),
				Message: "Referenced record does not exist",
			})
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// constraintField derives a client-facing field name from a Postgres
// constraint name such as "account_email_key" or "identification_metadataid_fkey".
func constraintField(constraint string) string {
	if constraint == "" {
		return "detail"
	}

	parts := splitConstraint(constraint)
	if len(parts) >= 2 {
		return parts[1]
	}
	return constraint
}

func splitConstraint(constraint string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(constraint); i++ {
		if constraint[i] == '_' {
			parts = append(parts, constraint[start:i])
			start = i + 1
		}
	}
	parts = append(parts, constraint[start:])
	return parts
}
