// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import "github.com/geodexhq/geodex/internal/platform/apperr"

// The lifecycle is a strict one-way ladder: DRAFT → PUBLISHED → ARCHIVED.
// Guard failures leave the record untouched and surface as 400-level errors
// with fixed, client-visible messages.

// Publish transitions a draft record to PUBLISHED.
//
// Any other starting state is a guard violation and the record is unchanged.
func (record *Metadata) Publish() error {
	if record.Status != StatusDraft {
		return apperr.GuardViolation("Can only publish draft metadata")
	}

	record.Status = StatusPublished
	return nil
}

// Archive transitions a published record to ARCHIVED.
//
// Any other starting state is a guard violation and the record is unchanged.
func (record *Metadata) Archive() error {
	if record.Status != StatusPublished {
		return apperr.GuardViolation("Can only archive published metadata")
	}

	record.Status = StatusArchived
	return nil
}
