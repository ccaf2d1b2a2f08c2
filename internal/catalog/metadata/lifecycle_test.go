// Copyright (c) 2026 Geodex. All rights reserved.

package metadata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/platform/apperr"
	"github.com/geodexhq/geodex/internal/catalog/metadata"
)

/*
TestPublish verifies the draft-to-published transition and its guard.
*/
func TestPublish(t *testing.T) {
	record := &metadata.Metadata{Status: metadata.StatusDraft}

	require.NoError(t, record.Publish())
	assert.Equal(t, metadata.StatusPublished, record.Status)

	// A second publish must fail without touching the status.
	err := record.Publish()
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "GUARD_VIOLATION", appErr.Code)
	assert.Equal(t, "Can only publish draft metadata", appErr.Message)
	assert.Equal(t, metadata.StatusPublished, record.Status)
}

/*
TestArchive verifies the published-to-archived transition and its guard.
*/
func TestArchive(t *testing.T) {
	record := &metadata.Metadata{Status: metadata.StatusDraft}

	// Archiving a draft is rejected.
	err := record.Archive()
	require.Error(t, err)
	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Can only archive published metadata", appErr.Message)
	assert.Equal(t, metadata.StatusDraft, record.Status)

	require.NoError(t, record.Publish())
	require.NoError(t, record.Archive())
	assert.Equal(t, metadata.StatusArchived, record.Status)

	// Archived is terminal.
	assert.Error(t, record.Publish())
	assert.Error(t, record.Archive())
}
