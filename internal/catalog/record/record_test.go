// Copyright (c) 2026 Geodex. All rights reserved.

package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/catalog/record"
)

/*
TestDescriptors_Integrity checks the invariants the shared store relies on:
unique paths, column lists aligned with scan targets, and the primary key /
timestamp column convention.
*/
func TestDescriptors_Integrity(t *testing.T) {
	require.Len(t, record.Descriptors, 9)

	paths := make(map[string]bool)
	for _, descriptor := range record.Descriptors {
		assert.NotEmpty(t, descriptor.Path)
		assert.NotEmpty(t, descriptor.Label)
		assert.NotEmpty(t, descriptor.Table)
		assert.NotEmpty(t, descriptor.ParentKey)

		assert.False(t, paths[descriptor.Path], "duplicate path %q", descriptor.Path)
		paths[descriptor.Path] = true

		entity, targets := descriptor.NewEntity()
		require.NotNil(t, entity)
		assert.Len(t, targets, len(descriptor.Columns),
			"%s: scan targets must align with the select list", descriptor.Path)

		assert.Equal(t, "id", descriptor.Columns[0], "%s: primary key convention", descriptor.Path)
		assert.Equal(t, "createdat", descriptor.Columns[len(descriptor.Columns)-2], descriptor.Path)
		assert.Equal(t, "updatedat", descriptor.Columns[len(descriptor.Columns)-1], descriptor.Path)
	}
}

/*
TestDescriptors_FreshEntities checks that NewEntity returns an independent
allocation on every call, so concurrent scans never share state.
*/
func TestDescriptors_FreshEntities(t *testing.T) {
	for _, descriptor := range record.Descriptors {
		first, _ := descriptor.NewEntity()
		second, _ := descriptor.NewEntity()
		assert.NotSame(t, first, second, descriptor.Path)
	}
}
