// Copyright (c) 2026 Geodex. All rights reserved.

package metadata_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geodexhq/geodex/internal/catalog/metadata"
	"github.com/geodexhq/geodex/pkg/pointer"
)

/*
TestApplyTo_PartialMerge checks that only supplied fields change and that
absent nested blocks stay untouched.
*/
func TestApplyTo_PartialMerge(t *testing.T) {
	record := &metadata.Metadata{
		ID:               "m1",
		Status:           metadata.StatusDraft,
		MetadataLinkage:  "https://old.example.com",
		MetadataStandard: "ISO 19115",
		Language:         "en",
		Identification: &metadata.IdentificationInfo{
			ID:       "i1",
			Title:    "Road network",
			Abstract: "Old abstract text",
		},
		Lineage: &metadata.ResourceLineage{ID: "l1", Statement: "Digitized from survey sheets"},
	}

	payload := &metadata.Payload{
		MetadataLinkage: pointer.To("https://new.example.com"),
		Identification: &metadata.IdentificationPayload{
			Title: pointer.To("Road network 2026"),
		},
	}
	payload.ApplyTo(record)

	// Supplied fields changed.
	assert.Equal(t, "https://new.example.com", record.MetadataLinkage)
	assert.Equal(t, "Road network 2026", record.Identification.Title)

	// Everything else survived the merge.
	assert.Equal(t, "ISO 19115", record.MetadataStandard)
	assert.Equal(t, "en", record.Language)
	assert.Equal(t, "Old abstract text", record.Identification.Abstract)
	assert.Equal(t, "i1", record.Identification.ID)
	require.NotNil(t, record.Lineage)
	assert.Equal(t, "Digitized from survey sheets", record.Lineage.Statement)
}

/*
TestApplyTo_MaterializesMissingChild checks that a supplied block is created
when the aggregate does not have one yet, without an identifier.
*/
func TestApplyTo_MaterializesMissingChild(t *testing.T) {
	record := &metadata.Metadata{ID: "m1", Status: metadata.StatusDraft}

	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	payload := &metadata.Payload{
		Identification: &metadata.IdentificationPayload{
			Title: pointer.To("Coastal erosion survey"),
			TemporalExtent: &metadata.TemporalExtentPayload{
				StartDate: &start,
			},
		},
		Quality: &metadata.DataQualityPayload{
			CompletenessReport: pointer.To("98% of shoreline covered"),
		},
	}
	payload.ApplyTo(record)

	require.NotNil(t, record.Identification)
	assert.Empty(t, record.Identification.ID, "identifier assignment belongs to the service")
	require.NotNil(t, record.Identification.TemporalExtent)
	assert.True(t, start.Equal(record.Identification.TemporalExtent.StartDate))
	require.NotNil(t, record.Quality)
	assert.Equal(t, "98% of shoreline covered", record.Quality.CompletenessReport)

	// Blocks that were never supplied stay nil.
	assert.Nil(t, record.Distribution)
	assert.Nil(t, record.ReferenceSystem)
	assert.Nil(t, record.Contact)
}

/*
TestApplyTo_BoundingBoxReplacedWhole checks that a supplied bounding box
replaces the previous one outright instead of key-merging.
*/
func TestApplyTo_BoundingBoxReplacedWhole(t *testing.T) {
	record := &metadata.Metadata{
		Identification: &metadata.IdentificationInfo{
			BoundingBox: metadata.BoundingBox{"north": 1, "south": 0, "east": 1, "west": 0},
		},
	}

	payload := &metadata.Payload{
		Identification: &metadata.IdentificationPayload{
			BoundingBox: metadata.BoundingBox{"north": 14.2, "south": 9.5, "east": 46.5, "west": 41.8},
		},
	}
	payload.ApplyTo(record)

	assert.Equal(t, 14.2, record.Identification.BoundingBox["north"])
	assert.Equal(t, 41.8, record.Identification.BoundingBox["west"])
	assert.Len(t, record.Identification.BoundingBox, 4)
}
