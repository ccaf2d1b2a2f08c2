// Copyright (c) 2026 Geodex. All rights reserved.

package keyword_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geodexhq/geodex/pkg/keyword"
)

/*
TestNormalize covers accent stripping, case folding and whitespace collapsing.
*/
func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain", "hydrology", "hydrology"},
		{"uppercase", "HYDROLOGY", "hydrology"},
		{"accented", "Température", "temperature"},
		{"spanish_accent", "hidrología", "hidrologia"},
		{"surrounding_space", "  ocean currents  ", "ocean currents"},
		{"internal_runs", "land    use", "land use"},
		{"empty", "", ""},
		{"whitespace_only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, keyword.Normalize(tt.input))
		})
	}
}

/*
TestNormalizeAll verifies empty terms and duplicates are dropped while
first-seen order is preserved.
*/
func TestNormalizeAll(t *testing.T) {
	input := []string{"  Température ", "temperature", "OCEAN", "", "  ", "Ocean"}

	assert.Equal(t, []string{"temperature", "ocean"}, keyword.NormalizeAll(input))
}

/*
TestNormalizeAll_Nil verifies nil passes through unchanged.
*/
func TestNormalizeAll_Nil(t *testing.T) {
	assert.Nil(t, keyword.NormalizeAll(nil))
}
