// Copyright (c) 2026 Geodex. All rights reserved.

// Package keyword normalizes free-form descriptive keyword terms.
//
// # Usage
//
// Identification records carry a list of search keywords supplied by data
// curators in arbitrary Unicode ("Hydrology ", "HYDROLOGIE", "hydrología").
// This package canonicalizes them so equality and filtering behave sensibly:
// accents are stripped, case is folded, and internal whitespace is collapsed.
package keyword

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// multiSpace collapses runs of whitespace into a single space.
var multiSpace = regexp.MustCompile(`\s{2,}`)

// Normalize converts an arbitrary Unicode keyword into its canonical form.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Converts to lowercase.
// 4. Collapses internal whitespace and trims the ends.
func Normalize(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Collapse whitespace
	result = multiSpace.ReplaceAllString(result, " ")
	result = strings.TrimSpace(result)

	return result
}

// NormalizeAll canonicalizes every term in the list, dropping empties and
// duplicates while preserving first-seen order.
func NormalizeAll(terms []string) []string {
	if terms == nil {
		return nil
	}

	seen := make(map[string]struct{}, len(terms))
	result := make([]string, 0, len(terms))

	for _, term := range terms {
		clean := Normalize(term)
		if clean == "" {
			continue
		}
		if _, dup := seen[clean]; dup {
			continue
		}
		seen[clean] = struct{}{}
		result = append(result, clean)
	}

	return result
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
