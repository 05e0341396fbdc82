// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package detail extracts structured beverage details from menu listing
// titles. Wine titles follow a fixed four-field grammar; beer titles are
// split into pieces that are classified by shape and, failing that, by
// position.
//
// Every function in this package is pure: the result depends only on the
// title and category, nothing is logged, and calls may run concurrently.
package detail

import (
	"fmt"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// ClassifySection returns the category of a menu section from its name.
func ClassifySection(sectionName string) types.Category {
	return types.CategoryOf(sectionName)
}

// Extract parses title with the extractor for category. Failures are
// returned as *UnparseableError, *PieceCountError or
// *UnidentifiedPiecesError, all of which wrap ErrNoDetail.
func Extract(title string, category types.Category) (types.Detail, error) {
	switch category {
	case types.CategoryWine:
		d, err := ExtractWine(title)
		if err != nil {
			return nil, err
		}
		return d, nil
	case types.CategoryBeer:
		d, err := ExtractBeer(title)
		if err != nil {
			return nil, err
		}
		return d, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
}

// ExtractForSection classifies sectionName and extracts title accordingly.
func ExtractForSection(sectionName, title string) (types.Detail, error) {
	return Extract(title, ClassifySection(sectionName))
}
