// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"strings"
	"time"
)

// Category identifies which extractor handles the beverages of a section.
type Category string

const (
	CategoryWine Category = "wine"
	CategoryBeer Category = "beer"
)

// wineMarker is the substring of a section name that marks it as a wine list.
// The match is case-sensitive.
const wineMarker = "Wine"

// CategoryOf derives the category of a menu section from its display name.
// Any name that does not contain "Wine" is treated as beer.
func CategoryOf(sectionName string) Category {
	if strings.Contains(sectionName, wineMarker) {
		return CategoryWine
	}
	return CategoryBeer
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return c == CategoryWine || c == CategoryBeer
}

// Menu is one restaurant menu assembled from a listing file.
type Menu struct {
	// Location is the restaurant location the listings were scraped for.
	Location string `json:"location" yaml:"location"`

	// Parsed is when the menu was assembled.
	Parsed time.Time `json:"parsed" yaml:"parsed"`

	// Sections lists the menu sections in the order they were first seen.
	Sections []Section `json:"sections" yaml:"sections"`
}

// Section is one category grouping on the menu, such as a beer style group
// or a wine list. Category is derived once from Name.
type Section struct {
	Name      string     `json:"name" yaml:"name"`
	Category  Category   `json:"category" yaml:"category"`
	Beverages []Beverage `json:"beverages" yaml:"beverages"`
}

// Beverage is one listed item. Title is the raw display title and is never
// rewritten; Detail is nil when the title could not be parsed.
type Beverage struct {
	Title  string `json:"title" yaml:"title"`
	Detail Detail `json:"detail,omitempty" yaml:"detail,omitempty"`
}
