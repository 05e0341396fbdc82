// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Detail is the structured, category-tagged result of parsing a beverage
// title. It is implemented by *WineDetail and *BeerDetail.
type Detail interface {
	DetailKind() Category
}

// WineDetail holds the fields of a wine title of the form
// "<winery> / <style> / <year> / <origin>".
type WineDetail struct {
	Winery string `json:"winery" yaml:"winery"`
	Style  string `json:"style" yaml:"style"`

	// Year is kept as written; wine lists use it verbatim ("2010", "NV").
	Year   string `json:"year" yaml:"year"`
	Origin string `json:"origin" yaml:"origin"`

	// Name is Winery, Style and Year joined by single spaces.
	Name string   `json:"name" yaml:"name"`
	Kind Category `json:"kind" yaml:"kind"`
}

// DetailKind implements Detail.
func (d *WineDetail) DetailKind() Category { return CategoryWine }

// BeerDetail holds the fields recovered from a slash-delimited beer title.
// Empty strings and a zero Year mean the field was not present.
type BeerDetail struct {
	Name    string `json:"name" yaml:"name"`
	Brewery string `json:"brewery,omitempty" yaml:"brewery,omitempty"`
	Style   string `json:"style,omitempty" yaml:"style,omitempty"`
	Origin  string `json:"origin,omitempty" yaml:"origin,omitempty"`

	// ABV is the alcohol content as written, including the "%" suffix.
	ABV string `json:"abv,omitempty" yaml:"abv,omitempty"`

	// Size is the serving size as written, e.g. "22oz" or "750ml".
	Size  string `json:"size,omitempty" yaml:"size,omitempty"`
	Price string `json:"price,omitempty" yaml:"price,omitempty"`

	// Nitro reports a nitrogen-poured serving.
	Nitro bool `json:"nitro,omitempty" yaml:"nitro,omitempty"`

	// Year is a vintage recovered from Name, or 0.
	Year int      `json:"year,omitempty" yaml:"year,omitempty"`
	Kind Category `json:"kind" yaml:"kind"`
}

// DetailKind implements Detail.
func (d *BeerDetail) DetailKind() Category { return CategoryBeer }
