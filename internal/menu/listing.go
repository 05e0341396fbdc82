// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Listing is one raw (section name, title) pair as scraped from a menu page.
type Listing struct {
	Section string `json:"section" yaml:"section"`
	Title   string `json:"title" yaml:"title"`
}

// ListingFile is the on-disk form of a scraped menu: section headers with
// the raw titles listed under each, in page order.
type ListingFile struct {
	Location string           `json:"location,omitempty" yaml:"location,omitempty"`
	Sections []ListingSection `json:"sections" yaml:"sections"`
}

// ListingSection holds the raw titles found under one section header.
type ListingSection struct {
	Name   string   `json:"name" yaml:"name"`
	Titles []string `json:"titles" yaml:"titles"`
}

// Listings flattens the file into (section, title) pairs in document order.
func (f *ListingFile) Listings() []Listing {
	var out []Listing
	for _, s := range f.Sections {
		for _, title := range s.Titles {
			out = append(out, Listing{Section: s.Name, Title: title})
		}
	}
	return out
}

// ReadListingFile loads a listing file. Files ending in .json are decoded
// as JSON; anything else is decoded as YAML.
func ReadListingFile(path string) (*ListingFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading listing file: %w", err)
	}

	var f ListingFile
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &f)
	} else {
		err = yaml.Unmarshal(data, &f)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing listing file %s: %w", path, err)
	}
	return &f, nil
}
