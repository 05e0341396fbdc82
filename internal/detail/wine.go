// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"regexp"
	"strings"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// wineTitle matches the four wine fields:
//
//	Campagnola / Pinot Grigio / 2010 / Veneto
//	Don Rodolfo -Malbec / 2010 / Mendoza
//
// The first separator may be a slash or a hyphen, so a hyphenated winery or
// style name is split at the hyphen when the title has only two slashes.
var wineTitle = regexp.MustCompile(`^(.+)[/-](.+)/(.+)/(.+)$`)

// ExtractWine parses a wine title into winery, style, year and origin.
func ExtractWine(title string) (*types.WineDetail, error) {
	m := wineTitle.FindStringSubmatch(title)
	if m == nil {
		return nil, &UnparseableError{Category: types.CategoryWine, Title: title}
	}

	d := &types.WineDetail{
		Winery: strings.TrimSpace(m[1]),
		Style:  strings.TrimSpace(m[2]),
		Year:   strings.TrimSpace(m[3]),
		Origin: strings.TrimSpace(m[4]),
		Kind:   types.CategoryWine,
	}
	d.Name = d.Winery + " " + d.Style + " " + d.Year
	return d, nil
}
