// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/menu-engine/pkg/types"
)

const (
	minPieces = 3
	maxPieces = 6

	// A vintage must fall strictly between these years.
	minVintage = 1990
	maxVintage = 2020
)

var (
	// beerHead splits "<name> - <brewery>" at the first hyphen.
	beerHead = regexp.MustCompile(`^([^-]+)-(.+)$`)

	vintage = regexp.MustCompile(`[0-9]{4}`)
)

// ExtractBeer parses a slash-delimited beer title. The first piece is the
// name, optionally followed by "- <brewery>"; the remaining pieces are
// recognised by shape (abv, price, size, nitro) and whatever is left is
// assigned by position:
//
//	Old Speckled Hen - Green King / UK / Cream Ale / Nitro / 5.2%
//	RazzMaTazz - Julian / CA / Rasp Cider / 22oz / 6.9% / $12
//	Weihenstephaner Original - Germ / Helles Lager / 5.1%
func ExtractBeer(title string) (*types.BeerDetail, error) {
	pieces := splitPieces(cleanBeerTitle(title))
	total := len(pieces)
	if total < minPieces || total > maxPieces {
		return nil, &PieceCountError{Count: total, Title: title}
	}

	d := &types.BeerDetail{Kind: types.CategoryBeer}
	d.Name, d.Brewery = parseHead(pieces[0])

	var unclaimed []string
	for _, piece := range pieces[1:] {
		if piece == "" {
			continue
		}
		if update, ok := classifyPiece(piece); ok {
			update(d)
			continue
		}
		unclaimed = append(unclaimed, piece)
	}

	if len(unclaimed) < 1 || len(unclaimed) > 2 {
		return nil, &UnidentifiedPiecesError{Pieces: unclaimed, Title: title}
	}
	// A three piece title has no room for an origin.
	if total == 3 {
		d.Style = unclaimed[0]
	} else {
		d.Origin = unclaimed[0]
		if len(unclaimed) == 2 {
			d.Style = unclaimed[1]
		}
	}

	d.Year = parseVintage(d.Name)
	return d, nil
}

// cleanBeerTitle rewrites the abbreviations that would otherwise be split
// as piece separators.
func cleanBeerTitle(title string) string {
	title = strings.ReplaceAll(title, "w/", "with ")
	return strings.ReplaceAll(title, "IPAw / ", "IPA with ")
}

// splitPieces splits on "/" and trims each piece. Empty pieces are kept so
// that the count reflects the title as written.
func splitPieces(title string) []string {
	pieces := strings.Split(title, "/")
	for i, p := range pieces {
		pieces[i] = strings.TrimSpace(p)
	}
	return pieces
}

func parseHead(piece string) (name, brewery string) {
	if m := beerHead.FindStringSubmatch(piece); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2])
	}
	return strings.TrimSpace(piece), ""
}

// parseVintage returns the first four digit run in name when it is a
// plausible vintage, or 0.
func parseVintage(name string) int {
	digits := vintage.FindString(name)
	if digits == "" {
		return 0
	}
	year, err := strconv.Atoi(digits)
	if err != nil || year <= minVintage || year >= maxVintage {
		return 0
	}
	return year
}
