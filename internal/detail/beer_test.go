// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/menu-engine/pkg/types"
)

func TestExtractBeer(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  *types.BeerDetail
	}{
		{
			name:  "nitro with origin and style",
			title: "Old Speckled Hen - Green King / UK / Cream Ale / Nitro / 5.2%",
			want: &types.BeerDetail{
				Name: "Old Speckled Hen", Brewery: "Green King", Origin: "UK", Style: "Cream Ale",
				Nitro: true, ABV: "5.2%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "size abv and price",
			title: "RazzMaTazz - Julian / CA / Rasp Cider / 22oz / 6.9% / $12",
			want: &types.BeerDetail{
				Name: "RazzMaTazz", Brewery: "Julian", Origin: "CA", Style: "Rasp Cider",
				Size: "22oz", ABV: "6.9%", Price: "$12", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "abv and price without size",
			title: "Saison Dupont Cuvee Dry Hop - Dupont / Belg / Saison / 6.5% / $10",
			want: &types.BeerDetail{
				Name: "Saison Dupont Cuvee Dry Hop", Brewery: "Dupont", Origin: "Belg", Style: "Saison",
				ABV: "6.5%", Price: "$10", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "vintage in name",
			title: "Avec Les Bons Voeux 2012 - Dupont / Belg / Xmas Saison / 9.5%",
			want: &types.BeerDetail{
				Name: "Avec Les Bons Voeux 2012", Brewery: "Dupont", Origin: "Belg", Style: "Xmas Saison",
				ABV: "9.5%", Year: 2012, Kind: types.CategoryBeer,
			},
		},
		{
			name:  "three pieces make the unclaimed piece the style",
			title: "Weihenstephaner Original - Germ / Helles Lager / 5.1%",
			want: &types.BeerDetail{
				Name: "Weihenstephaner Original", Brewery: "Germ", Style: "Helles Lager",
				ABV: "5.1%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "single unclaimed piece in a longer title is the origin",
			title: "Pliny the Elder - Russian River / CA / 8% / $8",
			want: &types.BeerDetail{
				Name: "Pliny the Elder", Brewery: "Russian River", Origin: "CA",
				ABV: "8%", Price: "$8", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "no brewery without a hyphen",
			title: "Pliny the Elder / CA / Double IPA / 8%",
			want: &types.BeerDetail{
				Name: "Pliny the Elder", Origin: "CA", Style: "Double IPA",
				ABV: "8%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "brewery keeps later hyphens",
			title: "Hop Rod Rye - Bear Republic-Healdsburg / CA / Rye IPA / 8%",
			want: &types.BeerDetail{
				Name: "Hop Rod Rye", Brewery: "Bear Republic-Healdsburg", Origin: "CA", Style: "Rye IPA",
				ABV: "8%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "leading hyphen is not a brewery separator",
			title: "-Unnamed / CA / Stout / 9%",
			want: &types.BeerDetail{
				Name: "-Unnamed", Origin: "CA", Style: "Stout",
				ABV: "9%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "w/ is not a separator",
			title: "Blonde w/Honey - Allagash / ME / Blonde Ale / 5%",
			want: &types.BeerDetail{
				Name: "Blonde with Honey", Brewery: "Allagash", Origin: "ME", Style: "Blonde Ale",
				ABV: "5%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "IPAw / is not a separator",
			title: "Sculpin IPAw / Grapefruit - Ballast Point / CA / IPA / 7%",
			want: &types.BeerDetail{
				Name: "Sculpin IPA with Grapefruit", Brewery: "Ballast Point", Origin: "CA", Style: "IPA",
				ABV: "7%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "price wins over size",
			title: "Happy Hour - Stout / CA / Porter / $5oz",
			want: &types.BeerDetail{
				Name: "Happy Hour", Brewery: "Stout", Origin: "CA", Style: "Porter",
				Price: "$5oz", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "place name ending in oz is taken as size",
			title: "Estrella - Damm / Badajoz / Lager / 5%",
			want: &types.BeerDetail{
				Name: "Estrella", Brewery: "Damm", Origin: "Lager", Size: "Badajoz",
				ABV: "5%", Kind: types.CategoryBeer,
			},
		},
		{
			name:  "empty pieces are counted but not classified",
			title: "Duvel - Moortgat / Belg / / Golden Ale / 8.5%",
			want: &types.BeerDetail{
				Name: "Duvel", Brewery: "Moortgat", Origin: "Belg", Style: "Golden Ale",
				ABV: "8.5%", Kind: types.CategoryBeer,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBeer(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBeerPieceCount(t *testing.T) {
	tests := []struct {
		title string
		count int
	}{
		{title: "Pabst Blue Ribbon", count: 1},
		{title: "Pilsner Urquell / 4.4%", count: 2},
		{title: "A - B / C / D / E / F / G / H", count: 7},
		{title: "Empty - Pieces / / / / / / / 5%", count: 8},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, err := ExtractBeer(tt.title)
			assert.Nil(t, got)

			var countErr *PieceCountError
			require.ErrorAs(t, err, &countErr)
			assert.Equal(t, tt.count, countErr.Count)
			assert.Equal(t, tt.title, countErr.Title)
			assert.ErrorIs(t, err, ErrNoDetail)
		})
	}
}

func TestExtractBeerUnidentifiedPieces(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		pieces []string
	}{
		{
			name:   "every piece claimed",
			title:  "Guinness - Diageo / 20oz / 4.2% / $7",
			pieces: nil,
		},
		{
			name:   "only empty pieces",
			title:  "Guinness - Diageo / / 4.2%",
			pieces: nil,
		},
		{
			name:   "three unclaimed pieces",
			title:  "Guinness - Diageo / Ireland / Dublin / Dry Stout / 4.2%",
			pieces: []string{"Ireland", "Dublin", "Dry Stout"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBeer(tt.title)
			assert.Nil(t, got, "partial record must be discarded")

			var unclaimed *UnidentifiedPiecesError
			require.ErrorAs(t, err, &unclaimed)
			assert.Equal(t, tt.pieces, unclaimed.Pieces)
			assert.ErrorIs(t, err, ErrNoDetail)
		})
	}
}

func TestExtractBeerVintage(t *testing.T) {
	tests := []struct {
		year int
		want int
	}{
		{year: 1989, want: 0},
		{year: 1990, want: 0},
		{year: 1991, want: 1991},
		{year: 2005, want: 2005},
		{year: 2019, want: 2019},
		{year: 2020, want: 0},
		{year: 2021, want: 0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.year), func(t *testing.T) {
			title := fmt.Sprintf("Bigfoot %d - Sierra Nevada / CA / Barleywine / 9.6%%", tt.year)
			got, err := ExtractBeer(title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Year)
		})
	}
}

func TestParseVintage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "no digits", in: "Bigfoot", want: 0},
		{name: "short number", in: "Brew 805", want: 0},
		{name: "first run of a longer number", in: "Batch 19955", want: 1995},
		{name: "only the first run is considered", in: "Cuvee 3000 Reserve 2012", want: 0},
		{name: "digits inside a word", in: "Vintage2011Ale", want: 2011},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseVintage(tt.in))
		})
	}
}

func TestSplitPieces(t *testing.T) {
	got := splitPieces(" Duvel - Moortgat /Belg/  / 8.5% ")
	assert.Equal(t, []string{"Duvel - Moortgat", "Belg", "", "8.5%"}, got)
}

func TestCleanBeerTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Stout w/Coffee", want: "Stout with Coffee"},
		{in: "Stout w/ Coffee", want: "Stout with  Coffee"},
		{in: "Sculpin IPAw / Grapefruit", want: "Sculpin IPA with Grapefruit"},
		{in: "Stout / CA", want: "Stout / CA"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanBeerTitle(tt.in))
		})
	}
}
