// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"strings"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// fieldUpdate applies one recognised piece to a beer record.
type fieldUpdate func(*types.BeerDetail)

// pieceClassifier claims a piece by its shape, or declines.
type pieceClassifier func(piece string) (fieldUpdate, bool)

// pieceClassifiers are tried in order and the first claim wins. A piece
// such as "$5oz" fits both price and size and is a price.
var pieceClassifiers = []pieceClassifier{
	classifyABV,
	classifyPrice,
	classifySize,
	classifyNitro,
}

// classifyABV claims "5.2%".
func classifyABV(piece string) (fieldUpdate, bool) {
	if !strings.HasSuffix(piece, "%") {
		return nil, false
	}
	return func(d *types.BeerDetail) { d.ABV = piece }, true
}

// classifyPrice claims "$12".
func classifyPrice(piece string) (fieldUpdate, bool) {
	if !strings.HasPrefix(piece, "$") {
		return nil, false
	}
	return func(d *types.BeerDetail) { d.Price = piece }, true
}

// classifySize claims "22oz" and "750ml". Any piece with those endings is a
// size, including place names that happen to end in them.
func classifySize(piece string) (fieldUpdate, bool) {
	if !strings.HasSuffix(piece, "oz") && !strings.HasSuffix(piece, "ml") {
		return nil, false
	}
	return func(d *types.BeerDetail) { d.Size = piece }, true
}

// classifyNitro claims the literal "Nitro" serving flag.
func classifyNitro(piece string) (fieldUpdate, bool) {
	if piece != "Nitro" {
		return nil, false
	}
	return func(d *types.BeerDetail) { d.Nitro = true }, true
}

// classifyPiece runs pieceClassifiers over piece and returns the first claim.
func classifyPiece(piece string) (fieldUpdate, bool) {
	for _, classify := range pieceClassifiers {
		if update, ok := classify(piece); ok {
			return update, true
		}
	}
	return nil, false
}
