// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package detail

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/menu-engine/pkg/types"
)

// ErrNoDetail is wrapped by every extraction failure. A caller that only
// needs to know whether a title yielded a detail can test errors.Is(err, ErrNoDetail).
var ErrNoDetail = errors.New("no detail extracted")

// ErrUnknownCategory is returned by Extract for a category it cannot route.
var ErrUnknownCategory = errors.New("unknown beverage category")

// UnparseableError reports a title that does not fit its category's grammar.
type UnparseableError struct {
	Category types.Category
	Title    string
}

func (e *UnparseableError) Error() string {
	return fmt.Sprintf("unable to parse details out of %s name %q", e.Category, e.Title)
}

func (e *UnparseableError) Unwrap() error { return ErrNoDetail }

// PieceCountError reports a beer title that splits into fewer than
// minPieces or more than maxPieces slash-delimited pieces.
type PieceCountError struct {
	Count int
	Title string
}

func (e *PieceCountError) Error() string {
	return fmt.Sprintf("beer name %q has %d pieces, want %d to %d", e.Title, e.Count, minPieces, maxPieces)
}

func (e *PieceCountError) Unwrap() error { return ErrNoDetail }

// UnidentifiedPiecesError reports the pieces no classifier claimed when
// there were too few or too many to assign by position.
type UnidentifiedPiecesError struct {
	Pieces []string
	Title  string
}

func (e *UnidentifiedPiecesError) Error() string {
	return fmt.Sprintf("unable to identify remaining beer name pieces [%s] from name %q",
		strings.Join(e.Pieces, ", "), e.Title)
}

func (e *UnidentifiedPiecesError) Unwrap() error { return ErrNoDetail }

// Failure reasons returned by FailureReason.
const (
	ReasonUnparseable        = "unparseable"
	ReasonPieceCount         = "piece_count"
	ReasonUnidentifiedPieces = "unidentified_pieces"
	ReasonUnknown            = "unknown"
)

// FailureReason maps an extraction error to a short stable label suitable
// for log fields and metric labels.
func FailureReason(err error) string {
	var (
		unparseable *UnparseableError
		count       *PieceCountError
		unclaimed   *UnidentifiedPiecesError
	)
	switch {
	case errors.As(err, &unparseable):
		return ReasonUnparseable
	case errors.As(err, &count):
		return ReasonPieceCount
	case errors.As(err, &unclaimed):
		return ReasonUnidentifiedPieces
	default:
		return ReasonUnknown
	}
}
