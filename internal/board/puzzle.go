package board

import (
	"fmt"

	"github.com/san-kum/alloygrid/internal/alloy"
)

// StateSig is the signature whose atoms are the snapshots of a solution.
const StateSig = "State"

// GlyphFunc maps a label to the short string drawn in its cell.
type GlyphFunc func(Label) string

// GlyphSource builds the glyph callback of a puzzle for one instance, so that
// glyphs may depend on side relations such as a color attribute.
type GlyphSource func(inst alloy.Instance) (GlyphFunc, error)

// Glyphs adapts a callback that needs nothing from the instance.
func Glyphs(f GlyphFunc) GlyphSource {
	return func(alloy.Instance) (GlyphFunc, error) {
		return f, nil
	}
}

// Puzzle describes how to read and draw one family of coordinate puzzles.
//
// Binding names are field names of State (StateToCoord, ObjectToCoord,
// CoordToObject) or a qualified field such as Obstacle<:pos (StaticToCoord).
// Empty names are unused.
type Puzzle struct {
	Name   string
	Bounds Bounds

	// Fixed cells present in every state.
	Fixed map[Coord]string

	// StaticToCoord names an Object -> one Coord relation outside State.
	StaticToCoord string

	// StateToCoord names a State -> set Coord field; every cell in it is
	// labeled with StateMarker.
	StateToCoord string
	StateMarker  string

	// ObjectToCoord names a State -> lone Object -> one Coord field.
	ObjectToCoord string

	// CoordToObject names a State -> Coord -> one Object field.
	CoordToObject string

	Glyphs GlyphSource
}

func (p Puzzle) validate() error {
	if err := p.Bounds.Validate(); err != nil {
		return err
	}
	if p.StateToCoord == "" && p.ObjectToCoord == "" && p.CoordToObject == "" {
		return ErrNoBinding
	}
	if p.StateToCoord != "" && p.StateMarker == "" {
		return fmt.Errorf("%w: %s needs a state marker", ErrMarker, p.StateToCoord)
	}
	for xy, marker := range p.Fixed {
		if marker == "" {
			return fmt.Errorf("%w: fixed cell %s", ErrMarker, xy)
		}
	}
	return nil
}
