package board

import (
	"fmt"
	"maps"

	"github.com/san-kum/alloygrid/internal/alloy"
)

// Board is a puzzle bound to one instance. It is read-only after New.
type Board struct {
	puzzle Puzzle
	index  *Index
	static Snapshot
	glyph  GlyphFunc

	stateToCoord  *alloy.Map
	objectToCoord *alloy.Map
	coordToObject *alloy.Map
}

// New resolves every relation p names against inst, computes the coordinate
// index and the static overlay, and prepares the glyph callback. Any relation
// p names but inst lacks is an error.
func New(inst alloy.Instance, p Puzzle) (*Board, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", p.Name, err)
	}
	index, err := NewIndex(inst)
	if err != nil {
		return nil, err
	}
	b := &Board{puzzle: p, index: index, static: make(Snapshot)}

	if p.StaticToCoord != "" {
		objCoord, err := inst.Map(alloy.Sig(p.StaticToCoord))
		if err != nil {
			return nil, err
		}
		for _, obj := range objCoord.Keys() {
			r, _ := objCoord.Get(obj)
			xy, err := index.Single(r)
			if err != nil {
				return nil, fmt.Errorf("%s %s: %w", p.StaticToCoord, obj, err)
			}
			b.static[xy] = AtomLabel(obj)
		}
	}

	bindings := []struct {
		field string
		dst   **alloy.Map
	}{
		{p.StateToCoord, &b.stateToCoord},
		{p.ObjectToCoord, &b.objectToCoord},
		{p.CoordToObject, &b.coordToObject},
	}
	for _, bind := range bindings {
		if bind.field == "" {
			continue
		}
		m, err := inst.Map(alloy.Field(StateSig, bind.field))
		if err != nil {
			return nil, err
		}
		*bind.dst = m
	}

	b.glyph = func(Label) string { return "" }
	if p.Glyphs != nil {
		if b.glyph, err = p.Glyphs(inst); err != nil {
			return nil, fmt.Errorf("%s glyphs: %w", p.Name, err)
		}
	}
	return b, nil
}

func (b *Board) Puzzle() Puzzle {
	return b.puzzle
}

func (b *Board) Index() *Index {
	return b.index
}

// Static returns a copy of the overlay derived from StaticToCoord.
func (b *Board) Static() Snapshot {
	return maps.Clone(b.static)
}

// Assemble builds the snapshot of one State atom. The result is new on every
// call. A state missing from a per-state relation contributes no cells.
func (b *Board) Assemble(state alloy.Atom) (Snapshot, error) {
	snap := make(Snapshot, len(b.puzzle.Fixed)+len(b.static))
	for xy, marker := range b.puzzle.Fixed {
		snap[xy] = MarkerLabel(marker)
	}
	maps.Copy(snap, b.static)

	if err := b.placeMarkers(snap, state); err != nil {
		return nil, fmt.Errorf("%s %s: %w", b.puzzle.StateToCoord, state, err)
	}
	if err := b.placeObjects(snap, state); err != nil {
		return nil, fmt.Errorf("%s %s: %w", b.puzzle.ObjectToCoord, state, err)
	}
	if err := b.readCells(snap, state); err != nil {
		return nil, fmt.Errorf("%s %s: %w", b.puzzle.CoordToObject, state, err)
	}
	return snap, nil
}

func (b *Board) placeMarkers(snap Snapshot, state alloy.Atom) error {
	if b.stateToCoord == nil {
		return nil
	}
	r, ok := b.stateToCoord.Get(state)
	if !ok {
		return nil
	}
	coords, err := alloy.AsSet(r)
	if err != nil {
		return err
	}
	label := MarkerLabel(b.puzzle.StateMarker)
	for _, c := range coords.Atoms() {
		xy, err := b.index.Coord(c)
		if err != nil {
			return err
		}
		snap[xy] = label
	}
	return nil
}

func (b *Board) placeObjects(snap Snapshot, state alloy.Atom) error {
	if b.objectToCoord == nil {
		return nil
	}
	r, ok := b.objectToCoord.Get(state)
	if !ok {
		return nil
	}
	objCoord, err := alloy.AsMap(r)
	if err != nil {
		return err
	}
	for _, obj := range objCoord.Keys() {
		coord, _ := objCoord.Get(obj)
		xy, err := b.index.Single(coord)
		if err != nil {
			return fmt.Errorf("%s: %w", obj, err)
		}
		snap[xy] = AtomLabel(obj)
	}
	return nil
}

func (b *Board) readCells(snap Snapshot, state alloy.Atom) error {
	if b.coordToObject == nil {
		return nil
	}
	r, ok := b.coordToObject.Get(state)
	if !ok {
		return nil
	}
	coordObj, err := alloy.AsMap(r)
	if err != nil {
		return err
	}
	for _, c := range coordObj.Keys() {
		xy, err := b.index.Coord(c)
		if err != nil {
			return err
		}
		objs, _ := coordObj.Get(c)
		obj, err := alloy.The(objs)
		if err != nil {
			return fmt.Errorf("%s: %w", c, err)
		}
		snap[xy] = AtomLabel(obj)
	}
	return nil
}
