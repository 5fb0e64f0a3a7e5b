package board

import (
	"fmt"

	"github.com/san-kum/alloygrid/internal/alloy"
)

// Signature and field names of the coordinate model:
//
//	sig Coord { x, y: Int }
const (
	CoordSig = "Coord"
	XField   = "x"
	YField   = "y"
)

type Coord struct {
	X, Y int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Bounds is an inclusive rectangle of cells.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

func (b Bounds) Validate() error {
	if b.MinX > b.MaxX || b.MinY > b.MaxY {
		return fmt.Errorf("%w: x [%d,%d] y [%d,%d]", ErrBounds, b.MinX, b.MaxX, b.MinY, b.MaxY)
	}
	return nil
}

// Cells is a set of board cells.
type Cells map[Coord]struct{}

func (c Cells) Contains(xy Coord) bool {
	_, ok := c[xy]
	return ok
}

// Index maps every Coord atom to its (x, y) pair.
type Index struct {
	coords map[alloy.Atom]Coord
	cells  Cells
}

// NewIndex reads this/Coord, this/Coord<:x and this/Coord<:y. Each Coord atom
// must have exactly one x and one y.
func NewIndex(inst alloy.Instance) (*Index, error) {
	atoms, err := inst.Set(alloy.Sig(CoordSig))
	if err != nil {
		return nil, err
	}
	xs, err := inst.Map(alloy.Field(CoordSig, XField))
	if err != nil {
		return nil, err
	}
	ys, err := inst.Map(alloy.Field(CoordSig, YField))
	if err != nil {
		return nil, err
	}

	ix := &Index{
		coords: make(map[alloy.Atom]Coord, atoms.Len()),
		cells:  make(Cells, atoms.Len()),
	}
	for _, a := range atoms.Atoms() {
		x, err := component(xs, a)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", a, XField, err)
		}
		y, err := component(ys, a)
		if err != nil {
			return nil, fmt.Errorf("%s.%s: %w", a, YField, err)
		}
		xy := Coord{X: x, Y: y}
		ix.coords[a] = xy
		ix.cells[xy] = struct{}{}
	}
	return ix, nil
}

func component(field *alloy.Map, a alloy.Atom) (int, error) {
	r, ok := field.Get(a)
	if !ok {
		return 0, &alloy.CardinalityError{Size: 0}
	}
	return alloy.TheInt(r)
}

// Coord returns the cell of the Coord atom a.
func (ix *Index) Coord(a alloy.Atom) (Coord, error) {
	xy, ok := ix.coords[a]
	if !ok {
		return Coord{}, fmt.Errorf("%w: %s", ErrUnknownCoord, a)
	}
	return xy, nil
}

// Single resolves a relation holding exactly one Coord atom.
func (ix *Index) Single(r alloy.Relation) (Coord, error) {
	a, err := alloy.The(r)
	if err != nil {
		return Coord{}, err
	}
	return ix.Coord(a)
}

// Cells returns every cell that some Coord atom occupies.
func (ix *Index) Cells() Cells {
	return ix.cells
}

func (ix *Index) Len() int {
	return len(ix.coords)
}
