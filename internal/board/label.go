package board

import "github.com/san-kum/alloygrid/internal/alloy"

// Label is what a cell holds in a snapshot: either an atom of the instance
// or a synthetic marker that no relation models.
type Label struct {
	atom      alloy.Atom
	marker    string
	synthetic bool
}

func AtomLabel(a alloy.Atom) Label {
	return Label{atom: a}
}

func MarkerLabel(name string) Label {
	return Label{marker: name, synthetic: true}
}

// Marker returns the marker name when l is synthetic.
func (l Label) Marker() (string, bool) {
	return l.marker, l.synthetic
}

// Atom returns the atom when l is not synthetic.
func (l Label) Atom() (alloy.Atom, bool) {
	return l.atom, !l.synthetic
}

func (l Label) String() string {
	if l.synthetic {
		return l.marker
	}
	return l.atom.String()
}

// Snapshot is the content of one state: every occupied cell and its label.
type Snapshot map[Coord]Label
