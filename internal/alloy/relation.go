package alloy

import (
	"fmt"
	"slices"
)

// Relation is a curried n-ary relation over atoms. It is exactly one of *Set
// (the leaf level, used for arity 1) or *Map (one column projected away,
// mapping each atom to the remaining relation).
type Relation interface {
	// Len is the number of atoms at the top level: set members or map keys.
	Len() int
	// Tuples flattens the relation back into its rows, sorted.
	Tuples() [][]Atom

	relation()
}

// Set is the leaf level of a relation: atoms with no further structure.
type Set struct {
	atoms []Atom
	index map[Atom]struct{}
}

// Map curries a relation of arity two or more on its first column.
type Map struct {
	keys     []Atom
	children map[Atom]Relation
}

func (*Set) relation() {}
func (*Map) relation() {}

func newSet(atoms []Atom) *Set {
	s := &Set{index: make(map[Atom]struct{}, len(atoms))}
	for _, a := range atoms {
		if _, ok := s.index[a]; ok {
			continue
		}
		s.index[a] = struct{}{}
		s.atoms = append(s.atoms, a)
	}
	slices.SortFunc(s.atoms, Compare)
	return s
}

func (s *Set) Len() int {
	return len(s.atoms)
}

// Atoms returns the members in sorted order.
func (s *Set) Atoms() []Atom {
	return slices.Clone(s.atoms)
}

func (s *Set) Contains(a Atom) bool {
	_, ok := s.index[a]
	return ok
}

func (s *Set) Tuples() [][]Atom {
	rows := make([][]Atom, 0, len(s.atoms))
	for _, a := range s.atoms {
		rows = append(rows, []Atom{a})
	}
	return rows
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the first-column atoms in sorted order.
func (m *Map) Keys() []Atom {
	return slices.Clone(m.keys)
}

// Get returns the relation curried on key.
func (m *Map) Get(key Atom) (Relation, bool) {
	r, ok := m.children[key]
	return r, ok
}

func (m *Map) Tuples() [][]Atom {
	var rows [][]Atom
	for _, k := range m.keys {
		child := m.children[k]
		if child.Len() == 0 {
			rows = append(rows, []Atom{k})
			continue
		}
		for _, tail := range child.Tuples() {
			rows = append(rows, append([]Atom{k}, tail...))
		}
	}
	return rows
}

// Build folds rows sharing one relation name into a Relation. The shape of
// every node is fixed here from the arity of the rows that reach it: a node
// whose rows all have at most one atom left is a Set, anything else is a Map.
// Empty rows are dropped; no rows at all yields an empty Set.
func Build(rows [][]Atom) Relation {
	leaf := true
	for _, row := range rows {
		if len(row) > 1 {
			leaf = false
			break
		}
	}
	if leaf {
		atoms := make([]Atom, 0, len(rows))
		for _, row := range rows {
			if len(row) == 1 {
				atoms = append(atoms, row[0])
			}
		}
		return newSet(atoms)
	}

	groups := make(map[Atom][][]Atom)
	m := &Map{children: make(map[Atom]Relation)}
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		head := row[0]
		if _, ok := groups[head]; !ok {
			m.keys = append(m.keys, head)
		}
		groups[head] = append(groups[head], row[1:])
	}
	slices.SortFunc(m.keys, Compare)
	for _, k := range m.keys {
		m.children[k] = Build(groups[k])
	}
	return m
}

// NewSet returns a leaf relation holding atoms.
func NewSet(atoms ...Atom) *Set {
	return newSet(atoms)
}

// The returns the sole element of r: the member of a one-element Set, or the
// only key of a one-entry Map.
func The(r Relation) (Atom, error) {
	if r.Len() != 1 {
		return Atom{}, &CardinalityError{Size: r.Len()}
	}
	switch r := r.(type) {
	case *Set:
		return r.atoms[0], nil
	case *Map:
		return r.keys[0], nil
	}
	return Atom{}, ErrShape
}

// TheInt is The for relations whose sole element must be an integer.
func TheInt(r Relation) (int, error) {
	a, err := The(r)
	if err != nil {
		return 0, err
	}
	if a.Kind != KindInt {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrShape, a)
	}
	return a.Int, nil
}

// AsMap returns r as a Map. An empty Set is read as an empty Map, since a
// relation with no tuples carries no arity.
func AsMap(r Relation) (*Map, error) {
	switch r := r.(type) {
	case *Map:
		return r, nil
	case *Set:
		if r.Len() == 0 {
			return &Map{children: map[Atom]Relation{}}, nil
		}
	}
	return nil, fmt.Errorf("%w: want a map, got a set of %d", ErrShape, r.Len())
}

// AsSet returns r as a Set.
func AsSet(r Relation) (*Set, error) {
	if s, ok := r.(*Set); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: want a set, got a map of %d", ErrShape, r.Len())
}
