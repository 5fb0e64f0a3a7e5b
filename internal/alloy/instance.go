package alloy

import (
	"slices"
	"strings"
)

// Instance maps qualified relation names (this/State, this/State<:pos) to
// their relations.
type Instance map[string]Relation

// Lookup returns the relation bound to name.
func (in Instance) Lookup(name string) (Relation, error) {
	r, ok := in[name]
	if !ok {
		return nil, &LookupError{Name: name}
	}
	return r, nil
}

// Set looks up a relation that must be unary.
func (in Instance) Set(name string) (*Set, error) {
	r, err := in.Lookup(name)
	if err != nil {
		return nil, err
	}
	s, err := AsSet(r)
	if err != nil {
		return nil, &fieldError{name: name, err: err}
	}
	return s, nil
}

// Map looks up a relation of arity two or more.
func (in Instance) Map(name string) (*Map, error) {
	r, err := in.Lookup(name)
	if err != nil {
		return nil, err
	}
	m, err := AsMap(r)
	if err != nil {
		return nil, &fieldError{name: name, err: err}
	}
	return m, nil
}

// Names returns every relation name, sorted.
func (in Instance) Names() []string {
	names := make([]string, 0, len(in))
	for name := range in {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Sig returns the qualified name of a top level signature or field:
// Sig("State") is this/State and Sig("Coord<:x") is this/Coord<:x.
func Sig(name string) string {
	if strings.HasPrefix(name, "this/") {
		return name
	}
	return "this/" + name
}

// Field returns the qualified name of a field of sig: Field("State", "pos")
// is this/State<:pos.
func Field(sig, field string) string {
	return Sig(sig + "<:" + field)
}

type fieldError struct {
	name string
	err  error
}

func (e *fieldError) Error() string {
	return e.name + ": " + e.err.Error()
}

func (e *fieldError) Unwrap() error {
	return e.err
}
