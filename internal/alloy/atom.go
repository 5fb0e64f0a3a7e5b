package alloy

import (
	"cmp"
	"regexp"
	"strconv"
	"strings"
)

// Kind distinguishes the three forms an atom can take.
type Kind uint8

const (
	KindInt Kind = iota
	KindIdent
	KindTagged
)

// Atom is a single indivisible value of an instance. It is comparable and can
// be used as a map key. Tagged atoms and identifiers never compare equal, even
// when the identifier text matches a type name.
type Atom struct {
	Kind  Kind
	Int   int
	Name  string
	Index int
}

var intPattern = regexp.MustCompile(`^-?[0-9]+$`)

func Int(n int) Atom {
	return Atom{Kind: KindInt, Int: n}
}

func Ident(name string) Atom {
	return Atom{Kind: KindIdent, Name: name}
}

// Tagged returns the index'th atom of the signature named typ (typ$index).
func Tagged(typ string, index int) Atom {
	return Atom{Kind: KindTagged, Name: typ, Index: index}
}

// ParseAtom converts a token into an atom. It never fails: anything that is
// neither an integer nor a well formed Type$N token is kept as an identifier.
func ParseAtom(token string) Atom {
	if intPattern.MatchString(token) {
		if n, err := strconv.Atoi(token); err == nil {
			return Int(n)
		}
		return Ident(token)
	}
	name, number, found := strings.Cut(token, "$")
	if !found {
		return Ident(token)
	}
	index, err := strconv.ParseUint(number, 10, 31)
	if err != nil {
		return Ident(token)
	}
	return Tagged(name, int(index))
}

func (a Atom) String() string {
	switch a.Kind {
	case KindInt:
		return strconv.Itoa(a.Int)
	case KindTagged:
		return a.Name + "$" + strconv.Itoa(a.Index)
	default:
		return a.Name
	}
}

// IsTagged reports whether a is an instance of the signature typ.
func (a Atom) IsTagged(typ string) bool {
	return a.Kind == KindTagged && a.Name == typ
}

// Compare orders integers before identifiers before tagged atoms; within a
// kind, by value, then by type name and index.
func Compare(a, b Atom) int {
	if c := cmp.Compare(a.Kind, b.Kind); c != 0 {
		return c
	}
	switch a.Kind {
	case KindInt:
		return cmp.Compare(a.Int, b.Int)
	case KindIdent:
		return strings.Compare(a.Name, b.Name)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}
