package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/alloygrid/internal/alloy"
	"github.com/san-kum/alloygrid/internal/board"
	"github.com/san-kum/alloygrid/internal/config"
)

type rule struct {
	config.GlyphRule
	atom *alloy.Atom
	// attribute glyphs, resolved per instance
	attr map[alloy.Atom]string
}

func (r rule) matches(l board.Label) bool {
	marker, synthetic := l.Marker()
	if r.Marker != "" && (!synthetic || marker != r.Marker) {
		return false
	}
	a, ok := l.Atom()
	if (r.Ident != "" || r.Atom != "" || r.Type != "") && !ok {
		return false
	}
	if r.Ident != "" && a != alloy.Ident(r.Ident) {
		return false
	}
	if r.atom != nil && a != *r.atom {
		return false
	}
	if r.Type != "" && !a.IsTagged(r.Type) {
		return false
	}
	return true
}

func (r rule) glyph(l board.Label) string {
	switch {
	case r.Glyph != "":
		return r.Glyph
	case r.UseIndex:
		if a, ok := l.Atom(); ok && a.Kind == alloy.KindTagged {
			return strconv.Itoa(a.Index)
		}
	case r.Attribute != "":
		if a, ok := l.Atom(); ok {
			return r.attr[a]
		}
	}
	return ""
}

// glyphSource compiles an ordered rule list; the first matching rule decides.
func glyphSource(rules []config.GlyphRule) board.GlyphSource {
	return func(inst alloy.Instance) (board.GlyphFunc, error) {
		compiled := make([]rule, 0, len(rules))
		for _, gr := range rules {
			r := rule{GlyphRule: gr}
			if gr.Atom != "" {
				a := alloy.ParseAtom(gr.Atom)
				r.atom = &a
			}
			if gr.Attribute != "" {
				attr, err := attributeGlyphs(inst, gr.Attribute)
				if err != nil {
					return nil, err
				}
				r.attr = attr
			}
			compiled = append(compiled, r)
		}
		return func(l board.Label) string {
			for _, r := range compiled {
				if r.matches(l) {
					return r.glyph(l)
				}
			}
			return ""
		}, nil
	}
}

// attributeGlyphs reads a Sig<:field relation of shape Sig -> one Value and
// draws each atom as the first letter of its value's name: a Statue whose
// color is Red$0 is R. Every atom of Sig must have exactly one value.
func attributeGlyphs(inst alloy.Instance, name string) (map[alloy.Atom]string, error) {
	rel, err := inst.Map(alloy.Sig(name))
	if err != nil {
		return nil, err
	}
	if sig, _, ok := strings.Cut(name, "<:"); ok {
		owners, err := inst.Set(alloy.Sig(sig))
		if err != nil {
			return nil, err
		}
		for _, a := range owners.Atoms() {
			if _, ok := rel.Get(a); !ok {
				return nil, fmt.Errorf("%s %s: %w", name, a, &alloy.CardinalityError{Size: 0})
			}
		}
	}
	out := make(map[alloy.Atom]string, rel.Len())
	for _, k := range rel.Keys() {
		r, _ := rel.Get(k)
		v, err := alloy.The(r)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", name, k, err)
		}
		out[k] = initial(v)
	}
	return out, nil
}

func initial(a alloy.Atom) string {
	s := a.String()
	if a.Kind != alloy.KindInt && a.Name != "" {
		s = a.Name
	}
	for _, c := range s {
		return string(c)
	}
	return ""
}
