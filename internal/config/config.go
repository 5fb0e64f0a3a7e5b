package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidPuzzle indicates a puzzle definition that cannot be compiled.
var ErrInvalidPuzzle = errors.New("config: invalid puzzle definition")

// Definition is the YAML form of a coordinate puzzle.
type Definition struct {
	Name          string      `yaml:"name"`
	X             []int       `yaml:"x,flow"`
	Y             []int       `yaml:"y,flow"`
	Fixed         []FixedCell `yaml:"fixed,omitempty"`
	StaticToCoord string      `yaml:"static_to_coord,omitempty"`
	StateToCoord  string      `yaml:"state_to_coord,omitempty"`
	StateMarker   string      `yaml:"state_marker,omitempty"`
	ObjectToCoord string      `yaml:"object_to_coord,omitempty"`
	CoordToObject string      `yaml:"coord_to_object,omitempty"`
	Glyphs        []GlyphRule `yaml:"glyphs"`
}

// FixedCell is a synthetic cell shown in every state.
type FixedCell struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Marker string `yaml:"marker"`
}

// GlyphRule selects labels and says how to draw them. Every matcher that is
// set must hold; a rule without matchers matches everything. Exactly one of
// Glyph, UseIndex and Attribute gives the output.
type GlyphRule struct {
	Marker string `yaml:"marker,omitempty"`
	Ident  string `yaml:"ident,omitempty"`
	Atom   string `yaml:"atom,omitempty"`
	Type   string `yaml:"type,omitempty"`

	Glyph     string `yaml:"glyph,omitempty"`
	UseIndex  bool   `yaml:"use_index,omitempty"`
	Attribute string `yaml:"attribute,omitempty"`
}

func DefaultDefinition() *Definition {
	return &Definition{
		Name: "custom",
		X:    []int{-2, 2},
		Y:    []int{-2, 2},
	}
}

func Load(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

func Save(path string, def *Definition) error {
	data, err := yaml.Marshal(def)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Encode writes def as YAML.
func Encode(w io.Writer, def *Definition) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(def); err != nil {
		return err
	}
	return enc.Close()
}

func (d *Definition) Validate() error {
	if len(d.X) != 2 || len(d.Y) != 2 {
		return fmt.Errorf("%w: x and y must be [min, max]", ErrInvalidPuzzle)
	}
	if d.X[0] > d.X[1] || d.Y[0] > d.Y[1] {
		return fmt.Errorf("%w: empty range x %v y %v", ErrInvalidPuzzle, d.X, d.Y)
	}
	if d.StateToCoord == "" && d.ObjectToCoord == "" && d.CoordToObject == "" {
		return fmt.Errorf("%w: one of state_to_coord, object_to_coord, coord_to_object is required", ErrInvalidPuzzle)
	}
	if d.StateToCoord != "" && d.StateMarker == "" {
		return fmt.Errorf("%w: state_to_coord needs state_marker", ErrInvalidPuzzle)
	}
	for _, f := range d.Fixed {
		if f.Marker == "" {
			return fmt.Errorf("%w: fixed cell (%d,%d) has no marker", ErrInvalidPuzzle, f.X, f.Y)
		}
	}
	for i, r := range d.Glyphs {
		outputs := 0
		if r.Glyph != "" {
			outputs++
		}
		if r.UseIndex {
			outputs++
		}
		if r.Attribute != "" {
			outputs++
		}
		if outputs != 1 {
			return fmt.Errorf("%w: glyph rule %d needs exactly one of glyph, use_index, attribute", ErrInvalidPuzzle, i)
		}
	}
	return nil
}
