package config

import (
	"slices"

	"gopkg.in/yaml.v3"
)

var Presets = map[string]*Definition{
	"sacred-grove": {
		Name: "sacred-grove", X: []int{-2, 2}, Y: []int{-3, 2},
		ObjectToCoord: "pos",
		Glyphs: []GlyphRule{
			{Atom: "Link$0", Glyph: "L"},
			{Atom: "StatueA$0", Glyph: "A"},
			{Atom: "StatueB$0", Glyph: "B"},
		},
	},
	"snowpeak-blocks": {
		Name: "snowpeak-blocks", X: []int{-2, 2}, Y: []int{-3, 2},
		ObjectToCoord: "pos",
		StaticToCoord: "Obstacle<:pos",
		Glyphs: []GlyphRule{
			{Type: "Block", UseIndex: true},
			{Type: "Obstacle", Glyph: "o"},
		},
	},
	"mutoh-tiles": {
		Name: "mutoh-tiles", X: []int{-1, 1}, Y: []int{-1, 1},
		CoordToObject: "colors",
		Glyphs: []GlyphRule{
			{Atom: "Red$0", Glyph: "O"},
			{Atom: "Blue$0", Glyph: "X"},
		},
	},
	"crown-statues": {
		Name: "crown-statues", X: []int{-5, 4}, Y: []int{-3, 2},
		Fixed:         []FixedCell{{X: 0, Y: 0, Marker: "OWL"}},
		StateToCoord:  "block",
		StateMarker:   "BLOCK",
		ObjectToCoord: "pos",
		Glyphs: []GlyphRule{
			{Marker: "OWL", Glyph: "x"},
			{Marker: "BLOCK", Glyph: "o"},
			{Type: "Statue", Attribute: "Statue<:color"},
		},
	},
}

// GetPreset returns a copy of the named built-in definition, or nil.
func GetPreset(name string) *Definition {
	def, ok := Presets[name]
	if !ok {
		return nil
	}
	return def.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of d.
func (d *Definition) Clone() *Definition {
	c := *d
	c.X = slices.Clone(d.X)
	c.Y = slices.Clone(d.Y)
	c.Fixed = slices.Clone(d.Fixed)
	c.Glyphs = slices.Clone(d.Glyphs)
	return &c
}

// Parse decodes a definition from YAML and validates it.
func Parse(data []byte) (*Definition, error) {
	def := DefaultDefinition()
	if err := yaml.Unmarshal(data, def); err != nil {
		return nil, err
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return def, nil
}
