package puzzle

import (
	"errors"
	"fmt"
	"slices"

	"github.com/san-kum/alloygrid/internal/board"
	"github.com/san-kum/alloygrid/internal/config"
)

var ErrUnknownPuzzle = errors.New("unknown puzzle")

// Compile turns a validated definition into a board puzzle.
func Compile(def *config.Definition) (board.Puzzle, error) {
	if err := def.Validate(); err != nil {
		return board.Puzzle{}, err
	}
	p := board.Puzzle{
		Name: def.Name,
		Bounds: board.Bounds{
			MinX: def.X[0], MaxX: def.X[1],
			MinY: def.Y[0], MaxY: def.Y[1],
		},
		StaticToCoord: def.StaticToCoord,
		StateToCoord:  def.StateToCoord,
		StateMarker:   def.StateMarker,
		ObjectToCoord: def.ObjectToCoord,
		CoordToObject: def.CoordToObject,
		Glyphs:        glyphSource(def.Glyphs),
	}
	if len(def.Fixed) > 0 {
		p.Fixed = make(map[board.Coord]string, len(def.Fixed))
		for _, f := range def.Fixed {
			p.Fixed[board.Coord{X: f.X, Y: f.Y}] = f.Marker
		}
	}
	return p, nil
}

type Registry struct {
	puzzles map[string]func() (board.Puzzle, error)
}

// NewRegistry returns a registry holding every built-in preset.
func NewRegistry() *Registry {
	r := &Registry{puzzles: make(map[string]func() (board.Puzzle, error))}
	for _, name := range config.ListPresets() {
		r.puzzles[name] = func() (board.Puzzle, error) {
			return Compile(config.GetPreset(name))
		}
	}
	return r
}

// register adds or replaces a puzzle.
func (r *Registry) register(name string, p board.Puzzle) {
	r.puzzles[name] = func() (board.Puzzle, error) { return p, nil }
}

func (r *Registry) Get(name string) (board.Puzzle, error) {
	fn, ok := r.puzzles[name]
	if !ok {
		return board.Puzzle{}, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPuzzle, name, r.List())
	}
	return fn()
}

func (r *Registry) List() []string {
	names := make([]string, 0, len(r.puzzles))
	for name := range r.puzzles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
