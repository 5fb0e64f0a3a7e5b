// Package sequence walks the states of a solved puzzle in order and produces
// one titled frame per state.
package sequence

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/san-kum/alloygrid/internal/alloy"
	"github.com/san-kum/alloygrid/internal/board"
)

const defaultRuleWidth = 80

// Frame is one rendered state.
type Frame struct {
	Index    int
	Title    string
	Snapshot board.Snapshot
	Grid     string
}

type Driver struct {
	board     *board.Board
	states    []alloy.Atom
	logger    *slog.Logger
	ruleWidth int
}

type Option func(*Driver)

func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

// WithRuleWidth sets the width of the separator Dump prints above each state.
func WithRuleWidth(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.ruleWidth = n
		}
	}
}

// New orders the State atoms of inst and binds them to b.
func New(inst alloy.Instance, b *board.Board, opts ...Option) (*Driver, error) {
	states, err := States(inst)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		board:     b,
		states:    states,
		logger:    slog.New(slog.DiscardHandler),
		ruleWidth: defaultRuleWidth,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.logger.Debug("states ordered", "puzzle", b.Puzzle().Name, "count", len(states))
	return d, nil
}

// States returns the atoms of this/State sorted by tag index.
func States(inst alloy.Instance) ([]alloy.Atom, error) {
	set, err := inst.Set(alloy.Sig(board.StateSig))
	if err != nil {
		return nil, err
	}
	states := set.Atoms()
	for _, s := range states {
		if s.Kind != alloy.KindTagged {
			return nil, fmt.Errorf("%w: state %s has no index", alloy.ErrShape, s)
		}
	}
	slices.SortFunc(states, func(a, b alloy.Atom) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return states, nil
}

// Title names the index'th of n states, counting from one. The first state is
// marked initial and the last final; a lone state is both.
func Title(index, n int) string {
	title := fmt.Sprintf("State %d", index+1)
	if index == 0 {
		title += " (initial)"
	}
	if index == n-1 {
		title += " (final)"
	}
	return title
}

func (d *Driver) Len() int {
	return len(d.states)
}

// Frame assembles and renders the i'th state. Nothing is cached.
func (d *Driver) Frame(i int) (Frame, error) {
	if i < 0 || i >= len(d.states) {
		return Frame{}, fmt.Errorf("state %d out of range [0,%d)", i, len(d.states))
	}
	snap, err := d.board.Assemble(d.states[i])
	if err != nil {
		return Frame{}, err
	}
	d.logger.Debug("state assembled", "state", d.states[i].String(), "cells", len(snap))
	return Frame{
		Index:    i,
		Title:    Title(i, len(d.states)),
		Snapshot: snap,
		Grid:     d.board.Render(snap),
	}, nil
}

// Dump writes every state to w, each under a rule line and its title.
func (d *Driver) Dump(w io.Writer) error {
	rule := strings.Repeat("-", d.ruleWidth)
	for i := range d.states {
		f, err := d.Frame(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n", rule, f.Title, f.Grid); err != nil {
			return err
		}
	}
	return nil
}

// Changes counts, for every pair of consecutive states, the cells whose
// label differs.
func (d *Driver) Changes() ([]int, error) {
	if len(d.states) < 2 {
		return nil, nil
	}
	counts := make([]int, 0, len(d.states)-1)
	prev, err := d.board.Assemble(d.states[0])
	if err != nil {
		return nil, err
	}
	for _, s := range d.states[1:] {
		next, err := d.board.Assemble(s)
		if err != nil {
			return nil, err
		}
		counts = append(counts, diff(prev, next))
		prev = next
	}
	return counts, nil
}

func diff(a, b board.Snapshot) int {
	n := 0
	for xy, l := range a {
		if other, ok := b[xy]; !ok || other != l {
			n++
		}
	}
	for xy := range b {
		if _, ok := a[xy]; !ok {
			n++
		}
	}
	return n
}
