package sequence

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/alloygrid/internal/alloy"
	"github.com/san-kum/alloygrid/internal/board"
)

// Three states of one token walking right along a 3x1 strip.
const walk = `this/State={State$2, State$0, State$10, State$1}
this/Coord={Coord$0, Coord$1, Coord$2}
this/Coord<:x={Coord$0->0, Coord$1->1, Coord$2->2}
this/Coord<:y={Coord$0->0, Coord$1->0, Coord$2->0}
this/State<:pos={State$0->T->Coord$0, State$1->T->Coord$1, State$2->T->Coord$2, State$10->T->Coord$2}
`

func newDriver(t *testing.T, text string, opts ...Option) *Driver {
	t.Helper()
	inst, err := alloy.ParseString(text)
	require.NoError(t, err)
	b, err := board.New(inst, board.Puzzle{
		Name:          "walk",
		Bounds:        board.Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 0},
		ObjectToCoord: "pos",
		Glyphs:        board.Glyphs(func(board.Label) string { return "T" }),
	})
	require.NoError(t, err)
	d, err := New(inst, b, opts...)
	require.NoError(t, err)
	return d
}

func TestStatesOrdered(t *testing.T) {
	inst, err := alloy.ParseString(walk)
	require.NoError(t, err)

	got, err := States(inst)
	require.NoError(t, err)
	want := []alloy.Atom{
		alloy.Tagged("State", 0),
		alloy.Tagged("State", 1),
		alloy.Tagged("State", 2),
		alloy.Tagged("State", 10),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("States() mismatch (-want +got):\n%s", diff)
	}
}

func TestStatesErrors(t *testing.T) {
	inst, err := alloy.ParseString("this/State={S}\n")
	require.NoError(t, err)
	_, err = States(inst)
	require.ErrorIs(t, err, alloy.ErrShape)

	_, err = States(alloy.Instance{})
	require.ErrorIs(t, err, alloy.ErrMissingRelation)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		index, n int
		want     string
	}{
		{0, 1, "State 1 (initial) (final)"},
		{0, 3, "State 1 (initial)"},
		{1, 3, "State 2"},
		{2, 3, "State 3 (final)"},
		{0, 2, "State 1 (initial)"},
		{1, 2, "State 2 (final)"},
	}

	for _, tt := range tests {
		if got := Title(tt.index, tt.n); got != tt.want {
			t.Errorf("Title(%d, %d) = %q, want %q", tt.index, tt.n, got, tt.want)
		}
	}
}

func TestTitleSuffixes(t *testing.T) {
	const n = 7
	for i := 0; i < n; i++ {
		title := Title(i, n)
		if got, want := strings.HasSuffix(title, "(initial)"), i == 0; got != want {
			t.Errorf("state %d: initial suffix %v, want %v", i, got, want)
		}
		if got, want := strings.HasSuffix(title, "(final)"), i == n-1; got != want {
			t.Errorf("state %d: final suffix %v, want %v", i, got, want)
		}
	}
}

func TestFrame(t *testing.T) {
	d := newDriver(t, walk)
	require.Equal(t, 4, d.Len())

	f, err := d.Frame(1)
	require.NoError(t, err)
	require.Equal(t, "State 2", f.Title)
	require.Equal(t, ". T .\n", f.Grid)

	_, err = d.Frame(4)
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	d := newDriver(t, walk, WithRuleWidth(5))

	var buf bytes.Buffer
	require.NoError(t, d.Dump(&buf))

	want := "-----\nState 1 (initial)\n\nT . .\n\n" +
		"-----\nState 2\n\n. T .\n\n" +
		"-----\nState 3\n\n. . T\n\n" +
		"-----\nState 4 (final)\n\n. . T\n\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Dump() mismatch (-want +got):\n%s", diff)
	}
}

func TestChanges(t *testing.T) {
	d := newDriver(t, walk)
	got, err := d.Changes()
	require.NoError(t, err)
	if diff := cmp.Diff([]int{2, 2, 0}, got); diff != "" {
		t.Errorf("Changes() mismatch (-want +got):\n%s", diff)
	}

	single := newDriver(t, strings.Replace(walk, "this/State={State$2, State$0, State$10, State$1}", "this/State={State$0}", 1))
	got, err = single.Changes()
	require.NoError(t, err)
	require.Empty(t, got)
}
