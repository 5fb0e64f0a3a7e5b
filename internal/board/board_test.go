package board_test

import (
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/alloygrid/internal/alloy"
	"github.com/san-kum/alloygrid/internal/board"
)

// square returns Coord relations for every cell of [-n,n]x[-n,n].
func square(n int) string {
	var atoms, xs, ys []string
	i := 0
	for y := -n; y <= n; y++ {
		for x := -n; x <= n; x++ {
			atoms = append(atoms, fmt.Sprintf("Coord$%d", i))
			xs = append(xs, fmt.Sprintf("Coord$%d->%d", i, x))
			ys = append(ys, fmt.Sprintf("Coord$%d->%d", i, y))
			i++
		}
	}
	return fmt.Sprintf("this/Coord={%s}\nthis/Coord<:x={%s}\nthis/Coord<:y={%s}\n",
		strings.Join(atoms, ", "), strings.Join(xs, ", "), strings.Join(ys, ", "))
}

// coordAt is the atom square(1) assigns to (x, y).
func coordAt(x, y int) string {
	return fmt.Sprintf("Coord$%d", (y+1)*3+(x+1))
}

func mustParse(text string) alloy.Instance {
	inst, err := alloy.ParseString(text)
	Expect(err).NotTo(HaveOccurred())
	return inst
}

var unit = board.Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}

func glyphs(m map[string]string) board.GlyphSource {
	return board.Glyphs(func(l board.Label) string {
		return m[l.String()]
	})
}

var _ = Describe("Label", func() {
	It("never confuses a marker with an atom", func() {
		empty := board.MarkerLabel("")
		Expect(empty).NotTo(Equal(board.AtomLabel(alloy.Int(0))))
		_, synthetic := empty.Marker()
		Expect(synthetic).To(BeTrue())
		_, isAtom := empty.Atom()
		Expect(isAtom).To(BeFalse())

		_, synthetic = board.AtomLabel(alloy.Int(0)).Marker()
		Expect(synthetic).To(BeFalse())
	})
})

var _ = Describe("Index", func() {
	It("maps every Coord atom to its cell", func() {
		ix, err := board.NewIndex(mustParse(square(1)))
		Expect(err).NotTo(HaveOccurred())
		Expect(ix.Len()).To(Equal(9))
		Expect(ix.Coord(alloy.Tagged("Coord", 0))).To(Equal(board.Coord{X: -1, Y: -1}))
		Expect(ix.Cells().Contains(board.Coord{X: 1, Y: 1})).To(BeTrue())
		Expect(ix.Cells().Contains(board.Coord{X: 2, Y: 1})).To(BeFalse())

		_, err = ix.Coord(alloy.Tagged("Coord", 40))
		Expect(err).To(MatchError(board.ErrUnknownCoord))
	})

	It("rejects a coordinate with two x values", func() {
		_, err := board.NewIndex(mustParse("this/Coord={Coord$0}\nthis/Coord<:x={Coord$0->0, Coord$0->1}\nthis/Coord<:y={Coord$0->0}\n"))
		Expect(err).To(MatchError(alloy.ErrNotSingleton))
	})

	It("requires the coordinate relations", func() {
		_, err := board.NewIndex(mustParse("this/Coord={Coord$0}\n"))
		Expect(err).To(MatchError(alloy.ErrMissingRelation))
	})
})

var _ = Describe("Board", func() {
	Context("with overlays and an object binding", func() {
		var b *board.Board

		BeforeEach(func() {
			text := square(1) + fmt.Sprintf(
				"this/State={State$0, State$1}\nthis/Obstacle<:pos={Obstacle$0->%s}\nthis/State<:pos={State$0->A->%s, State$1->A->%s}\n",
				coordAt(1, 1), coordAt(0, 0), coordAt(-1, 0))
			var err error
			b, err = board.New(mustParse(text), board.Puzzle{
				Name:          "owl",
				Bounds:        unit,
				Fixed:         map[board.Coord]string{{X: 0, Y: 0}: "OWL"},
				StaticToCoord: "Obstacle<:pos",
				ObjectToCoord: "pos",
				Glyphs:        glyphs(map[string]string{"OWL": "x", "Obstacle$0": "o", "A": "A"}),
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("lets the per-state binding override the fixed overlay", func() {
			snap, err := b.Assemble(alloy.Tagged("State", 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(snap).To(HaveKeyWithValue(board.Coord{X: 0, Y: 0}, board.AtomLabel(alloy.Ident("A"))))
			Expect(snap).To(HaveKeyWithValue(board.Coord{X: 1, Y: 1}, board.AtomLabel(alloy.Tagged("Obstacle", 0))))
			Expect(b.Render(snap)).To(Equal(". . .\n. A .\n. . o\n"))
		})

		It("keeps the fixed overlay where nothing else lands", func() {
			snap, err := b.Assemble(alloy.Tagged("State", 1))
			Expect(err).NotTo(HaveOccurred())
			Expect(snap).To(HaveKeyWithValue(board.Coord{X: 0, Y: 0}, board.MarkerLabel("OWL")))
			Expect(b.Render(snap)).To(Equal(". . .\nA x .\n. . o\n"))
		})

		It("builds a fresh snapshot on every call", func() {
			first, err := b.Assemble(alloy.Tagged("State", 0))
			Expect(err).NotTo(HaveOccurred())
			delete(first, board.Coord{X: 1, Y: 1})

			second, err := b.Assemble(alloy.Tagged("State", 0))
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(HaveLen(2))
			Expect(b.Static()).To(HaveLen(1))
		})

		It("treats a state absent from the binding as empty", func() {
			snap, err := b.Assemble(alloy.Tagged("State", 9))
			Expect(err).NotTo(HaveOccurred())
			Expect(snap).To(HaveLen(2))
		})
	})

	It("renders an empty 3x3 board as dots", func() {
		b, err := board.New(mustParse(square(1)+"this/State={State$0}\nthis/State<:pos={}\n"), board.Puzzle{
			Bounds:        unit,
			ObjectToCoord: "pos",
		})
		Expect(err).NotTo(HaveOccurred())
		snap, err := b.Assemble(alloy.Tagged("State", 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(snap).To(BeEmpty())

		out := b.Render(snap)
		Expect(out).To(Equal(". . .\n. . .\n. . .\n"))
		Expect(strings.Split(strings.TrimSuffix(out, "\n"), "\n")).To(HaveLen(3))
	})

	It("reads coord_to_object directly", func() {
		text := square(1) + fmt.Sprintf("this/State={State$0}\nthis/State<:colors={State$0->%s->Red$0, State$0->%s->Blue$0}\n",
			coordAt(-1, -1), coordAt(1, 1))
		b, err := board.New(mustParse(text), board.Puzzle{
			Bounds:        unit,
			CoordToObject: "colors",
			Glyphs:        glyphs(map[string]string{"Red$0": "O", "Blue$0": "X"}),
		})
		Expect(err).NotTo(HaveOccurred())
		snap, err := b.Assemble(alloy.Tagged("State", 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Render(snap)).To(Equal("O . .\n. . .\n. . X\n"))
	})

	It("applies state_to_coord before object_to_coord before coord_to_object", func() {
		text := square(1) + fmt.Sprintf(
			"this/State={State$0}\nthis/State<:block={State$0->%s, State$0->%s, State$0->%s}\nthis/State<:pos={State$0->Statue$0->%s, State$0->Statue$1->%s}\nthis/State<:tile={State$0->%s->Red$0}\n",
			coordAt(-1, 0), coordAt(0, 0), coordAt(1, 0),
			coordAt(0, 0), coordAt(1, 0),
			coordAt(1, 0))
		b, err := board.New(mustParse(text), board.Puzzle{
			Bounds:        unit,
			StateToCoord:  "block",
			StateMarker:   "BLOCK",
			ObjectToCoord: "pos",
			CoordToObject: "tile",
			Glyphs:        glyphs(map[string]string{"BLOCK": "o", "Statue$0": "S", "Statue$1": "T", "Red$0": "R"}),
		})
		Expect(err).NotTo(HaveOccurred())
		snap, err := b.Assemble(alloy.Tagged("State", 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Render(snap)).To(Equal(". . .\no S R\n. . .\n"))
	})

	It("blanks cells outside the board and marks unknown glyphs", func() {
		text := "this/Coord={Coord$0, Coord$1}\nthis/Coord<:x={Coord$0->-1, Coord$1->0}\nthis/Coord<:y={Coord$0->-1, Coord$1->0}\n" +
			"this/State={State$0}\nthis/State<:pos={State$0->Ghost$0->Coord$1}\n"
		b, err := board.New(mustParse(text), board.Puzzle{Bounds: unit, ObjectToCoord: "pos"})
		Expect(err).NotTo(HaveOccurred())
		snap, err := b.Assemble(alloy.Tagged("State", 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Render(snap)).To(Equal(".    \n  ?  \n     \n"))
	})

	Describe("schema mismatches", func() {
		It("fails when a binding relation is missing", func() {
			_, err := board.New(mustParse(square(1)+"this/State={State$0}\n"), board.Puzzle{Bounds: unit, ObjectToCoord: "pos"})
			Expect(err).To(MatchError(alloy.ErrMissingRelation))
			Expect(err.Error()).To(ContainSubstring("this/State<:pos"))
		})

		It("fails when an object sits on two cells", func() {
			text := square(1) + fmt.Sprintf("this/State={State$0}\nthis/State<:pos={State$0->A->%s, State$0->A->%s}\n", coordAt(0, 0), coordAt(1, 0))
			b, err := board.New(mustParse(text), board.Puzzle{Bounds: unit, ObjectToCoord: "pos"})
			Expect(err).NotTo(HaveOccurred())
			_, err = b.Assemble(alloy.Tagged("State", 0))
			Expect(err).To(MatchError(alloy.ErrNotSingleton))
		})

		It("fails when a binding names a non-coordinate", func() {
			text := square(1) + "this/State={State$0}\nthis/State<:block={State$0->Owl$0}\n"
			b, err := board.New(mustParse(text), board.Puzzle{Bounds: unit, StateToCoord: "block", StateMarker: "B"})
			Expect(err).NotTo(HaveOccurred())
			_, err = b.Assemble(alloy.Tagged("State", 0))
			Expect(err).To(MatchError(board.ErrUnknownCoord))
		})

		It("requires a per-state binding", func() {
			_, err := board.New(mustParse(square(1)), board.Puzzle{Bounds: unit})
			Expect(err).To(MatchError(board.ErrNoBinding))
		})

		It("requires a marker for state_to_coord", func() {
			_, err := board.New(mustParse(square(1)+"this/State<:block={}\n"), board.Puzzle{Bounds: unit, StateToCoord: "block"})
			Expect(err).To(MatchError(board.ErrMarker))
		})

		It("requires a marker for every fixed cell", func() {
			_, err := board.New(mustParse(square(1)+"this/State<:pos={}\n"), board.Puzzle{
				Bounds:        unit,
				Fixed:         map[board.Coord]string{{X: 0, Y: 0}: ""},
				ObjectToCoord: "pos",
			})
			Expect(err).To(MatchError(board.ErrMarker))
		})

		It("rejects inverted bounds", func() {
			_, err := board.New(mustParse(square(1)), board.Puzzle{Bounds: board.Bounds{MinX: 1, MaxX: 0}, ObjectToCoord: "pos"})
			Expect(err).To(MatchError(board.ErrBounds))
		})

		It("propagates glyph setup failures", func() {
			_, err := board.New(mustParse(square(1)+"this/State<:pos={}\n"), board.Puzzle{
				Bounds:        unit,
				ObjectToCoord: "pos",
				Glyphs: func(inst alloy.Instance) (board.GlyphFunc, error) {
					_, err := inst.Map("this/Statue<:color")
					return nil, err
				},
			})
			Expect(err).To(MatchError(alloy.ErrMissingRelation))
		})
	})
})
