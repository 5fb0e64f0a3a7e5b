package board

import "strings"

const (
	emptyCell   = "."
	offBoard    = " "
	unknownCell = "?"
)

// Render draws snap inside bounds, one line per row from MinY to MaxY.
// Occupied cells show their glyph, free board cells a dot and cells outside
// the board a blank. Columns are separated by one space.
func Render(snap Snapshot, bounds Bounds, cells Cells, glyph GlyphFunc) string {
	var sb strings.Builder
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			if x > bounds.MinX {
				sb.WriteByte(' ')
			}
			xy := Coord{X: x, Y: y}
			if label, ok := snap[xy]; ok {
				g := glyph(label)
				if g == "" {
					g = unknownCell
				}
				sb.WriteString(g)
			} else if cells.Contains(xy) {
				sb.WriteString(emptyCell)
			} else {
				sb.WriteString(offBoard)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Render draws a snapshot with the puzzle's bounds and glyphs.
func (b *Board) Render(snap Snapshot) string {
	return Render(snap, b.puzzle.Bounds, b.index.Cells(), b.glyph)
}
