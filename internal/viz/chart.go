package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

// ChangeChart plots the number of cells changed by every move, followed by
// the total.
func ChangeChart(counts []int, width int) string {
	if len(counts) == 0 {
		return "no moves\n"
	}
	data := make([]float64, len(counts))
	total := 0
	for i, c := range counts {
		data[i] = float64(c)
		total += c
	}

	var sb strings.Builder
	sb.WriteString(asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(width),
		asciigraph.Caption("cells changed per move"),
	))
	fmt.Fprintf(&sb, "\n\nmoves: %d\ncells changed: %d\n", len(counts), total)
	return sb.String()
}
