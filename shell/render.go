package shell

import (
	"fmt"
	"strings"

	"github.com/spitewell/spitewell/game"
)

// renderGame draws the well with the in-flight piece overlaid. Stack cells
// are ##, piece cells [].
func renderGame(g *game.Game) string {
	d := g.Dims()
	w := g.Well()

	// Absolute piece cells, if a piece is in flight.
	pieceCells := make(map[[2]int]bool)
	if p := g.Piece(); p != nil {
		o := g.System().Orientations(p.Shape)[p.O]
		for i, row := range o.Rows {
			for j := 0; j < o.XDim; j++ {
				if row>>j&1 != 0 {
					pieceCells[[2]int{p.Y + o.YMin + i, p.X + o.XMin + j}] = true
				}
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("--", d.Width) + "+\n")
	for i, r := range w.Rows {
		sb.WriteString("|")
		for col := 0; col < d.Width; col++ {
			switch {
			case pieceCells[[2]int{i, col}]:
				sb.WriteString("[]")
			case r>>col&1 != 0:
				sb.WriteString("##")
			default:
				sb.WriteString("  ")
			}
		}
		sb.WriteString("|")
		if i == d.Bar {
			sb.WriteString(" <- bar")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("+" + strings.Repeat("--", d.Width) + "+\n")
	sb.WriteString(fmt.Sprintf("score: %d\n", w.Score))
	return sb.String()
}
