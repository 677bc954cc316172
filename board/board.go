// Package board contains the well representation: a stack of row bitmasks
// plus the score. Wells are plain data; every operation that changes a well
// copies it first, so a well handed to a caller is never mutated again.
package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

const (
	// MinWidth is the narrowest well that still fits every piece with room
	// to maneuver.
	MinWidth = 4
	// MaxWidth is bounded so a full row fits in a row bitmask.
	MaxWidth = 16
)

var (
	ErrWidthOutOfRange = errors.New("well width out of range")
	ErrDepthBelowBar   = errors.New("well depth is less than the bar row")
)

// Dims describes the fixed geometry of a game: the well width and depth, and
// the bar row. A completed row strictly above the bar never clears or scores;
// a locked cell above the bar ends the game.
type Dims struct {
	Width int
	Depth int
	Bar   int
}

// Validate checks the geometry before any well is created. These are the
// fatal configuration errors; nothing downstream re-checks them.
func (d Dims) Validate() error {
	if d.Width < MinWidth || d.Width > MaxWidth {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrWidthOutOfRange, d.Width, MinWidth, MaxWidth)
	}
	if d.Depth < d.Bar {
		return fmt.Errorf("%w: depth %d, bar %d", ErrDepthBelowBar, d.Depth, d.Bar)
	}
	if d.Bar < 0 {
		return fmt.Errorf("%w: bar %d", ErrDepthBelowBar, d.Bar)
	}
	return nil
}

// FullRow is the bitmask of a completely occupied row.
func (d Dims) FullRow() uint16 {
	return 1<<d.Width - 1
}

// Well is one board configuration. Row 0 is the top of the well; bit i of a
// row is column i. Score only ever increases.
type Well struct {
	Rows  []uint16
	Score int
}

// New creates an empty well for the given geometry.
func New(d Dims) *Well {
	return &Well{Rows: make([]uint16, d.Depth)}
}

// Copy returns an independent snapshot of the well.
func (w *Well) Copy() *Well {
	rows := make([]uint16, len(w.Rows))
	copy(rows, w.Rows)
	return &Well{Rows: rows, Score: w.Score}
}

// Equal reports whether two wells have identical rows and score.
func (w *Well) Equal(other *Well) bool {
	if w.Score != other.Score || len(w.Rows) != len(other.Rows) {
		return false
	}
	for i, r := range w.Rows {
		if other.Rows[i] != r {
			return false
		}
	}
	return true
}

// CellCount returns the total number of occupied cells.
func (w *Well) CellCount() int {
	count := 0
	for _, r := range w.Rows {
		count += bits.OnesCount16(r)
	}
	return count
}

// TopRow returns the index of the highest occupied row, or len(Rows) if the
// well is empty. Lower indexes mean a taller stack.
func (w *Well) TopRow() int {
	for i, r := range w.Rows {
		if r != 0 {
			return i
		}
	}
	return len(w.Rows)
}

// Overflowed reports whether any cell sits strictly above the bar row.
func (w *Well) Overflowed(bar int) bool {
	for i := 0; i < bar && i < len(w.Rows); i++ {
		if w.Rows[i] != 0 {
			return true
		}
	}
	return false
}

// Display returns a terminal rendering of the well, with the bar row marked.
// Column 0 is on the left.
func (w *Well) Display(d Dims) string {
	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("--", d.Width) + "+\n")
	for i, r := range w.Rows {
		sb.WriteString("|")
		for col := 0; col < d.Width; col++ {
			if r>>col&1 != 0 {
				sb.WriteString("##")
			} else {
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
