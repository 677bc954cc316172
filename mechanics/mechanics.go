// Package mechanics implements the single-move transition function: given a
// well, a falling piece, and one move, it produces the next placement, or
// locks the piece into the well and resolves line clears and scoring.
package mechanics

import (
	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/move"
	"github.com/spitewell/spitewell/rotation"
)

// Fits reports whether the placement is fully on the board and does not
// overlap an occupied cell.
func Fits(d board.Dims, sys rotation.System, w *board.Well, p move.Piece) bool {
	o := sys.Orientations(p.Shape)[p.O]
	x := p.X + o.XMin
	y := p.Y + o.YMin
	if x < 0 || x+o.XDim > d.Width || y < 0 || y+o.YDim > d.Depth {
		return false
	}
	for i, row := range o.Rows {
		if w.Rows[y+i]&(row<<x) != 0 {
			return false
		}
	}
	return true
}

// lock merges the piece into a copy of the well and clears completed rows.
// Each of the piece's rows is checked in increasing index order against the
// board as already shifted by earlier clears in the same lock; a full row
// only clears (and scores) at or below the bar.
func lock(d board.Dims, sys rotation.System, w *board.Well, p move.Piece) *board.Well {
	o := sys.Orientations(p.Shape)[p.O]
	x := p.X + o.XMin
	y := p.Y + o.YMin
	next := w.Copy()
	for i, row := range o.Rows {
		next.Rows[y+i] |= row << x
	}
	full := d.FullRow()
	for r := y; r < y+o.YDim; r++ {
		if next.Rows[r] != full || r < d.Bar {
			continue
		}
		for k := r; k >= 1; k-- {
			next.Rows[k] = next.Rows[k-1]
		}
		next.Rows[0] = 0
		next.Score++
	}
	return next
}

// Apply computes one move. The piece is assumed to rest legally on the well;
// that precondition is never re-validated here.
//
// An accepted move returns the moved placement and the same well. A blocked
// Left, Right or Clockwise is a no-op: the placement comes back unchanged. A
// blocked Down locks the pre-move placement and returns a nil placement with
// the new well.
func Apply(d board.Dims, sys rotation.System, w *board.Well, p *move.Piece, m move.Move) (*move.Piece, *board.Well) {
	cand := *p
	switch m {
	case move.Left:
		cand.X--
	case move.Right:
		cand.X++
	case move.Down:
		cand.Y++
	case move.Clockwise:
		cand.O = (cand.O + 1) % len(sys.Orientations(cand.Shape))
	}
	if Fits(d, sys, w, cand) {
		return &cand, w
	}
	if m == move.Down {
		return nil, lock(d, sys, w, *p)
	}
	return p, w
}
