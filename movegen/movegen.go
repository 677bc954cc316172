// Package movegen enumerates landing states: every board configuration
// reachable by dropping one shape from its spawn placement, over any
// sequence of moves. This is the engine an adversarial piece picker builds
// on.
package movegen

import (
	"github.com/rs/zerolog/log"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/mechanics"
	"github.com/spitewell/spitewell/move"
	"github.com/spitewell/spitewell/rotation"
)

// anchorPad is how far a piece anchor can sit off the top or left edge while
// its occupied cells stay on the board (the bounding box is 4x4, so at most
// 3 cells).
const anchorPad = rotation.GridSize - 1

// Generator enumerates lock outcomes for a fixed geometry and rotation
// system. It holds no per-call state, so one Generator may be shared by
// concurrent callers working on distinct wells.
type Generator struct {
	dims board.Dims
	sys  rotation.System
}

func NewGenerator(d board.Dims, sys rotation.System) *Generator {
	return &Generator{dims: d, sys: sys}
}

var allMoves = [4]move.Move{move.Left, move.Right, move.Down, move.Clockwise}

// posHash encodes (x, y, o) injectively: each coordinate has a known bounded
// range, so a mixed-radix encoding never collides. It is a visited-set key,
// not a board coordinate.
func (g *Generator) posHash(p move.Piece) int {
	orients := len(g.sys.Orientations(p.Shape))
	return ((p.X+anchorPad)*(g.dims.Depth+anchorPad)+(p.Y+anchorPad))*orients + p.O
}

// Enumerate returns every board configuration reachable by locking the given
// shape, starting from its spawn placement. Lock outcomes are appended
// unconditionally; the same configuration can arise from distinct placements
// and duplicates are retained for the caller to weigh.
func (g *Generator) Enumerate(w *board.Well, s move.Shape) []*board.Well {
	p := g.sys.Spawn(s, g.dims.Width)

	// Fast-forward: while the row just below the piece's box is inside the
	// well and entirely empty, the piece cannot collide, so descend without
	// a full check. This shrinks the search, never its result.
	for p.Y+rotation.GridSize < g.dims.Depth && w.Rows[p.Y+rotation.GridSize] == 0 {
		p.Y++
	}

	var outcomes []*board.Well
	work := []move.Piece{p}
	seen := map[int]bool{g.posHash(p): true}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]
		for _, m := range allMoves {
			next, nw := mechanics.Apply(g.dims, g.sys, w, &cur, m)
			if next == nil {
				outcomes = append(outcomes, nw)
				continue
			}
			if *next == cur {
				// Blocked sideways/rotation move; nothing new to visit.
				continue
			}
			h := g.posHash(*next)
			if !seen[h] {
				seen[h] = true
				work = append(work, *next)
			}
		}
	}
	log.Debug().
		Stringer("shape", s).
		Int("placements", len(seen)).
		Int("outcomes", len(outcomes)).
		Msg("enumerated landing states")
	return outcomes
}
