package strategy

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/cespare/xxhash"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/move"
)

// Spite is the adversarial picker: it hands the player the shape whose best
// achievable landing state is worst. A landing state is rated by the index
// of its highest occupied row, so a taller stack rates lower; the player is
// assumed to take the highest-rated outcome.
type Spite struct {
	shapes []move.Shape
}

func NewSpite(shapes []move.Shape) *Spite {
	return &Spite{shapes: shapes}
}

func (s *Spite) Name() string { return "spite" }

// rate is the player's view of a well: higher means a lower, safer stack.
func rate(w *board.Well) int {
	return w.TopRow()
}

// bestOutcome rates every lock outcome for one shape and returns the rating
// of the player's best. A shape with no outcomes (a jammed well) rates below
// every reachable rating.
func bestOutcome(w *board.Well, shape move.Shape, enumerate EnumerateFn, deep func(*board.Well) int) int {
	best := -1
	for _, outcome := range enumerate(w, shape) {
		if r := deep(outcome); r > best {
			best = r
		}
	}
	return best
}

type rated struct {
	shape move.Shape
	best  int
}

// pickWorst runs the per-shape enumeration concurrently and picks the shape
// with the lowest best outcome. Enumerations on the same well are
// independent, so the fan-out needs no locking beyond the per-shape slot.
func pickWorst(w *board.Well, shapes []move.Shape, enumerate EnumerateFn, deep func(*board.Well) int) (move.Shape, error) {
	if len(shapes) == 0 {
		return 0, fmt.Errorf("picker has no shapes to choose from")
	}
	candidates := make([]rated, len(shapes))
	var g errgroup.Group
	for i, shape := range shapes {
		i, shape := i, shape
		g.Go(func() error {
			candidates[i] = rated{shape: shape, best: bestOutcome(w, shape, enumerate, deep)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	worst := lo.MinBy(candidates, func(a, b rated) bool {
		return a.best < b.best
	})
	log.Debug().Stringer("shape", worst.shape).Int("best", worst.best).Msg("picked worst shape")
	return worst.shape, nil
}

func (s *Spite) Pick(w *board.Well, st State, enumerate EnumerateFn) (move.Shape, State, error) {
	shape, err := pickWorst(w, s.shapes, enumerate, rate)
	return shape, st, err
}

// Lookahead is the two-ply variant of Spite: a candidate landing state is
// rated not by its own stack height but by how bad the *next* spiteful pick
// can make it. Ratings of intermediate wells recur across shapes, so they
// are memoized by a hash of the rows; the memo is the picker's threaded
// state.
type Lookahead struct {
	shapes []move.Shape
}

func NewLookahead(shapes []move.Shape) *Lookahead {
	return &Lookahead{shapes: shapes}
}

func (l *Lookahead) Name() string { return "lookahead" }

type lookaheadMemo struct {
	ratings map[uint64]int
}

func wellKey(w *board.Well) uint64 {
	buf := make([]byte, 2*len(w.Rows))
	for i, r := range w.Rows {
		binary.LittleEndian.PutUint16(buf[2*i:], r)
	}
	return xxhash.Sum64(buf)
}

func (l *Lookahead) Pick(w *board.Well, st State, enumerate EnumerateFn) (move.Shape, State, error) {
	memo, ok := st.(*lookaheadMemo)
	if !ok {
		memo = &lookaheadMemo{ratings: make(map[uint64]int)}
	}
	var mu sync.Mutex
	deep := func(mid *board.Well) int {
		key := wellKey(mid)
		mu.Lock()
		r, hit := memo.ratings[key]
		mu.Unlock()
		if hit {
			return r
		}
		worst := -1
		for _, shape := range l.shapes {
			b := bestOutcome(mid, shape, enumerate, rate)
			if worst == -1 || b < worst {
				worst = b
			}
		}
		mu.Lock()
		memo.ratings[key] = worst
		mu.Unlock()
		return worst
	}
	shape, err := pickWorst(w, l.shapes, enumerate, deep)
	return shape, memo, err
}
