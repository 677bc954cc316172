package strategy

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/move"
)

// Uniform picks shapes uniformly at random. It is the control opponent: a
// classic piece bag without the malice. Its RNG is the threaded state.
type Uniform struct {
	shapes []move.Shape
}

func NewUniform(shapes []move.Shape) *Uniform {
	return &Uniform{shapes: shapes}
}

func (u *Uniform) Name() string { return "uniform" }

// SeededState returns a Uniform state with a fixed seed, for reproducible
// games.
func SeededState(seed uint64) State {
	var key [32]byte
	for i := 0; i < 8; i++ {
		key[i] = byte(seed >> (8 * i))
	}
	return frand.NewCustom(key[:], 1024, 12)
}

func (u *Uniform) Pick(w *board.Well, st State, enumerate EnumerateFn) (move.Shape, State, error) {
	if len(u.shapes) == 0 {
		return 0, st, fmt.Errorf("picker has no shapes to choose from")
	}
	rng, ok := st.(*frand.RNG)
	if !ok {
		rng = frand.New()
	}
	return u.shapes[rng.Intn(len(u.shapes))], rng, nil
}
