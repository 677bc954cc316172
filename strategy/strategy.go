// Package strategy contains the piece pickers: the adversarial policies
// that decide which shape a player gets next. A picker sees the current
// well, its own opaque state, and the landing-state enumerator, and nothing
// else of the engine.
package strategy

import (
	"fmt"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/move"
)

// State is a picker's private state, threaded through each call: state in,
// state out. Pickers with no state return it untouched.
type State any

// EnumerateFn is the landing-state enumerator, pre-bound to the active
// rotation system and well geometry.
type EnumerateFn func(w *board.Well, s move.Shape) []*board.Well

// Picker selects the next shape for a well. Implementations must be safe to
// call from a single goroutine at a time; they may enumerate concurrently
// themselves.
type Picker interface {
	Name() string
	Pick(w *board.Well, st State, enumerate EnumerateFn) (move.Shape, State, error)
}

// New returns the named picker over the given shape set. The shape order is
// the deterministic tiebreak order.
func New(name string, shapes []move.Shape) (Picker, error) {
	switch name {
	case "spite":
		return NewSpite(shapes), nil
	case "lookahead":
		return NewLookahead(shapes), nil
	case "uniform":
		return NewUniform(shapes), nil
	}
	return nil, fmt.Errorf("unknown picker %q", name)
}
