// Package game orchestrates a session: it applies player moves through the
// transition function, asks the piece picker for the next shape whenever one
// is needed, and keeps the move log a replay is encoded from. A Game doesn't
// render or read input; that is the caller's concern.
package game

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/mechanics"
	"github.com/spitewell/spitewell/move"
	"github.com/spitewell/spitewell/movegen"
	"github.com/spitewell/spitewell/rotation"
	"github.com/spitewell/spitewell/strategy"
)

var (
	// ErrPickerContract is returned when the piece picker violates its
	// contract: it failed outright, or returned a shape outside the known
	// set. The game is abandoned, never retried; a misbehaving picker is not
	// assumed safe to re-invoke.
	ErrPickerContract = errors.New("piece picker contract violation")

	ErrGameOver = errors.New("game is over")
	ErrNoPiece  = errors.New("no piece in flight")
)

// Game holds one session's state.
type Game struct {
	dims   board.Dims
	sys    rotation.System
	gen    *movegen.Generator
	picker strategy.Picker
	pstate strategy.State

	well  *board.Well
	piece *move.Piece
	moves []move.Move
	over  bool
}

// NewGame validates the configuration and creates a session with an empty
// well. Configuration failures surface here, before any well exists.
func NewGame(d board.Dims, sys rotation.System, picker strategy.Picker, pstate strategy.State) (*Game, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if sys == nil || len(sys.Shapes()) == 0 {
		return nil, fmt.Errorf("%w: rotation system has no shapes", rotation.ErrNoOrientations)
	}
	for _, s := range sys.Shapes() {
		if len(sys.Orientations(s)) == 0 {
			return nil, fmt.Errorf("%w: %v", rotation.ErrNoOrientations, s)
		}
	}
	if picker == nil {
		return nil, errors.New("no piece picker configured")
	}
	return &Game{
		dims:   d,
		sys:    sys,
		gen:    movegen.NewGenerator(d, sys),
		picker: picker,
		pstate: pstate,
		well:   board.New(d),
	}, nil
}

func (g *Game) Dims() board.Dims { return g.dims }

func (g *Game) System() rotation.System { return g.sys }

func (g *Game) Well() *board.Well { return g.well }

func (g *Game) Piece() *move.Piece { return g.piece }

func (g *Game) Over() bool { return g.over }

func (g *Game) Picker() strategy.Picker { return g.picker }

func (g *Game) Generator() *movegen.Generator { return g.gen }

// Moves returns the move log so far; the replay codec consumes it.
func (g *Game) Moves() []move.Move {
	out := make([]move.Move, len(g.moves))
	copy(out, g.moves)
	return out
}

// SetPicker swaps the opponent mid-session. The new picker starts with the
// given state.
func (g *Game) SetPicker(p strategy.Picker, st strategy.State) {
	g.picker = p
	g.pstate = st
}

// Start requests the first piece. Separate from NewGame so a caller can
// inspect or alter the session before the opponent moves.
func (g *Game) Start() error {
	if g.piece != nil || g.over {
		return nil
	}
	return g.requestPiece()
}

// requestPiece asks the picker for a shape, validates it, and spawns it. A
// spawn that overlaps the stack ends the game.
func (g *Game) requestPiece() error {
	shape, newState, err := g.picker.Pick(g.well, g.pstate, g.gen.Enumerate)
	if err != nil {
		g.over = true
		return fmt.Errorf("%w: %v", ErrPickerContract, err)
	}
	known := false
	for _, s := range g.sys.Shapes() {
		if s == shape {
			known = true
			break
		}
	}
	if !known {
		g.over = true
		return fmt.Errorf("%w: returned unknown shape %v", ErrPickerContract, shape)
	}
	g.pstate = newState
	p := g.sys.Spawn(shape, g.dims.Width)
	if !mechanics.Fits(g.dims, g.sys, g.well, p) {
		g.over = true
		log.Info().Stringer("shape", shape).Int("score", g.well.Score).Msg("no room to spawn")
		return nil
	}
	g.piece = &p
	log.Debug().Stringer("shape", shape).Msg("spawned piece")
	return nil
}

// PlayMove applies one player move. On a lock it resolves the overflow rule
// and, if the game survives, requests the next piece.
func (g *Game) PlayMove(m move.Move) error {
	if g.over {
		return ErrGameOver
	}
	if g.piece == nil {
		return ErrNoPiece
	}
	next, well := mechanics.Apply(g.dims, g.sys, g.well, g.piece, m)
	g.moves = append(g.moves, m)
	g.piece = next
	g.well = well
	if next != nil {
		return nil
	}
	if g.well.Overflowed(g.dims.Bar) {
		g.over = true
		log.Info().Int("score", g.well.Score).Msg("well overflowed the bar")
		return nil
	}
	return g.requestPiece()
}

// Drop plays Down until the piece locks.
func (g *Game) Drop() error {
	for g.piece != nil && !g.over {
		if err := g.PlayMove(move.Down); err != nil {
			return err
		}
	}
	return nil
}

// Playback replays a decoded move list through a fresh game with the same
// configuration. It only reproduces the original session when the picker is
// deterministic.
func Playback(d board.Dims, sys rotation.System, picker strategy.Picker, pstate strategy.State, moves []move.Move) (*Game, error) {
	g, err := NewGame(d, sys, picker, pstate)
	if err != nil {
		return nil, err
	}
	if err := g.Start(); err != nil {
		return nil, err
	}
	for i, m := range moves {
		if g.over {
			// The replay codec pads an odd move list with a trailing Down,
			// so a tape whose game ends on the next-to-last move carries
			// the pad into a finished session. Accept exactly that one.
			if m == move.Down && i == len(moves)-1 {
				break
			}
			return g, fmt.Errorf("%w: %d moves left over", ErrGameOver, len(moves)-i)
		}
		if err := g.PlayMove(m); err != nil {
			return nil, fmt.Errorf("replay move %d (%v): %w", i, m, err)
		}
	}
	return g, nil
}
