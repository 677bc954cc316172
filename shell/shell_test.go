package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spitewell/spitewell/board"
	"github.com/spitewell/spitewell/config"
	"github.com/spitewell/spitewell/game"
	"github.com/spitewell/spitewell/move"
	"github.com/spitewell/spitewell/rotation"
	"github.com/spitewell/spitewell/strategy"
)

// oPicker deals nothing but O pieces.
type oPicker struct{}

func (oPicker) Name() string { return "o-only" }

func (oPicker) Pick(w *board.Well, st strategy.State, enumerate strategy.EnumerateFn) (move.Shape, strategy.State, error) {
	return move.O, st, nil
}

func newTestShell(t *testing.T, d board.Dims, picker strategy.Picker) *ShellController {
	t.Helper()
	g, err := game.NewGame(d, rotation.Standard(), picker, nil)
	require.NoError(t, err)
	require.NoError(t, g.Start())
	return &ShellController{cfg: config.DefaultConfig(), curGame: g}
}

func TestSetPickerSwapsOpponent(t *testing.T) {
	sys := rotation.Standard()
	sc := newTestShell(t, board.Dims{Width: 10, Depth: 8, Bar: 4}, strategy.NewSpite(sys.Shapes()))

	require.NoError(t, sc.setPicker("uniform"))
	assert.Equal(t, "uniform", sc.curGame.Picker().Name())

	require.NoError(t, sc.setPicker("lookahead"))
	assert.Equal(t, "lookahead", sc.curGame.Picker().Name())

	assert.Error(t, sc.setPicker("chess"))

	sc.curGame = nil
	assert.Error(t, sc.setPicker("spite"))
}

func TestAutoplayRunsToGameOver(t *testing.T) {
	// O pieces stack two rows per drop in the spawn columns and never fill
	// a row, so autoplay must end by overflowing the bar.
	sc := newTestShell(t, board.Dims{Width: 4, Depth: 8, Bar: 4}, oPicker{})

	require.NoError(t, sc.autoplay())
	assert.True(t, sc.curGame.Over())
	assert.NotEmpty(t, sc.curGame.Moves())
	assert.Equal(t, 0, sc.curGame.Well().Score)

	sc.curGame = nil
	assert.Error(t, sc.autoplay())
}
