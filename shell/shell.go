// Package shell is the interactive terminal front end: a readline loop that
// drives a game session, renders the well, and exports or imports replays.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"github.com/spitewell/spitewell/config"
	"github.com/spitewell/spitewell/game"
	"github.com/spitewell/spitewell/move"
	"github.com/spitewell/spitewell/replayio"
	"github.com/spitewell/spitewell/rotation"
	"github.com/spitewell/spitewell/strategy"
)

var errQuit = errors.New("sending quit signal")

type ShellController struct {
	l   *readline.Instance
	cfg *config.Config

	curGame *game.Game
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mspitewell>\033[0m ",
		HistoryFile:     "/tmp/readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	return &ShellController{l: l, cfg: cfg}
}

func (sc *ShellController) newGame(pickerName string) error {
	sys := rotation.Standard()
	picker, err := strategy.New(pickerName, sys.Shapes())
	if err != nil {
		return err
	}
	var pstate strategy.State
	if seed := sc.cfg.GetUint64(config.Seed); seed != 0 && pickerName == "uniform" {
		pstate = strategy.SeededState(seed)
	}
	g, err := game.NewGame(sc.cfg.Dims(), sys, picker, pstate)
	if err != nil {
		return err
	}
	if err := g.Start(); err != nil {
		return err
	}
	sc.curGame = g
	return nil
}

func (sc *ShellController) show() {
	if sc.curGame == nil {
		showMessage("no game in progress; try `new`", sc.l.Stderr())
		return
	}
	showMessage(renderGame(sc.curGame), sc.l.Stderr())
	if sc.curGame.Over() {
		showMessage(fmt.Sprintf("game over. score: %d", sc.curGame.Well().Score), sc.l.Stderr())
	}
}

func (sc *ShellController) playMoves(moves ...move.Move) error {
	if sc.curGame == nil {
		return errors.New("no game in progress; try `new`")
	}
	for _, m := range moves {
		if err := sc.curGame.PlayMove(m); err != nil {
			return err
		}
	}
	return nil
}

func (sc *ShellController) enumerate(arg string) error {
	if sc.curGame == nil {
		return errors.New("no game in progress; try `new`")
	}
	s, err := move.ParseShape(arg)
	if err != nil {
		return err
	}
	outcomes := sc.curGame.Generator().Enumerate(sc.curGame.Well(), s)
	showMessage(fmt.Sprintf("%d landing states for %v:", len(outcomes), s), sc.l.Stderr())
	for i, w := range outcomes {
		showMessage(fmt.Sprintf("-- outcome %d --", i), sc.l.Stderr())
		showMessage(w.Display(sc.curGame.Dims()), sc.l.Stderr())
	}
	return nil
}

func (sc *ShellController) setPicker(name string) error {
	if sc.curGame == nil {
		return errors.New("no game in progress; try `new`")
	}
	picker, err := strategy.New(name, sc.curGame.System().Shapes())
	if err != nil {
		return err
	}
	var pstate strategy.State
	if seed := sc.cfg.GetUint64(config.Seed); seed != 0 && name == "uniform" {
		pstate = strategy.SeededState(seed)
	}
	sc.curGame.SetPicker(picker, pstate)
	return nil
}

func (sc *ShellController) autoplay() error {
	if sc.curGame == nil {
		return errors.New("no game in progress; try `new`")
	}
	for !sc.curGame.Over() {
		if err := sc.curGame.Drop(); err != nil {
			return err
		}
	}
	return nil
}

func (sc *ShellController) importReplay(text string) error {
	moves, err := replayio.Decode(text)
	if err != nil {
		return err
	}
	sys := rotation.Standard()
	picker, err := strategy.New(sc.cfg.GetString(config.PickerName), sys.Shapes())
	if err != nil {
		return err
	}
	g, err := game.Playback(sc.cfg.Dims(), sys, picker, nil, moves)
	if err != nil {
		return err
	}
	sc.curGame = g
	return nil
}

const helpText = `commands:
  new [picker]     start a game (pickers: spite, lookahead, uniform)
  l r d u          move left / right / down / rotate
  drop             hard drop the current piece
  autoplay         drop every piece until the game ends
  picker <name>    swap the piece picker mid-game
  show             render the well
  enum <shape>     list landing states for a shape (S Z O I L J T)
  replay           print the replay text for the current game
  import <text>    replay a game from replay text
  help             this message
  exit             leave`

func (sc *ShellController) execLine(line string, sig chan os.Signal) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "new":
		pickerName := sc.cfg.GetString(config.PickerName)
		if len(args) > 0 {
			pickerName = args[0]
		}
		if err := sc.newGame(pickerName); err != nil {
			return err
		}
		sc.show()
	case "l", "r", "d", "u":
		m, _ := move.ParseMove(cmd)
		if err := sc.playMoves(m); err != nil {
			return err
		}
		sc.show()
	case "drop":
		if sc.curGame == nil {
			return errors.New("no game in progress; try `new`")
		}
		if err := sc.curGame.Drop(); err != nil {
			return err
		}
		sc.show()
	case "autoplay":
		if err := sc.autoplay(); err != nil {
			return err
		}
		sc.show()
	case "picker":
		if len(args) != 1 {
			return errors.New("usage: picker <name>")
		}
		if err := sc.setPicker(args[0]); err != nil {
			return err
		}
		showMessage("picker is now "+sc.curGame.Picker().Name(), sc.l.Stderr())
	case "show":
		sc.show()
	case "enum":
		if len(args) != 1 {
			return errors.New("usage: enum <shape>")
		}
		return sc.enumerate(args[0])
	case "replay":
		if sc.curGame == nil {
			return errors.New("no game in progress; try `new`")
		}
		showMessage(replayio.Encode(sc.curGame.Moves()), sc.l.Stderr())
	case "import":
		if len(args) == 0 {
			return errors.New("usage: import <replay text>")
		}
		if err := sc.importReplay(strings.Join(args, " ")); err != nil {
			return err
		}
		sc.show()
	case "help":
		showMessage(helpText, sc.l.Stderr())
	case "bye", "exit":
		sig <- syscall.SIGINT
		return errQuit
	default:
		log.Debug().Msgf("you said: %q", line)
	}
	return nil
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if err := sc.execLine(line, sig); err != nil {
			if errors.Is(err, errQuit) {
				break
			}
			log.Error().Err(err).Msg("")
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}
