// Package engine ties the rules library, the game history and the search
// together behind the UCI command surface. A single worker goroutine owns
// the game state and stdout; the reader thread only parses and enqueues.
package engine

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"heron-engine/heronmg"
	"heron-engine/uci"
)

const (
	engineName   = "Heron 0.1"
	engineAuthor = "the Heron authors"
)

// osExit is swappable so tests can observe fatal exits.
var osExit = os.Exit

// Engine is the command handler. It owns the Game, the debug flag and the
// pending-command backlog; the only cross-thread shared values are the
// command queue and the stop flag.
type Engine struct {
	out     io.Writer
	queue   *CommandQueue
	game    *Game
	stop    atomic.Bool
	debug   bool
	options map[string]string
	pending []uci.Command
	quit    bool
}

// New creates an engine writing its responses to out.
func New(out io.Writer) *Engine {
	return &Engine{
		out:     out,
		queue:   NewCommandQueue(DefaultQueueCapacity),
		options: make(map[string]string),
	}
}

// Queue exposes the command queue for the reader thread.
func (e *Engine) Queue() *CommandQueue { return e.queue }

// RequestStop sets the cancellation flag observed by the search poll sites.
func (e *Engine) RequestStop() { e.stop.Store(true) }

func (e *Engine) println(args ...any) {
	fmt.Fprintln(e.out, args...)
}

// debugf emits an info string line, but only while debug output is on.
func (e *Engine) debugf(format string, args ...any) {
	if e.debug {
		fmt.Fprintf(e.out, "info string "+format+"\n", args...)
	}
}

// Run is the worker loop: commands deferred from search poll sites are
// handled first, then the queue is drained in FIFO order. Returns the
// process exit status.
func (e *Engine) Run() int {
	for !e.quit {
		var cmd uci.Command
		if len(e.pending) > 0 {
			cmd = e.pending[0]
			e.pending = e.pending[1:]
		} else {
			var ok bool
			cmd, ok = e.queue.Dequeue()
			if !ok {
				break
			}
		}
		e.handle(cmd)
	}
	e.queue.Close()
	return 0
}

// handle dispatches one command on its tag.
func (e *Engine) handle(cmd uci.Command) {
	switch cmd.Kind {
	case uci.KindUci:
		e.println("id name " + engineName)
		e.println("id author " + engineAuthor)
		e.println("uciok")
	case uci.KindIsReady:
		e.println("readyok")
	case uci.KindDebug:
		e.debug = cmd.DebugOn
	case uci.KindSetOption:
		// Recorded but not acted on; no options are supported yet.
		e.options[cmd.Name] = cmd.Value
		e.debugf("option %s = %q", cmd.Name, cmd.Value)
	case uci.KindUciNewGame:
		// Fresh game; the board is set up by the next position command.
		e.game = nil
		e.stop.Store(false)
	case uci.KindPosition:
		e.doPosition(cmd)
	case uci.KindGo:
		e.doGo(cmd.Go)
	case uci.KindStop, uci.KindPonderHit:
		// Outside a search these have nothing to act on.
	case uci.KindQuit:
		e.quit = true
	case uci.KindInvalid:
		e.debugf("error: %s", cmd.Err)
	}
}

// doPosition replaces the game wholesale: load the FEN, then apply the
// move list in order. An illegal move stops the replay at the last move
// that applied; earlier moves stay in effect.
func (e *Engine) doPosition(cmd uci.Command) {
	pos, err := heronmg.ParseFEN(cmd.FEN)
	if err != nil {
		// The parser validates FENs up front, so this is unexpected; drop
		// the command and keep the previous game.
		e.debugf("error: %s", err)
		return
	}
	game := NewGame(pos)
	for _, ms := range cmd.Moves {
		move, ok := findLegalMove(game.Latest(), ms)
		if !ok {
			e.debugf("illegal move %s", ms)
			break
		}
		game.ApplyMove(move)
	}
	if err := game.CheckInvariants(); err != nil {
		fmt.Fprintln(e.out, "info string fatal:", err)
		osExit(1)
	}
	e.game = game
	e.debugf("position set to %s", game.Latest().ToFEN())
}

// findLegalMove resolves a long algebraic token against the position's
// legal moves.
func findLegalMove(pos *heronmg.Position, s string) (heronmg.Move, bool) {
	from, to, promo, err := heronmg.ParseMove(s)
	if err != nil {
		return heronmg.Move{}, false
	}
	for _, m := range pos.GenerateLegalMoves() {
		if m.From == from && m.To == to && m.PromotionType() == promo {
			return m, true
		}
	}
	return heronmg.Move{}, false
}

// doGo runs a search from the current position and reports its best move.
// Without a preceding position command the engine searches from the
// standard start position.
func (e *Engine) doGo(ga uci.GoArgs) {
	if e.game == nil {
		start, err := heronmg.ParseFEN(heronmg.FENStartPos)
		if err != nil {
			e.debugf("error: %s", err)
			return
		}
		e.game = NewGame(start)
	}

	e.stop.Store(false)
	result := e.findBestMove(*e.game.Latest(), e.game.CloneRepetition(), limitsFromGo(ga))
	e.stop.Store(false)

	if !result.HasBest {
		e.println("bestmove 0000")
		return
	}
	if result.HasPonder {
		e.println("bestmove " + result.Best.String() + " ponder " + result.Ponder.String())
	} else {
		e.println("bestmove " + result.Best.String())
	}
}
