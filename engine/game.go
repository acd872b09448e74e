package engine

import (
	"fmt"

	"golang.org/x/exp/maps"

	"heron-engine/heronmg"
)

// Game owns the ordered position history, the parallel move list and the
// repetition multiset keyed by position hash. The invariants are:
// len(positions) == len(moves)+1, every position is the successor of its
// predecessor under the recorded move, and the multiset counts occurrences
// of each hash in the history.
type Game struct {
	positions  []heronmg.Position
	moves      []heronmg.Move
	repetition map[uint64]int
}

// NewGame starts a game at the given position.
func NewGame(start heronmg.Position) *Game {
	g := &Game{
		positions:  []heronmg.Position{start},
		repetition: make(map[uint64]int, 64),
	}
	g.repetition[start.Hash()] = 1
	return g
}

// Latest returns the current position, read-only.
func (g *Game) Latest() *heronmg.Position {
	return &g.positions[len(g.positions)-1]
}

// Plies returns the number of moves played.
func (g *Game) Plies() int { return len(g.moves) }

// ApplyMove pushes the move and its successor position and bumps the
// repetition count for the new hash. The move must be legal.
func (g *Game) ApplyMove(m heronmg.Move) {
	next := g.Latest().Apply(m)
	g.positions = append(g.positions, next)
	g.moves = append(g.moves, m)
	g.repetition[next.Hash()]++
}

// Undo pops the last position and move, decrementing the repetition count
// and dropping the key when it reaches zero. Undoing past the initial
// position is a no-op.
func (g *Game) Undo() {
	if len(g.moves) == 0 {
		return
	}
	last := g.positions[len(g.positions)-1]
	g.positions = g.positions[:len(g.positions)-1]
	g.moves = g.moves[:len(g.moves)-1]
	if c := g.repetition[last.Hash()]; c <= 1 {
		delete(g.repetition, last.Hash())
	} else {
		g.repetition[last.Hash()] = c - 1
	}
}

// RepetitionOf returns how often the given hash occurs in the history.
func (g *Game) RepetitionOf(hash uint64) int { return g.repetition[hash] }

// CloneRepetition hands the search a private copy of the multiset to
// speculate on without touching the game's bookkeeping.
func (g *Game) CloneRepetition() map[uint64]int {
	return maps.Clone(g.repetition)
}

// TryOnCopy applies the move to a caller-owned position copy; history and
// repetition bookkeeping are untouched.
func (g *Game) TryOnCopy(m heronmg.Move, pos *heronmg.Position) {
	*pos = pos.Apply(m)
}

// Status classifies the current position using the game's repetition count.
func (g *Game) Status() heronmg.Status {
	latest := g.Latest()
	return latest.Classify(g.repetition[latest.Hash()])
}

// CheckInvariants cross-validates the history against the repetition
// multiset. A violation means internal state desynchronized, which the
// engine treats as fatal.
func (g *Game) CheckInvariants() error {
	if len(g.positions) != len(g.moves)+1 {
		return fmt.Errorf("game history desync: %d positions, %d moves", len(g.positions), len(g.moves))
	}
	counts := make(map[uint64]int, len(g.positions))
	for i := range g.positions {
		counts[g.positions[i].Hash()]++
	}
	if len(counts) != len(g.repetition) {
		return fmt.Errorf("repetition multiset desync: %d keys, history has %d", len(g.repetition), len(counts))
	}
	for h, c := range counts {
		if g.repetition[h] != c {
			return fmt.Errorf("repetition count for %x is %d, history says %d", h, g.repetition[h], c)
		}
	}
	return nil
}
