package engine

import (
	"fmt"
	"time"

	"heron-engine/heronmg"
	"heron-engine/uci"
)

// =============================================================================
// SCORE CONSTANTS
// =============================================================================
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// MaxDepth caps iterative deepening for open-ended searches.
const MaxDepth = 64

// DefaultDepth is used when a go command carries no limit at all.
const DefaultDepth = 6

// Limits carries the bounds a go command puts on the search. Zero values
// mean "not limited".
type Limits struct {
	Depth       int
	Nodes       int
	MoveTime    int
	WTime       int
	BTime       int
	WInc        int
	BInc        int
	MovesToGo   int
	Mate        int
	SearchMoves []string
	Ponder      bool
	Infinite    bool
}

func limitsFromGo(ga uci.GoArgs) Limits {
	return Limits{
		Depth:       ga.Depth,
		Nodes:       ga.Nodes,
		MoveTime:    ga.MoveTime,
		WTime:       ga.WTime,
		BTime:       ga.BTime,
		WInc:        ga.WInc,
		BInc:        ga.BInc,
		MovesToGo:   ga.MovesToGo,
		Mate:        ga.Mate,
		SearchMoves: ga.SearchMoves,
		Ponder:      ga.Ponder,
		Infinite:    ga.Infinite,
	}
}

// SearchResult is what a completed (or cancelled) search hands back.
type SearchResult struct {
	Best      heronmg.Move
	HasBest   bool
	Ponder    heronmg.Move
	HasPonder bool
	Score     int32
	Depth     int
	Nodes     uint64
}

// searchContext holds the per-search state: the speculative repetition
// multiset, node counting, the time budget and the cancellation status.
type searchContext struct {
	eng       *Engine
	rep       map[uint64]int
	nodes     uint64
	maxNodes  uint64
	budget    time.Duration
	deadline  time.Time
	timed     bool
	pondering bool
	stopped   bool
}

// shouldStop is the cooperative cancellation point, called between root
// moves and on entry to every node below the root, leaves included. It
// checks the shared stop flag, the node and time budgets, and polls the
// command queue: isready is answered in place, stop/quit cancel, a new go
// cancels and is re-handled afterwards, ponderhit starts the clock, and
// everything else is pushed back for the worker.
func (s *searchContext) shouldStop() bool {
	if s.stopped {
		return true
	}
	if s.eng.stop.Load() {
		s.stopped = true
		return true
	}
	if s.maxNodes > 0 && s.nodes >= s.maxNodes {
		s.stopped = true
		return true
	}
	if s.timed && !s.pondering && time.Now().After(s.deadline) {
		s.stopped = true
		return true
	}
	for {
		cmd, ok := s.eng.queue.TryDequeue()
		if !ok {
			break
		}
		switch cmd.Kind {
		case uci.KindIsReady:
			// Answered even mid-search; the protocol requires it.
			s.eng.println("readyok")
		case uci.KindStop:
			s.stopped = true
		case uci.KindQuit:
			s.stopped = true
			s.eng.quit = true
		case uci.KindPonderHit:
			// The pondered move was played: keep searching, but the time
			// budget applies from now on.
			s.pondering = false
			if s.timed {
				s.deadline = time.Now().Add(s.budget)
			}
		case uci.KindGo:
			// A new search pre-empts the running one but is not reordered.
			s.stopped = true
			s.eng.pending = append(s.eng.pending, cmd)
		default:
			s.eng.pending = append(s.eng.pending, cmd)
		}
	}
	return s.stopped
}

// findBestMove runs iterative-deepening negamax from the given root. rep
// is the search's private copy of the game's repetition multiset.
func (e *Engine) findBestMove(pos heronmg.Position, rep map[uint64]int, limits Limits) SearchResult {
	ctx := &searchContext{
		eng:       e,
		rep:       rep,
		maxNodes:  uint64(limits.Nodes),
		pondering: limits.Ponder,
	}
	if !limits.Infinite {
		if budget := moveTimeBudget(limits, pos.SideToMove()); budget > 0 {
			ctx.budget = time.Duration(budget) * time.Millisecond
			ctx.deadline = time.Now().Add(ctx.budget)
			ctx.timed = true
		}
	}

	maxDepth := limits.Depth
	if maxDepth <= 0 {
		switch {
		case limits.Mate > 0:
			maxDepth = 2 * limits.Mate
		case limits.Infinite || limits.Ponder || ctx.timed:
			maxDepth = MaxDepth
		default:
			maxDepth = DefaultDepth
		}
	}
	if maxDepth > MaxDepth {
		maxDepth = MaxDepth
	}

	rootMoves := pos.GenerateLegalMoves()
	if len(limits.SearchMoves) > 0 {
		restricted := rootMoves[:0]
		for _, m := range rootMoves {
			for _, want := range limits.SearchMoves {
				if m.String() == want {
					restricted = append(restricted, m)
					break
				}
			}
		}
		rootMoves = restricted
	}

	var result SearchResult
	if len(rootMoves) == 0 {
		// Terminal root: there is no move to report (null move downstream).
		return result
	}
	orderMoves(rootMoves)

	// Fall back to the first legal move until a depth completes.
	result.Best = rootMoves[0]
	result.HasBest = true

	started := time.Now()
	for depth := 1; depth <= maxDepth; depth++ {
		alpha, beta := -MaxScore, MaxScore
		bestScore := -MaxScore
		bestMove := heronmg.Move{}
		haveBest := false
		var pv, childPV PVLine

		for _, m := range rootMoves {
			if ctx.shouldStop() {
				break
			}
			child := pos.Apply(m)
			ctx.push(child.Hash())
			childPV.Clear()
			score := -ctx.negamax(&child, depth-1, 1, -beta, -alpha, &childPV)
			ctx.pop(child.Hash())
			if ctx.stopped {
				// The aborted subtree returned an unreliable score.
				break
			}
			if score > bestScore {
				bestScore = score
				bestMove = m
				haveBest = true
				pv.Update(m, childPV)
			}
			if score > alpha {
				alpha = score
			}
		}

		if ctx.stopped {
			// Keep a partial depth-1 result rather than nothing at all.
			if result.Depth == 0 && haveBest {
				result.Best = bestMove
				result.Score = bestScore
			}
			break
		}

		result.Best = bestMove
		result.HasBest = true
		result.Score = bestScore
		result.Depth = depth
		result.Nodes = ctx.nodes
		if ponder, ok := pv.PonderMove(); ok {
			result.Ponder = ponder
			result.HasPonder = true
		} else {
			result.HasPonder = false
		}

		elapsed := time.Since(started).Milliseconds()
		if elapsed == 0 {
			elapsed = 1
		}
		nps := ctx.nodes * 1000 / uint64(elapsed)
		e.println("info depth", depth,
			"score", scoreString(bestScore),
			"nodes", ctx.nodes,
			"time", elapsed,
			"nps", nps,
			"pv", pv.String())

		if bestScore > Checkmate || bestScore < -Checkmate {
			// A forced mate was found; deeper iterations cannot improve it.
			break
		}
	}

	result.Nodes = ctx.nodes
	return result
}

// negamax searches the subtree below pos. The score is always from the
// perspective of pos's side to move; draws are 0 and being mated scores
// -(MaxScore - ply) so that nearer mates dominate.
func (s *searchContext) negamax(pos *heronmg.Position, depth, ply int, alpha, beta int32, pv *PVLine) int32 {
	s.nodes++

	if s.shouldStop() {
		return 0
	}

	// Terminal classification, in the fixed order: mate/stalemate first,
	// then the draw rules. The move list doubles as the children.
	moves := pos.GenerateLegalMoves()
	if len(moves) == 0 {
		if pos.InCheck(pos.SideToMove()) {
			return -(MaxScore - int32(ply))
		}
		return DrawScore
	}
	if pos.HalfmoveClock() >= 100 || s.rep[pos.Hash()] >= 3 || pos.InsufficientMaterial() {
		return DrawScore
	}

	if depth <= 0 {
		return Evaluation(pos)
	}

	orderMoves(moves)

	best := -MaxScore
	var childPV PVLine
	for _, m := range moves {
		child := pos.Apply(m)
		s.push(child.Hash())
		childPV.Clear()
		score := -s.negamax(&child, depth-1, ply+1, -beta, -alpha, &childPV)
		s.pop(child.Hash())
		if s.stopped {
			return best
		}
		if score > best {
			best = score
		}
		if score > alpha {
			alpha = score
			pv.Update(m, childPV)
		}
		if beta <= alpha {
			break
		}
	}
	return best
}

// push and pop maintain the speculative repetition multiset around a
// recursion step.
func (s *searchContext) push(hash uint64) { s.rep[hash]++ }

func (s *searchContext) pop(hash uint64) {
	if c := s.rep[hash]; c <= 1 {
		delete(s.rep, hash)
	} else {
		s.rep[hash] = c - 1
	}
}

// scoreString formats a score for info output: centipawns normally, moves
// to mate when the score is in the mate band.
func scoreString(score int32) string {
	if score > Checkmate {
		return fmt.Sprintf("mate %d", (MaxScore-score+1)/2)
	}
	if score < -Checkmate {
		return fmt.Sprintf("mate -%d", (MaxScore+score+1)/2)
	}
	return fmt.Sprintf("cp %d", score)
}
