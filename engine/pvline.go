package engine

import (
	"strings"

	"heron-engine/heronmg"
)

// PVLine collects the principal variation while the search unwinds.
type PVLine struct {
	Moves []heronmg.Move
}

// Clear removes all moves.
func (pv *PVLine) Clear() { pv.Moves = pv.Moves[:0] }

// Update sets the line to the given move followed by the child line.
func (pv *PVLine) Update(move heronmg.Move, child PVLine) {
	pv.Moves = append(pv.Moves[:0], move)
	pv.Moves = append(pv.Moves, child.Moves...)
}

// Clone returns an independent copy of the line.
func (pv PVLine) Clone() PVLine {
	c := PVLine{Moves: make([]heronmg.Move, len(pv.Moves))}
	copy(c.Moves, pv.Moves)
	return c
}

// BestMove returns the first move of the line, or false when empty.
func (pv PVLine) BestMove() (heronmg.Move, bool) {
	if len(pv.Moves) == 0 {
		return heronmg.Move{}, false
	}
	return pv.Moves[0], true
}

// PonderMove returns the reply the line expects, when it is deep enough.
func (pv PVLine) PonderMove() (heronmg.Move, bool) {
	if len(pv.Moves) < 2 {
		return heronmg.Move{}, false
	}
	return pv.Moves[1], true
}

// String joins the line into the space-separated form used in info output.
func (pv PVLine) String() string {
	parts := make([]string, len(pv.Moves))
	for i, m := range pv.Moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
