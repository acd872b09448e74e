package engine

import (
	"golang.org/x/exp/slices"

	"heron-engine/heronmg"
)

// orderMoves sorts captures to the front, most valuable victim first and
// least valuable attacker breaking ties. Ordering only speeds up the
// alpha-beta cutoffs; the chosen move must not depend on it.
func orderMoves(moves []heronmg.Move) {
	slices.SortStableFunc(moves, func(a, b heronmg.Move) bool {
		return moveOrderScore(a) > moveOrderScore(b)
	})
}

func moveOrderScore(m heronmg.Move) int32 {
	var score int32
	if m.Captured != heronmg.NoPiece {
		// The offset keeps every capture ahead of every quiet move, a queen
		// promotion included. The king's sentinel value is capped at the
		// queen's so king captures still sort by their victim.
		attacker := pieceValue[m.Piece.Type()]
		if attacker > pieceValue[heronmg.PieceTypeQueen] {
			attacker = pieceValue[heronmg.PieceTypeQueen]
		}
		score = 2000 + 8*pieceValue[m.Captured.Type()] - attacker
	}
	if m.Promotion != heronmg.NoPiece {
		score += pieceValue[m.Promotion.Type()]
	}
	return score
}
