package engine

import "heron-engine/heronmg"

// Piece values in centipawns. The king carries a large sentinel; with both
// kings always on the board it cancels out of the material difference.
var pieceValue = [7]int32{
	heronmg.PieceTypePawn:   100,
	heronmg.PieceTypeKnight: 300,
	heronmg.PieceTypeBishop: 300,
	heronmg.PieceTypeRook:   500,
	heronmg.PieceTypeQueen:  900,
	heronmg.PieceTypeKing:   20000,
}

// Evaluation scores the position in centipawns from the perspective of the
// side to move: material plus piece-square bonuses, white minus black,
// negated when Black is to play. Terminal positions are scored by the
// search, not here.
func Evaluation(pos *heronmg.Position) int32 {
	var score int32
	for r := int8(1); r <= 8; r++ {
		for f := int8(1); f <= 8; f++ {
			sq := heronmg.Square{Rank: r, File: f}
			pc := pos.PieceAt(sq)
			if pc == heronmg.NoPiece {
				continue
			}
			if pc.IsWhite() {
				score += pieceValue[pc.Type()]
			} else {
				score -= pieceValue[pc.Type()]
			}
			score += pstValue(pc, sq)
		}
	}
	if pos.SideToMove() == heronmg.Black {
		return -score
	}
	return score
}
