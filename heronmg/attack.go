package heronmg

// Offsets used by the attack scans and move generation. Each entry is a
// (rank, file) delta.
var knightOffsets = [8][2]int8{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int8{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

var rookDirections = [4][2]int8{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

var bishopDirections = [4][2]int8{
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// IsSquareAttacked reports whether the given square is attacked by any
// piece of the attacker color. The scan casts rays and jumps outward from
// the target square, so it never walks the whole board.
func (p *Position) IsSquareAttacked(sq Square, attacker Color) bool {
	// Knight jumps
	knight := PieceFromType(attacker, PieceTypeKnight)
	for _, off := range knightOffsets {
		t := Square{Rank: sq.Rank + off[0], File: sq.File + off[1]}
		if t.Valid() && p.PieceAt(t) == knight {
			return true
		}
	}

	// Rook/queen rays along ranks and files: stop at the first occupied
	// square in each direction.
	rook := PieceFromType(attacker, PieceTypeRook)
	queen := PieceFromType(attacker, PieceTypeQueen)
	for _, dir := range rookDirections {
		if first := p.firstPieceAlong(sq, dir); first == rook || first == queen {
			return true
		}
	}

	// Bishop/queen rays along diagonals
	bishop := PieceFromType(attacker, PieceTypeBishop)
	for _, dir := range bishopDirections {
		if first := p.firstPieceAlong(sq, dir); first == bishop || first == queen {
			return true
		}
	}

	// Pawns attack diagonally toward their advance direction, so the
	// attacking pawn sits one rank behind the target from the attacker's
	// point of view.
	pawn := PieceFromType(attacker, PieceTypePawn)
	pawnRank := sq.Rank - 1
	if attacker == Black {
		pawnRank = sq.Rank + 1
	}
	for _, df := range [2]int8{-1, 1} {
		t := Square{Rank: pawnRank, File: sq.File + df}
		if t.Valid() && p.PieceAt(t) == pawn {
			return true
		}
	}

	// Enemy king on an adjacent square
	king := PieceFromType(attacker, PieceTypeKing)
	for _, off := range kingOffsets {
		t := Square{Rank: sq.Rank + off[0], File: sq.File + off[1]}
		if t.Valid() && p.PieceAt(t) == king {
			return true
		}
	}

	return false
}

// firstPieceAlong walks from sq in the given direction and returns the
// first piece encountered, or NoPiece if the ray leaves the board empty.
func (p *Position) firstPieceAlong(sq Square, dir [2]int8) Piece {
	t := Square{Rank: sq.Rank + dir[0], File: sq.File + dir[1]}
	for t.Valid() {
		if pc := p.PieceAt(t); pc != NoPiece {
			return pc
		}
		t.Rank += dir[0]
		t.File += dir[1]
	}
	return NoPiece
}
