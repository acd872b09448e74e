package heronmg

// promotionTypes lists the four pieces a pawn may become, in the order the
// generator emits them.
var promotionTypes = [4]PieceType{
	PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight,
}

// GenerateLegalMoves enumerates every legal move for the side to move. It
// first collects pseudo-legal moves per piece and then filters out any move
// that would leave the mover's own king attacked. The order of the returned
// list is not part of the contract.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.generatePseudoMoves()
	legal := pseudo[:0]
	mover := p.sideToMove
	for _, m := range pseudo {
		child := p.Apply(m)
		if !child.InCheck(mover) {
			legal = append(legal, m)
		}
	}
	return legal
}

// generatePseudoMoves enumerates moves that obey piece movement rules but
// have not yet been checked against the own-king-in-check constraint.
func (p *Position) generatePseudoMoves() []Move {
	moves := make([]Move, 0, 64)
	for r := int8(1); r <= 8; r++ {
		for f := int8(1); f <= 8; f++ {
			pc := p.squares[r-1][f-1]
			if pc == NoPiece || pc.Color() != p.sideToMove {
				continue
			}
			from := Square{Rank: r, File: f}
			switch pc.Type() {
			case PieceTypePawn:
				moves = p.pawnMoves(moves, from, pc)
			case PieceTypeKnight:
				moves = p.offsetMoves(moves, from, pc, knightOffsets[:])
			case PieceTypeBishop:
				moves = p.slidingMoves(moves, from, pc, bishopDirections[:])
			case PieceTypeRook:
				moves = p.slidingMoves(moves, from, pc, rookDirections[:])
			case PieceTypeQueen:
				moves = p.slidingMoves(moves, from, pc, rookDirections[:])
				moves = p.slidingMoves(moves, from, pc, bishopDirections[:])
			case PieceTypeKing:
				moves = p.offsetMoves(moves, from, pc, kingOffsets[:])
				moves = p.castlingMoves(moves, from, pc)
			}
		}
	}
	return moves
}

// pawnMoves emits pushes, double pushes, diagonal captures, en passant and
// the four promotion variants for any move landing on the last rank.
func (p *Position) pawnMoves(moves []Move, from Square, pawn Piece) []Move {
	dir := int8(1)
	homeRank := int8(2)
	epRank := int8(5) // rank a white pawn must stand on to capture en passant
	if pawn.Color() == Black {
		dir = -1
		homeRank = 7
		epRank = 4
	}

	// Single push
	one := Square{Rank: from.Rank + dir, File: from.File}
	if one.Valid() && p.PieceAt(one) == NoPiece {
		moves = appendPawnMove(moves, Move{From: from, To: one, Piece: pawn})
		// Double push from the home rank through an empty square
		if from.Rank == homeRank {
			two := Square{Rank: from.Rank + 2*dir, File: from.File}
			if p.PieceAt(two) == NoPiece {
				moves = append(moves, Move{From: from, To: two, Piece: pawn})
			}
		}
	}

	// Diagonal captures
	for _, df := range [2]int8{-1, 1} {
		to := Square{Rank: from.Rank + dir, File: from.File + df}
		if !to.Valid() {
			continue
		}
		target := p.PieceAt(to)
		if target != NoPiece && target.Color() != pawn.Color() {
			moves = appendPawnMove(moves, Move{From: from, To: to, Piece: pawn, Captured: target})
		}
		// En passant: the destination is the recorded target square, which
		// is empty; the captured pawn sits beside the capturer.
		if target == NoPiece && p.epValid && to == p.epTarget && from.Rank == epRank {
			captured := PieceFromType(pawn.Color().Opponent(), PieceTypePawn)
			moves = append(moves, Move{From: from, To: to, Piece: pawn, Captured: captured})
		}
	}
	return moves
}

// appendPawnMove fans a pawn move out into four promotion variants when it
// lands on the last rank, and appends it unchanged otherwise.
func appendPawnMove(moves []Move, m Move) []Move {
	lastRank := int8(8)
	if m.Piece.Color() == Black {
		lastRank = 1
	}
	if m.To.Rank != lastRank {
		return append(moves, m)
	}
	for _, pt := range promotionTypes {
		m.Promotion = PieceFromType(m.Piece.Color(), pt)
		moves = append(moves, m)
	}
	return moves
}

// offsetMoves handles the fixed-offset pieces (knight and king).
func (p *Position) offsetMoves(moves []Move, from Square, pc Piece, offsets [][2]int8) []Move {
	for _, off := range offsets {
		to := Square{Rank: from.Rank + off[0], File: from.File + off[1]}
		if !to.Valid() {
			continue
		}
		target := p.PieceAt(to)
		if target != NoPiece && target.Color() == pc.Color() {
			continue
		}
		moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: target})
	}
	return moves
}

// slidingMoves walks each direction until blocked, including the blocking
// square when it holds an opponent piece.
func (p *Position) slidingMoves(moves []Move, from Square, pc Piece, dirs [][2]int8) []Move {
	for _, dir := range dirs {
		to := Square{Rank: from.Rank + dir[0], File: from.File + dir[1]}
		for to.Valid() {
			target := p.PieceAt(to)
			if target == NoPiece {
				moves = append(moves, Move{From: from, To: to, Piece: pc})
			} else {
				if target.Color() != pc.Color() {
					moves = append(moves, Move{From: from, To: to, Piece: pc, Captured: target})
				}
				break
			}
			to = Square{Rank: to.Rank + dir[0], File: to.File + dir[1]}
		}
	}
	return moves
}

// castlingMoves emits the king's castle legs when the matching right is
// set, the squares between king and rook are empty, and neither the king's
// square nor any square it crosses is attacked.
func (p *Position) castlingMoves(moves []Move, from Square, king Piece) []Move {
	us := king.Color()
	homeRank := int8(1)
	kingside := CastlingWhiteK
	queenside := CastlingWhiteQ
	if us == Black {
		homeRank = 8
		kingside = CastlingBlackK
		queenside = CastlingBlackQ
	}
	if from.Rank != homeRank || from.File != 5 {
		return moves
	}
	them := us.Opponent()
	rook := PieceFromType(us, PieceTypeRook)

	if p.castlingRights&kingside != 0 &&
		p.PieceAt(Square{Rank: homeRank, File: 8}) == rook &&
		p.PieceAt(Square{Rank: homeRank, File: 6}) == NoPiece &&
		p.PieceAt(Square{Rank: homeRank, File: 7}) == NoPiece &&
		!p.IsSquareAttacked(from, them) &&
		!p.IsSquareAttacked(Square{Rank: homeRank, File: 6}, them) &&
		!p.IsSquareAttacked(Square{Rank: homeRank, File: 7}, them) {
		moves = append(moves, Move{From: from, To: Square{Rank: homeRank, File: 7}, Piece: king})
	}

	if p.castlingRights&queenside != 0 &&
		p.PieceAt(Square{Rank: homeRank, File: 1}) == rook &&
		p.PieceAt(Square{Rank: homeRank, File: 4}) == NoPiece &&
		p.PieceAt(Square{Rank: homeRank, File: 3}) == NoPiece &&
		p.PieceAt(Square{Rank: homeRank, File: 2}) == NoPiece &&
		!p.IsSquareAttacked(from, them) &&
		!p.IsSquareAttacked(Square{Rank: homeRank, File: 4}, them) &&
		!p.IsSquareAttacked(Square{Rank: homeRank, File: 3}, them) {
		moves = append(moves, Move{From: from, To: Square{Rank: homeRank, File: 3}, Piece: king})
	}

	return moves
}
