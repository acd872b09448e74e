package heronmg

// Apply derives the successor position for a move that is assumed legal.
// The receiver is taken by value, so the caller's position is untouched;
// the zobrist key is maintained incrementally and always matches
// ComputeZobrist on the result.
func (p Position) Apply(m Move) Position {
	// XOR out the state features that may change; they are XORed back in
	// with their new values at the end.
	p.zobristKey ^= zobristCastle[int(p.castlingRights)]
	if p.epValid {
		p.zobristKey ^= zobristEnPassant[int(p.epTarget.File-1)]
	}

	mover := p.sideToMove
	moved := p.removePiece(m.From)
	captured := p.removePiece(m.To)

	// En passant capture: a pawn landing on the en passant target square
	// while that square is empty also removes the pawn it passed.
	isEnPassant := moved.Type() == PieceTypePawn &&
		p.epValid && m.To == p.epTarget && captured == NoPiece && m.From.File != m.To.File
	if isEnPassant {
		captured = p.removePiece(Square{Rank: m.From.Rank, File: m.To.File})
	}

	// Promotion replaces the pawn on arrival.
	if m.Promotion != NoPiece {
		p.putPiece(m.To, m.Promotion)
	} else {
		p.putPiece(m.To, moved)
	}

	// Castling: the king moves two files from its home square and drags
	// the rook across. Kingside rook h->f, queenside rook a->d.
	if moved.Type() == PieceTypeKing && abs8(m.To.File-m.From.File) == 2 {
		rook := PieceFromType(mover, PieceTypeRook)
		if m.To.File == 7 {
			p.removePiece(Square{Rank: m.From.Rank, File: 8})
			p.putPiece(Square{Rank: m.From.Rank, File: 6}, rook)
		} else {
			p.removePiece(Square{Rank: m.From.Rank, File: 1})
			p.putPiece(Square{Rank: m.From.Rank, File: 4}, rook)
		}
	}

	// Castling rights: a king move clears both of the mover's rights, a
	// rook leaving (or being captured on) its home square clears that one.
	if moved.Type() == PieceTypeKing {
		if mover == White {
			p.castlingRights &^= CastlingWhiteK | CastlingWhiteQ
		} else {
			p.castlingRights &^= CastlingBlackK | CastlingBlackQ
		}
	}
	for _, sq := range [2]Square{m.From, m.To} {
		switch sq {
		case Square{Rank: 1, File: 1}:
			p.castlingRights &^= CastlingWhiteQ
		case Square{Rank: 1, File: 8}:
			p.castlingRights &^= CastlingWhiteK
		case Square{Rank: 8, File: 1}:
			p.castlingRights &^= CastlingBlackQ
		case Square{Rank: 8, File: 8}:
			p.castlingRights &^= CastlingBlackK
		}
	}

	// En passant target: set only on a two-square pawn push, to the square
	// the pawn skipped.
	p.epValid = false
	p.epTarget = NoSquare
	if moved.Type() == PieceTypePawn && abs8(m.To.Rank-m.From.Rank) == 2 {
		p.epValid = true
		p.epTarget = Square{Rank: (m.From.Rank + m.To.Rank) / 2, File: m.From.File}
	}

	// Halfmove clock resets on pawn moves and captures.
	if moved.Type() == PieceTypePawn || captured != NoPiece {
		p.halfmoveClock = 0
	} else {
		p.halfmoveClock++
	}

	if mover == Black {
		p.fullmoveNumber++
	}
	p.sideToMove = mover.Opponent()

	p.zobristKey ^= zobristSide
	p.zobristKey ^= zobristCastle[int(p.castlingRights)]
	if p.epValid {
		p.zobristKey ^= zobristEnPassant[int(p.epTarget.File-1)]
	}

	return p
}

func abs8(x int8) int8 {
	if x < 0 {
		return -x
	}
	return x
}
