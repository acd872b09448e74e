package heronmg

// Piece constants and types for pieces and colors
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece type | 8) so that
	// - piece & 7 gives the type in [1..6]
	// - piece & 8 != 0 indicates Black
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless representation of a chess piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece (ignores side).
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece defaults to White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsWhite reports whether the piece belongs to White. NoPiece is neither side.
func (p Piece) IsWhite() bool { return p != NoPiece && p&8 == 0 }

// IsBlack reports whether the piece belongs to Black.
func (p Piece) IsBlack() bool { return p&8 != 0 }

// PieceFromType combines a colorless type with a side to produce a concrete Piece.
func PieceFromType(color Color, pt PieceType) Piece {
	if pt == PieceTypeNone {
		return NoPiece
	}
	p := Piece(pt)
	if color == Black {
		p |= 8
	}
	return p
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opponent returns the other side.
func (c Color) Opponent() Color { return c ^ 1 }

// Castling rights bit flags
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ
)

// Square identifies a board coordinate. Rank 1 is White's back rank,
// file 1 is the a-file; both run 1..8.
type Square struct {
	Rank int8
	File int8
}

// NoSquare is the zero Square, outside the board.
var NoSquare = Square{}

// Valid reports whether the square lies on the board.
func (sq Square) Valid() bool {
	return sq.Rank >= 1 && sq.Rank <= 8 && sq.File >= 1 && sq.File <= 8
}

// index maps the square onto 0..63 for zobrist table lookups.
func (sq Square) index() int { return int(sq.Rank-1)*8 + int(sq.File-1) }

// String returns the algebraic coordinate, e.g. "e4".
func (sq Square) String() string {
	return string([]byte{'a' + byte(sq.File-1), '0' + byte(sq.Rank)})
}

// Position holds the full state needed to decide the legality of the next
// move: piece placement, side to move, castling rights, en passant target,
// halfmove clock, fullmove number and a cached Zobrist key. Positions are
// value types: Apply returns a successor and never touches the receiver's
// caller-visible copy.
type Position struct {
	// Piece placement, indexed [rank-1][file-1]
	squares [8][8]Piece

	// Side to move (which player's turn it is)
	sideToMove Color

	// Castling rights for both sides (bitmask using CastlingRights flags)
	castlingRights CastlingRights

	// En passant target square, valid only when epValid is set
	epTarget Square
	epValid  bool

	// Halfmove clock (number of half-moves since last capture or pawn advance, for 50-move rule)
	halfmoveClock int

	// Fullmove number (starts at 1, incremented after Black's move)
	fullmoveNumber int

	// Zobrist hash key for the current position (for move repetition and hashing)
	zobristKey uint64
}

// PieceAt returns the piece on a square.
func (p *Position) PieceAt(sq Square) Piece { return p.squares[sq.Rank-1][sq.File-1] }

// SideToMove reports which side is to play.
func (p *Position) SideToMove() Color { return p.sideToMove }

// CastlingRights returns the current castling rights mask.
func (p *Position) CastlingRights() CastlingRights { return p.castlingRights }

// EnPassantTarget returns the en passant target square and whether a
// two-square pawn push just occurred.
func (p *Position) EnPassantTarget() (Square, bool) { return p.epTarget, p.epValid }

// HalfmoveClock accessor for consumers that want read-only access.
func (p *Position) HalfmoveClock() int { return p.halfmoveClock }

// FullmoveNumber returns the full move counter (incremented after Black's move).
func (p *Position) FullmoveNumber() int { return p.fullmoveNumber }

// Hash returns the current Zobrist hash key.
func (p *Position) Hash() uint64 { return p.zobristKey }

// KingSquare returns the square of the given side's king, or NoSquare if
// the king is missing from the board.
func (p *Position) KingSquare(c Color) Square {
	king := PieceFromType(c, PieceTypeKing)
	for r := int8(1); r <= 8; r++ {
		for f := int8(1); f <= 8; f++ {
			if p.squares[r-1][f-1] == king {
				return Square{Rank: r, File: f}
			}
		}
	}
	return NoSquare
}

// InCheck reports whether the given side's king is attacked by the opponent.
func (p *Position) InCheck(c Color) bool {
	ksq := p.KingSquare(c)
	if !ksq.Valid() {
		return false
	}
	return p.IsSquareAttacked(ksq, c.Opponent())
}

// HasLegalMoves reports whether the side to move has any legal moves.
func (p *Position) HasLegalMoves() bool {
	return len(p.GenerateLegalMoves()) > 0
}

// putPiece places a piece on an empty square and updates the zobrist key.
func (p *Position) putPiece(sq Square, pc Piece) {
	if pc == NoPiece {
		return
	}
	p.squares[sq.Rank-1][sq.File-1] = pc
	p.zobristKey ^= zobristPiece[pc][sq.index()]
}

// removePiece removes a piece from a square and updates the zobrist key.
func (p *Position) removePiece(sq Square) Piece {
	pc := p.squares[sq.Rank-1][sq.File-1]
	if pc == NoPiece {
		return NoPiece
	}
	p.squares[sq.Rank-1][sq.File-1] = NoPiece
	p.zobristKey ^= zobristPiece[pc][sq.index()]
	return pc
}
