package heronmg

import "errors"

// Move describes an executed or proposed action: where the piece comes
// from, where it lands, what is moving, what (if anything) it captures,
// and the promotion piece for pawn moves reaching the last rank. Moves are
// never mutated after construction.
type Move struct {
	From      Square
	To        Square
	Piece     Piece
	Captured  Piece // NoPiece when the move is quiet
	Promotion Piece // NoPiece when the move is not a promotion
}

// PromotionType returns the colorless type of the promoted piece
// (or PieceTypeNone).
func (m Move) PromotionType() PieceType { return m.Promotion.Type() }

// IsCapture reports whether the move takes a piece (including en passant).
func (m Move) IsCapture() bool { return m.Captured != NoPiece }

// String produces the long algebraic representation of the move
// (e.g. "e2e4", "e7e8q").
func (m Move) String() string {
	buf := []byte{
		'a' + byte(m.From.File-1), '0' + byte(m.From.Rank),
		'a' + byte(m.To.File-1), '0' + byte(m.To.Rank),
	}
	if m.Promotion != NoPiece {
		switch m.Promotion.Type() {
		case PieceTypeQueen:
			buf = append(buf, 'q')
		case PieceTypeRook:
			buf = append(buf, 'r')
		case PieceTypeBishop:
			buf = append(buf, 'b')
		case PieceTypeKnight:
			buf = append(buf, 'n')
		}
	}
	return string(buf)
}

var errBadMove = errors.New("invalid long algebraic move")

// ParseMove decodes a 4- or 5-character long algebraic string into source
// and destination squares plus the requested promotion type. The moving and
// captured pieces are unknown without a position; callers resolve the
// parsed coordinates against a legal move list.
func ParseMove(s string) (from, to Square, promo PieceType, err error) {
	if len(s) != 4 && len(s) != 5 {
		return NoSquare, NoSquare, PieceTypeNone, errBadMove
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' ||
		s[2] < 'a' || s[2] > 'h' || s[3] < '1' || s[3] > '8' {
		return NoSquare, NoSquare, PieceTypeNone, errBadMove
	}
	from = Square{Rank: int8(s[1] - '0'), File: int8(s[0] - 'a' + 1)}
	to = Square{Rank: int8(s[3] - '0'), File: int8(s[2] - 'a' + 1)}
	if len(s) == 5 {
		switch s[4] {
		case 'q':
			promo = PieceTypeQueen
		case 'r':
			promo = PieceTypeRook
		case 'b':
			promo = PieceTypeBishop
		case 'n':
			promo = PieceTypeKnight
		default:
			return NoSquare, NoSquare, PieceTypeNone, errBadMove
		}
	}
	return from, to, promo, nil
}
