package heronmg

// Status classifies a position as ongoing or as one of the five terminal
// outcomes.
type Status uint8

const (
	StatusOngoing Status = iota
	StatusCheckmate
	StatusStalemate
	StatusFiftyMove
	StatusThreefold
	StatusInsufficientMaterial
)

func (s Status) String() string {
	switch s {
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusFiftyMove:
		return "fifty-move draw"
	case StatusThreefold:
		return "threefold repetition"
	case StatusInsufficientMaterial:
		return "insufficient material"
	default:
		return "ongoing"
	}
}

// IsDraw reports whether the status is one of the four draw outcomes.
func (s Status) IsDraw() bool {
	return s == StatusStalemate || s == StatusFiftyMove ||
		s == StatusThreefold || s == StatusInsufficientMaterial
}

// Classify determines the game outcome for the position. repetitions is the
// number of times the position's hash occurs in the game history (the
// repetition multiset count, including this occurrence). The checks run in
// a fixed order and the first match wins: checkmate, stalemate, fifty-move,
// threefold, insufficient material.
func (p *Position) Classify(repetitions int) Status {
	if !p.HasLegalMoves() {
		if p.InCheck(p.sideToMove) {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if p.halfmoveClock >= 100 {
		return StatusFiftyMove
	}
	if repetitions >= 3 {
		return StatusThreefold
	}
	if p.InsufficientMaterial() {
		return StatusInsufficientMaterial
	}
	return StatusOngoing
}

// InsufficientMaterial reports the dead positions the rules recognize:
// king vs king, king vs king+minor, and same-colored-bishop endings with
// exactly one bishop per side. Any queen, rook or pawn on the board rules
// it out.
func (p *Position) InsufficientMaterial() bool {
	var knights, bishops [2]int
	var bishopParity [2]int8
	var minors [2]int
	for r := int8(1); r <= 8; r++ {
		for f := int8(1); f <= 8; f++ {
			pc := p.squares[r-1][f-1]
			switch pc.Type() {
			case PieceTypeNone, PieceTypeKing:
				continue
			case PieceTypeQueen, PieceTypeRook, PieceTypePawn:
				return false
			case PieceTypeKnight:
				knights[pc.Color()]++
				minors[pc.Color()]++
			case PieceTypeBishop:
				bishops[pc.Color()]++
				minors[pc.Color()]++
				bishopParity[pc.Color()] = (r + f) % 2
			}
		}
	}

	totalMinors := minors[White] + minors[Black]
	if totalMinors == 0 {
		return true // bare kings
	}
	if totalMinors == 1 {
		return true // king vs king + one knight or one bishop
	}
	// Both sides exactly one bishop, standing on same-colored squares.
	if bishops[White] == 1 && bishops[Black] == 1 &&
		knights[White] == 0 && knights[Black] == 0 &&
		bishopParity[White] == bishopParity[Black] {
		return true
	}
	return false
}
