package heronmg_test

import (
	"testing"

	"heron-engine/heronmg"
)

func moveStrings(moves []heronmg.Move) map[string]bool {
	set := make(map[string]bool, len(moves))
	for _, m := range moves {
		set[m.String()] = true
	}
	return set
}

func TestStartPositionHasTwentyMoves(t *testing.T) {
	pos, err := heronmg.ParseFEN(heronmg.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := pos.GenerateLegalMoves()
	if len(moves) != 20 {
		t.Fatalf("expected 20 legal moves from the start position, got %d", len(moves))
	}
}

func TestLegalMovesNeverLeaveKingInCheck(t *testing.T) {
	fens := []string{
		heronmg.FENStartPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBN1 w Qkq - 1 3", // White in check
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 b - - 0 1",
	}
	for _, fen := range fens {
		pos, err := heronmg.ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q) failed: %v", fen, err)
		}
		mover := pos.SideToMove()
		for _, m := range pos.GenerateLegalMoves() {
			child := pos.Apply(m)
			if child.InCheck(mover) {
				t.Fatalf("move %s from %q leaves the mover's king attacked", m, fen)
			}
		}
	}
}

func TestCastlingBlockedByAttack(t *testing.T) {
	// Black rook on f2 attacks f1 but not the king: kingside castling must
	// be gone while queenside stays legal.
	pos, err := heronmg.ParseFEN("r3k2r/8/8/8/8/8/5r2/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := moveStrings(pos.GenerateLegalMoves())
	if moves["e1g1"] {
		t.Fatalf("kingside castle e1g1 generated although f1 is attacked")
	}
	if !moves["e1c1"] {
		t.Fatalf("queenside castle e1c1 missing from legal moves")
	}
}

func TestCastlingThroughOccupiedSquares(t *testing.T) {
	// Bishops still on f1/c8: neither side may castle kingside/queenside
	// through them.
	pos, err := heronmg.ParseFEN("r1b1k2r/8/8/8/8/8/8/R3KB1R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := moveStrings(pos.GenerateLegalMoves())
	if moves["e1g1"] {
		t.Fatalf("kingside castle generated through an occupied f1")
	}
	if !moves["e1c1"] {
		t.Fatalf("queenside castle should be available")
	}
}

func TestPromotionVariantsGenerated(t *testing.T) {
	pos, err := heronmg.ParseFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	moves := moveStrings(pos.GenerateLegalMoves())
	for _, want := range []string{"a7a8q", "a7a8r", "a7a8b", "a7a8n"} {
		if !moves[want] {
			t.Fatalf("promotion variant %s missing from legal moves", want)
		}
	}
	if moves["a7a8"] {
		t.Fatalf("bare promotion push a7a8 must not be generated without a piece letter")
	}
}

func TestEnPassantGenerated(t *testing.T) {
	// From start: e2e4 a7a6 e4e5 d7d5 leaves White the e5d6 capture.
	pos, err := heronmg.ParseFEN(heronmg.FENStartPos)
	if err != nil {
		t.Fatalf("ParseFEN failed: %v", err)
	}
	for _, ms := range []string{"e2e4", "a7a6", "e4e5", "d7d5"} {
		m, ok := findMove(pos, ms)
		if !ok {
			t.Fatalf("move %s not found in legal moves", ms)
		}
		pos = pos.Apply(m)
	}
	moves := moveStrings(pos.GenerateLegalMoves())
	if !moves["e5d6"] {
		t.Fatalf("en passant capture e5d6 missing from legal moves")
	}
}

// findMove resolves a long algebraic string against the position's legal
// move list, the same way the engine's position handler does.
func findMove(pos heronmg.Position, s string) (heronmg.Move, bool) {
	for _, m := range pos.GenerateLegalMoves() {
		if m.String() == s {
			return m, true
		}
	}
	return heronmg.Move{}, false
}
