package heronmg_test

import (
	"testing"

	"heron-engine/heronmg"
)

func BenchmarkGenerateLegalMoves(b *testing.B) {
	pos, err := heronmg.ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		b.Fatalf("ParseFEN failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if len(pos.GenerateLegalMoves()) == 0 {
			b.Fatal("no moves generated")
		}
	}
}

func BenchmarkApply(b *testing.B) {
	pos, err := heronmg.ParseFEN(heronmg.FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN failed: %v", err)
	}
	m, ok := findMove(pos, "e2e4")
	if !ok {
		b.Fatal("e2e4 not found")
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pos.Apply(m)
	}
}

func BenchmarkPerft3(b *testing.B) {
	pos, err := heronmg.ParseFEN(heronmg.FENStartPos)
	if err != nil {
		b.Fatalf("ParseFEN failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if heronmg.Perft(pos, 3) != 8902 {
			b.Fatal("wrong perft count")
		}
	}
}
