package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"heron-engine/heronmg"
)

// Standalone perft runner for debugging the move generator against
// reference counts. -divide prints the per-root-move breakdown.
func main() {
	fen := flag.String("fen", heronmg.FENStartPos, "position to count from")
	depth := flag.Int("depth", 5, "perft depth")
	divide := flag.Bool("divide", false, "print per-root-move subtotals")
	flag.Parse()

	pos, err := heronmg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad fen:", err)
		os.Exit(1)
	}

	start := time.Now()
	if *divide {
		var total uint64
		for _, entry := range heronmg.Divide(pos, *depth) {
			fmt.Printf("%s: %d\n", entry.Move, entry.Nodes)
			total += entry.Nodes
		}
		fmt.Printf("total: %d (%s)\n", total, time.Since(start))
		return
	}
	nodes := heronmg.Perft(pos, *depth)
	fmt.Printf("perft(%d) = %d (%s)\n", *depth, nodes, time.Since(start))
}
