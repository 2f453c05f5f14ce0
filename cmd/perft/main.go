package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"

	"gander-engine/board"
	"gander-engine/uci"
)

func main() {
	fen := flag.String("fen", board.StartposFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	check := flag.Bool("check", false, "Cross-check node counts against dragontoothmg")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate timing")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b, err := board.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := b.PerftDivide(*depth)
		type kv struct {
			move  string
			nodes uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{uci.MoveToUCI(m, b.Chess960), n})
			sum += n
		}
		slices.SortFunc(arr, func(a, b kv) bool {
			return a.move < b.move
		})
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.move, x.nodes)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += b.Perft(*depth)
	}
	elapsed := time.Since(start)
	secs := elapsed.Seconds()
	nps := float64(totalNodes) / secs
	fmt.Printf("perft(%d) = %d  time %.3fs  nps %.0f\n", *depth, totalNodes/uint64(*repeat), secs, nps)

	if *check {
		ref := dragontoothmg.ParseFen(*fen)
		want := refPerft(&ref, *depth)
		got := totalNodes / uint64(*repeat)
		if got != want {
			fmt.Fprintf(os.Stderr, "MISMATCH: got %d, dragontoothmg says %d\n", got, want)
			os.Exit(1)
		}
		fmt.Printf("cross-check ok (%d nodes)\n", want)
	}
}

// refPerft walks the reference generator's move tree.
func refPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += refPerft(b, depth-1)
		undo()
	}
	return nodes
}
