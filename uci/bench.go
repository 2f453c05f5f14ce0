package uci

import (
	"strconv"
	"time"

	"golang.org/x/exp/slices"

	"gander-engine/board"
	"gander-engine/engine"
)

// Positions exercised by "bench": startpos plus a spread of middlegame
// and endgame positions, the same set the perft tests lean on.
var benchFENs = []string{
	board.StartposFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
}

// perft implements the "perft <depth>" command: per-move leaf counts on
// the current position, sorted by coordinate notation.
func (p *Protocol) perft(args []string) {
	if !p.requireIdle() {
		return
	}
	depth := 4
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
			depth = d
		}
	}

	start := time.Now()
	div := p.board.PerftDivide(depth)
	elapsed := time.Since(start)

	type rootCount struct {
		move  string
		nodes uint64
	}
	counts := make([]rootCount, 0, len(div))
	var total uint64
	for m, n := range div {
		counts = append(counts, rootCount{MoveToUCI(m, p.board.Chess960), n})
		total += n
	}
	slices.SortFunc(counts, func(a, b rootCount) bool {
		return a.move < b.move
	})

	for _, rc := range counts {
		p.printf("%s: %d\n", rc.move, rc.nodes)
	}
	p.printf("\nNodes searched: %d\nTime (ms): %d\n", total, elapsed.Milliseconds())
}

// bench runs a fixed-depth search over the benchmark positions and
// reports aggregate node counts, for quick strength/speed comparisons
// between builds.
func (p *Protocol) bench(args []string) {
	if !p.requireIdle() {
		return
	}
	depth := 8
	if len(args) > 0 {
		if d, err := strconv.Atoi(args[0]); err == nil && d > 0 {
			depth = d
		}
	}

	var totalNodes uint64
	start := time.Now()
	for i, fen := range benchFENs {
		b, err := board.ParseFEN(fen)
		if err != nil {
			continue
		}
		p.printf("\nPosition: %d/%d (%s)\n", i+1, len(benchFENs), fen)

		p.searcher.NewGame()
		p.searcher.Arm(false)
		result := p.searcher.Search(b, engine.Limits{Depth: depth}, nil, 0)
		totalNodes += p.searcher.Nodes()
		p.printf("bestmove %s\n", MoveToUCI(result.Best, b.Chess960))
	}
	elapsed := time.Since(start)

	p.printf("\n===========================\n")
	p.printf("Total time (ms) : %d\n", elapsed.Milliseconds())
	p.printf("Nodes searched  : %d\n", totalNodes)
	p.printf("Nodes/second    : %d\n", totalNodes*1000/uint64(elapsed.Milliseconds()+1))
}
