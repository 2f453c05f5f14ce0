package engine

import (
	"strings"
	"testing"

	"gander-engine/board"
)

func TestEvaluateStartposBalanced(t *testing.T) {
	b := mustParse(t, board.StartposFEN)
	if got := Evaluate(b); got != 0 {
		t.Errorf("startpos evaluates to %d, want 0", got)
	}
}

// A vertically mirrored position with colors swapped is the same
// position from the other side's point of view, so the side-to-move
// relative score must be identical.
func TestEvaluateFlipSymmetry(t *testing.T) {
	fens := []string{
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p3/2B1P3/2NP1N2/PPP1QPPP/R4RK1 w - - 0 10",
	}
	for _, fen := range fens {
		b := mustParse(t, fen)
		before := Evaluate(b)
		b.Flip()
		if after := Evaluate(b); after != before {
			t.Errorf("flip changed the relative score on %s: %d vs %d", fen, before, after)
		}
	}
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is a queen up; the score from white's view must be clearly
	// positive and from black's view clearly negative.
	up := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1")
	if got := Evaluate(up); got < PieceValueEG[board.Queen]/2 {
		t.Errorf("queen-up score = %d, too low", got)
	}
	down := mustParse(t, "4k3/8/8/8/8/8/8/Q3K3 b - - 0 1")
	if got := Evaluate(down); got > -PieceValueEG[board.Queen]/2 {
		t.Errorf("queen-down score = %d, not negative enough", got)
	}
}

func TestTraceEvalLayout(t *testing.T) {
	out := TraceEval(mustParse(t, board.StartposFEN))
	for _, want := range []string{"Material", "PST", "Mobility", "Total: "} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
	if !strings.HasSuffix(out, "(white side)") {
		t.Errorf("trace total must be labeled white side:\n%s", out)
	}
}
