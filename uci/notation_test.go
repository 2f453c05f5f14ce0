package uci

import (
	"testing"

	"gander-engine/board"
)

func mustParse(t *testing.T, fen string) *board.Board {
	t.Helper()
	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestMoveToUCISentinels(t *testing.T) {
	if got := MoveToUCI(board.MoveNone, false); got != "(none)" {
		t.Errorf("MoveNone rendered as %q", got)
	}
	if got := MoveToUCI(board.MoveNull, false); got != "0000" {
		t.Errorf("MoveNull rendered as %q", got)
	}
}

func TestMoveRoundTrip(t *testing.T) {
	fens := []string{
		board.StartposFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	}
	for _, fen := range fens {
		for _, chess960 := range []bool{false, true} {
			b := mustParse(t, fen)
			b.Chess960 = chess960
			for _, m := range b.LegalMoves() {
				s := MoveToUCI(m, chess960)
				if got := MoveFromUCI(b, s); got != m {
					t.Errorf("round trip of %s (chess960=%v) on %s: got %v", s, chess960, fen, got)
				}
			}
		}
	}
}

func TestMoveFromUCIUppercasePromotion(t *testing.T) {
	b := mustParse(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	m := MoveFromUCI(b, "a7a8Q")
	if m == board.MoveNone || m.PromoType() != board.Queen {
		t.Errorf("a7a8Q did not decode to a queen promotion, got %v", m)
	}
}

func TestMoveFromUCIRejectsIllegal(t *testing.T) {
	b := mustParse(t, board.StartposFEN)
	for _, s := range []string{"e2e5", "a1a5", "zzz9", ""} {
		if m := MoveFromUCI(b, s); m != board.MoveNone {
			t.Errorf("MoveFromUCI(%q) = %v, want MoveNone", s, m)
		}
	}
}

func TestCastlingNotation(t *testing.T) {
	b := mustParse(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	var short, long board.Move
	for _, m := range b.LegalMoves() {
		if m.Kind() != board.Castle {
			continue
		}
		if m.To() > m.From() {
			short = m
		} else {
			long = m
		}
	}
	if short == board.MoveNone || long == board.MoveNone {
		t.Fatalf("castle moves missing from the legal move list")
	}

	if got := MoveToUCI(short, false); got != "e1g1" {
		t.Errorf("short castle standard notation %q, want e1g1", got)
	}
	if got := MoveToUCI(short, true); got != "e1h1" {
		t.Errorf("short castle chess960 notation %q, want e1h1", got)
	}
	if got := MoveToUCI(long, false); got != "e1c1" {
		t.Errorf("long castle standard notation %q, want e1c1", got)
	}
	if got := MoveToUCI(long, true); got != "e1a1" {
		t.Errorf("long castle chess960 notation %q, want e1a1", got)
	}

	if got := MoveToSAN(b, short); got != "O-O" {
		t.Errorf("short castle SAN %q, want O-O", got)
	}
	if got := MoveToSAN(b, long); got != "O-O-O" {
		t.Errorf("long castle SAN %q, want O-O-O", got)
	}
}

func TestSANDisambiguation(t *testing.T) {
	cases := []struct {
		fen  string
		move string
		want string
	}{
		// Rooks a1 and h1 both reach d1: file letter.
		{"4k3/8/8/8/8/4K3/8/R6R w - - 0 1", "a1d1", "Rad1"},
		// Rooks a1 and a5 both reach a3: rank digit.
		{"4k3/8/8/R7/8/8/8/R3K3 w - - 0 1", "a1a3", "R1a3"},
		// Queens e4, h4 and h1 all reach e1: full square.
		{"8/8/k7/8/4Q2Q/8/8/1K5Q w - - 0 1", "h4e1", "Qh4e1"},
		// Same position, mover shares no file with the others: file letter.
		{"8/8/k7/8/4Q2Q/8/8/1K5Q w - - 0 1", "e4e1", "Qee1"},
		// Lone candidate needs no hint.
		{board.StartposFEN, "g1f3", "Nf3"},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.fen)
		m := MoveFromUCI(b, tc.move)
		if m == board.MoveNone {
			t.Fatalf("%s is not legal on %s", tc.move, tc.fen)
		}
		if got := MoveToSAN(b, m); got != tc.want {
			t.Errorf("SAN of %s on %s: got %q want %q", tc.move, tc.fen, got, tc.want)
		}
	}
}

func TestSANCapturesPromotionsAndSuffixes(t *testing.T) {
	cases := []struct {
		fen  string
		move string
		want string
	}{
		// Pawn capture en passant keeps the plain capture form.
		{"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5d6", "exd6"},
		// Promotion with check.
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8q", "a8=Q+"},
		// Underpromotion, no check.
		{"4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7a8n", "a8=N"},
		// Rook check that can be answered.
		{"6k1/5pp1/8/8/8/8/8/4K2R w K - 0 1", "h1h8", "Rh8+"},
		// Back rank mate.
		{"6k1/5ppp/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8#"},
	}
	for _, tc := range cases {
		b := mustParse(t, tc.fen)
		m := MoveFromUCI(b, tc.move)
		if m == board.MoveNone {
			t.Fatalf("%s is not legal on %s", tc.move, tc.fen)
		}
		fenBefore := b.FEN()
		if got := MoveToSAN(b, m); got != tc.want {
			t.Errorf("SAN of %s on %s: got %q want %q", tc.move, tc.fen, got, tc.want)
		}
		if b.FEN() != fenBefore {
			t.Errorf("MoveToSAN mutated the position: %s -> %s", fenBefore, b.FEN())
		}
	}
}
