package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartposFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
		"4k3/8/8/8/8/8/8/R3K2R w KQ - 12 40",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Errorf("FEN round trip: got %q want %q", got, fen)
		}
		if b.key != b.computeKey() {
			t.Errorf("key mismatch after parse of %q", fen)
		}
	}
}

func TestParseFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",   // 7 ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"8/8/8/8/8/8/8/8 w - - 0 1", // no kings
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error", fen)
		}
	}
}

func TestShredderCastlingField(t *testing.T) {
	// Same position, conventional and Shredder castling letters.
	conv, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	shred, err := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w HAha - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	for right := WhiteOO; right <= BlackOOO; right++ {
		if conv.castleRooks[right] != shred.castleRooks[right] {
			t.Errorf("right %d: conventional %v, shredder %v",
				right, conv.castleRooks[right], shred.castleRooks[right])
		}
	}
	if conv.Key() != shred.Key() {
		t.Errorf("keys differ between castling notations")
	}
}

func TestFlipTwiceRestores(t *testing.T) {
	fens := []string{
		StartposFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		b.Flip()
		if b.FEN() == fen {
			t.Errorf("Flip left %q unchanged", fen)
		}
		if b.SideToMove() != Black {
			t.Errorf("Flip of a white-to-move position must be black to move")
		}
		b.Flip()
		if got := b.FEN(); got != fen {
			t.Errorf("double Flip: got %q want %q", got, fen)
		}
	}
}
