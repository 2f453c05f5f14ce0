package board

import (
	"math/bits"
	"math/rand"
)

// Zobrist tables for pieces, castling rights, en passant file and side
// to move.
var zobristPiece [15][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func init() {
	// Fixed seed so keys are reproducible across runs and in tests.
	rnd := rand.New(rand.NewSource(0x9A4DE7))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeKey rebuilds the position key from scratch. MakeMove keeps the
// key incrementally; this exists to cross-check it in tests and after
// ParseFEN.
func (b *Board) computeKey() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castleMask()]
	if b.epSquare != NoSquare {
		key ^= zobristEnPassant[b.epSquare.File()]
	}
	return key
}

// MaterialKey hashes the piece counts only: two positions with the same
// material have the same material key regardless of piece placement.
func (b *Board) MaterialKey() uint64 {
	var key uint64
	for p := WhitePawn; p <= BlackKing; p++ {
		if p.Type() == PieceTypeNone || int(p) == 7 || int(p) == 8 {
			continue
		}
		n := bits.OnesCount64(b.byColor[p.Color()] & b.byType[p.Type()])
		for i := 0; i < n; i++ {
			key ^= zobristPiece[p][i]
		}
	}
	return key
}

// PawnKey hashes the pawn placement only.
func (b *Board) PawnKey() uint64 {
	var key uint64
	for _, c := range []Color{White, Black} {
		pawns := b.Pieces(c, Pawn)
		for pawns != 0 {
			sq := Square(bits.TrailingZeros64(pawns))
			pawns &= pawns - 1
			key ^= zobristPiece[PieceFromType(c, Pawn)][sq]
		}
	}
	return key
}
