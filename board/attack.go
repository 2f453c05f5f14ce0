package board

import (
	"github.com/dylhunn/dragontoothmg"
)

// Precomputed attack masks for knights, kings and pawn captures.
// Slider attacks come from dragontoothmg's magic bitboard tables, the
// same helpers the rest of the engine uses for mobility and SEE.
var knightAttacks [64]uint64
var kingAttacks [64]uint64
var pawnAttacks [2][64]uint64

func init() {
	for sq := 0; sq < 64; sq++ {
		f, r := sq&7, sq>>3

		knightSteps := [8][2]int{
			{1, 2}, {2, 1}, {2, -1}, {1, -2},
			{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
		}
		for _, d := range knightSteps {
			if tf, tr := f+d[0], r+d[1]; tf >= 0 && tf < 8 && tr >= 0 && tr < 8 {
				knightAttacks[sq] |= bb(SquareOf(tf, tr))
			}
		}

		for df := -1; df <= 1; df++ {
			for dr := -1; dr <= 1; dr++ {
				if df == 0 && dr == 0 {
					continue
				}
				if tf, tr := f+df, r+dr; tf >= 0 && tf < 8 && tr >= 0 && tr < 8 {
					kingAttacks[sq] |= bb(SquareOf(tf, tr))
				}
			}
		}

		for _, df := range []int{-1, 1} {
			if tf := f + df; tf >= 0 && tf < 8 {
				if r < 7 {
					pawnAttacks[White][sq] |= bb(SquareOf(tf, r+1))
				}
				if r > 0 {
					pawnAttacks[Black][sq] |= bb(SquareOf(tf, r-1))
				}
			}
		}
	}
}

// rookAttacksFrom returns rook attacks from sq given the occupancy.
func rookAttacksFrom(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateRookMoveBitboard(uint8(sq), occ)
}

// bishopAttacksFrom returns bishop attacks from sq given the occupancy.
func bishopAttacksFrom(sq Square, occ uint64) uint64 {
	return dragontoothmg.CalculateBishopMoveBitboard(uint8(sq), occ)
}

// attacksFrom returns the squares a piece of the given type attacks
// from sq. Pawns are excluded; their attacks depend on color.
func attacksFrom(pt PieceType, sq Square, occ uint64) uint64 {
	switch pt {
	case Knight:
		return knightAttacks[sq]
	case Bishop:
		return bishopAttacksFrom(sq, occ)
	case Rook:
		return rookAttacksFrom(sq, occ)
	case Queen:
		return rookAttacksFrom(sq, occ) | bishopAttacksFrom(sq, occ)
	case King:
		return kingAttacks[sq]
	}
	return 0
}

// attacked reports whether sq is attacked by any piece of color by.
func (b *Board) attacked(sq Square, by Color) bool {
	if pawnAttacks[by.Opposite()][sq]&b.Pieces(by, Pawn) != 0 {
		return true
	}
	if knightAttacks[sq]&b.Pieces(by, Knight) != 0 {
		return true
	}
	if kingAttacks[sq]&b.Pieces(by, King) != 0 {
		return true
	}
	occ := b.Occupied()
	if rookAttacksFrom(sq, occ)&(b.Pieces(by, Rook)|b.Pieces(by, Queen)) != 0 {
		return true
	}
	if bishopAttacksFrom(sq, occ)&(b.Pieces(by, Bishop)|b.Pieces(by, Queen)) != 0 {
		return true
	}
	return false
}

// Checkers returns the bitboard of enemy pieces giving check.
func (b *Board) Checkers() uint64 {
	us := b.sideToMove
	them := us.Opposite()
	ksq := b.kingSq[us]
	occ := b.Occupied()

	var checkers uint64
	checkers |= pawnAttacks[us][ksq] & b.Pieces(them, Pawn)
	checkers |= knightAttacks[ksq] & b.Pieces(them, Knight)
	checkers |= rookAttacksFrom(ksq, occ) & (b.Pieces(them, Rook) | b.Pieces(them, Queen))
	checkers |= bishopAttacksFrom(ksq, occ) & (b.Pieces(them, Bishop) | b.Pieces(them, Queen))
	return checkers
}
