package board

import "math/bits"

// LegalMoves returns every strictly legal move in the position.
// Generation is pseudo-legal followed by a make/probe/unmake filter;
// castling is validated fully at generation time.
func (b *Board) LegalMoves() []Move {
	pseudo := b.pseudoMoves(make([]Move, 0, 64))
	legal := pseudo[:0]
	for _, m := range pseudo {
		if b.legal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves reports whether the side to move has any legal move.
func (b *Board) HasLegalMoves() bool {
	for _, m := range b.pseudoMoves(make([]Move, 0, 64)) {
		if b.legal(m) {
			return true
		}
	}
	return false
}

// legal probes a pseudo-legal move by making it and checking that the
// own king is not left attacked. Castling paths are already validated
// at generation; the probe still covers the king's final square.
func (b *Board) legal(m Move) bool {
	us := b.sideToMove
	var st StateInfo
	b.MakeMove(m, &st)
	ok := !b.attacked(b.kingSq[us], us.Opposite())
	b.UnmakeMove(m, &st)
	return ok
}

func (b *Board) pseudoMoves(list []Move) []Move {
	us := b.sideToMove
	them := us.Opposite()
	occ := b.Occupied()
	own := b.byColor[us]
	enemy := b.byColor[them]

	up := 8
	startRank, promoRank := 1, 7
	if us == Black {
		up = -8
		startRank, promoRank = 6, 0
	}

	pawns := b.Pieces(us, Pawn)
	for bbp := pawns; bbp != 0; bbp &= bbp - 1 {
		from := Square(bits.TrailingZeros64(bbp))

		to := Square(int(from) + up)
		if occ&bb(to) == 0 {
			list = appendPawnMove(list, from, to, promoRank)
			if from.Rank() == startRank {
				if to2 := Square(int(to) + up); occ&bb(to2) == 0 {
					list = append(list, NewMove(from, to2))
				}
			}
		}

		for caps := pawnAttacks[us][from] & enemy; caps != 0; caps &= caps - 1 {
			list = appendPawnMove(list, from, Square(bits.TrailingZeros64(caps)), promoRank)
		}
		if b.epSquare != NoSquare && pawnAttacks[us][from]&bb(b.epSquare) != 0 {
			list = append(list, NewMoveKind(from, b.epSquare, EnPassant))
		}
	}

	for pt := Knight; pt <= King; pt++ {
		for bbp := b.Pieces(us, pt); bbp != 0; bbp &= bbp - 1 {
			from := Square(bits.TrailingZeros64(bbp))
			for tos := attacksFrom(pt, from, occ) &^ own; tos != 0; tos &= tos - 1 {
				list = append(list, NewMove(from, Square(bits.TrailingZeros64(tos))))
			}
		}
	}

	return b.appendCastles(list)
}

func appendPawnMove(list []Move, from, to Square, promoRank int) []Move {
	if to.Rank() != promoRank {
		return append(list, NewMove(from, to))
	}
	for pt := Queen; pt >= Knight; pt-- {
		list = append(list, NewPromotion(from, to, pt))
	}
	return list
}

// appendCastles emits fully validated castling moves, encoded as the
// king moving onto its rook's square. Validation works on squares, not
// files, so standard chess and chess960 share the same path.
func (b *Board) appendCastles(list []Move) []Move {
	us := b.sideToMove
	them := us.Opposite()

	rights := [2]int{WhiteOO, WhiteOOO}
	if us == Black {
		rights = [2]int{BlackOO, BlackOOO}
	}
	for _, right := range rights {
		rookSq := b.castleRooks[right]
		if rookSq == NoSquare {
			continue
		}
		ksq := b.kingSq[us]
		kTo := castleKingTo(ksq, rookSq)
		rTo := castleRookTo(ksq, rookSq)
		occ := b.Occupied() &^ (bb(ksq) | bb(rookSq))

		ok := true
		kStep := 1
		if kTo < ksq {
			kStep = -1
		}
		for sq := int(ksq); ; sq += kStep {
			if b.attacked(Square(sq), them) {
				ok = false
				break
			}
			if Square(sq) != ksq && occ&bb(Square(sq)) != 0 {
				ok = false
				break
			}
			if Square(sq) == kTo {
				break
			}
		}
		if !ok {
			continue
		}

		rStep := 1
		if rTo < rookSq {
			rStep = -1
		}
		for sq := int(rookSq) + rStep; rStep*(sq-int(rTo)) <= 0; sq += rStep {
			if occ&bb(Square(sq)) != 0 {
				ok = false
				break
			}
		}
		if ok {
			list = append(list, NewMoveKind(ksq, rookSq, Castle))
		}
	}
	return list
}

// Perft counts leaf nodes of the legal move tree to the given depth.
func (b *Board) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.LegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	var st StateInfo
	for _, m := range moves {
		b.MakeMove(m, &st)
		nodes += b.Perft(depth - 1)
		b.UnmakeMove(m, &st)
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts at the given depth.
func (b *Board) PerftDivide(depth int) map[Move]uint64 {
	div := make(map[Move]uint64)
	var st StateInfo
	for _, m := range b.LegalMoves() {
		b.MakeMove(m, &st)
		div[m] = b.Perft(depth - 1)
		b.UnmakeMove(m, &st)
	}
	return div
}
