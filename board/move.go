package board

// Move encodes a move in a 32-bit value.
//
// Bitfield layout (from LSB): from square 6 bits, to square 6 bits,
// kind 2 bits, promotion piece type 3 bits. Castling is encoded as the
// king moving onto its own rook's square, uniformly for standard chess
// and chess960; the king's real destination is derived from which side
// of the king the rook stands.
type Move uint32

// MoveKind distinguishes the special move classes.
type MoveKind uint8

const (
	Normal MoveKind = iota
	Promotion
	Castle
	EnPassant
)

const (
	moveToShift    = 6
	moveKindShift  = 12
	movePromoShift = 14
)

// Sentinel values. No real move has from == to, so both sentinels live
// outside the encoding space of legal moves.
const (
	MoveNone Move = 0
	MoveNull Move = Move(9 | 9<<moveToShift) // b2b2
)

// NewMove builds a normal move.
func NewMove(from, to Square) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift)
}

// NewMoveKind builds a castle or en-passant move.
func NewMoveKind(from, to Square, kind MoveKind) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift | uint32(kind)<<moveKindShift)
}

// NewPromotion builds a promotion move to the given piece type.
func NewPromotion(from, to Square, promo PieceType) Move {
	return Move(uint32(from) | uint32(to)<<moveToShift |
		uint32(Promotion)<<moveKindShift | uint32(promo)<<movePromoShift)
}

// From returns the origin square.
func (m Move) From() Square { return Square(m & 0x3F) }

// To returns the destination square. For castling this is the square of
// the castling rook, not the king's final square.
func (m Move) To() Square { return Square(m >> moveToShift & 0x3F) }

// Kind returns the move class.
func (m Move) Kind() MoveKind { return MoveKind(m >> moveKindShift & 0x3) }

// PromoType returns the promotion piece type, PieceTypeNone for
// non-promotions.
func (m Move) PromoType() PieceType { return PieceType(m >> movePromoShift & 0x7) }

// castleKingTo returns the king's destination square for a castling
// move: file g when the rook is on the king's right, file c otherwise.
func castleKingTo(kingFrom, rookFrom Square) Square {
	if rookFrom > kingFrom {
		return SquareOf(6, kingFrom.Rank())
	}
	return SquareOf(2, kingFrom.Rank())
}

// castleRookTo returns the rook's destination square for a castling
// move: file f for king-side, file d for queen-side.
func castleRookTo(kingFrom, rookFrom Square) Square {
	if rookFrom > kingFrom {
		return SquareOf(5, kingFrom.Rank())
	}
	return SquareOf(3, kingFrom.Rank())
}
