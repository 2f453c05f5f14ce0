package board

// Board is the mutable position state: bitboards by color and piece
// type, a mailbox array, side to move, castling rights (stored as the
// castling rook's square, which carries over to chess960 unchanged),
// en passant square, move counters and the incremental zobrist key.
type Board struct {
	byType  [7]uint64
	byColor [2]uint64
	squares [64]Piece
	kingSq  [2]Square

	sideToMove  Color
	castleRooks [4]Square
	epSquare    Square
	rule50      int
	fullmove    int
	key         uint64

	// Chess960 switches castling notation to king-takes-rook
	// coordinates; the internal encoding is the same either way.
	Chess960 bool
}

// SideToMove returns the color to play.
func (b *Board) SideToMove() Color { return b.sideToMove }

// EnPassantSquare returns the current en passant target, NoSquare if none.
func (b *Board) EnPassantSquare() Square { return b.epSquare }

// HalfmoveClock returns the number of halfmoves since the last capture
// or pawn move.
func (b *Board) HalfmoveClock() int { return b.rule50 }

// FullmoveNumber returns the full move counter, starting at 1.
func (b *Board) FullmoveNumber() int { return b.fullmove }

// Key returns the incrementally maintained zobrist key.
func (b *Board) Key() uint64 { return b.key }

// PieceAt returns the piece on sq, NoPiece for an empty square.
func (b *Board) PieceAt(sq Square) Piece { return b.squares[sq] }

// KingSquare returns the king square of the given side.
func (b *Board) KingSquare(c Color) Square { return b.kingSq[c] }

// Pieces returns the bitboard of pieces of one color and type.
func (b *Board) Pieces(c Color, pt PieceType) uint64 {
	return b.byColor[c] & b.byType[pt]
}

// ColorBB returns the occupancy of one side.
func (b *Board) ColorBB(c Color) uint64 { return b.byColor[c] }

// Occupied returns the bitboard of all pieces.
func (b *Board) Occupied() uint64 { return b.byColor[White] | b.byColor[Black] }

// CastleRook returns the rook square for a castling right index
// (WhiteOO..BlackOOO), NoSquare when the right is gone.
func (b *Board) CastleRook(right int) Square { return b.castleRooks[right] }

func (b *Board) addPiece(sq Square, p Piece) {
	b.squares[sq] = p
	b.byColor[p.Color()] |= bb(sq)
	b.byType[p.Type()] |= bb(sq)
	if p.Type() == King {
		b.kingSq[p.Color()] = sq
	}
	b.key ^= zobristPiece[p][sq]
}

func (b *Board) removePiece(sq Square) Piece {
	p := b.squares[sq]
	if p == NoPiece {
		return NoPiece
	}
	b.squares[sq] = NoPiece
	b.byColor[p.Color()] &^= bb(sq)
	b.byType[p.Type()] &^= bb(sq)
	b.key ^= zobristPiece[p][sq]
	return p
}

// castleMask returns the 4-bit mask of remaining castling rights, used
// for zobrist hashing and FEN output.
func (b *Board) castleMask() int {
	var mask int
	for i, sq := range b.castleRooks {
		if sq != NoSquare {
			mask |= 1 << i
		}
	}
	return mask
}

// clearCastleRight drops a single right, keeping the key in sync.
func (b *Board) clearCastleRight(right int) {
	if b.castleRooks[right] == NoSquare {
		return
	}
	b.key ^= zobristCastle[b.castleMask()]
	b.castleRooks[right] = NoSquare
	b.key ^= zobristCastle[b.castleMask()]
}

// clearCastleRightsOn drops any right whose rook square or king is sq.
func (b *Board) clearCastleRightsOn(sq Square) {
	for right, rookSq := range b.castleRooks {
		if rookSq == sq {
			b.clearCastleRight(right)
		}
	}
	if sq == b.kingSq[White] {
		b.clearCastleRight(WhiteOO)
		b.clearCastleRight(WhiteOOO)
	}
	if sq == b.kingSq[Black] {
		b.clearCastleRight(BlackOO)
		b.clearCastleRight(BlackOOO)
	}
}

// setEnPassant moves the en passant square, keeping the key in sync.
func (b *Board) setEnPassant(sq Square) {
	if b.epSquare != NoSquare {
		b.key ^= zobristEnPassant[b.epSquare.File()]
	}
	b.epSquare = sq
	if sq != NoSquare {
		b.key ^= zobristEnPassant[sq.File()]
	}
}

// IsCapture reports whether m captures a piece, counting en passant.
func (b *Board) IsCapture(m Move) bool {
	switch m.Kind() {
	case EnPassant:
		return true
	case Castle:
		return false
	}
	return b.squares[m.To()] != NoPiece
}

// InCheck reports whether the side to move has its king attacked.
func (b *Board) InCheck() bool {
	return b.attacked(b.kingSq[b.sideToMove], b.sideToMove.Opposite())
}
