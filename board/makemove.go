package board

// StateInfo snapshots the irreversible parts of the position before a
// move: the move itself is enough to restore everything else. One
// StateInfo is pushed per move applied during setup replay and per ply
// during search; the stack doubles as the key history for repetition
// detection (Key is the position key before the move was made).
type StateInfo struct {
	Key         uint64
	CastleRooks [4]Square
	EpSquare    Square
	Rule50      int
	Captured    Piece
}

// MakeMove applies a legal or pseudo-legal move in place, filling st
// with the undo state for UnmakeMove.
func (b *Board) MakeMove(m Move, st *StateInfo) {
	st.Key = b.key
	st.CastleRooks = b.castleRooks
	st.EpSquare = b.epSquare
	st.Rule50 = b.rule50
	st.Captured = NoPiece

	us := b.sideToMove
	from, to := m.From(), m.To()

	b.rule50++
	if us == Black {
		b.fullmove++
	}

	switch m.Kind() {
	case Castle:
		kTo := castleKingTo(from, to)
		rTo := castleRookTo(from, to)
		// Remove both pieces first: in chess960 the target squares
		// can overlap the origin squares.
		king := b.removePiece(from)
		rook := b.removePiece(to)
		b.addPiece(kTo, king)
		b.addPiece(rTo, rook)
		if us == White {
			b.clearCastleRight(WhiteOO)
			b.clearCastleRight(WhiteOOO)
		} else {
			b.clearCastleRight(BlackOO)
			b.clearCastleRight(BlackOOO)
		}
		b.setEnPassant(NoSquare)

	case EnPassant:
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		st.Captured = b.removePiece(capSq)
		b.addPiece(to, b.removePiece(from))
		b.rule50 = 0
		b.setEnPassant(NoSquare)

	case Promotion:
		if b.squares[to] != NoPiece {
			st.Captured = b.removePiece(to)
			b.clearCastleRightsOn(to)
		}
		b.removePiece(from)
		b.addPiece(to, PieceFromType(us, m.PromoType()))
		b.rule50 = 0
		b.setEnPassant(NoSquare)

	default:
		if b.squares[to] != NoPiece {
			st.Captured = b.removePiece(to)
			b.rule50 = 0
			b.clearCastleRightsOn(to)
		}
		b.clearCastleRightsOn(from)
		p := b.removePiece(from)
		b.addPiece(to, p)
		if p.Type() == Pawn {
			b.rule50 = 0
			if to == from+16 || from == to+16 {
				b.setEnPassant((from + to) / 2)
			} else {
				b.setEnPassant(NoSquare)
			}
		} else {
			b.setEnPassant(NoSquare)
		}
	}

	b.sideToMove = us.Opposite()
	b.key ^= zobristSide
}

// UnmakeMove reverses the last move made with MakeMove, restoring the
// exact prior state from st.
func (b *Board) UnmakeMove(m Move, st *StateInfo) {
	us := b.sideToMove.Opposite()
	from, to := m.From(), m.To()

	if us == Black {
		b.fullmove--
	}

	switch m.Kind() {
	case Castle:
		kTo := castleKingTo(from, to)
		rTo := castleRookTo(from, to)
		king := b.removePiece(kTo)
		rook := b.removePiece(rTo)
		b.addPiece(from, king)
		b.addPiece(to, rook)

	case EnPassant:
		b.addPiece(from, b.removePiece(to))
		capSq := to - 8
		if us == Black {
			capSq = to + 8
		}
		b.addPiece(capSq, st.Captured)

	case Promotion:
		b.removePiece(to)
		b.addPiece(from, PieceFromType(us, Pawn))
		if st.Captured != NoPiece {
			b.addPiece(to, st.Captured)
		}

	default:
		b.addPiece(from, b.removePiece(to))
		if st.Captured != NoPiece {
			b.addPiece(to, st.Captured)
		}
	}

	b.sideToMove = us
	b.castleRooks = st.CastleRooks
	b.epSquare = st.EpSquare
	b.rule50 = st.Rule50
	b.key = st.Key
}

// MakeNullMove passes the turn, used for null-move pruning.
func (b *Board) MakeNullMove(st *StateInfo) {
	st.Key = b.key
	st.CastleRooks = b.castleRooks
	st.EpSquare = b.epSquare
	st.Rule50 = b.rule50
	st.Captured = NoPiece

	b.setEnPassant(NoSquare)
	b.rule50++
	b.sideToMove = b.sideToMove.Opposite()
	b.key ^= zobristSide
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(st *StateInfo) {
	b.sideToMove = b.sideToMove.Opposite()
	b.epSquare = st.EpSquare
	b.rule50 = st.Rule50
	b.key = st.Key
}

// GivesCheck reports whether the (legal) move leaves the opponent in
// check. Probes by make and immediate unmake.
func (b *Board) GivesCheck(m Move) bool {
	var st StateInfo
	b.MakeMove(m, &st)
	check := b.InCheck()
	b.UnmakeMove(m, &st)
	return check
}
