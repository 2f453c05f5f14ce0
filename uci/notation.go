package uci

import (
	"strings"

	"gander-engine/board"
)

const pieceLetters = " PNBRQK"
const promoLetters = " pnbrqk"

// MoveToUCI renders a move in coordinate notation ("g1f3", "a7a8q").
// The sentinels render to "(none)" and "0000". Castling is internally
// encoded as king-takes-rook; outside chess960 mode the destination is
// remapped to the conventional two-square king hop before rendering.
func MoveToUCI(m board.Move, chess960 bool) string {
	if m == board.MoveNone {
		return "(none)"
	}
	if m == board.MoveNull {
		return "0000"
	}

	from, to := m.From(), m.To()
	if m.Kind() == board.Castle && !chess960 {
		file := 2
		if to > from {
			file = 6
		}
		to = board.SquareOf(file, from.Rank())
	}

	s := from.String() + to.String()
	if m.Kind() == board.Promotion {
		s += string(promoLetters[m.PromoType()])
	}
	return s
}

// MoveFromUCI decodes a coordinate-notation token against the current
// position. Decoding round-trips through MoveToUCI over the legal move
// list, so both directions agree by construction. Returns MoveNone if
// no legal move matches.
func MoveFromUCI(b *board.Board, str string) board.Move {
	if len(str) == 5 {
		// Some GUIs send the promotion piece in upper case.
		str = str[:4] + strings.ToLower(str[4:])
	}
	for _, m := range b.LegalMoves() {
		if str == MoveToUCI(m, b.Chess960) {
			return m
		}
	}
	return board.MoveNone
}

// MoveToSAN renders a known-legal move in short algebraic notation,
// with disambiguation, capture, promotion and check/mate decoration.
func MoveToSAN(b *board.Board, m board.Move) string {
	if m == board.MoveNone {
		return "(none)"
	}
	if m == board.MoveNull {
		return "(null)"
	}

	from, to := m.From(), m.To()
	pt := b.PieceAt(from).Type()
	var san string

	if m.Kind() == board.Castle {
		if to > from {
			san = "O-O"
		} else {
			san = "O-O-O"
		}
	} else {
		if pt != board.Pawn {
			san = string(pieceLetters[pt])
			san += disambiguation(b, m, pt)
		} else if b.IsCapture(m) {
			san = string(byte('a' + from.File()))
		}
		if b.IsCapture(m) {
			san += "x"
		}
		san += to.String()
		if m.Kind() == board.Promotion {
			san += "=" + string(pieceLetters[m.PromoType()])
		}
	}

	// Telling check from mate needs a probe of the resulting position.
	// The live position is shared and mutable: the undo must run on
	// every path out of here.
	if b.GivesCheck(m) {
		var st board.StateInfo
		b.MakeMove(m, &st)
		if b.HasLegalMoves() {
			san += "+"
		} else {
			san += "#"
		}
		b.UnmakeMove(m, &st)
	}
	return san
}

// disambiguation computes the SAN origin hint for a non-pawn move.
// Candidates are the other same-type pieces with a legal move to the
// same destination; legality filtering already excludes pinned pieces.
// File beats rank beats full square, and the full-square fallback
// matters with three or more candidates.
func disambiguation(b *board.Board, m board.Move, pt board.PieceType) string {
	from, to := m.From(), m.To()
	sameFile, sameRank, any := false, false, false
	for _, lm := range b.LegalMoves() {
		if lm.Kind() == board.Castle || lm.To() != to || lm.From() == from {
			continue
		}
		if b.PieceAt(lm.From()).Type() != pt {
			continue
		}
		any = true
		if lm.From().File() == from.File() {
			sameFile = true
		}
		if lm.From().Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !any:
		return ""
	case !sameFile:
		return string(byte('a' + from.File()))
	case !sameRank:
		return string(byte('1' + from.Rank()))
	default:
		return from.String()
	}
}
