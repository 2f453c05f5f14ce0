package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// StartposFEN is the standard chess starting position.
const StartposFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from a FEN string. The castling field accepts
// both the conventional KQkq letters and Shredder-FEN file letters
// (AHah...), so chess960 positions parse without a separate code path.
func ParseFEN(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("invalid FEN: not enough fields")
	}

	b := &Board{epSquare: NoSquare, fullmove: 1}
	for i := range b.castleRooks {
		b.castleRooks[i] = NoSquare
	}
	b.kingSq[White] = NoSquare
	b.kingSq[Black] = NoSquare

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, errors.New("invalid FEN: piece placement needs 8 ranks")
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := PieceFromChar(ch)
			if p == NoPiece {
				return nil, fmt.Errorf("invalid FEN: bad piece character %q", ch)
			}
			if file >= 8 {
				return nil, errors.New("invalid FEN: rank overflows 8 files")
			}
			sq := SquareOf(file, rank)
			b.squares[sq] = p
			b.byColor[p.Color()] |= bb(sq)
			b.byType[p.Type()] |= bb(sq)
			if p.Type() == King {
				b.kingSq[p.Color()] = sq
			}
			file++
		}
		if file != 8 {
			return nil, errors.New("invalid FEN: rank does not cover 8 files")
		}
	}
	if b.kingSq[White] == NoSquare || b.kingSq[Black] == NoSquare {
		return nil, errors.New("invalid FEN: both kings required")
	}

	switch fields[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, errors.New("invalid FEN: side to move must be 'w' or 'b'")
	}

	if fields[2] != "-" {
		for j := 0; j < len(fields[2]); j++ {
			if err := b.parseCastleChar(fields[2][j]); err != nil {
				return nil, err
			}
		}
	}

	if fields[3] != "-" {
		ep := SquareFromString(fields[3])
		if ep == NoSquare {
			return nil, errors.New("invalid FEN: bad en passant square")
		}
		b.epSquare = ep
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, errors.New("invalid FEN: bad halfmove clock")
		}
		b.rule50 = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, errors.New("invalid FEN: bad fullmove number")
		}
		b.fullmove = n
	}

	b.key = b.computeKey()
	return b, nil
}

func (b *Board) parseCastleChar(ch byte) error {
	var c Color
	var rookFile int

	switch {
	case ch == 'K' || ch == 'Q':
		c = White
		rookFile = b.outermostRookFile(White, ch == 'K')
	case ch == 'k' || ch == 'q':
		c = Black
		rookFile = b.outermostRookFile(Black, ch == 'k')
	case ch >= 'A' && ch <= 'H':
		c = White
		rookFile = int(ch - 'A')
	case ch >= 'a' && ch <= 'h':
		c = Black
		rookFile = int(ch - 'a')
	default:
		return fmt.Errorf("invalid FEN: bad castling character %q", ch)
	}
	if rookFile < 0 {
		return fmt.Errorf("invalid FEN: no rook for castling right %q", ch)
	}

	rank := 0
	if c == Black {
		rank = 7
	}
	rookSq := SquareOf(rookFile, rank)
	if b.squares[rookSq] != PieceFromType(c, Rook) {
		return fmt.Errorf("invalid FEN: no rook on %v for castling right %q", rookSq, ch)
	}

	right := WhiteOO
	kingSide := rookSq > b.kingSq[c]
	switch {
	case c == White && kingSide:
		right = WhiteOO
	case c == White:
		right = WhiteOOO
	case kingSide:
		right = BlackOO
	default:
		right = BlackOOO
	}
	b.castleRooks[right] = rookSq
	return nil
}

// outermostRookFile finds the rook square implied by a KQkq castling
// letter: the rook nearest the board edge on the king's side. Returns
// -1 when there is none.
func (b *Board) outermostRookFile(c Color, kingSide bool) int {
	rank := 0
	if c == Black {
		rank = 7
	}
	rook := PieceFromType(c, Rook)
	kingFile := b.kingSq[c].File()
	if kingSide {
		for f := 7; f > kingFile; f-- {
			if b.squares[SquareOf(f, rank)] == rook {
				return f
			}
		}
	} else {
		for f := 0; f < kingFile; f++ {
			if b.squares[SquareOf(f, rank)] == rook {
				return f
			}
		}
	}
	return -1
}

// FEN renders the position. In chess960 mode the castling field uses
// Shredder file letters.
func (b *Board) FEN() string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.sideToMove == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(b.castleFEN())
	sb.WriteByte(' ')
	sb.WriteString(b.epSquare.String())
	fmt.Fprintf(&sb, " %d %d", b.rule50, b.fullmove)
	return sb.String()
}

func (b *Board) castleFEN() string {
	if b.castleMask() == 0 {
		return "-"
	}
	letters := [4]byte{'K', 'Q', 'k', 'q'}
	var sb strings.Builder
	for right, rookSq := range b.castleRooks {
		if rookSq == NoSquare {
			continue
		}
		if b.Chess960 {
			ch := byte('A' + rookSq.File())
			if right >= BlackOO {
				ch = byte('a' + rookSq.File())
			}
			sb.WriteByte(ch)
		} else {
			sb.WriteByte(letters[right])
		}
	}
	return sb.String()
}
