package board

import (
	"fmt"
	"math/bits"
	"strings"
)

// Pretty renders an ASCII diagram of the position together with its FEN
// and zobrist key, for the "d" debug command.
func (b *Board) Pretty() string {
	var sb strings.Builder

	sb.WriteString(" +---+---+---+---+---+---+---+---+\n")
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			p := b.squares[SquareOf(file, rank)]
			ch := byte(' ')
			if p != NoPiece {
				ch = p.Char()
			}
			fmt.Fprintf(&sb, " | %c", ch)
		}
		fmt.Fprintf(&sb, " | %d\n +---+---+---+---+---+---+---+---+\n", rank+1)
	}
	sb.WriteString("   a   b   c   d   e   f   g   h\n\n")

	fmt.Fprintf(&sb, "Fen: %s\n", b.FEN())
	fmt.Fprintf(&sb, "Key: %016X\n", b.key)

	sb.WriteString("Checkers:")
	for checkers := b.Checkers(); checkers != 0; checkers &= checkers - 1 {
		fmt.Fprintf(&sb, " %v", Square(bits.TrailingZeros64(checkers)))
	}
	return sb.String()
}

// Flip mirrors the board vertically and swaps the colors of all pieces,
// castling rights and the side to move. Debugging aid: the flipped
// position must evaluate to the exact negation of the original.
func (b *Board) Flip() {
	fields := strings.Fields(b.FEN())

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		fields[2] = swapCase(fields[2])
	}

	if fields[3] != "-" {
		sq := SquareFromString(fields[3])
		fields[3] = SquareOf(sq.File(), 7-sq.Rank()).String()
	}

	flipped, err := ParseFEN(strings.Join(fields, " "))
	if err != nil {
		return
	}
	chess960 := b.Chess960
	*b = *flipped
	b.Chess960 = chess960
}

func swapCase(s string) string {
	out := []byte(s)
	for i, ch := range out {
		switch {
		case ch >= 'a' && ch <= 'z':
			out[i] = ch - 'a' + 'A'
		case ch >= 'A' && ch <= 'Z':
			out[i] = ch - 'A' + 'a'
		}
	}
	return string(out)
}
