package board

// Color of a side, White moves first.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite returns the other side.
func (c Color) Opposite() Color { return c ^ 1 }

// PieceType is a colorless piece kind (1-6); 0 means none.
type PieceType uint8

const (
	PieceTypeNone PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece combines color and type in one code: bit 3 is the color,
// bits 0-2 the type. NoPiece is 0.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side the piece belongs to.
func (p Piece) Color() Color { return Color(p >> 3) }

// PieceFromType builds a piece code from a color and type.
func PieceFromType(c Color, pt PieceType) Piece {
	return Piece(uint8(c)<<3 | uint8(pt))
}

const pieceChars = " PNBRQK  pnbrqk"

// Char returns the FEN character for the piece (upper case for white).
func (p Piece) Char() byte {
	if int(p) >= len(pieceChars) {
		return '?'
	}
	return pieceChars[p]
}

// PieceFromChar decodes a FEN piece character, NoPiece on failure.
func PieceFromChar(ch byte) Piece {
	for p, c := range []byte(pieceChars) {
		if c == ch && c != ' ' {
			return Piece(p)
		}
	}
	return NoPiece
}

// Square indexes the board a1=0 .. h8=63; NoSquare marks "no square".
type Square uint8

const NoSquare Square = 64

// SquareOf builds a square from file (0-7) and rank (0-7).
func SquareOf(file, rank int) Square { return Square(rank*8 + file) }

// File returns the file of the square, 0 for the a-file.
func (sq Square) File() int { return int(sq) & 7 }

// Rank returns the rank of the square, 0 for the first rank.
func (sq Square) Rank() int { return int(sq) >> 3 }

// String renders the square in coordinate form ("e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// SquareFromString parses a two-character coordinate, NoSquare on failure.
func SquareFromString(s string) Square {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	return SquareOf(int(s[0]-'a'), int(s[1]-'1'))
}

// Castling right indices into Board.castleRooks.
const (
	WhiteOO = iota
	WhiteOOO
	BlackOO
	BlackOOO
)

func bb(sq Square) uint64 { return 1 << uint64(sq) }
