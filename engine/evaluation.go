package engine

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"

	"gander-engine/board"
)

// Material values, midgame and endgame. PawnValueEG also anchors the
// centipawn scale of UCI score output.
var PieceValueMG = [7]int32{0, 82, 337, 365, 477, 1025, 0}
var PieceValueEG = [7]int32{0, 94, 281, 297, 512, 936, 0}

const PawnValueEG = 94

// Game phase weights per piece type; 24 = full midgame.
var phaseWeight = [7]int{0, 0, 1, 1, 2, 4, 0}

const totalPhase = 24

// Piece-square tables from white's perspective, index a1=0. Black
// mirrors the rank.
var pst = [7][64]int32{
	board.Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 10, 10, -20, -20, 10, 10, 5,
		5, -5, -10, 0, 0, -10, -5, 5,
		0, 0, 0, 20, 20, 0, 0, 0,
		5, 5, 10, 25, 25, 10, 5, 5,
		10, 10, 20, 30, 30, 20, 10, 10,
		50, 50, 50, 50, 50, 50, 50, 50,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Knight: {
		-50, -40, -30, -30, -30, -30, -40, -50,
		-40, -20, 0, 5, 5, 0, -20, -40,
		-30, 5, 10, 15, 15, 10, 5, -30,
		-30, 0, 15, 20, 20, 15, 0, -30,
		-30, 5, 15, 20, 20, 15, 5, -30,
		-30, 0, 10, 15, 15, 10, 0, -30,
		-40, -20, 0, 0, 0, 0, -20, -40,
		-50, -40, -30, -30, -30, -30, -40, -50,
	},
	board.Bishop: {
		-20, -10, -10, -10, -10, -10, -10, -20,
		-10, 5, 0, 0, 0, 0, 5, -10,
		-10, 10, 10, 10, 10, 10, 10, -10,
		-10, 0, 10, 10, 10, 10, 0, -10,
		-10, 5, 5, 10, 10, 5, 5, -10,
		-10, 0, 5, 10, 10, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -10, -10, -10, -10, -20,
	},
	board.Rook: {
		0, 0, 0, 5, 5, 0, 0, 0,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		-5, 0, 0, 0, 0, 0, 0, -5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	board.Queen: {
		-20, -10, -10, -5, -5, -10, -10, -20,
		-10, 0, 5, 0, 0, 0, 0, -10,
		-10, 5, 5, 5, 5, 5, 0, -10,
		0, 0, 5, 5, 5, 5, 0, -5,
		-5, 0, 5, 5, 5, 5, 0, -5,
		-10, 0, 5, 5, 5, 5, 0, -10,
		-10, 0, 0, 0, 0, 0, 0, -10,
		-20, -10, -10, -5, -5, -10, -10, -20,
	},
	board.King: {
		20, 30, 10, 0, 0, 10, 30, 20,
		20, 20, 0, 0, 0, 0, 20, 20,
		-10, -20, -20, -20, -20, -20, -20, -10,
		-20, -30, -30, -40, -40, -30, -30, -20,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
		-30, -40, -40, -50, -50, -40, -40, -30,
	},
}

const mobilityBonus = 3 // per slider destination square

type evalTerms struct {
	material [2]int32
	pstScore [2]int32
	mobility [2]int32
}

func evaluateTerms(b *board.Board) evalTerms {
	var t evalTerms
	occ := b.Occupied()

	for _, c := range []board.Color{board.White, board.Black} {
		for pt := board.Pawn; pt <= board.King; pt++ {
			pieces := b.Pieces(c, pt)
			n := int32(bits.OnesCount64(pieces))
			t.material[c] += n * taper(PieceValueMG[pt], PieceValueEG[pt], b)

			for bbp := pieces; bbp != 0; bbp &= bbp - 1 {
				sq := bits.TrailingZeros64(bbp)
				if c == board.Black {
					sq = sq ^ 56 // mirror rank
				}
				t.pstScore[c] += pst[pt][sq]
			}

			switch pt {
			case board.Bishop, board.Rook, board.Queen:
				for bbp := pieces; bbp != 0; bbp &= bbp - 1 {
					sq := uint8(bits.TrailingZeros64(bbp))
					var att uint64
					if pt != board.Bishop {
						att |= dragontoothmg.CalculateRookMoveBitboard(sq, occ)
					}
					if pt != board.Rook {
						att |= dragontoothmg.CalculateBishopMoveBitboard(sq, occ)
					}
					att &^= b.ColorBB(c)
					t.mobility[c] += mobilityBonus * int32(bits.OnesCount64(att))
				}
			}
		}
	}
	return t
}

func taper(mg, eg int32, b *board.Board) int32 {
	phase := 0
	for pt := board.Knight; pt <= board.Queen; pt++ {
		phase += phaseWeight[pt] * bits.OnesCount64(b.Pieces(board.White, pt)|b.Pieces(board.Black, pt))
	}
	phase = Min(phase, totalPhase)
	return (mg*int32(phase) + eg*int32(totalPhase-phase)) / totalPhase
}

// Evaluate scores the position from the side to move's point of view.
func Evaluate(b *board.Board) int32 {
	t := evaluateTerms(b)
	white := t.material[board.White] + t.pstScore[board.White] + t.mobility[board.White]
	black := t.material[board.Black] + t.pstScore[board.Black] + t.mobility[board.Black]
	score := white - black
	if b.SideToMove() == board.Black {
		score = -score
	}
	return score
}

// TraceEval renders the per-term evaluation breakdown printed by the
// "eval" command. Scores are in pawns, from white's point of view.
func TraceEval(b *board.Board) string {
	t := evaluateTerms(b)
	var sb strings.Builder

	sb.WriteString("     Term |   White |   Black |   Total\n")
	sb.WriteString("----------+---------+---------+---------\n")
	row := func(name string, w, bl int32) {
		fmt.Fprintf(&sb, "%9s | %7.2f | %7.2f | %7.2f\n",
			name, pawns(w), pawns(bl), pawns(w-bl))
	}
	row("Material", t.material[board.White], t.material[board.Black])
	row("PST", t.pstScore[board.White], t.pstScore[board.Black])
	row("Mobility", t.mobility[board.White], t.mobility[board.Black])
	sb.WriteString("----------+---------+---------+---------\n")

	total := t.material[board.White] + t.pstScore[board.White] + t.mobility[board.White] -
		t.material[board.Black] - t.pstScore[board.Black] - t.mobility[board.Black]
	fmt.Fprintf(&sb, "Total: %+.2f (white side)", pawns(total))
	return sb.String()
}

func pawns(v int32) float64 { return float64(v) / float64(PawnValueEG) }
