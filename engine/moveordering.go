package engine

import "gander-engine/board"

// Move ordering scores. The transposition table move goes first, then
// captures by MVV-LVA, then killers, then quiets by history.
const (
	ttMoveScore     int32 = 1 << 30
	captureBase     int32 = 1 << 20
	killerFirstBase int32 = 1 << 19
	killerSecond    int32 = 1<<19 - 1
)

var mvvValue = [7]int32{0, 100, 300, 300, 500, 900, 5000}

func (s *Searcher) scoreMoves(b *board.Board, moves []board.Move, ttMove board.Move, ply int) []int32 {
	scores := make([]int32, len(moves))
	for i, m := range moves {
		switch {
		case m == ttMove:
			scores[i] = ttMoveScore
		case b.IsCapture(m):
			victim := b.PieceAt(m.To()).Type()
			if m.Kind() == board.EnPassant {
				victim = board.Pawn
			}
			attacker := b.PieceAt(m.From()).Type()
			scores[i] = captureBase + mvvValue[victim]*10 - mvvValue[attacker]/10
		case ply < maxPly && m == s.killers[ply][0]:
			scores[i] = killerFirstBase
		case ply < maxPly && m == s.killers[ply][1]:
			scores[i] = killerSecond
		default:
			scores[i] = s.history[b.SideToMove()][m.From()][m.To()]
		}
	}
	return scores
}

// pickBest selection-sorts the next best move to the front of the
// unsearched suffix starting at idx.
func pickBest(moves []board.Move, scores []int32, idx int) board.Move {
	best := idx
	for i := idx + 1; i < len(moves); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	moves[idx], moves[best] = moves[best], moves[idx]
	scores[idx], scores[best] = scores[best], scores[idx]
	return moves[idx]
}

func (s *Searcher) storeKiller(ply int, m board.Move) {
	if ply >= maxPly || s.killers[ply][0] == m {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = m
}

func (s *Searcher) bumpHistory(c board.Color, m board.Move, depth int8) {
	h := &s.history[c][m.From()][m.To()]
	*h += int32(depth) * int32(depth)
	if *h > killerSecond/2 {
		*h /= 2
	}
}
