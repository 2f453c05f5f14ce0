package engine

import (
	"sync/atomic"
	"time"

	"gander-engine/board"
)

const maxPly = 128

// Score constants. Mate scores are encoded as Checkmate minus the ply
// distance, so anything at or above MateThreshold is a forced mate.
const (
	Infinity      int32 = 32500
	Checkmate     int32 = 20000
	DrawScore     int32 = 0
	MateThreshold int32 = Checkmate - maxPly
)

// SearchInfo reports one completed iteration of iterative deepening.
type SearchInfo struct {
	Depth int
	Score int32
	Nodes uint64
	Time  time.Duration
	PV    []board.Move
}

// SearchResult is the final outcome of a search.
type SearchResult struct {
	Best   board.Move
	Ponder board.Move
}

// Searcher owns the transposition table, the ordering heuristics and
// the stop signals. One search runs at a time; the command loop talks
// to it only through Signals, PonderHit and the Progress callback.
type Searcher struct {
	TT       *TransTable
	Progress func(SearchInfo)

	signals *Signals
	timer   TimeHandler
	limits  Limits
	ponder  atomic.Bool

	nodes   uint64
	states  []board.StateInfo
	killers [maxPly][2]board.Move
	history [2][64][64]int32
	pv      [maxPly + 1][maxPly]board.Move
	pvLen   [maxPly + 1]int
}

// NewSearcher builds a searcher with a transposition table of the given
// size in MB.
func NewSearcher(ttSizeMB int) *Searcher {
	return &Searcher{TT: NewTransTable(ttSizeMB), signals: newSignals()}
}

// Signals exposes the shared stop flags for the command loop.
func (s *Searcher) Signals() *Signals { return s.signals }

// Nodes returns the node count of the last (or current) search.
func (s *Searcher) Nodes() uint64 { return s.nodes }

// Pondering reports whether the current search is still in ponder mode.
func (s *Searcher) Pondering() bool { return s.ponder.Load() }

// PonderHit converts a pondering search into a normal one; the search
// keeps going and from now on obeys its time allocation.
func (s *Searcher) PonderHit() {
	s.ponder.Store(false)
	s.signals.Wake()
}

// NewGame clears all state that persists between searches.
func (s *Searcher) NewGame() {
	s.TT.Clear()
	s.history = [2][64][64]int32{}
	s.killers = [maxPly][2]board.Move{}
}

// Arm clears the stop signals and sets the ponder flag for the next
// search. It must run on the dispatcher thread before the search
// goroutine is spawned: if the search cleared its own signals on
// startup, a stop arriving between "go" and that reset would be
// erased and an infinite search would never return.
func (s *Searcher) Arm(ponder bool) {
	s.signals.Reset()
	s.ponder.Store(ponder)
}

// Search runs iterative deepening on b under the given limits. The
// caller arms the searcher first (Arm), so a stop raised before this
// runs is honored. Ownership of b and the setup state stack transfers
// to the search until it returns; the stack is extended in place for
// repetition detection. An infinite or pondering search blocks after
// its last iteration until a stop arrives, per the UCI contract.
func (s *Searcher) Search(b *board.Board, limits Limits, states []board.StateInfo, moveOverheadMs int) SearchResult {
	s.limits = limits
	s.timer.Start(&limits, b.SideToMove(), moveOverheadMs)
	s.nodes = 0
	s.states = states
	s.killers = [maxPly][2]board.Move{}

	rootMoves := b.LegalMoves()
	if len(limits.SearchMoves) > 0 {
		var filtered []board.Move
		for _, m := range rootMoves {
			for _, sm := range limits.SearchMoves {
				if m == sm {
					filtered = append(filtered, m)
					break
				}
			}
		}
		rootMoves = filtered
	}

	var result SearchResult
	maxDepth := maxPly - 1
	if limits.Depth > 0 {
		maxDepth = Min(limits.Depth, maxDepth)
	}

	for depth := 1; depth <= maxDepth && len(rootMoves) > 0; depth++ {
		score := s.searchRoot(b, rootMoves, int8(depth))
		if s.signals.Stopped() {
			break
		}
		result.Best = s.pv[0][0]
		result.Ponder = board.MoveNone
		if s.pvLen[0] > 1 {
			result.Ponder = s.pv[0][1]
		}
		if s.Progress != nil {
			line := append([]board.Move(nil), s.pv[0][:s.pvLen[0]]...)
			s.Progress(SearchInfo{
				Depth: depth,
				Score: score,
				Nodes: s.nodes,
				Time:  s.timer.Elapsed(),
				PV:    line,
			})
		}
		if limits.Mate > 0 && score >= Checkmate-int32(2*limits.Mate) {
			break
		}
		if !s.Pondering() && !limits.Infinite && s.timer.SoftExpired() {
			break
		}
	}

	for (s.Pondering() || limits.Infinite) && !s.signals.Stopped() {
		<-s.signals.wake
	}

	if result.Best == board.MoveNone && len(rootMoves) > 0 {
		result.Best = rootMoves[0]
	}
	return result
}

func (s *Searcher) searchRoot(b *board.Board, moves []board.Move, depth int8) int32 {
	alpha, beta := -Infinity, Infinity
	s.pvLen[0] = 0

	ttMove := board.MoveNone
	if e, ok := s.TT.Probe(b.Key()); ok {
		ttMove = e.Move
	}
	scores := s.scoreMoves(b, moves, ttMove, 0)

	best := -Infinity
	bestMove := board.MoveNone
	for i := range moves {
		m := pickBest(moves, scores, i)
		s.doMove(b, m)
		var score int32
		if i == 0 {
			score = -s.alphabeta(b, depth-1, -beta, -alpha, 1, true)
		} else {
			score = -s.alphabeta(b, depth-1, -alpha-1, -alpha, 1, true)
			if score > alpha && !s.signals.Stopped() {
				score = -s.alphabeta(b, depth-1, -beta, -alpha, 1, true)
			}
		}
		s.undoMove(b, m)
		if s.signals.Stopped() {
			return 0
		}
		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				s.updatePV(0, m)
			}
		}
	}
	s.TT.Store(b.Key(), bestMove, scoreToTT(best, 0), depth, ExactFlag)
	return best
}

func (s *Searcher) alphabeta(b *board.Board, depth int8, alpha, beta int32, ply int, nullOK bool) int32 {
	s.nodes++
	if s.nodes&2047 == 0 {
		s.checkLimits()
	}
	if s.signals.Stopped() {
		return 0
	}
	s.pvLen[ply] = 0
	if ply >= maxPly {
		return Evaluate(b)
	}

	if b.HalfmoveClock() >= 100 || s.isRepetition(b) {
		return DrawScore
	}

	inCheck := b.InCheck()
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	ttMove := board.MoveNone
	if e, ok := s.TT.Probe(b.Key()); ok {
		ttMove = e.Move
		if e.Depth >= depth {
			score := scoreFromTT(e.Score, ply)
			switch e.Flag {
			case ExactFlag:
				return score
			case AlphaFlag:
				if score <= alpha {
					return score
				}
			case BetaFlag:
				if score >= beta {
					return score
				}
			}
		}
	}

	if nullOK && !inCheck && depth >= 3 && s.hasNonPawnMaterial(b) {
		s.doNull(b)
		score := -s.alphabeta(b, depth-3, -beta, -beta+1, ply+1, false)
		s.undoNull(b)
		if s.signals.Stopped() {
			return 0
		}
		if score >= beta && score < MateThreshold {
			return beta
		}
	}

	moves := b.LegalMoves()
	if len(moves) == 0 {
		if inCheck {
			return -Checkmate + int32(ply)
		}
		return DrawScore
	}

	scores := s.scoreMoves(b, moves, ttMove, ply)
	flag := int8(AlphaFlag)
	best := -Infinity
	bestMove := board.MoveNone

	for i := range moves {
		m := pickBest(moves, scores, i)
		s.doMove(b, m)
		score := -s.alphabeta(b, depth-1, -beta, -alpha, ply+1, true)
		s.undoMove(b, m)
		if s.signals.Stopped() {
			return 0
		}
		if score > best {
			best = score
			bestMove = m
			if score > alpha {
				alpha = score
				flag = ExactFlag
				s.updatePV(ply, m)
				if alpha >= beta {
					flag = BetaFlag
					if !b.IsCapture(m) {
						s.storeKiller(ply, m)
						s.bumpHistory(b.SideToMove(), m, depth)
					}
					break
				}
			}
		}
	}

	s.TT.Store(b.Key(), bestMove, scoreToTT(best, ply), depth, flag)
	return best
}

func (s *Searcher) quiescence(b *board.Board, alpha, beta int32, ply int) int32 {
	s.nodes++
	if s.nodes&2047 == 0 {
		s.checkLimits()
	}
	if s.signals.Stopped() || ply >= maxPly {
		return Evaluate(b)
	}

	stand := Evaluate(b)
	if stand >= beta {
		return stand
	}
	alpha = Max(alpha, stand)

	all := b.LegalMoves()
	moves := all[:0]
	for _, m := range all {
		if b.IsCapture(m) || m.Kind() == board.Promotion {
			moves = append(moves, m)
		}
	}
	scores := s.scoreMoves(b, moves, board.MoveNone, ply)

	best := stand
	for i := range moves {
		m := pickBest(moves, scores, i)
		s.doMove(b, m)
		score := -s.quiescence(b, -beta, -alpha, ply+1)
		s.undoMove(b, m)
		if s.signals.Stopped() {
			return best
		}
		if score > best {
			best = score
			alpha = Max(alpha, score)
			if alpha >= beta {
				break
			}
		}
	}
	return best
}

func (s *Searcher) doMove(b *board.Board, m board.Move) {
	s.states = append(s.states, board.StateInfo{})
	b.MakeMove(m, &s.states[len(s.states)-1])
}

func (s *Searcher) undoMove(b *board.Board, m board.Move) {
	b.UnmakeMove(m, &s.states[len(s.states)-1])
	s.states = s.states[:len(s.states)-1]
}

func (s *Searcher) doNull(b *board.Board) {
	s.states = append(s.states, board.StateInfo{})
	b.MakeNullMove(&s.states[len(s.states)-1])
}

func (s *Searcher) undoNull(b *board.Board) {
	b.UnmakeNullMove(&s.states[len(s.states)-1])
	s.states = s.states[:len(s.states)-1]
}

// isRepetition reports whether the current position occurred before
// within the reach of the halfmove clock. A single prior occurrence
// counts as a draw inside the search tree.
func (s *Searcher) isRepetition(b *board.Board) bool {
	key := b.Key()
	n := len(s.states)
	for i := n - 2; i >= 0 && n-i <= b.HalfmoveClock(); i -= 2 {
		if s.states[i].Key == key {
			return true
		}
	}
	return false
}

func (s *Searcher) hasNonPawnMaterial(b *board.Board) bool {
	us := b.SideToMove()
	return b.Pieces(us, board.Knight)|b.Pieces(us, board.Bishop)|
		b.Pieces(us, board.Rook)|b.Pieces(us, board.Queen) != 0
}

func (s *Searcher) checkLimits() {
	if s.limits.Nodes > 0 && s.nodes >= s.limits.Nodes {
		s.signals.Stop()
		return
	}
	if s.limits.Infinite {
		return
	}
	if s.Pondering() {
		if s.timer.HardExpired() {
			s.signals.RaiseStopOnPonderhit()
		}
		return
	}
	if s.timer.HardExpired() {
		s.signals.Stop()
	}
}

func (s *Searcher) updatePV(ply int, m board.Move) {
	s.pv[ply][0] = m
	copy(s.pv[ply][1:], s.pv[ply+1][:s.pvLen[ply+1]])
	s.pvLen[ply] = s.pvLen[ply+1] + 1
}

// Mate scores are stored in the table relative to the probing node, not
// the root, so they stay correct at any depth.
func scoreToTT(v int32, ply int) int32 {
	if v >= MateThreshold {
		return v + int32(ply)
	}
	if v <= -MateThreshold {
		return v - int32(ply)
	}
	return v
}

func scoreFromTT(v int32, ply int) int32 {
	if v >= MateThreshold {
		return v - int32(ply)
	}
	if v <= -MateThreshold {
		return v + int32(ply)
	}
	return v
}
