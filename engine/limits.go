package engine

import "gander-engine/board"

// Limits carries the search constraints parsed from a "go" command.
// Zero means "not set" for every numeric field; malformed input on the
// protocol side deliberately leaves fields at their defaults.
type Limits struct {
	WhiteTime int // milliseconds
	BlackTime int
	WhiteInc  int
	BlackInc  int
	MovesToGo int
	Depth     int
	Nodes     uint64
	Mate      int
	MoveTime  int
	Infinite  bool
	Ponder    bool

	// SearchMoves restricts the search to these root moves when
	// non-empty, in input order.
	SearchMoves []board.Move
}

// UseTimeManagement reports whether the clock fields drive the search
// duration rather than an explicit depth/node/movetime bound.
func (l *Limits) UseTimeManagement() bool {
	return l.WhiteTime > 0 || l.BlackTime > 0
}
