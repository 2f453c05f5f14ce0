package engine

import (
	"time"

	"gander-engine/board"
)

// TimeHandler turns the clock fields of a go command into a soft and a
// hard deadline. The soft deadline gates starting another iteration of
// iterative deepening; the hard deadline aborts the search mid-tree.
type TimeHandler struct {
	start     time.Time
	softLimit time.Duration
	hardLimit time.Duration
	managed   bool
	overhead  int // milliseconds reserved for protocol I/O jitter
}

const defaultMoveOverhead = 30

// Start arms the handler for a new search.
func (th *TimeHandler) Start(limits *Limits, stm board.Color, overheadMs int) {
	th.start = time.Now()
	th.managed = false
	th.softLimit = 0
	th.hardLimit = 0
	th.overhead = overheadMs
	if th.overhead <= 0 {
		th.overhead = defaultMoveOverhead
	}

	if limits.MoveTime > 0 {
		th.managed = true
		hard := Max(limits.MoveTime-th.overhead, 1)
		th.softLimit = time.Duration(hard) * time.Millisecond
		th.hardLimit = th.softLimit
		return
	}
	if !limits.UseTimeManagement() {
		return
	}

	remaining, inc := limits.WhiteTime, limits.WhiteInc
	if stm == board.Black {
		remaining, inc = limits.BlackTime, limits.BlackInc
	}

	movesToGo := limits.MovesToGo
	if movesToGo <= 0 {
		movesToGo = 40
	}

	alloc := remaining/movesToGo + inc
	alloc = Min(alloc, remaining*7/10)
	alloc = Min(alloc, remaining-th.overhead)
	alloc = Max(alloc, 1)

	th.managed = true
	th.softLimit = time.Duration(alloc) * time.Millisecond * 6 / 10
	th.hardLimit = time.Duration(alloc) * time.Millisecond
}

// Elapsed returns the time since the search started.
func (th *TimeHandler) Elapsed() time.Duration { return time.Since(th.start) }

// HardExpired reports whether the search must abort now.
func (th *TimeHandler) HardExpired() bool {
	return th.managed && th.Elapsed() >= th.hardLimit
}

// SoftExpired reports whether starting another iteration is pointless.
func (th *TimeHandler) SoftExpired() bool {
	return th.managed && th.Elapsed() >= th.softLimit
}
