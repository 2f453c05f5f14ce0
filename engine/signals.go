package engine

import "sync/atomic"

// Signals is the cross-thread handshake between the command loop and a
// running search. Stop asks the search to return as soon as it polls
// the flag; StopOnPonderhit is raised by the search itself when the
// allotted time runs out while pondering, so that the next "ponderhit"
// is treated as a stop. The wake channel releases a search that is
// blocked waiting for a stop (infinite or ponder searches that have
// exhausted their depth).
type Signals struct {
	stop            atomic.Bool
	stopOnPonderhit atomic.Bool
	wake            chan struct{}
}

func newSignals() *Signals {
	return &Signals{wake: make(chan struct{}, 1)}
}

// Reset clears both flags; called at the start of every search.
func (s *Signals) Reset() {
	s.stop.Store(false)
	s.stopOnPonderhit.Store(false)
}

// Stop raises the stop flag and wakes a blocked search.
func (s *Signals) Stop() {
	s.stop.Store(true)
	s.Wake()
}

// Stopped reports whether a stop has been requested.
func (s *Signals) Stopped() bool { return s.stop.Load() }

// RaiseStopOnPonderhit marks that the search ran out of time while
// pondering and must stop as soon as the ponderhit arrives.
func (s *Signals) RaiseStopOnPonderhit() { s.stopOnPonderhit.Store(true) }

// StopOnPonderhit reports whether the next ponderhit must stop the search.
func (s *Signals) StopOnPonderhit() bool { return s.stopOnPonderhit.Load() }

// Wake releases the search thread from a blocking wait, if any.
func (s *Signals) Wake() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
