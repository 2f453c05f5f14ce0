package uci

import (
	"fmt"

	"gander-engine/engine"
)

// FormatScore converts an internal search score to the UCI form:
// "cp <x>" in centipawns, or "mate <y>" in moves (not plies) with the
// sign of the mating side. A " lowerbound"/" upperbound" suffix marks a
// score clamped against the aspiration window.
func FormatScore(v, alpha, beta int32) string {
	var s string
	if v < engine.MateThreshold && v > -engine.MateThreshold {
		s = fmt.Sprintf("cp %d", v*100/engine.PawnValueEG)
	} else if v > 0 {
		s = fmt.Sprintf("mate %d", (engine.Checkmate-v+1)/2)
	} else {
		s = fmt.Sprintf("mate %d", (-engine.Checkmate-v)/2)
	}
	if v >= beta {
		s += " lowerbound"
	} else if v <= alpha {
		s += " upperbound"
	}
	return s
}
