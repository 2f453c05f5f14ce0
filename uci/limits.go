package uci

import (
	"strconv"

	"gander-engine/board"
	"gander-engine/engine"
)

// ParseLimits is the tolerant parser for the arguments of a "go"
// command. Unrecognized tokens are skipped without effect; malformed
// numbers leave the corresponding field at its zero default.
// "searchmoves" greedily consumes every remaining token as a
// coordinate-notation move, so it has to come last.
func ParseLimits(b *board.Board, args []string) engine.Limits {
	var limits engine.Limits

	intArg := func(i int) int {
		if i+1 >= len(args) {
			return 0
		}
		v, _ := strconv.Atoi(args[i+1])
		return v
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "searchmoves":
			for _, tok := range args[i+1:] {
				if m := MoveFromUCI(b, tok); m != board.MoveNone {
					limits.SearchMoves = append(limits.SearchMoves, m)
				}
			}
			return limits
		case "wtime":
			limits.WhiteTime = intArg(i)
			i++
		case "btime":
			limits.BlackTime = intArg(i)
			i++
		case "winc":
			limits.WhiteInc = intArg(i)
			i++
		case "binc":
			limits.BlackInc = intArg(i)
			i++
		case "movestogo":
			limits.MovesToGo = intArg(i)
			i++
		case "depth":
			limits.Depth = intArg(i)
			i++
		case "nodes":
			limits.Nodes = uint64(intArg(i))
			i++
		case "movetime":
			limits.MoveTime = intArg(i)
			i++
		case "mate":
			limits.Mate = intArg(i)
			i++
		case "infinite":
			limits.Infinite = true
		case "ponder":
			limits.Ponder = true
		}
	}
	return limits
}
