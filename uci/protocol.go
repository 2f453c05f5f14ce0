package uci

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"gander-engine/board"
	"gander-engine/engine"
)

// Protocol is the UCI command dispatcher. It owns the single persistent
// position and its setup state stack, and coordinates with at most one
// running search through the searcher's Signals. Commands arrive one
// line at a time; no line ever aborts the loop.
type Protocol struct {
	name    string
	version string
	author  string

	board    *board.Board
	states   []board.StateInfo
	searcher *engine.Searcher
	options  []*Option

	out   io.Writer
	outMu sync.Mutex

	// done is closed when no search is running. The dispatcher thread
	// replaces it on every "go"; the search goroutine closes it.
	done chan struct{}
}

// New builds a protocol handler writing responses to out.
func New(out io.Writer) *Protocol {
	b, _ := board.ParseFEN(board.StartposFEN)
	p := &Protocol{
		name:    "Gander",
		version: "0.3",
		author:  "the Gander developers",
		board:   b,
		out:     out,
		done:    make(chan struct{}),
	}
	close(p.done)
	p.searcher = engine.NewSearcher(0)
	p.searcher.Progress = p.printInfo
	p.initOptions()
	return p
}

// Run reads commands line by line until "quit" or EOF. A search still
// running at exit is stopped and drained first.
func (p *Protocol) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if !p.Handle(scanner.Text()) {
			break
		}
	}
	p.searcher.Signals().Stop()
	<-p.done
}

// Handle processes a single command line and reports whether the loop
// should continue (false only after "quit").
func (p *Protocol) Handle(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "quit":
		p.searcher.Signals().Stop()
		return false
	case "stop":
		p.searcher.Signals().Stop()
	case "ponderhit":
		// If time ran out while pondering the search is only waiting
		// for this command to stop; otherwise it continues as a
		// normal search.
		if p.searcher.Signals().StopOnPonderhit() {
			p.searcher.Signals().Stop()
		} else {
			p.searcher.PonderHit()
		}
	case "uci":
		p.printf("id name %s %s\n", p.name, p.version)
		p.printf("id author %s\n", p.author)
		for _, o := range p.options {
			p.printf("%s\n", o.describe())
		}
		p.printf("uciok\n")
	case "isready":
		p.printf("readyok\n")
	case "ucinewgame":
		if p.requireIdle() {
			p.searcher.NewGame()
		}
	case "position":
		if p.requireIdle() {
			p.position(args)
		}
	case "go":
		p.goCommand(args)
	case "setoption":
		if p.requireIdle() {
			p.setOption(args)
		}
	case "d":
		p.printf("%s\n", p.board.Pretty())
	case "key":
		p.printf("position key: %016X\nmaterial key: %016X\npawn key:     %016X\n",
			p.board.Key(), p.board.MaterialKey(), p.board.PawnKey())
	case "eval":
		p.printf("%s\n", engine.TraceEval(p.board))
	case "flip":
		if p.requireIdle() {
			p.board.Flip()
		}
	case "perft":
		p.perft(args)
	case "bench":
		p.bench(args)
	default:
		p.printf("Unknown command: %s\n", line)
	}
	return true
}

// SearchIdle reports whether no search is currently running.
func (p *Protocol) SearchIdle() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// requireIdle guards the commands that mutate the position or the
// engine configuration. The UCI contract says the controller stops the
// search first; rather than race on shared state when it does not, the
// command degrades to a diagnostic no-op.
func (p *Protocol) requireIdle() bool {
	if p.SearchIdle() {
		return true
	}
	p.printf("info string command ignored, search still running\n")
	return false
}

// position implements "position <fen|startpos> [moves ...]": reset the
// board from the base FEN, then replay the move list, pushing one
// StateInfo per applied move. An undecodable move token silently ends
// the replay.
func (p *Protocol) position(args []string) {
	if len(args) == 0 {
		return
	}

	var fen string
	rest := args[1:]
	switch args[0] {
	case "startpos":
		fen = board.StartposFEN
	case "fen":
		n := len(rest)
		for i, tok := range rest {
			if tok == "moves" {
				n = i
				break
			}
		}
		fen = strings.Join(rest[:n], " ")
		rest = rest[n:]
	default:
		return
	}

	b, err := board.ParseFEN(fen)
	if err != nil {
		p.printf("info string %v\n", err)
		return
	}
	b.Chess960 = p.findOption("UCI_Chess960").Bool()

	states := make([]board.StateInfo, 0, 64)
	if len(rest) > 0 && rest[0] == "moves" {
		for _, tok := range rest[1:] {
			m := MoveFromUCI(b, tok)
			if m == board.MoveNone {
				break
			}
			states = append(states, board.StateInfo{})
			b.MakeMove(m, &states[len(states)-1])
		}
	}

	p.board = b
	p.states = states
}

// goCommand parses the limits and hands the position off to the search
// goroutine. The board is transferred as a copy, the setup state stack
// is transferred as-is: the search extends it for repetition checks.
func (p *Protocol) goCommand(args []string) {
	if !p.requireIdle() {
		return
	}

	limits := ParseLimits(p.board, args)
	overhead := p.findOption("MoveOverhead").Int()

	// Arm on this thread so a stop racing the goroutine startup is
	// seen by the search instead of being wiped by its own reset.
	p.searcher.Arm(limits.Ponder)

	b := *p.board
	states := p.states
	done := make(chan struct{})
	p.done = done

	go func() {
		defer close(done)
		result := p.searcher.Search(&b, limits, states, overhead)
		if result.Ponder != board.MoveNone {
			p.printf("bestmove %s ponder %s\n",
				MoveToUCI(result.Best, b.Chess960), MoveToUCI(result.Ponder, b.Chess960))
		} else {
			p.printf("bestmove %s\n", MoveToUCI(result.Best, b.Chess960))
		}
	}()
}

// setOption implements "setoption name <n...> [value <v...>]"; both the
// name and the value may contain spaces.
func (p *Protocol) setOption(args []string) {
	if len(args) == 0 || args[0] != "name" {
		return
	}
	var nameParts, valueParts []string
	inValue := false
	for _, tok := range args[1:] {
		if !inValue && tok == "value" {
			inValue = true
			continue
		}
		if inValue {
			valueParts = append(valueParts, tok)
		} else {
			nameParts = append(nameParts, tok)
		}
	}
	name := strings.Join(nameParts, " ")

	o := p.findOption(name)
	if o == nil {
		p.printf("No such option: %s\n", name)
		return
	}
	o.Value = strings.Join(valueParts, " ")
	if o.onSet != nil {
		o.onSet(p, o)
	}
}

func (p *Protocol) printInfo(si engine.SearchInfo) {
	ms := si.Time.Milliseconds()
	nps := si.Nodes * 1000 / uint64(ms+1)

	var pv strings.Builder
	for i, m := range si.PV {
		if i > 0 {
			pv.WriteByte(' ')
		}
		pv.WriteString(MoveToUCI(m, p.board.Chess960))
	}
	p.printf("info depth %d score %s nodes %d time %d nps %d pv %s\n",
		si.Depth, FormatScore(si.Score, -engine.Infinity, engine.Infinity),
		si.Nodes, ms, nps, pv.String())
}

func (p *Protocol) printf(format string, a ...any) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	fmt.Fprintf(p.out, format, a...)
}
