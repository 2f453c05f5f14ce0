package uci

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer guards a bytes.Buffer so the test can read output written
// from the search goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (sb *syncBuffer) Write(p []byte) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.Write(p)
}

func (sb *syncBuffer) String() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.buf.String()
}

func newTestProtocol() (*Protocol, *syncBuffer) {
	out := &syncBuffer{}
	return New(out), out
}

func waitIdle(t *testing.T, p *Protocol) {
	t.Helper()
	select {
	case <-p.done:
	case <-time.After(10 * time.Second):
		t.Fatalf("search did not finish in time")
	}
}

func TestHandshake(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("uci")
	p.Handle("isready")

	s := out.String()
	for _, want := range []string{
		"id name Gander",
		"id author",
		"option name Hash type spin",
		"option name UCI_Chess960 type check",
		"uciok\n",
		"readyok\n",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("handshake output missing %q:\n%s", want, s)
		}
	}
}

func TestPositionStartposWithMoves(t *testing.T) {
	p, _ := newTestProtocol()
	p.Handle("position startpos moves e2e4 e7e5")

	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if got := p.board.FEN(); got != want {
		t.Errorf("board after replay:\n got %s\nwant %s", got, want)
	}
	if len(p.states) != 2 {
		t.Errorf("state stack depth = %d, want 2", len(p.states))
	}

	// The replayed position and the directly parsed one must agree on
	// the zobrist key.
	direct := mustParse(t, want)
	if p.board.Key() != direct.Key() {
		t.Errorf("replay key %016X != parsed key %016X", p.board.Key(), direct.Key())
	}
}

func TestPositionFEN(t *testing.T) {
	p, _ := newTestProtocol()
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	p.Handle("position fen " + fen)
	if got := p.board.FEN(); got != fen {
		t.Errorf("got %s want %s", got, fen)
	}
}

func TestPositionBadFENKeepsOldPosition(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos moves e2e4")
	before := p.board.FEN()

	p.Handle("position fen this is not a fen")
	if got := p.board.FEN(); got != before {
		t.Errorf("bad FEN replaced the position: %s", got)
	}
	if !strings.Contains(out.String(), "info string") {
		t.Errorf("bad FEN produced no diagnostic")
	}
}

func TestPositionReplayTruncatesOnBadMove(t *testing.T) {
	p, _ := newTestProtocol()
	p.Handle("position startpos moves e2e4 e7e5 a1a5 g1f3")

	// a1a5 is illegal: the replay stops there and keeps what it has.
	want := "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2"
	if got := p.board.FEN(); got != want {
		t.Errorf("truncated replay:\n got %s\nwant %s", got, want)
	}
	if len(p.states) != 2 {
		t.Errorf("state stack depth = %d, want 2", len(p.states))
	}
}

func TestUnknownCommandEchoesWholeLine(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("xyzzy foo bar")
	if got := out.String(); got != "Unknown command: xyzzy foo bar\n" {
		t.Errorf("got %q", got)
	}
}

func TestSetOptionUnknownName(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("setoption name Foo Bar value 1")
	if got := out.String(); got != "No such option: Foo Bar\n" {
		t.Errorf("got %q", got)
	}
}

func TestSetOptionCaseInsensitiveAndApplied(t *testing.T) {
	p, _ := newTestProtocol()
	p.Handle("setoption name hash value 128")
	if got := p.findOption("Hash").Int(); got != 128 {
		t.Errorf("Hash = %d, want 128", got)
	}

	p.Handle("setoption name UCI_Chess960 value true")
	if !p.board.Chess960 {
		t.Errorf("UCI_Chess960 did not reach the board")
	}
	p.Handle("position startpos")
	if !p.board.Chess960 {
		t.Errorf("chess960 mode lost on position reset")
	}
}

func TestSpinOptionClamped(t *testing.T) {
	p, _ := newTestProtocol()
	p.Handle("setoption name MoveOverhead value 999999")
	if got := p.findOption("MoveOverhead").Int(); got != 5000 {
		t.Errorf("MoveOverhead = %d, want clamp to 5000", got)
	}
}

func TestKeyCommandFormat(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("key")
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 || !strings.HasPrefix(lines[0], "position key: ") {
		t.Fatalf("unexpected key output:\n%s", out.String())
	}
	hex := strings.TrimPrefix(lines[0], "position key: ")
	if len(hex) != 16 {
		t.Errorf("position key %q is not 16 hex digits", hex)
	}
}

func TestGoDepthProducesBestmove(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos")
	p.Handle("go depth 2")
	waitIdle(t, p)

	s := out.String()
	if !strings.Contains(s, "info depth 1") {
		t.Errorf("no progress line in output:\n%s", s)
	}
	if strings.Count(s, "bestmove ") != 1 {
		t.Errorf("expected exactly one bestmove:\n%s", s)
	}
}

func TestMutatingCommandsRejectedWhileSearching(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos")
	p.Handle("go infinite")
	if p.SearchIdle() {
		t.Fatalf("search did not start")
	}

	before := p.board.FEN()
	p.Handle("position startpos moves e2e4")
	if p.board.FEN() != before {
		t.Errorf("position changed under a running search")
	}
	if !strings.Contains(out.String(), "command ignored, search still running") {
		t.Errorf("no rejection diagnostic:\n%s", out.String())
	}

	p.Handle("stop")
	waitIdle(t, p)
	if strings.Count(out.String(), "bestmove ") != 1 {
		t.Errorf("infinite search must report exactly one bestmove")
	}
}

// A stop on the very next line after go must end the search even if
// the search goroutine has not been scheduled yet.
func TestStopImmediatelyAfterGo(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos")
	p.Handle("go infinite")
	p.Handle("stop")
	waitIdle(t, p)
	if strings.Count(out.String(), "bestmove ") != 1 {
		t.Errorf("expected exactly one bestmove:\n%s", out.String())
	}
}

func TestStopThenPonderhitDoesNotResume(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos")
	p.Handle("go ponder depth 1")
	p.Handle("stop")
	waitIdle(t, p)
	p.Handle("ponderhit")

	if !p.SearchIdle() {
		t.Errorf("ponderhit after stop restarted the search")
	}
	if strings.Count(out.String(), "bestmove ") != 1 {
		t.Errorf("expected exactly one bestmove:\n%s", out.String())
	}
}

func TestPonderhitAfterTimeoutStops(t *testing.T) {
	p, _ := newTestProtocol()

	// The search raises stopOnPonderhit when time runs out while
	// pondering; the next ponderhit must then turn into a stop.
	p.searcher.Signals().RaiseStopOnPonderhit()
	p.Handle("ponderhit")
	if !p.searcher.Signals().Stopped() {
		t.Errorf("ponderhit with stopOnPonderhit raised did not stop")
	}
}

func TestFlipCommand(t *testing.T) {
	p, _ := newTestProtocol()
	p.Handle("position startpos moves e2e4")
	before := p.board.FEN()
	p.Handle("flip")
	if p.board.FEN() == before {
		t.Errorf("flip left the position unchanged")
	}
	p.Handle("flip")
	if got := p.board.FEN(); got != before {
		t.Errorf("double flip: got %s want %s", got, before)
	}
}

func TestPerftCommand(t *testing.T) {
	p, out := newTestProtocol()
	p.Handle("position startpos")
	p.Handle("perft 2")

	s := out.String()
	if !strings.HasPrefix(s, "a2a3: 20\n") {
		t.Errorf("root moves not sorted by coordinate notation:\n%s", s)
	}
	for _, want := range []string{"e2e4: 20", "g1f3: 20", "Nodes searched: 400"} {
		if !strings.Contains(s, want) {
			t.Errorf("perft output missing %q:\n%s", want, s)
		}
	}
}

func TestRunStopsAtQuit(t *testing.T) {
	p, out := newTestProtocol()
	in := strings.NewReader("isready\nquit\nisready\n")
	p.Run(in)
	if got := strings.Count(out.String(), "readyok"); got != 1 {
		t.Errorf("commands after quit were processed: %q", out.String())
	}
}
