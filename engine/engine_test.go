package engine

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"heron-engine/heronmg"
	"heron-engine/uci"
)

// syncBuffer lets the test read output while the worker goroutine writes.
type syncBuffer struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.b.String()
}

func parseOrDie(t *testing.T, line string) uci.Command {
	t.Helper()
	cmd, err := uci.Parse(line)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", line, err)
	}
	return cmd
}

func TestUciHandshake(t *testing.T) {
	var out bytes.Buffer
	eng := New(&out)
	eng.handle(parseOrDie(t, "uci"))
	text := out.String()
	if !strings.Contains(text, "id name ") || !strings.Contains(text, "id author ") {
		t.Fatalf("handshake missing id lines:\n%s", text)
	}
	if !strings.HasSuffix(strings.TrimSpace(text), "uciok") {
		t.Fatalf("handshake must end with uciok:\n%s", text)
	}

	out.Reset()
	eng.handle(parseOrDie(t, "isready"))
	if strings.TrimSpace(out.String()) != "readyok" {
		t.Fatalf("isready answered %q", out.String())
	}
}

func TestPositionCommandReplacesGame(t *testing.T) {
	var out bytes.Buffer
	eng := New(&out)
	eng.handle(parseOrDie(t, "position startpos moves e2e4 e7e5"))
	if eng.game == nil {
		t.Fatalf("position did not create a game")
	}
	if got := eng.game.Plies(); got != 2 {
		t.Fatalf("expected 2 plies applied, got %d", got)
	}
	if eng.game.Latest().SideToMove() != heronmg.White {
		t.Fatalf("side to move should be White after e2e4 e7e5")
	}
}

func TestPositionStopsAtIllegalMove(t *testing.T) {
	var out bytes.Buffer
	eng := New(&out)
	eng.handle(parseOrDie(t, "debug on"))
	eng.handle(parseOrDie(t, "position startpos moves e2e4 e2e4 e7e5"))
	if got := eng.game.Plies(); got != 1 {
		t.Fatalf("replay should stop after the first illegal move, applied %d plies", got)
	}
	if !strings.Contains(out.String(), "illegal move e2e4") {
		t.Fatalf("debug output should name the illegal move:\n%s", out.String())
	}
}

func TestSetOptionIsRecorded(t *testing.T) {
	eng := New(&bytes.Buffer{})
	eng.handle(parseOrDie(t, "setoption name Move Overhead value 30"))
	if eng.options["Move Overhead"] != "30" {
		t.Fatalf("option not recorded: %v", eng.options)
	}
}

func TestUciNewGameDropsState(t *testing.T) {
	eng := New(&bytes.Buffer{})
	eng.handle(parseOrDie(t, "position startpos moves e2e4"))
	eng.handle(parseOrDie(t, "ucinewgame"))
	if eng.game != nil {
		t.Fatalf("ucinewgame must drop the game until the next position command")
	}
}

func TestGoEmitsBestmove(t *testing.T) {
	var out bytes.Buffer
	eng := New(&out)
	eng.handle(parseOrDie(t, "position startpos"))
	eng.handle(parseOrDie(t, "go depth 2"))
	last := lastLine(out.String())
	if !strings.HasPrefix(last, "bestmove ") {
		t.Fatalf("go must end with a bestmove line, got %q", last)
	}
	move := strings.Fields(last)[1]
	pos, _ := heronmg.ParseFEN(heronmg.FENStartPos)
	if _, ok := findLegalMove(&pos, move); !ok {
		t.Fatalf("bestmove %q is not legal from the start position", move)
	}
}

func TestGoOnMatePositionEmitsNullMove(t *testing.T) {
	var out bytes.Buffer
	eng := New(&out)
	// Fool's mate: White is mated, no legal moves remain.
	eng.handle(parseOrDie(t, "position startpos moves f2f3 e7e5 g2g4 d8h4"))
	eng.handle(parseOrDie(t, "go depth 2"))
	if got := lastLine(out.String()); got != "bestmove 0000" {
		t.Fatalf("expected the null move on a terminal position, got %q", got)
	}
}

func TestInfiniteSearchStopsOnStop(t *testing.T) {
	out := &syncBuffer{}
	eng := New(out)
	queue := eng.Queue()

	doneRun := make(chan struct{})
	go func() {
		eng.Run()
		close(doneRun)
	}()

	queue.Enqueue(parseOrDie(t, "position startpos"))
	queue.Enqueue(parseOrDie(t, "go infinite"))
	// Let the search spin up before cancelling it.
	time.Sleep(100 * time.Millisecond)

	stopAt := time.Now()
	queue.Enqueue(parseOrDie(t, "stop"))
	queue.Enqueue(parseOrDie(t, "quit"))

	select {
	case <-doneRun:
	case <-time.After(5 * time.Second):
		t.Fatalf("engine did not shut down after stop+quit")
	}
	elapsed := time.Since(stopAt)

	text := out.String()
	var bestLine string
	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(line, "bestmove ") {
			bestLine = line
		}
	}
	if bestLine == "" {
		t.Fatalf("no bestmove after stop:\n%s", text)
	}
	move := strings.Fields(bestLine)[1]
	pos, _ := heronmg.ParseFEN(heronmg.FENStartPos)
	if _, ok := findLegalMove(&pos, move); !ok {
		t.Fatalf("bestmove %q after stop is not a legal root move", move)
	}
	// The poll budget is documented as tens of milliseconds; a second is
	// generous headroom for loaded CI machines.
	if elapsed > time.Second {
		t.Fatalf("stop took %v to produce bestmove", elapsed)
	}
}

func TestIsReadyAnsweredDuringSearch(t *testing.T) {
	out := &syncBuffer{}
	eng := New(out)
	queue := eng.Queue()

	doneRun := make(chan struct{})
	go func() {
		eng.Run()
		close(doneRun)
	}()

	queue.Enqueue(parseOrDie(t, "position startpos"))
	queue.Enqueue(parseOrDie(t, "go infinite"))
	time.Sleep(100 * time.Millisecond)
	queue.Enqueue(parseOrDie(t, "isready"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(out.String(), "readyok") {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}
	if !strings.Contains(out.String(), "readyok") {
		t.Fatalf("isready not answered while searching:\n%s", out.String())
	}
	// readyok must arrive while the search is still running, before any
	// bestmove.
	if strings.Contains(out.String(), "bestmove") {
		t.Fatalf("search ended before isready was answered:\n%s", out.String())
	}

	queue.Enqueue(parseOrDie(t, "stop"))
	queue.Enqueue(parseOrDie(t, "quit"))
	select {
	case <-doneRun:
	case <-time.After(5 * time.Second):
		t.Fatalf("engine did not shut down")
	}
}

func TestQueueOrderingAndTryDequeue(t *testing.T) {
	q := NewCommandQueue(4)
	q.Enqueue(uci.Command{Kind: uci.KindUci})
	q.Enqueue(uci.Command{Kind: uci.KindIsReady})

	cmd, ok := q.TryDequeue()
	if !ok || cmd.Kind != uci.KindUci {
		t.Fatalf("queue is not FIFO: %+v ok=%v", cmd, ok)
	}
	cmd, ok = q.Dequeue()
	if !ok || cmd.Kind != uci.KindIsReady {
		t.Fatalf("dequeue broke ordering: %+v ok=%v", cmd, ok)
	}
	if _, ok := q.TryDequeue(); ok {
		t.Fatalf("try-dequeue on an empty queue must not block or succeed")
	}

	q.Close()
	if q.Enqueue(uci.Command{Kind: uci.KindQuit}) {
		t.Fatalf("enqueue after close must fail")
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("dequeue after close with empty buffer must report closure")
	}
}

func TestQueueDrainsBufferedCommandsAfterClose(t *testing.T) {
	q := NewCommandQueue(4)
	q.Enqueue(uci.Command{Kind: uci.KindUci})
	q.Close()
	cmd, ok := q.Dequeue()
	if !ok || cmd.Kind != uci.KindUci {
		t.Fatalf("buffered command lost on close: %+v ok=%v", cmd, ok)
	}
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return lines[len(lines)-1]
}
