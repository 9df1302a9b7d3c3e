package snake

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: seed, ScreenW: 80, ScreenH: 24})
	if g.Session() == nil {
		t.Fatal("expected a session on an 80x24 screen")
	}
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	for i := 0; i < 100; i++ {
		input := core.NewInputFrame()
		switch i {
		case 20:
			input.Set(core.ActionDown)
		case 30:
			input.Set(core.ActionLeft)
		case 40:
			input.Set(core.ActionUp)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1, ok1 := g1.Snapshot()
	snap2, ok2 := g2.Snapshot()
	if !ok1 || !ok2 {
		t.Fatal("expected snapshots from both games")
	}
	if !reflect.DeepEqual(snap1, snap2) {
		t.Errorf("snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
}

func TestBoardFitsScreen(t *testing.T) {
	g := newTestGame(t, 1)

	b := g.Session().Bounds()
	if b.Width() != 78 || b.Height() != 20 {
		t.Errorf("board = %dx%d, expected 78x20 inside the frame and HUD", b.Width(), b.Height())
	}
	if g.Interval() != 160*time.Millisecond {
		t.Errorf("Interval() = %s, expected 160ms", g.Interval())
	}
}

func TestConfiguredBoardIsCentred(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 10, Height: 10}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if b := g.Session().Bounds(); b.Width() != 10 || b.Height() != 10 {
		t.Fatalf("board = %dx%d, expected 10x10", b.Width(), b.Height())
	}
	if g.board.X != 35 {
		t.Errorf("board x offset = %d, expected 35", g.board.X)
	}
}

func TestStepAppliesLastDirection(t *testing.T) {
	g := newTestGame(t, 7)
	s := g.Session()
	putFood(s, Position{0, 0})
	head := s.Snapshot().Head()

	g.Step(frame(core.ActionUp, core.ActionDown))

	if s.HeadDirection() != DirDown {
		t.Errorf("head direction = %v, expected down (last press)", s.HeadDirection())
	}
	if got := s.Snapshot().Head(); got != head.Add(DirDown) {
		t.Errorf("head at %v, expected %v", got, head.Add(DirDown))
	}
}

func TestStepPauseToggle(t *testing.T) {
	g := newTestGame(t, 8)

	res := g.Step(frame(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("expected paused state")
	}
	before := g.Session().Snapshot()
	for range 3 {
		g.Step(core.NewInputFrame())
	}
	if !reflect.DeepEqual(before, g.Session().Snapshot()) {
		t.Error("game advanced while paused")
	}

	res = g.Step(frame(core.ActionPause))
	if res.State.Paused {
		t.Error("expected the second toggle to resume")
	}
}

func TestStepReportsEvents(t *testing.T) {
	g := newTestGame(t, 9)
	s := g.Session()
	putFood(s, s.Snapshot().Head().Add(DirRight))

	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventAte) {
		t.Errorf("expected EventAte, got %v", res.Events)
	}
	if res.State.Score != 100 {
		t.Errorf("score = %d, expected 100", res.State.Score)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, 10)
	s := g.Session()
	putFood(s, Position{0, 0})
	s.score = 400

	// Run into the right wall
	var res core.StepResult
	for range 100 {
		res = g.Step(core.NewInputFrame())
		if res.State.GameOver {
			break
		}
	}
	if !res.State.GameOver || !res.Has(core.EventGameOver) {
		t.Fatalf("expected game over with an event, got %+v", res)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over! Your score is 400") {
		t.Error("game over overlay should show the final score")
	}

	res = g.Step(frame(core.ActionRestart))
	if !res.Has(core.EventRestart) {
		t.Errorf("expected EventRestart, got %v", res.Events)
	}
	if g.Session() == s {
		t.Error("restart should create a new session")
	}
	if res.State.GameOver || res.State.Score != 0 || g.Session().Level() != 0 {
		t.Errorf("restarted game carried state over: %+v", res.State)
	}
}

func TestRestartIgnoredWhileRunning(t *testing.T) {
	g := newTestGame(t, 11)
	s := g.Session()

	g.Step(frame(core.ActionRestart))
	if g.Session() != s {
		t.Error("restart should only apply after game over")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5})

	if !g.TooSmall() || g.Session() != nil {
		t.Fatal("Game should detect window is too small")
	}

	res := g.Step(frame(core.ActionRight))
	if res.State.GameOver {
		t.Error("a too-small window is not a game over")
	}

	screen := core.NewScreen(30, 8)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small overlay")
	}
}

func TestConfiguredBoardLargerThanScreen(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 100, Height: 10}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if !g.TooSmall() {
		t.Error("a 100-wide board cannot fit an 80-wide screen")
	}
}

func TestStartPositionKeepsBodyOnBoard(t *testing.T) {
	b := NewBounds(6, 6)
	for _, dir := range []Direction{DirUp, DirDown, DirLeft, DirRight, DirNone} {
		start := startPosition(b, 5, dir)
		for i, seg := range newBody(start, 5, dir) {
			if !b.Contains(seg.Pos) {
				t.Errorf("%v: segment %d at %v is off the board", dir, i, seg.Pos)
			}
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 444)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	content := screen.String()

	if !strings.HasPrefix(screen.Row(0), " "+g.Title()+" │") || !strings.Contains(content, "Score: 0") {
		t.Error("HUD should contain the title and score")
	}
	if !strings.Contains(content, "O") || !strings.Contains(content, "ooo") {
		t.Error("expected the head and body on screen")
	}
	if !strings.Contains(content, "*") {
		t.Error("expected food on screen")
	}

	head := g.Session().Snapshot().Head()
	x, y := g.toScreen(head)
	if cell := screen.GetCell(x, y); cell.Rune != 'O' || cell.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected a green 'O'", cell)
	}
	if screen.Get(0, 2) != '┌' {
		t.Errorf("expected the frame corner at (0,2), got %q", screen.Get(0, 2))
	}
}

func TestRenderPaused(t *testing.T) {
	g := newTestGame(t, 5)
	g.Step(frame(core.ActionPause))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Error("expected the pause overlay")
	}
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t, 3)
	if !strings.Contains(g.DebugState(), "State: running") {
		t.Errorf("DebugState() = %q", g.DebugState())
	}
}

func TestResizeKeepsFixedBoardSession(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.BoardConfig{Width: 20, Height: 10}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})
	s := g.Session()
	g.Step(core.NewInputFrame())

	g.Resize(100, 30)
	if g.Session() != s {
		t.Fatal("a fixed-size board should keep its session across a resize")
	}
	if g.board.X != 40 {
		t.Errorf("board x offset = %d, expected 40 after re-centring", g.board.X)
	}
}

func TestResizeTooSmallFreezesSession(t *testing.T) {
	g := newTestGame(t, 2)
	s := g.Session()
	tick := s.Tick()

	g.Resize(10, 5)
	if !g.TooSmall() {
		t.Fatal("expected the too-small flag")
	}
	g.Step(core.NewInputFrame())
	if s.Tick() != tick {
		t.Error("session advanced while the screen was too small")
	}

	g.Resize(80, 24)
	if g.TooSmall() || g.Session() != s {
		t.Error("restoring the size should resume the same session")
	}
}

func TestResizeRebuildsFittedBoard(t *testing.T) {
	g := newTestGame(t, 3)
	s := g.Session()

	g.Resize(60, 20)
	if g.Session() == s {
		t.Fatal("a board fitted to the screen should be rebuilt")
	}
	if b := g.Session().Bounds(); b.Width() != 58 || b.Height() != 16 {
		t.Errorf("board = %dx%d, expected 58x16", b.Width(), b.Height())
	}
}
