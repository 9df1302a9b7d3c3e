// Package snake implements the grid snake simulation and its terminal game
// adapter. The simulation (Session) is pure: it owns no timers and does no
// I/O. The Game type drives a Session from platform input frames and draws it
// into a core.Screen.
package snake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight    = 2 // Score line and separator
	frameWidth   = 1 // Border around the board
	minBoardSide = 3
)

// Game adapts a Session to the platform: it maps actions to commands, keeps
// the board centred on the screen and renders state.
type Game struct {
	cfg     config.SnakeConfig
	rng     *rand.Rand
	session *Session

	screenW  int
	screenH  int
	board    core.Rect // Playable cells in screen coordinates
	tooSmall bool
}

// New creates a Snake game with the given configuration. Call Reset before
// the first Step.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset sizes the board for the screen and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout()
	g.newSession()
}

// layout computes the board rectangle, or flags the screen as too small.
func (g *Game) layout() {
	w := g.cfg.Board.Width
	if w <= 0 {
		w = g.screenW - 2*frameWidth
	}
	h := g.cfg.Board.Height
	if h <= 0 {
		h = g.screenH - hudHeight - 2*frameWidth
	}

	g.tooSmall = w < minBoardSide || h < minBoardSide ||
		w+2*frameWidth > g.screenW || h+2*frameWidth+hudHeight > g.screenH
	if g.tooSmall {
		g.board = core.Rect{}
		return
	}

	frame := core.NewRect(
		(g.screenW-w)/2-frameWidth,
		hudHeight+(g.screenH-hudHeight-h-2*frameWidth)/2,
		w+2*frameWidth,
		h+2*frameWidth,
	)
	g.board = frame.Inset(frameWidth)
}

// Resize re-centres the board for a new screen size. The running session
// survives when its board size is unchanged; otherwise a new one starts.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout()
	if g.tooSmall {
		return
	}
	if g.session != nil {
		b := g.session.Bounds()
		if b.Width() == g.board.W && b.Height() == g.board.H {
			return
		}
	}
	g.newSession()
}

// newSession replaces the session. Nothing carries over from the old one.
func (g *Game) newSession() {
	g.session = nil
	if g.tooSmall {
		return
	}

	bounds := NewBounds(g.board.W, g.board.H)
	dir, err := ParseDirection(g.cfg.Snake.StartingDirection)
	if err != nil {
		dir = DirRight
	}
	length := g.cfg.Snake.StartingLength
	start := startPosition(bounds, length, dir)

	settings := Settings{
		BaseInterval:   g.cfg.Difficulty.BaseInterval,
		IntervalStep:   g.cfg.Difficulty.IntervalStep,
		PointsPerLevel: g.cfg.Difficulty.PointsPerLevel,
		MaxLevel:       g.cfg.Difficulty.EffectiveMaxLevel(),
	}

	s, err := NewSession(bounds, length, start, dir,
		WithRand(rand.New(rand.NewSource(g.rng.Int63()))),
		WithDifficulty(settings),
		WithPointsPerFood(g.cfg.Scoring.PointsPerFood),
		WithRespawnAttempts(g.cfg.Food.RespawnAttempts),
	)
	if err != nil {
		// The body does not fit this board
		g.tooSmall = true
		return
	}
	g.session = s
}

// startPosition centres the head, shifted so that the body trailing behind
// it stays on the board.
func startPosition(b Bounds, length int, dir Direction) Position {
	p := Position{X: b.MinX + b.Width()/2, Y: b.MinY + b.Height()/2}
	switch dir {
	case DirLeft:
		p.X = min(p.X, b.MaxX-(length-1))
	case DirUp:
		p.Y = min(p.Y, b.MaxY-(length-1))
	case DirDown:
		p.Y = max(p.Y, b.MinY+length-1)
	default: // Right and stationary bodies trail to the left
		p.X = max(p.X, b.MinX+length-1)
	}
	return p
}

// Step applies the frame's actions in order and advances the session by one
// tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && g.session != nil && g.session.IsGameOver() {
		g.newSession()
		return core.StepResult{State: g.State(), Events: []core.Event{core.EventRestart}}
	}

	if g.session == nil || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range input.Actions() {
		switch a {
		case core.ActionUp:
			g.session.SetDirection(DirUp)
		case core.ActionDown:
			g.session.SetDirection(DirDown)
		case core.ActionLeft:
			g.session.SetDirection(DirLeft)
		case core.ActionRight:
			g.session.SetDirection(DirRight)
		case core.ActionPause:
			g.session.TogglePause()
		}
	}

	tr := g.session.AdvanceTick()

	var events []core.Event
	if tr.Ate {
		events = append(events, core.EventAte)
	}
	if tr.LevelUp {
		events = append(events, core.EventLevelUp)
	}
	if tr.Ended {
		events = append(events, core.EventGameOver)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		GameOver: g.session.IsGameOver(),
		Paused:   g.session.State() == StatePaused,
	}
}

// Interval returns the delay before the next Step. A game without a session
// (terminal too small) polls at the configured base interval.
func (g *Game) Interval() time.Duration {
	if g.session == nil {
		return g.cfg.Difficulty.BaseInterval
	}
	return g.session.Interval()
}

// Session exposes the current session. It is nil when no board fit the
// screen at the last reset.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot copies the session state. ok is false without a session.
func (g *Game) Snapshot() (snap Snapshot, ok bool) {
	if g.session == nil {
		return Snapshot{}, false
	}
	return g.session.Snapshot(), true
}

// TooSmall reports whether the screen cannot hold the board.
func (g *Game) TooSmall() bool {
	return g.tooSmall
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil || g.tooSmall {
		g.renderHUD(dst, g.State().Score, g.State().Level, g.Interval())
		g.renderOverlay(dst, "Window too small", "Resize to continue", core.ColorYellow)
		return
	}

	snap, _ := g.Snapshot()
	g.renderHUD(dst, snap.Score, snap.Level, snap.Interval)

	dst.DrawBox(g.frame(), core.ColorGray)

	if snap.HasFood {
		x, y := g.toScreen(snap.Food)
		dst.SetColor(x, y, '*', core.ColorBrightRed)
	}
	g.renderSnake(dst, snap.Snake)

	switch snap.State {
	case StateGameOver:
		g.renderOverlay(dst, g.session.GameOverMessage(), "Press R to restart", core.ColorRed)
	case StatePaused:
		g.renderOverlay(dst, g.session.PauseMessage(), "Press P to continue", core.ColorYellow)
	}
}

// frame is the board rectangle grown by the border.
func (g *Game) frame() core.Rect {
	return core.NewRect(g.board.X-frameWidth, g.board.Y-frameWidth,
		g.board.W+2*frameWidth, g.board.H+2*frameWidth)
}

func (g *Game) toScreen(p Position) (int, int) {
	b := g.session.Bounds()
	return g.board.X + p.X - b.MinX, g.board.Y + p.Y - b.MinY
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, score, level int, interval time.Duration) {
	hud := fmt.Sprintf(" %s │ Score: %d │ Level: %d │ Speed: %dms", g.Title(), score, level, interval.Milliseconds())
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderSnake draws the body tail first so the head stays visible.
func (g *Game) renderSnake(dst *core.Screen, body []Position) {
	for i := len(body) - 1; i >= 0; i-- {
		x, y := g.toScreen(body[i])
		if !g.board.Contains(x, y) {
			continue
		}
		if i == 0 {
			dst.SetColor(x, y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string, c core.Color) {
	textW := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(
		core.Clamp((dst.Width()-textW-4)/2, 0, dst.Width()),
		core.Clamp((dst.Height()-5)/2, 0, dst.Height()),
		textW+4, 5,
	)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	_, cy := box.Center()
	dst.DrawTextCentered(cy-1, line1, c)
	dst.DrawTextCentered(cy+1, line2, core.ColorDefault)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	if g.session == nil {
		return "no session (screen too small)\n"
	}
	snap, _ := g.Snapshot()

	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Score: %d, Level: %d, Interval: %s\n", snap.Tick, snap.Score, snap.Level, snap.Interval)
	fmt.Fprintf(&b, "Snake len: %d, Direction: %s\n", len(snap.Snake), snap.HeadDir)
	fmt.Fprintf(&b, "Head: %v, Food: %v (present: %v)\n", snap.Head(), snap.Food, snap.HasFood)
	fmt.Fprintf(&b, "State: %s, Reason: %s\n", snap.State, snap.Reason)
	return b.String()
}
