package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultPointsPerFood is the score awarded for each food eaten.
const DefaultPointsPerFood = 100

// State is the session's position in its lifecycle.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Reason records what ended the game.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonSelf        // Head ran into the body
	ReasonWall        // Head left the board
)

func (r Reason) String() string {
	switch r {
	case ReasonSelf:
		return "self"
	case ReasonWall:
		return "wall"
	default:
		return "none"
	}
}

// TickResult tells the driver what happened during one AdvanceTick.
type TickResult struct {
	Moved   bool
	Ate     bool
	LevelUp bool
	Ended   bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for food placement.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed seeds a private random source for food placement.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDifficulty replaces the default pacing.
func WithDifficulty(settings Settings) Option {
	return func(s *Session) {
		s.settings = settings
	}
}

// WithPointsPerFood changes the score awarded per food.
func WithPointsPerFood(points int) Option {
	return func(s *Session) {
		s.pointsPerFood = points
	}
}

// WithRespawnAttempts bounds the random draws made before food placement
// scans for free cells.
func WithRespawnAttempts(n int) Option {
	return func(s *Session) {
		s.respawnAttempts = n
	}
}

// Session is one game: it owns the body, the food, the score, the difficulty
// and the lifecycle state. It is not safe for concurrent use; a single driver
// calls SetDirection and TogglePause between ticks and AdvanceTick once per
// Interval.
type Session struct {
	bounds          Bounds
	body            Body
	food            Position
	hasFood         bool
	boardFull       bool
	pending         Direction // Buffered head direction, DirNone when empty
	state           State
	reason          Reason
	score           int
	tick            uint64
	difficulty      *Difficulty
	settings        Settings
	pointsPerFood   int
	respawnAttempts int
	rng             *rand.Rand
}

// NewSession creates a running session with a body of length segments whose
// head is at start, trailing away from dir. The whole body must fit inside
// bounds. The first food is placed immediately.
func NewSession(bounds Bounds, length int, start Position, dir Direction, opts ...Option) (*Session, error) {
	if bounds.Cells() == 0 {
		return nil, fmt.Errorf("snake: empty bounds %+v", bounds)
	}
	if length < 1 {
		return nil, fmt.Errorf("snake: starting length must be at least 1, got %d", length)
	}

	s := &Session{
		bounds:          bounds,
		state:           StateRunning,
		settings:        DefaultSettings(),
		pointsPerFood:   DefaultPointsPerFood,
		respawnAttempts: DefaultRespawnAttempts,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s.body = newBody(start, length, dir)
	for i, seg := range s.body {
		if !bounds.Contains(seg.Pos) {
			return nil, fmt.Errorf("snake: segment %d at %v is outside the board", i, seg.Pos)
		}
	}

	s.difficulty = NewDifficulty(s.settings)
	s.respawnFood()

	return s, nil
}

// SetDirection buffers d for the next tick. Requests are ignored unless the
// session is running. A request that reverses the direction the head moved
// with on the last tick is rejected, unless the body has not started moving.
// When several requests arrive before a tick the last accepted one wins. It
// reports whether d was accepted.
func (s *Session) SetDirection(d Direction) bool {
	if s.state != StateRunning || d == DirNone {
		return false
	}
	if !s.body.Stationary() && d == s.body.Head().Dir.Opposite() {
		return false
	}
	s.pending = d
	return true
}

// TogglePause switches between running and paused. It does nothing once the
// game is over.
func (s *Session) TogglePause() {
	switch s.state {
	case StateRunning:
		s.state = StatePaused
	case StatePaused:
		s.state = StateRunning
	}
}

// AdvanceTick runs one simulation step: apply the buffered direction, move,
// check food then self then walls, grow and respawn food, then update the
// difficulty. It does nothing unless the session is running.
func (s *Session) AdvanceTick() TickResult {
	var res TickResult
	if s.state != StateRunning {
		return res
	}

	s.tick++
	s.applyPending()
	if s.body.Stationary() {
		return res
	}

	oldTail := s.body.advance()
	res.Moved = true
	head := s.body.Head().Pos

	switch {
	case s.hasFood && head == s.food:
		s.consume(oldTail)
		res.Ate = true
	case s.body.HitsSelf():
		s.end(ReasonSelf)
	case !s.bounds.Contains(head):
		s.end(ReasonWall)
	}

	if s.state == StateGameOver {
		res.Ended = true
		return res
	}

	res.LevelUp = s.difficulty.Observe(s.score)
	return res
}

func (s *Session) applyPending() {
	if s.pending == DirNone {
		return
	}
	if s.body.Stationary() {
		s.body.steer(s.pending)
	} else {
		s.body[0].Dir = s.pending
	}
	s.pending = DirNone
}

func (s *Session) consume(oldTail Segment) {
	s.body = s.body.grow(oldTail)
	s.score += s.pointsPerFood
	s.respawnFood()
}

func (s *Session) respawnFood() {
	s.food, s.hasFood = placeFood(s.rng, s.bounds, s.body, s.respawnAttempts)
	s.boardFull = !s.hasFood
}

func (s *Session) end(r Reason) {
	s.state = StateGameOver
	s.reason = r
	s.pending = DirNone
}

// IsGameOver reports whether the session has ended.
func (s *Session) IsGameOver() bool {
	return s.state == StateGameOver
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Reason returns what ended the game, or ReasonNone.
func (s *Session) Reason() Reason {
	return s.reason
}

// Score returns the current score, which is the final score after game over.
func (s *Session) Score() int {
	return s.score
}

// Level returns the difficulty level reached.
func (s *Session) Level() int {
	return s.difficulty.Level()
}

// Interval returns how long the driver should wait before the next tick.
// Read it again after every AdvanceTick.
func (s *Session) Interval() time.Duration {
	return s.difficulty.Interval()
}

// Tick returns the number of ticks run while the session was running.
func (s *Session) Tick() uint64 {
	return s.tick
}

// Bounds returns the board rectangle.
func (s *Session) Bounds() Bounds {
	return s.bounds
}

// Len returns the number of segments.
func (s *Session) Len() int {
	return len(s.body)
}

// HeadDirection returns the direction the head moved with on the last tick.
func (s *Session) HeadDirection() Direction {
	return s.body.Head().Dir
}

// PendingDirection returns the buffered direction, or DirNone.
func (s *Session) PendingDirection() Direction {
	return s.pending
}

// Segments returns a copy of the body, head first.
func (s *Session) Segments() []Segment {
	out := make([]Segment, len(s.body))
	copy(out, s.body)
	return out
}

// Food returns the food position and whether food is on the board.
func (s *Session) Food() (Position, bool) {
	return s.food, s.hasFood
}

// BoardFull reports that the body covers every cell and no food could be
// placed.
func (s *Session) BoardFull() bool {
	return s.boardFull
}

// GameOverMessage returns the text shown when the game ends.
func (s *Session) GameOverMessage() string {
	return fmt.Sprintf("Game Over! Your score is %d", s.score)
}

// PauseMessage returns the text shown while paused.
func (s *Session) PauseMessage() string {
	return "Paused"
}
