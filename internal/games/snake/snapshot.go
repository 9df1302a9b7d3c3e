package snake

import "time"

// Snapshot is a read-only copy of everything a renderer needs. It is also
// compared across runs in determinism tests.
type Snapshot struct {
	Tick     uint64
	Snake    []Position // Head first
	HeadDir  Direction
	Food     Position
	HasFood  bool
	Score    int
	Level    int
	Interval time.Duration
	State    State
	Reason   Reason
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:     s.tick,
		Snake:    s.body.Positions(),
		HeadDir:  s.body.Head().Dir,
		Food:     s.food,
		HasFood:  s.hasFood,
		Score:    s.score,
		Level:    s.difficulty.Level(),
		Interval: s.difficulty.Interval(),
		State:    s.state,
		Reason:   s.reason,
	}
}

// Head returns the head position.
func (sn Snapshot) Head() Position {
	if len(sn.Snake) == 0 {
		return Position{}
	}
	return sn.Snake[0]
}
