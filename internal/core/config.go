package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Difficulty level reached
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// Event is something notable that happened during a step.
type Event int

const (
	EventNone Event = iota
	EventAte
	EventLevelUp
	EventGameOver
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventAte:
		return "ate"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "none"
	}
}

// StepResult is returned by Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether e occurred during the step.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}
