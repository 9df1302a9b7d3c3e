package snake

import "time"

// Settings controls how the tick interval shrinks as the score grows.
type Settings struct {
	BaseInterval   time.Duration // Interval at level 0
	IntervalStep   time.Duration // Subtracted per level
	PointsPerLevel int           // Score needed for each level
	MaxLevel       int           // Highest level; 0 disables scaling
}

// DefaultSettings returns the classic pacing: 160ms, 20ms faster every 500
// points, capped at level 6.
func DefaultSettings() Settings {
	return Settings{
		BaseInterval:   160 * time.Millisecond,
		IntervalStep:   20 * time.Millisecond,
		PointsPerLevel: 500,
		MaxLevel:       6,
	}
}

// minInterval keeps a misconfigured step from producing a non-positive tick.
const minInterval = time.Millisecond

// Difficulty tracks the level reached so far and the resulting tick interval.
type Difficulty struct {
	settings Settings
	level    int
	interval time.Duration
}

// NewDifficulty starts at level 0.
func NewDifficulty(s Settings) *Difficulty {
	d := &Difficulty{settings: s}
	d.interval = d.intervalFor(0)
	return d
}

// LevelFor returns the clamped level for a score.
func (d *Difficulty) LevelFor(score int) int {
	if d.settings.PointsPerLevel <= 0 || d.settings.MaxLevel <= 0 || score <= 0 {
		return 0
	}
	return min(score/d.settings.PointsPerLevel, d.settings.MaxLevel)
}

// Observe updates the level from the current score. It reports true when the
// level went up. A lower computed level is ignored.
func (d *Difficulty) Observe(score int) bool {
	level := d.LevelFor(score)
	if level <= d.level {
		return false
	}
	d.level = level
	d.interval = d.intervalFor(level)
	return true
}

// Level returns the highest level observed.
func (d *Difficulty) Level() int {
	return d.level
}

// Interval returns the tick interval for the current level.
func (d *Difficulty) Interval() time.Duration {
	return d.interval
}

func (d *Difficulty) intervalFor(level int) time.Duration {
	iv := d.settings.BaseInterval - time.Duration(level)*d.settings.IntervalStep
	if iv < minInterval {
		iv = minInterval
	}
	return iv
}
