package snake

import (
	"fmt"
	"strings"
)

// Position is a cell on the grid. Coordinates are signed so a step past the
// lower edge lands on -1 and is caught by the bounds check.
type Position struct {
	X, Y int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Bounds is the inclusive playable rectangle.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// NewBounds returns a zero-origin board of the given size.
func NewBounds(width, height int) Bounds {
	return Bounds{MinX: 0, MaxX: width - 1, MinY: 0, MaxY: height - 1}
}

// Contains reports whether p lies inside the rectangle on both axes.
func (b Bounds) Contains(p Position) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the number of columns.
func (b Bounds) Width() int {
	return b.MaxX - b.MinX + 1
}

// Height returns the number of rows.
func (b Bounds) Height() int {
	return b.MaxY - b.MinY + 1
}

// Cells returns the number of cells on the board.
func (b Bounds) Cells() int {
	if b.Width() <= 0 || b.Height() <= 0 {
		return 0
	}
	return b.Width() * b.Height()
}

// Direction is an axis-aligned unit step. DirNone is the zero velocity of a
// snake that has not started moving.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit displacement. Up decreases Y (screen rows).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseDirection converts a config value such as "right" into a Direction.
// An empty string or "none" yields DirNone.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DirNone, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirNone, fmt.Errorf("snake: unknown direction %q", s)
}
