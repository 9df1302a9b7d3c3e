package snake

// Segment is one body cell together with the direction it will move on the
// next tick.
type Segment struct {
	Pos Position
	Dir Direction
}

// Body is the ordered list of segments, head at index 0.
type Body []Segment

// newBody lays out length segments trailing behind start. A stationary body
// trails to the left as if it were about to move right.
func newBody(start Position, length int, dir Direction) Body {
	trail := dir.Opposite()
	if dir == DirNone {
		trail = DirLeft
	}
	dx, dy := trail.Delta()

	body := make(Body, length)
	for i := range body {
		body[i] = Segment{
			Pos: Position{X: start.X + i*dx, Y: start.Y + i*dy},
			Dir: dir,
		}
	}
	return body
}

// Head returns the first segment.
func (b Body) Head() Segment {
	return b[0]
}

// Positions returns the segment positions head first.
func (b Body) Positions() []Position {
	out := make([]Position, len(b))
	for i, seg := range b {
		out[i] = seg.Pos
	}
	return out
}

// Occupies reports whether any segment is at p.
func (b Body) Occupies(p Position) bool {
	for _, seg := range b {
		if seg.Pos == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head shares a cell with a trailing segment.
func (b Body) HitsSelf() bool {
	head := b[0].Pos
	for _, seg := range b[1:] {
		if seg.Pos == head {
			return true
		}
	}
	return false
}

// Stationary reports whether the head has no velocity.
func (b Body) Stationary() bool {
	return b[0].Dir == DirNone
}

// steer sets the direction of every segment. Used for the first move of a
// stationary body so the whole line starts together.
func (b Body) steer(d Direction) {
	for i := range b {
		b[i].Dir = d
	}
}

// advance moves every segment one cell. The head uses its own direction; each
// trailing segment moves with the direction it carried into this tick and then
// takes the pre-move direction of the segment ahead of it, so the body retraces
// the head's path. The returned segment is the last one as it was before the
// move, which is where a new tail segment goes on growth.
func (b Body) advance() Segment {
	oldTail := b[len(b)-1]

	ahead := b[0].Dir
	b[0].Pos = b[0].Pos.Add(b[0].Dir)
	for i := 1; i < len(b); i++ {
		own := b[i].Dir
		b[i].Pos = b[i].Pos.Add(own)
		b[i].Dir = ahead
		ahead = own
	}

	return oldTail
}

// grow appends seg as the new last segment.
func (b Body) grow(seg Segment) Body {
	return append(b, seg)
}
