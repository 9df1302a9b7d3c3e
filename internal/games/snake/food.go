package snake

import "math/rand"

// DefaultRespawnAttempts is how many random cells are tried before placement
// falls back to scanning the board for free cells.
const DefaultRespawnAttempts = 64

// placeFood picks a uniformly random cell inside bounds that the body does not
// occupy. Random draws are tried first; when they keep landing on the body the
// free cells are collected and one of them is chosen. ok is false when the
// body covers the whole board.
func placeFood(rng *rand.Rand, bounds Bounds, body Body, attempts int) (Position, bool) {
	if bounds.Cells() == 0 {
		return Position{}, false
	}

	for range attempts {
		p := Position{
			X: bounds.MinX + rng.Intn(bounds.Width()),
			Y: bounds.MinY + rng.Intn(bounds.Height()),
		}
		if !body.Occupies(p) {
			return p, true
		}
	}

	free := freeCells(bounds, body)
	if len(free) == 0 {
		return Position{}, false
	}
	return free[rng.Intn(len(free))], true
}

// freeCells lists every in-bounds cell not covered by the body, row by row.
func freeCells(bounds Bounds, body Body) []Position {
	occupied := make(map[Position]bool, len(body))
	for _, seg := range body {
		occupied[seg.Pos] = true
	}

	var cells []Position
	for y := bounds.MinY; y <= bounds.MaxY; y++ {
		for x := bounds.MinX; x <= bounds.MaxX; x++ {
			p := Position{X: x, Y: y}
			if !occupied[p] {
				cells = append(cells, p)
			}
		}
	}
	return cells
}
