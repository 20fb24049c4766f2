package input

import "github.com/vovakirdan/plus2048/internal/games/t2048/engine"

// Swipe classifies a pointer drag in terminal cells.
type Swipe struct {
	// MinDistance is the shortest drag, in columns, that counts as a swipe.
	MinDistance int
	// RowScale converts rows to columns; terminal cells are about twice
	// as tall as they are wide.
	RowScale int

	pressed bool
	x0, y0  int
}

// DefaultSwipe returns the classifier used by the terminal client.
func DefaultSwipe() *Swipe {
	return &Swipe{MinDistance: 3, RowScale: 2}
}

// Classify maps a drag from (x0, y0) to (x1, y1) to a direction. The
// dominant axis wins. Short drags and exact diagonals are not swipes.
func (s *Swipe) Classify(x0, y0, x1, y1 int) (engine.Direction, bool) {
	scale := max(s.RowScale, 1)
	dx := x1 - x0
	dy := (y1 - y0) * scale
	adx, ady := abs(dx), abs(dy)

	if max(adx, ady) < s.MinDistance || adx == ady {
		return 0, false
	}
	if adx > ady {
		if dx < 0 {
			return engine.Left, true
		}
		return engine.Right, true
	}
	if dy < 0 {
		return engine.Up, true
	}
	return engine.Down, true
}

// Press records where a drag starts.
func (s *Swipe) Press(x, y int) {
	s.pressed = true
	s.x0, s.y0 = x, y
}

// Release ends the drag at (x, y) and classifies it. A release without a
// press is ignored.
func (s *Swipe) Release(x, y int) (engine.Direction, bool) {
	if !s.pressed {
		return 0, false
	}
	s.pressed = false
	return s.Classify(s.x0, s.y0, x, y)
}

// Cancel drops a drag in progress.
func (s *Swipe) Cancel() {
	s.pressed = false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
