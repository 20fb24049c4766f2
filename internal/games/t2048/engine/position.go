package engine

import (
	"fmt"
	"strings"
)

// Position is a cell coordinate. Row 0 is the top row, Col 0 the left column.
type Position struct {
	Row int
	Col int
}

// P is shorthand for Position{Row: row, Col: col}.
func P(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the neighboring position one cell towards dir.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String returns the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a shift direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all four directions in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection converts a direction name ("up", "DOWN", "l", ...) to a Direction.
func ParseDirection(name string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	case "left", "l":
		return Left, true
	case "right", "r":
		return Right, true
	}
	return Up, false
}

func (d Direction) delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

// vertical reports whether d travels along rows.
func (d Direction) vertical() bool {
	return d == Up || d == Down
}

// increasing reports whether travel increases the travel-axis coordinate.
func (d Direction) increasing() bool {
	return d == Down || d == Right
}

// along returns the coordinate of p on the travel axis of d.
func (d Direction) along(p Position) int {
	if d.vertical() {
		return p.Row
	}
	return p.Col
}

// across returns the coordinate of p on the axis perpendicular to d.
func (d Direction) across(p Position) int {
	if d.vertical() {
		return p.Col
	}
	return p.Row
}

// ahead reports whether target lies strictly beyond src in direction d,
// on the same line.
func (d Direction) ahead(src, target Position) bool {
	if d.across(src) != d.across(target) {
		return false
	}
	if d.increasing() {
		return d.along(target) > d.along(src)
	}
	return d.along(target) < d.along(src)
}
