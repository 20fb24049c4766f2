package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Board is an N×N grid of cells. Each cell is empty, holds a tile value,
// or is a hazard (black hole). Hazards never hold a value.
type Board struct {
	size    int
	values  []int // row-major, 0 = empty
	hazards []bool
}

// NewBoard creates an empty size×size board.
func NewBoard(size int) *Board {
	return &Board{
		size:    size,
		values:  make([]int, size*size),
		hazards: make([]bool, size*size),
	}
}

// Size returns the board dimension.
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.size && p.Col >= 0 && p.Col < b.size
}

// index maps p to its row-major cell index, panicking when p is off the board.
func (b *Board) index(p Position) int {
	if !b.InBounds(p) {
		panic(fmt.Errorf("%w: %v on %dx%d board", ErrInvalidPosition, p, b.size, b.size))
	}
	return p.Row*b.size + p.Col
}

// position is the inverse of index.
func (b *Board) position(i int) Position {
	return Position{Row: i / b.size, Col: i % b.size}
}

// ValueAt returns the tile value at p. ok is false for empty and hazard cells.
func (b *Board) ValueAt(p Position) (value int, ok bool) {
	v := b.values[b.index(p)]
	return v, v > 0
}

// SetValue stores value at p. A non-positive value empties the cell.
// Writing a tile onto a hazard is an invariant violation and panics.
func (b *Board) SetValue(p Position, value int) {
	i := b.index(p)
	if value <= 0 {
		b.values[i] = 0
		return
	}
	if b.hazards[i] {
		panic(fmt.Errorf("%w: %v is a hazard", ErrInvalidPosition, p))
	}
	b.values[i] = value
}

// Clear empties the cell at p.
func (b *Board) Clear(p Position) {
	b.SetValue(p, 0)
}

// IsEmpty reports whether p holds no tile and is not a hazard.
func (b *Board) IsEmpty(p Position) bool {
	i := b.index(p)
	return b.values[i] == 0 && !b.hazards[i]
}

// IsHazard reports whether p is a black hole.
func (b *Board) IsHazard(p Position) bool {
	return b.hazards[b.index(p)]
}

// markHazard turns p into a hazard. Only the spawn policy places hazards.
func (b *Board) markHazard(p Position) {
	i := b.index(p)
	b.values[i] = 0
	b.hazards[i] = true
}

// hazardInColumn reports whether any row already has a hazard at col.
func (b *Board) hazardInColumn(col int) bool {
	for row := range b.size {
		if b.hazards[row*b.size+col] {
			return true
		}
	}
	return false
}

// Hazards returns all hazard positions in row-major order.
func (b *Board) Hazards() []Position {
	var out []Position
	for i, h := range b.hazards {
		if h {
			out = append(out, b.position(i))
		}
	}
	return out
}

// Occupied returns all positions holding a tile in row-major order.
func (b *Board) Occupied() []Position {
	var out []Position
	for i, v := range b.values {
		if v > 0 {
			out = append(out, b.position(i))
		}
	}
	return out
}

// EmptyPositions returns all empty, non-hazard positions in row-major order.
func (b *Board) EmptyPositions() []Position {
	var out []Position
	for i, v := range b.values {
		if v == 0 && !b.hazards[i] {
			out = append(out, b.position(i))
		}
	}
	return out
}

// HasEmpty reports whether at least one empty, non-hazard cell remains.
func (b *Board) HasEmpty() bool {
	for i, v := range b.values {
		if v == 0 && !b.hazards[i] {
			return true
		}
	}
	return false
}

// MaxValue returns the highest tile value on the board, or 0 when empty.
func (b *Board) MaxValue() int {
	maxVal := 0
	for _, v := range b.values {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Values returns a copy of the grid as rows of values (0 = empty or hazard).
func (b *Board) Values() [][]int {
	rows := make([][]int, b.size)
	for r := range b.size {
		rows[r] = make([]int, b.size)
		copy(rows[r], b.values[r*b.size:(r+1)*b.size])
	}
	return rows
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := NewBoard(b.size)
	copy(c.values, b.values)
	copy(c.hazards, b.hazards)
	return c
}

// String renders the board as text: '.' for empty, '@' for a hazard.
func (b *Board) String() string {
	var sb strings.Builder
	width := len(strconv.Itoa(b.MaxValue()))
	if width < 1 {
		width = 1
	}
	for r := range b.size {
		for c := range b.size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			i := r*b.size + c
			cell := "."
			switch {
			case b.hazards[i]:
				cell = "@"
			case b.values[i] > 0:
				cell = strconv.Itoa(b.values[i])
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
