package engine

import "fmt"

// Board size limits accepted by Rules.Validate.
const (
	MinBoardSize = 3
	MaxBoardSize = 8
)

// Rules configure a session's board.
type Rules struct {
	// Size is the board dimension.
	Size int

	// HazardRows lists the rows that get one black hole each. Columns are
	// random, and no two hazards share a column.
	HazardRows []int

	// StartTiles are fixed cells that receive a tile at game start.
	StartTiles []Position

	// RandomTiles is the number of randomly placed tiles at game start.
	RandomTiles int
}

// DefaultRules returns the classic 4x4 game with two random start tiles.
func DefaultRules() Rules {
	return Rules{
		Size:        4,
		RandomTiles: 2,
	}
}

// Validate checks that the rules describe a playable board.
func (r Rules) Validate() error {
	if r.Size < MinBoardSize || r.Size > MaxBoardSize {
		return fmt.Errorf("%w: size %d outside [%d, %d]", ErrInvalidRules, r.Size, MinBoardSize, MaxBoardSize)
	}
	if len(r.HazardRows) > r.Size {
		return fmt.Errorf("%w: %d hazard rows on a %dx%d board", ErrInvalidRules, len(r.HazardRows), r.Size, r.Size)
	}

	seen := make(map[int]bool, len(r.HazardRows))
	for _, row := range r.HazardRows {
		if row < 0 || row >= r.Size {
			return fmt.Errorf("%w: hazard row %d out of range", ErrInvalidRules, row)
		}
		if seen[row] {
			return fmt.Errorf("%w: duplicate hazard row %d", ErrInvalidRules, row)
		}
		seen[row] = true
	}

	start := make(map[Position]bool, len(r.StartTiles))
	for _, p := range r.StartTiles {
		if p.Row < 0 || p.Row >= r.Size || p.Col < 0 || p.Col >= r.Size {
			return fmt.Errorf("%w: start tile %v out of range", ErrInvalidRules, p)
		}
		if start[p] {
			return fmt.Errorf("%w: duplicate start tile %v", ErrInvalidRules, p)
		}
		start[p] = true
	}

	if r.RandomTiles < 0 {
		return fmt.Errorf("%w: negative random tile count", ErrInvalidRules)
	}
	cells := r.Size*r.Size - len(r.HazardRows)
	if len(r.StartTiles)+r.RandomTiles > cells {
		return fmt.Errorf("%w: %d start tiles do not fit %d free cells",
			ErrInvalidRules, len(r.StartTiles)+r.RandomTiles, cells)
	}
	return nil
}
