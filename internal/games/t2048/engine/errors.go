package engine

import "errors"

var (
	// ErrInvalidPosition reports an access outside the board. Engine code
	// panics with it since correct callers never trigger it.
	ErrInvalidPosition = errors.New("engine: invalid position")

	// ErrInvalidRules reports a Rules value that cannot produce a board.
	ErrInvalidRules = errors.New("engine: invalid rules")

	// ErrNoHazardColumn is returned when a hazard row has no free column left.
	ErrNoHazardColumn = errors.New("engine: no free column for hazard")
)
