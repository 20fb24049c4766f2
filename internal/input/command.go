// Package input turns player gestures into shift directions: typed or
// spoken commands, pointer swipes and head-pose motion. Every adapter ends
// in the same place, a call to engine.Controller.Shift.
package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/vovakirdan/plus2048/internal/games/t2048/engine"
)

var (
	// ErrNoDirection means the phrase named no direction.
	ErrNoDirection = errors.New("input: no direction in command")
	// ErrAmbiguous means the phrase named more than one direction.
	ErrAmbiguous = errors.New("input: command names several directions")
)

var vocabulary = map[string]engine.Direction{
	"up": engine.Up, "u": engine.Up, "north": engine.Up, "top": engine.Up, "upward": engine.Up, "upwards": engine.Up,
	"down": engine.Down, "d": engine.Down, "south": engine.Down, "bottom": engine.Down, "downward": engine.Down, "downwards": engine.Down,
	"left": engine.Left, "l": engine.Left, "west": engine.Left,
	"right": engine.Right, "r": engine.Right, "east": engine.Right,
}

// ParseCommand finds the direction in a phrase such as "swipe left" or
// "Move UP please". Words outside the direction vocabulary are ignored.
// Repeating the same direction is fine; naming two different ones is not.
func ParseCommand(text string) (engine.Direction, error) {
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})

	var (
		dir   engine.Direction
		found bool
	)
	for _, w := range words {
		d, ok := vocabulary[w]
		if !ok {
			continue
		}
		if found && d != dir {
			return 0, fmt.Errorf("%w: %q", ErrAmbiguous, text)
		}
		dir, found = d, true
	}
	if !found {
		return 0, fmt.Errorf("%w: %q", ErrNoDirection, text)
	}
	return dir, nil
}

// Command parses text and shifts c when it names a direction.
func Command(c engine.Controller, text string) (engine.ShiftResult, error) {
	dir, err := ParseCommand(text)
	if err != nil {
		return engine.ShiftResult{}, err
	}
	return c.Shift(dir), nil
}
