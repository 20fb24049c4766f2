// Package registry maps game mode IDs to factories. Modes register
// themselves from init, so the CLI and the terminal client can list and
// create them without importing each one by name.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/plus2048/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that takes
// semantic input and draws into a screen buffer. Implementations must not
// depend on the terminal.
type Game interface {
	// ID returns the mode identifier used by the CLI and score storage
	// (e.g. "2048", "2048_blackhole").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh game. Called once at start and on restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared first.
	Render(dst *core.Screen)

	// State returns score and status flags.
	State() core.GameState
}

// Reporter is implemented by games that can summarize themselves for
// storage once they are over.
type Reporter interface {
	Report() core.GameReport
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the mode registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
