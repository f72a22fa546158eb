// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/game-center/internal/core"
)

// Game is the interface every game engine implements.
// Engines are pure: the platform owns timing, key mapping and the terminal.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake", "dino").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset reinitializes every entity to its start values and clears the
	// paused/over flags.
	Reset(cfg core.RuntimeConfig)

	// Handle applies an intent immediately. The next Step observes it.
	// Unknown or inapplicable actions are ignored.
	Handle(a core.Action)

	// Step advances the simulation by one tick: update, then collision check.
	// It is a no-op while paused or over.
	Step() core.StepResult

	// Render draws the current state onto dst. It must not mutate game state;
	// a nil dst is a silent no-op.
	Render(dst *core.Canvas)

	// State returns the current score and status.
	State() core.GameState

	// TickInterval is the fixed period between Steps.
	TickInterval() time.Duration

	// Bounds returns the canvas size in pixels.
	Bounds() (width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
