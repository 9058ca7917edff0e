// Package registry is the catalogue of playable modes. Mode packages
// register a factory in init(), and hosts list and create modes by id
// without importing the simulation's constructors directly.
package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/tggbb/SnakeNeo/internal/core"
)

// Game is the host-facing interface of a simulation.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, frame timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "classic", "daily").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset performs a full restart with the host's screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Advance applies the input collected during one host frame and then
	// dt of elapsed wall-clock time. The game decides how many fixed
	// simulation ticks that time is worth.
	Advance(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, paused).
	State() core.GameState
}

// Info describes a registered mode.
type Info struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a fresh game for a mode.
type Factory func() Game

type entry struct {
	info    Info
	factory Factory
}

var (
	entries []entry
	byID    = make(map[string]int)
	mu      sync.RWMutex
)

// Register adds a mode. List reports modes in registration order.
// Panics on an empty or duplicate id.
func Register(info Info, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty mode id")
	}
	if _, exists := byID[info.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}

	byID[info.ID] = len(entries)
	entries = append(entries, entry{info: info, factory: f})
}

// List returns every registered mode in registration order.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Lookup returns the info of a mode.
func Lookup(id string) (Info, bool) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return Info{}, false
	}
	return entries[i].info, true
}

// Create instantiates a new game for the mode.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return entries[i].factory(), nil
}

// Exists checks if a mode with the given id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
