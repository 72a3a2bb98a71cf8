// Package registry provides global registries for games and presentation
// backends. Both register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
)

// Game is the interface the frame loop drives.
// Games contain pure logic with no windowing or terminal dependencies.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "pong").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// The RuntimeConfig provides the RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one frame using the current
	// key-down table.
	Step(in *core.InputState) core.StepResult

	// Draw emits the current frame as filled polygons.
	Draw(dst core.Canvas)

	// Status returns scores and the frame counter.
	Status() core.GameStatus

	// Field returns the playfield size in game units.
	Field() core.Vec
}

// RunOptions carry everything a backend needs besides the game.
type RunOptions struct {
	Runtime core.RuntimeConfig
	Config  config.PongConfig
	Logger  *log.Logger

	// Frames limits the number of simulated frames; 0 runs until quit.
	// Only the headless backend honours it.
	Frames int
	// Output receives text output of backends that print frames.
	Output io.Writer
}

// Backend presents a game: it owns the frame loop, turns native input into
// core.KeyEvents and draws the polygons the game emits.
type Backend interface {
	// Name returns the identifier used with --backend.
	Name() string

	// Description returns a one-line summary for `pong list`.
	Description() string

	// Run blocks until the player quits, ctx is cancelled or the backend
	// fails. Failing to acquire the display is reported before any frame.
	Run(ctx context.Context, game Game, opts RunOptions) error
}

// Info contains metadata about a registered game or backend.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func(cfg config.PongConfig) Game

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	backends  = make(map[string]BackendFactory)
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

	// Get title by creating a temporary instance
	g := f(config.DefaultPongConfig())
	titles[id] = g.Title()
}

// RegisterBackend adds a backend factory to the registry.
// Panics if a backend with the same name is already registered.
func RegisterBackend(name string, f BackendFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := backends[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}
	backends[name] = f
}

// List returns information about all registered games, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{
			ID:    id,
			Title: titles[id],
		})
	}
	sortInfo(result)
	return result
}

// Backends returns information about all registered backends, sorted by name.
func Backends() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(backends))
	for name, f := range backends {
		result = append(result, Info{
			ID:    name,
			Title: f().Description(),
		})
	}
	sortInfo(result)
	return result
}

func sortInfo(infos []Info) {
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].ID < infos[j].ID
	})
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, cfg config.PongConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// CreateBackend instantiates a backend by name.
// Returns an error if the name is not registered.
func CreateBackend(name string) (Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}
	return f(), nil
}
