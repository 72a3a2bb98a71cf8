// Package pong implements the two-player paddle game: entity state, the
// per-frame physics step and the scene handed to the presentation backends.
package pong

import (
	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

// Game wires the physics engine to its state and exposes it to the platform.
type Game struct {
	cfg     config.PongConfig
	physics *Physics
	state   GameState
}

// New creates a game ready to step, seeded with 0. Backends call Reset with
// their own runtime config before the first frame.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong Lab"
}

// Reset restarts the match from 0 : 0.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.physics = NewPhysics(g.cfg, runtime.Seed)
	g.state = g.physics.NewState()
}

// Step advances the game by one frame.
func (g *Game) Step(in *core.InputState) core.StepResult {
	return g.physics.Step(&g.state, in)
}

// Status returns scores and the frame counter.
func (g *Game) Status() core.GameStatus {
	return core.GameStatus{
		LeftScore:  g.state.Score.Left,
		RightScore: g.state.Score.Right,
		Tick:       g.state.Tick,
	}
}

// Field returns the playfield size.
func (g *Game) Field() core.Vec {
	return core.Vec{X: g.cfg.Window.Width, Y: g.cfg.Window.Height}
}

// Draw emits the frame back to front: paddles, afterimages, ball, barrier
// and the four score digits.
func (g *Game) Draw(dst core.Canvas) {
	g.Snapshot().Draw(dst)
}

// Register the game with the registry
func init() {
	registry.Register("pong", func(cfg config.PongConfig) registry.Game {
		return New(cfg)
	})
}
