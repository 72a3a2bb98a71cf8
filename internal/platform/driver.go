// Package platform holds the pieces shared by every presentation backend:
// the per-frame driver that turns key events into simulation steps.
package platform

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/logging"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

// Driver advances a game one frame at a time on behalf of a backend.
// Backends feed it key events as they arrive and call Frame once per tick.
// It is not safe for concurrent use; each backend drives it from its own
// loop goroutine.
type Driver struct {
	game   registry.Game
	input  *core.InputState
	logger *log.Logger
	last   core.StepResult
	quit   bool
}

// NewDriver resets game with cfg and returns a driver for it.
// A zero seed is replaced with the current time.
func NewDriver(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) *Driver {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)
	logger.Debug("game reset", "game", game.ID(), "seed", cfg.Seed)

	return &Driver{
		game:   game,
		input:  core.NewInputState(),
		logger: logger,
		last:   core.StepResult{Status: game.Status()},
	}
}

// Handle applies a key event. Pressing a quit key marks the driver as done.
func (d *Driver) Handle(ev core.KeyEvent) {
	if ev.Kind == core.KeyDown && core.ActionFor(ev.Code) == core.ActionQuit {
		d.quit = true
		return
	}
	d.input.Dispatch(ev)
}

// HandleAll applies events in order.
func (d *Driver) HandleAll(events []core.KeyEvent) {
	for _, ev := range events {
		d.Handle(ev)
	}
}

// Quit reports whether a quit key was pressed.
func (d *Driver) Quit() bool {
	return d.quit
}

// Input exposes the key-down table, mostly for tests.
func (d *Driver) Input() *core.InputState {
	return d.input
}

// Last returns the result of the most recent frame.
func (d *Driver) Last() core.StepResult {
	return d.last
}

// ReleaseAll lets go of every held key. Backends call it when they can no
// longer see key releases, for example after losing focus.
func (d *Driver) ReleaseAll() {
	if keys := d.input.Keys(); len(keys) > 0 {
		d.logger.Debug("releasing held keys", "keys", keys)
	}
	d.input.Clear()
}

// Frame runs one simulation step and logs what happened in it.
func (d *Driver) Frame() core.StepResult {
	res := d.game.Step(d.input)
	d.last = res

	if res.Bounced != core.SideNone {
		d.logger.Debug("bounce", "paddle", res.Bounced, "vx", res.BallVX)
	}
	if res.Scored != core.SideNone {
		d.logger.Info("point",
			"side", res.Scored,
			"left", res.Status.LeftScore,
			"right", res.Status.RightScore,
			"tick", res.Status.Tick,
		)
	}
	return res
}
