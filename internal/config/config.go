// Package config provides YAML-based configuration loading for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// PongConfig contains all tunables of the game. The defaults reproduce the
// classic lab constants exactly; key bindings are deliberately absent.
type PongConfig struct {
	Window   WindowConfig   `yaml:"window"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddles  PaddleConfig   `yaml:"paddles"`
	Ball     BallConfig     `yaml:"ball"`
	Display  DisplayConfig  `yaml:"display"`
	Terminal TerminalConfig `yaml:"terminal"`
	Log      LogConfig      `yaml:"log"`
}

// WindowConfig defines the playfield and the desktop window.
type WindowConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Title  string  `yaml:"title"`
	Scale  float64 `yaml:"scale"` // Window size multiplier, playfield stays fixed
}

// PhysicsConfig defines per-frame motion parameters.
type PhysicsConfig struct {
	VelChange  float64 `yaml:"vel_change"`  // Paddle acceleration per held key per frame
	Decel      float64 `yaml:"decel"`       // Paddle velocity decay per frame
	MaxSpeed   float64 `yaml:"max_speed"`   // Horizontal ball speed cap
	SpeedUp    float64 `yaml:"speed_up"`    // Multiplier applied on paddle bounce
	ServeSpeed float64 `yaml:"serve_speed"` // Horizontal velocity after a reset
	WallMargin float64 `yaml:"wall_margin"` // Inset of the top/bottom bounce lines
	FlashFade  float64 `yaml:"flash_fade"`  // Paddle flash recovery per frame
	TintStep   float64 `yaml:"tint_step"`   // Ball reddening per paddle hit
}

// PaddleConfig defines paddle geometry.
type PaddleConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	LeftX      float64 `yaml:"left_x"`
	RightX     float64 `yaml:"right_x"`
	StartY     float64 `yaml:"start_y"`
	RightInset float64 `yaml:"right_inset"` // Ball x offset used against the right paddle
}

// BallConfig defines how the ball is drawn.
type BallConfig struct {
	Radius   float64 `yaml:"radius"`
	Segments int     `yaml:"segments"`
}

// DisplayConfig defines where the decorations sit.
type DisplayConfig struct {
	LeftDigitsX  float64 `yaml:"left_digits_x"`
	RightDigitsX float64 `yaml:"right_digits_x"`
	DigitsY      float64 `yaml:"digits_y"`
	DigitSpacing float64 `yaml:"digit_spacing"`
	BarrierWidth float64 `yaml:"barrier_width"`
	DashLength   float64 `yaml:"dash_length"`
	DashPeriod   float64 `yaml:"dash_period"`
	DashPhase    float64 `yaml:"dash_phase"`
}

// TerminalConfig defines terminal backend behaviour.
type TerminalConfig struct {
	// KeyHold is how long a key counts as held after its last press.
	// Terminals report no key releases, so they are synthesized. It must
	// exceed the OS auto-repeat delay or held keys stutter.
	KeyHold time.Duration `yaml:"key_hold"`
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Empty means stderr (window) or discard (terminal)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate rejects configurations the simulation cannot run with.
func (c PongConfig) Validate() error {
	positive := []struct {
		name string
		val  float64
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"window.scale", c.Window.Scale},
		{"physics.max_speed", c.Physics.MaxSpeed},
		{"physics.serve_speed", c.Physics.ServeSpeed},
		{"paddles.width", c.Paddles.Width},
		{"paddles.height", c.Paddles.Height},
		{"ball.radius", c.Ball.Radius},
	}
	for _, p := range positive {
		if p.val <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalid, p.name, p.val)
		}
	}

	if c.Physics.SpeedUp < 1 {
		return fmt.Errorf("%w: physics.speed_up must be at least 1, got %v", ErrInvalid, c.Physics.SpeedUp)
	}
	if c.Physics.Decel < 0 || c.Physics.VelChange < 0 {
		return fmt.Errorf("%w: paddle acceleration values must not be negative", ErrInvalid)
	}
	if c.Paddles.Height >= c.Window.Height {
		return fmt.Errorf("%w: paddles.height %v does not fit window.height %v", ErrInvalid, c.Paddles.Height, c.Window.Height)
	}
	if 2*c.Physics.WallMargin >= c.Window.Height {
		return fmt.Errorf("%w: physics.wall_margin %v leaves no room to play", ErrInvalid, c.Physics.WallMargin)
	}
	if c.Ball.Segments < 3 {
		return fmt.Errorf("%w: ball.segments must be at least 3, got %d", ErrInvalid, c.Ball.Segments)
	}
	if c.Display.DashPeriod <= 0 || c.Display.DashLength <= 0 || c.Display.DashLength > c.Display.DashPeriod {
		return fmt.Errorf("%w: barrier dash length must be in (0, dash_period]", ErrInvalid)
	}
	if c.Terminal.KeyHold <= 0 {
		return fmt.Errorf("%w: terminal.key_hold must be positive, got %v", ErrInvalid, c.Terminal.KeyHold)
	}
	return nil
}
