package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Window: WindowConfig{
			Width:  960,
			Height: 720,
			Title:  "Pong Lab - Introduction to Basic Game Physics",
			Scale:  1.0,
		},
		Physics: PhysicsConfig{
			VelChange:  2.0,
			Decel:      1.0,
			MaxSpeed:   8.0,
			SpeedUp:    1.2,
			ServeSpeed: 2.0,
			WallMargin: 5.0,
			FlashFade:  0.01,
			TintStep:   0.1,
		},
		Paddles: PaddleConfig{
			Width:      9,
			Height:     63,
			LeftX:      27,
			RightX:     933,
			StartY:     360,
			RightInset: 5,
		},
		Ball: BallConfig{
			Radius:   5,
			Segments: 20,
		},
		Display: DisplayConfig{
			LeftDigitsX:  230,
			RightDigitsX: 630,
			DigitsY:      600,
			DigitSpacing: 50,
			BarrierWidth: 12,
			DashLength:   18,
			DashPeriod:   36,
			DashPhase:    9,
		},
		Terminal: TerminalConfig{
			KeyHold: 700 * time.Millisecond,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultPongYAML
}
