package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal backend only)
	ScreenH  int   // Terminal height in characters (terminal backend only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic serves
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Side identifies one half of the playfield.
type Side int

const (
	SideNone Side = iota
	SideLeft
	SideRight
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// GameStatus summarizes the game for the platform.
// Returned by Game.Status() and inside every StepResult.
type GameStatus struct {
	LeftScore  int    // Points won by the left player
	RightScore int    // Points won by the right player
	Tick       uint64 // Frames simulated since Reset
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated status and the events that occurred.
type StepResult struct {
	Status  GameStatus
	Scored  Side    // Side that won a point this frame, if any
	Bounced Side    // Paddle the ball bounced off this frame, if any
	BallVX  float64 // Horizontal ball velocity after the frame
}
