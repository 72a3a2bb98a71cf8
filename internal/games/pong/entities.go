package pong

import (
	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/ssd"
)

// Flash colors.
var (
	paddleHitColor = core.RGB{R: 0, G: 1, B: 0}
	ghostShades    = [2]float64{0.6, 0.3}
)

// Paddle is a player-controlled vertical bar. X never changes.
type Paddle struct {
	Pos   core.Vec // Bottom-left corner
	Vel   float64  // Vertical velocity, units per frame
	Color core.RGB // White at rest, green right after a hit
}

// Box returns the paddle's collision box for the given geometry.
func (p Paddle) Box(geom config.PaddleConfig) core.Box {
	return core.NewBox(p.Pos.X, p.Pos.Y, geom.Width, geom.Height)
}

// Ball is the live, physically simulated ball.
type Ball struct {
	Pos   core.Vec
	Vel   core.Vec
	Color core.RGB // Reddens a little with every paddle hit
}

// TrailGhost is a cosmetic afterimage of the ball. It has no physics of its
// own and is recomputed from the live ball every frame.
type TrailGhost struct {
	Pos   core.Vec
	Shade float64 // Gray level used when drawing
}

// Trail derives both afterimages from the live ball's current position and
// velocity. Leftward travel uses half the vertical offset of rightward
// travel; that asymmetry is part of the classic look.
func Trail(b Ball) [2]TrailGhost {
	var near, far core.Vec
	if b.Vel.X > 0 {
		near = core.Vec{X: b.Pos.X - 2*b.Vel.X, Y: b.Pos.Y - 2*b.Vel.Y}
		far = core.Vec{X: b.Pos.X - 4*b.Vel.X, Y: b.Pos.Y - 4*b.Vel.Y}
	} else {
		near = core.Vec{X: b.Pos.X - 2*b.Vel.X, Y: b.Pos.Y - b.Vel.Y}
		far = core.Vec{X: b.Pos.X - 4*b.Vel.X, Y: b.Pos.Y - 2*b.Vel.Y}
	}
	return [2]TrailGhost{
		{Pos: near, Shade: ghostShades[0]},
		{Pos: far, Shade: ghostShades[1]},
	}
}

// Barrier is the dashed center line. It is purely decorative and never
// changes after construction.
type Barrier struct {
	dashes []core.Box
}

// NewBarrier lays out the dashes of a center line spanning the playfield.
// A dash starts every DashPeriod units, shifted down by DashPhase, and is
// clipped to the playfield.
func NewBarrier(win config.WindowConfig, disp config.DisplayConfig) Barrier {
	x := win.Width/2 - disp.BarrierWidth/2
	var dashes []core.Box
	for start := -disp.DashPhase; start < win.Height; start += disp.DashPeriod {
		lo := max(start, 0)
		hi := min(start+disp.DashLength, win.Height)
		if hi <= lo {
			continue
		}
		dashes = append(dashes, core.NewBox(x, lo, disp.BarrierWidth, hi-lo))
	}
	return Barrier{dashes: dashes}
}

// Dashes returns a copy of the dash boxes.
func (b Barrier) Dashes() []core.Box {
	out := make([]core.Box, len(b.dashes))
	copy(out, b.dashes)
	return out
}

// Digit positions on the scoreboard.
const (
	DigitLeftTens = iota
	DigitLeftUnits
	DigitRightTens
	DigitRightUnits
	digitCount
)

// ScoreBoard holds both counters and the four digit patterns they drive.
// Scores are unbounded; from 100 on the tens digit shows the error glyph.
type ScoreBoard struct {
	Left   int
	Right  int
	Digits [digitCount]ssd.Pattern
}

// NewScoreBoard returns a board showing 00 : 00.
func NewScoreBoard() ScoreBoard {
	var s ScoreBoard
	s.encode(core.SideLeft)
	s.encode(core.SideRight)
	return s
}

// Award gives a point to side and re-encodes that side's digits.
func (s *ScoreBoard) Award(side core.Side) {
	switch side {
	case core.SideLeft:
		s.Left++
	case core.SideRight:
		s.Right++
	default:
		return
	}
	s.encode(side)
}

func (s *ScoreBoard) encode(side core.Side) {
	switch side {
	case core.SideLeft:
		s.Digits[DigitLeftTens] = ssd.Encode(s.Left / 10)
		s.Digits[DigitLeftUnits] = ssd.Encode(s.Left % 10)
	case core.SideRight:
		s.Digits[DigitRightTens] = ssd.Encode(s.Right / 10)
		s.Digits[DigitRightUnits] = ssd.Encode(s.Right % 10)
	}
}

// GameState is the complete simulation state. The physics step receives it
// by reference; nothing else in the package holds mutable state.
type GameState struct {
	Left    Paddle
	Right   Paddle
	Ball    Ball
	Ghosts  [2]TrailGhost
	Barrier Barrier
	Score   ScoreBoard
	Tick    uint64
}
