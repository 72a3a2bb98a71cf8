package pong

import (
	"math"

	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/ssd"
)

// PaddleView is a paddle as the presentation layer sees it.
type PaddleView struct {
	Box   core.Box
	Vel   float64
	Color core.RGB
}

// DigitView is one seven-segment digit and where it sits.
type DigitView struct {
	Origin  core.Vec // Bottom-left corner of the digit cell
	Pattern ssd.Pattern
}

// Snapshot is the read-only per-frame state consumed by renderers.
type Snapshot struct {
	Tick       uint64
	Left       PaddleView
	Right      PaddleView
	Ball       core.Vec
	BallVel    core.Vec
	BallColor  core.RGB
	BallRadius float64
	BallSides  int
	Ghosts     [2]TrailGhost
	Barrier    []core.Box
	Digits     [digitCount]DigitView
	LeftScore  int
	RightScore int
}

// Snapshot captures the current frame.
func (g *Game) Snapshot() Snapshot {
	s := &g.state
	geom := g.cfg.Paddles

	snap := Snapshot{
		Tick:       s.Tick,
		Left:       PaddleView{Box: s.Left.Box(geom), Vel: s.Left.Vel, Color: s.Left.Color},
		Right:      PaddleView{Box: s.Right.Box(geom), Vel: s.Right.Vel, Color: s.Right.Color},
		Ball:       s.Ball.Pos,
		BallVel:    s.Ball.Vel,
		BallColor:  s.Ball.Color,
		BallRadius: g.cfg.Ball.Radius,
		BallSides:  g.cfg.Ball.Segments,
		Ghosts:     s.Ghosts,
		Barrier:    s.Barrier.Dashes(),
		LeftScore:  s.Score.Left,
		RightScore: s.Score.Right,
	}
	for i, p := range s.Score.Digits {
		snap.Digits[i] = DigitView{Origin: g.digitOrigin(i), Pattern: p}
	}
	return snap
}

// digitOrigin places tens and units of each side DigitSpacing apart.
func (g *Game) digitOrigin(i int) core.Vec {
	d := g.cfg.Display
	x := d.LeftDigitsX
	if i >= DigitRightTens {
		x = d.RightDigitsX
	}
	if i%2 == 1 {
		x += d.DigitSpacing
	}
	return core.Vec{X: x, Y: d.DigitsY}
}

// Draw renders the snapshot. The far afterimage is drawn first so the
// nearer one and the live ball cover it.
func (s Snapshot) Draw(dst core.Canvas) {
	dst.FillPolygon(s.Left.Box.Corners(), s.Left.Color)
	dst.FillPolygon(s.Right.Box.Corners(), s.Right.Color)

	for i := len(s.Ghosts) - 1; i >= 0; i-- {
		ghost := s.Ghosts[i]
		dst.FillPolygon(core.Disc(ghost.Pos, s.BallRadius, s.BallSides), core.Gray(ghost.Shade))
	}
	dst.FillPolygon(core.Disc(s.Ball, s.BallRadius, s.BallSides), s.BallColor)

	for _, dash := range s.Barrier {
		dst.FillPolygon(dash.Corners(), core.White)
	}

	for _, d := range s.Digits {
		ssd.Draw(dst, d.Origin, d.Pattern, core.White)
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := s.Tick
	for _, v := range []float64{
		s.Left.Box.Y, s.Left.Vel, s.Right.Box.Y, s.Right.Vel,
		s.Ball.X, s.Ball.Y, s.BallVel.X, s.BallVel.Y,
		s.BallColor.G, s.Left.Color.R, s.Right.Color.R,
	} {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(s.LeftScore)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.RightScore) //#nosec G115 -- hash computation
	for _, d := range s.Digits {
		h = h*31 + uint64(d.Pattern)
	}
	return h
}
