package pong

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
)

// Physics advances a GameState by one frame. Motion is per frame, not per
// second, so the game speed follows the tick rate.
type Physics struct {
	cfg config.PongConfig
	rng *rand.Rand
}

// NewPhysics creates a physics engine. The seed drives serve directions.
func NewPhysics(cfg config.PongConfig, seed int64) *Physics {
	return &Physics{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NewState builds the starting state: paddles at rest, ball served from the
// center, scoreboard at zero.
func (p *Physics) NewState() GameState {
	s := GameState{
		Left: Paddle{
			Pos:   core.Vec{X: p.cfg.Paddles.LeftX, Y: p.cfg.Paddles.StartY},
			Color: core.White,
		},
		Right: Paddle{
			Pos:   core.Vec{X: p.cfg.Paddles.RightX, Y: p.cfg.Paddles.StartY},
			Color: core.White,
		},
		Barrier: NewBarrier(p.cfg.Window, p.cfg.Display),
		Score:   NewScoreBoard(),
	}
	p.serve(&s.Ball)
	s.Ghosts = Trail(s.Ball)
	return s
}

// Step runs one frame. The stages run in a fixed order; later stages see the
// results of earlier ones.
func (p *Physics) Step(s *GameState, in *core.InputState) core.StepResult {
	s.Tick++

	p.integrateBall(s)
	s.Ghosts = Trail(s.Ball)
	p.integratePaddles(s)
	p.applyInput(s, in)
	p.bounceWalls(s)
	scored := p.checkScore(s)
	bounced := p.collidePaddles(s)
	p.settle(s)

	return core.StepResult{
		Status: core.GameStatus{
			LeftScore:  s.Score.Left,
			RightScore: s.Score.Right,
			Tick:       s.Tick,
		},
		Scored:  scored,
		Bounced: bounced,
		BallVX:  s.Ball.Vel.X,
	}
}

// serve recenters the ball with the fixed horizontal serve speed and a
// random vertical speed of 1 or 2, downwards slightly less than half the time.
func (p *Physics) serve(b *Ball) {
	b.Vel.X = p.cfg.Physics.ServeSpeed
	b.Vel.Y = float64(p.rng.Intn(2) + 1)
	if p.rng.Intn(100) < 49 {
		b.Vel.Y = -b.Vel.Y
	}
	b.Pos = core.Vec{X: p.cfg.Window.Width / 2, Y: p.cfg.Window.Height / 2}
	b.Color = core.White
}

func (p *Physics) integrateBall(s *GameState) {
	s.Ball.Pos = s.Ball.Pos.Add(s.Ball.Vel)
}

// integratePaddles moves both paddles and lets them drift to a stop.
func (p *Physics) integratePaddles(s *GameState) {
	for _, pad := range []*Paddle{&s.Left, &s.Right} {
		pad.Pos.Y += pad.Vel
		pad.Vel = decelerate(pad.Vel, p.cfg.Physics.Decel)
	}
}

// decelerate moves v toward zero by step without crossing it.
func decelerate(v, step float64) float64 {
	if math.Abs(v) <= step {
		return 0
	}
	if v > 0 {
		return v - step
	}
	return v + step
}

// applyInput accelerates paddles for every held key. Opposing keys cancel.
func (p *Physics) applyInput(s *GameState, in *core.InputState) {
	dv := p.cfg.Physics.VelChange
	if in.Held(core.ActionLeftUp) {
		s.Left.Vel += dv
	}
	if in.Held(core.ActionLeftDown) {
		s.Left.Vel -= dv
	}
	if in.Held(core.ActionRightUp) {
		s.Right.Vel += dv
	}
	if in.Held(core.ActionRightDown) {
		s.Right.Vel -= dv
	}
}

// bounceWalls reflects the ball off the top and bottom bounce lines, which
// sit WallMargin inside the playfield.
func (p *Physics) bounceWalls(s *GameState) {
	top := p.cfg.Window.Height - p.cfg.Physics.WallMargin
	bottom := p.cfg.Physics.WallMargin

	switch {
	case s.Ball.Pos.Y > top:
		s.Ball.Vel.Y = -s.Ball.Vel.Y
		s.Ball.Pos.Y = top
	case s.Ball.Pos.Y < bottom:
		s.Ball.Vel.Y = -s.Ball.Vel.Y
		s.Ball.Pos.Y = bottom
	}
}

// checkScore awards a point when the ball leaves through a side and serves
// again. At most one side can score per frame.
func (p *Physics) checkScore(s *GameState) core.Side {
	var side core.Side
	switch {
	case s.Ball.Pos.X < 0:
		side = core.SideRight
	case s.Ball.Pos.X > p.cfg.Window.Width:
		side = core.SideLeft
	default:
		return core.SideNone
	}

	p.serve(&s.Ball)
	s.Score.Award(side)
	return side
}

// collidePaddles resolves ball/paddle overlap. The ball is pushed flush
// against the paddle face so it cannot get stuck inside.
func (p *Physics) collidePaddles(s *GameState) core.Side {
	geom := p.cfg.Paddles
	bounced := core.SideNone

	if s.Left.Box(geom).Contains(s.Ball.Pos) {
		s.Ball.Pos.X = s.Left.Pos.X + geom.Width
		s.Ball.Vel.X = p.reflect(s.Ball.Vel.X, -s.Ball.Vel.X)
		p.flash(&s.Left, &s.Ball)
		bounced = core.SideLeft
	}

	probe := s.Ball.Pos.Add(core.Vec{X: geom.RightInset})
	if s.Right.Box(geom).Contains(probe) {
		s.Ball.Pos.X = s.Right.Pos.X - geom.Width
		s.Ball.Vel.X = p.reflect(s.Ball.Vel.X, s.Ball.Vel.X)
		p.flash(&s.Right, &s.Ball)
		bounced = core.SideRight
	}

	return bounced
}

// reflect reverses vx. While the approach speed is below MaxSpeed the ball
// also speeds up, capped at MaxSpeed; at the cap only the sign flips.
func (p *Physics) reflect(vx, approach float64) float64 {
	maxSpeed := p.cfg.Physics.MaxSpeed
	if approach < maxSpeed {
		nv := -vx * p.cfg.Physics.SpeedUp
		return math.Copysign(math.Min(math.Abs(nv), maxSpeed), nv)
	}
	return -vx
}

// flash marks a hit: the paddle turns green, the ball reddens a step.
func (p *Physics) flash(pad *Paddle, b *Ball) {
	pad.Color = paddleHitColor
	tint := core.ClampF(b.Color.G-p.cfg.Physics.TintStep, 0, 1)
	b.Color.G = tint
	b.Color.B = tint
}

// settle keeps paddles inside the playfield and fades their hit flash.
func (p *Physics) settle(s *GameState) {
	maxY := p.cfg.Window.Height - p.cfg.Paddles.Height
	for _, pad := range []*Paddle{&s.Left, &s.Right} {
		pad.Pos.Y = core.ClampF(pad.Pos.Y, 0, maxY)
		if pad.Color.R < 1 {
			faded := core.ClampF(pad.Color.B+p.cfg.Physics.FlashFade, 0, 1)
			pad.Color.R = faded
			pad.Color.B = faded
		}
	}
}
