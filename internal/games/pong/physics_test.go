package pong

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/ssd"
)

const eps = 1e-9

func newTestPhysics(seed int64) (*Physics, GameState) {
	p := NewPhysics(config.DefaultPongConfig(), seed)
	return p, p.NewState()
}

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestServe(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		_, s := newTestPhysics(seed)
		b := s.Ball

		if b.Pos != (core.Vec{X: 480, Y: 360}) {
			t.Fatalf("seed %d: serve position = %v, expected (480,360)", seed, b.Pos)
		}
		if b.Vel.X != 2 {
			t.Errorf("seed %d: serve vx = %v, expected 2", seed, b.Vel.X)
		}
		if vy := math.Abs(b.Vel.Y); vy != 1 && vy != 2 {
			t.Errorf("seed %d: serve vy = %v, expected ±1 or ±2", seed, b.Vel.Y)
		}
		if b.Color != core.White {
			t.Errorf("seed %d: serve color = %v, expected white", seed, b.Color)
		}
	}
}

func TestServeDirectionsVary(t *testing.T) {
	seen := make(map[float64]bool)
	for seed := int64(0); seed < 200; seed++ {
		_, s := newTestPhysics(seed)
		seen[s.Ball.Vel.Y] = true
	}
	for _, vy := range []float64{-2, -1, 1, 2} {
		if !seen[vy] {
			t.Errorf("vy = %v never served across 200 seeds", vy)
		}
	}
}

func TestTrail(t *testing.T) {
	tests := []struct {
		name string
		vel  core.Vec
		near core.Vec
		far  core.Vec
	}{
		{"rightward", core.Vec{X: 2, Y: 1}, core.Vec{X: 496, Y: 358}, core.Vec{X: 492, Y: 356}},
		{"leftward", core.Vec{X: -2, Y: 1}, core.Vec{X: 504, Y: 359}, core.Vec{X: 508, Y: 358}},
		{"leftward downwards", core.Vec{X: -4, Y: -2}, core.Vec{X: 508, Y: 362}, core.Vec{X: 516, Y: 364}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ghosts := Trail(Ball{Pos: core.Vec{X: 500, Y: 360}, Vel: tt.vel})
			if ghosts[0].Pos != tt.near {
				t.Errorf("near ghost = %v, expected %v", ghosts[0].Pos, tt.near)
			}
			if ghosts[1].Pos != tt.far {
				t.Errorf("far ghost = %v, expected %v", ghosts[1].Pos, tt.far)
			}
			if ghosts[0].Shade != 0.6 || ghosts[1].Shade != 0.3 {
				t.Errorf("shades = %v/%v, expected 0.6/0.3", ghosts[0].Shade, ghosts[1].Shade)
			}
		})
	}
}

func TestStepDerivesTrailFromMovedBall(t *testing.T) {
	p, s := newTestPhysics(1)
	s.Ball.Pos = core.Vec{X: 498, Y: 359}
	s.Ball.Vel = core.Vec{X: 2, Y: 1}

	p.Step(&s, nil)

	if s.Ghosts[0].Pos != (core.Vec{X: 496, Y: 358}) {
		t.Errorf("near ghost = %v, expected (496,358)", s.Ghosts[0].Pos)
	}
}

func TestWallBounce(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec
		vel    core.Vec
		wantY  float64
		wantVY float64
	}{
		{"top", core.Vec{X: 500, Y: 713}, core.Vec{X: 2, Y: 3}, 715, -3},
		{"bottom", core.Vec{X: 500, Y: 6}, core.Vec{X: 2, Y: -2}, 5, 2},
		{"open field", core.Vec{X: 500, Y: 300}, core.Vec{X: 2, Y: 1}, 301, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestPhysics(1)
			s.Ball.Pos = tt.pos
			s.Ball.Vel = tt.vel

			p.Step(&s, nil)

			if s.Ball.Pos.Y != tt.wantY || s.Ball.Vel.Y != tt.wantVY {
				t.Errorf("ball y=%v vy=%v, expected y=%v vy=%v",
					s.Ball.Pos.Y, s.Ball.Vel.Y, tt.wantY, tt.wantVY)
			}
		})
	}
}

func TestScoring(t *testing.T) {
	tests := []struct {
		name      string
		pos       core.Vec
		vel       core.Vec
		side      core.Side
		left      int
		right     int
		leftUnit  ssd.Pattern
		rightUnit ssd.Pattern
	}{
		{"ball leaves left", core.Vec{X: 1, Y: 200}, core.Vec{X: -2, Y: 0}, core.SideRight, 0, 1, ssd.Zero, ssd.One},
		{"ball leaves right", core.Vec{X: 959, Y: 100}, core.Vec{X: 2, Y: 0}, core.SideLeft, 1, 0, ssd.One, ssd.Zero},
		{"capped ball leaves left", core.Vec{X: 3, Y: 200}, core.Vec{X: -8, Y: 2}, core.SideRight, 0, 1, ssd.Zero, ssd.One},
		{"sped-up ball leaves right", core.Vec{X: 955, Y: 100}, core.Vec{X: 7.2, Y: -1}, core.SideLeft, 1, 0, ssd.One, ssd.Zero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestPhysics(7)
			s.Ball.Pos = tt.pos
			s.Ball.Vel = tt.vel
			s.Ball.Color = core.RGB{R: 1, G: 0.5, B: 0.5}

			res := p.Step(&s, nil)

			if res.Scored != tt.side {
				t.Errorf("Scored = %v, expected %v", res.Scored, tt.side)
			}
			if s.Score.Left != tt.left || s.Score.Right != tt.right {
				t.Errorf("score = %d:%d, expected %d:%d", s.Score.Left, s.Score.Right, tt.left, tt.right)
			}
			if res.Status.LeftScore != tt.left || res.Status.RightScore != tt.right {
				t.Errorf("status score = %d:%d", res.Status.LeftScore, res.Status.RightScore)
			}
			if s.Score.Digits[DigitLeftTens] != ssd.Zero || s.Score.Digits[DigitRightTens] != ssd.Zero {
				t.Errorf("tens digits = %v/%v, expected zero", s.Score.Digits[DigitLeftTens], s.Score.Digits[DigitRightTens])
			}
			if s.Score.Digits[DigitLeftUnits] != tt.leftUnit || s.Score.Digits[DigitRightUnits] != tt.rightUnit {
				t.Errorf("unit digits = %v/%v, expected %v/%v",
					s.Score.Digits[DigitLeftUnits], s.Score.Digits[DigitRightUnits], tt.leftUnit, tt.rightUnit)
			}
			if s.Ball.Pos != (core.Vec{X: 480, Y: 360}) || s.Ball.Vel.X != 2 {
				t.Errorf("ball not served: pos=%v vel=%v", s.Ball.Pos, s.Ball.Vel)
			}
			if vy := math.Abs(s.Ball.Vel.Y); vy != 1 && vy != 2 {
				t.Errorf("serve vy = %v, expected ±1 or ±2", s.Ball.Vel.Y)
			}
			if s.Ball.Color != core.White {
				t.Errorf("serve should clear the ball tint, got %+v", s.Ball.Color)
			}
		})
	}
}

func TestScoreBoardEncodesTensAndUnits(t *testing.T) {
	sb := NewScoreBoard()
	for range 42 {
		sb.Award(core.SideLeft)
	}
	if sb.Digits[DigitLeftTens] != ssd.Four || sb.Digits[DigitLeftUnits] != ssd.Two {
		t.Errorf("42 shown as %v %v", sb.Digits[DigitLeftTens], sb.Digits[DigitLeftUnits])
	}

	for range 58 {
		sb.Award(core.SideLeft)
	}
	if sb.Left != 100 {
		t.Fatalf("Left = %d, expected 100", sb.Left)
	}
	if sb.Digits[DigitLeftTens] != ssd.Error || sb.Digits[DigitLeftUnits] != ssd.Zero {
		t.Errorf("100 shown as %v %v, expected E 0", sb.Digits[DigitLeftTens], sb.Digits[DigitLeftUnits])
	}
	if sb.Right != 0 || sb.Digits[DigitRightUnits] != ssd.Zero {
		t.Error("awarding left must not touch the right side")
	}

	sb.Award(core.SideNone)
	if sb.Left != 100 || sb.Right != 0 {
		t.Error("SideNone must not change the score")
	}
}

func TestPaddleCollision(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec
		vel    core.Vec
		side   core.Side
		wantX  float64
		wantVX float64
	}{
		{"left paddle", core.Vec{X: 38, Y: 380}, core.Vec{X: -2, Y: 0}, core.SideLeft, 36, 2.4},
		{"right paddle", core.Vec{X: 928, Y: 380}, core.Vec{X: 2, Y: 0}, core.SideRight, 924, -2.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestPhysics(1)
			s.Ball.Pos = tt.pos
			s.Ball.Vel = tt.vel

			res := p.Step(&s, nil)

			if res.Bounced != tt.side {
				t.Fatalf("Bounced = %v, expected %v", res.Bounced, tt.side)
			}
			if s.Ball.Pos.X != tt.wantX {
				t.Errorf("ball x = %v, expected flush at %v", s.Ball.Pos.X, tt.wantX)
			}
			if !near(s.Ball.Vel.X, tt.wantVX) || !near(res.BallVX, tt.wantVX) {
				t.Errorf("vx = %v (reported %v), expected %v", s.Ball.Vel.X, res.BallVX, tt.wantVX)
			}
			if !near(s.Ball.Color.G, 0.9) || !near(s.Ball.Color.B, 0.9) || s.Ball.Color.R != 1 {
				t.Errorf("ball tint = %+v, expected one reddening step", s.Ball.Color)
			}

			pad := s.Left
			if tt.side == core.SideRight {
				pad = s.Right
			}
			if pad.Color.G != 1 || !near(pad.Color.R, 0.01) || !near(pad.Color.B, 0.01) {
				t.Errorf("paddle color = %+v, expected green flash after one fade step", pad.Color)
			}
		})
	}
}

func TestPaddleMissBelowBox(t *testing.T) {
	p, s := newTestPhysics(1)
	s.Ball.Pos = core.Vec{X: 38, Y: 300}
	s.Ball.Vel = core.Vec{X: -2, Y: 0}

	res := p.Step(&s, nil)

	if res.Bounced != core.SideNone || s.Ball.Vel.X != -2 {
		t.Errorf("ball below the paddle bounced: %+v", res)
	}
}

func TestReflectCapsSpeed(t *testing.T) {
	p, _ := newTestPhysics(1)

	v := -2.0
	for i := range 30 {
		nv := p.reflect(v, math.Abs(v))
		if math.Abs(nv) > 8 {
			t.Fatalf("bounce %d: |vx| = %v exceeds 8", i, math.Abs(nv))
		}
		if math.Signbit(nv) == math.Signbit(v) {
			t.Fatalf("bounce %d: sign did not flip (%v -> %v)", i, v, nv)
		}
		v = nv
	}
	if math.Abs(v) != 8 {
		t.Errorf("after 30 bounces |vx| = %v, expected the cap 8", math.Abs(v))
	}
}

func TestReflectAtCapOnlyFlips(t *testing.T) {
	p, _ := newTestPhysics(1)

	tests := []struct {
		vx   float64
		want float64
	}{
		{-8, 8},
		{8, -8},
		{-7.5, 8},
		{-2, 2.4},
	}

	for _, tt := range tests {
		if got := p.reflect(tt.vx, math.Abs(tt.vx)); !near(got, tt.want) {
			t.Errorf("reflect(%v) = %v, expected %v", tt.vx, got, tt.want)
		}
	}
}

func TestInputAcceleration(t *testing.T) {
	tests := []struct {
		name   string
		keys   []core.KeyCode
		leftV  float64
		rightV float64
	}{
		{"no keys", nil, 0, 0},
		{"W", []core.KeyCode{core.KeyW}, 2, 0},
		{"S", []core.KeyCode{core.KeyS}, -2, 0},
		{"W and S cancel", []core.KeyCode{core.KeyW, core.KeyS}, 0, 0},
		{"O", []core.KeyCode{core.KeyO}, 0, 2},
		{"L", []core.KeyCode{core.KeyL}, 0, -2},
		{"both paddles", []core.KeyCode{core.KeyW, core.KeyL}, 2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestPhysics(1)
			in := core.NewInputState()
			for _, k := range tt.keys {
				in.Dispatch(core.Pressed(k))
			}

			p.Step(&s, in)

			if s.Left.Vel != tt.leftV || s.Right.Vel != tt.rightV {
				t.Errorf("velocities = %v/%v, expected %v/%v", s.Left.Vel, s.Right.Vel, tt.leftV, tt.rightV)
			}
		})
	}
}

func TestPaddleDriftsToRest(t *testing.T) {
	p, s := newTestPhysics(1)
	in := core.NewInputState()
	in.Dispatch(core.Pressed(core.KeyW))

	p.Step(&s, in) // vel 2, y 360
	p.Step(&s, in) // y 362, vel 3
	in.Dispatch(core.Released(core.KeyW))

	wantY := []float64{365, 367, 368, 368}
	for i, y := range wantY {
		p.Step(&s, in)
		if s.Left.Pos.Y != y {
			t.Errorf("frame %d after release: y = %v, expected %v", i, s.Left.Pos.Y, y)
		}
	}
	if s.Left.Vel != 0 {
		t.Errorf("paddle still moving: vel = %v", s.Left.Vel)
	}
}

func TestDecelerate(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{5, 4},
		{-5, -4},
		{1, 0},
		{0.5, 0},
		{-0.5, 0},
		{0, 0},
	}
	for _, tt := range tests {
		if got := decelerate(tt.v, 1); got != tt.want {
			t.Errorf("decelerate(%v) = %v, expected %v", tt.v, got, tt.want)
		}
	}
}

func TestPaddleClamp(t *testing.T) {
	tests := []struct {
		name  string
		y     float64
		vel   float64
		wantY float64
	}{
		{"top", 650, 10, 657},
		{"bottom", 2, -5, 0},
		{"inside", 300, 3, 303},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, s := newTestPhysics(1)
			s.Right.Pos.Y = tt.y
			s.Right.Vel = tt.vel

			p.Step(&s, nil)

			if s.Right.Pos.Y != tt.wantY {
				t.Errorf("y = %v, expected %v", s.Right.Pos.Y, tt.wantY)
			}
		})
	}
}

func TestFlashFadesBackToWhite(t *testing.T) {
	p, s := newTestPhysics(1)
	s.Left.Color = paddleHitColor
	s.Ball.Pos = core.Vec{X: 480, Y: 100}

	for range 150 {
		p.Step(&s, nil)
	}
	if s.Left.Color != core.White {
		t.Errorf("paddle color = %+v, expected white", s.Left.Color)
	}
}

func TestStepInvariants(t *testing.T) {
	p, s := newTestPhysics(99)
	rng := rand.New(rand.NewSource(5))
	in := core.NewInputState()
	keys := []core.KeyCode{core.KeyW, core.KeyS, core.KeyO, core.KeyL}

	valid := make(map[ssd.Pattern]bool)
	for n := range 10 {
		valid[ssd.Encode(n)] = true
	}
	valid[ssd.Error] = true

	prevLeft, prevRight := 0, 0
	for frame := range 20000 {
		k := keys[rng.Intn(len(keys))]
		if rng.Intn(2) == 0 {
			in.Dispatch(core.Pressed(k))
		} else {
			in.Dispatch(core.Released(k))
		}

		res := p.Step(&s, in)

		if math.Abs(s.Ball.Vel.X) > 8 {
			t.Fatalf("frame %d: |vx| = %v", frame, s.Ball.Vel.X)
		}
		for _, pad := range []Paddle{s.Left, s.Right} {
			if pad.Pos.Y < 0 || pad.Pos.Y > 657 {
				t.Fatalf("frame %d: paddle y = %v out of range", frame, pad.Pos.Y)
			}
		}
		if s.Ball.Pos.Y < 5 || s.Ball.Pos.Y > 715 {
			t.Fatalf("frame %d: ball y = %v outside the walls", frame, s.Ball.Pos.Y)
		}
		if s.Score.Left < prevLeft || s.Score.Right < prevRight {
			t.Fatalf("frame %d: score decreased", frame)
		}
		if s.Score.Left+s.Score.Right > prevLeft+prevRight+1 {
			t.Fatalf("frame %d: more than one point awarded", frame)
		}
		if (res.Scored != core.SideNone) != (s.Score.Left+s.Score.Right == prevLeft+prevRight+1) {
			t.Fatalf("frame %d: Scored=%v does not match score change", frame, res.Scored)
		}
		for i, d := range s.Score.Digits {
			if !valid[d] {
				t.Fatalf("frame %d: digit %d has invalid pattern %v", frame, i, d)
			}
		}
		if res.Status.Tick != uint64(frame+1) {
			t.Fatalf("frame %d: tick = %d", frame, res.Status.Tick)
		}
		prevLeft, prevRight = s.Score.Left, s.Score.Right
	}
}
