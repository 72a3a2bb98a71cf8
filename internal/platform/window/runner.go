package window

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/platform"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

// runner adapts a registry.Game to ebiten.Game. Update runs once per tick:
// it forwards key edges to the driver and steps the simulation.
type runner struct {
	ctx    context.Context
	driver *platform.Driver
	game   registry.Game
	field  core.Vec
	canvas *imageCanvas
	keys   []ebiten.Key
}

func newRunner(ctx context.Context, game registry.Game, opts registry.RunOptions) *runner {
	field := game.Field()
	return &runner{
		ctx:    ctx,
		driver: platform.NewDriver(game, opts.Runtime, opts.Logger),
		game:   game,
		field:  field,
		canvas: newImageCanvas(field.Y),
	}
}

// Update implements ebiten.Game.
func (r *runner) Update() error {
	if r.ctx.Err() != nil {
		return ebiten.Termination
	}

	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, k := range r.keys {
		if code := translateKey(k); code != core.KeyUnknown {
			r.driver.Handle(core.Pressed(code))
		}
	}
	r.keys = inpututil.AppendJustReleasedKeys(r.keys[:0])
	for _, k := range r.keys {
		if code := translateKey(k); code != core.KeyUnknown {
			r.driver.Handle(core.Released(code))
		}
	}

	if r.driver.Quit() {
		return ebiten.Termination
	}
	r.driver.Frame()
	return nil
}

// Draw implements ebiten.Game.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	r.canvas.dst = screen
	r.game.Draw(r.canvas)
	r.canvas.dst = nil
}

// Layout implements ebiten.Game. The playfield has a fixed logical size and
// ebiten scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return int(r.field.X), int(r.field.Y)
}

// translateKey maps the keys the game knows about; everything else is
// KeyUnknown.
func translateKey(k ebiten.Key) core.KeyCode {
	switch k {
	case ebiten.KeyW:
		return core.KeyW
	case ebiten.KeyS:
		return core.KeyS
	case ebiten.KeyO:
		return core.KeyO
	case ebiten.KeyL:
		return core.KeyL
	case ebiten.KeyQ:
		return core.KeyQ
	case ebiten.KeyEscape:
		return core.KeyEscape
	default:
		return core.KeyUnknown
	}
}
