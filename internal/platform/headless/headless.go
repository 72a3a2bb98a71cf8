// Package headless runs a game without any display. It simulates a fixed
// number of frames as fast as possible and prints the final frame as text,
// which makes it handy for smoke tests and scripting.
package headless

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/platform"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

// DefaultFrames is used when RunOptions.Frames is zero.
const DefaultFrames = 600

// Backend is the display-less backend.
type Backend struct{}

// Name returns the backend identifier.
func (Backend) Name() string {
	return "headless"
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "simulate without a display and print the last frame"
}

// Run simulates opts.Frames frames with no input and writes the final frame.
// Cancelling ctx stops early; the frame reached so far is still written.
func (Backend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	frames := opts.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	d := platform.NewDriver(game, opts.Runtime, opts.Logger)
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			if !errors.Is(err, context.Canceled) {
				return fmt.Errorf("headless: stopped after %d frames: %w", i, err)
			}
			if opts.Logger != nil {
				opts.Logger.Info("headless run interrupted", "frames", i)
			}
			break
		}
		d.Frame()
	}

	return WriteFrame(out, game, opts.Runtime.ScreenW, opts.Runtime.ScreenH)
}

// WriteFrame rasterizes the current frame of game onto a w×h text grid and
// writes it followed by a score line.
func WriteFrame(w io.Writer, game registry.Game, width, height int) error {
	screen := core.NewScreen(width, height)
	field := game.Field()
	game.Draw(core.NewScreenCanvas(screen, field.X, field.Y))

	st := game.Status()
	if _, err := fmt.Fprintf(w, "%s\nframe %d  score %d : %d\n",
		screen.String(), st.Tick, st.LeftScore, st.RightScore); err != nil {
		return fmt.Errorf("headless: write frame: %w", err)
	}
	return nil
}

func init() {
	registry.RegisterBackend("headless", func() registry.Backend { return Backend{} })
}
