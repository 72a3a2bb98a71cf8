// Package window presents a game in a desktop window using ebiten.
package window

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong-lab/internal/registry"
)

// ErrNoDisplay is returned before any window is created when the process
// has no display to open one on.
var ErrNoDisplay = errors.New("window: no display available (DISPLAY and WAYLAND_DISPLAY are unset)")

// Backend is the default, windowed backend.
type Backend struct{}

// Name returns the backend identifier.
func (Backend) Name() string {
	return "window"
}

// Description returns a one-line summary.
func (Backend) Description() string {
	return "desktop window (default)"
}

// Run opens the window and blocks until it is closed, Escape or Q is
// pressed, or ctx is cancelled.
func (Backend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	if err := probeDisplay(runtime.GOOS, os.Getenv); err != nil {
		return err
	}

	win := opts.Config.Window
	scale := win.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.Runtime.TickRate
	if tps <= 0 {
		tps = 60
	}

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(int(win.Width*scale), int(win.Height*scale))
	ebiten.SetTPS(tps)

	r := newRunner(ctx, game, opts)
	if opts.Logger != nil {
		opts.Logger.Info("window open", "title", win.Title, "tps", tps, "scale", scale)
	}

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

// probeDisplay fails fast on X11/Wayland systems with no display, where the
// window library would otherwise abort the process.
func probeDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return ErrNoDisplay
		}
	}
	return nil
}

func init() {
	registry.RegisterBackend("window", func() registry.Backend { return Backend{} })
}
