package headless

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/games/pong"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

func runOptions(frames int, out *bytes.Buffer) registry.RunOptions {
	return registry.RunOptions{
		Runtime: core.RuntimeConfig{ScreenW: 96, ScreenH: 36, TickRate: 60, Seed: 9},
		Config:  config.DefaultPongConfig(),
		Frames:  frames,
		Output:  out,
	}
}

func TestRunPrintsFinalFrame(t *testing.T) {
	var out bytes.Buffer
	game := pong.New(config.DefaultPongConfig())

	if err := (Backend{}).Run(context.Background(), game, runOptions(10, &out)); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 37 {
		t.Fatalf("got %d lines, expected 36 screen rows and a score line", len(lines))
	}
	if got := lines[36]; got != "frame 10  score 0 : 0" {
		t.Errorf("score line = %q", got)
	}
	if !strings.ContainsRune(out.String(), '█') {
		t.Error("frame contains no filled cells")
	}
	if game.Status().Tick != 10 {
		t.Errorf("Tick = %d, expected 10", game.Status().Tick)
	}
}

func TestRunDefaultFrames(t *testing.T) {
	var out bytes.Buffer
	game := pong.New(config.DefaultPongConfig())

	if err := (Backend{}).Run(context.Background(), game, runOptions(0, &out)); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if game.Status().Tick != DefaultFrames {
		t.Errorf("Tick = %d, expected %d", game.Status().Tick, DefaultFrames)
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	game := pong.New(config.DefaultPongConfig())
	if err := (Backend{}).Run(ctx, game, runOptions(10, &out)); err != nil {
		t.Errorf("Run() = %v, a cancelled run should stop cleanly", err)
	}
	if game.Status().Tick != 0 {
		t.Errorf("Tick = %d, expected no frames after cancellation", game.Status().Tick)
	}
	if !strings.Contains(out.String(), "frame 0  score 0 : 0") {
		t.Errorf("expected the frame reached so far, got:\n%s", out.String())
	}
}

func TestRunDeadlineExceeded(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()

	var out bytes.Buffer
	err := (Backend{}).Run(ctx, pong.New(config.DefaultPongConfig()), runOptions(10, &out))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, expected context.DeadlineExceeded", err)
	}
}

func TestRegistered(t *testing.T) {
	b, err := registry.CreateBackend("headless")
	if err != nil {
		t.Fatalf("CreateBackend(headless) failed: %v", err)
	}
	if b.Name() != "headless" {
		t.Errorf("Name() = %q", b.Name())
	}
}
