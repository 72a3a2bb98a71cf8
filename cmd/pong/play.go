package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pong-lab/internal/config"
	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/logging"
	"github.com/vovakirdan/pong-lab/internal/registry"
)

const gameID = "pong"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a match",
	Long: `Start a two-player match.

Controls:
  W/S   - Left paddle up/down
  O/L   - Right paddle up/down
  Esc/Q - Quit

Examples:
  pong play
  pong play --backend tui
  pong play --backend headless --frames 600`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("game %q is not registered", gameID)
	}

	backend, err := registry.CreateBackend(flagBackend)
	if err != nil {
		return fmt.Errorf("%w (run 'pong list' to see backends)", err)
	}

	logger, closeLog, err := logging.New(logOptions(cfg.Log, backend.Name()))
	if err != nil {
		return err
	}
	//nolint:errcheck // Best-effort close on exit
	defer closeLog()

	game, err := registry.Create(gameID, cfg)
	if err != nil {
		return err
	}

	// Get terminal size for the text backends
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := registry.RunOptions{
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Config: cfg,
		Logger: logger,
		Frames: flagFrames,
		Output: cmd.OutOrStdout(),
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "backend", backend.Name(), "fps", flagFPS, "seed", flagSeed)
	if err := backend.Run(ctx, game, opts); err != nil {
		logger.Error("backend failed", "backend", backend.Name(), "err", err)
		return err
	}

	st := game.Status()
	logger.Info("stopped", "left", st.LeftScore, "right", st.RightScore, "frames", st.Tick)
	return nil
}

// logOptions picks the log destination. The terminal backend owns the
// screen, so it only logs to a file.
func logOptions(lc config.LogConfig, backend string) logging.Options {
	level := lc.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}

	var out io.Writer = os.Stderr
	if backend == "tui" {
		out = io.Discard
	}
	return logging.Options{Level: level, File: lc.File, Output: out}
}
