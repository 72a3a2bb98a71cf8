// pong is a two-player paddle game with a seven-segment scoreboard.
//
// Usage:
//
//	pong                     - Play in a desktop window
//	pong play                - Same as above
//	pong list                - List presentation backends
//	pong glyphs              - Print the seven-segment glyph table
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible serves
//	--config <path>     - Load a custom YAML config
//	--backend <name>    - window, tui or headless (default: window)
//	--log-level <level> - Override the configured log level
//	--frames <n>        - Frames to simulate with the headless backend
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game and backends to register them
	_ "github.com/vovakirdan/pong-lab/internal/games/pong"
	_ "github.com/vovakirdan/pong-lab/internal/platform/headless"
	_ "github.com/vovakirdan/pong-lab/internal/platform/tui"
	_ "github.com/vovakirdan/pong-lab/internal/platform/window"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagBackend  string
	flagLogLevel string
	flagFrames   int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong Lab - two paddles, one ball, seven-segment scores",
	Long: `Pong Lab is a two-player paddle game. The left player uses W/S,
the right player uses O/L. Escape or Q quits.

Available commands:
  play     - Start a match (default)
  list     - Show presentation backends
  glyphs   - Print the seven-segment digit glyphs

Examples:
  pong
  pong play --backend tui
  pong play --backend headless --frames 1200 --seed 7
  pong --config ./my-pong.yaml --log-level debug`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "window", "Presentation backend (see 'pong list')")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().IntVar(&flagFrames, "frames", 0, "Frames to simulate (headless backend only)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(glyphsCmd)
}
