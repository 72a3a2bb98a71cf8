package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-lab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and presentation backends",
	Long:  `Shows the registered games and every backend they can be played on.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeGames(cmd.OutOrStdout(), registry.List())
		writeBackends(cmd.OutOrStdout(), registry.Backends())
	},
}

func writeGames(w io.Writer, games []registry.Info) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	fmt.Fprintln(w, "Available games:")
	fmt.Fprintln(w)
	writeTable(w, "ID", "Title", games)
	fmt.Fprintln(w)
}

func writeBackends(w io.Writer, backends []registry.Info) {
	if len(backends) == 0 {
		fmt.Fprintln(w, "No backends available.")
		return
	}

	fmt.Fprintln(w, "Available backends:")
	fmt.Fprintln(w)

	writeTable(w, "Name", "Description", backends)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'pong play --backend <name>' to use one.")
}

// writeTable prints infos as two aligned columns under the given headers.
func writeTable(w io.Writer, idHeader, titleHeader string, infos []registry.Info) {
	// Calculate column widths
	maxIDLen := len(idHeader)
	for _, info := range infos {
		if len(info.ID) > maxIDLen {
			maxIDLen = len(info.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, idHeader, titleHeader)
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, strings.Repeat("-", len(idHeader)), strings.Repeat("-", len(titleHeader)))

	for _, info := range infos {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, info.ID, info.Title)
	}
}
