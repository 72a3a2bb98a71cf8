package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-lab/internal/core"
	"github.com/vovakirdan/pong-lab/internal/ssd"
)

var glyphsCmd = &cobra.Command{
	Use:   "glyphs",
	Short: "Print the seven-segment glyphs",
	Long: `Rasterizes the digits 0-9 and the error glyph with the same segment
table the scoreboard uses, and prints their bit patterns.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeGlyphs(cmd.OutOrStdout())
	},
}

// Glyph cells are spaced one segment width apart; each text cell covers
// 5x10 units of a digit cell.
const (
	glyphPitch  = ssd.CellWidth + 10
	glyphCount  = 11
	unitsPerCol = 5
	unitsPerRow = 10
)

// writeGlyphs draws the glyphs on one screen and their labels and bit
// patterns on a two-row text screen underneath.
func writeGlyphs(w io.Writer) error {
	fieldW := float64(glyphPitch * glyphCount)
	fieldH := float64(ssd.CellHeight)
	cols := int(fieldW) / unitsPerCol
	glyphs := core.NewScreen(cols, ssd.CellHeight/unitsPerRow)
	legend := core.NewScreen(cols, 2)
	canvas := core.NewScreenCanvas(glyphs, fieldW, fieldH)

	col := glyphPitch / unitsPerCol
	for n := range glyphCount {
		p := ssd.Encode(n) // 10 encodes as the error glyph
		ssd.Draw(canvas, core.Vec{X: float64(n * glyphPitch)}, p, core.White)

		label := fmt.Sprint(n)
		if p == ssd.Error {
			label = "E"
		}
		legend.DrawText(n*col, 0, label)
		legend.DrawText(n*col, 1, p.String())
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n", glyphs.String(), legend.String())
	return err
}
