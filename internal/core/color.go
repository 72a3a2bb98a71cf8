package core

import "image/color"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for terminal cells.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
	ColorDarkGray
)

// RGB is a flat fill color with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// Common fill colors.
var (
	White = RGB{R: 1, G: 1, B: 1}
	Black = RGB{}
)

// Gray returns a neutral color with all channels set to v.
func Gray(v float64) RGB {
	return RGB{R: v, G: v, B: v}
}

// RGBA converts c to an opaque 8-bit color, clamping out-of-range channels.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(ClampF(c.R, 0, 1) * 255),
		G: uint8(ClampF(c.G, 0, 1) * 255),
		B: uint8(ClampF(c.B, 0, 1) * 255),
		A: 0xff,
	}
}

// ANSI quantizes c to the nearest terminal palette entry.
func (c RGB) ANSI() Color {
	r := ClampF(c.R, 0, 1)
	g := ClampF(c.G, 0, 1)
	b := ClampF(c.B, 0, 1)

	const tint = 0.15
	switch {
	case g-r > tint && g-b > tint:
		if g > 0.6 {
			return ColorBrightGreen
		}
		return ColorGreen
	case r-g > tint && r-b > tint:
		if r > 0.6 && g < 0.5 {
			return ColorBrightRed
		}
		return ColorRed
	}

	// Neutral: pick a gray step by luminance
	lum := (r + g + b) / 3
	switch {
	case lum >= 0.9:
		return ColorBrightWhite
	case lum >= 0.5:
		return ColorWhite
	case lum >= 0.25:
		return ColorGray
	default:
		return ColorDarkGray
	}
}
