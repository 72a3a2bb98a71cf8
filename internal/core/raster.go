package core

import "math"

// ScreenCanvas rasterizes playfield polygons onto a Screen.
// The playfield (origin bottom-left) is stretched over the whole screen
// (origin top-left), so the y axis is flipped.
type ScreenCanvas struct {
	Screen *Screen
	Field  Vec  // Playfield size in units
	Glyph  rune // Rune used for filled cells
}

// NewScreenCanvas creates a canvas mapping a field of the given size onto s.
func NewScreenCanvas(s *Screen, fieldW, fieldH float64) *ScreenCanvas {
	return &ScreenCanvas{
		Screen: s,
		Field:  Vec{X: fieldW, Y: fieldH},
		Glyph:  '█',
	}
}

// cellSize returns the playfield extent of one character cell.
func (c *ScreenCanvas) cellSize() (float64, float64) {
	return c.Field.X / float64(c.Screen.Width()), c.Field.Y / float64(c.Screen.Height())
}

// cellAt returns the cell containing playfield point p.
func (c *ScreenCanvas) cellAt(p Vec) (int, int) {
	cw, ch := c.cellSize()
	return int(math.Floor(p.X / cw)), int(math.Floor((c.Field.Y - p.Y) / ch))
}

// FillPolygon marks every cell whose center lies inside the polygon.
// Polygons smaller than a cell still mark the cell holding their centroid,
// so the ball never disappears on coarse terminals.
func (c *ScreenCanvas) FillPolygon(points []Vec, color RGB) {
	if len(points) < 3 || c.Screen.Width() == 0 || c.Screen.Height() == 0 {
		return
	}

	minP, maxP := points[0], points[0]
	var centroid Vec
	for _, p := range points {
		minP.X = math.Min(minP.X, p.X)
		minP.Y = math.Min(minP.Y, p.Y)
		maxP.X = math.Max(maxP.X, p.X)
		maxP.Y = math.Max(maxP.Y, p.Y)
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(points)))

	ansi := color.ANSI()
	cw, ch := c.cellSize()

	// Top-left and bottom-right cells of the bounding box
	x0, y0 := c.cellAt(Vec{X: minP.X, Y: maxP.Y})
	x1, y1 := c.cellAt(Vec{X: maxP.X, Y: minP.Y})

	filled := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			center := Vec{
				X: (float64(cx) + 0.5) * cw,
				Y: c.Field.Y - (float64(cy)+0.5)*ch,
			}
			if InsideConvex(points, center) {
				c.Screen.SetCell(cx, cy, c.Glyph, ansi)
				filled = true
			}
		}
	}

	if !filled {
		cx, cy := c.cellAt(centroid)
		c.Screen.SetCell(cx, cy, c.Glyph, ansi)
	}
}

// InsideConvex reports whether p lies inside (or on the edge of) the convex
// polygon described by the closed loop pts. Winding order does not matter.
func InsideConvex(pts []Vec, p Vec) bool {
	var pos, neg bool
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}
