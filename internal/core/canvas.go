package core

import "math"

// Canvas is the drawing primitive the game renders into.
// Points form a closed convex loop in playfield coordinates.
type Canvas interface {
	FillPolygon(points []Vec, c RGB)
}

// Disc approximates a circle of radius r at center with a closed loop of n
// vertices.
func Disc(center Vec, r float64, n int) []Vec {
	if n < 3 {
		n = 3
	}
	pts := make([]Vec, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Vec{X: center.X + r*math.Cos(a), Y: center.Y + r*math.Sin(a)}
	}
	return pts
}
