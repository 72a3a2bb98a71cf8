// Package core provides fundamental types and utilities shared by the
// simulation and the presentation backends. It has no external dependencies
// (especially no ebiten or Bubble Tea) to keep game logic pure and testable.
package core

// Vec is a point or displacement in playfield units.
// The playfield origin is bottom-left with y growing upwards.
type Vec struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec) Add(o Vec) Vec {
	return Vec{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: v.X * k, Y: v.Y * k}
}

// Box is an axis-aligned box in playfield units, anchored at its
// bottom-left corner.
type Box struct {
	X, Y float64 // Bottom-left corner
	W, H float64 // Width and height
}

// NewBox creates a box from its bottom-left corner and size.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Y + b.H
}

// Contains reports whether p lies inside b. Edges are inclusive, so a point
// resting exactly on a paddle face still counts as a hit.
func (b Box) Contains(p Vec) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Top()
}

// Translate returns b moved by d.
func (b Box) Translate(d Vec) Box {
	return Box{X: b.X + d.X, Y: b.Y + d.Y, W: b.W, H: b.H}
}

// Corners returns the closed vertex loop of b, counter-clockwise from the
// bottom-left corner.
func (b Box) Corners() []Vec {
	return []Vec{
		{X: b.X, Y: b.Y},
		{X: b.Right(), Y: b.Y},
		{X: b.Right(), Y: b.Top()},
		{X: b.X, Y: b.Top()},
	}
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
