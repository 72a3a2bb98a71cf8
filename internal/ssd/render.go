package ssd

import "github.com/vovakirdan/pong-lab/internal/core"

// Digit cell size in local units.
const (
	CellWidth  = 40
	CellHeight = 110
)

// Quad is one lit segment, as a box local to the digit cell.
type Quad struct {
	Segment Segment
	Box     core.Box
}

// segmentBoxes is the whole display protocol: where each bar sits inside the
// 40x110 cell (origin bottom-left).
var segmentBoxes = [segmentCount]core.Box{
	SegA: core.NewBox(0, 100, 40, 10),
	SegB: core.NewBox(30, 50, 10, 60),
	SegC: core.NewBox(30, 0, 10, 50),
	SegD: core.NewBox(0, 0, 40, 10),
	SegE: core.NewBox(0, 0, 10, 50),
	SegF: core.NewBox(0, 50, 10, 60),
	SegG: core.NewBox(0, 50, 40, 10),
}

// SegmentBox returns the local box of segment s.
func SegmentBox(s Segment) core.Box {
	return segmentBoxes[s]
}

// Render returns the quads for every lit segment of p, in a..g order.
// Cleared segments produce nothing.
func Render(p Pattern) []Quad {
	quads := make([]Quad, 0, segmentCount)
	for s := SegA; s < segmentCount; s++ {
		if p.Has(s) {
			quads = append(quads, Quad{Segment: s, Box: segmentBoxes[s]})
		}
	}
	return quads
}

// Draw fills the lit segments of p with the cell's bottom-left corner at
// origin.
func Draw(dst core.Canvas, origin core.Vec, p Pattern, color core.RGB) {
	for _, q := range Render(p) {
		dst.FillPolygon(q.Box.Translate(origin).Corners(), color)
	}
}
