package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/pong-lab/internal/core"
)

// imageCanvas fills convex polygons onto an ebiten image. Playfield y grows
// upwards, image y grows downwards, so y is flipped against the field height.
type imageCanvas struct {
	dst      *ebiten.Image
	height   float64
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func newImageCanvas(height float64) *imageCanvas {
	src := ebiten.NewImage(3, 3)
	src.Fill(color.White)
	return &imageCanvas{
		height: height,
		// The inner pixel avoids sampling the image border.
		white: src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// FillPolygon implements core.Canvas.
func (c *imageCanvas) FillPolygon(points []core.Vec, rgb core.RGB) {
	if c.dst == nil || len(points) < 3 {
		return
	}
	c.vertices = appendVertices(c.vertices[:0], points, c.height, rgb)
	c.indices = appendFanIndices(c.indices[:0], len(points))
	c.dst.DrawTriangles(c.vertices, c.indices, c.white, nil)
}

// appendVertices converts playfield points into colored image vertices.
func appendVertices(dst []ebiten.Vertex, points []core.Vec, height float64, rgb core.RGB) []ebiten.Vertex {
	rgba := rgb.RGBA()
	r := float32(rgba.R) / 0xff
	g := float32(rgba.G) / 0xff
	b := float32(rgba.B) / 0xff

	for _, p := range points {
		dst = append(dst, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(height - p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: 1,
		})
	}
	return dst
}

// appendFanIndices triangulates a convex polygon of n vertices as a fan
// around vertex 0.
func appendFanIndices(dst []uint16, n int) []uint16 {
	for i := 1; i+1 < n; i++ {
		dst = append(dst, 0, uint16(i), uint16(i+1)) //#nosec G115 -- polygons are tiny
	}
	return dst
}
