package raster

import (
	"image"
	"math"

	"pie/internal/geom"
)

// PaintSegment paints a stroke segment from one canvas-space position to
// another into buf with a square brush of the given half-width. Both ends
// are floored to pixels and the segment is sampled once per pixel along its
// dominant axis. A zero-length segment paints a single dab at from.
//
// It returns the rectangle of pixels touched, clipped to buf.
func PaintSegment(buf *Buffer, from, to geom.Vec2, c Color, halfWidth float64) image.Rectangle {
	x0, y0 := int(math.Floor(from.X)), int(math.Floor(from.Y))
	x1, y1 := int(math.Floor(to.X)), int(math.Floor(to.Y))

	dx, dy := x1-x0, y1-y0
	steps := max(abs(dx), abs(dy))
	if steps == 0 {
		return PaintPoint(buf, x0, y0, c, halfWidth)
	}

	var dirty image.Rectangle
	for i := 0; i <= steps; i++ {
		// start + delta*i/steps, computed exactly so the last sample lands on the end pixel
		x := x0 + floorDiv(dx*i, steps)
		y := y0 + floorDiv(dy*i, steps)
		dirty = dirty.Union(PaintPoint(buf, x, y, c, halfWidth))
	}
	return dirty
}

// PaintPoint paints one brush dab centered on (x, y): a square of side
// 2*halfWidth, at least one pixel.
func PaintPoint(buf *Buffer, x, y int, c Color, halfWidth float64) image.Rectangle {
	side := max(1, int(2*halfWidth))
	x0 := x - side/2
	y0 := y - side/2
	return FillRect(buf, image.Rect(x0, y0, x0+side, y0+side), c)
}

// FillRect sets every pixel of r, clipped to buf, to c.
func FillRect(buf *Buffer, r image.Rectangle, c Color) image.Rectangle {
	r = r.Intersect(buf.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for i := buf.Index(r.Min.X, y); i < buf.Index(r.Max.X, y); i++ {
			buf.put(i, c)
		}
	}
	return r
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
