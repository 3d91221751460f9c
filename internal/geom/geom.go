// Package geom holds the small pure functions the canvas uses to lay
// itself out on screen and to map pointer positions back to pixels.
package geom

import "cmp"

// Vec2 is a point or size in screen or canvas space.
type Vec2 struct {
	X, Y float64
}

func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// WithinOpenBounds reports whether p lies strictly inside the box at b with
// size w×h. Points on any edge, including the top-left corner, are outside.
func WithinOpenBounds(p, b Vec2, w, h float64) bool {
	return p.X > b.X && p.X < b.X+w && p.Y > b.Y && p.Y < b.Y+h
}

// ScaleToFit returns the largest uniform scale that fits a srcW×srcH box
// inside a dstW×dstH box.
func ScaleToFit(srcW, srcH, dstW, dstH float64) float64 {
	return min(dstW/srcW, dstH/srcH)
}

func Clamp[T cmp.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ScreenToCanvas inverts the view transform: (pos - offset) / scale.
func ScreenToCanvas(pos, offset Vec2, scale float64) Vec2 {
	return Vec2{
		X: (pos.X - offset.X) / scale,
		Y: (pos.Y - offset.Y) / scale,
	}
}
