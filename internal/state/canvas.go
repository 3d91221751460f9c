// Package state holds the editor's canvas: the committed image, the overlay
// the current stroke is painted into, the view transform that places the
// image on screen and the brush settings.
package state

import (
	"image"
	"log"

	"pie/internal/geom"
	"pie/internal/raster"
)

const (
	DefaultBrushStep = 0.5
	DefaultMaxBrush  = 64.0
)

// Canvas owns the image and overlay buffers. The overlay is fully
// transparent whenever no stroke is in progress.
type Canvas struct {
	Image   *raster.Buffer
	Overlay *raster.Buffer

	// view transform, set by Align
	Scale  float64   // screen units per canvas pixel
	Offset geom.Vec2 // screen position of the image's top-left corner
	Size   geom.Vec2 // on-screen size of the image

	Color     raster.Color
	BrushSize float64 // half-width in canvas pixels
	BrushStep float64
	MaxBrush  float64

	stroke *Stroke
}

// NewCanvas wraps an existing image. The overlay is allocated to match.
func NewCanvas(img *raster.Buffer) (*Canvas, error) {
	overlay, err := raster.NewBuffer(img.Width(), img.Height())
	if err != nil {
		return nil, err
	}
	return &Canvas{
		Image:     img,
		Overlay:   overlay,
		Scale:     1,
		Color:     raster.Black,
		BrushStep: DefaultBrushStep,
		MaxBrush:  DefaultMaxBrush,
	}, nil
}

// NewBlankCanvas creates a width×height canvas filled with fill.
func NewBlankCanvas(width, height int, fill raster.Color) (*Canvas, error) {
	img, err := raster.NewBuffer(width, height)
	if err != nil {
		return nil, err
	}
	img.Fill(fill)
	return NewCanvas(img)
}

func (c *Canvas) Width() int  { return c.Image.Width() }
func (c *Canvas) Height() int { return c.Image.Height() }

// Align fits the image into a square viewport of the given side, centered,
// preserving aspect ratio. The window is not resizable so this runs once.
func (c *Canvas) Align(viewport float64) {
	w, h := float64(c.Width()), float64(c.Height())
	c.Scale = geom.ScaleToFit(w, h, viewport, viewport)
	c.Size = geom.V(w*c.Scale, h*c.Scale)
	c.Offset = geom.V((viewport-c.Size.X)/2, (viewport-c.Size.Y)/2)
	log.Printf("Canvas %dx%d aligned: scale %.3f, offset (%.1f, %.1f)",
		c.Width(), c.Height(), c.Scale, c.Offset.X, c.Offset.Y)
}

// MapPointer converts a screen position to canvas-pixel space.
func (c *Canvas) MapPointer(screen geom.Vec2) geom.Vec2 {
	return geom.ScreenToCanvas(screen, c.Offset, c.Scale)
}

// Contains reports whether a canvas-space position lies on the image.
func (c *Canvas) Contains(p geom.Vec2) bool {
	return geom.WithinOpenBounds(p, geom.Vec2{}, float64(c.Width()), float64(c.Height()))
}

// SetColor changes the brush color.
func (c *Canvas) SetColor(col raster.Color) {
	c.Color = col
}

func (c *Canvas) GrowBrush() float64 {
	return c.SetBrushSize(c.BrushSize + c.BrushStep)
}

func (c *Canvas) ShrinkBrush() float64 {
	return c.SetBrushSize(c.BrushSize - c.BrushStep)
}

// SetBrushSize sets the brush half-width, clamped to [0, MaxBrush].
func (c *Canvas) SetBrushSize(size float64) float64 {
	c.BrushSize = geom.Clamp(size, 0, c.MaxBrush)
	return c.BrushSize
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	return c.stroke != nil
}

// Stroke returns the active stroke session, or nil.
func (c *Canvas) Stroke() *Stroke {
	return c.stroke
}

// BeginStroke starts a stroke if the pointer lands on the image and paints
// the press point. It returns the overlay region touched.
func (c *Canvas) BeginStroke(screen geom.Vec2) (image.Rectangle, bool) {
	p := c.MapPointer(screen)
	if !c.Contains(p) {
		return image.Rectangle{}, false
	}
	if c.stroke != nil {
		c.EndStroke()
	}
	c.stroke = newStroke(p)
	dirty := raster.PaintSegment(c.Overlay, p, p, c.Color, c.BrushSize)
	c.stroke.add(dirty)
	return dirty, true
}

// ContinueStroke paints from the previous pointer position to screen.
// Without an active stroke it does nothing.
func (c *Canvas) ContinueStroke(screen geom.Vec2) image.Rectangle {
	if c.stroke == nil {
		return image.Rectangle{}
	}
	p := c.MapPointer(screen)
	dirty := raster.PaintSegment(c.Overlay, c.stroke.Last, p, c.Color, c.BrushSize)
	c.stroke.Last = p
	c.stroke.add(dirty)
	return dirty
}

// EndStroke commits the overlay into the image and ends the session. It
// reports whether a stroke was active.
func (c *Canvas) EndStroke() bool {
	s := c.stroke
	if s == nil {
		return false
	}
	c.stroke = nil
	raster.Commit(c.Image, c.Overlay)
	log.Printf("Stroke %s committed: %d segments, region %v", s.ID, s.Segments, s.Dirty)
	return true
}
