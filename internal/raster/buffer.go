// Package raster implements the pixel side of the editor: RGBA buffers,
// the brush that paints line segments into them and the compositor that
// folds a finished stroke into the image.
package raster

import (
	"image"

	"github.com/go-errors/errors"
	"golang.org/x/image/draw"
)

// Buffer is a fixed-size grid of RGBA pixels stored row-major, 4 bytes per
// pixel, without row padding.
//
// Get and Set do not validate coordinates; callers clamp first.
type Buffer struct {
	width  int
	height int
	pix    []uint8
}

func NewBuffer(width, height int) (*Buffer, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf("invalid buffer size %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// FromImage converts any decoded image into a 4-channel buffer. NRGBA
// sources are copied as is; anything else goes through draw, which passes
// through premultiplied color and so rounds translucent pixels.
func FromImage(img image.Image) (*Buffer, error) {
	r := img.Bounds()
	b, err := NewBuffer(r.Dx(), r.Dy())
	if err != nil {
		return nil, err
	}
	if src, ok := img.(*image.NRGBA); ok {
		row := b.width * 4
		for y := 0; y < b.height; y++ {
			copy(b.pix[y*row:(y+1)*row], src.Pix[src.PixOffset(r.Min.X, r.Min.Y+y):])
		}
		return b, nil
	}
	draw.Draw(b.Image(), b.Bounds(), img, r.Min, draw.Src)
	return b, nil
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// Index returns the pixel index of (x, y).
func (b *Buffer) Index(x, y int) int {
	return x + y*b.width
}

func (b *Buffer) Len() int {
	return b.width * b.height
}

func (b *Buffer) Get(x, y int) Color {
	return b.at(b.Index(x, y))
}

func (b *Buffer) Set(x, y int, c Color) {
	b.put(b.Index(x, y), c)
}

func (b *Buffer) at(i int) Color {
	p := b.pix[i*4 : i*4+4 : i*4+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (b *Buffer) put(i int, c Color) {
	p := b.pix[i*4 : i*4+4 : i*4+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	if len(b.pix) == 0 {
		return
	}
	b.put(0, c)
	for n := 4; n < len(b.pix); n *= 2 {
		copy(b.pix[n:], b.pix[:n])
	}
}

// Clear sets every pixel to Transparent.
func (b *Buffer) Clear() {
	clear(b.pix)
}

// Bytes returns a copy of the pixels as flat RGBA bytes, row-major.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.pix))
	copy(out, b.pix)
	return out
}

// Image returns an NRGBA view sharing the buffer's memory. Writes through
// either side are visible to the other.
func (b *Buffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.pix,
		Stride: b.width * 4,
		Rect:   b.Bounds(),
	}
}
