package raster

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"

	"github.com/go-errors/errors"
)

// Color is a straight (non-premultiplied) 8-bit RGBA value.
type Color struct {
	R, G, B, A uint8
}

var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 255}
	White       = Color{255, 255, 255, 255}
)

var (
	ErrHexLength = errors.Errorf("color must be exactly 8 hex digits (RRGGBBAA)")
	ErrHexDigit  = errors.Errorf("color contains a non-hex character")
)

// ParseHex parses the RRGGBBAA wire format used by the color picker:
// exactly 8 hex digits, either case, no prefix and no separators.
func ParseHex(s string) (Color, error) {
	if len(s) != 8 {
		return Color{}, errors.Errorf("parse color %q: %w", s, ErrHexLength)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return Color{}, errors.Errorf("parse color %q: %w", s, ErrHexDigit)
	}
	return Color{R: b[0], G: b[1], B: b[2], A: b[3]}, nil
}

// Hex formats c as lower-case RRGGBBAA.
func (c Color) Hex() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// AlphaBlend composites top over bottom.
//
//	outA = topA + bottomA*(1-topA)
//	out  = (top*topA + bottom*bottomA*(1-topA)) / outA
//
// outA is zero only when both alphas are; that case yields Transparent.
func AlphaBlend(top, bottom Color) Color {
	switch top.A {
	case 0:
		if bottom.A == 0 {
			return Transparent
		}
		return bottom
	case 255:
		return top
	}

	ta := float64(top.A) / 255
	ba := float64(bottom.A) / 255
	rest := ba * (1 - ta)
	outA := ta + rest

	mix := func(t, b uint8) uint8 {
		return to8((float64(t)*ta + float64(b)*rest) / outA)
	}
	return Color{
		R: mix(top.R, bottom.R),
		G: mix(top.G, bottom.G),
		B: mix(top.B, bottom.B),
		A: to8(outA * 255),
	}
}

func to8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
