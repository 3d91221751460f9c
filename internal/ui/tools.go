package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pie/internal/state"
)

// colorSwatch shows the current brush color.
type colorSwatch struct {
	widget.BaseWidget
	rect *canvas.Rectangle
}

func newColorSwatch(c color.Color) *colorSwatch {
	s := &colorSwatch{rect: canvas.NewRectangle(c)}
	s.rect.SetMinSize(fyne.NewSize(48, 48))
	s.rect.StrokeColor = color.Gray{Y: 150}
	s.rect.StrokeWidth = 1
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) SetColor(c color.Color) {
	s.rect.FillColor = c
	s.rect.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.rect)
}

// Panel is the strip next to the canvas: brush color, size, key hints and
// the last status message.
type Panel struct {
	swatch *colorSwatch
	hex    *widget.Label
	size   *widget.Label
	status *widget.Label
	hints  *widget.Label
	box    *fyne.Container
}

func NewPanel(keys Bindings) *Panel {
	p := &Panel{
		swatch: newColorSwatch(color.Black),
		hex:    widget.NewLabel(""),
		size:   widget.NewLabel(""),
		status: widget.NewLabel("Ready"),
		hints: widget.NewLabel(fmt.Sprintf("%s  pick color\n%s  bigger brush\n%s  smaller brush",
			keys.Picker, keys.Grow, keys.Shrink)),
	}
	p.status.Wrapping = fyne.TextWrapWord
	p.box = container.NewVBox(
		widget.NewLabel("Color:"),
		p.swatch,
		p.hex,
		widget.NewSeparator(),
		p.size,
		widget.NewSeparator(),
		p.hints,
		widget.NewSeparator(),
		p.status,
	)
	return p
}

func (p *Panel) Container() fyne.CanvasObject {
	return container.NewPadded(p.box)
}

// Update shows the canvas' brush settings.
func (p *Panel) Update(c *state.Canvas) {
	p.swatch.SetColor(c.Color.NRGBA())
	p.hex.SetText(c.Color.Hex())
	p.size.SetText(fmt.Sprintf("Size: %.1f", c.BrushSize))
}

func (p *Panel) SetStatus(text string) {
	p.status.SetText(text)
}

func (p *Panel) Status() string {
	return p.status.Text
}

func (p *Panel) ColorText() string { return p.hex.Text }

func (p *Panel) SizeText() string { return p.size.Text }
