package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"pie/internal/geom"
	"pie/internal/state"
)

var viewportBackground = color.NRGBA{R: 48, G: 48, B: 52, A: 255}

// Input is the pointer state, written by the event handlers and read when
// deciding what a drag means.
type Input struct {
	Primary   bool
	Secondary bool
	Pos       geom.Vec2
}

// BoardWidget shows the canvas image with the overlay on top and turns
// press, drag and release into stroke sessions.
type BoardWidget struct {
	widget.BaseWidget
	canvas   *state.Canvas
	viewport float32
	input    Input

	image   *canvas.Image
	overlay *canvas.Image

	// OnStroke is called after a stroke has been committed.
	OnStroke func(s *state.Stroke)
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

// NewBoardWidget expects c to be aligned to viewport already.
func NewBoardWidget(c *state.Canvas, viewport float32) *BoardWidget {
	b := &BoardWidget{
		canvas:   c,
		viewport: viewport,
		image:    newPixelImage(c.Image.Image()),
		overlay:  newPixelImage(c.Overlay.Image()),
	}
	b.ExtendBaseWidget(b)
	return b
}

func newPixelImage(img image.Image) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.ScaleMode = canvas.ImageScalePixels
	ci.FillMode = canvas.ImageFillStretch
	return ci
}

func (b *BoardWidget) Input() Input { return b.input }

func toVec(p fyne.Position) geom.Vec2 {
	return geom.V(float64(p.X), float64(p.Y))
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	b.input.Pos = toVec(e.Position)
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.input.Primary = true
		if _, ok := b.canvas.BeginStroke(b.input.Pos); ok {
			b.overlay.Refresh()
		}
	case desktop.MouseButtonSecondary:
		b.input.Secondary = true
	}
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	b.input.Pos = toVec(e.Position)
	switch e.Button {
	case desktop.MouseButtonPrimary:
		b.input.Primary = false
		b.finishStroke()
	case desktop.MouseButtonSecondary:
		b.input.Secondary = false
	}
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.input.Pos = toVec(e.Position)
	if !b.input.Primary || !b.canvas.Drawing() {
		return
	}
	if dirty := b.canvas.ContinueStroke(b.input.Pos); !dirty.Empty() {
		b.overlay.Refresh()
	}
}

// DragEnd may arrive before or instead of MouseUp depending on the driver.
func (b *BoardWidget) DragEnd() {
	b.input.Primary = false
	b.finishStroke()
}

func (b *BoardWidget) MouseIn(e *desktop.MouseEvent)    { b.input.Pos = toVec(e.Position) }
func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.input.Pos = toVec(e.Position) }
func (b *BoardWidget) MouseOut()                        {}

func (b *BoardWidget) finishStroke() {
	s := b.canvas.Stroke()
	if !b.canvas.EndStroke() {
		return
	}
	b.image.Refresh()
	b.overlay.Refresh()
	if b.OnStroke != nil {
		b.OnStroke(s)
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(viewportBackground)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.board.image, r.board.overlay}
}

func (r *boardWidgetRenderer) Layout(fyne.Size) {
	c := r.board.canvas
	pos := fyne.NewPos(float32(c.Offset.X), float32(c.Offset.Y))
	size := fyne.NewSize(float32(c.Size.X), float32(c.Size.Y))

	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(fyne.NewSize(r.board.viewport, r.board.viewport))
	for _, img := range []*canvas.Image{r.board.image, r.board.overlay} {
		img.Move(pos)
		img.Resize(size)
	}
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.board.viewport, r.board.viewport)
}

func (r *boardWidgetRenderer) Refresh() {
	r.background.Refresh()
	r.board.image.Refresh()
	r.board.overlay.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
