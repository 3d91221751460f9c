package ui

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"

	"pie/internal/config"
	"pie/internal/raster"
	"pie/internal/state"
)

// ColorSource supplies a new brush color, usually an external picker.
type ColorSource interface {
	Pick(ctx context.Context) (raster.Color, error)
}

// Bindings maps editor actions to fyne key names.
type Bindings struct {
	Picker fyne.KeyName
	Grow   fyne.KeyName
	Shrink fyne.KeyName
}

func BindingsFromConfig(k config.Keys) Bindings {
	return Bindings{
		Picker: fyne.KeyName(k.Picker),
		Grow:   fyne.KeyName(k.Grow),
		Shrink: fyne.KeyName(k.Shrink),
	}
}

// Editor ties the canvas to its widgets and handles keyboard shortcuts.
type Editor struct {
	Canvas *state.Canvas
	Board  *BoardWidget
	Panel  *Panel

	picker ColorSource
	keys   Bindings
}

// NewEditor builds the widgets for an aligned canvas. picker may be nil, in
// which case the picker key only reports that none is configured.
func NewEditor(c *state.Canvas, viewport float32, keys Bindings, picker ColorSource) *Editor {
	e := &Editor{
		Canvas: c,
		Board:  NewBoardWidget(c, viewport),
		Panel:  NewPanel(keys),
		picker: picker,
		keys:   keys,
	}
	e.Board.OnStroke = func(s *state.Stroke) {
		e.Panel.SetStatus(fmt.Sprintf("Stroke committed (%d segments)", s.Segments))
	}
	e.Panel.Update(c)
	return e
}

// TypedKey handles key events. Typed keys repeat while held, so holding a
// brush key keeps resizing.
func (e *Editor) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case e.keys.Grow:
		e.Canvas.GrowBrush()
		e.Panel.Update(e.Canvas)
	case e.keys.Shrink:
		e.Canvas.ShrinkBrush()
		e.Panel.Update(e.Canvas)
	case e.keys.Picker:
		e.PickColor()
	}
}

// PickColor asks the color source for a color. It blocks until the source
// answers; on failure the brush color is left unchanged.
func (e *Editor) PickColor() {
	if e.picker == nil {
		e.Panel.SetStatus("No color picker configured")
		log.Println("Color picker requested but none is configured")
		return
	}
	c, err := e.picker.Pick(context.Background())
	if err != nil {
		log.Printf("Color picker failed: %v", err)
		e.Panel.SetStatus("Color picker failed")
		return
	}
	e.Canvas.SetColor(c)
	e.Panel.Update(e.Canvas)
	e.Panel.SetStatus("Color set to " + c.Hex())
	log.Printf("Brush color set to %s", c.Hex())
}
