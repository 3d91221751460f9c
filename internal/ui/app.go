package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"pie/internal/config"
	"pie/internal/state"
)

// Run opens the fixed-size editor window and blocks until it is closed. A
// stroke still in progress at that point is committed.
func Run(cfg config.Config, c *state.Canvas, picker ColorSource) {
	myApp := app.New()
	myWindow := myApp.NewWindow("pie")
	myWindow.SetFixedSize(true)
	myWindow.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))

	c.Align(float64(cfg.Window.Viewport))
	editor := NewEditor(c, float32(cfg.Window.Viewport), BindingsFromConfig(cfg.Keys), picker)

	content := container.NewBorder(nil, nil, editor.Board, nil, editor.Panel.Container())
	myWindow.SetContent(content)
	myWindow.Canvas().SetOnTypedKey(editor.TypedKey)
	myWindow.ShowAndRun()

	c.EndStroke()
}
