package main

import (
	"image"
	"os"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/font/opentype"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
)

// Windows tracks the open windows, Wait returns after all are closed.
type Windows struct {
	Logger log.Logger

	active sync.WaitGroup
}

func (windows *Windows) Open(title string, sizeDp image.Point, run func(*app.Window) error) {
	windows.active.Add(1)
	go func() {
		defer windows.active.Done()

		window := app.NewWindow(
			app.Title(title),
			app.Size(unit.Dp(sizeDp.X), unit.Dp(sizeDp.Y)),
		)
		if err := run(window); err != nil && windows.Logger != nil {
			level.Error(windows.Logger).Log("msg", "window failed", "title", title, "err", err)
		}
	}()
}

func (windows *Windows) Wait() {
	windows.active.Wait()
}

func WidgetWindow(widget layout.Widget) func(*app.Window) error {
	return func(w *app.Window) error {
		var ops op.Ops
		for e := range w.Events() {
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				widget(gtx)
				e.Frame(gtx.Ops)

			case system.DestroyEvent:
				return e.Err
			}
		}
		return nil
	}
}

// LoadFonts returns the Go fonts, with userfont added as the monospace face.
func LoadFonts(userfont string) ([]text.FontFace, error) {
	collection := gofont.Collection()
	if userfont == "" {
		return collection, nil
	}
	b, err := os.ReadFile(userfont)
	if err != nil {
		return nil, errors.Wrap(err, "read font")
	}
	face, err := opentype.Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "parse font %q", userfont)
	}
	fnt := text.Font{Variant: "Mono", Weight: text.Normal}
	return append(collection, text.FontFace{Font: fnt, Face: face}), nil
}
