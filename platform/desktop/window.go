// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/platform"
)

type titleSetter interface {
	SetTitle(title string)
}

type quitter interface {
	Quit()
}

type displayBounder interface {
	PrimaryDisplayBounds() (image.Rectangle, error)
}

type window struct {
	app   *gogpu.App
	queue *eventQueue

	size  image.Point
	scale float64

	frame   *gogpu.Context
	draw    *drawContext
	cursors *cursorFactory

	quitting bool
	closed   bool
}

var _ platform.Window = (*window)(nil)

func newWindow(app *gogpu.App, opts platform.WindowOptions) *window {
	w := &window{
		app:   app,
		queue: newEventQueue(),
		size:  image.Pt(opts.Width, opts.Height),
		scale: 1,
	}
	w.cursors = &cursorFactory{provider: w.platformProvider()}
	if wp := w.windowProvider(); wp != nil {
		w.scale = wp.ScaleFactor()
	}
	return w
}

func (w *window) windowProvider() gpucontext.WindowProvider {
	wp, _ := any(w.app).(gpucontext.WindowProvider)
	return wp
}

func (w *window) platformProvider() gpucontext.PlatformProvider {
	if pp, ok := any(w.app).(gpucontext.PlatformProvider); ok {
		return pp
	}
	return nil
}

func (w *window) Size() image.Point {
	if wp := w.windowProvider(); wp != nil {
		if width, height := wp.Size(); width > 0 && height > 0 {
			return image.Pt(width, height)
		}
	}
	return w.size
}

func (w *window) ScaleFactor() float64 {
	if wp := w.windowProvider(); wp != nil {
		if sf := wp.ScaleFactor(); sf > 0 {
			return sf
		}
	}
	return 1
}

func (w *window) SetTitle(title string) {
	if ts, ok := any(w.app).(titleSetter); ok {
		ts.SetTitle(title)
		return
	}
	quartz.Logger().Debug("desktop: window title not settable", "title", title)
}

func (w *window) PollEvents(dst []platform.Event) []platform.Event {
	return w.queue.drain(dst)
}

func (w *window) NewDrawContext() (platform.DrawContext, error) {
	if w.closed {
		return nil, platform.ErrClosed
	}
	if w.draw == nil {
		w.draw = &drawContext{w: w}
	}
	return w.draw, nil
}

func (w *window) Cursors() platform.CursorFactory { return w.cursors }

func (w *window) Clipboard() platform.Clipboard {
	if pp := w.platformProvider(); pp != nil {
		return pp
	}
	return gpucontext.NullPlatformProvider{}
}

func (w *window) DarkMode() bool {
	if pp := w.platformProvider(); pp != nil {
		return pp.DarkMode()
	}
	return false
}

func (w *window) PrimaryDisplayBounds() (image.Rectangle, error) {
	if db, ok := any(w.app).(displayBounder); ok {
		return db.PrimaryDisplayBounds()
	}
	return image.Rectangle{}, platform.ErrNoDisplay
}

// Run hands control to gogpu. pump runs once per frame; when it reports
// false the window is asked to close and later frames do nothing.
func (w *window) Run(pump platform.Pump) error {
	if w.closed {
		return platform.ErrClosed
	}
	w.app.OnDraw(func(dc *gogpu.Context) {
		w.frame = dc
		defer func() { w.frame = nil }()
		if w.quitting {
			return
		}

		if sf := w.ScaleFactor(); sf != w.scale {
			w.scale = sf
			w.queue.push(platform.Event{Kind: platform.EventScaleChanged})
		}

		if !pump(time.Now()) {
			w.quitting = true
			w.requestClose()
			return
		}
		if w.draw != nil {
			w.draw.endFrame()
		}
	})
	w.app.OnClose(func() {
		w.queue.push(platform.Event{Kind: platform.EventQuit})
		if w.draw != nil {
			_ = w.draw.Close()
		}
		gg.CloseAccelerator()
	})
	return w.app.Run()
}

func (w *window) requestClose() {
	if chrome, ok := any(w.app).(gpucontext.WindowChrome); ok {
		chrome.Close()
		return
	}
	if q, ok := any(w.app).(quitter); ok {
		q.Quit()
		return
	}
	quartz.Logger().Warn("desktop: window cannot be closed programmatically")
}

func (w *window) Close() error {
	w.closed = true
	return nil
}
