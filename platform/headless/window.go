// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"image"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz/platform"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// Window is a headless window.
type Window struct {
	p       *Platform
	size    image.Point
	scale   float64
	title   string
	titles  []string
	pending []platform.Event

	cursors   *cursorFactory
	clipboard *Clipboard
	draw      *DrawContext

	frames int
	closed bool
}

var _ platform.Window = (*Window)(nil)

func newWindow(p *Platform, opts platform.WindowOptions) *Window {
	return &Window{
		p:         p,
		size:      image.Pt(opts.Width, opts.Height),
		scale:     p.scale,
		title:     opts.Title,
		cursors:   &cursorFactory{},
		clipboard: &Clipboard{},
	}
}

// Size implements platform.Window.
func (w *Window) Size() image.Point { return w.size }

// ScaleFactor implements platform.Window.
func (w *Window) ScaleFactor() float64 { return w.scale }

// SetTitle implements platform.Window.
func (w *Window) SetTitle(title string) {
	w.title = title
	w.titles = append(w.titles, title)
}

// Title returns the current title.
func (w *Window) Title() string { return w.title }

// Titles returns every title set after the window opened.
func (w *Window) Titles() []string { return w.titles }

// Inject queues native events for the next PollEvents.
func (w *Window) Inject(events ...platform.Event) {
	w.pending = append(w.pending, events...)
}

// Resize changes the window size and queues a resize event.
func (w *Window) Resize(width, height int) {
	w.size = image.Pt(width, height)
	w.Inject(platform.Event{Kind: platform.EventResize, Width: width, Height: height})
}

// SetScale changes the scale factor and queues a scale event.
func (w *Window) SetScale(scale float64) {
	w.scale = scale
	w.Inject(platform.Event{Kind: platform.EventScaleChanged})
}

// PollEvents implements platform.Window.
func (w *Window) PollEvents(dst []platform.Event) []platform.Event {
	dst = append(dst, w.pending...)
	w.pending = w.pending[:0]
	return dst
}

// Pending returns the number of events not yet polled.
func (w *Window) Pending() int { return len(w.pending) }

// NewDrawContext implements platform.Window.
func (w *Window) NewDrawContext() (platform.DrawContext, error) {
	if w.p.drawErr != nil {
		return nil, w.p.drawErr
	}
	w.draw = newDrawContext(w)
	return w.draw, nil
}

// DrawContext returns the draw context created for this window, or nil.
func (w *Window) DrawContext() *DrawContext { return w.draw }

// Cursors implements platform.Window.
func (w *Window) Cursors() platform.CursorFactory { return w.cursors }

// Cursor returns the installed cursor shape.
func (w *Window) Cursor() gpucontext.CursorShape {
	if w.cursors.installed == nil {
		return gpucontext.CursorDefault
	}
	return w.cursors.installed.Shape()
}

// LiveCursors returns the number of cursors created and not yet released.
func (w *Window) LiveCursors() int { return w.cursors.live }

// Clipboard implements platform.Window.
func (w *Window) Clipboard() platform.Clipboard { return w.clipboard }

// SystemClipboard returns the in-memory clipboard.
func (w *Window) SystemClipboard() *Clipboard { return w.clipboard }

// DarkMode implements platform.Window.
func (w *Window) DarkMode() bool { return w.p.dark }

// PrimaryDisplayBounds implements platform.Window.
func (w *Window) PrimaryDisplayBounds() (image.Rectangle, error) {
	if w.p.display.Empty() {
		return image.Rectangle{}, platform.ErrNoDisplay
	}
	return w.p.display, nil
}

// Frames returns the number of frames run so far.
func (w *Window) Frames() int { return w.frames }

// Run implements platform.Window. Each frame advances the clock by the
// platform step and calls pump.
func (w *Window) Run(pump platform.Pump) error {
	if w.closed {
		return platform.ErrClosed
	}
	now := epoch
	for {
		if w.p.script != nil {
			w.p.script(w.frames, w)
		}
		if w.p.maxFrames > 0 && w.frames >= w.p.maxFrames {
			w.Inject(platform.Event{Kind: platform.EventQuit})
		}
		w.frames++
		if !pump(now) {
			return nil
		}
		if w.closed {
			return nil
		}
		if w.p.realtime {
			time.Sleep(w.p.step)
			now = time.Now()
		} else {
			now = now.Add(w.p.step)
		}
	}
}

// Close implements platform.Window.
func (w *Window) Close() error {
	w.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (w *Window) Closed() bool { return w.closed }

// Clipboard is an in-memory system clipboard.
type Clipboard struct {
	Text     string
	ReadErr  error
	WriteErr error
}

// ClipboardRead implements platform.Clipboard.
func (c *Clipboard) ClipboardRead() (string, error) {
	if c.ReadErr != nil {
		return "", c.ReadErr
	}
	return c.Text, nil
}

// ClipboardWrite implements platform.Clipboard.
func (c *Clipboard) ClipboardWrite(text string) error {
	if c.WriteErr != nil {
		return c.WriteErr
	}
	c.Text = text
	return nil
}

var errCursorReleased = errors.New("headless: cursor released twice")

type cursor struct {
	shape    gpucontext.CursorShape
	f        *cursorFactory
	released bool
}

func (c *cursor) Shape() gpucontext.CursorShape { return c.shape }

func (c *cursor) Release() {
	if c.released {
		c.f.errs = append(c.f.errs, errCursorReleased)
		return
	}
	c.released = true
	c.f.live--
}

type cursorFactory struct {
	installed *cursor
	live      int
	errs      []error
}

func (f *cursorFactory) CreateSystemCursor(shape gpucontext.CursorShape) (platform.Cursor, error) {
	f.live++
	return &cursor{shape: shape, f: f}, nil
}

func (f *cursorFactory) SetCursor(c platform.Cursor) {
	if hc, ok := c.(*cursor); ok {
		f.installed = hc
	}
}

// CursorErrors returns cursor misuse detected so far, such as a double
// release.
func (w *Window) CursorErrors() []error { return w.cursors.errs }
