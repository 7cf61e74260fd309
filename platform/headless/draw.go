// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/quartz/compositor"
	"github.com/gogpu/quartz/platform"
)

var errSurfaceInjected = errors.New("headless: injected surface failure")

// Frame describes one presented frame.
type Frame struct {
	Size    image.Point // window canvas size
	Surface image.Point // size of the surface drawn, zero for an empty frame
	Clear   color.RGBA
}

// Empty reports whether no surface was drawn.
func (f Frame) Empty() bool { return f.Surface == image.Point{} }

// DrawContext renders into an in-memory canvas.
type DrawContext struct {
	w      *Window
	canvas *gg.Pixmap

	clear   color.RGBA
	drawn   image.Point
	frames  []Frame
	created []*compositor.PixmapSurface

	failSurfaces int
	closed       bool
}

var _ platform.DrawContext = (*DrawContext)(nil)

func newDrawContext(w *Window) *DrawContext {
	return &DrawContext{w: w}
}

// FailSurfaces makes the next n CreateSurface calls fail.
func (d *DrawContext) FailSurfaces(n int) {
	d.failSurfaces = n
}

// CreateSurface implements compositor.Renderer.
func (d *DrawContext) CreateSurface(width, height int, format gputypes.TextureFormat) (compositor.Surface, error) {
	if format != compositor.Format {
		return nil, fmt.Errorf("%w: %v", compositor.ErrUnsupportedFormat, format)
	}
	if d.failSurfaces > 0 {
		d.failSurfaces--
		return nil, errSurfaceInjected
	}
	s, err := compositor.NewPixmapSurface(width, height)
	if err != nil {
		return nil, err
	}
	d.created = append(d.created, s)
	return s, nil
}

// Clear implements compositor.Renderer.
func (d *DrawContext) Clear(c color.RGBA) {
	d.ensureCanvas(d.windowPixels())
	compositor.ClearPixmap(d.canvas, c)
	d.clear = c
	d.drawn = image.Point{}
}

// Stretch implements compositor.Renderer.
func (d *DrawContext) Stretch(s compositor.Surface, dst image.Rectangle) error {
	ps, ok := s.(*compositor.PixmapSurface)
	if !ok {
		return fmt.Errorf("headless: foreign surface %T", s)
	}
	if ps.Destroyed() {
		return compositor.ErrSurfaceDestroyed
	}
	d.ensureCanvas(dst.Max)
	compositor.StretchPixmap(d.canvas, ps.Pixmap(), dst)
	d.drawn = image.Pt(ps.Width(), ps.Height())
	return nil
}

// Present implements compositor.Renderer.
func (d *DrawContext) Present() error {
	if d.closed {
		return platform.ErrClosed
	}
	size := image.Point{}
	if d.canvas != nil {
		size = image.Pt(d.canvas.Width(), d.canvas.Height())
	}
	d.frames = append(d.frames, Frame{Size: size, Surface: d.drawn, Clear: d.clear})
	return nil
}

// Close implements platform.DrawContext.
func (d *DrawContext) Close() error {
	d.closed = true
	d.canvas = nil
	return nil
}

// Closed reports whether Close has been called.
func (d *DrawContext) Closed() bool { return d.closed }

// Frames returns every presented frame.
func (d *DrawContext) Frames() []Frame { return d.frames }

// Surfaces returns every surface created, in order.
func (d *DrawContext) Surfaces() []*compositor.PixmapSurface { return d.created }

// Canvas returns the window canvas of the last frame, or nil.
func (d *DrawContext) Canvas() *gg.Pixmap { return d.canvas }

func (d *DrawContext) windowPixels() image.Point {
	s := d.w.Size()
	return image.Pt(int(float64(s.X)*d.w.ScaleFactor()), int(float64(s.Y)*d.w.ScaleFactor()))
}

func (d *DrawContext) ensureCanvas(size image.Point) {
	if size.X <= 0 || size.Y <= 0 {
		size = image.Pt(1, 1)
	}
	if d.canvas != nil && d.canvas.Width() == size.X && d.canvas.Height() == size.Y {
		return
	}
	d.canvas = gg.NewPixmap(size.X, size.Y)
}
