// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/compositor"
	"github.com/gogpu/quartz/platform"
)

var errNoProvider = errors.New("desktop: GPU context not ready")

// drawContext composes into a window-sized ggcanvas and renders it onto
// the swap chain. Surfaces are CPU pixmaps; the canvas upload is the only
// GPU transfer per composite.
type drawContext struct {
	w      *window
	canvas *ggcanvas.Canvas
	err    error

	presented bool // a Present happened during this frame
	closed    bool
}

var _ platform.DrawContext = (*drawContext)(nil)

func (d *drawContext) CreateSurface(width, height int, format gputypes.TextureFormat) (compositor.Surface, error) {
	if format != compositor.Format {
		return nil, fmt.Errorf("%w: %v", compositor.ErrUnsupportedFormat, format)
	}
	return compositor.NewPixmapSurface(width, height)
}

func (d *drawContext) Clear(c color.RGBA) {
	if d.err = d.ensureCanvas(); d.err != nil {
		return
	}
	compositor.ClearPixmap(d.canvas.Context().ResizeTarget(), c)
	d.canvas.MarkDirty()
}

func (d *drawContext) Stretch(s compositor.Surface, dst image.Rectangle) error {
	ps, ok := s.(*compositor.PixmapSurface)
	if !ok {
		return fmt.Errorf("desktop: foreign surface %T", s)
	}
	if err := d.ensureCanvas(); err != nil {
		return err
	}
	compositor.StretchPixmap(d.canvas.Context().ResizeTarget(), ps.Pixmap(), dst)
	d.canvas.MarkDirty()
	return nil
}

func (d *drawContext) Present() error {
	if d.closed {
		return platform.ErrClosed
	}
	if d.err != nil {
		err := d.err
		d.err = nil
		return err
	}
	if err := d.render(); err != nil {
		return err
	}
	d.presented = true
	return nil
}

// endFrame redraws the retained canvas when nothing was presented this
// frame. gogpu clears the swap chain image every frame.
func (d *drawContext) endFrame() {
	defer func() { d.presented = false }()
	if d.presented || d.canvas == nil || d.closed {
		return
	}
	if err := d.render(); err != nil {
		quartz.Logger().Debug("desktop: redraw failed", "err", err)
	}
}

func (d *drawContext) render() error {
	dc := d.w.frame
	if dc == nil {
		return platform.ErrNoFrame
	}
	if d.canvas == nil {
		return errNoProvider
	}
	if err := d.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		return fmt.Errorf("desktop: render: %w", err)
	}
	return nil
}

func (d *drawContext) ensureCanvas() error {
	if d.closed {
		return platform.ErrClosed
	}
	dc := d.w.frame
	if dc == nil {
		return platform.ErrNoFrame
	}
	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("desktop: empty frame %dx%d", width, height)
	}
	if d.canvas == nil {
		provider := d.w.app.GPUContextProvider()
		if provider == nil {
			return errNoProvider
		}
		c, err := ggcanvas.New(provider, width, height)
		if err != nil {
			return fmt.Errorf("desktop: canvas: %w", err)
		}
		d.canvas = c
		quartz.Logger().Debug("desktop: canvas created", "width", width, "height", height)
		return nil
	}
	if cw, ch := d.canvas.Size(); cw != width || ch != height {
		if err := d.canvas.Resize(width, height); err != nil {
			return fmt.Errorf("desktop: canvas resize: %w", err)
		}
	}
	return nil
}

func (d *drawContext) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	if d.canvas != nil {
		err := d.canvas.Close()
		d.canvas = nil
		return err
	}
	return nil
}
