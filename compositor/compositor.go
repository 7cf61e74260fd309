// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compositor turns the bitmaps an engine paints into a presented
// frame.
//
// A [Compositor] owns at most one display surface. The surface is created
// lazily at the size of the bitmap being shown and recreated only when that
// size changes. Each composite uploads the bitmap rows (honouring the
// bitmap stride) and stretches the surface over the whole window.
package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/quartz"
)

// Format is the pixel format of every display surface.
const Format = gputypes.TextureFormatBGRA8Unorm

// Common errors returned by Compositor operations.
var (
	// ErrClosed is returned when compositing after Close.
	ErrClosed = errors.New("compositor: closed")

	// ErrNilRenderer is returned by New when no renderer is given.
	ErrNilRenderer = errors.New("compositor: nil renderer")

	// ErrSurfaceCreation wraps a renderer failure to create a surface.
	// It is not fatal: the frame is skipped and creation is retried on
	// the next composite.
	ErrSurfaceCreation = errors.New("compositor: surface creation failed")
)

// Surface is a display surface created by a Renderer.
type Surface interface {
	Width() int
	Height() int

	// Upload replaces the surface contents with width*4 bytes from each
	// of Height rows of pix, rows being stride bytes apart.
	Upload(pix []byte, stride int) error

	Destroy()
}

// Renderer creates surfaces and draws them into the window.
type Renderer interface {
	CreateSurface(width, height int, format gputypes.TextureFormat) (Surface, error)

	// Clear fills the window with c.
	Clear(c color.RGBA)

	// Stretch draws s scaled to cover dst, in window pixels.
	Stretch(s Surface, dst image.Rectangle) error

	// Present shows what has been drawn since the last Present.
	Present() error
}

// Stats counts compositor activity.
type Stats struct {
	Presented int // frames presented, empty or not
	Empty     int // frames presented without a bitmap
	Created   int // surfaces created
	Destroyed int // surfaces destroyed
	Skipped   int // frames skipped on surface, upload or stretch failure
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithBackground sets the colour the window is cleared to before each
// frame. The default is opaque white.
func WithBackground(c color.RGBA) Option {
	return func(comp *Compositor) {
		comp.background = c
	}
}

// Compositor owns the display surface of one view.
//
// Compositor is NOT safe for concurrent use.
type Compositor struct {
	renderer   Renderer
	surface    Surface
	background color.RGBA
	stats      Stats
	closed     bool
}

// New creates a Compositor drawing through r.
func New(r Renderer, opts ...Option) (*Compositor, error) {
	if r == nil {
		return nil, ErrNilRenderer
	}
	c := &Compositor{
		renderer:   r,
		background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Surface returns the current display surface, or nil.
func (c *Compositor) Surface() Surface {
	return c.surface
}

// Stats returns activity counters.
func (c *Compositor) Stats() Stats {
	return c.stats
}

// SetBackground changes the clear colour for later frames.
func (c *Compositor) SetBackground(bg color.RGBA) {
	c.background = bg
}

// Invalidate destroys the display surface. The next composite that has a
// bitmap creates a new one.
func (c *Compositor) Invalidate() {
	c.destroySurface()
}

// CompositeAndPresent presents the best bitmap src offers, stretched to
// window pixels. With no usable bitmap it presents a cleared frame.
func (c *Compositor) CompositeAndPresent(src Source, window image.Point) error {
	if c.closed {
		return ErrClosed
	}

	buf, ok := Pick(src)
	if !ok {
		c.renderer.Clear(c.background)
		if err := c.renderer.Present(); err != nil {
			return fmt.Errorf("compositor: present: %w", err)
		}
		c.stats.Presented++
		c.stats.Empty++
		return nil
	}

	if err := c.ensureSurface(buf.Width, buf.Height); err != nil {
		c.stats.Skipped++
		return err
	}
	if err := c.surface.Upload(buf.Pix, buf.Stride); err != nil {
		c.stats.Skipped++
		return fmt.Errorf("compositor: upload %dx%d: %w", buf.Width, buf.Height, err)
	}

	c.renderer.Clear(c.background)
	if err := c.renderer.Stretch(c.surface, image.Rectangle{Max: window}); err != nil {
		c.stats.Skipped++
		return fmt.Errorf("compositor: stretch to %v: %w", window, err)
	}
	if err := c.renderer.Present(); err != nil {
		return fmt.Errorf("compositor: present: %w", err)
	}
	c.stats.Presented++
	return nil
}

// Close destroys the display surface. Close is idempotent.
func (c *Compositor) Close() error {
	if c.closed {
		return nil
	}
	c.destroySurface()
	c.closed = true
	return nil
}

// ensureSurface makes sure a surface of exactly width x height exists.
func (c *Compositor) ensureSurface(width, height int) error {
	if c.surface != nil && c.surface.Width() == width && c.surface.Height() == height {
		return nil
	}
	c.destroySurface()

	s, err := c.renderer.CreateSurface(width, height, Format)
	if err != nil {
		return fmt.Errorf("%w: %dx%d: %w", ErrSurfaceCreation, width, height, err)
	}
	c.surface = s
	c.stats.Created++
	quartz.Logger().Debug("compositor: surface created", "width", width, "height", height)
	return nil
}

func (c *Compositor) destroySurface() {
	if c.surface == nil {
		return
	}
	c.surface.Destroy()
	c.surface = nil
	c.stats.Destroyed++
}
