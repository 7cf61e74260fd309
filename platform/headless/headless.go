// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless is an in-memory platform driver.
//
// Windows have no native counterpart: events are injected by the caller,
// presented frames are recorded, and time is stepped by a virtual clock
// (or by the wall clock with [WithRealtime]). The test-suite and
// "quartz -headless" run on it.
package headless

import (
	"image"
	"time"

	"github.com/gogpu/quartz/platform"
)

func init() {
	platform.Drivers.Register(platform.DriverHeadless, func() platform.Platform {
		return New(WithRealtime(true))
	})
}

// Option configures a Platform.
type Option func(*Platform)

// WithScale sets the window scale factor. The default is 1.
func WithScale(scale float64) Option {
	return func(p *Platform) { p.scale = scale }
}

// WithDisplay sets the primary display bounds.
func WithDisplay(r image.Rectangle) Option {
	return func(p *Platform) { p.display = r }
}

// WithoutDisplay makes display queries fail with platform.ErrNoDisplay.
func WithoutDisplay() Option {
	return func(p *Platform) { p.display = image.Rectangle{} }
}

// WithDarkMode sets the reported colour preference.
func WithDarkMode(dark bool) Option {
	return func(p *Platform) { p.dark = dark }
}

// WithStep sets the virtual time between frames. The default is 1ms.
func WithStep(d time.Duration) Option {
	return func(p *Platform) { p.step = d }
}

// WithRealtime makes Run sleep for each step.
func WithRealtime(on bool) Option {
	return func(p *Platform) { p.realtime = on }
}

// WithMaxFrames injects a quit event after n frames. Zero means never.
func WithMaxFrames(n int) Option {
	return func(p *Platform) { p.maxFrames = n }
}

// WithScript calls fn before every frame with the frame number.
func WithScript(fn func(frame int, w *Window)) Option {
	return func(p *Platform) { p.script = fn }
}

// WithOpenError makes OpenWindow fail.
func WithOpenError(err error) Option {
	return func(p *Platform) { p.openErr = err }
}

// WithDrawContextError makes NewDrawContext fail.
func WithDrawContextError(err error) Option {
	return func(p *Platform) { p.drawErr = err }
}

// Platform is the headless driver.
type Platform struct {
	scale     float64
	display   image.Rectangle
	dark      bool
	step      time.Duration
	realtime  bool
	maxFrames int
	script    func(frame int, w *Window)
	openErr   error
	drawErr   error

	windows []*Window
}

// New creates a headless platform.
func New(opts ...Option) *Platform {
	p := &Platform{
		scale:   1,
		display: image.Rect(0, 0, 1920, 1080),
		step:    time.Millisecond,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name implements platform.Platform.
func (p *Platform) Name() string { return platform.DriverHeadless }

// OpenWindow implements platform.Platform.
func (p *Platform) OpenWindow(opts platform.WindowOptions) (platform.Window, error) {
	if p.openErr != nil {
		return nil, p.openErr
	}
	w := newWindow(p, opts)
	p.windows = append(p.windows, w)
	return w, nil
}

// Windows returns every window opened so far.
func (p *Platform) Windows() []*Window {
	return p.windows
}
