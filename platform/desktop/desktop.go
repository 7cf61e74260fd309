// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop is the native platform driver, built on gogpu.
//
// A window is a gogpu.App. Its frame callback pumps the shell loop, so
// the loop runs at the display refresh rate and every timer fires from
// inside a frame. Input arrives through gpucontext event callbacks and
// is queued until the next poll.
package desktop

import (
	"github.com/gogpu/gogpu"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/platform"
)

func init() {
	platform.Drivers.Register(platform.DriverGoGPU, func() platform.Platform { return New() })
}

// Platform opens gogpu windows.
type Platform struct{}

// New creates the gogpu platform.
func New() *Platform {
	return &Platform{}
}

// Name implements platform.Platform.
func (p *Platform) Name() string { return platform.DriverGoGPU }

// OpenWindow implements platform.Platform.
func (p *Platform) OpenWindow(opts platform.WindowOptions) (platform.Window, error) {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(opts.Title).
		WithSize(opts.Width, opts.Height).
		WithContinuousRender(true))

	w := newWindow(app, opts)
	w.queue.bind(app.EventSource())
	quartz.Logger().Info("desktop: window created", "title", opts.Title, "width", opts.Width, "height", opts.Height)
	return w, nil
}
