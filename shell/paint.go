package shell

import (
	"github.com/gogpu/quartz/compositor"
	"github.com/gogpu/quartz/engine"
)

// paintScheduler throttles compositing to frames where something changed.
type paintScheduler struct {
	dirty bool
}

func (p *paintScheduler) markDirty() { p.dirty = true }

func (p *paintScheduler) consumeDirty() bool {
	d := p.dirty
	p.dirty = false
	return d
}

// engineSource exposes engine bitmaps to the compositor.
type engineSource struct {
	v engine.View
}

func (s engineSource) FrontBuffer() (compositor.Buffer, bool) {
	b, ok := s.v.FrontBuffer()
	return toBuffer(b), ok
}

func (s engineSource) BackupBuffer() (compositor.Buffer, bool) {
	b, ok := s.v.BackupBuffer()
	return toBuffer(b), ok
}

func toBuffer(b engine.Bitmap) compositor.Buffer {
	return compositor.Buffer{Pix: b.Pix, Stride: b.Stride, Width: b.Width, Height: b.Height}
}
