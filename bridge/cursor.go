// Package bridge connects engine requests to platform services: mouse
// cursors and the system clipboard.
package bridge

import (
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/engine"
	"github.com/gogpu/quartz/platform"
)

// ShapeFor maps an engine cursor to a native cursor shape. Cursors with
// no native equivalent map to the default arrow.
func ShapeFor(c engine.StandardCursor) gpucontext.CursorShape {
	switch c {
	case engine.CursorIBeam:
		return gpucontext.CursorText
	case engine.CursorHand:
		return gpucontext.CursorPointer
	case engine.CursorCrosshair:
		return gpucontext.CursorCrosshair
	case engine.CursorWait:
		return gpucontext.CursorWait
	case engine.CursorResizeHorizontal:
		return gpucontext.CursorResizeEW
	case engine.CursorResizeVertical:
		return gpucontext.CursorResizeNS
	case engine.CursorResizeDiagonalTLBR:
		return gpucontext.CursorResizeNWSE
	case engine.CursorResizeDiagonalBLTR:
		return gpucontext.CursorResizeNESW
	case engine.CursorDisallowed:
		return gpucontext.CursorNotAllowed
	case engine.CursorMove:
		return gpucontext.CursorMove
	default:
		return gpucontext.CursorDefault
	}
}

// Cursors installs the cursors an engine asks for. At most one native
// cursor is alive at a time once Apply returns.
type Cursors struct {
	factory platform.CursorFactory
	current platform.Cursor
}

// NewCursors creates a cursor bridge over f.
func NewCursors(f platform.CursorFactory) *Cursors {
	return &Cursors{factory: f}
}

// Current returns the installed cursor, or nil.
func (c *Cursors) Current() platform.Cursor {
	return c.current
}

// Apply installs the cursor for ec. The new cursor is installed before
// the previous one is released. Image cursors are ignored.
func (c *Cursors) Apply(ec engine.Cursor) {
	std, ok := ec.(engine.StandardCursor)
	if !ok {
		return
	}
	if c.factory == nil {
		return
	}
	shape := ShapeFor(std)
	if c.current != nil && c.current.Shape() == shape {
		return
	}

	next, err := c.factory.CreateSystemCursor(shape)
	if err != nil {
		quartz.Logger().Debug("bridge: cursor creation failed", "cursor", std, "err", err)
		return
	}
	c.factory.SetCursor(next)
	if c.current != nil {
		c.current.Release()
	}
	c.current = next
}

// Close releases the installed cursor.
func (c *Cursors) Close() {
	if c.current != nil {
		c.current.Release()
		c.current = nil
	}
}
