// Package engine describes the web engine a shell hosts.
//
// The engine is opaque: a shell drives it only through [View] and hears
// from it only through the callbacks in [Host]. Nothing here knows how
// pages are laid out, scripted or fetched.
package engine

import (
	"image"

	"github.com/gogpu/quartz/input"
)

// Visibility is the page visibility state.
type Visibility uint8

// Visibility states.
const (
	VisibilityHidden Visibility = iota
	VisibilityVisible
)

func (v Visibility) String() string {
	if v == VisibilityVisible {
		return "visible"
	}
	return "hidden"
}

// View is one web view.
//
// All methods are called from the shell's loop goroutine. Input is
// queued; the engine processes it in order at its own pace.
type View interface {
	Load(url string)
	EnqueueInputEvent(ev input.Event)
	TraverseHistory(delta int)

	SetViewportSize(size image.Point)
	SetWindowSize(size image.Point)
	SetHasFocus(focused bool)
	SetVisibility(v Visibility)
	UpdateScreenRects(rects []image.Rectangle, primary int)
	UpdateSystemTheme(blob []byte)

	// FrontBuffer returns the last painted bitmap and whether it can be
	// shown right now.
	FrontBuffer() (Bitmap, bool)

	// BackupBuffer returns an older bitmap kept while the front buffer
	// is being repainted at a new size.
	BackupBuffer() (Bitmap, bool)

	Close() error
}

// Host is what a View may call back into. Every callback runs on the
// shell's loop; a View that works on other goroutines hands work back
// through Post.
type Host struct {
	// TitleChanged reports a new page title as UTF-16 code units.
	TitleChanged func(title []uint16)

	// ReadyToPaint reports that the front buffer holds a new frame.
	ReadyToPaint func()

	// CursorChanged asks for a different mouse cursor.
	CursorChanged func(c Cursor)

	// ViewportSize returns the current viewport in device pixels.
	ViewportSize func() image.Point

	Clipboard Clipboard

	// Post queues fn on the shell's loop. Safe from any goroutine.
	Post func(fn func())
}

// Factory creates a View bound to host.
type Factory func(host Host) (View, error)
