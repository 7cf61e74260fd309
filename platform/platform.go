// Package platform is the native side of quartz: one window, its events,
// a draw context, cursors, the clipboard and display geometry.
//
// Drivers register themselves in [Drivers]:
//
//	func init() {
//	    platform.Drivers.Register("gogpu", func() platform.Platform { return New() })
//	}
//
// and callers pick one by name or take the best available:
//
//	p := platform.Drivers.Best()
package platform

import (
	"errors"
	"image"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz/compositor"
)

// Common errors returned by drivers.
var (
	// ErrNoDisplay is returned when display geometry cannot be queried.
	ErrNoDisplay = errors.New("platform: display geometry unavailable")

	// ErrNoFrame is returned when presenting outside a frame.
	ErrNoFrame = errors.New("platform: no frame in progress")

	// ErrClosed is returned by operations on a closed window.
	ErrClosed = errors.New("platform: window closed")

	// ErrUnsupported is returned when the driver lacks a capability.
	ErrUnsupported = errors.New("platform: not supported by this driver")
)

// Driver names, in order of preference.
const (
	DriverGoGPU    = "gogpu"
	DriverHeadless = "headless"
)

// Drivers holds every registered platform driver.
var Drivers = gpucontext.NewRegistry[Platform](
	gpucontext.WithPriority(DriverGoGPU, DriverHeadless),
)

// Platform opens windows.
type Platform interface {
	Name() string
	OpenWindow(opts WindowOptions) (Window, error)
}

// WindowOptions configures a new window.
type WindowOptions struct {
	Title  string
	Width  int // logical pixels
	Height int
}

// Pump runs one turn of the application loop. It returns false once the
// application has quit.
type Pump func(now time.Time) bool

// Window is one native window.
type Window interface {
	// Size returns the logical size.
	Size() image.Point

	// ScaleFactor returns physical pixels per logical pixel.
	ScaleFactor() float64

	SetTitle(title string)

	// PollEvents appends every pending event to dst and returns it.
	PollEvents(dst []Event) []Event

	// NewDrawContext creates the renderer that presents into this window.
	NewDrawContext() (DrawContext, error)

	Cursors() CursorFactory
	Clipboard() Clipboard

	// DarkMode reports the system colour preference.
	DarkMode() bool

	// PrimaryDisplayBounds returns the bounds of the primary display, or
	// ErrNoDisplay.
	PrimaryDisplayBounds() (image.Rectangle, error)

	// Run calls pump once per frame until it returns false or the window
	// is closed by the user.
	Run(pump Pump) error

	Close() error
}

// DrawContext is a compositor.Renderer bound to a window.
type DrawContext interface {
	compositor.Renderer
	Close() error
}

// Cursor is a native cursor handle.
type Cursor interface {
	Shape() gpucontext.CursorShape

	// Release frees the handle. The cursor must not be installed.
	Release()
}

// CursorFactory creates and installs native cursors.
type CursorFactory interface {
	CreateSystemCursor(shape gpucontext.CursorShape) (Cursor, error)
	SetCursor(c Cursor)
}

// Clipboard is the system clipboard. gpucontext.PlatformProvider
// satisfies it.
type Clipboard interface {
	ClipboardRead() (string, error)
	ClipboardWrite(text string) error
}
