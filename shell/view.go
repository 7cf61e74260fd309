package shell

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/bridge"
	"github.com/gogpu/quartz/compositor"
	"github.com/gogpu/quartz/engine"
	"github.com/gogpu/quartz/input"
	"github.com/gogpu/quartz/internal/theme"
	"github.com/gogpu/quartz/platform"
)

// Zoom limits and step.
const (
	MinZoom  = 0.25
	MaxZoom  = 5.0
	ZoomStep = 1.1
)

// View joins one engine view to one window: it keeps the engine's
// viewport in step with the window, forwards input, and composites the
// engine's bitmaps when they change.
type View struct {
	window     platform.Window
	engine     engine.View
	compositor *compositor.Compositor
	cursors    *bridge.Cursors
	clipboard  *bridge.Clipboard
	translator input.Translator
	paint      paintScheduler

	logical image.Point // window size in logical pixels
	scale   float64     // platform scale factor
	zoom    float64
	device  image.Point // engine viewport in device pixels

	active  bool
	focused bool
	title   string
	scratch []input.Event
	closed  bool
}

// viewConfig carries what newView needs besides the window.
type viewConfig struct {
	title      string
	background color.RGBA
	post       func(func())
}

func newView(w platform.Window, draw platform.DrawContext, factory engine.Factory, cfg viewConfig) (*View, error) {
	comp, err := compositor.New(draw, compositor.WithBackground(cfg.background))
	if err != nil {
		return nil, err
	}
	v := &View{
		window:     w,
		compositor: comp,
		cursors:    bridge.NewCursors(w.Cursors()),
		clipboard:  bridge.NewClipboard(w.Clipboard()),
		logical:    w.Size(),
		scale:      w.ScaleFactor(),
		zoom:       1,
		title:      cfg.title,
	}
	if v.scale <= 0 {
		v.scale = 1
	}
	v.recompute()

	ev, err := factory(engine.Host{
		TitleChanged:  v.titleChanged,
		ReadyToPaint:  v.MarkDirty,
		CursorChanged: v.cursors.Apply,
		ViewportSize:  v.Viewport,
		Clipboard:     v.clipboard,
		Post:          cfg.post,
	})
	if err == nil && ev == nil {
		err = errors.New("factory returned no view")
	}
	if err != nil {
		v.cursors.Close()
		_ = comp.Close()
		return nil, fmt.Errorf("%w: %w", ErrEngine, err)
	}
	v.engine = ev
	v.notifyViewport()
	v.SyncScreenGeometry()
	return v, nil
}

// Engine returns the hosted engine view.
func (v *View) Engine() engine.View { return v.engine }

// Compositor returns the view's compositor.
func (v *View) Compositor() *compositor.Compositor { return v.compositor }

// Title returns the current window title.
func (v *View) Title() string { return v.title }

// Viewport returns the engine viewport in device pixels.
func (v *View) Viewport() image.Point { return v.device }

// DevicePixelRatio returns the platform scale factor times the zoom.
func (v *View) DevicePixelRatio() float64 { return v.scale * v.zoom }

// Zoom returns the zoom factor.
func (v *View) Zoom() float64 { return v.zoom }

// WindowPixels returns the window size in physical pixels. Zoom does not
// change it.
func (v *View) WindowPixels() image.Point {
	return image.Pt(int(float64(v.logical.X)*v.scale), int(float64(v.logical.Y)*v.scale))
}

// Resize handles a new logical window size. The display surface is
// dropped so the next composite builds one for the new size.
func (v *View) Resize(width, height int) {
	v.logical = image.Pt(width, height)
	v.recompute()
	v.notifyViewport()
	v.MarkDirty()
	v.compositor.Invalidate()
}

// SetDevicePixelRatio sets the platform scale factor.
func (v *View) SetDevicePixelRatio(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	v.scale = scale
	v.RatioChanged()
}

// SetZoom sets the zoom factor, clamped to [MinZoom, MaxZoom].
func (v *View) SetZoom(z float64) {
	v.zoom = min(max(z, MinZoom), MaxZoom)
	v.RatioChanged()
}

// RatioChanged recomputes the viewport after a ratio change. The surface
// is kept; it is recreated only if the engine's bitmap size changes.
func (v *View) RatioChanged() {
	v.recompute()
	v.notifyViewport()
	v.MarkDirty()
}

func (v *View) recompute() {
	r := v.DevicePixelRatio()
	v.device = image.Pt(int(float64(v.logical.X)*r), int(float64(v.logical.Y)*r))
	v.translator.Scale = r
}

func (v *View) notifyViewport() {
	if v.engine == nil {
		return
	}
	v.engine.SetViewportSize(v.device)
	v.engine.SetWindowSize(v.device)
}

// SyncScreenGeometry sends the primary display bounds to the engine.
func (v *View) SyncScreenGeometry() {
	bounds, err := v.window.PrimaryDisplayBounds()
	if err != nil {
		quartz.Logger().Debug("shell: display bounds unavailable", "err", err)
		return
	}
	v.engine.UpdateScreenRects([]image.Rectangle{bounds}, 0)
}

// SetActive shows or hides the page. An active page also gets focus.
func (v *View) SetActive(active bool) {
	v.active = active
	if active {
		v.engine.SetVisibility(engine.VisibilityVisible)
		v.SetFocus(true)
		return
	}
	v.engine.SetVisibility(engine.VisibilityHidden)
}

// SetFocus forwards keyboard focus to the engine.
func (v *View) SetFocus(focused bool) {
	v.focused = focused
	v.engine.SetHasFocus(focused)
}

// UpdateTheme sends t to the engine.
func (v *View) UpdateTheme(t theme.Theme) {
	blob, err := t.Encode()
	if err != nil {
		quartz.Logger().Debug("shell: theme encoding failed", "err", err)
		return
	}
	v.engine.UpdateSystemTheme(blob)
	v.MarkDirty()
}

// Load navigates the engine.
func (v *View) Load(url string) {
	v.engine.Load(url)
}

// MarkDirty requests a composite on the next paint tick.
func (v *View) MarkDirty() { v.paint.markDirty() }

// ConsumeDirty reports whether a composite was requested and clears the
// request.
func (v *View) ConsumeDirty() bool { return v.paint.consumeDirty() }

// Paint composites the engine's best bitmap to the window.
func (v *View) Paint() error {
	if v.closed {
		return compositor.ErrClosed
	}
	return v.compositor.CompositeAndPresent(engineSource{v.engine}, v.WindowPixels())
}

// Enqueue translates a native event and forwards the result.
func (v *View) Enqueue(ev platform.Event) {
	res := v.translator.Translate(ev, v.scratch[:0])
	for _, e := range res.Events {
		v.engine.EnqueueInputEvent(e)
	}
	if res.History != 0 {
		v.engine.TraverseHistory(res.History)
	}
	clear(res.Events)
	v.scratch = res.Events[:0]
}

func (v *View) titleChanged(units []uint16) {
	defer v.MarkDirty()
	title, err := engine.DecodeTitle(units)
	if err != nil {
		quartz.Logger().Debug("shell: title dropped", "err", err)
		return
	}
	if title == "" {
		return
	}
	v.title = title
	v.window.SetTitle(title)
}

// Close releases the display surface, then the engine.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	errs := []error{v.compositor.Close()}
	v.cursors.Close()
	if err := v.engine.Close(); err != nil {
		errs = append(errs, fmt.Errorf("shell: engine: %w", err))
	}
	return errors.Join(errs...)
}
