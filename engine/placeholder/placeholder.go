// Package placeholder is a stand-in engine for builds without a web engine.
//
// It does no layout and fetches nothing. It keeps a history of addresses,
// paints the current one together with an editable address line, and
// talks to the shell through the same engine.View contract a real engine
// uses, so the whole shell can be exercised end to end.
package placeholder

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/quartz"
	"github.com/gogpu/quartz/engine"
	"github.com/gogpu/quartz/input"
	"github.com/gogpu/quartz/internal/theme"
)

// Layout in device pixels.
const (
	HeaderHeight = 40
	margin       = 12
	fontSize     = 16
	rowAlign     = 64
)

// NewTabTitle is the title of a view with no history.
const NewTabTitle = "New Tab"

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
)

func loadFont() *text.FontSource {
	fontOnce.Do(func() {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			quartz.Logger().Warn("placeholder: font unavailable, painting without text", "err", err)
			return
		}
		fontSource = src
	})
	return fontSource
}

// View is the placeholder engine view.
type View struct {
	host engine.Host

	history []string
	index   int

	editing bool
	typed   []rune

	focused    bool
	visibility engine.Visibility
	theme      theme.Theme
	viewport   image.Point
	window     image.Point
	screens    []image.Rectangle

	ctx      *gg.Context
	front    engine.Bitmap
	backup   engine.Bitmap
	frontOK  bool
	backupOK bool

	cursor    engine.Cursor
	scheduled bool
	paints    int
	closed    bool
}

var _ engine.View = (*View)(nil)

// New creates a placeholder view. It matches engine.Factory.
func New(host engine.Host) (engine.View, error) {
	return NewView(host), nil
}

// NewView creates a placeholder view with the light theme.
func NewView(host engine.Host) *View {
	return &View{
		host:  host,
		index: -1,
		theme: theme.Light(),
	}
}

// URL returns the current address, or "" before the first load.
func (v *View) URL() string {
	if v.index < 0 {
		return ""
	}
	return v.history[v.index]
}

// History returns the visited addresses and the current index.
func (v *View) History() ([]string, int) {
	return append([]string(nil), v.history...), v.index
}

// Typed returns the address line being edited, and whether editing.
func (v *View) Typed() (string, bool) {
	return string(v.typed), v.editing
}

// Focused reports the last focus state sent by the shell.
func (v *View) Focused() bool { return v.focused }

// Visibility returns the last visibility sent by the shell.
func (v *View) Visibility() engine.Visibility { return v.visibility }

// Theme returns the current system theme.
func (v *View) Theme() theme.Theme { return v.theme }

// WindowSize returns the last window size sent by the shell.
func (v *View) WindowSize() image.Point { return v.window }

// ScreenRects returns the last display geometry sent by the shell.
func (v *View) ScreenRects() []image.Rectangle { return v.screens }

// Paints returns the number of completed paints.
func (v *View) Paints() int { return v.paints }

// Load navigates to url, dropping any forward history.
func (v *View) Load(url string) {
	url = strings.TrimSpace(url)
	if url == "" || v.closed {
		return
	}
	if !strings.Contains(url, "://") && !strings.HasPrefix(url, "about:") {
		url = "https://" + url
	}
	v.history = append(v.history[:v.index+1], url)
	v.index = len(v.history) - 1
	v.editing = false
	v.typed = v.typed[:0]
	quartz.Logger().Debug("placeholder: load", "url", url)
	v.navigated()
}

// TraverseHistory moves delta entries through history. Moves past either
// end are ignored.
func (v *View) TraverseHistory(delta int) {
	next := v.index + delta
	if delta == 0 || next < 0 || next >= len(v.history) {
		return
	}
	v.index = next
	v.navigated()
}

func (v *View) navigated() {
	title := v.URL()
	if title == "" {
		title = NewTabTitle
	}
	if v.host.TitleChanged != nil {
		v.host.TitleChanged(engine.EncodeTitle(title))
	}
	v.schedulePaint()
}

// EnqueueInputEvent handles ev. Input is processed immediately.
func (v *View) EnqueueInputEvent(ev input.Event) {
	if v.closed {
		return
	}
	switch e := ev.(type) {
	case *input.MouseEvent:
		v.mouse(e)
	case *input.KeyEvent:
		v.key(e)
	}
}

func (v *View) mouse(e *input.MouseEvent) {
	overHeader := e.Position.Y >= 0 && e.Position.Y < HeaderHeight
	switch e.Type {
	case input.MouseMove:
		if overHeader {
			v.setCursor(engine.CursorIBeam)
		} else {
			v.setCursor(engine.CursorArrow)
		}
	case input.MouseDown, input.DoubleClick:
		if e.Button != input.ButtonPrimary {
			return
		}
		if overHeader && !v.editing {
			v.editing = true
			v.typed = []rune(v.URL())
			if e.Type == input.DoubleClick {
				v.typed = v.typed[:0]
			}
			v.schedulePaint()
		} else if !overHeader && v.editing {
			v.editing = false
			v.schedulePaint()
		}
	}
}

func (v *View) key(e *input.KeyEvent) {
	if e.Kind() == input.KindTextChar {
		v.editing = true
		v.typed = append(v.typed, e.CodePoint)
		v.schedulePaint()
		return
	}
	if e.Type != input.KeyDown {
		return
	}
	ctrl := e.Modifiers.Has(input.ModCtrl)
	switch {
	case ctrl && e.Key == input.KeyV:
		v.paste()
	case ctrl && e.Key == input.KeyC:
		v.copy()
	case ctrl && e.Key == input.KeyL:
		v.editing = true
		v.typed = v.typed[:0]
		v.schedulePaint()
	case e.Key == input.KeyBackspace && v.editing:
		if n := len(v.typed); n > 0 {
			v.typed = v.typed[:n-1]
			v.schedulePaint()
		}
	case e.Key == input.KeyReturn && v.editing:
		v.Load(string(v.typed))
	}
}

func (v *View) paste() {
	if v.host.Clipboard == nil {
		return
	}
	s, ok := v.host.Clipboard.ReadText()
	if !ok {
		return
	}
	s = strings.Join(strings.Fields(s), " ")
	v.editing = true
	v.typed = append(v.typed, []rune(s)...)
	v.schedulePaint()
}

func (v *View) copy() {
	if v.host.Clipboard == nil {
		return
	}
	s := v.URL()
	if v.editing {
		s = string(v.typed)
	}
	if s == "" {
		return
	}
	v.host.Clipboard.WriteEntry(engine.ClipboardEntry{Data: []byte(s), MimeType: engine.MimeTextPlain})
}

func (v *View) setCursor(c engine.StandardCursor) {
	if v.cursor == c {
		return
	}
	v.cursor = c
	if v.host.CursorChanged != nil {
		v.host.CursorChanged(c)
	}
}

// SetViewportSize keeps the current frame as the backup buffer and
// repaints at the new size.
func (v *View) SetViewportSize(size image.Point) {
	if size == v.viewport {
		return
	}
	v.viewport = size
	if v.frontOK {
		v.backup, v.backupOK = v.front, true
		v.frontOK = false
	}
	v.schedulePaint()
}

func (v *View) SetWindowSize(size image.Point) { v.window = size }

func (v *View) SetHasFocus(focused bool) {
	if v.focused == focused {
		return
	}
	v.focused = focused
	v.schedulePaint()
}

func (v *View) SetVisibility(vis engine.Visibility) {
	v.visibility = vis
	if vis == engine.VisibilityVisible {
		v.schedulePaint()
	}
}

func (v *View) UpdateScreenRects(rects []image.Rectangle, primary int) {
	v.screens = append(v.screens[:0], rects...)
	quartz.Logger().Debug("placeholder: screens", "count", len(rects), "primary", primary)
}

// UpdateSystemTheme applies a theme blob. A malformed blob keeps the
// current theme.
func (v *View) UpdateSystemTheme(blob []byte) {
	t, err := theme.Decode(blob)
	if err != nil {
		quartz.Logger().Debug("placeholder: theme rejected", "err", err)
		return
	}
	v.theme = t
	v.schedulePaint()
}

func (v *View) FrontBuffer() (engine.Bitmap, bool)  { return v.front, v.frontOK }
func (v *View) BackupBuffer() (engine.Bitmap, bool) { return v.backup, v.backupOK }

// Close releases the paint context. Later calls do nothing.
func (v *View) Close() error {
	if v.closed {
		return nil
	}
	v.closed = true
	v.frontOK, v.backupOK = false, false
	if v.ctx != nil {
		err := v.ctx.Close()
		v.ctx = nil
		return err
	}
	return nil
}

// schedulePaint coalesces repaints into one posted task.
func (v *View) schedulePaint() {
	if v.scheduled || v.closed {
		return
	}
	if v.host.Post == nil {
		v.paint()
		return
	}
	v.scheduled = true
	v.host.Post(func() {
		v.scheduled = false
		v.paint()
	})
}

func (v *View) paint() {
	if v.closed || v.visibility != engine.VisibilityVisible {
		return
	}
	size := v.viewport
	if v.host.ViewportSize != nil {
		size = v.host.ViewportSize()
	}
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	if err := v.draw(size); err != nil {
		quartz.Logger().Warn("placeholder: paint failed", "err", err)
		return
	}
	v.front, v.frontOK = toBitmap(v.ctx.ResizeTarget()), true
	v.backupOK = false
	v.paints++
	if v.host.ReadyToPaint != nil {
		v.host.ReadyToPaint()
	}
}

func (v *View) draw(size image.Point) error {
	if v.ctx == nil {
		v.ctx = gg.NewContext(size.X, size.Y)
	} else if v.ctx.Width() != size.X || v.ctx.Height() != size.Y {
		if err := v.ctx.Resize(size.X, size.Y); err != nil {
			return fmt.Errorf("resize %dx%d: %w", size.X, size.Y, err)
		}
	}
	pal := v.theme.Palette()
	dc := v.ctx
	dc.ClearWithColor(gg.FromColor(pal.Background))

	dc.SetColor(pal.Chrome)
	dc.DrawRectangle(0, 0, float64(size.X), HeaderHeight)
	if err := dc.Fill(); err != nil {
		return err
	}
	if v.focused {
		dc.SetColor(pal.Accent)
		dc.DrawRectangle(0, HeaderHeight-2, float64(size.X), 2)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	if src := loadFont(); src != nil {
		dc.SetFont(src.Face(fontSize))
		line := v.URL()
		if v.editing {
			line = string(v.typed) + "|"
		}
		dc.SetColor(pal.Foreground)
		dc.DrawStringAnchored(line, margin, HeaderHeight/2, 0, 0.5)

		dc.SetColor(pal.Muted)
		y := float64(HeaderHeight + 2*margin + fontSize)
		for _, s := range v.status() {
			dc.DrawString(s, margin, y)
			y += fontSize * 1.5
		}
	}
	return dc.FlushGPU()
}

func (v *View) status() []string {
	page := v.URL()
	if page == "" {
		page = NewTabTitle
	}
	return []string{
		page,
		fmt.Sprintf("history %d of %d", v.index+1, len(v.history)),
		fmt.Sprintf("viewport %dx%d, theme %s", v.viewport.X, v.viewport.Y, v.theme.Name),
		"no web engine linked: " + typedHint(v.typed),
	}
}

func typedHint(typed []rune) string {
	if len(typed) == 0 {
		return "type an address and press Return"
	}
	return fmt.Sprintf("%d characters typed", len(typed))
}

// toBitmap copies premultiplied RGBA pixels into a BGRA bitmap.
func toBitmap(pm *gg.Pixmap) engine.Bitmap {
	w, h := pm.Width(), pm.Height()
	bm := engine.NewBitmap(w, h, rowAlign)
	src := pm.Data()
	for y := 0; y < h; y++ {
		s := src[y*w*4 : (y+1)*w*4]
		d := bm.Pix[y*bm.Stride : y*bm.Stride+w*4]
		for i := 0; i < len(s); i += 4 {
			d[i+0] = s[i+2]
			d[i+1] = s[i+1]
			d[i+2] = s[i+0]
			d[i+3] = s[i+3]
		}
	}
	return bm
}
