package desktop

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz/platform"
)

// legacySource captures the callbacks of a source without pointer or
// scroll event support.
type legacySource struct {
	gpucontext.NullEventSource

	keyPress func(gpucontext.Key, gpucontext.Modifiers)
	press    func(gpucontext.MouseButton, float64, float64)
	scroll   func(float64, float64)
}

func (s *legacySource) OnKeyPress(fn func(gpucontext.Key, gpucontext.Modifiers)) { s.keyPress = fn }
func (s *legacySource) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	s.press = fn
}
func (s *legacySource) OnScroll(fn func(float64, float64)) { s.scroll = fn }

type pointerSource struct {
	legacySource

	pointer     func(gpucontext.PointerEvent)
	scrollEvent func(gpucontext.ScrollEvent)
}

func (s *pointerSource) OnPointer(fn func(gpucontext.PointerEvent))    { s.pointer = fn }
func (s *pointerSource) OnScrollEvent(fn func(gpucontext.ScrollEvent)) { s.scrollEvent = fn }

func testQueue() (*eventQueue, *time.Time) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q := newEventQueue()
	q.now = func() time.Time { return now }
	q.start = now
	return q, &now
}

func TestBindLegacy(t *testing.T) {
	q, _ := testQueue()
	src := &legacySource{}
	q.bind(src)

	if src.keyPress == nil || src.press == nil || src.scroll == nil {
		t.Fatal("legacy callbacks not registered")
	}
	src.press(gpucontext.MouseButtonRight, 3, 4)
	src.scroll(0, 2)

	got := q.drain(nil)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[0].Kind != platform.EventPointerDown || got[0].Button != gpucontext.ButtonRight || got[0].Buttons != gpucontext.ButtonsRight {
		t.Errorf("press = %v", got[0])
	}
	if got[1].Kind != platform.EventWheel || got[1].WheelY != -2 || got[1].X != 3 || got[1].Y != 4 {
		t.Errorf("scroll = %v", got[1])
	}
}

func TestBindPreferredSources(t *testing.T) {
	q, _ := testQueue()
	src := &pointerSource{}
	q.bind(src)

	if src.pointer == nil || src.scrollEvent == nil {
		t.Fatal("pointer/scroll callbacks not registered")
	}
	if src.press != nil || src.scroll != nil {
		t.Error("legacy callbacks registered alongside pointer events")
	}
}

func TestBindNil(t *testing.T) {
	q, _ := testQueue()
	q.bind(nil)
	if got := q.drain(nil); len(got) != 0 {
		t.Errorf("drain = %v", got)
	}
}

func TestKeyRepeat(t *testing.T) {
	q, _ := testQueue()
	q.onKeyPress(gpucontext.KeyA, gpucontext.ModShift)
	q.onKeyPress(gpucontext.KeyA, gpucontext.ModShift)
	q.onKeyRelease(gpucontext.KeyA, 0)
	q.onKeyPress(gpucontext.KeyA, 0)

	got := q.drain(nil)
	want := []bool{false, true, false, false}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Repeat != w {
			t.Errorf("event %d (%v) Repeat = %v, want %v", i, got[i], got[i].Repeat, w)
		}
	}
	if got[2].Kind != platform.EventKeyUp {
		t.Errorf("event 2 kind = %v", got[2].Kind)
	}
}

func TestFocusLossClearsKeys(t *testing.T) {
	q, _ := testQueue()
	q.onKeyPress(gpucontext.KeyB, 0)
	q.onFocus(false)
	q.onFocus(true)
	q.onKeyPress(gpucontext.KeyB, 0)

	got := q.drain(nil)
	if len(got) != 4 {
		t.Fatalf("got %d events, want 4", len(got))
	}
	if got[1].Kind != platform.EventFocusLost || got[2].Kind != platform.EventFocusGained {
		t.Errorf("focus events = %v, %v", got[1], got[2])
	}
	if got[3].Repeat {
		t.Error("key after focus loss reported as repeat")
	}
}

func TestTextCarriesModifiers(t *testing.T) {
	q, _ := testQueue()
	q.onText("")
	q.onKeyPress(gpucontext.KeyH, gpucontext.ModShift)
	q.onText("H")

	got := q.drain(nil)
	if len(got) != 2 {
		t.Fatalf("got %d events, want 2", len(got))
	}
	if got[1].Kind != platform.EventText || got[1].Text != "H" || got[1].Mods != gpucontext.ModShift {
		t.Errorf("text = %v", got[1])
	}
}

func TestPointerClicks(t *testing.T) {
	q, _ := testQueue()
	down := func(x float64, ts time.Duration) {
		q.onPointer(gpucontext.PointerEvent{Type: gpucontext.PointerDown, X: x, Y: 10, Button: gpucontext.ButtonLeft, Buttons: gpucontext.ButtonsLeft, Timestamp: ts})
		q.onPointer(gpucontext.PointerEvent{Type: gpucontext.PointerUp, X: x, Y: 10, Button: gpucontext.ButtonLeft, Timestamp: ts})
	}
	down(10, time.Second)
	down(11, time.Second+100*time.Millisecond)
	down(11, 3*time.Second)
	q.onPointer(gpucontext.PointerEvent{Type: gpucontext.PointerEnter})

	var clicks []int
	for _, ev := range q.drain(nil) {
		switch ev.Kind {
		case platform.EventPointerDown:
			clicks = append(clicks, ev.Clicks)
		case platform.EventPointerUp:
		default:
			t.Errorf("unexpected event %v", ev)
		}
	}
	want := []int{1, 2, 1}
	if len(clicks) != len(want) {
		t.Fatalf("clicks = %v, want %v", clicks, want)
	}
	for i := range want {
		if clicks[i] != want[i] {
			t.Errorf("clicks = %v, want %v", clicks, want)
			break
		}
	}
}

func TestLegacyButtonsTracked(t *testing.T) {
	q, now := testQueue()
	q.onMousePress(gpucontext.MouseButtonLeft, 1, 1)
	q.onMousePress(gpucontext.MouseButtonMiddle, 1, 1)
	q.onMouseMove(5, 6)
	*now = now.Add(time.Second)
	q.onMouseRelease(gpucontext.MouseButtonLeft, 5, 6)

	got := q.drain(nil)
	if got[2].Buttons != gpucontext.ButtonsLeft|gpucontext.ButtonsMiddle {
		t.Errorf("move buttons = %v", got[2].Buttons)
	}
	if got[2].Button != gpucontext.ButtonNone {
		t.Errorf("move button = %v", got[2].Button)
	}
	if got[3].Buttons != gpucontext.ButtonsMiddle {
		t.Errorf("release buttons = %v", got[3].Buttons)
	}
}

func TestScrollUnits(t *testing.T) {
	tests := []struct {
		name   string
		mode   gpucontext.ScrollDeltaMode
		dx, dy float64
		wantX  float64
		wantY  float64
	}{
		{"pixel", gpucontext.ScrollDeltaPixel, 80, -40, 2, 1},
		{"line", gpucontext.ScrollDeltaLine, 0, 3, 0, -3},
		{"page", gpucontext.ScrollDeltaPage, 1, 1, 3, -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := testQueue()
			q.onScrollEvent(gpucontext.ScrollEvent{X: 7, Y: 8, DeltaX: tt.dx, DeltaY: tt.dy, DeltaMode: tt.mode})
			got := q.drain(nil)
			if len(got) != 1 {
				t.Fatalf("got %d events", len(got))
			}
			if got[0].WheelX != tt.wantX || got[0].WheelY != tt.wantY {
				t.Errorf("wheel = (%v, %v), want (%v, %v)", got[0].WheelX, got[0].WheelY, tt.wantX, tt.wantY)
			}
			if got[0].X != 7 || got[0].Y != 8 {
				t.Errorf("position = (%v, %v)", got[0].X, got[0].Y)
			}
		})
	}
}

func TestDrainResets(t *testing.T) {
	q, _ := testQueue()
	q.onResize(10, 20)
	buf := q.drain(nil)
	if len(buf) != 1 || buf[0].Width != 10 || buf[0].Height != 20 {
		t.Fatalf("drain = %v", buf)
	}
	if got := q.drain(buf[:0]); len(got) != 0 {
		t.Errorf("second drain = %v", got)
	}
}

func TestCursorFactoryWithoutProvider(t *testing.T) {
	f := &cursorFactory{}
	if _, err := f.CreateSystemCursor(gpucontext.CursorText); err != platform.ErrUnsupported {
		t.Errorf("err = %v, want ErrUnsupported", err)
	}
	f.SetCursor(systemCursor{shape: gpucontext.CursorText})
}

type recordingProvider struct {
	gpucontext.NullPlatformProvider
	shapes []gpucontext.CursorShape
}

func (p *recordingProvider) SetCursor(s gpucontext.CursorShape) { p.shapes = append(p.shapes, s) }

func TestCursorFactorySetsShape(t *testing.T) {
	p := &recordingProvider{}
	f := &cursorFactory{provider: p}
	c, err := f.CreateSystemCursor(gpucontext.CursorPointer)
	if err != nil {
		t.Fatal(err)
	}
	f.SetCursor(c)
	c.Release()
	if len(p.shapes) != 1 || p.shapes[0] != gpucontext.CursorPointer {
		t.Errorf("shapes = %v", p.shapes)
	}
}
