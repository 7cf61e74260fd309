package input

import (
	"image"

	"github.com/gogpu/quartz/platform"
)

// History deltas reported by Translate.
const (
	HistoryBack    = -1
	HistoryForward = 1
)

// Result is the outcome of translating one native event.
type Result struct {
	// Events is the destination slice with the new events appended.
	Events []Event

	// History is non-zero when the event asks the view to move through
	// its history: HistoryBack or HistoryForward.
	History int
}

// Translator converts native events into engine events.
// The zero value uses a device pixel ratio of 1.
type Translator struct {
	// Scale is the device pixel ratio applied to pointer positions.
	Scale float64
}

// Translate appends the engine events for ev to dst.
//
// Window-level events (quit, resize, focus, expose, scale) produce
// nothing. Releasing the back or forward mouse button also reports a
// history step. Committed text produces one TextChar event per code point.
func (t Translator) Translate(ev platform.Event, dst []Event) Result {
	switch ev.Kind {
	case platform.EventPointerMove:
		dst = append(dst, &MouseEvent{
			Type:      MouseMove,
			Position:  t.position(ev),
			Buttons:   ButtonsFromNative(ev.Buttons),
			Modifiers: ModifiersFromNative(ev.Mods),
		})

	case platform.EventPointerDown:
		b := ButtonFromNative(ev.Button)
		if b == ButtonNone {
			break
		}
		typ := MouseDown
		if ev.Clicks == 2 {
			typ = DoubleClick
		}
		dst = append(dst, &MouseEvent{
			Type:      typ,
			Position:  t.position(ev),
			Button:    b,
			Buttons:   ButtonsFromNative(ev.Buttons),
			Modifiers: ModifiersFromNative(ev.Mods),
		})

	case platform.EventPointerUp:
		b := ButtonFromNative(ev.Button)
		if b == ButtonNone {
			break
		}
		dst = append(dst, &MouseEvent{
			Type:      MouseUp,
			Position:  t.position(ev),
			Button:    b,
			Buttons:   ButtonsFromNative(ev.Buttons),
			Modifiers: ModifiersFromNative(ev.Mods),
		})
		switch b {
		case ButtonBackward:
			return Result{Events: dst, History: HistoryBack}
		case ButtonForward:
			return Result{Events: dst, History: HistoryForward}
		}

	case platform.EventWheel:
		dst = append(dst, &MouseEvent{
			Type:        MouseWheel,
			Position:    t.position(ev),
			Buttons:     ButtonsFromNative(ev.Buttons),
			Modifiers:   ModifiersFromNative(ev.Mods),
			WheelDeltaX: int(-ev.WheelX * WheelNotch),
			WheelDeltaY: int(-ev.WheelY * WheelNotch),
		})

	case platform.EventKeyDown, platform.EventKeyUp:
		typ := KeyDown
		if ev.Kind == platform.EventKeyUp {
			typ = KeyUp
		}
		dst = append(dst, &KeyEvent{
			Type:      typ,
			Key:       KeyFromNative(ev.Key),
			Modifiers: ModifiersFromNative(ev.Mods),
			Repeat:    ev.Repeat,
		})

	case platform.EventText:
		mods := ModifiersFromNative(ev.Mods)
		for _, r := range ev.Text {
			// NUL cannot be told apart from a key event.
			if r == 0 {
				continue
			}
			dst = append(dst, &KeyEvent{
				Type:      KeyDown,
				Key:       KeyInvalid,
				Modifiers: mods,
				CodePoint: r,
			})
		}
	}
	return Result{Events: dst}
}

func (t Translator) position(ev platform.Event) image.Point {
	scale := t.Scale
	if scale <= 0 {
		scale = 1
	}
	return image.Pt(int(ev.X*scale), int(ev.Y*scale))
}
