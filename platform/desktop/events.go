// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"time"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/quartz/platform"
)

// pixelsPerNotch converts pixel scroll deltas into wheel notches.
const pixelsPerNotch = 40.0

// linesPerPage is the number of notches one page scroll counts as.
const linesPerPage = 3.0

// eventQueue turns gpucontext callbacks into platform events. Callbacks
// arrive on the UI thread between frames; the shell drains the queue from
// inside the frame callback, so no locking is needed.
type eventQueue struct {
	pending []platform.Event

	clicks  platform.ClickCounter
	pressed map[gpucontext.Key]bool
	mods    gpucontext.Modifiers
	buttons gpucontext.Buttons
	x, y    float64

	start time.Time
	now   func() time.Time
}

func newEventQueue() *eventQueue {
	q := &eventQueue{
		pressed: make(map[gpucontext.Key]bool),
		now:     time.Now,
	}
	q.start = q.now()
	return q
}

func (q *eventQueue) push(ev platform.Event) {
	q.pending = append(q.pending, ev)
}

func (q *eventQueue) drain(dst []platform.Event) []platform.Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}

// bind registers every callback the source supports.
func (q *eventQueue) bind(src gpucontext.EventSource) {
	if src == nil {
		return
	}
	src.OnKeyPress(q.onKeyPress)
	src.OnKeyRelease(q.onKeyRelease)
	src.OnTextInput(q.onText)
	src.OnResize(q.onResize)
	src.OnFocus(q.onFocus)

	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(q.onPointer)
	} else {
		src.OnMouseMove(q.onMouseMove)
		src.OnMousePress(q.onMousePress)
		src.OnMouseRelease(q.onMouseRelease)
	}
	if ss, ok := src.(gpucontext.ScrollEventSource); ok {
		ss.OnScrollEvent(q.onScrollEvent)
	} else {
		src.OnScroll(q.onScroll)
	}
}

func (q *eventQueue) onKeyPress(k gpucontext.Key, mods gpucontext.Modifiers) {
	q.mods = mods
	repeat := q.pressed[k]
	q.pressed[k] = true
	q.push(platform.Event{Kind: platform.EventKeyDown, Key: k, Mods: mods, Repeat: repeat})
}

func (q *eventQueue) onKeyRelease(k gpucontext.Key, mods gpucontext.Modifiers) {
	q.mods = mods
	delete(q.pressed, k)
	q.push(platform.Event{Kind: platform.EventKeyUp, Key: k, Mods: mods})
}

func (q *eventQueue) onText(text string) {
	if text == "" {
		return
	}
	q.push(platform.Event{Kind: platform.EventText, Text: text, Mods: q.mods})
}

func (q *eventQueue) onResize(w, h int) {
	q.push(platform.Event{Kind: platform.EventResize, Width: w, Height: h})
}

func (q *eventQueue) onFocus(focused bool) {
	if focused {
		q.push(platform.Event{Kind: platform.EventFocusGained})
		return
	}
	// Keys held while focus leaves never report a release.
	clear(q.pressed)
	q.clicks.Reset()
	q.push(platform.Event{Kind: platform.EventFocusLost})
}

func (q *eventQueue) onPointer(pe gpucontext.PointerEvent) {
	q.x, q.y = pe.X, pe.Y
	q.buttons = pe.Buttons
	q.mods = pe.Modifiers
	ev := platform.Event{
		X:       pe.X,
		Y:       pe.Y,
		Button:  pe.Button,
		Buttons: pe.Buttons,
		Mods:    pe.Modifiers,
	}
	switch pe.Type {
	case gpucontext.PointerMove:
		ev.Kind = platform.EventPointerMove
	case gpucontext.PointerDown:
		ev.Kind = platform.EventPointerDown
		ev.Clicks = q.clicks.Press(pe.Button, pe.X, pe.Y, q.stamp(pe.Timestamp))
	case gpucontext.PointerUp:
		ev.Kind = platform.EventPointerUp
	default:
		return
	}
	q.push(ev)
}

func (q *eventQueue) onMouseMove(x, y float64) {
	q.x, q.y = x, y
	q.push(platform.Event{Kind: platform.EventPointerMove, X: x, Y: y, Button: gpucontext.ButtonNone, Buttons: q.buttons, Mods: q.mods})
}

func (q *eventQueue) onMousePress(mb gpucontext.MouseButton, x, y float64) {
	b, bit := legacyButton(mb)
	q.buttons |= bit
	q.x, q.y = x, y
	clicks := q.clicks.Press(b, x, y, q.stamp(0))
	q.push(platform.Event{Kind: platform.EventPointerDown, X: x, Y: y, Button: b, Buttons: q.buttons, Clicks: clicks, Mods: q.mods})
}

func (q *eventQueue) onMouseRelease(mb gpucontext.MouseButton, x, y float64) {
	b, bit := legacyButton(mb)
	q.buttons &^= bit
	q.x, q.y = x, y
	q.push(platform.Event{Kind: platform.EventPointerUp, X: x, Y: y, Button: b, Buttons: q.buttons, Mods: q.mods})
}

func (q *eventQueue) onScrollEvent(se gpucontext.ScrollEvent) {
	q.mods = se.Modifiers
	dx, dy := se.DeltaX, se.DeltaY
	switch se.DeltaMode {
	case gpucontext.ScrollDeltaPixel:
		dx, dy = dx/pixelsPerNotch, dy/pixelsPerNotch
	case gpucontext.ScrollDeltaPage:
		dx, dy = dx*linesPerPage, dy*linesPerPage
	}
	// gpucontext deltas grow right and down; notches grow right and away.
	q.push(platform.Event{Kind: platform.EventWheel, X: se.X, Y: se.Y, WheelX: dx, WheelY: -dy, Buttons: q.buttons, Mods: se.Modifiers})
}

func (q *eventQueue) onScroll(dx, dy float64) {
	q.push(platform.Event{Kind: platform.EventWheel, X: q.x, Y: q.y, WheelX: dx, WheelY: -dy, Buttons: q.buttons, Mods: q.mods})
}

// stamp returns ts, or the time since the queue was created when the
// toolkit gave no timestamp.
func (q *eventQueue) stamp(ts time.Duration) time.Duration {
	if ts != 0 {
		return ts
	}
	return q.now().Sub(q.start)
}

func legacyButton(mb gpucontext.MouseButton) (gpucontext.Button, gpucontext.Buttons) {
	switch mb {
	case gpucontext.MouseButtonLeft:
		return gpucontext.ButtonLeft, gpucontext.ButtonsLeft
	case gpucontext.MouseButtonRight:
		return gpucontext.ButtonRight, gpucontext.ButtonsRight
	case gpucontext.MouseButtonMiddle:
		return gpucontext.ButtonMiddle, gpucontext.ButtonsMiddle
	case gpucontext.MouseButton4:
		return gpucontext.ButtonX1, gpucontext.ButtonsX1
	case gpucontext.MouseButton5:
		return gpucontext.ButtonX2, gpucontext.ButtonsX2
	default:
		return gpucontext.ButtonNone, 0
	}
}
