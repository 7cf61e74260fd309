package platform

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// EventKind identifies a native event.
type EventKind uint8

// Native event kinds.
const (
	EventNone EventKind = iota
	EventQuit
	EventResize
	EventFocusGained
	EventFocusLost
	EventExposed
	EventRestored
	EventShown
	EventScaleChanged
	EventPointerMove
	EventPointerDown
	EventPointerUp
	EventWheel
	EventKeyDown
	EventKeyUp
	EventText
)

var eventKindNames = [...]string{
	EventNone:         "None",
	EventQuit:         "Quit",
	EventResize:       "Resize",
	EventFocusGained:  "FocusGained",
	EventFocusLost:    "FocusLost",
	EventExposed:      "Exposed",
	EventRestored:     "Restored",
	EventShown:        "Shown",
	EventScaleChanged: "ScaleChanged",
	EventPointerMove:  "PointerMove",
	EventPointerDown:  "PointerDown",
	EventPointerUp:    "PointerUp",
	EventWheel:        "Wheel",
	EventKeyDown:      "KeyDown",
	EventKeyUp:        "KeyUp",
	EventText:         "Text",
}

// String returns the kind name.
func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event is one native event. Which fields are meaningful depends on Kind.
//
// Pointer and wheel positions are in logical window coordinates.
type Event struct {
	Kind EventKind

	// Pointer: position, the button that changed and the buttons held
	// after the change. Clicks is the consecutive click count of a press.
	X, Y    float64
	Button  gpucontext.Button
	Buttons gpucontext.Buttons
	Clicks  int

	// Wheel deltas in notches, positive to the right and away from the user.
	WheelX, WheelY float64

	// Keyboard.
	Key    gpucontext.Key
	Repeat bool

	// Mods holds the modifier state for pointer, wheel, key and text events.
	Mods gpucontext.Modifiers

	// Text holds committed text input.
	Text string

	// Resize: new logical size.
	Width, Height int
}

// String returns a compact description for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventResize:
		return fmt.Sprintf("%s %dx%d", e.Kind, e.Width, e.Height)
	case EventPointerMove, EventPointerDown, EventPointerUp:
		return fmt.Sprintf("%s (%g,%g) button=%d", e.Kind, e.X, e.Y, e.Button)
	case EventWheel:
		return fmt.Sprintf("%s (%g,%g)", e.Kind, e.WheelX, e.WheelY)
	case EventKeyDown, EventKeyUp:
		return fmt.Sprintf("%s key=%d mods=%d", e.Kind, e.Key, e.Mods)
	case EventText:
		return fmt.Sprintf("%s %q", e.Kind, e.Text)
	default:
		return e.Kind.String()
	}
}

// IsQuit reports whether e ends the session: a quit request, or escape
// pressed.
func (e Event) IsQuit() bool {
	return e.Kind == EventQuit || (e.Kind == EventKeyDown && e.Key == gpucontext.KeyEscape)
}
