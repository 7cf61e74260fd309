// Package input translates native window events into the events a web
// view consumes.
//
// Translation is a pure function of the native event and the current
// device pixel ratio: see [Translator.Translate]. The key, button and
// modifier tables are total; anything they do not know maps to an
// "invalid" or "none" value rather than an error.
package input

import (
	"fmt"
	"image"
)

// WheelNotch is the engine wheel delta for one native notch.
const WheelNotch = 120

// Kind identifies an input event variant.
type Kind uint8

// Input event kinds.
const (
	KindMouseMove Kind = iota
	KindMouseDown
	KindMouseUp
	KindDoubleClick
	KindMouseWheel
	KindKeyDown
	KindKeyUp
	KindTextChar
)

var kindNames = [...]string{
	KindMouseMove:   "MouseMove",
	KindMouseDown:   "MouseDown",
	KindMouseUp:     "MouseUp",
	KindDoubleClick: "DoubleClick",
	KindMouseWheel:  "MouseWheel",
	KindKeyDown:     "KeyDown",
	KindKeyUp:       "KeyUp",
	KindTextChar:    "TextChar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Event is an engine input event: a *MouseEvent or a *KeyEvent.
type Event interface {
	Kind() Kind
	isEvent()
}

// MouseType is the variant of a MouseEvent.
type MouseType uint8

// Mouse event types.
const (
	MouseMove MouseType = iota
	MouseDown
	MouseUp
	DoubleClick
	MouseWheel
)

// MouseEvent is a pointer or wheel event.
type MouseEvent struct {
	Type      MouseType
	Position  image.Point // device pixels
	Button    MouseButton // the button that changed, or ButtonNone
	Buttons   MouseButton // buttons held
	Modifiers KeyModifier

	WheelDeltaX int
	WheelDeltaY int
}

// Kind implements Event.
func (e *MouseEvent) Kind() Kind {
	switch e.Type {
	case MouseDown:
		return KindMouseDown
	case MouseUp:
		return KindMouseUp
	case DoubleClick:
		return KindDoubleClick
	case MouseWheel:
		return KindMouseWheel
	default:
		return KindMouseMove
	}
}

func (*MouseEvent) isEvent() {}

// KeyType is the variant of a KeyEvent.
type KeyType uint8

// Key event types.
const (
	KeyDown KeyType = iota
	KeyUp
)

// KeyEvent is a key press, release or committed character.
// A KeyDown with KeyInvalid and a non-zero CodePoint carries text.
type KeyEvent struct {
	Type      KeyType
	Key       KeyCode
	Modifiers KeyModifier
	CodePoint rune
	Repeat    bool
}

// Kind implements Event.
func (e *KeyEvent) Kind() Kind {
	switch {
	case e.Type == KeyUp:
		return KindKeyUp
	case e.Key == KeyInvalid && e.CodePoint != 0:
		return KindTextChar
	default:
		return KindKeyDown
	}
}

func (*KeyEvent) isEvent() {}
