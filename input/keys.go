package input

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// KeyCode is an engine key code.
type KeyCode uint16

// Engine key codes. Key0..Key9 and KeyA..KeyZ are contiguous.
const (
	KeyInvalid KeyCode = iota
	KeyBackspace
	KeyTab
	KeyReturn
	KeyEscape
	KeySpace
	KeyArrowLeft
	KeyArrowUp
	KeyArrowRight
	KeyArrowDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var namedKeys = map[gpucontext.Key]KeyCode{
	gpucontext.KeyBackspace: KeyBackspace,
	gpucontext.KeyTab:       KeyTab,
	gpucontext.KeyEnter:     KeyReturn,
	gpucontext.KeyEscape:    KeyEscape,
	gpucontext.KeySpace:     KeySpace,
	gpucontext.KeyLeft:      KeyArrowLeft,
	gpucontext.KeyUp:        KeyArrowUp,
	gpucontext.KeyRight:     KeyArrowRight,
	gpucontext.KeyDown:      KeyArrowDown,
	gpucontext.KeyHome:      KeyHome,
	gpucontext.KeyEnd:       KeyEnd,
	gpucontext.KeyPageUp:    KeyPageUp,
	gpucontext.KeyPageDown:  KeyPageDown,
	gpucontext.KeyDelete:    KeyDelete,
}

// KeyFromNative maps a native key to an engine key code. Letters and
// digits map by offset from their range bases; keys without an engine
// equivalent map to KeyInvalid.
func KeyFromNative(k gpucontext.Key) KeyCode {
	switch {
	case k >= gpucontext.KeyA && k <= gpucontext.KeyZ:
		return KeyA + KeyCode(k-gpucontext.KeyA)
	case k >= gpucontext.Key0 && k <= gpucontext.Key9:
		return Key0 + KeyCode(k-gpucontext.Key0)
	}
	if code, ok := namedKeys[k]; ok {
		return code
	}
	return KeyInvalid
}

var keyNames = map[KeyCode]string{
	KeyInvalid:    "Invalid",
	KeyBackspace:  "Backspace",
	KeyTab:        "Tab",
	KeyReturn:     "Return",
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyArrowLeft:  "Left",
	KeyArrowUp:    "Up",
	KeyArrowRight: "Right",
	KeyArrowDown:  "Down",
	KeyHome:       "Home",
	KeyEnd:        "End",
	KeyPageUp:     "PageUp",
	KeyPageDown:   "PageDown",
	KeyDelete:     "Delete",
}

func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('A' + (k - KeyA)))
	case k >= Key0 && k <= Key9:
		return string(rune('0' + (k - Key0)))
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("KeyCode(%d)", uint16(k))
}
