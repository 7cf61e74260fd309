package input

import "github.com/gogpu/gpucontext"

// MouseButton is an engine mouse button flag. Several flags form a mask.
type MouseButton uint8

// Engine mouse buttons.
const (
	ButtonNone      MouseButton = 0
	ButtonPrimary   MouseButton = 1 << 0
	ButtonSecondary MouseButton = 1 << 1
	ButtonMiddle    MouseButton = 1 << 2
	ButtonBackward  MouseButton = 1 << 3
	ButtonForward   MouseButton = 1 << 4
)

// ButtonFromNative maps a single native button. Buttons without an engine
// equivalent (eraser, none) map to ButtonNone.
func ButtonFromNative(b gpucontext.Button) MouseButton {
	switch b {
	case gpucontext.ButtonLeft:
		return ButtonPrimary
	case gpucontext.ButtonRight:
		return ButtonSecondary
	case gpucontext.ButtonMiddle:
		return ButtonMiddle
	case gpucontext.ButtonX1:
		return ButtonBackward
	case gpucontext.ButtonX2:
		return ButtonForward
	default:
		return ButtonNone
	}
}

// ButtonsFromNative maps a native button mask bit by bit.
func ButtonsFromNative(b gpucontext.Buttons) MouseButton {
	mask := ButtonNone
	if b&gpucontext.ButtonsLeft != 0 {
		mask |= ButtonPrimary
	}
	if b&gpucontext.ButtonsRight != 0 {
		mask |= ButtonSecondary
	}
	if b&gpucontext.ButtonsMiddle != 0 {
		mask |= ButtonMiddle
	}
	if b&gpucontext.ButtonsX1 != 0 {
		mask |= ButtonBackward
	}
	if b&gpucontext.ButtonsX2 != 0 {
		mask |= ButtonForward
	}
	return mask
}
