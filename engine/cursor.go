package engine

import (
	"fmt"
	"image"
)

// Cursor is a StandardCursor or an ImageCursor.
type Cursor interface {
	isCursor()
}

// StandardCursor is a named cursor shape.
type StandardCursor uint8

// Standard cursors.
const (
	CursorArrow StandardCursor = iota
	CursorIBeam
	CursorHand
	CursorCrosshair
	CursorWait
	CursorResizeHorizontal
	CursorResizeVertical
	CursorResizeDiagonalTLBR
	CursorResizeDiagonalBLTR
	CursorDisallowed
	CursorMove
	CursorHelp
	CursorDrag
	CursorZoomIn
	CursorZoomOut
	CursorHidden
)

var standardCursorNames = [...]string{
	CursorArrow:              "Arrow",
	CursorIBeam:              "IBeam",
	CursorHand:               "Hand",
	CursorCrosshair:          "Crosshair",
	CursorWait:               "Wait",
	CursorResizeHorizontal:   "ResizeHorizontal",
	CursorResizeVertical:     "ResizeVertical",
	CursorResizeDiagonalTLBR: "ResizeDiagonalTLBR",
	CursorResizeDiagonalBLTR: "ResizeDiagonalBLTR",
	CursorDisallowed:         "Disallowed",
	CursorMove:               "Move",
	CursorHelp:               "Help",
	CursorDrag:               "Drag",
	CursorZoomIn:             "ZoomIn",
	CursorZoomOut:            "ZoomOut",
	CursorHidden:             "Hidden",
}

func (c StandardCursor) String() string {
	if int(c) < len(standardCursorNames) {
		return standardCursorNames[c]
	}
	return fmt.Sprintf("StandardCursor(%d)", c)
}

func (StandardCursor) isCursor() {}

// ImageCursor is a custom cursor image.
type ImageCursor struct {
	Image   image.Image
	Hotspot image.Point
}

func (ImageCursor) isCursor() {}
