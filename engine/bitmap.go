package engine

import (
	"image"

	"github.com/gogpu/gputypes"
)

// BitmapFormat is the pixel format of every Bitmap: 8-bit BGRA.
const BitmapFormat = gputypes.TextureFormatBGRA8Unorm

// Bitmap is a BGRA8 pixel buffer painted by the engine. Rows are Stride
// bytes apart and Stride may exceed Width*4.
type Bitmap struct {
	Pix    []byte
	Stride int
	Width  int
	Height int
}

// NewBitmap allocates a bitmap with rows aligned to align bytes.
// An align below 4 means tightly packed rows.
func NewBitmap(width, height, align int) Bitmap {
	stride := width * 4
	if align > 4 {
		stride = (stride + align - 1) / align * align
	}
	return Bitmap{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
	}
}

// Size returns the bitmap size in pixels.
func (b Bitmap) Size() image.Point {
	return image.Pt(b.Width, b.Height)
}

// Empty reports whether the bitmap has no pixels.
func (b Bitmap) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}
