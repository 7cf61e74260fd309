// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import "image"

// Buffer is a producer-side BGRA8 bitmap.
type Buffer struct {
	Pix    []byte
	Stride int // bytes between row starts, at least Width*4
	Width  int
	Height int
}

// Size returns the pixel size of the buffer.
func (b Buffer) Size() image.Point {
	return image.Pt(b.Width, b.Height)
}

// Valid reports whether the buffer describes a non-empty bitmap whose
// rows all fit in Pix.
func (b Buffer) Valid() bool {
	if b.Width <= 0 || b.Height <= 0 || b.Stride < b.Width*4 {
		return false
	}
	return len(b.Pix) >= b.Stride*(b.Height-1)+b.Width*4
}

// Source offers the bitmaps of one view.
type Source interface {
	// FrontBuffer returns the most recent complete bitmap and whether it
	// is usable right now.
	FrontBuffer() (Buffer, bool)

	// BackupBuffer returns a previous bitmap kept across resizes.
	BackupBuffer() (Buffer, bool)
}

// Pick returns the front buffer when usable, else the backup buffer,
// else reports false.
func Pick(src Source) (Buffer, bool) {
	if src == nil {
		return Buffer{}, false
	}
	if b, ok := src.FrontBuffer(); ok && b.Valid() {
		return b, true
	}
	if b, ok := src.BackupBuffer(); ok && b.Valid() {
		return b, true
	}
	return Buffer{}, false
}
