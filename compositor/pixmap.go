// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Errors returned by PixmapSurface.
var (
	// ErrSurfaceDestroyed is returned when uploading to a destroyed surface.
	ErrSurfaceDestroyed = errors.New("compositor: surface destroyed")

	// ErrShortBuffer is returned when an upload does not cover every row.
	ErrShortBuffer = errors.New("compositor: pixel buffer too short")

	// ErrUnsupportedFormat is returned for surface formats other than Format.
	ErrUnsupportedFormat = errors.New("compositor: unsupported surface format")
)

// PixmapSurface is a CPU display surface backed by a gg.Pixmap.
// Uploaded BGRA rows are stored as the pixmap's RGBA.
type PixmapSurface struct {
	pm        *gg.Pixmap
	destroyed bool
}

// NewPixmapSurface creates a surface of the given size.
func NewPixmapSurface(width, height int) (*PixmapSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("compositor: invalid surface size %dx%d", width, height)
	}
	return &PixmapSurface{pm: gg.NewPixmap(width, height)}, nil
}

// Width returns the surface width in pixels.
func (s *PixmapSurface) Width() int { return s.pm.Width() }

// Height returns the surface height in pixels.
func (s *PixmapSurface) Height() int { return s.pm.Height() }

// Pixmap returns the backing pixmap.
func (s *PixmapSurface) Pixmap() *gg.Pixmap { return s.pm }

// Destroyed reports whether Destroy has been called.
func (s *PixmapSurface) Destroyed() bool { return s.destroyed }

// Upload copies BGRA rows from pix into the surface.
func (s *PixmapSurface) Upload(pix []byte, stride int) error {
	if s.destroyed {
		return ErrSurfaceDestroyed
	}
	w, h := s.pm.Width(), s.pm.Height()
	row := w * 4
	if stride < row || len(pix) < stride*(h-1)+row {
		return fmt.Errorf("%w: %d bytes, stride %d, want %dx%d", ErrShortBuffer, len(pix), stride, w, h)
	}

	dst := s.pm.Data()
	for y := 0; y < h; y++ {
		in := pix[y*stride : y*stride+row]
		out := dst[y*row : (y+1)*row]
		for x := 0; x < row; x += 4 {
			out[x+0] = in[x+2]
			out[x+1] = in[x+1]
			out[x+2] = in[x+0]
			out[x+3] = in[x+3]
		}
	}
	s.pm.NotifyPixelsChanged()
	return nil
}

// Destroy releases the pixel storage.
func (s *PixmapSurface) Destroy() {
	s.destroyed = true
}

// RGBAView exposes a pixmap's storage as an *image.RGBA without copying.
// Both hold premultiplied RGBA with tightly packed rows.
func RGBAView(pm *gg.Pixmap) *image.RGBA {
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: pm.Width() * 4,
		Rect:   pm.Bounds(),
	}
}

// StretchPixmap scales src over dr in dst with bilinear filtering.
func StretchPixmap(dst, src *gg.Pixmap, dr image.Rectangle) {
	dr = dr.Intersect(dst.Bounds())
	if dr.Empty() {
		return
	}
	draw.ApproxBiLinear.Scale(RGBAView(dst), dr, RGBAView(src), src.Bounds(), draw.Src, nil)
	dst.NotifyPixelsChanged()
}

// ClearPixmap fills pm with an opaque or translucent colour.
func ClearPixmap(pm *gg.Pixmap, c color.RGBA) {
	pm.Clear(gg.FromColor(c))
	pm.NotifyPixelsChanged()
}
