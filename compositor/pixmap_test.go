// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package compositor

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

func TestPixmapSurfaceUploadSwizzlesWithStride(t *testing.T) {
	s, err := NewPixmapSurface(2, 2)
	if err != nil {
		t.Fatal(err)
	}
	const stride = 16 // 8 bytes of pixels, 8 bytes of padding
	pix := make([]byte, stride*2)
	// BGRA: pixel (0,0) red, pixel (1,1) blue.
	copy(pix[0:4], []byte{0x00, 0x00, 0xff, 0xff})
	copy(pix[stride+4:stride+8], []byte{0xff, 0x00, 0x00, 0xff})
	// Padding must be ignored.
	for i := 8; i < stride; i++ {
		pix[i] = 0xee
	}

	if err := s.Upload(pix, stride); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{0, 0, color.RGBA{R: 0xff, A: 0xff}},
		{1, 0, color.RGBA{}},
		{1, 1, color.RGBA{B: 0xff, A: 0xff}},
	}
	for _, tt := range tests {
		if got := s.Pixmap().At(tt.x, tt.y); got != tt.want {
			t.Errorf("At(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPixmapSurfaceUploadErrors(t *testing.T) {
	s, _ := NewPixmapSurface(4, 4)
	if err := s.Upload(make([]byte, 10), 16); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("short upload error = %v, want ErrShortBuffer", err)
	}
	s.Destroy()
	if err := s.Upload(make([]byte, 64), 16); !errors.Is(err, ErrSurfaceDestroyed) {
		t.Errorf("upload after Destroy error = %v, want ErrSurfaceDestroyed", err)
	}
}

func TestNewPixmapSurfaceInvalid(t *testing.T) {
	if _, err := NewPixmapSurface(0, 10); err == nil {
		t.Error("NewPixmapSurface(0, 10) should fail")
	}
}

func TestStretchPixmap(t *testing.T) {
	src := gg.NewPixmap(2, 2)
	src.Clear(gg.RGB(0, 0, 1))
	dst := gg.NewPixmap(8, 6)

	StretchPixmap(dst, src, image.Rect(0, 0, 8, 6))
	for _, p := range []image.Point{{0, 0}, {7, 5}, {4, 3}} {
		if got := dst.At(p.X, p.Y); got != (color.RGBA{B: 0xff, A: 0xff}) {
			t.Errorf("At(%v) = %v, want opaque blue", p, got)
		}
	}
}

func TestStretchPixmapClipsToDestination(t *testing.T) {
	src := gg.NewPixmap(2, 2)
	src.Clear(gg.RGB(1, 1, 1))
	dst := gg.NewPixmap(4, 4)
	StretchPixmap(dst, src, image.Rect(10, 10, 20, 20))
	if got := dst.At(0, 0); got != (color.RGBA{}) {
		t.Errorf("out of range stretch touched pixel: %v", got)
	}
}
