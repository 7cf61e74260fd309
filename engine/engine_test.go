package engine

import (
	"errors"
	"testing"
)

func TestTitleRoundTrip(t *testing.T) {
	for _, s := range []string{"Ladybird", "DuckDuckGo · lite", "日本語のページ", "emoji 😀"} {
		got, err := DecodeTitle(EncodeTitle(s))
		if err != nil {
			t.Fatalf("DecodeTitle(%q) error = %v", s, err)
		}
		if got != s {
			t.Errorf("round trip = %q, want %q", got, s)
		}
	}
}

func TestEncodeTitleSurrogatePair(t *testing.T) {
	units := EncodeTitle("😀")
	if len(units) != 2 || units[0] != 0xD83D || units[1] != 0xDE00 {
		t.Errorf("EncodeTitle = %#x, want [0xd83d 0xde00]", units)
	}
}

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		name    string
		units   []uint16
		want    string
		wantErr bool
	}{
		{"ascii", []uint16{'o', 'k'}, "ok", false},
		{"empty", nil, "", false},
		{"literal replacement char", []uint16{0xFFFD}, "\uFFFD", false},
		{"lone high surrogate", []uint16{'a', 0xD800}, "", true},
		{"lone low surrogate", []uint16{0xDC00, 'b'}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeTitle(tt.units)
			if tt.wantErr {
				if !errors.Is(err, ErrBadTitle) {
					t.Errorf("error = %v, want ErrBadTitle", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("DecodeTitle() = %q, %v; want %q", got, err, tt.want)
			}
		})
	}
}

func TestNewBitmapStride(t *testing.T) {
	tests := []struct {
		w, h, align int
		wantStride  int
	}{
		{100, 10, 0, 400},
		{100, 10, 64, 448},
		{16, 1, 64, 64},
		{3, 2, 4, 12},
	}
	for _, tt := range tests {
		b := NewBitmap(tt.w, tt.h, tt.align)
		if b.Stride != tt.wantStride {
			t.Errorf("NewBitmap(%d,%d,%d).Stride = %d, want %d", tt.w, tt.h, tt.align, b.Stride, tt.wantStride)
		}
		if len(b.Pix) != b.Stride*tt.h {
			t.Errorf("len(Pix) = %d, want %d", len(b.Pix), b.Stride*tt.h)
		}
	}
}

func TestStandardCursorString(t *testing.T) {
	if CursorIBeam.String() != "IBeam" {
		t.Errorf("String() = %q", CursorIBeam.String())
	}
	if StandardCursor(250).String() != "StandardCursor(250)" {
		t.Errorf("String() = %q", StandardCursor(250).String())
	}
}
