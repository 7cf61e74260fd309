package theme

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	if Default(false).Dark {
		t.Error("Default(false) is dark")
	}
	if !Default(true).Dark {
		t.Error("Default(true) is light")
	}
	for _, th := range []Theme{Light(), Dark()} {
		if err := th.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", th.Name, err)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := Dark()
	want.Accent = "#ff8800"
	blob, err := want.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != want {
		t.Errorf("Decode(Encode()) = %+v, want %+v", got, want)
	}
}

func TestDecodeFillsFromMatchingDefault(t *testing.T) {
	got, err := Decode([]byte("dark: true\naccent: \"#00ff00\"\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.Background != Dark().Background {
		t.Errorf("Background = %q, want the dark default", got.Background)
	}
	if got.Accent != "#00ff00" {
		t.Errorf("Accent = %q, want #00ff00", got.Accent)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		blob string
	}{
		{"bad yaml", "background: [unterminated"},
		{"bad colour", "background: \"#zzzzzz\""},
		{"empty colour", "foreground: \"\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.blob)); !errors.Is(err, ErrInvalid) {
				t.Errorf("Decode() error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ffffff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#3366cc", color.RGBA{0x33, 0x66, 0xcc, 0xff}, false},
		{"#f00", color.RGBA{0xff, 0, 0, 0xff}, false},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"", color.RGBA{}, true},
		{"#12", color.RGBA{}, true},
		{"white", color.RGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPalette(t *testing.T) {
	p := Light().Palette()
	if p.Background != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("Background = %v, want white", p.Background)
	}
	bad := Theme{Background: "nope"}
	if got := bad.Palette().Background; got != (color.RGBA{A: 0xff}) {
		t.Errorf("malformed colour = %v, want opaque black", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("name: Paper\nbackground: \"#fafafa\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Name != "Paper" || got.Background != "#fafafa" || got.Foreground != Light().Foreground {
		t.Errorf("Load() = %+v", got)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("name: One\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got := make(chan Theme, 4)
	post := func(fn func()) { fn() }
	w, err := Watch(path, post, func(th Theme) { got <- th })
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("name: Two\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	deadline := time.After(5 * time.Second)
	for {
		select {
		case th := <-got:
			if th.Name == "Two" {
				return
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	if err := os.WriteFile(path, []byte("name: One\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	got := make(chan Theme, 4)
	w, err := Watch(path, func(fn func()) { fn() }, func(th Theme) { got <- th })
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("name: Other\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case th := <-got:
		t.Errorf("unexpected reload: %+v", th)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theme.yaml")
	w, err := Watch(path, func(fn func()) { fn() }, func(Theme) {})
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}
