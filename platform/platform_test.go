package platform

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

func TestClickCounter(t *testing.T) {
	ms := time.Millisecond
	type press struct {
		b    gpucontext.Button
		x, y float64
		at   time.Duration
	}
	tests := []struct {
		name    string
		presses []press
		want    []int
	}{
		{
			name:    "double click",
			presses: []press{{gpucontext.ButtonLeft, 10, 10, 0}, {gpucontext.ButtonLeft, 11, 10, 200 * ms}},
			want:    []int{1, 2},
		},
		{
			name:    "triple click",
			presses: []press{{gpucontext.ButtonLeft, 5, 5, 0}, {gpucontext.ButtonLeft, 5, 5, 100 * ms}, {gpucontext.ButtonLeft, 5, 5, 200 * ms}},
			want:    []int{1, 2, 3},
		},
		{
			name:    "too slow",
			presses: []press{{gpucontext.ButtonLeft, 10, 10, 0}, {gpucontext.ButtonLeft, 10, 10, 600 * ms}},
			want:    []int{1, 1},
		},
		{
			name:    "moved too far",
			presses: []press{{gpucontext.ButtonLeft, 10, 10, 0}, {gpucontext.ButtonLeft, 20, 10, 100 * ms}},
			want:    []int{1, 1},
		},
		{
			name:    "different button",
			presses: []press{{gpucontext.ButtonLeft, 10, 10, 0}, {gpucontext.ButtonRight, 10, 10, 100 * ms}},
			want:    []int{1, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ClickCounter
			for i, p := range tt.presses {
				if got := c.Press(p.b, p.x, p.y, p.at); got != tt.want[i] {
					t.Errorf("press %d: count = %d, want %d", i, got, tt.want[i])
				}
			}
		})
	}
}

func TestClickCounterReset(t *testing.T) {
	var c ClickCounter
	c.Press(gpucontext.ButtonLeft, 0, 0, 0)
	c.Reset()
	if got := c.Press(gpucontext.ButtonLeft, 0, 0, time.Millisecond); got != 1 {
		t.Errorf("count after Reset = %d, want 1", got)
	}
}

func TestEventIsQuit(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"quit", Event{Kind: EventQuit}, true},
		{"escape down", Event{Kind: EventKeyDown, Key: gpucontext.KeyEscape}, true},
		{"escape up", Event{Kind: EventKeyUp, Key: gpucontext.KeyEscape}, false},
		{"other key", Event{Kind: EventKeyDown, Key: gpucontext.KeyA}, false},
		{"resize", Event{Kind: EventResize, Width: 1, Height: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.IsQuit(); got != tt.want {
				t.Errorf("IsQuit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{Event{Kind: EventResize, Width: 900, Height: 650}, "Resize 900x650"},
		{Event{Kind: EventText, Text: "é"}, `Text "é"`},
		{Event{Kind: EventFocusLost}, "FocusLost"},
		{Event{Kind: EventKind(200)}, "EventKind(200)"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestDriversPriority(t *testing.T) {
	r := gpucontext.NewRegistry[string](gpucontext.WithPriority(DriverGoGPU, DriverHeadless))
	r.Register(DriverHeadless, func() string { return "h" })
	if got := r.BestName(); got != DriverHeadless {
		t.Fatalf("BestName() = %q, want headless", got)
	}
	r.Register(DriverGoGPU, func() string { return "g" })
	if got := r.BestName(); got != DriverGoGPU {
		t.Errorf("BestName() = %q, want gogpu", got)
	}
}
