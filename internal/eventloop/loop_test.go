package eventloop

import (
	"sync"
	"testing"
	"time"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// step pumps the loop in fixed increments up to (and including) total.
func step(l *Loop, by, total time.Duration) {
	for d := time.Duration(0); d <= total; d += by {
		if !l.RunOnce(epoch.Add(d)) {
			return
		}
	}
}

func TestEveryFiresOnPeriod(t *testing.T) {
	tests := []struct {
		name     string
		interval time.Duration
		total    time.Duration
		want     int
	}{
		{"input 4ms over 100ms", 4 * time.Millisecond, 100 * time.Millisecond, 25},
		{"paint 16ms over 100ms", 16 * time.Millisecond, 100 * time.Millisecond, 6},
		{"longer than run", time.Second, 100 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			n := 0
			l.Every(tt.interval, func() { n++ })
			step(l, time.Millisecond, tt.total)
			if n != tt.want {
				t.Errorf("fired %d times, want %d", n, tt.want)
			}
		})
	}
}

func TestTimersIndependent(t *testing.T) {
	l := New()
	var fast, slow int
	l.Every(4*time.Millisecond, func() { fast++ })
	l.Every(16*time.Millisecond, func() { slow++ })
	step(l, time.Millisecond, 64*time.Millisecond)
	if fast != 16 || slow != 4 {
		t.Errorf("fast=%d slow=%d, want 16 and 4", fast, slow)
	}
}

func TestMissedPeriodsNotReplayed(t *testing.T) {
	l := New()
	n := 0
	l.Every(4*time.Millisecond, func() { n++ })
	l.RunOnce(epoch)
	l.RunOnce(epoch.Add(100 * time.Millisecond))
	if n != 1 {
		t.Fatalf("fired %d times after a long stall, want 1", n)
	}
	l.RunOnce(epoch.Add(102 * time.Millisecond))
	if n != 1 {
		t.Errorf("fired again before a full period elapsed")
	}
	l.RunOnce(epoch.Add(104 * time.Millisecond))
	if n != 2 {
		t.Errorf("fired %d times, want 2", n)
	}
}

func TestStop(t *testing.T) {
	l := New()
	n := 0
	tm := l.Every(time.Millisecond, func() { n++ })
	step(l, time.Millisecond, 3*time.Millisecond)
	tm.Stop()
	tm.Stop()
	before := n
	step(l, time.Millisecond, 10*time.Millisecond)
	if n != before {
		t.Errorf("stopped timer fired %d more times", n-before)
	}
	if !tm.Stopped() {
		t.Error("Stopped() = false after Stop")
	}
}

func TestQuitStopsEverything(t *testing.T) {
	l := New()
	var first, second, posted int
	l.Every(time.Millisecond, func() {
		first++
		l.Quit(0)
	})
	l.Every(time.Millisecond, func() { second++ })

	l.RunOnce(epoch)
	if l.RunOnce(epoch.Add(time.Millisecond)) {
		t.Fatal("RunOnce should report false after Quit")
	}
	l.Post(func() { posted++ })
	step(l, time.Millisecond, 10*time.Millisecond)

	if first != 1 || second != 0 || posted != 0 {
		t.Errorf("first=%d second=%d posted=%d, want 1 0 0", first, second, posted)
	}
	if l.Running() {
		t.Error("Running() = true after Quit")
	}
}

func TestQuitKeepsFirstCode(t *testing.T) {
	l := New()
	l.Quit(3)
	l.Quit(0)
	if l.ExitCode() != 3 {
		t.Errorf("ExitCode() = %d, want 3", l.ExitCode())
	}
}

func TestPostRunsBeforeTimersInOrder(t *testing.T) {
	l := New()
	var got []string
	l.Every(time.Millisecond, func() { got = append(got, "timer") })
	l.RunOnce(epoch)
	l.Post(func() { got = append(got, "a") })
	l.Post(func() { got = append(got, "b") })
	l.RunOnce(epoch.Add(time.Millisecond))

	want := []string{"a", "b", "timer"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPostFromTaskRunsNextTurn(t *testing.T) {
	l := New()
	n := 0
	l.Post(func() {
		l.Post(func() { n++ })
	})
	l.RunOnce(epoch)
	if n != 0 {
		t.Fatal("task posted during RunOnce ran in the same turn")
	}
	l.RunOnce(epoch)
	if n != 1 {
		t.Errorf("n = %d, want 1", n)
	}
}

func TestPostConcurrent(t *testing.T) {
	l := New()
	n := 0
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Post(func() { n++ })
		}()
	}
	wg.Wait()
	l.RunOnce(epoch)
	if n != 16 {
		t.Errorf("n = %d, want 16", n)
	}
}

func TestNextDeadline(t *testing.T) {
	l := New()
	if _, ok := l.NextDeadline(); ok {
		t.Fatal("NextDeadline on empty loop should report false")
	}
	l.Every(16*time.Millisecond, func() {})
	l.Every(4*time.Millisecond, func() {})
	l.RunOnce(epoch)
	got, ok := l.NextDeadline()
	if !ok || !got.Equal(epoch.Add(4*time.Millisecond)) {
		t.Errorf("NextDeadline() = %v, %v; want epoch+4ms", got, ok)
	}
}

func TestEveryPanicsOnZeroInterval(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Every(0) did not panic")
		}
	}()
	New().Every(0, func() {})
}
