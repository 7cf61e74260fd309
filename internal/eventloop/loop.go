// Package eventloop is a cooperative single-threaded loop with repeating
// timers and posted tasks.
//
// The loop does not own a thread. A platform driver calls [Loop.RunOnce]
// once per turn (from its frame callback, or from a stepping clock) and
// every timer and task runs synchronously inside that call.
package eventloop

import (
	"sync"
	"time"
)

// Timer is a repeating timer registered with [Loop.Every].
type Timer struct {
	interval time.Duration
	fn       func()
	next     time.Time
	stopped  bool
}

// Stop prevents any further firing. Stop is idempotent.
func (t *Timer) Stop() {
	t.stopped = true
}

// Stopped reports whether Stop has been called.
func (t *Timer) Stopped() bool {
	return t.stopped
}

// Interval returns the firing period.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Loop runs timers and posted tasks. Only Post is safe to call from other
// goroutines; everything else belongs to the goroutine that calls RunOnce.
type Loop struct {
	mu     sync.Mutex
	posted []func()

	timers []*Timer
	quit   bool
	code   int
}

// New creates an idle loop.
func New() *Loop {
	return &Loop{}
}

// Every registers fn to run every interval. The first deadline is one
// interval after the first RunOnce that sees the timer. Two timers keep
// no relative order beyond their own periods.
//
// Every panics if interval is not positive.
func (l *Loop) Every(interval time.Duration, fn func()) *Timer {
	if interval <= 0 {
		panic("eventloop: non-positive timer interval")
	}
	t := &Timer{interval: interval, fn: fn}
	l.timers = append(l.timers, t)
	return t
}

// Post queues fn to run on the loop during the next RunOnce.
// Post is safe for concurrent use. Tasks posted after Quit never run.
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
}

// Quit stops the loop with the given exit code. The call that is
// currently running finishes; nothing else runs afterwards.
func (l *Loop) Quit(code int) {
	if l.quit {
		return
	}
	l.quit = true
	l.code = code
}

// Running reports whether Quit has not been called yet.
func (l *Loop) Running() bool {
	return !l.quit
}

// ExitCode returns the code passed to Quit, or 0.
func (l *Loop) ExitCode() int {
	return l.code
}

// RunOnce runs every posted task, then every due timer, as of now.
// It returns false once the loop has quit.
//
// A timer that fell behind by more than one period fires once and is
// rescheduled from now; missed periods are not replayed.
func (l *Loop) RunOnce(now time.Time) bool {
	if l.quit {
		return false
	}

	l.mu.Lock()
	tasks := l.posted
	l.posted = nil
	l.mu.Unlock()

	for _, fn := range tasks {
		fn()
		if l.quit {
			return false
		}
	}

	for _, t := range l.timers {
		if t.stopped {
			continue
		}
		if t.next.IsZero() {
			t.next = now.Add(t.interval)
			continue
		}
		if now.Before(t.next) {
			continue
		}
		t.next = t.next.Add(t.interval)
		if !now.Before(t.next) {
			t.next = now.Add(t.interval)
		}
		t.fn()
		if l.quit {
			return false
		}
	}

	l.compact()
	return true
}

// NextDeadline returns the earliest pending timer deadline.
// The second result is false when no timer is armed.
func (l *Loop) NextDeadline() (time.Time, bool) {
	var next time.Time
	for _, t := range l.timers {
		if t.stopped || t.next.IsZero() {
			continue
		}
		if next.IsZero() || t.next.Before(next) {
			next = t.next
		}
	}
	return next, !next.IsZero()
}

func (l *Loop) compact() {
	live := l.timers[:0]
	for _, t := range l.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(l.timers); i++ {
		l.timers[i] = nil
	}
	l.timers = live
}
