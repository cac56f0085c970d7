package morph

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker is the frame work a Loop repeats.
type Ticker interface {
	Tick()
}

// Loop repeats Tick once per frame until stopped.
type Loop struct {
	target   Ticker
	interval time.Duration
	stopped  atomic.Bool
	frames   atomic.Int64
}

// MaxFPS is the highest frame rate a Loop runs at.
const MaxFPS = 1000

// NewLoop returns a loop at fps frames per second, clamped to [1, MaxFPS].
func NewLoop(target Ticker, fps int) *Loop {
	fps = min(max(fps, 1), MaxFPS)
	return &Loop{target: target, interval: time.Second / time.Duration(fps)}
}

// Frame runs one tick unless the loop is stopped, and reports whether the
// caller should schedule another frame.
func (l *Loop) Frame() bool {
	if l.stopped.Load() {
		return false
	}
	l.target.Tick()
	l.frames.Add(1)
	return !l.stopped.Load()
}

// Stop ends the loop. It is safe to call more than once and from any goroutine.
func (l *Loop) Stop() { l.stopped.Store(true) }

func (l *Loop) Stopped() bool { return l.stopped.Load() }

// Frames is the number of ticks run so far.
func (l *Loop) Frames() int64 { return l.frames.Load() }

func (l *Loop) Interval() time.Duration { return l.interval }

// Run drives frames from a ticker until Stop or ctx is done. It returns
// ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	t := time.NewTicker(l.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			l.Stop()
			return ctx.Err()
		case <-t.C:
			if !l.Frame() {
				return nil
			}
		}
	}
}

// RunFrames runs up to n frames back to back, calling after (if non-nil)
// after each one. It stops early once the loop is stopped and returns the
// number of frames run.
func (l *Loop) RunFrames(n int, after func(frame int)) int {
	done := 0
	for done < n && !l.stopped.Load() {
		l.target.Tick()
		l.frames.Add(1)
		done++
		if after != nil {
			after(done)
		}
	}
	return done
}
