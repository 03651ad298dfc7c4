package debounce

import (
	"time"
)

// framePeriod is the length of one display frame at 60Hz, used by the
// frame-synchronized scheduler.
const framePeriod = time.Second / 60

// Scheduler is the timing primitive used by a Debouncer to run its expiry
// callback in the future. Scheduling again before the callback has run
// supersedes the previous schedule, so at most one callback is ever
// outstanding.
//
// Implementations are not required to be safe for concurrent use; the
// Debouncer serializes all calls to its Scheduler.
type Scheduler interface {
	// Schedule arms f to run once after roughly d has elapsed, superseding
	// any previously scheduled callback.
	Schedule(d time.Duration, f func())

	// Stop cancels the currently scheduled callback, if any. It is safe to
	// call with nothing scheduled.
	Stop()
}

// NewTimerScheduler returns a Scheduler backed by a millisecond-resolution
// timer. This is the default scheduler when a positive wait duration is
// given.
func NewTimerScheduler() Scheduler {
	return &timerScheduler{}
}

type timerScheduler struct {
	timer *time.Timer
}

func (s *timerScheduler) Schedule(d time.Duration, f func()) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(d, f)
}

func (s *timerScheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
}

// NewFrameScheduler returns a Scheduler that aligns callbacks to 60Hz display
// frame boundaries, delaying by at least one full frame. It is the default
// scheduler when no positive wait duration is given, so that work debounced
// without an explicit delay still coalesces to at most once per frame.
func NewFrameScheduler() Scheduler {
	return &frameScheduler{}
}

type frameScheduler struct {
	timer *time.Timer
}

func (s *frameScheduler) Schedule(d time.Duration, f func()) {
	// Only one outstanding frame request at a time.
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(frameAlign(d), f)
}

func (s *frameScheduler) Stop() {
	if s.timer != nil {
		s.timer.Stop()
	}
}

// frameAlign rounds d up to the next frame boundary, with a minimum of one
// full frame.
func frameAlign(d time.Duration) time.Duration {
	if d <= 0 {
		return framePeriod
	}
	if r := d % framePeriod; r != 0 {
		d += framePeriod - r
	}

	return d
}
