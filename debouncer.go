package debounce

import (
	"errors"
	"sync"
	"time"
)

// ErrNilFunc is returned when constructing a debouncer around a nil function.
var ErrNilFunc = errors.New("debounce: function is not invocable")

// Debouncer wraps a function of one argument, collapsing bursts of calls into
// at most one invocation per quiet period (or two, when both the leading and
// trailing edges are enabled). Each call records its argument, and whichever
// edge fires invokes the wrapped function with the most recently recorded
// argument at that point.
//
// All methods are safe for concurrent use. The wrapped function is invoked
// synchronously from whichever operation triggers it (Call, Flush, or the
// internal timer), while the debouncer's lock is held; calling back into the
// same Debouncer from inside the wrapped function is not supported.
type Debouncer[T, R any] struct {
	fn       func(T) R
	wait     time.Duration
	leading  bool
	trailing bool
	maxing   bool
	maxWait  time.Duration
	sched    Scheduler

	mux        sync.Mutex
	now        func() time.Time
	armed      bool
	lastArgs   *T
	lastCall   time.Time
	lastInvoke time.Time
	result     R
}

// NewDebouncer creates a Debouncer that delays invoking fn until wait has
// elapsed since the last call. A nil fn returns ErrNilFunc; a negative wait
// is treated as zero.
//
// By default only the trailing edge is enabled; see Leading, Trailing,
// WithMaxWait and WithScheduler for the available options. When wait is not
// positive and no scheduler is supplied, invocations are aligned to display
// frame boundaries instead of a millisecond timer.
func NewDebouncer[T, R any](
	wait time.Duration,
	fn func(T) R,
	opts ...Option,
) (*Debouncer[T, R], error) {
	if fn == nil {
		return nil, ErrNilFunc
	}
	if wait < 0 {
		wait = 0
	}

	conf := config{}
	conf.apply(opts)

	// If neither leading nor trailing is set, default to trailing.
	if !conf.leading && !conf.trailing {
		conf.trailing = true
	}

	d := &Debouncer[T, R]{
		fn:       fn,
		wait:     wait,
		leading:  conf.leading,
		trailing: conf.trailing,
		now:      time.Now,
	}

	if conf.maxing {
		d.maxing = true
		d.maxWait = conf.maxWait

		// The ceiling can never be tighter than the base wait.
		if d.maxWait < wait {
			d.maxWait = wait
		}
	}

	switch {
	case conf.scheduler != nil:
		d.sched = conf.scheduler
	case wait <= 0:
		d.sched = NewFrameScheduler()
	default:
		d.sched = NewTimerScheduler()
	}

	return d, nil
}

// Call records arg as the pending argument and invokes the wrapped function
// if an edge fires now. It returns the result of the most recent invocation,
// which may be from a previous call, or the zero value of R if the wrapped
// function has not been invoked yet.
func (d *Debouncer[T, R]) Call(arg T) R {
	d.mux.Lock()
	defer d.mux.Unlock()

	now := d.now()
	isInvoking := d.shouldInvoke(now)

	// Every call updates the most recent call snapshot, whether or not it
	// triggers an invocation.
	d.lastArgs = &arg
	d.lastCall = now

	if isInvoking {
		if !d.armed {
			return d.leadingEdge(now)
		}
		if d.maxing {
			// Calls keep arriving inside the base window, but the ceiling
			// has been reached. Re-arm and invoke immediately so continuous
			// calls cannot starve invocation indefinitely.
			d.arm(d.wait)

			return d.invoke(now)
		}
	}

	if !d.armed {
		d.arm(d.wait)
	}

	return d.result
}

// Cancel discards any pending invocation and resets the debouncer to its
// initial quiescent state. The memoized result of the last invocation is
// kept. Cancel is idempotent.
func (d *Debouncer[T, R]) Cancel() {
	d.mux.Lock()
	defer d.mux.Unlock()

	d.disarm()
	d.lastArgs = nil
	d.lastCall = time.Time{}
	d.lastInvoke = time.Time{}
}

// Flush immediately performs the pending trailing invocation, if there is
// one, and returns its result. With nothing pending it returns the result of
// the last invocation unchanged.
func (d *Debouncer[T, R]) Flush() R {
	d.mux.Lock()
	defer d.mux.Unlock()

	if !d.armed {
		return d.result
	}

	return d.trailingEdge(d.now())
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer[T, R]) Pending() bool {
	d.mux.Lock()
	defer d.mux.Unlock()

	return d.armed
}

// shouldInvoke reports whether a call or timer expiry at time now qualifies
// as an edge. This is the case on the first call after quiescence, once wait
// has elapsed since the last call, when the clock has gone backwards since
// the last call, or once the max-wait ceiling has elapsed since the last
// invocation. It must only be called while the mutex is held.
func (d *Debouncer[T, R]) shouldInvoke(now time.Time) bool {
	sinceCall := now.Sub(d.lastCall)
	sinceInvoke := now.Sub(d.lastInvoke)

	return d.lastCall.IsZero() ||
		sinceCall >= d.wait || sinceCall < 0 ||
		(d.maxing && sinceInvoke >= d.maxWait)
}

// remainingWait returns how long until the current window can fire: the time
// left until base quiescence, capped by the time left until the ceiling when
// one is active. It must only be called while the mutex is held.
func (d *Debouncer[T, R]) remainingWait(now time.Time) time.Duration {
	remaining := d.wait - now.Sub(d.lastCall)
	if d.maxing {
		if m := d.maxWait - now.Sub(d.lastInvoke); m < remaining {
			remaining = m
		}
	}

	return remaining
}

// leadingEdge opens a new debounce window at time now, invoking the wrapped
// function immediately when the leading edge is enabled. It must only be
// called while the mutex is held.
func (d *Debouncer[T, R]) leadingEdge(now time.Time) R {
	d.lastInvoke = now
	d.arm(d.wait)

	if d.leading {
		return d.invoke(now)
	}

	return d.result
}

// trailingEdge closes the current window at time now, invoking the wrapped
// function with the pending argument when the trailing edge is enabled and
// at least one call was recorded since the last invocation. It must only be
// called while the mutex is held.
func (d *Debouncer[T, R]) trailingEdge(now time.Time) R {
	d.disarm()

	if d.trailing && d.lastArgs != nil {
		return d.invoke(now)
	}
	d.lastArgs = nil

	return d.result
}

// timerExpired is the scheduler callback. The window either fires as a
// trailing edge, or was extended by an intervening call and is re-armed for
// the remaining wait.
func (d *Debouncer[T, R]) timerExpired() {
	d.mux.Lock()
	defer d.mux.Unlock()

	// Superseded or cancelled while this callback was in flight.
	if !d.armed {
		return
	}

	now := d.now()
	if d.shouldInvoke(now) {
		d.trailingEdge(now)

		return
	}

	d.arm(d.remainingWait(now))
}

// invoke executes the wrapped function with the pending argument, clearing
// it and recording the invocation time and result. It must only be called
// while the mutex is held.
func (d *Debouncer[T, R]) invoke(now time.Time) R {
	var arg T
	if d.lastArgs != nil {
		arg = *d.lastArgs
	}
	d.lastArgs = nil
	d.lastInvoke = now
	d.result = d.fn(arg)

	return d.result
}

// arm schedules the expiry callback after wait and marks the window as
// pending. It must only be called while the mutex is held.
func (d *Debouncer[T, R]) arm(wait time.Duration) {
	d.armed = true
	d.sched.Schedule(wait, d.timerExpired)
}

// disarm cancels the scheduled callback and marks the window as idle. It
// must only be called while the mutex is held.
func (d *Debouncer[T, R]) disarm() {
	d.armed = false
	d.sched.Stop()
}
