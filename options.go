package debounce

import (
	"time"
)

type config struct {
	leading   bool
	trailing  bool
	maxing    bool
	maxWait   time.Duration
	scheduler Scheduler
}

func (c *config) apply(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// Option configures a debouncer at construction time.
type Option func(*config)

// Leading returns an option that enables the leading edge: the first call
// after a quiet period invokes the function immediately.
//
// When only leading is enabled, a burst of calls invokes the function once,
// immediately, with the arguments of the first call; subsequent calls in the
// burst are absorbed and nothing fires at the end of the window.
func Leading() Option {
	return func(c *config) {
		c.leading = true
	}
}

// Trailing returns an option that enables the trailing edge: the function is
// invoked once the wait duration has passed since the last call, with the
// arguments of that last call. This is the default behavior when no edge
// option is given.
//
// When both Leading and Trailing are enabled, a burst of two or more calls
// invokes the function twice: immediately with the first call's arguments,
// and at the end of the window with the last call's. A burst of a single
// call only invokes on the leading edge.
func Trailing() Option {
	return func(c *config) {
		c.trailing = true
	}
}

// WithMaxWait returns an option that bounds how long invocation can be
// delayed while calls keep arriving. Without it, a function called
// repeatedly within the wait duration is never invoked; with it, the
// function is invoked at least once every maxWait, measured from the
// previous invocation.
//
// A maxWait smaller than the wait duration is raised to the wait duration.
func WithMaxWait(maxWait time.Duration) Option {
	return func(c *config) {
		c.maxing = true
		c.maxWait = maxWait
	}
}

// WithScheduler returns an option that replaces the timing primitive used to
// schedule invocations. A nil scheduler is ignored, leaving the default
// selection in place.
func WithScheduler(s Scheduler) Option {
	return func(c *config) {
		if s != nil {
			c.scheduler = s
		}
	}
}
