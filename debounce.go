// Package debounce provides functions to debounce function calls, i.e., to
// ensure that a function is only executed after a certain amount of time has
// passed since the last call.
//
// Debouncing can be useful in scenarios where function calls may be triggered
// rapidly, such as in response to user input, but the underlying operation is
// expensive and only needs to be performed once per batch of calls.
//
// The core type is Debouncer, which carries the argument of the most recent
// call into the invocation, memoizes the last result, and supports leading
// and trailing edge invocation, a maximum wait ceiling, and explicit Cancel,
// Flush and Pending control operations. New is a convenience wrapper for the
// common case of a function with no arguments and no result.
package debounce

import (
	"time"
)

// New returns a debounced function that delays invoking f until after wait
// time has elapsed since the last time the debounced function was invoked,
// along with a cancel function that discards any pending invocation. A nil f
// returns ErrNilFunc.
//
// The cancel function is not required to be called, so can be ignored if not
// needed. Both returned functions are safe for concurrent use in goroutines,
// and can both be called multiple times.
//
// Edge and ceiling behavior is configured with the same options as
// NewDebouncer.
func New(
	wait time.Duration,
	f func(),
	opts ...Option,
) (debounced func(), cancel func(), err error) {
	var fn func(struct{}) struct{}
	if f != nil {
		fn = func(struct{}) struct{} {
			f()

			return struct{}{}
		}
	}

	d, err := NewDebouncer(wait, fn, opts...)
	if err != nil {
		return nil, nil, err
	}

	debounced = func() {
		d.Call(struct{}{})
	}

	return debounced, d.Cancel, nil
}
