package traced

import (
	"fmt"

	"github.com/next-trace/scg-trace/contract"
)

// Error holds an error value of any type together with the ordered list of
// sites it was constructed at and propagated through.
//
// The trace is never empty: the first record is the construction site. Each
// propagation step (Try, Propagate, PropagateAs, FromError) appends exactly one
// record to the value it returns. Records are never reordered, merged or
// dropped.
//
// Forwarding never mutates an existing Error: each step returns a new one that
// owns its trace. An Error is not safe for concurrent use.
type Error[E any] struct {
	inner E
	trace []Location
}

// compile-time guarantee that *Error implements contract.Traced
var _ contract.Traced = (*Error[error])(nil)

// New wraps inner and records the caller's location as the first trace record.
func New[E any](inner E, opts ...Option) *Error[E] {
	c := newConfig(opts)

	return newAt(inner, c.skip+1)
}

// newAt wraps inner recording the site skip frames above its caller.
func newAt[E any](inner E, skip int) *Error[E] {
	return &Error[E]{
		inner: inner,
		trace: []Location{capture(skip + 1)},
	}
}

// ------ standard error interface

func (e *Error[E]) Error() string {
	if e == nil {
		return "<nil>"
	}

	return fmt.Sprint(any(e.inner))
}

// Unwrap returns the inner value when it is an error, so errors.Is and
// errors.As see through the trace.
func (e *Error[E]) Unwrap() error {
	if e == nil {
		return nil
	}

	if err, ok := any(e.inner).(error); ok {
		return err
	}

	return nil
}

// ------ getters (a nil receiver reads as an empty error)

// Inner returns the wrapped value without the trace.
func (e *Error[E]) Inner() E {
	if e == nil {
		var zero E
		return zero
	}

	return e.inner
}

// Split returns the wrapped value and a copy of the trace.
func (e *Error[E]) Split() (E, []Location) { return e.Inner(), e.Trace() }

// Trace returns a copy of the trace, oldest record first.
func (e *Error[E]) Trace() []Location {
	if e == nil {
		return nil
	}

	out := make([]Location, len(e.trace))
	copy(out, e.trace)

	return out
}

// Len is the number of trace records.
func (e *Error[E]) Len() int {
	if e == nil {
		return 0
	}

	return len(e.trace)
}

// Sites returns the trace as contract.Site values, oldest first.
func (e *Error[E]) Sites() []contract.Site {
	if e == nil {
		return nil
	}

	out := make([]contract.Site, len(e.trace))
	for i, l := range e.trace {
		out[i] = l
	}

	return out
}

func (e *Error[E]) locations() []Location { return e.Trace() }

// forward returns a new Error holding the same inner value and e's trace with l
// appended. e itself is left untouched, so every frozen or copied value keeps
// the trace it had.
func (e *Error[E]) forward(l Location) *Error[E] {
	trace := make([]Location, len(e.trace), len(e.trace)+1)
	copy(trace, e.trace)

	return &Error[E]{
		inner: e.inner,
		trace: append(trace, l),
	}
}
