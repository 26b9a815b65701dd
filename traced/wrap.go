package traced

import (
	"errors"

	"github.com/next-trace/scg-trace/contract"
)

// tracer is implemented by every *Error[E], whatever E is.
type tracer interface {
	error
	locations() []Location
}

// FromError lifts a conventional (value, error) pair into a Result.
//
// Behavior:
//   - nil err => success holding v
//   - err is *Error[error] => forwarded: a copy with the caller's location appended
//   - err is an *Error of another inner type => nested: the new Error's inner value
//     is err itself, its trace is err's trace plus the caller's location
//   - otherwise err is wrapped and the caller's location becomes its first record
//
// Only err itself is inspected; a traced error wrapped by fmt.Errorf or similar
// starts a new trace.
func FromError[T any](v T, err error) Result[T, error] {
	if err == nil {
		return Ok[T, error](v)
	}

	switch te := err.(type) {
	case *Error[error]:
		if te != nil {
			return Result[T, error]{err: te.forward(capture(1))}
		}
	case tracer:
		if trace := te.locations(); len(trace) > 0 {
			return Result[T, error]{err: &Error[error]{inner: err, trace: append(trace, capture(1))}}
		}
	}

	return Result[T, error]{err: newAt(err, 1)}
}

// Ensure converts any error to *Error[error].
//
// Behavior:
//   - nil input => nil output
//   - if err is or wraps an *Error[error] => that value is returned (same pointer)
//   - if err is or wraps an *Error of another inner type => err becomes the inner
//     value and the trace found in the chain is kept; no record is added
//   - otherwise err is wrapped and the caller's location becomes its first record
func Ensure(err error) *Error[error] {
	if err == nil {
		return nil
	}

	var e *Error[error]

	if errors.As(err, &e) && e != nil {
		return e
	}

	var t tracer

	if errors.As(err, &t) {
		if trace := t.locations(); len(trace) > 0 {
			return &Error[error]{inner: err, trace: trace}
		}
	}

	return newAt(err, 1)
}

// TraceOf finds the first traced error in err's chain, whatever its inner type.
func TraceOf(err error) (contract.Traced, bool) {
	var t contract.Traced

	if errors.As(err, &t) {
		return t, true
	}

	return nil, false
}
