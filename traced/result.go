package traced

import (
	"fmt"
)

// Result is either a success carrying T or a failure carrying *Error[E].
//
// The zero Result is a success holding the zero T. Results are transient values
// passed by value along a call chain; use Try or Propagate to forward a
// failure to the caller so the forwarding site is recorded.
type Result[T, E any] struct {
	value T
	err   *Error[E]
}

// Ok returns a success.
func Ok[T, E any](v T) Result[T, E] { return Result[T, E]{value: v} }

// Err returns a failure carrying err as is; no trace record is added.
// A nil err yields a success holding the zero T.
func Err[T, E any](err *Error[E]) Result[T, E] { return Result[T, E]{err: err} }

// Fail wraps e into a new Error recording the caller's location and returns it
// as a failure. It is the shorthand for Err[T](New(e)).
func Fail[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: newAt(e, 1)}
}

// FromPair lifts a frozen pair back into a Result, the reverse of Stop. The
// value and trace are kept exactly.
func FromPair[T, E any](v T, err *Error[E]) Result[T, E] {
	if err != nil {
		return Result[T, E]{err: err}
	}

	return Result[T, E]{value: v}
}

func (r Result[T, E]) IsOk() bool  { return r.err == nil }
func (r Result[T, E]) IsErr() bool { return r.err != nil }

// Stop converts r into the conventional Go pair. The trace is frozen at its
// current length: the pair has no Try, so later forwarding is not recorded
// unless it is lifted back with FromPair.
func (r Result[T, E]) Stop() (T, *Error[E]) {
	return r.value, r.err
}

// DiscardTrace returns the value, or the bare inner error with its trace
// dropped. ok reports success.
func (r Result[T, E]) DiscardTrace() (value T, inner E, ok bool) {
	if r.err != nil {
		return value, r.err.inner, false
	}

	return r.value, inner, true
}

// ------ accessors

// PanicError is the value the panicking accessors panic with.
//
// Err is set when a failure was unwrapped; Value is set when UnwrapErr found a
// success.
type PanicError struct {
	Msg   string
	Err   error
	Value any
}

func (p *PanicError) Error() string {
	if p.Err != nil {
		return fmt.Sprintf("%s: %v", p.Msg, p.Err)
	}

	return fmt.Sprintf("%s: %v", p.Msg, p.Value)
}

func (p *PanicError) Unwrap() error { return p.Err }

// Unwrap returns the success value and panics with a *PanicError on failure.
func (r Result[T, E]) Unwrap() T {
	return r.Expect("called Unwrap on a failure")
}

// Expect returns the success value and panics with a *PanicError carrying msg
// on failure.
func (r Result[T, E]) Expect(msg string) T {
	if r.err != nil {
		panic(&PanicError{Msg: msg, Err: r.err})
	}

	return r.value
}

// UnwrapErr returns the traced error and panics with a *PanicError on success.
func (r Result[T, E]) UnwrapErr() *Error[E] {
	if r.err == nil {
		panic(&PanicError{Msg: "called UnwrapErr on a success", Value: r.value})
	}

	return r.err
}

// UnwrapOr returns the success value or def.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}

	return r.value
}

// UnwrapOrElse returns the success value or the result of op on the failure.
func (r Result[T, E]) UnwrapOrElse(op func(*Error[E]) T) T {
	if r.err != nil {
		return op(r.err)
	}

	return r.value
}

// UnwrapOrDefault returns the success value or the zero T.
func (r Result[T, E]) UnwrapOrDefault() T {
	if r.err != nil {
		var zero T
		return zero
	}

	return r.value
}

// UnwrapUnchecked returns the stored value without checking the variant; it is
// the zero T for a failure.
func (r Result[T, E]) UnwrapUnchecked() T { return r.value }

// UnwrapErrUnchecked returns the stored error without checking the variant; it
// is nil for a success.
func (r Result[T, E]) UnwrapErrUnchecked() *Error[E] { return r.err }

// ------ local transforms

// Map applies f to a success value. A failure is returned unchanged, trace
// included.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.err != nil {
		return Result[U, E]{err: r.err}
	}

	return Result[U, E]{value: f(r.value)}
}

// MapErr applies f to the inner error of a failure, keeping its trace. A
// success is returned unchanged.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.err != nil {
		return Result[T, F]{err: Widen(r.err, f)}
	}

	return Result[T, F]{value: r.value}
}
