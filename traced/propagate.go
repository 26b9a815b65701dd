package traced

// Try is the forward-or-continue step. On success it returns the value and a
// nil error. On failure it returns a copy of the error with the location of
// the Try call appended, for the caller to pass upward; r keeps its trace:
//
//	n, err := parse(s).Try()
//	if err != nil {
//		return traced.Err[Config](err)
//	}
func (r Result[T, E]) Try() (T, *Error[E]) {
	if r.err != nil {
		return r.value, r.err.forward(capture(1))
	}

	return r.value, nil
}

// Propagate is Try folded into a single call. ok is false on failure, in which
// case fwd is the failure already retyped for the caller's Result and the call
// site of Propagate has been recorded:
//
//	n, fwd, ok := traced.Propagate[Config](parse(s))
//	if !ok {
//		return fwd
//	}
func Propagate[U, T, E any](r Result[T, E]) (value T, fwd Result[U, E], ok bool) {
	if r.err != nil {
		return value, Result[U, E]{err: r.err.forward(capture(1))}, false
	}

	return r.value, fwd, true
}

// PropagateAs is Propagate with error widening: on failure the call site is
// recorded and the inner error is then converted with widen. The conversion
// adds no record of its own, and r's trace is left as it was.
func PropagateAs[U, T, E, F any](r Result[T, E], widen func(E) F) (value T, fwd Result[U, F], ok bool) {
	if r.err != nil {
		return value, Result[U, F]{err: Widen(r.err.forward(capture(1)), widen)}, false
	}

	return r.value, fwd, true
}

// Widen converts the inner value of err with f and carries the trace over
// unchanged. It adds no record. A nil err yields nil.
func Widen[E, F any](err *Error[E], f func(E) F) *Error[F] {
	if err == nil {
		return nil
	}

	return &Error[F]{
		inner: f(err.inner),
		trace: err.Trace(),
	}
}

// AsError widens a concrete error type into the error interface.
func AsError[E error](err *Error[E]) *Error[error] {
	return Widen(err, func(e E) error { return e })
}
