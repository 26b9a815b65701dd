// Package traced provides a result type whose errors record every call site
// they are propagated through.
//
// An Error[E] holds an error value of any type E together with a trace: the
// site where it was constructed, followed by one record per forwarding step.
// A Result[T, E] is either a success carrying T or a failure carrying
// *Error[E].
//
// Go has no customizable short-circuit operator, so forwarding is explicit.
// Every fallible call site that passes a failure upward calls Try (or
// Propagate / PropagateAs) on the Result it received, and that call is the
// location recorded:
//
//	func loadUser(id string) traced.Result[User, error] {
//		row, err := queryRow(id).Try()
//		if err != nil {
//			return traced.Err[User](err)
//		}
//		return traced.Ok[User, error](decode(row))
//	}
//
// When the failure reaches a handler, Render (or fmt's %+v) prints the message
// followed by the trace, newest site first.
//
// Key characteristics:
//   - Traces are never empty and only grow by appending; nothing is deduplicated
//   - Local transforms (Map, MapErr, Widen) never add records
//   - Stop freezes the trace into a conventional (T, *Error[E]) pair; FromPair lifts it back
//   - Unwrap on Error exposes the inner value to errors.Is / errors.As
//
// Caveats:
//   - The recorded site is the call of New, Fail, Try, Propagate, PropagateAs,
//     FromError or Ensure. If that call lives inside a helper of your own, the
//     helper's line is recorded, not its caller's. WithSkip adjusts this for
//     constructor helpers.
//   - The Go runtime does not report columns; Location.Column is always 0.
//   - Values are not synchronized. Freeze a trace with Stop before handing it
//     to another goroutine; capture has no meaning across goroutines.
package traced
