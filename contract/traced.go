// Package contract exposes the minimal, non-generic surface of a traced error.
//
// Consumers that cannot (or do not want to) name the inner error type, such as
// loggers and top-level handlers, depend on these interfaces instead of
// traced.Error[E].
package contract

// Site is one captured source position along an error's propagation path.
//
// Implementations must be immutable values.
type Site interface {
	File() string
	Line() int
	// Column is 0 when the runtime does not report columns.
	Column() int
	Function() string
}

// Traced is an error that carries the sites it was propagated through.
//
// Implementations must:
//   - Return at least one site (the construction site).
//   - Return sites oldest first and never share the backing slice with callers.
//   - Support errors.Unwrap via Unwrap().
type Traced interface {
	error
	Unwrap() error
	Sites() []Site
	// Render returns the message followed by the trace, newest site first.
	Render() string
}
