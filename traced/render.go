package traced

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Render returns the error's message followed by one line per trace record,
// most recent propagation first and construction site last:
//
//	Bad
//	At (30:0) in /src/app/c.go
//	At (20:0) in /src/app/b.go
//	At (10:0) in /src/app/a.go
func (e *Error[E]) Render() string {
	if e == nil {
		return "<nil>"
	}

	var b strings.Builder

	b.WriteString(e.Error())

	for i := len(e.trace) - 1; i >= 0; i-- {
		l := e.trace[i]
		b.WriteString("\nAt (")
		b.WriteString(strconv.Itoa(l.line))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(l.column))
		b.WriteString(") in ")
		b.WriteString(l.file)
	}

	return b.String()
}

// Format implements fmt.Formatter. %+v prints Render(), %v and %s print the
// message, %q the quoted message.
func (e *Error[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Render())
			return
		}

		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(traced.Error=%s)", verb, e.Error())
	}
}
