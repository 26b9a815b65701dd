package traced

import (
	"runtime"
	"strconv"

	"github.com/next-trace/scg-trace/contract"
)

// Location is a captured source position. Captured locations are only produced
// by this package at the moment of capture; the zero Location (empty file, line
// 0) is not a captured site and never appears in a trace.
type Location struct {
	file     string
	line     int
	column   int
	function string
}

var _ contract.Site = Location{}

func (l Location) File() string     { return l.file }
func (l Location) Line() int        { return l.line }
func (l Location) Column() int      { return l.column }
func (l Location) Function() string { return l.function }

// String returns "file:line".
func (l Location) String() string {
	return l.file + ":" + strconv.Itoa(l.line)
}

// capture returns the location skip frames above its caller: capture(0) is
// the line that called capture, capture(1) the line that called that function.
//
// The Go runtime does not expose columns, so column is always 0.
//
//go:noinline
func capture(skip int) Location {
	var pcs [1]uintptr
	// +2 skips runtime.Callers and capture itself.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return Location{file: "unknown"}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()

	return Location{
		file:     frame.File,
		line:     frame.Line,
		function: frame.Function,
	}
}
