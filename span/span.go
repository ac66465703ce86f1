// Package span defines the inclusive byte-offset pair shared by values and
// read errors (spec.md §3: "SpanValue = (value, (begin_byte_idx,
// end_byte_idx)), both indices inclusive").
package span

import "fmt"

// Span is an inclusive byte-offset pair into a source string.
type Span struct {
	Begin int
	End   int
}

// New builds a Span, panicking if end is before begin — callers construct
// spans from cursor positions that are monotonically increasing, so an
// inverted span indicates a reader bug, not malformed input.
func New(begin, end int) Span {
	if end < begin {
		panic(fmt.Sprintf("span: end %d before begin %d", end, begin))
	}
	return Span{Begin: begin, End: end}
}

// Cover returns the smallest span containing both a and b.
func Cover(a, b Span) Span {
	begin, end := a.Begin, a.End
	if b.Begin < begin {
		begin = b.Begin
	}
	if b.End > end {
		end = b.End
	}
	return Span{Begin: begin, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Begin, s.End)
}
