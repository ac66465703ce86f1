package value

import "github.com/alecthomas/repr"

// Repr renders v as a Go-syntax debug dump, in the style the teacher's MIB
// tooling uses alecthomas/repr for AST inspection. An alternative to the
// Clojure-syntax Value.String() for debugging.
func Repr(v Value) string {
	return repr.String(v, repr.Indent("  "))
}

// ReprSpanValue renders a SpanValue the same way. Used by cmd/cljread's
// --debug output mode.
func ReprSpanValue(sv SpanValue) string {
	return repr.String(sv, repr.Indent("  "))
}
