// Package value implements the immutable data model: the tagged Value sum
// type (nil, bool, num, str, symbol, keyword, list, vect, set, map), its
// Symbol and Keyword leaves, and the span-annotated SpanValue the reader
// produces. Grounded on original_source/crates/cljrs-reader/src/value.rs
// (the is_*/as_*/into_* accessor family and the Display impl this package's
// String() methods reproduce) and cljrs-core/src/symbol.rs /
// cljrs-reader/src/keyword.rs for the two leaf types.
package value

import (
	"strconv"
	"strings"

	"github.com/cljread/cljread/span"
)

// Kind discriminates the ten Value cases.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNum
	KindStr
	KindSymbol
	KindKeyword
	KindList
	KindVect
	KindSet
	KindMap
)

// MapEntry is one (key, value) pair in a Map, in source order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is the reader's tagged sum type. Zero value is KindNil.
type Value struct {
	kind     Kind
	b        bool
	num      Num
	s        string
	sym      Symbol
	kw       Keyword
	children []Value
	pairs    []MapEntry
}

// Nil is the unit data value.
func Nil() Value { return Value{kind: KindNil} }

// Bool wraps a boolean literal.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// NumV wraps a numeric literal.
func NumV(n Num) Value { return Value{kind: KindNum, num: n} }

// Str wraps string text with surrounding quotes already stripped and
// escapes already decoded (SPEC_FULL.md §2.3).
func Str(s string) Value { return Value{kind: KindStr, s: s} }

// Sym wraps a symbol.
func Sym(s Symbol) Value { return Value{kind: KindSymbol, sym: s} }

// Kw wraps a keyword.
func Kw(k Keyword) Value { return Value{kind: KindKeyword, kw: k} }

// List wraps an ordered, duplicate-tolerant sequence of children.
func List(children []Value) Value { return Value{kind: KindList, children: children} }

// Vect wraps an ordered sequence of children, distinct in tag from List.
func Vect(children []Value) Value { return Value{kind: KindVect, children: children} }

// Set wraps a sequence of children as written; duplicate detection is not
// the reader's job.
func Set(children []Value) Value { return Value{kind: KindSet, children: children} }

// Map wraps an ordered sequence of key-value pairs as written;
// duplicate-key detection is not the reader's job.
func Map(pairs []MapEntry) Value { return Value{kind: KindMap, pairs: pairs} }

// Kind reports which of the ten cases v holds.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNil() bool     { return v.kind == KindNil }
func (v Value) IsBool() bool    { return v.kind == KindBool }
func (v Value) IsNum() bool     { return v.kind == KindNum }
func (v Value) IsStr() bool     { return v.kind == KindStr }
func (v Value) IsSymbol() bool  { return v.kind == KindSymbol }
func (v Value) IsKeyword() bool { return v.kind == KindKeyword }
func (v Value) IsList() bool    { return v.kind == KindList }
func (v Value) IsVect() bool    { return v.kind == KindVect }
func (v Value) IsSet() bool     { return v.kind == KindSet }
func (v Value) IsMap() bool     { return v.kind == KindMap }

// AsBool narrows v to a bool, reporting false if v is not KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsNum narrows v to a Num, reporting false if v is not KindNum.
func (v Value) AsNum() (Num, bool) {
	if v.kind != KindNum {
		return Num{}, false
	}
	return v.num, true
}

// AsStr narrows v to a string, reporting false if v is not KindStr.
func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.s, true
}

// AsSymbol narrows v to a Symbol, reporting false if v is not KindSymbol.
func (v Value) AsSymbol() (Symbol, bool) {
	if v.kind != KindSymbol {
		return Symbol{}, false
	}
	return v.sym, true
}

// AsKeyword narrows v to a Keyword, reporting false if v is not KindKeyword.
func (v Value) AsKeyword() (Keyword, bool) {
	if v.kind != KindKeyword {
		return Keyword{}, false
	}
	return v.kw, true
}

// AsChildren narrows v to its child sequence, for List, Vect and Set.
func (v Value) AsChildren() ([]Value, bool) {
	switch v.kind {
	case KindList, KindVect, KindSet:
		return v.children, true
	default:
		return nil, false
	}
}

// AsPairs narrows v to its entry sequence, for Map.
func (v Value) AsPairs() ([]MapEntry, bool) {
	if v.kind != KindMap {
		return nil, false
	}
	return v.pairs, true
}

// Equal reports structural equality: same Kind and, recursively, same
// content. Collections compare element-wise in source order (no
// reordering, matching the reader's duplicate-tolerant semantics).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == other.b
	case KindNum:
		return v.num.String() == other.num.String()
	case KindStr:
		return v.s == other.s
	case KindSymbol:
		return v.sym == other.sym
	case KindKeyword:
		return v.kw == other.kw
	case KindList, KindVect, KindSet:
		if len(v.children) != len(other.children) {
			return false
		}
		for i := range v.children {
			if !v.children[i].Equal(other.children[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(v.pairs) != len(other.pairs) {
			return false
		}
		for i := range v.pairs {
			if !v.pairs[i].Key.Equal(other.pairs[i].Key) || !v.pairs[i].Value.Equal(other.pairs[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindNum:
		return v.num.String()
	case KindStr:
		return quoteString(v.s)
	case KindSymbol:
		return v.sym.String()
	case KindKeyword:
		return v.kw.String()
	case KindList:
		return wrapChildren("(", v.children, ")")
	case KindVect:
		return wrapChildren("[", v.children, "]")
	case KindSet:
		return wrapChildren("#{", v.children, "}")
	case KindMap:
		return mapString(v.pairs)
	default:
		return ""
	}
}

func wrapChildren(open string, children []Value, close string) string {
	var sb strings.Builder
	sb.WriteString(open)
	for i, c := range children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	sb.WriteString(close)
	return sb.String()
}

func mapString(pairs []MapEntry) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(p.Key.String())
		sb.WriteByte(' ')
		sb.WriteString(p.Value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

var stringEscapes = map[byte]string{
	'\t': `\t`,
	'\r': `\r`,
	'\n': `\n`,
	'\\': `\\`,
	'"':  `\"`,
	'\b': `\b`,
	'\f': `\f`,
}

func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if esc, ok := stringEscapes[s[i]]; ok {
			sb.WriteString(esc)
			continue
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// SpanValue pairs a Value with the inclusive byte range it occupies in the
// source it was read from.
type SpanValue struct {
	Value Value
	Span  span.Span
}
