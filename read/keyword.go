package read

import (
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

// TryReadKeyword reads a keyword starting at the current ':', per
// spec.md §4.5. It advances past the leading colon(s), reads a symbol
// over the remainder, and combines the double-colon flag with the
// symbol's shape to pick one of the four Keyword variants.
func (r *Reader) TryReadKeyword() (*value.SpanValue, error) {
	firstColonByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != ':' {
		return nil, nil
	}
	r.cur.Advance()

	doubleColon := r.cur.CurrentRuneIs(':')
	if doubleColon {
		r.cur.Advance()
	}

	symSv, err := r.TryReadSymbol()
	if err != nil {
		return nil, err
	}
	if symSv == nil {
		return nil, readerr.NewInvalidInput(firstColonByteIdx, firstColonByteIdx)
	}
	sym, ok := symSv.Value.AsSymbol()
	if !ok {
		return nil, readerr.NewInvalidInput(firstColonByteIdx, firstColonByteIdx)
	}

	var kw value.Keyword
	switch {
	case !doubleColon && !sym.IsQualified():
		kw = value.UnqualifiedKeyword(sym.Name)
	case !doubleColon && sym.IsQualified():
		kw = value.QualifiedKeyword(sym.Namespace, sym.Name)
	case doubleColon && !sym.IsQualified():
		kw = value.SelfQualifiedKeyword(sym.Name)
	default:
		kw = value.AliasQualifiedKeyword(sym.Namespace, sym.Name)
	}

	return &value.SpanValue{
		Value: value.Kw(kw),
		Span:  span.New(firstColonByteIdx, symSv.Span.End),
	}, nil
}
