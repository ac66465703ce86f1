package read

import (
	"github.com/cljread/cljread/lex"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

// readSymbolPart accumulates characters from the current position until
// end-of-input, whitespace, a collection delimiter, or '/'. It returns
// ok=false without advancing if the current character cannot begin a
// symbol part, per spec.md §4.4 step 1.
func (r *Reader) readSymbolPart() (text string, sp span.Span, ok bool) {
	beginByteIdx, first, curOk := r.cur.Current()
	if !curOk || !lex.IsSymbolChar(first) {
		return "", span.Span{}, false
	}

	endByteIdx := beginByteIdx
	buf := []rune{first}
	r.cur.Advance()

	for {
		ch, curOk := r.cur.CurrentRune()
		if !curOk || ch == '/' || !lex.IsSymbolChar(ch) {
			break
		}
		buf = append(buf, ch)
		endByteIdx = r.cur.CurrentByteIdx()
		r.cur.Advance()
	}

	return string(buf), span.New(beginByteIdx, endByteIdx), true
}

// TryReadSymbol reads a bare or namespace/name symbol starting at the
// current position, per spec.md §4.4. It does not apply the nil/true/false
// literal post-processing the top-level dispatch applies; callers that
// want that see readSymbolForm.
func (r *Reader) TryReadSymbol() (*value.SpanValue, error) {
	part1, part1Span, ok := r.readSymbolPart()
	if !ok {
		return nil, nil
	}
	if len(part1) > 1 && part1[0] == '/' {
		return nil, readerr.NewInvalidInput(part1Span.Begin, part1Span.End)
	}

	if !r.cur.CurrentRuneIs('/') {
		return &value.SpanValue{
			Value: value.Sym(value.UnqualifiedSymbol(part1)),
			Span:  part1Span,
		}, nil
	}

	if r.cur.AtEnd() {
		return nil, readerr.NewInvalidInput(part1Span.Begin, r.cur.CurrentByteIdx())
	}
	slashByteIdx := r.cur.CurrentByteIdx()
	r.cur.Advance() // beyond '/'

	part2, part2Span, ok := r.readSymbolPart()
	if !ok {
		return nil, readerr.NewInvalidInput(part1Span.Begin, slashByteIdx)
	}
	if len(part2) > 1 && part2[0] == '/' {
		return nil, readerr.NewInvalidInput(part2Span.Begin, part2Span.End)
	}

	return &value.SpanValue{
		Value: value.Sym(value.QualifiedSymbol(part1, part2)),
		Span:  span.New(part1Span.Begin, part2Span.End),
	}, nil
}

// readSymbolForm is the dispatch-loop entry point for a generic symbol
// lead character: it reads a symbol and post-processes the reserved
// unqualified names nil/true/false into their atom values (spec.md §4.3).
func (r *Reader) readSymbolForm() (*value.SpanValue, error) {
	sv, err := r.TryReadSymbol()
	if err != nil || sv == nil {
		return sv, err
	}
	sym, ok := sv.Value.AsSymbol()
	if !ok || sym.IsQualified() {
		return sv, nil
	}
	switch sym.Name {
	case "nil":
		return &value.SpanValue{Value: value.Nil(), Span: sv.Span}, nil
	case "true":
		return &value.SpanValue{Value: value.Bool(true), Span: sv.Span}, nil
	case "false":
		return &value.SpanValue{Value: value.Bool(false), Span: sv.Span}, nil
	default:
		return sv, nil
	}
}
