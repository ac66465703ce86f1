// Package read implements the reader core: a dispatching read loop plus
// per-form readers for symbols, keywords, strings, comments, the four
// collections, quote/deref sugar, discard, and namespaced maps. Grounded
// directly on original_source/crates/cljrs-reader/src/char_reader.rs's
// try_read_one and its match arms — the dynamic recursive sum type the
// dispatch loop walks has no static shape for the teacher's participle
// grammar to describe, so this package is hand-rolled recursive descent
// over a cursor.Cursor, the way char_reader.rs is hand-rolled over its
// own Vec<(ByteIdx, char)> cursor.
package read

import (
	"github.com/cljread/cljread/cursor"
	"github.com/cljread/cljread/internal/numeral"
	"github.com/cljread/cljread/lex"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

// Reader drives try_read_one over a single source string. It is not safe
// for concurrent use; callers needing concurrent reads open one Reader per
// source string (spec.md §5).
type Reader struct {
	cur *cursor.Cursor
}

// Open returns a Reader over source, or false if source is empty.
func Open(source string) (*Reader, bool) {
	cur, ok := cursor.Open(source)
	if !ok {
		return nil, false
	}
	return &Reader{cur: cur}, true
}

// TryReadOne advances past leading whitespace and at most one complete
// form. It returns (nil, nil) when the input is exhausted without
// encountering a form, a populated SpanValue on success, or a ReadError.
func (r *Reader) TryReadOne() (*value.SpanValue, error) {
	for {
		byteIdx, ch, ok := r.cur.Current()
		if !ok {
			return nil, nil
		}
		if cursor.IsWhitespace(ch) {
			r.cur.Advance()
			continue
		}

		switch {
		case ch == ')' || ch == ']' || ch == '}':
			r.cur.Advance()
			return nil, readerr.NewUnclosedCollection(byteIdx, byteIdx)

		case ch == '(':
			return r.TryReadList()

		case ch == '[':
			return r.TryReadVect()

		case ch == '{':
			return r.TryReadMap()

		case ch == '\'':
			return r.readSugar(byteIdx, "quote")

		case ch == '@':
			return r.readSugar(byteIdx, "deref")

		case ch == '#' && r.cur.PeekRuneIs('{'):
			return r.TryReadSet()

		case ch == '#' && r.cur.PeekRuneIs(':'):
			return r.TryReadNamespacedMap()

		case ch == '#' && r.cur.PeekRuneIs('_'):
			if err := r.readDiscard(byteIdx); err != nil {
				return nil, err
			}
			continue

		case ch == ':':
			return r.TryReadKeyword()

		case ch == '"':
			return r.TryReadString()

		case ch == ';':
			r.TryReadComment()
			continue

		case r.looksLikeNumeralLead(ch):
			return r.readNumeral(byteIdx)

		case lex.IsSymbolChar(ch):
			return r.readSymbolForm()

		default:
			r.cur.Advance()
			return nil, readerr.NewInvalidInput(byteIdx, byteIdx)
		}
	}
}

// looksLikeNumeralLead reports whether ch starts a numeric literal: a
// digit, or a sign immediately followed by a digit (SPEC_FULL.md §2.2).
func (r *Reader) looksLikeNumeralLead(ch rune) bool {
	if lex.IsDigit(ch) {
		return true
	}
	if ch != '+' && ch != '-' {
		return false
	}
	peek, ok := r.cur.PeekRune()
	return ok && lex.IsDigit(peek)
}

// readNumeral scans a maximal symbol-char run starting at byteIdx — the
// same scan-then-classify strategy cespare-goclj's lexNumber uses — and
// hands the isolated token to internal/numeral.
func (r *Reader) readNumeral(beginByteIdx int) (*value.SpanValue, error) {
	endByteIdx := beginByteIdx
	var tok []rune
	for {
		ch, ok := r.cur.CurrentRune()
		if !ok || !lex.IsSymbolChar(ch) {
			break
		}
		tok = append(tok, ch)
		endByteIdx = r.cur.CurrentByteIdx()
		r.cur.Advance()
	}
	n, err := numeral.Parse(string(tok))
	if err != nil {
		return nil, readerr.NewInvalidInput(beginByteIdx, endByteIdx)
	}
	return &value.SpanValue{Value: n, Span: span.New(beginByteIdx, endByteIdx)}, nil
}

// readSugar implements the `'form` and `@form` reader macros: advance past
// the marker, read one inner form, and wrap it as (sym form).
func (r *Reader) readSugar(markerByteIdx int, sym string) (*value.SpanValue, error) {
	r.cur.Advance()
	inner, err := r.TryReadOne()
	if err != nil {
		return nil, err
	}
	if inner == nil {
		return nil, readerr.NewInvalidInput(markerByteIdx, markerByteIdx)
	}
	wrapped := value.List([]value.Value{
		value.Sym(value.UnqualifiedSymbol(sym)),
		inner.Value,
	})
	return &value.SpanValue{Value: wrapped, Span: span.New(markerByteIdx, inner.Span.End)}, nil
}

// readDiscard implements `#_ form`: skip the form, producing no value.
func (r *Reader) readDiscard(hashByteIdx int) error {
	r.cur.Advance() // beyond '#'
	r.cur.Advance() // beyond '_'
	r.cur.SkipWhitespace()

	discarded, err := r.TryReadOne()
	switch {
	case err != nil:
		// Only a stray closing delimiter in the discarded form propagates;
		// any other error reading it is swallowed (the cursor has already
		// moved past the malformed region), matching the discard
		// semantics of the original reader this is ported from.
		if uc, ok := err.(*readerr.UnclosedCollection); ok {
			return readerr.NewUnclosedCollection(hashByteIdx, uc.Span().End)
		}
	case discarded == nil:
		last := r.cur.CurrentByteIdx()
		if last < 0 {
			last = r.cur.LastByteIdx()
		}
		return readerr.NewInvalidInput(hashByteIdx, last)
	}
	r.cur.SkipWhitespace()
	return nil
}
