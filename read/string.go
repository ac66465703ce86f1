package read

import (
	"strconv"

	"github.com/cljread/cljread/lex"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

var simpleEscapes = map[rune]rune{
	't':  '\t',
	'r':  '\r',
	'n':  '\n',
	'\\': '\\',
	'"':  '"',
	'b':  '\b',
	'f':  '\f',
}

// TryReadString reads a string literal starting at the current '"', per
// spec.md §4.6, decoding the Clojure escape table per SPEC_FULL.md §2.3
// (\t \r \n \\ \" \b \f \uXXXX). An invalid escape (including a \u
// followed by a non-hex character) is InvalidInput at the escape's span;
// an escape cut off by the end of the source is InsufficientInput from the
// backslash to the last source char; an unterminated string is
// InsufficientInput spanning the opening quote to the last source char.
func (r *Reader) TryReadString() (*value.SpanValue, error) {
	strBeginByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '"' {
		return nil, nil
	}
	r.cur.Advance() // beyond opening '"'

	var buf []rune
	for {
		byteIdx, ch, ok := r.cur.Current()
		if !ok {
			return nil, readerr.NewInsufficientInput(strBeginByteIdx, r.cur.LastByteIdx())
		}
		if ch == '"' {
			r.cur.Advance() // beyond closing '"'
			return &value.SpanValue{
				Value: value.Str(string(buf)),
				Span:  span.New(strBeginByteIdx, byteIdx),
			}, nil
		}
		if ch == '\\' {
			decoded, err := r.readEscape(byteIdx)
			if err != nil {
				return nil, err
			}
			buf = append(buf, decoded)
			continue
		}
		buf = append(buf, ch)
		r.cur.Advance()
	}
}

// readEscape decodes one backslash escape with the cursor positioned on
// the backslash; it leaves the cursor just past the escape on success.
func (r *Reader) readEscape(backslashByteIdx int) (rune, error) {
	r.cur.Advance() // beyond '\\'
	ch, ok := r.cur.CurrentRune()
	if !ok {
		return 0, readerr.NewInsufficientInput(backslashByteIdx, r.cur.LastByteIdx())
	}

	if ch == 'u' {
		return r.readUnicodeEscape(backslashByteIdx)
	}

	decoded, known := simpleEscapes[ch]
	if !known {
		endByteIdx := r.cur.CurrentByteIdx()
		return 0, readerr.NewInvalidInput(backslashByteIdx, endByteIdx)
	}
	r.cur.Advance()
	return decoded, nil
}

func (r *Reader) readUnicodeEscape(backslashByteIdx int) (rune, error) {
	r.cur.Advance() // beyond 'u'
	var digits []rune
	for i := 0; i < 4; i++ {
		ch, ok := r.cur.CurrentRune()
		if !ok {
			return 0, readerr.NewInsufficientInput(backslashByteIdx, r.cur.LastByteIdx())
		}
		if !isHexDigit(ch) {
			return 0, readerr.NewInvalidInput(backslashByteIdx, r.cur.CurrentByteIdx())
		}
		digits = append(digits, ch)
		r.cur.Advance()
	}
	n, err := strconv.ParseUint(string(digits), 16, 32)
	if err != nil {
		return 0, readerr.NewInvalidInput(backslashByteIdx, r.cur.CurrentByteIdx())
	}
	return rune(n), nil
}

func isHexDigit(ch rune) bool {
	return lex.IsDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}
