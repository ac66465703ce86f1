package read

import (
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

// readChildren drives the shared list/vector/set loop: skip whitespace,
// fail on exhaustion, stop on closeRune, consume comments and discards,
// otherwise recurse via TryReadOne and accumulate. The cursor must already be positioned just
// past the opening delimiter; beginByteIdx is the opener's byte index.
func (r *Reader) readChildren(beginByteIdx int, closeRune rune) ([]value.Value, int, error) {
	var children []value.Value
	for {
		r.cur.SkipWhitespace()

		if r.cur.BeyondEnd() {
			return nil, 0, readerr.NewInsufficientInput(beginByteIdx, r.cur.LastByteIdx())
		}

		if byteIdx, ch, ok := r.cur.Current(); ok && ch == closeRune {
			r.cur.Advance()
			return children, byteIdx, nil
		}

		if r.cur.CurrentRuneIs(';') {
			r.TryReadComment()
			continue
		}
		if byteIdx, ch, ok := r.cur.Current(); ok && ch == '#' && r.cur.PeekRuneIs('_') {
			if err := r.readDiscard(byteIdx); err != nil {
				return nil, 0, err
			}
			continue
		}

		child, err := r.TryReadOne()
		if err != nil {
			return nil, 0, err
		}
		if child == nil {
			// No value was produced; the next loop iteration re-checks
			// whitespace, the closer, and exhaustion.
			continue
		}
		children = append(children, child.Value)
	}
}

// TryReadList reads a list starting at the current '(', per spec.md §4.8.
func (r *Reader) TryReadList() (*value.SpanValue, error) {
	beginByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '(' {
		return nil, nil
	}
	r.cur.Advance()

	children, endByteIdx, err := r.readChildren(beginByteIdx, ')')
	if err != nil {
		return nil, err
	}
	return &value.SpanValue{Value: value.List(children), Span: span.New(beginByteIdx, endByteIdx)}, nil
}

// TryReadVect reads a vector starting at the current '[', per spec.md §4.8.
func (r *Reader) TryReadVect() (*value.SpanValue, error) {
	beginByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '[' {
		return nil, nil
	}
	r.cur.Advance()

	children, endByteIdx, err := r.readChildren(beginByteIdx, ']')
	if err != nil {
		return nil, err
	}
	return &value.SpanValue{Value: value.Vect(children), Span: span.New(beginByteIdx, endByteIdx)}, nil
}

// TryReadSet reads a set starting at the current '#{' (the leading '#' is
// consumed together with '{'), per spec.md §4.8.
func (r *Reader) TryReadSet() (*value.SpanValue, error) {
	beginByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '#' || !r.cur.PeekRuneIs('{') {
		return nil, nil
	}
	r.cur.Advance() // beyond '#'
	r.cur.Advance() // beyond '{'

	children, endByteIdx, err := r.readChildren(beginByteIdx, '}')
	if err != nil {
		return nil, err
	}
	return &value.SpanValue{Value: value.Set(children), Span: span.New(beginByteIdx, endByteIdx)}, nil
}

// TryReadMap reads a map starting at the current '{', per spec.md §4.8: each
// iteration reads a key, skips whitespace, then reads a value; the closer
// appearing between key and value is InsufficientInput over a value-less
// key.
func (r *Reader) TryReadMap() (*value.SpanValue, error) {
	beginByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '{' {
		return nil, nil
	}
	r.cur.Advance()

	pairs, endByteIdx, err := r.readMapPairs(beginByteIdx)
	if err != nil {
		return nil, err
	}
	return &value.SpanValue{Value: value.Map(pairs), Span: span.New(beginByteIdx, endByteIdx)}, nil
}

func (r *Reader) readMapPairs(beginByteIdx int) ([]value.MapEntry, int, error) {
	var pairs []value.MapEntry
	for {
		r.cur.SkipWhitespace()

		if r.cur.BeyondEnd() {
			return nil, 0, readerr.NewInsufficientInput(beginByteIdx, r.cur.LastByteIdx())
		}

		if byteIdx, ch, ok := r.cur.Current(); ok && ch == '}' {
			r.cur.Advance()
			return pairs, byteIdx, nil
		}

		if r.cur.CurrentRuneIs(';') {
			r.TryReadComment()
			continue
		}
		if byteIdx, ch, ok := r.cur.Current(); ok && ch == '#' && r.cur.PeekRuneIs('_') {
			if err := r.readDiscard(byteIdx); err != nil {
				return nil, 0, err
			}
			continue
		}

		keySv, err := r.TryReadOne()
		if err != nil {
			return nil, 0, err
		}
		if keySv == nil {
			continue
		}

		r.cur.SkipWhitespace()

		if r.cur.BeyondEnd() {
			return nil, 0, readerr.NewInsufficientInput(beginByteIdx, r.cur.LastByteIdx())
		}
		if byteIdx, ch, ok := r.cur.Current(); ok && ch == '}' {
			r.cur.Advance()
			return nil, 0, readerr.NewInsufficientInput(beginByteIdx, byteIdx)
		}

		valSv, err := r.TryReadOne()
		if err != nil {
			return nil, 0, err
		}
		if valSv == nil {
			continue
		}

		pairs = append(pairs, value.MapEntry{Key: keySv.Value, Value: valSv.Value})
	}
}
