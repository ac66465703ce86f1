package read

import (
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

// TryReadNamespacedMap reads `#:ns{...}` starting at the current '#', per
// spec.md §4.9. Unlike the Rust prototype this implements the namespace
// propagation spec.md §9 leaves open (SPEC_FULL.md §2.1): every
// unqualified keyword key at the top level of the map body is rewritten
// to be qualified by the namespace tag. Qualified, self-qualified,
// alias-qualified and non-keyword keys pass through unchanged.
func (r *Reader) TryReadNamespacedMap() (*value.SpanValue, error) {
	hashByteIdx, ch, ok := r.cur.Current()
	if !ok || ch != '#' || !r.cur.PeekRuneIs(':') {
		return nil, nil
	}
	r.cur.Advance() // beyond '#'

	tagSv, err := r.TryReadKeyword()
	if err != nil {
		return nil, err
	}
	if tagSv == nil {
		return nil, readerr.NewInvalidInput(hashByteIdx, r.cur.CurrentByteIdx())
	}
	tag, ok := tagSv.Value.AsKeyword()
	if !ok {
		return nil, readerr.NewInvalidInput(hashByteIdx, tagSv.Span.End)
	}

	mapSv, err := r.TryReadMap()
	if err != nil {
		return nil, err
	}
	if mapSv == nil {
		return nil, readerr.NewInvalidInput(hashByteIdx, tagSv.Span.End)
	}

	pairs, _ := mapSv.Value.AsPairs()
	qualified := make([]value.MapEntry, len(pairs))
	for i, p := range pairs {
		qualified[i] = value.MapEntry{Key: qualifyKey(tag, p.Key), Value: p.Value}
	}

	return &value.SpanValue{
		Value: value.Map(qualified),
		Span:  span.New(hashByteIdx, mapSv.Span.End),
	}, nil
}

// qualifyKey rewrites k, a map key, to be namespace-qualified by tag's
// name when k is an unqualified keyword; every other shape passes through.
func qualifyKey(tag value.Keyword, k value.Value) value.Value {
	kw, ok := k.AsKeyword()
	if !ok || kw.Kind() != value.KeywordUnqualified {
		return k
	}
	return value.Kw(kw.WithNamespace(tag.Name))
}
