package readerr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
)

func TestErrorKindPredicates(t *testing.T) {
	inv := readerr.NewInvalidInput(1, 2)
	insuf := readerr.NewInsufficientInput(1, 2)
	unc := readerr.NewUnclosedCollection(1, 2)

	assert.True(t, readerr.IsInvalidInput(inv))
	assert.False(t, readerr.IsInvalidInput(insuf))

	assert.True(t, readerr.IsInsufficientInput(insuf))
	assert.False(t, readerr.IsInsufficientInput(unc))

	assert.True(t, readerr.IsUnclosedCollection(unc))
	assert.False(t, readerr.IsUnclosedCollection(inv))
}

func TestErrorSpanRoundTrips(t *testing.T) {
	err := readerr.NewInvalidInput(3, 7)
	assert.Equal(t, span.Span{Begin: 3, End: 7}, err.Span())
}

func TestAnnotateIncludesExcerpt(t *testing.T) {
	source := `"hello`
	err := readerr.NewInsufficientInput(0, 5)
	got := readerr.Annotate(err, source)
	assert.Contains(t, got, "insufficient input")
	assert.Contains(t, got, `"hello`)
}

func TestAnnotateClampsOutOfRangeSpan(t *testing.T) {
	source := "ab"
	err := readerr.NewUnclosedCollection(0, 10)
	got := readerr.Annotate(err, source)
	assert.Contains(t, got, "unclosed collection")
}
