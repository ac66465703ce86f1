// Package readerr defines the error model for the reader: three variants,
// each carrying the inclusive byte-index span of the offending region.
package readerr

import (
	"fmt"

	"github.com/cljread/cljread/span"
)

// ReadError is the sum type of everything that can go wrong while reading.
// It is satisfied by InvalidInput, InsufficientInput and UnclosedCollection.
type ReadError interface {
	error
	Span() span.Span
	readErr()
}

// InvalidInput signals syntactically well-formed input that violates a
// structural rule of the reader (a leading-slash symbol, a dangling quote
// with no following form, a dangling discard).
type InvalidInput struct {
	span span.Span
}

// InsufficientInput signals a form that began but whose source ran out
// before it completed: an unterminated string, an unclosed collection, a
// map with a key but no value.
type InsufficientInput struct {
	span span.Span
}

// UnclosedCollection signals a closing delimiter with no matching opener
// at the top level, or a discard target that was itself unclosed.
type UnclosedCollection struct {
	span span.Span
}

// NewInvalidInput builds an InvalidInput error over the given span.
func NewInvalidInput(begin, end int) *InvalidInput {
	return &InvalidInput{span.Span{Begin: begin, End: end}}
}

// NewInsufficientInput builds an InsufficientInput error over the given span.
func NewInsufficientInput(begin, end int) *InsufficientInput {
	return &InsufficientInput{span.Span{Begin: begin, End: end}}
}

// NewUnclosedCollection builds an UnclosedCollection error over the given span.
func NewUnclosedCollection(begin, end int) *UnclosedCollection {
	return &UnclosedCollection{span.Span{Begin: begin, End: end}}
}

func (e *InvalidInput) Span() span.Span       { return e.span }
func (e *InsufficientInput) Span() span.Span  { return e.span }
func (e *UnclosedCollection) Span() span.Span { return e.span }

func (e *InvalidInput) readErr()       {}
func (e *InsufficientInput) readErr()  {}
func (e *UnclosedCollection) readErr() {}

func (e *InvalidInput) Error() string {
	return fmt.Sprintf("%s: invalid input", e.span)
}

func (e *InsufficientInput) Error() string {
	return fmt.Sprintf("%s: insufficient input", e.span)
}

func (e *UnclosedCollection) Error() string {
	return fmt.Sprintf("%s: unclosed collection", e.span)
}

// IsInvalidInput reports whether err is an *InvalidInput.
func IsInvalidInput(err error) bool {
	_, ok := err.(*InvalidInput)
	return ok
}

// IsInsufficientInput reports whether err is an *InsufficientInput.
func IsInsufficientInput(err error) bool {
	_, ok := err.(*InsufficientInput)
	return ok
}

// IsUnclosedCollection reports whether err is an *UnclosedCollection.
func IsUnclosedCollection(err error) bool {
	_, ok := err.(*UnclosedCollection)
	return ok
}

// Annotate renders the (begin, end, message) triple alongside the offending
// source substring, matching the diagnostic style the span indices are
// designed for (spec.md §7).
func Annotate(err ReadError, source string) string {
	sp := err.Span()
	begin, end := sp.Begin, sp.End
	if begin < 0 {
		begin = 0
	}
	if end >= len(source) {
		end = len(source) - 1
	}
	var excerpt string
	if begin <= end && begin < len(source) {
		excerpt = source[begin : end+1]
	}
	return fmt.Sprintf("%s: %q", err.Error(), excerpt)
}
