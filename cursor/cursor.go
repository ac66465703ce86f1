// Package cursor provides an indexed view over a source string with
// byte-accurate positions over Unicode scalar values, adapted from the
// teacher's hand-rolled rune scanner (parser/lexer.Lexer in the retrieval
// pack's lukeod/gosmi) and from the reference CharReader it was built to
// replace (original_source cljrs-reader/src/char_reader.rs). Unlike the
// teacher's incremental byte-counting scanner, a Cursor precomputes every
// (byte offset, rune) pair up front so advancement and span bookkeeping are
// both O(1), matching CharReader's char_indices().collect() strategy.
package cursor

import "unicode"

type indexedRune struct {
	byteIdx int
	r       rune
}

// Cursor scans a non-empty source string one rune at a time, tracking the
// byte offset of the rune currently under the cursor.
type Cursor struct {
	runes []indexedRune
	idx   int
}

// Open returns a Cursor over source, or false if source is empty.
func Open(source string) (*Cursor, bool) {
	if len(source) == 0 {
		return nil, false
	}
	runes := make([]indexedRune, 0, len(source))
	for byteIdx, r := range source {
		runes = append(runes, indexedRune{byteIdx, r})
	}
	return &Cursor{runes: runes}, true
}

// AtEnd reports whether the cursor is on the last rune of the source.
func (c *Cursor) AtEnd() bool {
	return c.idx == len(c.runes)-1
}

// BeyondEnd reports whether the cursor has advanced past the last rune.
func (c *Cursor) BeyondEnd() bool {
	return c.idx > len(c.runes)-1
}

// at returns the (byteIdx, rune) pair at the given rune-index, or false
// if srcIdx is out of range.
func (c *Cursor) at(srcIdx int) (int, rune, bool) {
	if srcIdx < 0 || srcIdx >= len(c.runes) {
		return 0, 0, false
	}
	ir := c.runes[srcIdx]
	return ir.byteIdx, ir.r, true
}

// Current returns the byte index and rune the cursor currently points at.
func (c *Cursor) Current() (int, rune, bool) {
	return c.at(c.idx)
}

// CurrentByteIdx returns the byte offset of the current rune.
func (c *Cursor) CurrentByteIdx() int {
	byteIdx, _, ok := c.Current()
	if !ok {
		return -1
	}
	return byteIdx
}

// CurrentRune returns the rune under the cursor and whether one exists.
func (c *Cursor) CurrentRune() (rune, bool) {
	_, r, ok := c.Current()
	return r, ok
}

// CurrentRuneIs reports whether the current rune equals r.
func (c *Cursor) CurrentRuneIs(r rune) bool {
	cur, ok := c.CurrentRune()
	return ok && cur == r
}

// Peek returns the byte index and rune one position ahead of the cursor.
func (c *Cursor) Peek() (int, rune, bool) {
	return c.at(c.idx + 1)
}

// PeekRune returns the rune one position ahead of the cursor.
func (c *Cursor) PeekRune() (rune, bool) {
	_, r, ok := c.Peek()
	return r, ok
}

// PeekRuneIs reports whether the rune one position ahead equals r.
func (c *Cursor) PeekRuneIs(r rune) bool {
	p, ok := c.PeekRune()
	return ok && p == r
}

// Advance moves the cursor one rune forward, saturating at BeyondEnd.
func (c *Cursor) Advance() {
	if !c.BeyondEnd() {
		c.idx++
	}
}

// ByteIdxAt returns the byte offset of the rune at srcIdx, or -1 if out of
// range. Used to report the byte index of the last rune read when a
// collection or string runs off the end of the source.
func (c *Cursor) ByteIdxAt(srcIdx int) int {
	byteIdx, _, ok := c.at(srcIdx)
	if !ok {
		return -1
	}
	return byteIdx
}

// LastByteIdx returns the byte offset of the last rune in the source.
func (c *Cursor) LastByteIdx() int {
	return c.ByteIdxAt(len(c.runes) - 1)
}

// SkipWhitespace advances past a run of whitespace (Unicode whitespace plus
// the comma, which is an ignorable separator rather than a delimiter).
func (c *Cursor) SkipWhitespace() {
	for {
		r, ok := c.CurrentRune()
		if !ok || !IsWhitespace(r) {
			return
		}
		c.Advance()
	}
}

// IsWhitespace reports whether ch is ignorable between forms: Unicode
// whitespace, or the comma.
func IsWhitespace(ch rune) bool {
	return unicode.IsSpace(ch) || ch == ','
}
