// Package lex classifies characters for the reader: collection delimiters
// and symbol-start/symbol-continue characters. Whitespace classification
// lives in package cursor, since the cursor is what consumes it.
//
// Grounded on is_symbol_begin_char/is_symbol_continue_char in
// original_source/crates/cljrs-reader/src/char_reader.rs, and cross-checked
// against isSymbolChar in other_examples' cespare-goclj parse/lex.go.
package lex

import "github.com/cljread/cljread/cursor"

// IsCollectionDelimiter reports whether ch opens or closes a collection.
func IsCollectionDelimiter(ch rune) bool {
	switch ch {
	case '(', ')', '[', ']', '{', '}':
		return true
	default:
		return false
	}
}

// IsSymbolChar reports whether ch may begin or continue a symbol part. The
// dispatch characters (# : ; " ' @) are intercepted by the top-level read
// loop before a symbol read is attempted, so they never reach here as the
// first character of a symbol; '/' is handled explicitly by the symbol
// reader, not by this predicate.
func IsSymbolChar(ch rune) bool {
	return !cursor.IsWhitespace(ch) && !IsCollectionDelimiter(ch)
}

// IsDigit reports whether ch is an ASCII decimal digit, used by the reader
// to distinguish a numeric literal lead from an ordinary symbol lead.
func IsDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
