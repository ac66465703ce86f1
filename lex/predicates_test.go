package lex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cljread/cljread/lex"
)

func TestIsCollectionDelimiter(t *testing.T) {
	for _, ch := range []rune{'(', ')', '[', ']', '{', '}'} {
		assert.True(t, lex.IsCollectionDelimiter(ch))
	}
	assert.False(t, lex.IsCollectionDelimiter('a'))
}

func TestIsSymbolChar(t *testing.T) {
	assert.True(t, lex.IsSymbolChar('a'))
	assert.True(t, lex.IsSymbolChar('+'))
	assert.False(t, lex.IsSymbolChar(' '))
	assert.False(t, lex.IsSymbolChar('('))
}

func TestIsDigit(t *testing.T) {
	assert.True(t, lex.IsDigit('0'))
	assert.True(t, lex.IsDigit('9'))
	assert.False(t, lex.IsDigit('a'))
}
