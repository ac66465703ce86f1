package read_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cljread/cljread/read"
	"github.com/cljread/cljread/readerr"
	"github.com/cljread/cljread/span"
	"github.com/cljread/cljread/value"
)

func mustReadOne(t *testing.T, src string) *value.SpanValue {
	t.Helper()
	rdr, ok := read.Open(src)
	require.True(t, ok, "read.Open(%q) returned false", src)
	sv, err := rdr.TryReadOne()
	require.NoError(t, err, "unexpected error reading %q", src)
	require.NotNil(t, sv, "expected a value reading %q, got none", src)
	return sv
}

func readErr(t *testing.T, src string) error {
	t.Helper()
	rdr, ok := read.Open(src)
	require.True(t, ok)
	_, err := rdr.TryReadOne()
	require.Error(t, err, "expected an error reading %q", src)
	return err
}

func TestOpenRejectsEmptySource(t *testing.T) {
	_, ok := read.Open("")
	assert.False(t, ok)
}

func TestWhitespaceAndCommentsOnlyYieldNone(t *testing.T) {
	for _, src := range []string{"   ", "\t\n  ", "; just a comment", " ; comment\n  ,,, "} {
		rdr, ok := read.Open(src)
		require.True(t, ok)
		sv, err := rdr.TryReadOne()
		require.NoError(t, err)
		assert.Nil(t, sv)
	}
}

func TestEmptyList(t *testing.T) {
	sv := mustReadOne(t, "()")
	assert.True(t, sv.Value.IsList())
	children, _ := sv.Value.AsChildren()
	assert.Empty(t, children)
	assert.Equal(t, span.Span{Begin: 0, End: 1}, sv.Span)
}

func TestSimpleList(t *testing.T) {
	sv := mustReadOne(t, "(assoc)")
	children, ok := sv.Value.AsChildren()
	require.True(t, ok)
	require.Len(t, children, 1)
	sym, ok := children[0].AsSymbol()
	require.True(t, ok)
	assert.Equal(t, "assoc", sym.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 6}, sv.Span)
}

func TestSimpleMap(t *testing.T) {
	sv := mustReadOne(t, "{k v}")
	require.True(t, sv.Value.IsMap())
	pairs, _ := sv.Value.AsPairs()
	require.Len(t, pairs, 1)
	k, _ := pairs[0].Key.AsSymbol()
	v, _ := pairs[0].Value.AsSymbol()
	assert.Equal(t, "k", k.Name)
	assert.Equal(t, "v", v.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 4}, sv.Span)
}

func TestUnbalancedMapValuelessKey(t *testing.T) {
	err := readErr(t, "{k}")
	require.True(t, readerr.IsInsufficientInput(err))
	assert.Equal(t, span.Span{Begin: 0, End: 2}, err.(readerr.ReadError).Span())
}

func TestQuoteSugar(t *testing.T) {
	sv := mustReadOne(t, "'foo")
	children, ok := sv.Value.AsChildren()
	require.True(t, ok)
	require.Len(t, children, 2)
	quoteSym, _ := children[0].AsSymbol()
	fooSym, _ := children[1].AsSymbol()
	assert.Equal(t, "quote", quoteSym.Name)
	assert.Equal(t, "foo", fooSym.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 3}, sv.Span)
}

func TestDerefSugar(t *testing.T) {
	sv := mustReadOne(t, "@foo")
	children, _ := sv.Value.AsChildren()
	require.Len(t, children, 2)
	derefSym, _ := children[0].AsSymbol()
	assert.Equal(t, "deref", derefSym.Name)
}

func TestSelfQualifiedKeyword(t *testing.T) {
	sv := mustReadOne(t, "::foo")
	kw, ok := sv.Value.AsKeyword()
	require.True(t, ok)
	assert.Equal(t, value.KeywordSelfQualified, kw.Kind())
	assert.Equal(t, "foo", kw.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 4}, sv.Span)
}

func TestAliasQualifiedKeyword(t *testing.T) {
	sv := mustReadOne(t, "::foo/bar")
	kw, ok := sv.Value.AsKeyword()
	require.True(t, ok)
	assert.Equal(t, value.KeywordAliasQualified, kw.Kind())
	assert.Equal(t, "foo", kw.Alias)
	assert.Equal(t, "bar", kw.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 8}, sv.Span)
}

func TestTrailingSlashQualifiedSymbol(t *testing.T) {
	sv := mustReadOne(t, "clojure.core//")
	sym, ok := sv.Value.AsSymbol()
	require.True(t, ok)
	assert.True(t, sym.IsQualified())
	assert.Equal(t, "clojure.core", sym.Namespace)
	assert.Equal(t, "/", sym.Name)
	assert.Equal(t, span.Span{Begin: 0, End: 13}, sv.Span)
}

func TestLeadingSlashSymbolIsInvalid(t *testing.T) {
	err := readErr(t, "/assoc")
	assert.True(t, readerr.IsInvalidInput(err))
}

func TestSingleSlashIsValidSymbol(t *testing.T) {
	sv := mustReadOne(t, "/")
	sym, ok := sv.Value.AsSymbol()
	require.True(t, ok)
	assert.False(t, sym.IsQualified())
	assert.Equal(t, "/", sym.Name)
}

func TestUnterminatedString(t *testing.T) {
	err := readErr(t, `"hello`)
	require.True(t, readerr.IsInsufficientInput(err))
	assert.Equal(t, span.Span{Begin: 0, End: 5}, err.(readerr.ReadError).Span())
}

func TestCommentTransparency(t *testing.T) {
	rdr, ok := read.Open("hello\n; world\nbob")
	require.True(t, ok)

	var names []string
	for {
		sv, err := rdr.TryReadOne()
		require.NoError(t, err)
		if sv == nil {
			break
		}
		sym, ok := sv.Value.AsSymbol()
		require.True(t, ok)
		names = append(names, sym.Name)
	}
	assert.Equal(t, []string{"hello", "bob"}, names)
}

func TestSetInList(t *testing.T) {
	sv := mustReadOne(t, "(#{assoc})")
	children, _ := sv.Value.AsChildren()
	require.Len(t, children, 1)
	assert.True(t, children[0].IsSet())
	assert.Equal(t, span.Span{Begin: 0, End: 9}, sv.Span)
}

func TestDiscardEquivalence(t *testing.T) {
	withDiscard := mustReadOne(t, "#_ 42 99")
	without := mustReadOne(t, "99")

	dNum, _ := withDiscard.Value.AsNum()
	wNum, _ := without.Value.AsNum()
	assert.Equal(t, wNum.String(), dNum.String())
}

func TestDanglingDiscardIsInvalid(t *testing.T) {
	err := readErr(t, "#_")
	assert.True(t, readerr.IsInvalidInput(err))
}

func TestDiscardOverUnclosedCollectionPropagates(t *testing.T) {
	err := readErr(t, "#_ )")
	assert.True(t, readerr.IsUnclosedCollection(err))
}

func TestStrayClosingDelimiterIsUnclosedCollection(t *testing.T) {
	err := readErr(t, ")")
	assert.True(t, readerr.IsUnclosedCollection(err))
}

func TestStringEscapes(t *testing.T) {
	sv := mustReadOne(t, `"a\tb\nc\"d\\eé"`)
	s, ok := sv.Value.AsStr()
	require.True(t, ok)
	assert.Equal(t, "a\tb\nc\"d\\eé", s)
}

func TestInvalidEscapeIsInvalidInput(t *testing.T) {
	err := readErr(t, `"a\q"`)
	assert.True(t, readerr.IsInvalidInput(err))
}

func TestNamespacedMapQualifiesUnqualifiedKeys(t *testing.T) {
	sv := mustReadOne(t, "#:foo{:bar :zap}")
	require.True(t, sv.Value.IsMap())
	pairs, _ := sv.Value.AsPairs()
	require.Len(t, pairs, 1)

	key, ok := pairs[0].Key.AsKeyword()
	require.True(t, ok)
	assert.Equal(t, value.KeywordQualified, key.Kind())
	assert.Equal(t, "foo", key.Namespace)
	assert.Equal(t, "bar", key.Name)

	val, ok := pairs[0].Value.AsKeyword()
	require.True(t, ok)
	assert.Equal(t, value.KeywordUnqualified, val.Kind())
	assert.Equal(t, "zap", val.Name)
}

func TestNamespacedMapLeavesQualifiedKeysAlone(t *testing.T) {
	sv := mustReadOne(t, "#:foo{:a/bar :zap}")
	pairs, _ := sv.Value.AsPairs()
	key, _ := pairs[0].Key.AsKeyword()
	assert.Equal(t, value.KeywordQualified, key.Kind())
	assert.Equal(t, "a", key.Namespace)
}

func TestNilTrueFalseLiterals(t *testing.T) {
	nilSv := mustReadOne(t, "nil")
	assert.True(t, nilSv.Value.IsNil())

	trueSv := mustReadOne(t, "true")
	b, ok := trueSv.Value.AsBool()
	require.True(t, ok)
	assert.True(t, b)

	falseSv := mustReadOne(t, "false")
	b, ok = falseSv.Value.AsBool()
	require.True(t, ok)
	assert.False(t, b)
}

func TestNumeralLiterals(t *testing.T) {
	intSv := mustReadOne(t, "42")
	n, ok := intSv.Value.AsNum()
	require.True(t, ok)
	assert.Equal(t, value.NumInt, n.Kind())
	i, _ := n.Int()
	assert.Equal(t, big.NewInt(42), i)

	negSv := mustReadOne(t, "-7")
	n, _ = negSv.Value.AsNum()
	i, _ = n.Int()
	assert.Equal(t, big.NewInt(-7), i)

	ratioSv := mustReadOne(t, "1/2")
	n, _ = ratioSv.Value.AsNum()
	assert.Equal(t, value.NumRatio, n.Kind())
	r, _ := n.Ratio()
	assert.Equal(t, big.NewRat(1, 2), r)

	floatSv := mustReadOne(t, "1.5")
	n, _ = floatSv.Value.AsNum()
	assert.Equal(t, value.NumFloat, n.Kind())
	f, _ := n.Float()
	assert.Equal(t, 1.5, f)

	hexSv := mustReadOne(t, "0x1F")
	n, _ = hexSv.Value.AsNum()
	i, _ = n.Int()
	assert.Equal(t, big.NewInt(31), i)
}

func TestPlusAndMinusAreSymbolsNotNumerals(t *testing.T) {
	plusSv := mustReadOne(t, "+")
	sym, ok := plusSv.Value.AsSymbol()
	require.True(t, ok)
	assert.Equal(t, "+", sym.Name)

	minusSv := mustReadOne(t, "-")
	sym, ok = minusSv.Value.AsSymbol()
	require.True(t, ok)
	assert.Equal(t, "-", sym.Name)
}

func TestWhitespaceInsensitivity(t *testing.T) {
	compact := readAllSymbolNames(t, "(foo bar)")
	spaced := readAllSymbolNames(t, "(  foo   bar  )")
	commaed := readAllSymbolNames(t, "(foo, bar)")
	assert.Equal(t, compact, spaced)
	assert.Equal(t, compact, commaed)
}

func readAllSymbolNames(t *testing.T, src string) []string {
	t.Helper()
	sv := mustReadOne(t, src)
	children, _ := sv.Value.AsChildren()
	var names []string
	for _, c := range children {
		sym, ok := c.AsSymbol()
		require.True(t, ok)
		names = append(names, sym.Name)
	}
	return names
}
