// Package numeral implements the numeric literal grammar decided in
// SPEC_FULL.md §2.2: sign, decimal/hex/octal/radix-N integers with an
// optional N bigint suffix, ratio literals n/d, and floats with an
// optional exponent and M bigdecimal suffix.
//
// This is the one corner of the reader built with
// github.com/alecthomas/participle/v2, grounded on the teacher's
// parser/common.go (Range, SubType, SyntaxType: a struct with several
// optional pointer fields disambiguated by "|"-chained tags, each matching
// a distinct lexer token). Everywhere else the reader's dynamic recursive
// sum type rules participle out; here the grammar is small, static and
// bounded to a single pre-isolated token, which is exactly what participle
// is for.
package numeral

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/cljread/cljread/value"
)

var numeralLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Hex", Pattern: `[+-]?0[xX][0-9a-fA-F]+N?`},
	{Name: "Radix", Pattern: `[+-]?[0-9]+[rR][0-9a-zA-Z]+`},
	{Name: "Ratio", Pattern: `[+-]?[0-9]+/[0-9]+`},
	{Name: "Float", Pattern: `[+-]?[0-9]+(\.[0-9]+([eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)M?|[+-]?[0-9]+M`},
	{Name: "Oct", Pattern: `[+-]?0[0-7]+N?`},
	{Name: "Int", Pattern: `[+-]?[0-9]+N?`},
})

// grammar is the struct-tag disjunction; exactly one field is populated
// per successful parse, mirroring the teacher's Range/SyntaxType fields.
type grammar struct {
	Pos lexer.Position

	Hex   *string `parser:"@Hex"`
	Radix *string `parser:"| @Radix"`
	Ratio *string `parser:"| @Ratio"`
	Float *string `parser:"| @Float"`
	Oct   *string `parser:"| @Oct"`
	Int   *string `parser:"| @Int"`
}

var numeralParser = participle.MustBuild[grammar](
	participle.Lexer(numeralLexer),
)

// Parse parses tok — a token already isolated by the reader at a
// whitespace/delimiter boundary — into a numeric Value. It never sees
// surrounding source; the reader decides when a token looks numeric
// (leading digit, or sign followed by a digit) before calling this.
func Parse(tok string) (value.Value, error) {
	g, err := numeralParser.ParseString("", tok)
	if err != nil {
		return value.Value{}, fmt.Errorf("numeral: %q: %w", tok, err)
	}
	switch {
	case g.Hex != nil:
		return parseHex(*g.Hex)
	case g.Radix != nil:
		return parseRadix(*g.Radix)
	case g.Ratio != nil:
		return parseRatio(*g.Ratio)
	case g.Float != nil:
		return parseFloat(*g.Float)
	case g.Oct != nil:
		return parseOct(*g.Oct)
	case g.Int != nil:
		return parseInt(*g.Int)
	default:
		return value.Value{}, fmt.Errorf("numeral: %q: no alternative matched", tok)
	}
}

func splitSign(s string) (neg bool, rest string) {
	if len(s) == 0 {
		return false, s
	}
	switch s[0] {
	case '-':
		return true, s[1:]
	case '+':
		return false, s[1:]
	default:
		return false, s
	}
}

func parseInt(tok string) (value.Value, error) {
	neg, rest := splitSign(tok)
	rest = strings.TrimSuffix(rest, "N")
	i, ok := new(big.Int).SetString(rest, 10)
	if !ok {
		return value.Value{}, fmt.Errorf("numeral: invalid integer %q", tok)
	}
	if neg {
		i.Neg(i)
	}
	return value.NumV(value.IntNum(i)), nil
}

func parseHex(tok string) (value.Value, error) {
	neg, rest := splitSign(tok)
	rest = strings.TrimSuffix(rest, "N")
	rest = rest[2:] // strip 0x/0X
	i, ok := new(big.Int).SetString(rest, 16)
	if !ok {
		return value.Value{}, fmt.Errorf("numeral: invalid hex integer %q", tok)
	}
	if neg {
		i.Neg(i)
	}
	return value.NumV(value.IntNum(i)), nil
}

func parseOct(tok string) (value.Value, error) {
	neg, rest := splitSign(tok)
	rest = strings.TrimSuffix(rest, "N")
	rest = rest[1:] // strip leading 0
	i, ok := new(big.Int).SetString(rest, 8)
	if !ok {
		return value.Value{}, fmt.Errorf("numeral: invalid octal integer %q", tok)
	}
	if neg {
		i.Neg(i)
	}
	return value.NumV(value.IntNum(i)), nil
}

func parseRadix(tok string) (value.Value, error) {
	neg, rest := splitSign(tok)
	rIdx := strings.IndexAny(rest, "rR")
	if rIdx < 0 {
		return value.Value{}, fmt.Errorf("numeral: invalid radix integer %q", tok)
	}
	radixDigits, digits := rest[:rIdx], rest[rIdx+1:]
	radix, err := strconv.Atoi(radixDigits)
	if err != nil || radix < 2 || radix > 36 {
		return value.Value{}, fmt.Errorf("numeral: invalid radix %q in %q", radixDigits, tok)
	}
	digits = strings.TrimSuffix(digits, "N")
	i, ok := new(big.Int).SetString(digits, radix)
	if !ok {
		return value.Value{}, fmt.Errorf("numeral: invalid base-%d digits %q", radix, digits)
	}
	if neg {
		i.Neg(i)
	}
	return value.NumV(value.IntNum(i)), nil
}

func parseRatio(tok string) (value.Value, error) {
	r, ok := new(big.Rat).SetString(tok)
	if !ok {
		return value.Value{}, fmt.Errorf("numeral: invalid ratio %q", tok)
	}
	return value.NumV(value.RatioNum(r)), nil
}

func parseFloat(tok string) (value.Value, error) {
	if strings.HasSuffix(tok, "M") {
		mantissa := strings.TrimSuffix(tok, "M")
		bf, ok := new(big.Float).SetString(mantissa)
		if !ok {
			return value.Value{}, fmt.Errorf("numeral: invalid bigdecimal %q", tok)
		}
		return value.NumV(value.BigFloatNum(bf)), nil
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return value.Value{}, fmt.Errorf("numeral: invalid float %q: %w", tok, err)
	}
	return value.NumV(value.FloatNum(f)), nil
}
