package value

import "math/big"

// NumKind discriminates the numeric tier chosen in SPEC_FULL.md §2.2:
// arbitrary-precision integers for every integer literal (with or without
// the N suffix), arbitrary-precision ratios for ratio literals, float64 for
// ordinary decimals, and *big.Float for the M-suffixed exact-decimal
// literals.
type NumKind int

const (
	NumInt NumKind = iota
	NumRatio
	NumFloat
	NumBigFloat
)

// Num is the numeral grammar's tagged union result, grounded on
// pascaldekloe-tripn's XSDInteger/XSDDecimal use of math/big.
type Num struct {
	kind NumKind
	i    *big.Int
	r    *big.Rat
	f    float64
	bf   *big.Float
}

// IntNum wraps an arbitrary-precision integer literal (decimal, hex, octal,
// radix-N, or N-suffixed).
func IntNum(i *big.Int) Num { return Num{kind: NumInt, i: i} }

// RatioNum wraps a ratio literal n/d.
func RatioNum(r *big.Rat) Num { return Num{kind: NumRatio, r: r} }

// FloatNum wraps an ordinary floating-point literal.
func FloatNum(f float64) Num { return Num{kind: NumFloat, f: f} }

// BigFloatNum wraps an M-suffixed exact-decimal literal.
func BigFloatNum(bf *big.Float) Num { return Num{kind: NumBigFloat, bf: bf} }

// Kind reports which numeric tier the value occupies.
func (n Num) Kind() NumKind { return n.kind }

// Int returns the wrapped integer and whether n is an NumInt.
func (n Num) Int() (*big.Int, bool) {
	if n.kind != NumInt {
		return nil, false
	}
	return n.i, true
}

// Ratio returns the wrapped ratio and whether n is a NumRatio.
func (n Num) Ratio() (*big.Rat, bool) {
	if n.kind != NumRatio {
		return nil, false
	}
	return n.r, true
}

// Float returns the wrapped float64 and whether n is a NumFloat.
func (n Num) Float() (float64, bool) {
	if n.kind != NumFloat {
		return 0, false
	}
	return n.f, true
}

// BigFloat returns the wrapped *big.Float and whether n is a NumBigFloat.
func (n Num) BigFloat() (*big.Float, bool) {
	if n.kind != NumBigFloat {
		return nil, false
	}
	return n.bf, true
}

func (n Num) String() string {
	switch n.kind {
	case NumInt:
		return n.i.String()
	case NumRatio:
		return n.r.RatString()
	case NumBigFloat:
		return n.bf.Text('g', -1) + "M"
	default:
		return formatFloat(n.f)
	}
}
