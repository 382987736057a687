// Package number implements the CAS numeric tower: exact machine and
// arbitrary-precision integers and rationals, plus an inexact real carrier.
//
// Every constructor normalizes its result to the smallest exact
// representation that still holds the value: a Rational with denominator 1
// collapses to an Int, and a BigInt/BigRational that fits back in int64
// collapses to Int/Rational. Callers never need to check which variant they
// received before comparing or combining numbers.
package number

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

// Kind tags which variant of the numeric tower a Number holds.
type Kind byte

const (
	Int Kind = iota
	BigInt
	Rational
	BigRational
	Real
)

func (k Kind) String() string {
	switch k {
	case Int:
		return "INT"
	case BigInt:
		return "BIGINT"
	case Rational:
		return "RATIONAL"
	case BigRational:
		return "BIGRATIONAL"
	case Real:
		return "REAL"
	default:
		return "UNKNOWN"
	}
}

// ErrZeroDenominator is returned by the rational constructors when asked
// to build p/0.
var ErrZeroDenominator = errors.New("number: zero denominator")

// Number is the tagged union. Only the fields relevant to Kind are
// meaningful; zero value is the integer 0.
type Number struct {
	kind Kind

	i int64 // Int

	big *big.Int // BigInt

	num, den int64 // Rational, reduced, den > 0

	bigNum, bigDen *big.Int // BigRational, reduced, bigDen > 0

	f   float64    // Real
	dec *big.Float // Real overflow carrier; nil unless f is not finite-representable
}

// Zero is the canonical integer zero.
var Zero = FromInt(0)

// One is the canonical integer one.
var One = FromInt(1)

// FromInt builds an exact machine integer.
func FromInt(n int64) Number {
	return Number{kind: Int, i: n}
}

// FromBigInt builds an exact arbitrary-precision integer, collapsing to
// Int when the value fits in int64.
func FromBigInt(v *big.Int) Number {
	if v.IsInt64() {
		return FromInt(v.Int64())
	}
	return Number{kind: BigInt, big: new(big.Int).Set(v)}
}

// Rat builds a reduced rational num/den, promoting to BigRational on
// overflow and collapsing to Int when den divides num evenly.
func Rat(num, den int64) (Number, error) {
	if den == 0 {
		return Number{}, ErrZeroDenominator
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return FromBigRat(big.NewInt(num), big.NewInt(den)), nil
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcdInt64(abs64(num), den)
	if g != 0 {
		num /= g
		den /= g
	}
	if den == 1 {
		return FromInt(num), nil
	}
	return Number{kind: Rational, num: num, den: den}, nil
}

// MustRat panics on a zero denominator; used for compile-time-known
// rationals such as trig-table entries.
func MustRat(num, den int64) Number {
	n, err := Rat(num, den)
	if err != nil {
		panic(err)
	}
	return n
}

// FromBigRat builds a reduced big rational, collapsing to Rational/Int
// when both components fit in int64.
func FromBigRat(num, den *big.Int) Number {
	if den.Sign() == 0 {
		panic(ErrZeroDenominator)
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(n), d)
	if g.Sign() != 0 {
		n.Div(n, g)
		d.Div(d, g)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return FromBigInt(n)
	}
	if n.IsInt64() && d.IsInt64() {
		return Number{kind: Rational, num: n.Int64(), den: d.Int64()}
	}
	return Number{kind: BigRational, bigNum: n, bigDen: d}
}

// FromFloat builds an inexact real. NaN and infinities are held as-is.
func FromFloat(f float64) Number {
	return Number{kind: Real, f: f}
}

// FromBigFloat builds an inexact real with a big-decimal carrier, used
// when a decimal literal overflows float64 range.
func FromBigFloat(v *big.Float) Number {
	f, _ := v.Float64()
	return Number{kind: Real, f: f, dec: new(big.Float).Copy(v)}
}

// Named constants, materialized as REAL per the spec's data model.
var (
	Pi       = FromFloat(math.Pi)
	Tau      = FromFloat(2 * math.Pi)
	E        = FromFloat(math.E)
	Infinity = FromFloat(math.Inf(1))
)

// Kind reports which variant n holds.
func (n Number) Kind() Kind { return n.kind }

// IsExact reports whether n is one of INT/BIGINT/RATIONAL/BIGRATIONAL.
func (n Number) IsExact() bool { return n.kind != Real }

// IsInteger reports whether n holds an integral value (exact or not).
func (n Number) IsInteger() bool {
	switch n.kind {
	case Int, BigInt:
		return true
	case Real:
		return !n.HasBigDecimal() && n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0) && !math.IsNaN(n.f)
	default:
		return false
	}
}

// HasBigDecimal reports whether n is a REAL carrying a big-decimal
// overflow value rather than a plain float64.
func (n Number) HasBigDecimal() bool { return n.kind == Real && n.dec != nil }

// Int64 returns n as an int64, truncating/rounding per Go's float
// conversion rules when n is not an Int. Callers that need an exact
// integer should check IsInteger first.
func (n Number) Int64() int64 {
	switch n.kind {
	case Int:
		return n.i
	case BigInt:
		return n.big.Int64()
	case Rational:
		return n.num / n.den
	case BigRational:
		q := new(big.Int).Quo(n.bigNum, n.bigDen)
		return q.Int64()
	case Real:
		return int64(n.f)
	}
	return 0
}

// AsBigInt returns n as a *big.Int if n is an exact integer value, else
// ok is false (a REAL is never converted, even when integral).
func (n Number) AsBigInt() (v *big.Int, ok bool) {
	switch n.kind {
	case Int:
		return big.NewInt(n.i), true
	case BigInt:
		return new(big.Int).Set(n.big), true
	case Rational:
		if n.den == 1 {
			return big.NewInt(n.num), true
		}
	case BigRational:
		if n.bigDen.Cmp(big.NewInt(1)) == 0 {
			return new(big.Int).Set(n.bigNum), true
		}
	}
	return nil, false
}

// ToDouble converts n to its nearest float64 representation.
func (n Number) ToDouble() float64 {
	switch n.kind {
	case Int:
		return float64(n.i)
	case BigInt:
		f := new(big.Float).SetInt(n.big)
		v, _ := f.Float64()
		return v
	case Rational:
		return float64(n.num) / float64(n.den)
	case BigRational:
		f := new(big.Float).SetInt(n.bigNum)
		g := new(big.Float).SetInt(n.bigDen)
		v, _ := new(big.Float).Quo(f, g).Float64()
		return v
	case Real:
		return n.f
	}
	return 0
}

// Sign returns -1, 0, or 1 according to the sign of n.
func (n Number) Sign() int {
	switch n.kind {
	case Int:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		default:
			return 0
		}
	case BigInt:
		return n.big.Sign()
	case Rational:
		switch {
		case n.num < 0:
			return -1
		case n.num > 0:
			return 1
		default:
			return 0
		}
	case BigRational:
		return n.bigNum.Sign()
	case Real:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// IsZero reports whether n represents the mathematical value 0.
func (n Number) IsZero() bool { return n.Sign() == 0 }

// IsOne reports whether n represents the mathematical value 1.
func (n Number) IsOne() bool { return NumericEquals(n, One) }

// IsNegative reports whether n is strictly less than zero.
func (n Number) IsNegative() bool { return n.Sign() < 0 }

// String renders n in a plain (non-TeX) textual form.
func (n Number) String() string {
	switch n.kind {
	case Int:
		return formatInt64(n.i)
	case BigInt:
		return n.big.String()
	case Rational:
		return formatInt64(n.num) + "/" + formatInt64(n.den)
	case BigRational:
		return n.bigNum.String() + "/" + n.bigDen.String()
	case Real:
		if n.dec != nil {
			return n.dec.Text('g', -1)
		}
		return formatFloat(n.f)
	}
	return "?"
}

func formatInt64(v int64) string {
	return big.NewInt(v).String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	default:
		return big.NewFloat(f).Text('g', -1)
	}
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}
