package number_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/njchilds90/gocas/number"
)

// ===================================================================
// Construction and normalization
// ===================================================================

func TestRat_ReducesAndNormalizesSign(t *testing.T) {
	n, err := number.Rat(-6, -8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != number.Rational {
		t.Fatalf("expected Rational, got %v", n.Kind())
	}
	if n.String() != "3/4" {
		t.Errorf("expected 3/4, got %s", n.String())
	}
}

func TestRat_DenominatorOneCollapsesToInt(t *testing.T) {
	n, err := number.Rat(10, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Kind() != number.Int {
		t.Errorf("expected Int, got %v", n.Kind())
	}
	if n.Int64() != 5 {
		t.Errorf("expected 5, got %d", n.Int64())
	}
}

func TestRat_ZeroDenominatorFails(t *testing.T) {
	if _, err := number.Rat(1, 0); err != number.ErrZeroDenominator {
		t.Errorf("expected ErrZeroDenominator, got %v", err)
	}
}

func TestFromBigInt_CollapsesWhenSmall(t *testing.T) {
	n := number.FromBigInt(big.NewInt(42))
	if n.Kind() != number.Int {
		t.Errorf("expected Int, got %v", n.Kind())
	}
}

func TestFromBigRat_CollapsesToRational(t *testing.T) {
	n := number.FromBigRat(big.NewInt(4), big.NewInt(8))
	if n.Kind() != number.Rational {
		t.Errorf("expected Rational, got %v", n.Kind())
	}
	if n.String() != "1/2" {
		t.Errorf("expected 1/2, got %s", n.String())
	}
}

// ===================================================================
// Arithmetic
// ===================================================================

func TestAdd_Int64Overflow_PromotesToBigInt(t *testing.T) {
	huge := number.FromInt(math.MaxInt64)
	result := number.Add(huge, number.FromInt(1))
	if result.Kind() != number.BigInt {
		t.Errorf("expected BigInt promotion, got %v", result.Kind())
	}
}

func TestMultiply_RationalTimesRational(t *testing.T) {
	a := number.MustRat(1, 3)
	b := number.MustRat(5, 6)
	got := number.Multiply(a, b)
	want := number.MustRat(5, 18)
	if !number.NumericEquals(got, want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestDivide_TwoIntsProducesRational(t *testing.T) {
	got := number.Divide(number.FromInt(3), number.FromInt(4))
	if got.Kind() != number.Rational {
		t.Errorf("expected Rational, got %v", got.Kind())
	}
}

func TestPow_NegativeExponentInverts(t *testing.T) {
	got := number.Pow(number.FromInt(2), -3)
	want := number.MustRat(1, 8)
	if !number.NumericEquals(got, want) {
		t.Errorf("got %s, want %s", got.String(), want.String())
	}
}

func TestPow_FloatingOperandFoldsInFloat(t *testing.T) {
	got := number.Pow(number.FromFloat(2.0), 10)
	if got.Kind() != number.Real {
		t.Errorf("expected Real, got %v", got.Kind())
	}
	if math.Abs(got.ToDouble()-1024.0) > 1e-9 {
		t.Errorf("expected ~1024, got %f", got.ToDouble())
	}
}

// ===================================================================
// numericEquals / comparisons
// ===================================================================

func TestNumericEquals_AcrossVariants(t *testing.T) {
	a := number.FromInt(2)
	b := number.MustRat(4, 2)
	if !number.NumericEquals(a, b) {
		t.Errorf("expected 2 == 4/2")
	}
}

func TestNumericEquals_RealUsesEpsilon(t *testing.T) {
	a := number.FromFloat(1.0000000001)
	b := number.FromInt(1)
	if !number.NumericEquals(a, b) {
		t.Errorf("expected approximate equality within epsilon")
	}
}

func TestNumericEquals_ExactNeverUsesEpsilon(t *testing.T) {
	a := number.MustRat(1, 3)
	b := number.MustRat(1, 3000000000)
	if number.NumericEquals(a, b) {
		t.Errorf("exact values should compare exactly, not within epsilon")
	}
}

// ===================================================================
// Constants
// ===================================================================

func TestConstants_AreReal(t *testing.T) {
	if number.Pi.Kind() != number.Real {
		t.Errorf("pi should be REAL")
	}
	if math.Abs(number.Tau.ToDouble()-2*math.Pi) > 1e-12 {
		t.Errorf("tau should be 2*pi")
	}
	if !math.IsInf(number.Infinity.ToDouble(), 1) {
		t.Errorf("infinity should be +Inf")
	}
}
