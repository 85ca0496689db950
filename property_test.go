package ui512

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genUint512 generates values across the full range of bit lengths. Raw
// 8-word generation almost always produces dense 512-bit values, so the
// generated value is right-shifted by a generated amount to cover small and
// mid-sized operands as well.
func genUint512() gopter.Gen {
	return gopter.CombineGens(
		gen.SliceOfN(Words, gen.UInt64()),
		gen.IntRange(0, Bits),
	).Map(func(vals []interface{}) Uint512 {
		var x Uint512
		words := vals[0].([]uint64)
		copy(x[:], words)
		ShiftRight(&x, &x, uint(vals[1].(int)))
		return x
	})
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	return gopter.NewProperties(parameters)
}

// TestDivisionIdentity_PropertyBased verifies the defining property of
// integer division,
//
//	quotient * divisor + remainder == dividend  and  remainder < divisor,
//
// against the math/big oracle.
func TestDivisionIdentity_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("q*d + r == dividend and r < d", prop.ForAll(
		func(dividend, divisor Uint512) bool {
			if divisor.IsZero() {
				SetUint64(&divisor, 1)
			}

			var q, r Uint512
			if err := Div(&q, &r, &dividend, &divisor); err != nil {
				return false
			}
			if Compare(&r, &divisor) >= 0 {
				return false
			}

			wantQ, wantR := new(big.Int).QuoRem(toBig(&dividend), toBig(&divisor), new(big.Int))
			return toBig(&q).Cmp(wantQ) == 0 && toBig(&r).Cmp(wantR) == 0
		},
		genUint512(),
		genUint512(),
	))

	properties.TestingRun(t)
}

// TestPowerOfTwoMultiply_PropertyBased verifies that multiplying by 2^k
// equals the pair of shifts
//
//	product  = a << k
//	overflow = a >> (512-k)
//
// with the expected values built from the shift primitives only, so the
// check is independent of the multiply engine.
func TestPowerOfTwoMultiply_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("mul by 2^k equals shift pair", prop.ForAll(
		func(a Uint512, k int) bool {
			one := FromUint64(1)
			var pow2 Uint512
			ShiftLeft(&pow2, &one, uint(k))

			var product, overflow Uint512
			Mul(&product, &overflow, &a, &pow2)

			var wantProduct, wantOverflow Uint512
			ShiftLeft(&wantProduct, &a, uint(k))
			ShiftRight(&wantOverflow, &a, uint(Bits-k)) // k == 0 shifts by 512, yielding 0

			return Compare(&product, &wantProduct) == 0 &&
				Compare(&overflow, &wantOverflow) == 0
		},
		genUint512(),
		gen.IntRange(0, Bits-1),
	))

	properties.TestingRun(t)
}

// TestMultiply_PropertyBased verifies the full 1024-bit product against the
// math/big oracle and multiplication's commutativity.
func TestMultiply_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("overflow:product == a*b exactly", prop.ForAll(
		func(a, b Uint512) bool {
			var product, overflow Uint512
			Mul(&product, &overflow, &a, &b)

			got := new(big.Int).Lsh(toBig(&overflow), Bits)
			got.Or(got, toBig(&product))
			want := new(big.Int).Mul(toBig(&a), toBig(&b))
			return got.Cmp(want) == 0
		},
		genUint512(),
		genUint512(),
	))

	properties.Property("a*b == b*a", prop.ForAll(
		func(a, b Uint512) bool {
			var p1, o1, p2, o2 Uint512
			Mul(&p1, &o1, &a, &b)
			Mul(&p2, &o2, &b, &a)
			return Compare(&p1, &p2) == 0 && Compare(&o1, &o2) == 0
		},
		genUint512(),
		genUint512(),
	))

	properties.TestingRun(t)
}

// TestScalarVariants_PropertyBased verifies the 64-bit operand variants
// against the full-width engines.
func TestScalarVariants_PropertyBased(t *testing.T) {
	properties := newProperties()

	properties.Property("MulUint64 agrees with Mul", prop.ForAll(
		func(a Uint512, m uint64) bool {
			var product Uint512
			ovf := MulUint64(&product, &a, m)

			wide := FromUint64(m)
			var wantProduct, wantOverflow Uint512
			Mul(&wantProduct, &wantOverflow, &a, &wide)
			return Compare(&product, &wantProduct) == 0 &&
				wantOverflow.IsUint64() && ovf == wantOverflow.Uint64()
		},
		genUint512(),
		gen.UInt64(),
	))

	properties.Property("DivUint64 agrees with Div", prop.ForAll(
		func(a Uint512, d uint64) bool {
			if d == 0 {
				d = 1
			}
			var q Uint512
			rem, err := DivUint64(&q, &a, d)
			if err != nil {
				return false
			}

			wide := FromUint64(d)
			var wantQ, wantR Uint512
			if err := Div(&wantQ, &wantR, &a, &wide); err != nil {
				return false
			}
			return Compare(&q, &wantQ) == 0 &&
				wantR.IsUint64() && rem == wantR.Uint64()
		},
		genUint512(),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}

// TestTextParse_PropertyBased verifies radix conversion round-trips in every
// supported base.
func TestTextParse_PropertyBased(t *testing.T) {
	properties := newProperties()

	prefixes := map[int]string{2: "0b", 8: "0o", 10: "", 16: "0x"}
	for base, prefix := range prefixes {
		base, prefix := base, prefix
		properties.Property(fmt.Sprintf("base %d round-trips", base), prop.ForAll(
			func(x Uint512) bool {
				s := prefix + x.Text(base)
				back, err := Parse(s)
				if err != nil {
					return false
				}
				return Compare(&back, &x) == 0 &&
					x.Text(base) == toBig(&x).Text(base)
			},
			genUint512(),
		))
	}

	properties.TestingRun(t)
}
