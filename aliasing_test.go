package ui512

import "testing"

// The engines promise that output buffers may alias input buffers. Each case
// computes the expected value with disjoint buffers first, then repeats the
// operation with outputs aliased onto inputs.

func TestMulAliasing(t *testing.T) {
	g := &lcg{}

	t.Run("product aliases multiplicand", func(t *testing.T) {
		a, b := g.uint512(), g.uint512()
		var wantP, wantO Uint512
		Mul(&wantP, &wantO, &a, &b)

		var o Uint512
		Mul(&a, &o, &a, &b)
		if Compare(&a, &wantP) != 0 || Compare(&o, &wantO) != 0 {
			t.Error("Mul with product aliased to a gave a different result")
		}
	})

	t.Run("both operands the same buffer", func(t *testing.T) {
		a := g.uint512()
		saved := a
		var wantP, wantO Uint512
		Mul(&wantP, &wantO, &saved, &saved)

		var o Uint512
		Mul(&a, &o, &a, &a)
		if Compare(&a, &wantP) != 0 || Compare(&o, &wantO) != 0 {
			t.Error("Mul(&a, &o, &a, &a) gave a different result")
		}
	})

	t.Run("scalar product aliases operand", func(t *testing.T) {
		a := g.uint512()
		saved := a
		var want Uint512
		wantOvf := MulUint64(&want, &saved, 12345)

		ovf := MulUint64(&a, &a, 12345)
		if Compare(&a, &want) != 0 || ovf != wantOvf {
			t.Error("MulUint64 in place gave a different result")
		}
	})
}

func TestDivAliasing(t *testing.T) {
	g := &lcg{}

	t.Run("quotient aliases dividend", func(t *testing.T) {
		a, d := g.uint512(), g.uint512()
		ShiftRight(&d, &d, 300)
		if d.IsZero() {
			SetUint64(&d, 7)
		}
		var wantQ, wantR Uint512
		if err := Div(&wantQ, &wantR, &a, &d); err != nil {
			t.Fatal(err)
		}

		var r Uint512
		if err := Div(&a, &r, &a, &d); err != nil {
			t.Fatal(err)
		}
		if Compare(&a, &wantQ) != 0 || Compare(&r, &wantR) != 0 {
			t.Error("Div with quotient aliased to dividend gave a different result")
		}
	})

	t.Run("remainder aliases divisor", func(t *testing.T) {
		a, d := g.uint512(), g.uint512()
		ShiftRight(&d, &d, 200)
		if d.IsZero() {
			SetUint64(&d, 7)
		}
		saved := d
		var wantQ, wantR Uint512
		if err := Div(&wantQ, &wantR, &a, &saved); err != nil {
			t.Fatal(err)
		}

		var q Uint512
		if err := Div(&q, &d, &a, &d); err != nil {
			t.Fatal(err)
		}
		if Compare(&q, &wantQ) != 0 || Compare(&d, &wantR) != 0 {
			t.Error("Div with remainder aliased to divisor gave a different result")
		}
	})

	t.Run("scalar quotient aliases dividend", func(t *testing.T) {
		a := g.uint512()
		saved := a
		var want Uint512
		wantRem, err := DivUint64(&want, &saved, 10)
		if err != nil {
			t.Fatal(err)
		}

		rem, err := DivUint64(&a, &a, 10)
		if err != nil {
			t.Fatal(err)
		}
		if Compare(&a, &want) != 0 || rem != wantRem {
			t.Error("DivUint64 in place gave a different result")
		}
	})
}

// TestInputsUnmodified verifies that the engines have no side effects beyond
// the documented outputs when buffers are disjoint.
func TestInputsUnmodified(t *testing.T) {
	g := &lcg{}
	a, b := g.uint512(), g.uint512()
	savedA, savedB := a, b

	var p, o Uint512
	Mul(&p, &o, &a, &b)
	if Compare(&a, &savedA) != 0 || Compare(&b, &savedB) != 0 {
		t.Error("Mul modified an input buffer")
	}

	var q, r Uint512
	if err := Div(&q, &r, &a, &b); err != nil {
		t.Fatal(err)
	}
	if Compare(&a, &savedA) != 0 || Compare(&b, &savedB) != 0 {
		t.Error("Div modified an input buffer")
	}
}
