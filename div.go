package ui512

import "math/bits"

// Div computes the quotient and remainder of dividend / divisor, so that
//
//	quotient * divisor + remainder == dividend, with remainder < divisor.
//
// If divisor is zero, both output buffers are zeroed and ErrDivideByZero is
// returned; callers must check the error before trusting the outputs.
// quotient and remainder may alias dividend or divisor.
//
// The general path is normalized binary long division: the divisor is
// shifted left to line up with the dividend's most significant bit, then one
// quotient bit is produced per compare/subtract/shift step. Divisors that
// fit a single word and single-bit (power-of-two) divisors take shorter
// paths.
func Div(quotient, remainder, dividend, divisor *Uint512) error {
	if divisor.IsZero() {
		Zero(quotient)
		Zero(remainder)
		return ErrDivideByZero
	}

	switch Compare(dividend, divisor) {
	case -1:
		r := *dividend
		Zero(quotient)
		*remainder = r
		return nil
	case 0:
		SetUint64(quotient, 1)
		Zero(remainder)
		return nil
	}

	if divisor.IsUint64() {
		d := divisor[Words-1]
		var q Uint512
		r, _ := DivUint64(&q, dividend, d)
		*quotient = q
		SetUint64(remainder, r)
		return nil
	}

	// Power-of-two divisor: quotient is a right shift, remainder the masked
	// low bits.
	mask := *divisor
	SubUint64(&mask, &mask, 1)
	var t Uint512
	And(&t, &mask, divisor)
	if t.IsZero() {
		k := uint(divisor.BitLen() - 1)
		var q, r Uint512
		ShiftRight(&q, dividend, k)
		And(&r, dividend, &mask)
		*quotient = q
		*remainder = r
		return nil
	}

	u := *dividend
	d := *divisor
	var q Uint512
	// dividend > divisor here, so the shift count is non-negative.
	shift := d.LeadingZeros() - u.LeadingZeros()
	ShiftLeft(&d, &d, uint(shift))
	for {
		shiftLeft1(&q)
		if Compare(&u, &d) >= 0 {
			Sub(&u, &u, &d)
			q[Words-1] |= 1
		}
		shiftRight1(&d)
		if shift == 0 {
			break
		}
		shift--
	}
	*quotient = q
	*remainder = u
	return nil
}

// DivUint64 computes the quotient and remainder of dividend / d for a
// single-word divisor. The remainder always fits one word and is returned
// by value, mirroring the narrow hardware division this path reduces to:
// one 128-by-64 divide per word.
//
// If d is zero, quotient is zeroed and ErrDivideByZero is returned.
// quotient may alias dividend.
func DivUint64(quotient *Uint512, dividend *Uint512, d uint64) (remainder uint64, err error) {
	if d == 0 {
		Zero(quotient)
		return 0, ErrDivideByZero
	}
	var r uint64
	for i := 0; i < Words; i++ {
		// The running remainder is < d, so each 128-by-64 step cannot
		// overflow its 64-bit quotient word.
		quotient[i], r = bits.Div64(r, dividend[i], d)
	}
	return r, nil
}
