// Package ui512 implements fixed-precision unsigned 512-bit integer
// arithmetic over caller-supplied buffers.
//
// A value is represented as eight unsigned 64-bit words with the most
// significant word first (word 0 holds bits 511..448, word 7 holds bits
// 63..0). All operations write their results in place into output buffers
// provided by the caller, perform no allocation, and retain no state across
// calls: every function is reentrant and safe for concurrent use as long as
// concurrent calls operate on disjoint buffers.
//
// Output buffers may alias input buffers. Operations whose results cannot be
// produced left-to-right in a single pass (multiplication, division) compute
// into temporaries before writing, so Mul(&a, &ovf, &a, &a) and similar calls
// are well defined.
//
// The only error any operation can report is ErrDivideByZero, returned by
// Div and DivUint64 when the divisor is zero; in that case the output
// buffers are zeroed. There is no panic path for arithmetic inputs.
package ui512

import (
	"errors"
	"math/bits"
)

// Words is the number of 64-bit words in a Uint512.
const Words = 8

// Bits is the width of a Uint512 in bits.
const Bits = Words * 64

// Uint512 is an unsigned 512-bit integer stored as eight 64-bit words in
// big-endian word order: index 0 is the most significant word.
type Uint512 [Words]uint64

// ErrDivideByZero is returned by Div and DivUint64 when the divisor is zero.
// It is the package's only error condition.
var ErrDivideByZero = errors.New("ui512: division by zero")

// Zero sets every word of dst to zero.
func Zero(dst *Uint512) {
	*dst = Uint512{}
}

// Copy copies src into dst.
func Copy(dst, src *Uint512) {
	*dst = *src
}

// SetUint64 sets dst to the 64-bit value v, clearing the upper 448 bits.
func SetUint64(dst *Uint512, v uint64) {
	*dst = Uint512{}
	dst[Words-1] = v
}

// FromUint64 returns a Uint512 holding the 64-bit value v.
func FromUint64(v uint64) Uint512 {
	var x Uint512
	x[Words-1] = v
	return x
}

// IsZero reports whether x is zero.
func (x *Uint512) IsZero() bool {
	return x[0]|x[1]|x[2]|x[3]|x[4]|x[5]|x[6]|x[7] == 0
}

// IsUint64 reports whether x fits in a single 64-bit word.
func (x *Uint512) IsUint64() bool {
	return x[0]|x[1]|x[2]|x[3]|x[4]|x[5]|x[6] == 0
}

// Uint64 returns the low 64 bits of x.
func (x *Uint512) Uint64() uint64 {
	return x[Words-1]
}

// LeadingZeros returns the number of leading zero bits in x;
// the result is 512 for x == 0.
func (x *Uint512) LeadingZeros() int {
	for i := 0; i < Words; i++ {
		if x[i] != 0 {
			return i*64 + bits.LeadingZeros64(x[i])
		}
	}
	return Bits
}

// BitLen returns the number of bits required to represent x;
// the bit length of 0 is 0.
func (x *Uint512) BitLen() int {
	return Bits - x.LeadingZeros()
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to
// or greater than b.
func Compare(a, b *Uint512) int {
	for i := 0; i < Words; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	return 0
}

// CompareUint64 returns -1, 0 or 1 depending on whether a is less than,
// equal to or greater than the 64-bit value v.
func CompareUint64(a *Uint512, v uint64) int {
	if a[0]|a[1]|a[2]|a[3]|a[4]|a[5]|a[6] != 0 {
		return 1
	}
	switch {
	case a[Words-1] < v:
		return -1
	case a[Words-1] > v:
		return 1
	}
	return 0
}

// Add computes dst = a + b modulo 2^512 and returns the carry out (0 or 1).
// dst may alias a or b.
func Add(dst, a, b *Uint512) (carry uint64) {
	for i := Words - 1; i >= 0; i-- {
		dst[i], carry = bits.Add64(a[i], b[i], carry)
	}
	return carry
}

// AddUint64 computes dst = a + v modulo 2^512 and returns the carry out
// (0 or 1). dst may alias a.
func AddUint64(dst, a *Uint512, v uint64) (carry uint64) {
	dst[Words-1], carry = bits.Add64(a[Words-1], v, 0)
	for i := Words - 2; i >= 0; i-- {
		dst[i], carry = bits.Add64(a[i], 0, carry)
	}
	return carry
}

// Sub computes dst = a - b modulo 2^512 and returns the borrow out (0 or 1).
// A borrow of 1 means a < b and the result wrapped. dst may alias a or b.
func Sub(dst, a, b *Uint512) (borrow uint64) {
	for i := Words - 1; i >= 0; i-- {
		dst[i], borrow = bits.Sub64(a[i], b[i], borrow)
	}
	return borrow
}

// SubUint64 computes dst = a - v modulo 2^512 and returns the borrow out
// (0 or 1). dst may alias a.
func SubUint64(dst, a *Uint512, v uint64) (borrow uint64) {
	dst[Words-1], borrow = bits.Sub64(a[Words-1], v, 0)
	for i := Words - 2; i >= 0; i-- {
		dst[i], borrow = bits.Sub64(a[i], 0, borrow)
	}
	return borrow
}
