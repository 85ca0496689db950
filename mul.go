package ui512

import "math/bits"

// Mul computes the exact 1024-bit product a * b. The low 512 bits are
// written to product and the high 512 bits to overflow, so that
//
//	overflow * 2^512 + product == a * b
//
// with no bits dropped. The operation is infallible. product and overflow
// may alias a or b; the product is accumulated in a temporary before the
// outputs are written.
func Mul(product, overflow, a, b *Uint512) {
	// Schoolbook multiplication over base-2^64 digits. z is the 16-digit
	// accumulator in little-endian digit order: z[k] has weight 2^(64k).
	var z [2 * Words]uint64
	for i := 0; i < Words; i++ {
		d := a[Words-1-i]
		if d == 0 {
			continue
		}
		var carry uint64
		for j := 0; j < Words; j++ {
			hi, lo := bits.Mul64(d, b[Words-1-j])
			lo, c := bits.Add64(lo, carry, 0)
			hi += c
			z[i+j], c = bits.Add64(z[i+j], lo, 0)
			carry = hi + c
		}
		// Rows below have only written up to z[i+Words-1], so the
		// carry-out digit is a plain store.
		z[i+Words] = carry
	}
	for k := 0; k < Words; k++ {
		product[Words-1-k] = z[k]
		overflow[Words-1-k] = z[k+Words]
	}
}

// MulUint64 computes the 576-bit product a * m. The low 512 bits are written
// to product and the single overflow word is returned; the overflow always
// fits one word because m < 2^64. product may alias a.
func MulUint64(product *Uint512, a *Uint512, m uint64) (overflow uint64) {
	var carry uint64
	for i := Words - 1; i >= 0; i-- {
		hi, lo := bits.Mul64(a[i], m)
		lo, c := bits.Add64(lo, carry, 0)
		product[i] = lo
		carry = hi + c
	}
	return carry
}
