package ui512

// ShiftLeft computes dst = src << n, shifting zeros in from the right.
// Shift counts of 512 or more yield zero; a count of 0 copies src.
// dst may alias src.
func ShiftLeft(dst, src *Uint512, n uint) {
	if n >= Bits {
		Zero(dst)
		return
	}
	ws := int(n / 64)
	bs := n % 64
	for i := 0; i < Words; i++ {
		var w uint64
		if i+ws < Words {
			w = src[i+ws] << bs
			// Shift counts of 64 are defined to produce 0 in Go, so the
			// bs == 0 case needs no special handling here.
			if bs > 0 && i+ws+1 < Words {
				w |= src[i+ws+1] >> (64 - bs)
			}
		}
		dst[i] = w
	}
}

// ShiftRight computes dst = src >> n, shifting zeros in from the left.
// Shift counts of 512 or more yield zero; a count of 0 copies src.
// dst may alias src.
func ShiftRight(dst, src *Uint512, n uint) {
	if n >= Bits {
		Zero(dst)
		return
	}
	ws := int(n / 64)
	bs := n % 64
	for i := Words - 1; i >= 0; i-- {
		var w uint64
		if i-ws >= 0 {
			w = src[i-ws] >> bs
			if bs > 0 && i-ws-1 >= 0 {
				w |= src[i-ws-1] << (64 - bs)
			}
		}
		dst[i] = w
	}
}

// Or computes dst = a | b. dst may alias a or b.
func Or(dst, a, b *Uint512) {
	for i := 0; i < Words; i++ {
		dst[i] = a[i] | b[i]
	}
}

// And computes dst = a & b. dst may alias a or b.
func And(dst, a, b *Uint512) {
	for i := 0; i < Words; i++ {
		dst[i] = a[i] & b[i]
	}
}

// Xor computes dst = a ^ b. dst may alias a or b.
func Xor(dst, a, b *Uint512) {
	for i := 0; i < Words; i++ {
		dst[i] = a[i] ^ b[i]
	}
}

// Not computes dst = ^src, the bitwise complement. dst may alias src.
func Not(dst, src *Uint512) {
	for i := 0; i < Words; i++ {
		dst[i] = ^src[i]
	}
}

// shiftLeft1 shifts x left by one bit in place. The division inner loop uses
// the single-bit variants instead of the general shifts.
func shiftLeft1(x *Uint512) {
	for i := 0; i < Words-1; i++ {
		x[i] = x[i]<<1 | x[i+1]>>63
	}
	x[Words-1] <<= 1
}

// shiftRight1 shifts x right by one bit in place.
func shiftRight1(x *Uint512) {
	for i := Words - 1; i > 0; i-- {
		x[i] = x[i]>>1 | x[i-1]<<63
	}
	x[0] >>= 1
}
