package ui512

import "encoding/binary"

// Bytes returns x as a 64-byte big-endian array.
func (x *Uint512) Bytes() [Words * 8]byte {
	var b [Words * 8]byte
	for i := 0; i < Words; i++ {
		binary.BigEndian.PutUint64(b[i*8:], x[i])
	}
	return b
}

// SetBytes interprets b as a 64-byte big-endian unsigned integer and writes
// it to dst.
func SetBytes(dst *Uint512, b *[Words * 8]byte) {
	for i := 0; i < Words; i++ {
		dst[i] = binary.BigEndian.Uint64(b[i*8:])
	}
}

// SetByteSlice interprets b as a big-endian unsigned integer and writes its
// low 512 bits to dst. Input longer than 64 bytes is truncated to its low
// 64 bytes.
func SetByteSlice(dst *Uint512, b []byte) {
	if len(b) > Words*8 {
		b = b[len(b)-Words*8:]
	}
	var buf [Words * 8]byte
	copy(buf[Words*8-len(b):], b)
	SetBytes(dst, &buf)
}
