package ui512

import (
	"fmt"
	"strings"
)

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// chunk describes the largest power of a base that fits a 64-bit word, used
// to convert several digits per DivUint64 call.
type chunk struct {
	pow   uint64 // base^width
	width int    // digits per chunk
	base  uint64
}

var chunks = map[int]chunk{
	2:  {1 << 63, 63, 2},
	8:  {1 << 63, 21, 8},
	10: {1e19, 19, 10},
	16: {1 << 60, 15, 16},
}

// Text returns the representation of x in the given base (2, 8, 10 or 16)
// using lowercase digits and no prefix. It panics for unsupported bases.
//
// Conversion is performed by repeated division by the largest power of the
// base that fits a single word, so the divide engine is the only arithmetic
// this function depends on.
func (x Uint512) Text(base int) string {
	ck, ok := chunks[base]
	if !ok {
		panic(fmt.Sprintf("ui512: unsupported base %d", base))
	}
	if x.IsZero() {
		return "0"
	}

	var buf [Bits + 1]byte // enough for base 2
	w := len(buf)
	for !x.IsZero() {
		rem, _ := DivUint64(&x, &x, ck.pow)
		if x.IsZero() {
			// Most significant chunk: no leading zeros.
			for rem > 0 {
				w--
				buf[w] = digits[rem%ck.base]
				rem /= ck.base
			}
		} else {
			for i := 0; i < ck.width; i++ {
				w--
				buf[w] = digits[rem%ck.base]
				rem /= ck.base
			}
		}
	}
	return string(buf[w:])
}

// String returns the decimal representation of x.
func (x Uint512) String() string {
	return x.Text(10)
}

// Parse interprets s as an unsigned integer and returns its Uint512 value.
// A "0x", "0o" or "0b" prefix selects base 16, 8 or 2; otherwise the number
// is read as decimal. Underscores between digits are permitted as
// separators. Values that do not fit 512 bits are an error.
func Parse(s string) (Uint512, error) {
	var x Uint512
	orig := s
	base := uint64(10)
	if len(s) >= 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base, s = 16, s[2:]
		case 'o', 'O':
			base, s = 8, s[2:]
		case 'b', 'B':
			base, s = 2, s[2:]
		}
	}
	if s == "" {
		return x, fmt.Errorf("ui512: cannot parse %q: no digits", orig)
	}
	for _, c := range s {
		if c == '_' {
			continue
		}
		d := uint64(strings.IndexRune(digits, toLower(c)))
		if int64(d) < 0 || d >= base {
			return Uint512{}, fmt.Errorf("ui512: cannot parse %q: invalid digit %q", orig, c)
		}
		if ovf := MulUint64(&x, &x, base); ovf != 0 {
			return Uint512{}, fmt.Errorf("ui512: value %q overflows 512 bits", orig)
		}
		if carry := AddUint64(&x, &x, d); carry != 0 {
			return Uint512{}, fmt.Errorf("ui512: value %q overflows 512 bits", orig)
		}
	}
	return x, nil
}

// MustParse is like Parse but panics on error. It simplifies initializing
// constants and test fixtures.
func MustParse(s string) Uint512 {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

func toLower(c rune) rune {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
