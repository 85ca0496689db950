package orchestration

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"

	"github.com/widebit/ui512"
)

// gmpMod512 is 2^512 as a GMP integer.
var gmpMod512 = new(gmp.Int).Lsh(gmp.NewInt(1), ui512.Bits)

// GMPBackend is the GNU MP reference implementation. It gives a second,
// independently implemented check alongside math/big.
type GMPBackend struct{}

// Name identifies the backend in reports and mismatch errors.
func (GMPBackend) Name() string { return "gmp" }

func parseGMP(a, b string) (*gmp.Int, *gmp.Int, error) {
	x, ok := new(gmp.Int).SetString(a, 10)
	if !ok {
		return nil, nil, fmt.Errorf("operand a: invalid decimal %q", a)
	}
	y, ok := new(gmp.Int).SetString(b, 10)
	if !ok {
		return nil, nil, fmt.Errorf("operand b: invalid decimal %q", b)
	}
	return x, y, nil
}

// Mul computes the full product and splits it at the 512-bit boundary.
func (GMPBackend) Mul(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseGMP(a, b)
	if err != nil {
		return "", "", err
	}
	full := new(gmp.Int).Mul(x, y)
	lo := new(gmp.Int).Mod(full, gmpMod512)
	hi := new(gmp.Int).Div(full, gmpMod512)
	return lo.String(), hi.String(), nil
}

// Div computes the quotient and remainder, reporting a zero divisor with
// the same sentinel the native engine uses.
func (GMPBackend) Div(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseGMP(a, b)
	if err != nil {
		return "", "", err
	}
	if y.Sign() == 0 {
		return "", "", ui512.ErrDivideByZero
	}
	q := new(gmp.Int).Div(x, y)
	r := new(gmp.Int).Mod(x, y)
	return q.String(), r.String(), nil
}
