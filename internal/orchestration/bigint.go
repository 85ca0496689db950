package orchestration

import (
	"context"
	"fmt"
	"math/big"

	"github.com/widebit/ui512"
)

// mod512 is 2^512, used to split a full product into its low and high
// halves.
var mod512 = new(big.Int).Lsh(big.NewInt(1), ui512.Bits)

// BigIntBackend is the math/big reference implementation.
type BigIntBackend struct{}

// Name identifies the backend in reports and mismatch errors.
func (BigIntBackend) Name() string { return "math/big" }

func parseBig(a, b string) (*big.Int, *big.Int, error) {
	x, ok := new(big.Int).SetString(a, 10)
	if !ok {
		return nil, nil, fmt.Errorf("operand a: invalid decimal %q", a)
	}
	y, ok := new(big.Int).SetString(b, 10)
	if !ok {
		return nil, nil, fmt.Errorf("operand b: invalid decimal %q", b)
	}
	return x, y, nil
}

// Mul computes the full product and splits it at the 512-bit boundary.
func (BigIntBackend) Mul(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseBig(a, b)
	if err != nil {
		return "", "", err
	}
	full := new(big.Int).Mul(x, y)
	hi, lo := new(big.Int).DivMod(full, mod512, new(big.Int))
	return lo.Text(10), hi.Text(10), nil
}

// Div computes the quotient and remainder, reporting a zero divisor with
// the same sentinel the native engine uses.
func (BigIntBackend) Div(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseBig(a, b)
	if err != nil {
		return "", "", err
	}
	if y.Sign() == 0 {
		return "", "", ui512.ErrDivideByZero
	}
	q, r := new(big.Int).QuoRem(x, y, new(big.Int))
	return q.Text(10), r.Text(10), nil
}
