package orchestration

import (
	"context"

	"github.com/widebit/ui512"
	apperrors "github.com/widebit/ui512/internal/errors"
)

// NativeBackend computes with the ui512 engines. It is the implementation
// under test; the other backends exist to check it.
type NativeBackend struct{}

// Name identifies the backend in reports and mismatch errors.
func (NativeBackend) Name() string { return "ui512" }

func parseOperands(a, b string) (x, y ui512.Uint512, err error) {
	x, err = ui512.Parse(a)
	if err != nil {
		return x, y, apperrors.WrapError(err, "operand a")
	}
	y, err = ui512.Parse(b)
	if err != nil {
		return x, y, apperrors.WrapError(err, "operand b")
	}
	return x, y, nil
}

// Mul computes the full 1024-bit product of a and b.
func (NativeBackend) Mul(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", "", err
	}
	var product, overflow ui512.Uint512
	ui512.Mul(&product, &overflow, &x, &y)
	return product.Text(10), overflow.Text(10), nil
}

// Div computes the quotient and remainder of a divided by b.
func (NativeBackend) Div(ctx context.Context, a, b string) (string, string, error) {
	if err := ctx.Err(); err != nil {
		return "", "", err
	}
	x, y, err := parseOperands(a, b)
	if err != nil {
		return "", "", err
	}
	var quotient, remainder ui512.Uint512
	if err := ui512.Div(&quotient, &remainder, &x, &y); err != nil {
		return "", "", err
	}
	return quotient.Text(10), remainder.Text(10), nil
}
