package app

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/widebit/ui512"
	"github.com/widebit/ui512/internal/cli"
	"github.com/widebit/ui512/internal/config"
	apperrors "github.com/widebit/ui512/internal/errors"
	"github.com/widebit/ui512/internal/logging"
	"github.com/widebit/ui512/internal/orchestration"
)

// runCalculate performs a single operation on the configured operands and
// displays the result.
func (a *Application) runCalculate(_ context.Context, out io.Writer) int {
	operandA, err := ui512.Parse(a.Config.A)
	if err != nil {
		return a.handleRunError(apperrors.WrapError(err, "operand -a"))
	}
	operandB, err := ui512.Parse(a.Config.B)
	if err != nil {
		return a.handleRunError(apperrors.WrapError(err, "operand -b"))
	}

	start := time.Now()
	result, err := compute(a.Config.Op, operandA, operandB, a.Config.Base)
	if err != nil {
		return a.handleRunError(err)
	}
	result.Duration = time.Since(start)

	a.Logger.Debug("operation complete",
		logging.String("op", result.Op),
		logging.Dur("duration", result.Duration),
	)

	if a.Config.Quiet {
		cli.DisplayQuietResult(out, result)
	} else {
		cli.DisplayResult(out, result, a.styles())
	}
	return apperrors.ExitSuccess
}

// compute runs one operation and renders the outcome in the requested
// base.
func compute(op string, a, b ui512.Uint512, base int) (cli.Result, error) {
	r := cli.Result{Op: op}
	switch op {
	case config.OpMul:
		var product, overflow ui512.Uint512
		ui512.Mul(&product, &overflow, &a, &b)
		r.Primary, r.PrimaryLabel = product.Text(base), "product"
		r.Secondary, r.SecondaryLabel = overflow.Text(base), "overflow"
	case config.OpDiv:
		var quotient, remainder ui512.Uint512
		if err := ui512.Div(&quotient, &remainder, &a, &b); err != nil {
			return r, err
		}
		r.Primary, r.PrimaryLabel = quotient.Text(base), "quotient"
		r.Secondary, r.SecondaryLabel = remainder.Text(base), "remainder"
	case config.OpAdd:
		var sum ui512.Uint512
		carry := ui512.Add(&sum, &a, &b)
		r.Primary, r.PrimaryLabel = sum.Text(base), "sum"
		r.Secondary, r.SecondaryLabel = ui512.FromUint64(carry).Text(base), "carry"
	case config.OpSub:
		var diff ui512.Uint512
		borrow := ui512.Sub(&diff, &a, &b)
		r.Primary, r.PrimaryLabel = diff.Text(base), "difference"
		r.Secondary, r.SecondaryLabel = ui512.FromUint64(borrow).Text(base), "borrow"
	default:
		return r, apperrors.NewConfigError("unknown operation %q", op)
	}
	return r, nil
}

// runSelfTest cross-checks the engines against the reference backends.
func (a *Application) runSelfTest(ctx context.Context, out io.Writer) int {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	seed := a.Config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.Logger.Info("starting cross-check",
		logging.Int("rounds", a.Config.SelfTest),
		logging.Int64("seed", seed),
	)

	backends := []orchestration.Backend{
		orchestration.NativeBackend{},
		orchestration.BigIntBackend{},
		orchestration.GMPBackend{},
	}

	var reporter orchestration.ProgressReporter
	progressOut := out
	if a.Config.Quiet {
		reporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	} else {
		reporter = cli.SpinnerProgressReporter{}
	}

	stats, err := orchestration.RunCrossCheck(ctx, backends, a.Config.SelfTest, seed, reporter, progressOut)
	if err != nil {
		cli.DisplaySelfTestOutcome(out, a.Config.SelfTest, err, a.styles())
		return a.handleRunError(err)
	}

	if !a.Config.Quiet {
		cli.DisplayStatsTable(out, stats, a.styles())
	}
	cli.DisplaySelfTestOutcome(out, a.Config.SelfTest, nil, a.styles())
	return apperrors.ExitSuccess
}
