//go:generate mockgen -source=backend.go -destination=mocks/mock_backend.go -package=mocks

package orchestration

import (
	"context"
	"io"
	"sync"
	"time"
)

// Backend is an arithmetic implementation that the cross-check harness can
// drive. Operands and results are exchanged as decimal strings so that
// backends with incompatible integer representations can be compared.
//
// Mul returns the low and high 512-bit halves of the full 1024-bit product.
// Div returns the quotient and remainder. Both must report a zero divisor
// as ui512.ErrDivideByZero.
type Backend interface {
	Name() string
	Mul(ctx context.Context, a, b string) (product, overflow string, err error)
	Div(ctx context.Context, a, b string) (quotient, remainder string, err error)
}

// RoundResult captures one backend's answer for a single cross-check round.
type RoundResult struct {
	// Backend is the name of the backend that produced this result.
	Backend string
	// Values holds the two result halves (product/overflow or
	// quotient/remainder), formatted as decimal strings.
	Values [2]string
	// Duration is the time the backend took for this round.
	Duration time.Duration
	// Err is the backend error, if any.
	Err error
}

// BackendStats aggregates timing over a full cross-check run.
type BackendStats struct {
	// Name is the backend name.
	Name string
	// Total is the cumulative computation time across all rounds.
	Total time.Duration
	// Rounds is the number of rounds the backend completed.
	Rounds int
}

// RoundUpdate reports cross-check progress to the presentation layer.
type RoundUpdate struct {
	// Round is the 1-based index of the round just completed.
	Round int
	// Total is the total number of rounds in the run.
	Total int
	// Op is the operation exercised in this round.
	Op string
}

// ProgressReporter decouples the cross-check loop from its visual
// presentation. Implementations consume updates until the channel closes.
type ProgressReporter interface {
	// DisplayProgress runs until updates is closed, then signals wg.
	// It should be called in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, updates <-chan RoundUpdate, totalRounds int, out io.Writer)
}

// ProgressReporterFunc adapts a function to the ProgressReporter interface.
type ProgressReporterFunc func(wg *sync.WaitGroup, updates <-chan RoundUpdate, totalRounds int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, updates <-chan RoundUpdate, totalRounds int, out io.Writer) {
	f(wg, updates, totalRounds, out)
}

// NullProgressReporter drains the update channel without displaying
// anything. Used in quiet mode and in tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan RoundUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range updates {
	}
}
