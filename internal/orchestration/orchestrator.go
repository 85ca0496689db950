package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/widebit/ui512"
	"github.com/widebit/ui512/internal/config"
	apperrors "github.com/widebit/ui512/internal/errors"
)

// ProgressBufferMultiplier sizes the progress channel buffer. A larger
// buffer reduces the likelihood of blocking the cross-check loop when the
// UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// RunCrossCheck runs rounds of randomized operations across all backends
// and verifies that every backend agrees on every result.
//
// Each round runs all backends concurrently. The first disagreement stops
// the run and is returned as an apperrors.MismatchError; a canceled
// context stops the run with the context error. On success the per-backend
// timing statistics are returned, sorted fastest first.
func RunCrossCheck(ctx context.Context, backends []Backend, rounds int, seed int64, reporter ProgressReporter, out io.Writer) ([]BackendStats, error) {
	if len(backends) < 2 {
		return nil, fmt.Errorf("cross-check needs at least 2 backends, got %d", len(backends))
	}

	stats := make([]BackendStats, len(backends))
	for i, b := range backends {
		stats[i].Name = b.Name()
	}

	updates := make(chan RoundUpdate, ProgressBufferMultiplier)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, updates, rounds, out)
	defer func() {
		close(updates)
		displayWg.Wait()
	}()

	workload := NewWorkload(seed)
	for round := 1; round <= rounds; round++ {
		r := workload.Next()

		results, err := runRound(ctx, backends, r)
		if err != nil {
			return nil, err
		}
		if err := compareResults(r, results); err != nil {
			return nil, err
		}
		for i, res := range results {
			stats[i].Total += res.Duration
			stats[i].Rounds++
		}

		select {
		case updates <- RoundUpdate{Round: round, Total: rounds, Op: r.Op}:
		default:
		}
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Total < stats[j].Total })
	return stats, nil
}

// runRound executes one round on every backend concurrently.
func runRound(ctx context.Context, backends []Backend, r Round) ([]RoundResult, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]RoundResult, len(backends))

	for i, b := range backends {
		idx, backend := i, b
		g.Go(func() error {
			start := time.Now()
			var v0, v1 string
			var err error
			switch r.Op {
			case config.OpDiv:
				v0, v1, err = backend.Div(ctx, r.A, r.B)
			default:
				v0, v1, err = backend.Mul(ctx, r.A, r.B)
			}
			results[idx] = RoundResult{
				Backend:  backend.Name(),
				Values:   [2]string{v0, v1},
				Duration: time.Since(start),
				Err:      err,
			}
			if apperrors.IsContextError(err) {
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// compareResults checks that every backend produced the same answer as the
// first one. A zero divisor counts as agreement when every backend reports
// it; any other divergence is a mismatch.
func compareResults(r Round, results []RoundResult) error {
	ref := results[0]
	for _, res := range results[1:] {
		if resultsAgree(ref, res) {
			continue
		}
		return apperrors.MismatchError{
			Operation: r.Op,
			Backends:  [2]string{ref.Backend, res.Backend},
			Values:    [2]string{formatResult(ref), formatResult(res)},
		}
	}
	return nil
}

func resultsAgree(a, b RoundResult) bool {
	if a.Err != nil || b.Err != nil {
		return isDivideByZero(a.Err) && isDivideByZero(b.Err)
	}
	return a.Values == b.Values
}

func isDivideByZero(err error) bool {
	return errors.Is(err, ui512.ErrDivideByZero)
}

func formatResult(r RoundResult) string {
	if r.Err != nil {
		return fmt.Sprintf("error (%v)", r.Err)
	}
	return fmt.Sprintf("(%s, %s)", r.Values[0], r.Values[1])
}
