package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/widebit/ui512/internal/orchestration"
)

// ProgressRefreshRate defines the refresh frequency of the spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts the terminal spinner so DisplayProgress can be tested
// without driving a real one.
type Spinner interface {
	Start()
	Stop()
	// UpdateSuffix sets the text displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }
func (rs *realSpinner) Stop()  { rs.s.Stop() }
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Suffix = suffix
}

var newSpinner = func(out io.Writer) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, spinner.WithWriter(out))
	return &realSpinner{s}
}

// SpinnerProgressReporter implements orchestration.ProgressReporter with a
// terminal spinner that tracks cross-check rounds.
type SpinnerProgressReporter struct{}

var _ orchestration.ProgressReporter = SpinnerProgressReporter{}

// DisplayProgress runs the spinner until the update channel closes.
func (SpinnerProgressReporter) DisplayProgress(wg *sync.WaitGroup, updates <-chan orchestration.RoundUpdate, totalRounds int, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(out)
	sp.UpdateSuffix(fmt.Sprintf(" cross-check 0/%d", totalRounds))
	sp.Start()
	defer sp.Stop()

	for u := range updates {
		sp.UpdateSuffix(fmt.Sprintf(" cross-check %d/%d (%s)", u.Round, u.Total, u.Op))
	}
}
