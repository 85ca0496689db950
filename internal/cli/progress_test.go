package cli

import (
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/widebit/ui512/internal/orchestration"
)

// fakeSpinner records spinner interactions for assertions.
type fakeSpinner struct {
	mu       sync.Mutex
	started  bool
	stopped  bool
	suffixes []string
}

func (f *fakeSpinner) Start() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
}

func (f *fakeSpinner) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = true
}

func (f *fakeSpinner) UpdateSuffix(suffix string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.suffixes = append(f.suffixes, suffix)
}

func TestSpinnerProgressReporter(t *testing.T) {
	fake := &fakeSpinner{}
	orig := newSpinner
	newSpinner = func(io.Writer) Spinner { return fake }
	defer func() { newSpinner = orig }()

	updates := make(chan orchestration.RoundUpdate, 4)
	var wg sync.WaitGroup
	wg.Add(1)
	go SpinnerProgressReporter{}.DisplayProgress(&wg, updates, 10, io.Discard)

	updates <- orchestration.RoundUpdate{Round: 1, Total: 10, Op: "mul"}
	updates <- orchestration.RoundUpdate{Round: 2, Total: 10, Op: "div"}
	close(updates)
	wg.Wait()

	if !fake.started || !fake.stopped {
		t.Fatalf("spinner lifecycle: started=%v stopped=%v", fake.started, fake.stopped)
	}
	if len(fake.suffixes) < 3 {
		t.Fatalf("got %d suffix updates, want at least 3", len(fake.suffixes))
	}
	last := fake.suffixes[len(fake.suffixes)-1]
	if !strings.Contains(last, "2/10") || !strings.Contains(last, "div") {
		t.Errorf("last suffix = %q", last)
	}
}
