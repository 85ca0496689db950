package orchestration

import (
	"math/rand"

	"github.com/widebit/ui512"
	"github.com/widebit/ui512/internal/config"
)

// Round is one generated cross-check case.
type Round struct {
	// Op is the operation to exercise, config.OpMul or config.OpDiv.
	Op string
	// A and B are the operands as decimal strings.
	A string
	B string
}

// Workload deterministically generates cross-check rounds from a seed.
// The same seed always yields the same sequence, so a reported mismatch
// can be replayed.
type Workload struct {
	rng *rand.Rand
	n   int
}

// NewWorkload creates a generator seeded with seed.
func NewWorkload(seed int64) *Workload {
	return &Workload{rng: rand.New(rand.NewSource(seed))}
}

// Next returns the next round. Operations alternate between multiply and
// divide; operand bit lengths are shaped so small, dense and boundary
// values all occur, and divide rounds occasionally draw a zero divisor to
// exercise the error contract.
func (w *Workload) Next() Round {
	op := config.OpMul
	if w.n%2 == 1 {
		op = config.OpDiv
	}
	w.n++

	a := w.operand()
	b := w.operand()
	if op == config.OpDiv && w.rng.Intn(32) == 0 {
		b = ui512.Uint512{}
	}
	return Round{Op: op, A: a.Text(10), B: b.Text(10)}
}

// operand draws a value with a uniformly random bit length so that the
// full range from zero to 2^512-1 is represented instead of only dense
// 512-bit values.
func (w *Workload) operand() ui512.Uint512 {
	var x ui512.Uint512
	for i := range x {
		x[i] = w.rng.Uint64()
	}
	ui512.ShiftRight(&x, &x, uint(w.rng.Intn(ui512.Bits+1)))

	switch w.rng.Intn(16) {
	case 0:
		// Power of two.
		x = ui512.FromUint64(1)
		ui512.ShiftLeft(&x, &x, uint(w.rng.Intn(ui512.Bits)))
	case 1:
		// Small value.
		x = ui512.FromUint64(w.rng.Uint64() % 1000)
	}
	return x
}
