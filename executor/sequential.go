package executor

import (
	"context"

	"github.com/exascience/pstl/internal"
)

// Sequential is an Executor that runs everything in the calling goroutine,
// in left-to-right order. It splits ranges the same way a ForkJoin with a
// single worker does, so range functions observe the same subranges. This
// is useful for testing and debugging.
type Sequential struct{}

// Concurrency implements the method of the Executor interface. It always
// returns 1.
func (Sequential) Concurrency() int {
	return 1
}

// Invoke implements the method of the Executor interface.
func (Sequential) Invoke(thunks ...func()) {
	for _, thunk := range thunks {
		thunk()
	}
}

// For implements the method of the Executor interface.
func (Sequential) For(ctx context.Context, low, high, grain int, body func(low, high int)) {
	internal.CheckRange(low, high)
	if low == high {
		return
	}
	var recur func(int, int, int)
	recur = func(low, high, n int) {
		if done(ctx) {
			return
		}
		if n == 1 {
			body(low, high)
			return
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if mid >= high {
			body(low, high)
			return
		}
		recur(low, mid, half)
		recur(mid, high, n-half)
	}
	recur(low, high, batches(low, high, grain, 1))
}
