package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/internal"
)

// goroutinesPerWorker bounds how many forked goroutines may be alive per
// worker. Forks beyond that bound run inline in the forking goroutine.
const goroutinesPerWorker = 8

// ForkJoin is an Executor that forks the right half of each split into its
// own goroutine and executes the left half in the forking goroutine.
//
// The number of live forked goroutines is bounded. When the bound is reached,
// the right half runs inline after the left half, so deep recursions degrade
// to sequential execution instead of piling up goroutines.
type ForkJoin struct {
	workers int
	slots   *semaphore.Weighted
}

// NewForkJoin returns a ForkJoin executor for the given number of workers. If
// workers is not positive, config.Default().Workers is used.
func NewForkJoin(workers int) *ForkJoin {
	if workers <= 0 {
		workers = config.Default().Workers
	}
	return &ForkJoin{
		workers: workers,
		slots:   semaphore.NewWeighted(int64(workers * goroutinesPerWorker)),
	}
}

// Concurrency implements the method of the Executor interface.
func (fj *ForkJoin) Concurrency() int {
	return fj.workers
}

// fork executes left and right, right in its own goroutine if a slot is
// available, and returns when both have terminated. A panic in either is
// re-raised afterwards, the one in left taking precedence.
func (fj *ForkJoin) fork(left, right func()) {
	if fj.workers == 1 || !fj.slots.TryAcquire(1) {
		left()
		right()
		return
	}
	var p0, p1 interface{}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p1 = internal.WrapPanic(recover())
			fj.slots.Release(1)
			wg.Done()
		}()
		right()
	}()
	func() {
		defer func() {
			p0 = internal.WrapPanic(recover())
		}()
		left()
	}()
	wg.Wait()
	if p0 != nil {
		panic(p0)
	}
	if p1 != nil {
		panic(p1)
	}
}

// Invoke implements the method of the Executor interface.
//
// Each thunk beyond the first is potentially invoked in its own goroutine.
func (fj *ForkJoin) Invoke(thunks ...func()) {
	switch len(thunks) {
	case 0:
		return
	case 1:
		thunks[0]()
		return
	case 2:
		fj.fork(thunks[0], thunks[1])
	default:
		half := len(thunks) / 2
		fj.fork(
			func() { fj.Invoke(thunks[:half]...) },
			func() { fj.Invoke(thunks[half:]...) },
		)
	}
}

// For implements the method of the Executor interface.
//
// For panics if high < low or low < 0.
func (fj *ForkJoin) For(ctx context.Context, low, high, grain int, body func(low, high int)) {
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
		fj.fork(
			func() { recur(low, mid, half) },
			func() { recur(mid, high, n-half) },
		)
	}
	recur(low, high, batches(low, high, grain, fj.workers))
}

func done(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
