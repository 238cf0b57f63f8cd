// Package executor provides the fork-join task executor that the scheduling
// primitives and patterns run on.
//
// An Executor offers three operations: Invoke executes thunks in parallel,
// For divides an index range into subranges and executes a range function on
// each of them in parallel, and Concurrency reports how many workers the
// executor schedules on. Reduce builds a parallel reduction on top of Invoke.
//
// All operations are synchronous: they return only when all work they
// spawned has terminated. A calling goroutine executes part of the work
// itself instead of blocking idly.
//
// If a function invoked by an executor panics, the panic is recovered in the
// goroutine that executed it, and re-raised in the calling goroutine once all
// sibling work has terminated, with the left-most panic taking precedence.
package executor

import (
	"context"
	"sync/atomic"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/internal"
)

// An Executor runs fork-join parallel work.
type Executor interface {
	// Invoke executes the thunks, potentially in parallel, and returns when
	// all of them have terminated.
	Invoke(thunks ...func())

	// For divides the half-open range from low to high into subranges of at
	// most grain elements, and invokes body for each of them, potentially in
	// parallel. If grain is not positive, the range is divided into twice as
	// many subranges as Concurrency returns. For does not invoke body for an
	// empty range.
	//
	// Once ctx is done, no further subranges are started. Subranges already
	// running are not interrupted.
	For(ctx context.Context, low, high, grain int, body func(low, high int))

	// Concurrency returns the number of workers work is spread across.
	Concurrency() int
}

// Offload is the seam to an accelerator backend. Patterns that are handed a
// policy with an Offload delegate their element-wise work to it entirely,
// instead of using an Executor.
type Offload interface {
	// ParallelFor invokes body for each index in [0, n), and returns when all
	// invocations have terminated.
	ParallelFor(n int, body func(i int))
}

// OffloadFunc adapts an ordinary function to the Offload interface.
type OffloadFunc func(n int, body func(i int))

// ParallelFor implements the method of the Offload interface.
func (f OffloadFunc) ParallelFor(n int, body func(i int)) {
	f(n, body)
}

// Reduce divides the half-open range from low to high into subranges like
// Executor.For does, invokes body for each of them with identity as the
// initial accumulator, potentially in parallel, and combines the results with
// combine.
//
// combine is always called with the result of a subrange as its left operand
// and the result of the adjacent subrange to its right as its right operand.
// How the results are grouped is not specified, so combine must be
// associative. Reduce returns identity for an empty range without invoking
// body.
func Reduce[T any](
	ex Executor,
	low, high, grain int,
	identity T,
	body func(low, high int, acc T) T,
	combine func(x, y T) T,
) T {
	internal.CheckRange(low, high)
	if low == high {
		return identity
	}
	var recur func(int, int, int) T
	recur = func(low, high, n int) T {
		if n == 1 {
			return body(low, high, identity)
		}
		batchSize := ((high - low - 1) / n) + 1
		half := n / 2
		mid := low + batchSize*half
		if mid >= high {
			return body(low, high, identity)
		}
		var left, right T
		ex.Invoke(
			func() { left = recur(low, mid, half) },
			func() { right = recur(mid, high, n-half) },
		)
		return combine(left, right)
	}
	return recur(low, high, batches(low, high, grain, ex.Concurrency()))
}

// batches returns the number of subranges For and Reduce divide a range into.
func batches(low, high, grain, workers int) int {
	if grain <= 0 {
		return internal.ComputeNofBatches(low, high, 0, workers)
	}
	return internal.ComputeNofBatchesForGrain(low, high, grain)
}

var defaultExecutor atomic.Pointer[ForkJoin]

// Default returns the process-wide fork-join executor, sized by
// config.Default().Workers. A new executor replaces it when a later
// config.Set changes the number of workers.
func Default() Executor {
	workers := config.Default().Workers
	for {
		ex := defaultExecutor.Load()
		if ex != nil && ex.workers == workers {
			return ex
		}
		if next := NewForkJoin(workers); defaultExecutor.CompareAndSwap(ex, next) {
			return next
		}
	}
}
