// Package parallel provides the scheduling primitives that patterns are
// built on: a search that converges on the left-most or right-most match, an
// existence check that stops scheduling work once the answer is known, and a
// strict two-phase scan with guaranteed left-to-right prefixes.
//
// All primitives run on the executor and scratch memory provider of the
// policy they are given, and return only when all work they spawned has
// terminated.
package parallel

import (
	"context"
	"sync/atomic"

	"github.com/exascience/pstl/policy"
)

// Find divides the range from 0 to n into subranges of at most grain
// elements and invokes search for them, potentially in parallel. search
// returns an index in [low, high), or -1 if the subrange has no match.
//
// Find returns the smallest index any search returned if leftmost is true,
// and the largest otherwise, or -1 if no search found anything. Searches
// that are already running are not interrupted when a better match is found
// elsewhere, but subranges that cannot improve on the best match found so far
// are skipped.
func Find(p policy.Policy, n, grain int, leftmost bool, search func(low, high int) int) int {
	if n <= 0 {
		return -1
	}
	initial := int64(-1)
	if leftmost {
		initial = int64(n)
	}
	better := func(i, j int64) bool {
		if leftmost {
			return i < j
		}
		return i > j
	}
	var best atomic.Int64
	best.Store(initial)
	p.Executor().For(context.Background(), 0, n, grain, func(low, high int) {
		if leftmost {
			if int64(low) >= best.Load() {
				return
			}
		} else if int64(high-1) <= best.Load() {
			return
		}
		i := search(low, high)
		if i < 0 {
			return
		}
		k := int64(i)
		for {
			old := best.Load()
			if !better(k, old) || best.CompareAndSwap(old, k) {
				return
			}
		}
	})
	if result := best.Load(); result != initial {
		return int(result)
	}
	return -1
}

// Or divides the range from 0 to n into subranges of at most grain elements
// and invokes pred for them, potentially in parallel. It returns true if any
// invocation of pred returns true.
//
// Once an invocation returns true, no further subranges are scheduled.
// Invocations that are already running are not interrupted.
func Or(p policy.Policy, n, grain int, pred func(low, high int) bool) bool {
	if n <= 0 {
		return false
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var found atomic.Bool
	p.Executor().For(ctx, 0, n, grain, func(low, high int) {
		if found.Load() {
			return
		}
		if pred(low, high) {
			found.Store(true)
			cancel()
		}
	})
	return found.Load()
}
