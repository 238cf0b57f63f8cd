// Package pattern implements the parallel algorithms over slices.
//
// Every pattern takes a policy.Policy as its first argument, selects one of
// the four strategies from it (see policy.Strategy), and produces the same
// result as the corresponding sequential algorithm regardless of the
// strategy. Where a sequential algorithm leaves an order unspecified, such as
// the order of the elements in either group after Partition, the pattern may
// pick a different one than its serial form.
//
// User functions may be invoked concurrently, and, under a vectorized
// strategy, for more elements than the sequential algorithm would invoke them
// for, in an unspecified order. They must not depend on the order of their
// invocations. A panic in a user function propagates to the caller of the
// pattern, after all other work spawned by the pattern has terminated.
//
// Patterns that search return -1 when they find nothing. Patterns that write
// to a destination slice return the number of elements they wrote, and panic
// if the destination is too short. No pattern invokes a user function for an
// empty input.
package pattern

import (
	"context"

	"unsafe"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/storage"
)

// strategy selects the strategy for n elements of random-access input.
// Ranges of at most one element always run serially.
func strategy(p policy.Policy, n int) policy.Strategy {
	s := p.Select(policy.RandomAccess)
	if n <= 1 {
		return s.Serial()
	}
	return s
}

// grain returns the leaf size for elements of type T.
func grain[T any](p policy.Policy) int {
	if g := p.Grain(); g > 0 {
		return g
	}
	var zero T
	return config.GrainFor(unsafe.Sizeof(zero))
}

// index translates a brick result for a range of n elements to a pattern
// result.
func index(i, n int) int {
	if i >= n {
		return -1
	}
	return i
}

// opt is a value that may be missing, for reductions without an identity.
type opt[T any] struct {
	v  T
	ok bool
}

func combineOpt[T any](op func(x, y T) T) func(x, y opt[T]) opt[T] {
	return func(x, y opt[T]) opt[T] {
		switch {
		case !x.ok:
			return y
		case !y.ok:
			return x
		default:
			return opt[T]{op(x.v, y.v), true}
		}
	}
}

// parallelCopy copies src to dst, in parallel if the strategy says so.
func parallelCopy[T any](p policy.Policy, s policy.Strategy, src, dst []T) int {
	n := min(len(src), len(dst))
	if !s.Parallel() || n <= 1 {
		return copy(dst, src)
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		copy(dst[low:high], src[low:high])
	})
	return n
}

// acquire borrows scratch memory for n elements from the policy's provider.
func acquire[T any](p policy.Policy, n int) (*storage.Buffer[T], bool) {
	return storage.Acquire[T](p.Storage(), n)
}
