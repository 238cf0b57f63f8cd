/*
Package sort provides parallel sorting and merging of slices.

All functions take the ordering as a less function, which must be a strict
weak ordering, and run on the executor and scratch memory provider of the
given policy. Functions that need scratch memory fall back to a sequential
algorithm when the policy's provider refuses it.
*/
package sort

import (
	"sort"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/parallel"
	"github.com/exascience/pstl/policy"
)

// lessSlice attaches the methods of sort.Interface to a slice and a less
// function, for the sequential base cases.
type lessSlice[T any] struct {
	s    []T
	less func(x, y T) bool
}

func (s lessSlice[T]) Len() int           { return len(s.s) }
func (s lessSlice[T]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }
func (s lessSlice[T]) Swap(i, j int)      { s.s[i], s.s[j] = s.s[j], s.s[i] }

// SequentialSort sorts s with the sort package of Go's standard library.
func SequentialSort[T any](s []T, less func(x, y T) bool) {
	sort.Sort(lessSlice[T]{s, less})
}

// SequentialStableSort stably sorts s with the sort package of Go's
// standard library.
func SequentialStableSort[T any](s []T, less func(x, y T) bool) {
	sort.Stable(lessSlice[T]{s, less})
}

const serialCutoff = 10

/*
IsSortedUntil returns the length of the longest prefix of s that is sorted,
determining it in parallel if the policy allows.
*/
func IsSortedUntil[T any](p policy.Policy, s []T, less func(x, y T) bool) int {
	size := len(s)
	cutoff := config.Default().SortCutoff
	if !p.PreferParallel(policy.RandomAccess) || size < cutoff {
		for i := 1; i < size; i++ {
			if less(s[i], s[i-1]) {
				return i
			}
		}
		return size
	}
	i := parallel.Find(p, size-1, cutoff, true, func(low, high int) int {
		for i := low + 1; i < high+1; i++ {
			if less(s[i], s[i-1]) {
				return i - 1
			}
		}
		return -1
	})
	if i < 0 {
		return size
	}
	return i + 1
}

/*
IsSorted determines whether s is sorted, in parallel if the policy allows. It
stops scheduling work as soon as it finds a pair of elements that is out of
order.
*/
func IsSorted[T any](p policy.Policy, s []T, less func(x, y T) bool) bool {
	size := len(s)
	cutoff := config.Default().SortCutoff
	if !p.PreferParallel(policy.RandomAccess) || size < max(cutoff, 2*serialCutoff) {
		return sort.IsSorted(lessSlice[T]{s, less})
	}
	for i := 1; i < serialCutoff; i++ {
		if less(s[i], s[i-1]) {
			return false
		}
	}
	return !parallel.Or(p, size-serialCutoff, cutoff, func(low, high int) bool {
		for i := low + serialCutoff; i < high+serialCutoff; i++ {
			if less(s[i], s[i-1]) {
				return true
			}
		}
		return false
	})
}
