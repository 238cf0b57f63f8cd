package pattern

import (
	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/sort"
)

// Sort sorts s according to less. Sort is not stable.
func Sort[T any](p policy.Policy, s []T, less func(x, y T) bool) {
	if len(s) <= 1 {
		return
	}
	sort.Sort(p, s, less)
}

// StableSort sorts s according to less, keeping equivalent elements in their
// original order.
func StableSort[T any](p policy.Policy, s []T, less func(x, y T) bool) {
	if len(s) <= 1 {
		return
	}
	sort.StableSort(p, s, less)
}

// PartialSort reorders s so that s[:k] holds the k smallest elements of s in
// sorted order. The order of the remaining elements is unspecified.
func PartialSort[T any](p policy.Policy, s []T, k int, less func(x, y T) bool) {
	n := len(s)
	if k <= 0 || n <= 1 {
		return
	}
	if k >= n {
		Sort(p, s, less)
		return
	}
	NthElement(p, s, k, less)
	Sort(p, s[:k], less)
}

// IsSorted reports whether s is sorted according to less.
func IsSorted[T any](p policy.Policy, s []T, less func(x, y T) bool) bool {
	return sort.IsSorted(p, s, less)
}

// IsSortedUntil returns the length of the longest sorted prefix of s.
func IsSortedUntil[T any](p policy.Policy, s []T, less func(x, y T) bool) int {
	return sort.IsSortedUntil(p, s, less)
}

// Merge merges the sorted slices a and b into dst, and returns
// len(a)+len(b). Of equivalent elements, those from a come first. dst must
// not overlap a or b.
func Merge[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) int {
	n := len(a) + len(b)
	if n == 0 {
		return 0
	}
	sort.Merge(p, a, b, dst[:n], less)
	return n
}

// InplaceMerge merges the sorted subslices s[:mid] and s[mid:] in place,
// stably.
//
// A parallel strategy merges into scratch memory for all of s and copies
// the result back. Otherwise, or if that much scratch memory is not
// available, the shorter subslice is moved into scratch memory and merged
// back serially. Without any scratch memory InplaceMerge merges by rotations.
func InplaceMerge[T any](p policy.Policy, s []T, mid int, less func(x, y T) bool) {
	n := len(s)
	if mid <= 0 || mid >= n {
		return
	}
	st := strategy(p, n)
	if st.Parallel() {
		if buf, ok := acquire[T](p, n); ok {
			defer buf.Release()
			tmp := buf.Data()
			sort.Merge(p, s[:mid], s[mid:], tmp, less)
			parallelCopy(p, st, tmp, s)
			return
		}
	}
	if buf, ok := acquire[T](p, min(mid, n-mid)); ok {
		defer buf.Release()
		brick.MergeBuffered(s, mid, buf.Data(), less)
		return
	}
	config.Logger().Debug("inplace merge runs without buffer", "n", n)
	brick.InplaceMerge(s, mid, less)
}
