package sort

import (
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/storage"
)

type merger[T any] struct {
	less   func(x, y T) bool
	invoke func(thunks ...func())
	cutoff int
}

func lowerBound[T any](s []T, x T, less func(x, y T) bool) int {
	low, high := 0, len(s)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if !less(s[mid], x) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

func upperBound[T any](s []T, x T, less func(x, y T) bool) int {
	low, high := 0, len(s)
	for low < high {
		mid := int(uint(low+high) >> 1)
		if less(x, s[mid]) {
			high = mid
		} else {
			low = mid + 1
		}
	}
	return high
}

// sMerge merges a and b into dst by copying runs of elements.
func sMerge[T any](a, b, dst []T, less func(x, y T) bool) {
	for {
		if len(b) == 0 {
			copy(dst, a)
			return
		}

		n1 := 0
		for n1 < len(a) && !less(b[0], a[n1]) {
			n1++
		}
		copy(dst, a[:n1])
		a, dst = a[n1:], dst[n1:]

		if len(a) == 0 {
			copy(dst, b)
			return
		}

		n2 := 0
		for n2 < len(b) && less(b[n2], a[0]) {
			n2++
		}
		copy(dst, b[:n2])
		b, dst = b[n2:], dst[n2:]
	}
}

// pMerge merges a and b into dst by splitting the larger input in the
// middle, and finding the matching split point in the smaller input by binary
// search. Of equivalent elements, those from a end up first.
func (m *merger[T]) pMerge(a, b, dst []T) {
	n1, n2 := len(a), len(b)
	if n1+n2 < m.cutoff {
		sMerge(a, b, dst, m.less)
		return
	}
	if n1 > n2 {
		q1 := n1 / 2
		q2 := lowerBound(b, a[q1], m.less)
		q3 := q1 + q2
		dst[q3] = a[q1]
		m.invoke(
			func() { m.pMerge(a[:q1], b[:q2], dst[:q3]) },
			func() { m.pMerge(a[q1+1:], b[q2:], dst[q3+1:]) },
		)
	} else {
		if n2 == 0 {
			return
		}
		q2 := n2 / 2
		q1 := upperBound(a, b[q2], m.less)
		q3 := q1 + q2
		dst[q3] = b[q2]
		m.invoke(
			func() { m.pMerge(a[:q1], b[:q2], dst[:q3]) },
			func() { m.pMerge(a[q1:], b[q2+1:], dst[q3+1:]) },
		)
	}
}

/*
Merge merges the sorted slices a and b into dst, which must have room for
len(a)+len(b) elements and must not overlap a or b. Merge is stable: of
equivalent elements, those from a precede those from b.

Merge splits the work recursively, in parallel if the policy allows, and
merges serially once the combined size of a split drops below
config.Default().MergeCutoff.
*/
func Merge[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) {
	dst = dst[:len(a)+len(b)]
	cutoff := config.Default().MergeCutoff
	if !p.PreferParallel(policy.RandomAccess) || len(dst) < cutoff {
		sMerge(a, b, dst, less)
		return
	}
	m := &merger[T]{less: less, invoke: p.Executor().Invoke, cutoff: max(cutoff, 2)}
	m.pMerge(a, b, dst)
}

/*
StableSort sorts s stably, using a parallel implementation of merge sort, also
known as cilksort.

StableSort is good for large core counts and large slice sizes, but needs
scratch memory for a shallow copy of s. If the policy's storage provider
refuses it, StableSort sorts sequentially.
*/
func StableSort[T any](p policy.Policy, s []T, less func(x, y T) bool) {
	// See https://en.wikipedia.org/wiki/Introduction_to_Algorithms and
	// https://www.clear.rice.edu/comp422/lecture-notes/ for details on the algorithm.
	size := len(s)
	cutoff := max(config.Default().SortCutoff, serialCutoff)
	if !p.PreferParallel(policy.RandomAccess) || size < cutoff {
		SequentialStableSort(s, less)
		return
	}
	buf, ok := storage.Acquire[T](p.Storage(), size)
	if !ok {
		config.Logger().Debug("stable sort runs sequentially", "n", size)
		SequentialStableSort(s, less)
		return
	}
	defer buf.Release()
	m := &merger[T]{less: less, invoke: p.Executor().Invoke, cutoff: max(config.Default().MergeCutoff, 2)}
	var pSort func(s, t []T)
	pSort = func(s, t []T) {
		size := len(s)
		if size < cutoff {
			SequentialStableSort(s, less)
			return
		}
		q1 := size / 4
		q2 := q1 + q1
		q3 := q2 + q1
		m.invoke(
			func() { pSort(s[:q1], t[:q1]) },
			func() { pSort(s[q1:q2], t[q1:q2]) },
			func() { pSort(s[q2:q3], t[q2:q3]) },
			func() { pSort(s[q3:], t[q3:]) },
		)
		m.invoke(
			func() { m.pMerge(s[:q1], s[q1:q2], t[:q2]) },
			func() { m.pMerge(s[q2:q3], s[q3:], t[q2:]) },
		)
		m.pMerge(t[:q2], t[q2:], s)
	}
	pSort(s, buf.Data())
}
