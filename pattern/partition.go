package pattern

import (
	"context"

	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/sort"
)

// partitioned describes the partitioned subrange [begin, end) of a slice,
// whose elements in [begin, pivot) satisfy the predicate and whose elements
// in [pivot, end) do not.
type partitioned struct {
	begin, pivot, end int
}

// Partition reorders s so that all elements that satisfy pred precede those
// that do not, and returns the number of elements that satisfy pred. The
// relative order within the two groups is unspecified.
//
// A parallel strategy partitions subranges in parallel, and joins adjacent
// partitioned subranges by swapping the smaller of the left false group and
// the right true group across, with a parallel loop.
func Partition[T any](p policy.Policy, s []T, pred func(T) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.Partition(s, pred)
	}
	g := grain[T](p)
	join := func(x, y partitioned) partitioned {
		falses := x.end - x.pivot
		trues := y.pivot - y.begin
		switch {
		case falses == 0:
			return partitioned{x.begin, y.pivot, y.end}
		case trues == 0:
			return partitioned{x.begin, x.pivot, y.end}
		case trues > falses:
			swapRanges(p, st, s[x.pivot:x.end], s[y.pivot-falses:y.pivot], g)
		default:
			swapRanges(p, st, s[x.pivot:x.pivot+trues], s[y.begin:y.pivot], g)
		}
		return partitioned{x.begin, x.pivot + trues, y.end}
	}
	r := executor.Reduce(p.Executor(), 0, n, g, partitioned{},
		func(low, high int, _ partitioned) partitioned {
			return partitioned{low, low + brick.Partition(s[low:high], pred), high}
		},
		join,
	)
	return r.pivot
}

func swapRanges[T any](p policy.Policy, st policy.Strategy, a, b []T, grain int) {
	p.Executor().For(context.Background(), 0, len(a), grain, func(low, high int) {
		brick.SwapRanges(a[low:high], b[low:high], st.Vector())
	})
}

// StablePartition is like Partition, but preserves the relative order of
// the elements within both groups.
//
// A parallel strategy partitions subranges in parallel, and joins adjacent
// subranges by rotating the left false group behind the right true group.
// The serial strategy moves elements through scratch memory if it can get
// it, and rotates in place otherwise.
func StablePartition[T any](p policy.Policy, s []T, pred func(T) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if !st.Parallel() {
		if buf, ok := acquire[T](p, n); ok {
			defer buf.Release()
			return brick.StablePartitionBuffer(s, buf.Data(), pred)
		}
		config.Logger().Debug("stable partition runs in place", "n", n)
		return brick.StablePartition(s, pred)
	}
	r := executor.Reduce(p.Executor(), 0, n, grain[T](p), partitioned{},
		func(low, high int, _ partitioned) partitioned {
			return partitioned{low, low + brick.StablePartition(s[low:high], pred), high}
		},
		func(x, y partitioned) partitioned {
			falses := x.end - x.pivot
			trues := y.pivot - y.begin
			if falses > 0 && trues > 0 {
				brick.Rotate(s[x.pivot:y.pivot], falses)
			}
			return partitioned{x.begin, x.pivot + trues, y.end}
		},
	)
	return r.pivot
}

// NthElement reorders s so that s[nth] is the element that would be there if
// s were sorted, no element of s[:nth] is greater than it, and no element of
// s[nth+1:] is less than it. NthElement does nothing if nth is out of range.
//
// NthElement repeatedly partitions the active range around its first
// element, with Partition, until the pivot lands on nth. Runs of elements
// equivalent to the pivot are skipped as a whole. Active ranges below
// config.Default().PartitionCutoff are finished with a sequential sort.
func NthElement[T any](p policy.Policy, s []T, nth int, less func(x, y T) bool) {
	n := len(s)
	if nth < 0 || nth >= n || n <= 1 {
		return
	}
	cutoff := max(config.Default().PartitionCutoff, 2)
	first, last := 0, n
	for {
		if last-first <= cutoff {
			sort.SequentialSort(s[first:last], less)
			return
		}
		pivot := s[first]
		x := first + Partition(p, s[first+1:last], func(y T) bool { return less(y, pivot) })
		// s[first+1:x+1] is less than the pivot.
		if x != first {
			s[first], s[x] = s[x], s[first]
		}
		switch {
		case x == nth:
			return
		case x > nth:
			last = x
		default:
			e := x + 1 + Partition(p, s[x+1:last], func(y T) bool { return !less(pivot, y) })
			// s[x:e] is equivalent to the pivot.
			if nth < e {
				return
			}
			first = e
		}
	}
}
