package pattern

import (
	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/parallel"
	"github.com/exascience/pstl/policy"
)

// compactByMask copies the elements of src whose index satisfies keep to the
// front of dst, in order, with one strict scan: the reduce phase records keep
// in a mask and counts, the scan phase copies by mask to the prefix count. It
// reports false, without touching dst, if there is no scratch memory for the
// mask.
func compactByMask[T any](p policy.Policy, st policy.Strategy, src, dst []T, keep func(i int) bool) (int, bool) {
	n := len(src)
	buf, ok := acquire[bool](p, n)
	if !ok {
		config.Logger().Debug("compaction runs serially", "n", n)
		return 0, false
	}
	defer buf.Release()
	m := buf.Data()
	var total int
	parallel.StrictScan(p, n, 0,
		func(low, high int) int {
			return brick.CalcMask(low, high, m[low:high], keep, st.Vector())
		},
		func(x, y int) int { return x + y },
		func(low, high int, prefix int) {
			brick.CopyByMask(src[low:high], dst[prefix:], m[low:high], st.Vector())
		},
		func(sum int) { total = sum },
	)
	return total, true
}

// CopyIf copies the elements of src that satisfy pred to dst, in order, and
// returns their number. dst must not overlap src.
func CopyIf[T any](p policy.Policy, src, dst []T, pred func(T) bool) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if st.Parallel() {
		if k, ok := compactByMask(p, st, src, dst, func(i int) bool { return pred(src[i]) }); ok {
			return k
		}
	}
	return brick.CopyIf(src, dst, pred, st.Vector())
}

// RemoveCopyIf copies the elements of src that do not satisfy pred to dst,
// in order, and returns their number. dst must not overlap src.
func RemoveCopyIf[T any](p policy.Policy, src, dst []T, pred func(T) bool) int {
	return CopyIf(p, src, dst, func(x T) bool { return !pred(x) })
}

// UniqueCopy copies the first element of every run of consecutive elements
// of src that are equal according to eq to dst, in order, and returns the
// number of elements written. dst must not overlap src.
func UniqueCopy[T any](p policy.Policy, src, dst []T, eq func(x, y T) bool) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if st.Parallel() && n >= 2 {
		dst[0] = src[0]
		rest := src[1:]
		if k, ok := compactByMask(p, st, rest, dst[1:], func(i int) bool { return !eq(src[i], rest[i]) }); ok {
			return k + 1
		}
	}
	return brick.UniqueCopy(src, dst, eq)
}

type counts struct{ t, f int }

// PartitionCopy copies the elements of src that satisfy pred to dstTrue and
// the others to dstFalse, in order, and returns the numbers of elements
// written to each. Neither destination may overlap src.
func PartitionCopy[T any](p policy.Policy, src, dstTrue, dstFalse []T, pred func(T) bool) (t, f int) {
	n := len(src)
	if n == 0 {
		return 0, 0
	}
	st := strategy(p, n)
	if st.Parallel() {
		if buf, ok := acquire[bool](p, n); ok {
			defer buf.Release()
			m := buf.Data()
			var total counts
			parallel.StrictScan(p, n, counts{},
				func(low, high int) counts {
					c := brick.CalcMask(low, high, m[low:high], func(i int) bool { return pred(src[i]) }, st.Vector())
					return counts{c, high - low - c}
				},
				func(x, y counts) counts { return counts{x.t + y.t, x.f + y.f} },
				func(low, high int, prefix counts) {
					brick.PartitionByMask(src[low:high], dstTrue[prefix.t:], dstFalse[prefix.f:], m[low:high], st.Vector())
				},
				func(sum counts) { total = sum },
			)
			return total.t, total.f
		}
		config.Logger().Debug("partition copy runs serially", "n", n)
	}
	return brick.PartitionCopy(src, dstTrue, dstFalse, pred)
}

// removeElements moves the elements of s whose index satisfies keep to the
// front of s, in order, and returns their number. keep is evaluated for all
// indices before any element moves. It reports false, without touching s, if
// there is no scratch memory for the mask.
func removeElements[T any](p policy.Policy, st policy.Strategy, s []T, keep func(i int) bool) (int, bool) {
	n := len(s)
	buf, ok := acquire[bool](p, n)
	if !ok {
		return 0, false
	}
	defer buf.Release()
	m := buf.Data()

	// Compute the mask, and find the first element that does not stay.
	first := executor.Reduce(p.Executor(), 0, n, grain[T](p), n,
		func(low, high int, acc int) int {
			brick.CalcMask(low, high, m[low:high], keep, st.Vector())
			if i := brick.FindIf(m[low:high], func(b bool) bool { return !b }, st.Vector()); i < high-low {
				return min(acc, low+i)
			}
			return acc
		},
		func(x, y int) int { return min(x, y) },
	)
	if first == n {
		return n, true
	}

	rest, mask := s[first:], m[first:]
	tmp, ok := acquire[T](p, len(rest))
	if !ok {
		// The mask is known, so compacting in place is a single serial pass.
		return first + brick.CopyByMask(rest, rest, mask, false), true
	}
	defer tmp.Release()
	var kept int
	parallel.StrictScan(p, len(rest), 0,
		func(low, high int) int {
			c := 0
			for _, b := range mask[low:high] {
				if b {
					c++
				}
			}
			return c
		},
		func(x, y int) int { return x + y },
		func(low, high int, prefix int) {
			brick.CopyByMask(rest[low:high], tmp.Data()[prefix:], mask[low:high], st.Vector())
		},
		func(sum int) { kept = sum },
	)
	parallelCopy(p, st, tmp.Data()[:kept], rest)
	return first + kept, true
}

// RemoveIf removes the elements of s that satisfy pred by moving the others
// to the front of s, in order, and returns their number.
func RemoveIf[T any](p policy.Policy, s []T, pred func(T) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if st.Parallel() {
		if k, ok := removeElements(p, st, s, func(i int) bool { return !pred(s[i]) }); ok {
			return k
		}
		config.Logger().Debug("remove runs serially", "n", n)
	}
	return brick.RemoveIf(s, pred, st.Vector())
}

// Unique removes all but the first element of every run of consecutive
// elements of s that are equal according to eq, by moving the remaining
// elements to the front of s, and returns their number.
func Unique[T any](p policy.Policy, s []T, eq func(x, y T) bool) int {
	n := len(s)
	if n <= 2 {
		return brick.Unique(s, eq)
	}
	st := strategy(p, n)
	if st.Parallel() {
		if k, ok := removeElements(p, st, s, func(i int) bool { return i == 0 || !eq(s[i-1], s[i]) }); ok {
			return k
		}
		config.Logger().Debug("unique runs serially", "n", n)
	}
	return brick.Unique(s, eq)
}
