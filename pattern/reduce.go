package pattern

import (
	"context"

	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/parallel"
	"github.com/exascience/pstl/policy"
)

func identity[T any](x T) T { return x }

// Reduce folds the elements of s into init with op. op must be associative;
// the elements may be grouped arbitrarily, but keep their order.
func Reduce[T any](p policy.Policy, s []T, init T, op func(x, y T) T) T {
	return TransformReduce(p, s, init, op, identity[T])
}

// TransformReduce folds f(x) for every element x of s into init with
// combine, which must be associative.
func TransformReduce[T, R any](p policy.Policy, s []T, init R, combine func(x, y R) R, f func(T) R) R {
	n := len(s)
	if n == 0 {
		return init
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.TransformReduce(s, init, combine, f, st.Vector())
	}
	r := executor.Reduce(p.Executor(), 0, n, grain[T](p), opt[R]{},
		func(low, high int, _ opt[R]) opt[R] {
			return opt[R]{brick.TransformReduce(s[low+1:high], f(s[low]), combine, f, st.Vector()), true}
		},
		combineOpt(combine),
	)
	return combine(init, r.v)
}

// MinElement returns the index of the first smallest element of s according
// to less, or -1 if s is empty.
func MinElement[T any](p policy.Policy, s []T, less func(x, y T) bool) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if !strategy(p, n).Parallel() {
		return brick.MinElement(s, less)
	}
	return executor.Reduce(p.Executor(), 0, n, grain[T](p), -1,
		func(low, high int, _ int) int {
			return low + brick.MinElement(s[low:high], less)
		},
		func(x, y int) int {
			if less(s[y], s[x]) {
				return y
			}
			return x
		},
	)
}

// MaxElement returns the index of the first largest element of s according
// to less, or -1 if s is empty.
func MaxElement[T any](p policy.Policy, s []T, less func(x, y T) bool) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if !strategy(p, n).Parallel() {
		return brick.MaxElement(s, less)
	}
	return executor.Reduce(p.Executor(), 0, n, grain[T](p), -1,
		func(low, high int, _ int) int {
			return low + brick.MaxElement(s[low:high], less)
		},
		func(x, y int) int {
			if less(s[x], s[y]) {
				return y
			}
			return x
		},
	)
}

type minMax struct{ lo, hi int }

// MinMaxElement returns the indices of the first smallest and the last
// largest element of s according to less, or -1 twice if s is empty.
func MinMaxElement[T any](p policy.Policy, s []T, less func(x, y T) bool) (lo, hi int) {
	n := len(s)
	if n == 0 {
		return -1, -1
	}
	if !strategy(p, n).Parallel() {
		return brick.MinMaxElement(s, less)
	}
	r := executor.Reduce(p.Executor(), 0, n, grain[T](p), minMax{-1, -1},
		func(low, high int, _ minMax) minMax {
			lo, hi := brick.MinMaxElement(s[low:high], less)
			return minMax{low + lo, low + hi}
		},
		func(x, y minMax) minMax {
			r := x
			if less(s[y.lo], s[x.lo]) {
				r.lo = y.lo
			}
			if !less(s[y.hi], s[x.hi]) {
				r.hi = y.hi
			}
			return r
		},
	)
	return r.lo, r.hi
}

// transformScan computes the inclusive or exclusive scan of f over src into
// dst. A parallel strategy uses a strict scan whose reduce phase folds every
// tile and whose scan phase rescans it from its prefix. Since every reduce
// precedes every scan, and a scan only writes its own tile, dst may be src.
func transformScan[T, R any](
	p policy.Policy,
	src []T, dst []R,
	init opt[R],
	combine func(x, y R) R,
	f func(T) R,
	inclusive bool,
) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	dst = dst[:n]
	scanTile := func(src []T, dst []R, prefix opt[R]) {
		if !prefix.ok {
			dst[0] = f(src[0])
			brick.TransformInclusiveScan(src[1:], dst[1:], dst[0], combine, f)
			return
		}
		if inclusive {
			brick.TransformInclusiveScan(src, dst, prefix.v, combine, f)
		} else {
			brick.TransformExclusiveScan(src, dst, prefix.v, combine, f)
		}
	}
	if !strategy(p, n).Parallel() {
		scanTile(src, dst, init)
		return n
	}
	parallel.StrictScan(p, n, init,
		func(low, high int) opt[R] {
			return opt[R]{brick.TransformReduce(src[low+1:high], f(src[low]), combine, f, false), true}
		},
		combineOpt(combine),
		func(low, high int, prefix opt[R]) {
			scanTile(src[low:high], dst[low:high], prefix)
		},
		func(opt[R]) {},
	)
	return n
}

// InclusiveScan stores op(src[0], ..., src[i]) into dst[i], and returns
// len(src). op must be associative. dst may be src.
func InclusiveScan[T any](p policy.Policy, src, dst []T, op func(x, y T) T) int {
	return transformScan(p, src, dst, opt[T]{}, op, identity[T], true)
}

// ExclusiveScan stores op(init, src[0], ..., src[i-1]) into dst[i], and
// returns len(src). op must be associative. dst may be src.
func ExclusiveScan[T any](p policy.Policy, src, dst []T, init T, op func(x, y T) T) int {
	return transformScan(p, src, dst, opt[T]{init, true}, op, identity[T], false)
}

// TransformInclusiveScan stores combine(f(src[0]), ..., f(src[i])) into
// dst[i], and returns len(src). combine must be associative.
func TransformInclusiveScan[T, R any](p policy.Policy, src []T, dst []R, combine func(x, y R) R, f func(T) R) int {
	return transformScan(p, src, dst, opt[R]{}, combine, f, true)
}

// TransformExclusiveScan stores combine(init, f(src[0]), ..., f(src[i-1]))
// into dst[i], and returns len(src). combine must be associative.
func TransformExclusiveScan[T, R any](p policy.Policy, src []T, dst []R, init R, combine func(x, y R) R, f func(T) R) int {
	return transformScan(p, src, dst, opt[R]{init, true}, combine, f, false)
}

// AdjacentDifference stores src[0] into dst[0] and op(src[i], src[i-1]) into
// dst[i] for i > 0, and returns len(src). dst must not overlap src.
func AdjacentDifference[T any](p policy.Policy, src, dst []T, op func(x, y T) T) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	dst = dst[:n]
	st := strategy(p, n)
	if !st.Parallel() {
		brick.AdjacentDifference(src, dst, nil, op, st.Vector())
		return n
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		if low == 0 {
			brick.AdjacentDifference(src[:high], dst[:high], nil, op, st.Vector())
			return
		}
		prev := src[low-1]
		brick.AdjacentDifference(src[low:high], dst[low:high], &prev, op, st.Vector())
	})
	return n
}
