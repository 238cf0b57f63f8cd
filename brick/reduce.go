package brick

import "github.com/exascience/pstl/lanes"

// TransformReduce folds f(s[i]) into acc with combine, from left to right.
//
// The vectorized form evaluates f for lanes.Min elements at a time before
// folding them in index order, so combine only needs to be associative.
func TransformReduce[T, R any](s []T, acc R, combine func(x, y R) R, f func(T) R, vector bool) R {
	n := len(s)
	i := 0
	if vector {
		var block [lanes.Min]R
		for ; i+lanes.Min <= n; i += lanes.Min {
			for j := range block {
				block[j] = f(s[i+j])
			}
			for _, v := range block {
				acc = combine(acc, v)
			}
		}
	}
	for ; i < n; i++ {
		acc = combine(acc, f(s[i]))
	}
	return acc
}

// TransformInclusiveScan stores the running fold of f(src[i]) into dst[i],
// starting from acc, and returns the final fold.
func TransformInclusiveScan[T, R any](src []T, dst []R, acc R, combine func(x, y R) R, f func(T) R) R {
	for i, x := range src {
		acc = combine(acc, f(x))
		dst[i] = acc
	}
	return acc
}

// TransformExclusiveScan stores the running fold of f(src[j]) for j < i into
// dst[i], starting from acc, and returns the final fold.
func TransformExclusiveScan[T, R any](src []T, dst []R, acc R, combine func(x, y R) R, f func(T) R) R {
	for i, x := range src {
		v := f(x)
		dst[i] = acc
		acc = combine(acc, v)
	}
	return acc
}

// AdjacentDifference stores f(src[i], src[i-1]) into dst[i] for i > 0, and
// src[0] into dst[0]. prev, if not nil, is taken as the element before
// src[0], and dst[0] becomes f(src[0], *prev) instead.
func AdjacentDifference[T any](src, dst []T, prev *T, f func(x, y T) T, vector bool) {
	n := len(src)
	if n == 0 {
		return
	}
	if prev == nil {
		dst[0] = src[0]
	} else {
		dst[0] = f(src[0], *prev)
	}
	WalkIndex(1, n, func(i int) { dst[i] = f(src[i], src[i-1]) }, vector)
}
