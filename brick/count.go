package brick

import "github.com/exascience/pstl/lanes"

// CountIf returns the number of elements of s that satisfy pred.
func CountIf[T any](s []T, pred func(T) bool, vector bool) (count int) {
	if !vector {
		for _, x := range s {
			if pred(x) {
				count++
			}
		}
		return
	}
	var m mask
	n := len(s)
	l := lanes.Of[T]()
	test := func(i int) bool { return pred(s[i]) }
	i := 0
	for ; i+l <= n; i += l {
		count += m.fill(i, l, test)
	}
	if r := n - i; r > 0 {
		count += m.fill(i, r, test)
	}
	return
}

// Mismatch returns the first index at which a and b differ according to eq,
// or the length of the shorter slice.
func Mismatch[T, U any](a []T, b []U, eq func(T, U) bool, vector bool) int {
	n := min(len(a), len(b))
	return FindIndex(0, n, func(i int) bool { return !eq(a[i], b[i]) }, vector)
}

// Equal reports whether a and b have the same length and all corresponding
// elements are equal according to eq.
func Equal[T, U any](a []T, b []U, eq func(T, U) bool, vector bool) bool {
	return len(a) == len(b) && Mismatch(a, b, eq, vector) == len(a)
}

// LexicographicalCompare reports whether a is lexicographically less than b
// according to less.
func LexicographicalCompare[T any](a, b []T, less func(x, y T) bool, vector bool) bool {
	n := min(len(a), len(b))
	i := FindIndex(0, n, func(i int) bool { return less(a[i], b[i]) || less(b[i], a[i]) }, vector)
	if i < n {
		return less(a[i], b[i])
	}
	return len(a) < len(b)
}

// MinElement returns the index of the first smallest element of s according
// to less, or len(s) if s is empty.
func MinElement[T any](s []T, less func(x, y T) bool) int {
	if len(s) == 0 {
		return 0
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if less(s[i], s[best]) {
			best = i
		}
	}
	return best
}

// MaxElement returns the index of the first largest element of s according
// to less, or len(s) if s is empty.
func MaxElement[T any](s []T, less func(x, y T) bool) int {
	if len(s) == 0 {
		return 0
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if less(s[best], s[i]) {
			best = i
		}
	}
	return best
}

// MinMaxElement returns the indices of the first smallest and the last
// largest element of s according to less, or len(s) twice if s is empty.
func MinMaxElement[T any](s []T, less func(x, y T) bool) (lo, hi int) {
	if len(s) == 0 {
		return 0, 0
	}
	for i := 1; i < len(s); i++ {
		if less(s[i], s[lo]) {
			lo = i
		}
		if !less(s[i], s[hi]) {
			hi = i
		}
	}
	return
}
