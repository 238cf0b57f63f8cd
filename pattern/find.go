package pattern

import (
	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/parallel"
	"github.com/exascience/pstl/policy"
)

// findIndex returns the smallest (leftmost) or largest index i in [0, n) for
// which pred(i) holds, or -1.
func findIndex[T any](p policy.Policy, n int, leftmost bool, pred func(i int) bool) int {
	if n <= 0 {
		return -1
	}
	st := strategy(p, n)
	search := brick.FindIndex
	if !leftmost {
		search = brick.FindLastIndex
	}
	if !st.Parallel() {
		return index(search(0, n, pred, st.Vector()), n)
	}
	return parallel.Find(p, n, grain[T](p), leftmost, func(low, high int) int {
		if i := search(low, high, pred, st.Vector()); i < high {
			return i
		}
		return -1
	})
}

// FindIf returns the index of the first element of s that satisfies pred,
// or -1.
func FindIf[T any](p policy.Policy, s []T, pred func(T) bool) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return index(brick.FindIf(s, pred, st.Vector()), n)
	}
	return parallel.Find(p, n, grain[T](p), true, func(low, high int) int {
		if i := brick.FindIf(s[low:high], pred, st.Vector()); i < high-low {
			return low + i
		}
		return -1
	})
}

// FindIfNot returns the index of the first element of s that does not
// satisfy pred, or -1.
func FindIfNot[T any](p policy.Policy, s []T, pred func(T) bool) int {
	return FindIf(p, s, func(x T) bool { return !pred(x) })
}

// FindLastIf returns the index of the last element of s that satisfies
// pred, or -1.
func FindLastIf[T any](p policy.Policy, s []T, pred func(T) bool) int {
	return findIndex[T](p, len(s), false, func(i int) bool { return pred(s[i]) })
}

// FindFirstOf returns the index of the first element of s that is equal to
// any element of set according to eq, or -1.
func FindFirstOf[T any](p policy.Policy, s, set []T, eq func(x, y T) bool) int {
	if len(set) == 0 {
		return -1
	}
	return FindIf(p, s, func(x T) bool {
		for _, y := range set {
			if eq(x, y) {
				return true
			}
		}
		return false
	})
}

// AdjacentFind returns the index of the first element of s that is equal to
// its successor according to eq, or -1.
func AdjacentFind[T any](p policy.Policy, s []T, eq func(x, y T) bool) int {
	return findIndex[T](p, len(s)-1, true, func(i int) bool { return eq(s[i], s[i+1]) })
}

func matchesAt[T any](s, sub []T, i int, eq func(x, y T) bool) bool {
	return brick.Mismatch(s[i:i+len(sub)], sub, eq, false) == len(sub)
}

// Search returns the index of the first occurrence of sub in s, or -1. An
// empty sub occurs at index 0.
func Search[T any](p policy.Policy, s, sub []T, eq func(x, y T) bool) int {
	if len(sub) == 0 {
		return 0
	}
	return findIndex[T](p, len(s)-len(sub)+1, true, func(i int) bool { return matchesAt(s, sub, i, eq) })
}

// FindEnd returns the index of the last occurrence of sub in s, or -1. An
// empty sub is never found.
func FindEnd[T any](p policy.Policy, s, sub []T, eq func(x, y T) bool) int {
	if len(sub) == 0 {
		return -1
	}
	return findIndex[T](p, len(s)-len(sub)+1, false, func(i int) bool { return matchesAt(s, sub, i, eq) })
}

// SearchN returns the index of the first run of count consecutive elements
// of s that are equal to value according to eq, or -1. A count of 0 or less
// matches at index 0.
func SearchN[T any](p policy.Policy, s []T, count int, value T, eq func(x, y T) bool) int {
	n := len(s)
	if count <= 0 {
		return 0
	}
	if count > n {
		return -1
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return index(brick.SearchN(s, count, value, eq, st.Vector()), n)
	}
	isValue := func(x T) bool { return eq(x, value) }
	return findIndex[T](p, n-count+1, true, func(i int) bool {
		// Only the start of a run can start the first matching run.
		if i > 0 && isValue(s[i-1]) {
			return false
		}
		return brick.FindIf(s[i:i+count], func(x T) bool { return !isValue(x) }, false) == count
	})
}

// AnyOf reports whether any element of s satisfies pred.
func AnyOf[T any](p policy.Policy, s []T, pred func(T) bool) bool {
	n := len(s)
	if n == 0 {
		return false
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.FindIf(s, pred, st.Vector()) < n
	}
	return parallel.Or(p, n, grain[T](p), func(low, high int) bool {
		return brick.FindIf(s[low:high], pred, st.Vector()) < high-low
	})
}

// AllOf reports whether all elements of s satisfy pred. It returns true for
// an empty s.
func AllOf[T any](p policy.Policy, s []T, pred func(T) bool) bool {
	return !AnyOf(p, s, func(x T) bool { return !pred(x) })
}

// NoneOf reports whether no element of s satisfies pred. It returns true
// for an empty s.
func NoneOf[T any](p policy.Policy, s []T, pred func(T) bool) bool {
	return !AnyOf(p, s, pred)
}

// CountIf returns the number of elements of s that satisfy pred.
func CountIf[T any](p policy.Policy, s []T, pred func(T) bool) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.CountIf(s, pred, st.Vector())
	}
	return executor.Reduce(p.Executor(), 0, n, grain[T](p), 0,
		func(low, high int, acc int) int {
			return acc + brick.CountIf(s[low:high], pred, st.Vector())
		},
		func(x, y int) int { return x + y },
	)
}

// Mismatch returns the first index at which a and b differ according to eq,
// or -1 if they do not differ up to the length of the shorter slice.
func Mismatch[T, U any](p policy.Policy, a []T, b []U, eq func(T, U) bool) int {
	n := min(len(a), len(b))
	if n == 0 {
		return -1
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return index(brick.Mismatch(a[:n], b[:n], eq, st.Vector()), n)
	}
	return parallel.Find(p, n, grain[T](p), true, func(low, high int) int {
		if i := brick.Mismatch(a[low:high], b[low:high], eq, st.Vector()); i < high-low {
			return low + i
		}
		return -1
	})
}

// Equal reports whether a and b have the same length and all corresponding
// elements are equal according to eq.
func Equal[T, U any](p policy.Policy, a []T, b []U, eq func(T, U) bool) bool {
	n := len(a)
	if n != len(b) {
		return false
	}
	if n == 0 {
		return true
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.Equal(a, b, eq, st.Vector())
	}
	return !parallel.Or(p, n, grain[T](p), func(low, high int) bool {
		return !brick.Equal(a[low:high], b[low:high], eq, st.Vector())
	})
}

// LexicographicalCompare reports whether a is lexicographically less than b
// according to less.
func LexicographicalCompare[T any](p policy.Policy, a, b []T, less func(x, y T) bool) bool {
	n := min(len(a), len(b))
	i := findIndex[T](p, n, true, func(i int) bool { return less(a[i], b[i]) || less(b[i], a[i]) })
	if i >= 0 {
		return less(a[i], b[i])
	}
	return len(a) < len(b)
}

// IsPartitioned reports whether all elements of s that satisfy pred precede
// those that do not.
func IsPartitioned[T any](p policy.Policy, s []T, pred func(T) bool) bool {
	i := FindIfNot(p, s, pred)
	if i < 0 {
		return true
	}
	return NoneOf(p, s[i+1:], pred)
}
