package brick

import "github.com/exascience/pstl/lanes"

// FindIf returns the index of the first element of s that satisfies pred, or
// len(s).
func FindIf[T any](s []T, pred func(T) bool, vector bool) int {
	n := len(s)
	if !vector {
		for i, x := range s {
			if pred(x) {
				return i
			}
		}
		return n
	}
	var m mask
	l := lanes.Of[T]()
	test := func(i int) bool { return pred(s[i]) }
	i := 0
	for ; i+l <= n; i += l {
		if m.fill(i, l, test) > 0 {
			return i + m.first(l)
		}
	}
	if r := n - i; r > 0 {
		m.fill(i, r, test)
		return i + m.first(r)
	}
	return n
}

// FindLastIf returns the index of the last element of s that satisfies
// pred, or len(s).
func FindLastIf[T any](s []T, pred func(T) bool, vector bool) int {
	return FindLastIndex(0, len(s), func(i int) bool { return pred(s[i]) }, vector)
}

// FindIndex returns the first index i in [low, high) for which pred(i) holds,
// or high.
func FindIndex(low, high int, pred func(i int) bool, vector bool) int {
	if !vector {
		for i := low; i < high; i++ {
			if pred(i) {
				return i
			}
		}
		return high
	}
	var m mask
	const l = lanes.Min * 4
	i := low
	for ; i+l <= high; i += l {
		if m.fill(i, l, pred) > 0 {
			return i + m.first(l)
		}
	}
	if r := high - i; r > 0 {
		m.fill(i, r, pred)
		return i + m.first(r)
	}
	return high
}

// FindLastIndex returns the last index i in [low, high) for which pred(i)
// holds, or high.
func FindLastIndex(low, high int, pred func(i int) bool, vector bool) int {
	if !vector {
		for i := high - 1; i >= low; i-- {
			if pred(i) {
				return i
			}
		}
		return high
	}
	var m mask
	const l = lanes.Min * 4
	i := high
	for ; i-l >= low; i -= l {
		if m.fill(i-l, l, pred) > 0 {
			return i - l + m.last(l)
		}
	}
	if r := i - low; r > 0 {
		m.fill(low, r, pred)
		if j := m.last(r); j >= 0 {
			return low + j
		}
	}
	return high
}

// AdjacentFind returns the index of the first element of s that is equal to
// its successor according to eq, or len(s).
func AdjacentFind[T any](s []T, eq func(x, y T) bool, vector bool) int {
	n := len(s)
	if n < 2 {
		return n
	}
	if i := FindIndex(0, n-1, func(i int) bool { return eq(s[i], s[i+1]) }, vector); i < n-1 {
		return i
	}
	return n
}

// matchesAt reports whether sub occurs in s at position i.
func matchesAt[T any](s, sub []T, i int, eq func(x, y T) bool) bool {
	for j, y := range sub {
		if !eq(s[i+j], y) {
			return false
		}
	}
	return true
}

// Search returns the index of the first occurrence of sub in s, or len(s).
// An empty sub occurs at index 0.
func Search[T any](s, sub []T, eq func(x, y T) bool, vector bool) int {
	n, m := len(s), len(sub)
	if m == 0 {
		return 0
	}
	if m > n {
		return n
	}
	if i := FindIndex(0, n-m+1, func(i int) bool { return matchesAt(s, sub, i, eq) }, vector); i <= n-m {
		return i
	}
	return n
}

// FindEnd returns the index of the last occurrence of sub in s, or len(s).
// An empty sub is never found.
func FindEnd[T any](s, sub []T, eq func(x, y T) bool, vector bool) int {
	n, m := len(s), len(sub)
	if m == 0 || m > n {
		return n
	}
	if i := FindLastIndex(0, n-m+1, func(i int) bool { return matchesAt(s, sub, i, eq) }, vector); i <= n-m {
		return i
	}
	return n
}

// SearchN returns the index of the first run of count consecutive elements
// of s that are equal to value according to eq, or len(s). A count of 0 or
// less matches at index 0.
func SearchN[T any](s []T, count int, value T, eq func(x, y T) bool, vector bool) int {
	n := len(s)
	if count <= 0 {
		return 0
	}
	if count > n {
		return n
	}
	i := 0
	for i <= n-count {
		j := FindIf(s[i:], func(x T) bool { return eq(x, value) }, vector)
		i += j
		if i > n-count {
			return n
		}
		k := i + 1
		for k < n && k-i < count && eq(s[k], value) {
			k++
		}
		if k-i == count {
			return i
		}
		i = k + 1
	}
	return n
}

// FindFirstOf returns the index of the first element of s that is equal to
// any element of set according to eq, or len(s).
func FindFirstOf[T any](s, set []T, eq func(x, y T) bool, vector bool) int {
	return FindIf(s, func(x T) bool {
		for _, y := range set {
			if eq(x, y) {
				return true
			}
		}
		return false
	}, vector)
}
