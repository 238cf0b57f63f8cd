package pattern

import (
	"context"

	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/policy"
)

// ForEach invokes f for a pointer to every element of s.
//
// If the policy carries an offload backend, the whole loop is delegated to
// it.
func ForEach[T any](p policy.Policy, s []T, f func(*T)) {
	n := len(s)
	if n == 0 {
		return
	}
	if off := p.Offload(); off != nil {
		off.ParallelFor(n, func(i int) { f(&s[i]) })
		return
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.Walk1(s, f, st.Vector())
		return
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		brick.Walk1(s[low:high], f, st.Vector())
	})
}

// ForEachN invokes f for a pointer to each of the first n elements of s, and
// returns n. ForEachN panics if n is larger than len(s).
func ForEachN[T any](p policy.Policy, s []T, n int, f func(*T)) int {
	if n <= 0 {
		return 0
	}
	ForEach(p, s[:n], f)
	return n
}

// Transform stores f(src[i]) into dst[i] for every element of src, and
// returns len(src).
func Transform[T, U any](p policy.Policy, src []T, dst []U, f func(T) U) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	dst = dst[:n]
	if off := p.Offload(); off != nil {
		off.ParallelFor(n, func(i int) { dst[i] = f(src[i]) })
		return n
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.Transform(src, dst, f, st.Vector())
		return n
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		brick.Transform(src[low:high], dst[low:high], f, st.Vector())
	})
	return n
}

// Transform2 stores f(a[i], b[i]) into dst[i] for every element of a, and
// returns len(a). b must be at least as long as a.
func Transform2[T, U, V any](p policy.Policy, a []T, b []U, dst []V, f func(T, U) V) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	b, dst = b[:n], dst[:n]
	if off := p.Offload(); off != nil {
		off.ParallelFor(n, func(i int) { dst[i] = f(a[i], b[i]) })
		return n
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.Transform2(a, b, dst, f, st.Vector())
		return n
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		brick.Transform2(a[low:high], b[low:high], dst[low:high], f, st.Vector())
	})
	return n
}

// WalkBrick applies b to the range from 0 to n: once to the whole range for
// a serial strategy, or to subranges of at most grain elements, in parallel,
// otherwise. The vectorized form of b is used when the policy prefers it.
func WalkBrick(p policy.Policy, n int, b brick.Brick[struct{}]) {
	if n <= 0 {
		return
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.Run(b, 0, n, st.Vector())
		return
	}
	p.Executor().For(context.Background(), 0, n, grain[byte](p), func(low, high int) {
		brick.Run(b, low, high, st.Vector())
	})
}

// SwapRanges swaps the elements of a with the corresponding elements of b,
// and returns len(a). b must be at least as long as a, and must not overlap
// it.
func SwapRanges[T any](p policy.Policy, a, b []T) int {
	n := len(a)
	if n == 0 {
		return 0
	}
	b = b[:n]
	if off := p.Offload(); off != nil {
		off.ParallelFor(n, func(i int) { a[i], b[i] = b[i], a[i] })
		return n
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.SwapRanges(a, b, st.Vector())
		return n
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		brick.SwapRanges(a[low:high], b[low:high], st.Vector())
	})
	return n
}

// Reverse reverses the order of the elements of s.
func Reverse[T any](p policy.Policy, s []T) {
	n := len(s)
	h := n / 2
	if h == 0 {
		return
	}
	st := strategy(p, n)
	if !st.Parallel() {
		brick.Reverse(s, st.Vector())
		return
	}
	// Swap s[i] with s[n-1-i] for i in [low, high) by pairing the subrange
	// with its mirror image.
	p.Executor().For(context.Background(), 0, h, grain[T](p), func(low, high int) {
		lower := s[low:high]
		upper := s[n-high : n-low]
		k := high - low
		brick.WalkIndex(0, k, func(i int) {
			lower[i], upper[k-1-i] = upper[k-1-i], lower[i]
		}, st.Vector())
	})
}

// ReverseCopy copies the elements of src to dst in reverse order, and
// returns len(src).
func ReverseCopy[T any](p policy.Policy, src, dst []T) int {
	n := len(src)
	if n == 0 {
		return 0
	}
	dst = dst[:n]
	st := strategy(p, n)
	if !st.Parallel() {
		brick.ReverseCopy(src, dst, st.Vector())
		return n
	}
	p.Executor().For(context.Background(), 0, n, grain[T](p), func(low, high int) {
		brick.ReverseCopy(src[n-high:n-low], dst[low:high], st.Vector())
	})
	return n
}

// Rotate rotates s so that s[mid] becomes its first element, and returns the
// new index of the element that was first.
//
// A parallel strategy rotates through scratch memory, and falls back to
// rotating in place if there is none.
func Rotate[T any](p policy.Policy, s []T, mid int) int {
	n := len(s)
	if mid <= 0 || mid >= n {
		return n - mid
	}
	st := strategy(p, n)
	if st.Parallel() {
		if buf, ok := acquire[T](p, n); ok {
			defer buf.Release()
			tmp := buf.Data()
			RotateCopy(p, s, mid, tmp)
			parallelCopy(p, st, tmp, s)
			return n - mid
		}
	}
	return brick.Rotate(s, mid)
}

// RotateCopy copies s[mid:] followed by s[:mid] to dst, and returns len(s).
func RotateCopy[T any](p policy.Policy, s []T, mid int, dst []T) int {
	n := len(s)
	if n == 0 {
		return 0
	}
	st := strategy(p, n)
	if !st.Parallel() {
		return brick.RotateCopy(s, mid, dst)
	}
	k := parallelCopy(p, st, s[mid:], dst[:n-mid])
	return k + parallelCopy(p, st, s[:mid], dst[n-mid:n])
}
