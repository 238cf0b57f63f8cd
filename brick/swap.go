package brick

// SwapRanges swaps the corresponding elements of a and b, up to the length
// of the shorter slice.
func SwapRanges[T any](a, b []T, vector bool) {
	Walk2(a, b, func(x, y *T) { *x, *y = *y, *x }, vector)
}

// Reverse reverses the order of the elements of s.
func Reverse[T any](s []T, vector bool) {
	n := len(s)
	h := n / 2
	lower, upper := s[:h], s[n-h:]
	WalkIndex(0, h, func(i int) {
		j := h - 1 - i
		lower[i], upper[j] = upper[j], lower[i]
	}, vector)
}

// ReverseCopy copies the elements of src to dst in reverse order, up to the
// length of the shorter slice counted from the end of src.
func ReverseCopy[T any](src, dst []T, vector bool) {
	n := min(len(src), len(dst))
	last := len(src) - 1
	WalkIndex(0, n, func(i int) { dst[i] = src[last-i] }, vector)
}

// Rotate rotates s so that s[mid] becomes the first element, and returns the
// new index of the element that was first.
func Rotate[T any](s []T, mid int) int {
	n := len(s)
	if mid == 0 {
		return n
	}
	if mid == n {
		return 0
	}
	Reverse(s[:mid], false)
	Reverse(s[mid:], false)
	Reverse(s, false)
	return n - mid
}

// RotateCopy copies s[mid:] followed by s[:mid] to dst.
func RotateCopy[T any](s []T, mid int, dst []T) int {
	k := copy(dst, s[mid:])
	return k + copy(dst[k:], s[:mid])
}
