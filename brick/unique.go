package brick

// Unique removes all but the first element of every run of consecutive
// elements of s that are equal according to eq, by moving the remaining
// elements to the front. It returns the number of remaining elements.
func Unique[T any](s []T, eq func(x, y T) bool) int {
	if len(s) < 2 {
		return len(s)
	}
	k := 1
	for i := 1; i < len(s); i++ {
		if !eq(s[k-1], s[i]) {
			s[k] = s[i]
			k++
		}
	}
	return k
}

// UniqueCopy copies the first element of every run of consecutive elements
// of src that are equal according to eq to dst, and returns the number of
// elements written.
func UniqueCopy[T any](src, dst []T, eq func(x, y T) bool) int {
	if len(src) == 0 {
		return 0
	}
	dst[0] = src[0]
	k := 1
	for i := 1; i < len(src); i++ {
		if !eq(src[i-1], src[i]) {
			dst[k] = src[i]
			k++
		}
	}
	return k
}

// RemoveIf removes the elements of s that satisfy pred, by moving the
// remaining elements to the front in order. It returns the number of
// remaining elements.
func RemoveIf[T any](s []T, pred func(T) bool, vector bool) int {
	return CopyIf(s, s, func(x T) bool { return !pred(x) }, vector)
}
