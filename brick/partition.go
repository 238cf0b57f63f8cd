package brick

// Partition reorders s so that all elements that satisfy pred precede those
// that do not, and returns the number of elements that satisfy pred. The
// relative order of the elements is not preserved.
func Partition[T any](s []T, pred func(T) bool) int {
	i, j := 0, len(s)
	for {
		for i < j && pred(s[i]) {
			i++
		}
		for i < j && !pred(s[j-1]) {
			j--
		}
		if i >= j {
			return i
		}
		j--
		s[i], s[j] = s[j], s[i]
		i++
	}
}

// StablePartition is like Partition, but preserves the relative order of
// the elements within both groups. It needs no scratch memory, at the cost
// of O(n log n) element moves.
func StablePartition[T any](s []T, pred func(T) bool) int {
	switch len(s) {
	case 0:
		return 0
	case 1:
		if pred(s[0]) {
			return 1
		}
		return 0
	}
	h := len(s) / 2
	left := StablePartition(s[:h], pred)
	right := StablePartition(s[h:], pred)
	Rotate(s[left:h+right], h-left)
	return left + right
}

// StablePartitionBuffer is like StablePartition, but uses buf, which must
// have at least len(s) slots, to move every element at most twice.
func StablePartitionBuffer[T any](s, buf []T, pred func(T) bool) int {
	k, f := 0, 0
	for _, x := range s {
		if pred(x) {
			s[k] = x
			k++
		} else {
			buf[f] = x
			f++
		}
	}
	copy(s[k:], buf[:f])
	clear(buf[:f])
	return k
}

// IsPartitioned reports whether all elements of s that satisfy pred precede
// those that do not.
func IsPartitioned[T any](s []T, pred func(T) bool, vector bool) bool {
	i := FindIf(s, func(x T) bool { return !pred(x) }, vector)
	if i == len(s) {
		return true
	}
	return FindIf(s[i+1:], pred, vector) == len(s)-i-1
}

// PartitionCopy copies the elements of src that satisfy pred to the front of
// dstTrue and the others to the front of dstFalse, in order, and returns
// their numbers.
func PartitionCopy[T any](src, dstTrue, dstFalse []T, pred func(T) bool) (t, f int) {
	for _, x := range src {
		if pred(x) {
			dstTrue[t] = x
			t++
		} else {
			dstFalse[f] = x
			f++
		}
	}
	return
}
