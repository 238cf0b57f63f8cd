package brick

// Merge merges the sorted slices a and b into dst, which must have room for
// len(a)+len(b) elements, and returns the number of elements written. Merge
// is stable: of equivalent elements, those from a precede those from b.
func Merge[T any](a, b, dst []T, less func(x, y T) bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		if less(b[j], a[i]) {
			dst[k] = b[j]
			j++
		} else {
			dst[k] = a[i]
			i++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	k += copy(dst[k:], b[j:])
	return k
}

// SetUnion writes the sorted union of the sorted slices a and b to dst, and
// returns the number of elements written. Of equivalent elements, those from
// a are written. An element that occurs m times in a and n times in b occurs
// max(m, n) times in the result.
func SetUnion[T any](a, b, dst []T, less func(x, y T) bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(b[j], a[i]):
			dst[k] = b[j]
			j++
		case less(a[i], b[j]):
			dst[k] = a[i]
			i++
		default:
			dst[k] = a[i]
			i++
			j++
		}
		k++
	}
	k += copy(dst[k:], a[i:])
	k += copy(dst[k:], b[j:])
	return k
}

// SetIntersection writes the elements of the sorted slice a that also occur
// in the sorted slice b to dst, and returns the number of elements written.
func SetIntersection[T any](a, b, dst []T, less func(x, y T) bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			i++
		case less(b[j], a[i]):
			j++
		default:
			dst[k] = a[i]
			k++
			i++
			j++
		}
	}
	return k
}

// SetDifference writes the elements of the sorted slice a that do not occur
// in the sorted slice b to dst, and returns the number of elements written.
func SetDifference[T any](a, b, dst []T, less func(x, y T) bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			dst[k] = a[i]
			k++
			i++
		case less(b[j], a[i]):
			j++
		default:
			i++
			j++
		}
	}
	return k + copy(dst[k:], a[i:])
}

// SetSymmetricDifference writes the elements that occur in exactly one of
// the sorted slices a and b to dst, and returns the number of elements
// written.
func SetSymmetricDifference[T any](a, b, dst []T, less func(x, y T) bool) int {
	i, j, k := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case less(a[i], b[j]):
			dst[k] = a[i]
			k++
			i++
		case less(b[j], a[i]):
			dst[k] = b[j]
			k++
			j++
		default:
			i++
			j++
		}
	}
	k += copy(dst[k:], a[i:])
	k += copy(dst[k:], b[j:])
	return k
}

// Includes reports whether every element of the sorted slice b occurs in
// the sorted slice a, counting multiplicities.
func Includes[T any](a, b []T, less func(x, y T) bool) bool {
	i := 0
	for _, y := range b {
		for i < len(a) && less(a[i], y) {
			i++
		}
		if i == len(a) || less(y, a[i]) {
			return false
		}
		i++
	}
	return true
}

// LowerBound returns the first index in the sorted slice s whose element is
// not less than x.
func LowerBound[T any](s []T, x T, less func(x, y T) bool) int {
	i, j := 0, len(s)
	for i < j {
		h := int(uint(i+j) >> 1)
		if less(s[h], x) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// UpperBound returns the first index in the sorted slice s whose element is
// greater than x.
func UpperBound[T any](s []T, x T, less func(x, y T) bool) int {
	i, j := 0, len(s)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !less(x, s[h]) {
			i = h + 1
		} else {
			j = h
		}
	}
	return i
}

// MergeBuffered merges the sorted ranges s[:mid] and s[mid:] in place,
// stably, using buf as scratch space. buf must hold at least
// min(mid, len(s)-mid) elements. The shorter range is moved into buf and
// merged back, from the front if it is the left one and from the back
// otherwise. The used part of buf is left with stale elements.
func MergeBuffered[T any](s []T, mid int, buf []T, less func(x, y T) bool) {
	n := len(s)
	if mid == 0 || mid == n {
		return
	}
	if mid <= n-mid {
		a := buf[:copy(buf, s[:mid])]
		i, j, k := 0, mid, 0
		for i < len(a) && j < n {
			if less(s[j], a[i]) {
				s[k] = s[j]
				j++
			} else {
				s[k] = a[i]
				i++
			}
			k++
		}
		copy(s[k:], a[i:])
		return
	}
	b := buf[:copy(buf, s[mid:])]
	i, j, k := mid-1, len(b)-1, n-1
	for i >= 0 && j >= 0 {
		if less(b[j], s[i]) {
			s[k] = s[i]
			i--
		} else {
			s[k] = b[j]
			j--
		}
		k--
	}
	copy(s[:j+1], b[:j+1])
}

// InplaceMerge merges the sorted ranges s[:mid] and s[mid:] in place without
// scratch memory, stably.
func InplaceMerge[T any](s []T, mid int, less func(x, y T) bool) {
	n := len(s)
	if mid == 0 || mid == n {
		return
	}
	if n == 2 {
		if less(s[1], s[0]) {
			s[0], s[1] = s[1], s[0]
		}
		return
	}
	var cut1, cut2 int
	if mid > n-mid {
		cut1 = mid / 2
		cut2 = mid + LowerBound(s[mid:], s[cut1], less)
	} else {
		cut2 = mid + (n-mid)/2
		cut1 = UpperBound(s[:mid], s[cut2], less)
	}
	Rotate(s[cut1:cut2], mid-cut1)
	newMid := cut1 + cut2 - mid
	InplaceMerge(s[:newMid], cut1, less)
	InplaceMerge(s[newMid:], cut2-newMid, less)
}
