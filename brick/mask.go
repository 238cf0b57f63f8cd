package brick

import "github.com/exascience/pstl/lanes"

// CalcMask stores pred(low+i) into m[i] for every index in [low, high), and
// returns the number of true results. m must have at least high-low slots.
func CalcMask(low, high int, m []bool, pred func(i int) bool, vector bool) (count int) {
	m = m[:high-low]
	if !vector {
		for i := range m {
			b := pred(low + i)
			m[i] = b
			if b {
				count++
			}
		}
		return
	}
	var block mask
	const l = len(block)
	n := len(m)
	i := 0
	for ; i+l <= n; i += l {
		count += block.fill(low+i, l, pred)
		copy(m[i:i+l], block[:])
	}
	if r := n - i; r > 0 {
		count += block.fill(low+i, r, pred)
		copy(m[i:], block[:r])
	}
	return
}

// CopyByMask copies the elements of src whose mask entry is true to the
// front of dst, in order, and returns their number.
func CopyByMask[T any](src, dst []T, m []bool, vector bool) int {
	m = m[:len(src)]
	k := 0
	if !vector {
		for i, b := range m {
			if b {
				dst[k] = src[i]
				k++
			}
		}
		return k
	}
	l := lanes.Of[T]()
	for i := 0; i < len(src); i += l {
		block := m[i:min(i+l, len(m))]
		switch c := countTrue(block); c {
		case 0:
		case len(block):
			k += copy(dst[k:], src[i:i+c])
		default:
			for j, b := range block {
				if b {
					dst[k] = src[i+j]
					k++
				}
			}
		}
	}
	return k
}

func countTrue(m []bool) (c int) {
	for _, b := range m {
		if b {
			c++
		}
	}
	return
}

// PartitionByMask copies the elements of src whose mask entry is true to the
// front of dstTrue and the others to the front of dstFalse, in order, and
// returns their numbers.
func PartitionByMask[T any](src, dstTrue, dstFalse []T, m []bool, vector bool) (t, f int) {
	for i, b := range m[:len(src)] {
		if b {
			dstTrue[t] = src[i]
			t++
		} else {
			dstFalse[f] = src[i]
			f++
		}
	}
	return
}

// CopyIf copies the elements of src that satisfy pred to the front of dst,
// in order, and returns their number. dst may alias src if it starts at the
// same position.
func CopyIf[T any](src, dst []T, pred func(T) bool, vector bool) int {
	if !vector {
		k := 0
		for _, x := range src {
			if pred(x) {
				dst[k] = x
				k++
			}
		}
		return k
	}
	var block mask
	const l = len(block)
	test := func(i int) bool { return pred(src[i]) }
	k := 0
	for i := 0; i < len(src); i += l {
		r := min(l, len(src)-i)
		block.fill(i, r, test)
		for j, b := range block[:r] {
			if b {
				dst[k] = src[i+j]
				k++
			}
		}
	}
	return k
}
