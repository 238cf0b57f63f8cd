package pattern

import (
	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/parallel"
	"github.com/exascience/pstl/policy"
)

type setOp[T any] func(a, b, dst []T, less func(x, y T) bool) int

// setTile records where in scratch memory a tile left its result.
type setTile struct {
	pos, len int
}

// parallelSetOp computes op over a and b by dividing a into tiles, with
// boundaries moved so that no run of equivalent elements is split, pairing
// every tile with the subrange of b it overlaps, and computing op for each
// pair into its own region of scratch memory. A strict scan over the tile
// result sizes then gives every tile the position of its result in dst.
//
// size returns an upper bound of the result size for inputs of the given
// sizes, and must be additive over adjacent subranges. parallelSetOp reports
// false if there is no scratch memory.
func parallelSetOp[T any](
	p policy.Policy, st policy.Strategy,
	a, b, dst []T,
	less func(x, y T) bool,
	size func(n1, n2 int) int,
	op setOp[T],
) (int, bool) {
	n1, n2 := len(a), len(b)
	buf, ok := acquire[T](p, size(n1, n2))
	if !ok {
		return 0, false
	}
	defer buf.Release()
	tile := parallel.TileSize(n1, p.Executor().Concurrency())
	tiles, ok := acquire[setTile](p, (n1-1)/tile+1)
	if !ok {
		return 0, false
	}
	defer tiles.Release()
	tmp, results := buf.Data(), tiles.Data()

	var total int
	parallel.StrictScanTiles(p, n1, tile, 0,
		func(low, high int) int {
			bl, el := low, high
			if bl > 0 {
				bl += brick.UpperBound(a[bl:], a[bl-1], less)
			}
			if el < n1 {
				el += brick.UpperBound(a[el:], a[el-1], less)
			}
			bb, eb := 0, n2
			if bl > 0 {
				if bl < n1 {
					bb = brick.LowerBound(b, a[bl], less)
				} else {
					bb = n2
				}
			}
			if el < n1 {
				eb = bb + brick.LowerBound(b[bb:], a[el], less)
			}
			pos := size(bl, bb)
			k := 0
			if bl < el {
				k = op(a[bl:el], b[bb:eb], tmp[pos:], less)
			}
			results[low/tile] = setTile{pos, k}
			return k
		},
		func(x, y int) int { return x + y },
		func(low, high int, prefix int) {
			r := results[low/tile]
			copy(dst[prefix:prefix+r.len], tmp[r.pos:r.pos+r.len])
		},
		func(sum int) { total = sum },
	)
	return total, true
}

func sumSize(n1, n2 int) int  { return n1 + n2 }
func minSize(n1, n2 int) int  { return min(n1, n2) }
func firstSize(n1, _ int) int { return n1 }

// setPattern runs op serially for small inputs, in parallel for large ones,
// and serially as well if there is no scratch memory.
func setPattern[T any](
	p policy.Policy,
	a, b, dst []T,
	less func(x, y T) bool,
	size func(n1, n2 int) int,
	op setOp[T],
) int {
	n := len(a) + len(b)
	st := strategy(p, n)
	if st.Parallel() && n > config.Default().SetCutoff && len(a) > 0 && len(b) > 0 {
		if k, ok := parallelSetOp(p, st, a, b, dst, less, size, op); ok {
			return k
		}
		config.Logger().Debug("set operation runs serially", "n", n)
	}
	return op(a, b, dst, less)
}

// SetUnion writes the sorted union of the sorted slices a and b to dst, and
// returns the number of elements written. Of equivalent elements, those from
// a are written. An element that occurs m times in a and n times in b occurs
// max(m, n) times in the result.
func SetUnion[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) int {
	n1, n2 := len(a), len(b)
	st := strategy(p, n1+n2)
	switch {
	case n1 == 0:
		return parallelCopy(p, st, b, dst[:n2])
	case n2 == 0:
		return parallelCopy(p, st, a, dst[:n1])
	case less(a[n1-1], b[0]):
		// a is wholly less than b.
		k := parallelCopy(p, st, a, dst[:n1])
		return k + parallelCopy(p, st, b, dst[n1:n1+n2])
	case less(b[n2-1], a[0]):
		// b is wholly less than a.
		k := parallelCopy(p, st, b, dst[:n2])
		return k + parallelCopy(p, st, a, dst[n2:n1+n2])
	}
	return setPattern(p, a, b, dst, less, sumSize, brick.SetUnion[T])
}

// SetIntersection writes the elements of the sorted slice a that also occur
// in the sorted slice b to dst, and returns the number of elements written.
func SetIntersection[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) int {
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 || less(a[n1-1], b[0]) || less(b[n2-1], a[0]) {
		return 0
	}
	// Skip the parts of either input that are less than the other's first
	// element; they cannot be in the intersection.
	a = a[brick.LowerBound(a, b[0], less):]
	b = b[brick.LowerBound(b, a[0], less):]
	return setPattern(p, a, b, dst, less, minSize, brick.SetIntersection[T])
}

// SetDifference writes the elements of the sorted slice a that do not occur
// in the sorted slice b to dst, and returns the number of elements written.
func SetDifference[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) int {
	n1, n2 := len(a), len(b)
	if n1 == 0 {
		return 0
	}
	if n2 == 0 || less(a[n1-1], b[0]) || less(b[n2-1], a[0]) {
		return parallelCopy(p, strategy(p, n1), a, dst[:n1])
	}
	return setPattern(p, a, b, dst, less, firstSize, brick.SetDifference[T])
}

// SetSymmetricDifference writes the elements that occur in exactly one of
// the sorted slices a and b to dst, and returns the number of elements
// written.
func SetSymmetricDifference[T any](p policy.Policy, a, b, dst []T, less func(x, y T) bool) int {
	n1, n2 := len(a), len(b)
	st := strategy(p, n1+n2)
	switch {
	case n1 == 0:
		return parallelCopy(p, st, b, dst[:n2])
	case n2 == 0:
		return parallelCopy(p, st, a, dst[:n1])
	case less(a[n1-1], b[0]):
		k := parallelCopy(p, st, a, dst[:n1])
		return k + parallelCopy(p, st, b, dst[n1:n1+n2])
	case less(b[n2-1], a[0]):
		k := parallelCopy(p, st, b, dst[:n2])
		return k + parallelCopy(p, st, a, dst[n2:n1+n2])
	}
	return setPattern(p, a, b, dst, less, sumSize, brick.SetSymmetricDifference[T])
}

// Includes reports whether every element of the sorted slice b occurs in
// the sorted slice a, counting multiplicities.
//
// A parallel strategy checks subranges of b independently. Every subrange is
// extended so that it consumes whole runs of equivalent elements, and is
// looked up in a starting at the first element not less than its first.
func Includes[T any](p policy.Policy, a, b []T, less func(x, y T) bool) bool {
	n1, n2 := len(a), len(b)
	if n2 == 0 {
		return true
	}
	if n1 == 0 || less(b[0], a[0]) || less(a[n1-1], b[n2-1]) {
		return false
	}
	a = a[brick.LowerBound(a, b[0], less):]
	if len(a) == 0 {
		return false
	}
	st := strategy(p, n2)
	if !st.Parallel() || n1+n2 <= config.Default().SetCutoff {
		return brick.Includes(a, b, less)
	}
	equal := func(x, y T) bool { return !less(x, y) && !less(y, x) }
	return !parallel.Or(p, n2, grain[T](p), func(i, j int) bool {
		if i > 0 && equal(b[i], b[i-1]) {
			// The run started in an earlier subrange, which consumes it.
			if equal(b[i], b[j-1]) {
				return false
			}
			i += brick.UpperBound(b[i:], b[i], less)
		}
		if j < n2 && equal(b[j-1], b[j]) {
			j += brick.UpperBound(b[j:], b[j], less)
		}
		lo := brick.LowerBound(a, b[i], less)
		return !brick.Includes(a[lo:], b[i:j], less)
	})
}
