package parallel

import (
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/storage"
)

// TileSize returns the tile size StrictScan uses for a range of n elements
// on an executor with the given concurrency: enough tiles to give every
// worker config.Default().Slack of them.
func TileSize(n, concurrency int) int {
	if n <= 1 {
		return 1
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return (n-1)/(config.Default().Slack*concurrency) + 1
}

// StrictScan is StrictScanTiles with the tile size returned by TileSize for
// the policy's executor.
func StrictScan[T any](
	p policy.Policy,
	n int,
	initial T,
	reduce func(low, high int) T,
	combine func(x, y T) T,
	scan func(low, high int, prefix T),
	apex func(total T),
) {
	StrictScanTiles(p, n, TileSize(n, p.Executor().Concurrency()), initial, reduce, combine, scan, apex)
}

// StrictScanTiles divides the range from 0 to n into tiles of the given size
// (the last tile may be shorter) and computes a prefix reduction over them in
// two phases.
//
// In the first phase, reduce is invoked exactly once for every tile,
// potentially in parallel. Then apex is invoked exactly once with the
// combination of initial and all tile results. In the second phase, scan is
// invoked exactly once for every tile, potentially in parallel, with the
// combination of initial and the results of all tiles to its left. Tile
// results are always combined in left-to-right order, so combine needs to be
// associative, but not commutative. No scan starts before apex has returned.
//
// If the range fits into one tile, or there is no scratch memory for the
// tile results, the whole range is treated as a single tile and the phases
// run in the calling goroutine. For an empty range, apex is invoked with
// initial, and neither reduce nor scan is invoked.
func StrictScanTiles[T any](
	p policy.Policy,
	n, tile int,
	initial T,
	reduce func(low, high int) T,
	combine func(x, y T) T,
	scan func(low, high int, prefix T),
	apex func(total T),
) {
	if n <= 0 {
		apex(initial)
		return
	}
	if tile < 1 {
		tile = 1
	}
	m := (n - 1) / tile
	if m == 0 {
		serialScan(n, initial, reduce, combine, scan, apex)
		return
	}
	buf, ok := storage.Acquire[T](p.Storage(), m+1)
	if !ok {
		config.Logger().Debug("strict scan runs as a single tile", "n", n)
		serialScan(n, initial, reduce, combine, scan, apex)
		return
	}
	defer buf.Release()
	s := &scanner[T]{
		invoke:  p.Executor().Invoke,
		tile:    tile,
		reduce:  reduce,
		combine: combine,
		scan:    scan,
	}
	r := buf.Data()
	last := n - m*tile
	s.upsweep(0, m+1, r, last)

	k := m + 1
	t := r[k-1]
	for k &= k - 1; k != 0; k &= k - 1 {
		t = s.combine(r[k-1], t)
	}
	apex(s.combine(initial, t))

	s.downsweep(0, m+1, r, last, initial)
}

func serialScan[T any](
	n int,
	initial T,
	reduce func(low, high int) T,
	combine func(x, y T) T,
	scan func(low, high int, prefix T),
	apex func(total T),
) {
	apex(combine(initial, reduce(0, n)))
	scan(0, n, initial)
}

type scanner[T any] struct {
	invoke  func(thunks ...func())
	tile    int
	reduce  func(low, high int) T
	combine func(x, y T) T
	scan    func(low, high int, prefix T)
}

// split returns the largest power of two less than m.
func split(m int) int {
	k := 1
	for 2*k < m {
		k *= 2
	}
	return k
}

// upsweep reduces the m tiles starting at tile i into r. The last of these
// tiles has last elements. Afterwards, r[j-1] holds the combination of the
// results of the lowbit(j) tiles ending at tile j-1, like a Fenwick tree.
func (s *scanner[T]) upsweep(i, m int, r []T, last int) {
	if m == 1 {
		low := i * s.tile
		r[0] = s.reduce(low, low+last)
		return
	}
	k := split(m)
	s.invoke(
		func() { s.upsweep(i, k, r, s.tile) },
		func() { s.upsweep(i+k, m-k, r[k:], last) },
	)
	if m == 2*k {
		r[m-1] = s.combine(r[k-1], r[m-1])
	}
}

// downsweep invokes scan for the m tiles starting at tile i, given the
// prefix of everything to their left.
func (s *scanner[T]) downsweep(i, m int, r []T, last int, prefix T) {
	if m == 1 {
		low := i * s.tile
		s.scan(low, low+last, prefix)
		return
	}
	k := split(m)
	right := s.combine(prefix, r[k-1])
	s.invoke(
		func() { s.downsweep(i, k, r, s.tile, prefix) },
		func() { s.downsweep(i+k, m-k, r[k:], last, right) },
	)
}
