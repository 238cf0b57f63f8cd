package pattern

import (
	"slices"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/exascience/pstl/policy"
)

func naiveSearch(s, sub []int) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func naiveFindEnd(s, sub []int) int {
	for i := len(s) - len(sub); i >= 0; i-- {
		if slices.Equal(s[i:i+len(sub)], sub) {
			return i
		}
	}
	return -1
}

func naiveSearchN(s []int, count, value int) int {
	return naiveSearch(s, slices.Repeat([]int{value}, count))
}

func lastIndexFunc(s []int, pred func(int) bool) int {
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i]) {
			return i
		}
	}
	return -1
}

func TestFind(t *testing.T) {
	s := randomInts(5000, 100, 4)
	above := func(k int) func(int) bool { return func(x int) bool { return x >= k } }
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		for _, k := range []int{0, 50, 99, 100} {
			require.Equal(t, slices.IndexFunc(s, above(k)), FindIf(p, s, above(k)), "k = %d", k)
			require.Equal(t, lastIndexFunc(s, above(k)), FindLastIf(p, s, above(k)), "k = %d", k)
			require.Equal(t, slices.IndexFunc(s, func(x int) bool { return x < k }), FindIfNot(p, s, above(k)))
			require.Equal(t, slices.ContainsFunc(s, above(k)), AnyOf(p, s, above(k)))
			require.Equal(t, lo.EveryBy(s, above(k)), AllOf(p, s, above(k)))
			require.Equal(t, lo.NoneBy(s, above(k)), NoneOf(p, s, above(k)))
			require.Equal(t, lo.CountBy(s, above(k)), CountIf(p, s, above(k)))
		}

		set := []int{97, 98}
		require.Equal(t, slices.IndexFunc(s, func(x int) bool { return slices.Contains(set, x) }), FindFirstOf(p, s, set, eq))
		require.Equal(t, -1, FindFirstOf(p, s, nil, eq))

		adjacent := -1
		for i := 0; i+1 < len(s); i++ {
			if s[i] == s[i+1] {
				adjacent = i
				break
			}
		}
		require.Equal(t, adjacent, AdjacentFind(p, s, eq))
		require.Equal(t, -1, AdjacentFind(p, []int{1, 2, 3, 4}, eq))

		for _, sub := range [][]int{s[4000:4003], s[10:14], {101, 102}, s[:1]} {
			require.Equal(t, naiveSearch(s, sub), Search(p, s, sub, eq))
			require.Equal(t, naiveFindEnd(s, sub), FindEnd(p, s, sub, eq))
		}
		require.Equal(t, 0, Search(p, s, nil, eq))
		require.Equal(t, -1, FindEnd(p, s, nil, eq))
		require.Equal(t, -1, Search(p, s[:2], s[:3], eq))

		runs := randomInts(5000, 3, 5)
		for _, count := range []int{1, 2, 5, 8, 100} {
			require.Equal(t, naiveSearchN(runs, count, 1), SearchN(p, runs, count, 1, eq), "count = %d", count)
		}
		require.Equal(t, 0, SearchN(p, runs, 0, 1, eq))
	})
}

func TestCompare(t *testing.T) {
	a := randomInts(5000, 100, 6)
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		b := slices.Clone(a)
		require.True(t, Equal(p, a, b, eq))
		require.Equal(t, -1, Mismatch(p, a, b, eq))
		require.False(t, LexicographicalCompare(p, a, b, less))
		require.True(t, LexicographicalCompare(p, a[:4000], b, less))
		require.False(t, Equal(p, a[:4000], b, eq))

		b[3333]++
		require.False(t, Equal(p, a, b, eq))
		require.Equal(t, 3333, Mismatch(p, a, b, eq))
		require.Equal(t, 3333, Mismatch(p, a, b[:4000], eq))
		require.Equal(t, -1, Mismatch(p, a, b[:3000], eq))
		require.Equal(t, slices.Compare(a, b) < 0, LexicographicalCompare(p, a, b, less))
		require.Equal(t, slices.Compare(b, a) < 0, LexicographicalCompare(p, b, a, less))

		mixed := Mismatch(p, a, lo.Map(a, func(x, _ int) float64 { return float64(x) }), func(x int, y float64) bool {
			return float64(x) == y
		})
		require.Equal(t, -1, mixed)
	})
}

func TestIsPartitioned(t *testing.T) {
	s := randomInts(5000, 100, 7)
	partitioned := append(lo.Filter(s, func(x, _ int) bool { return even(x) }), lo.Reject(s, func(x, _ int) bool { return even(x) })...)
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		require.True(t, IsPartitioned(p, partitioned, even))
		require.False(t, IsPartitioned(p, partitioned, odd))
		require.True(t, IsPartitioned(p, []int{}, odd))
		require.True(t, IsPartitioned(p, []int{2, 4, 6}, odd))
	})
}
