package main

import (
	"slices"

	"github.com/exascience/pstl"
	"github.com/exascience/pstl/pattern"
	"github.com/exascience/pstl/policy"
)

// An algorithm runs one pattern on a copy of its input, and returns a result
// that must not depend on the policy.
type algorithm struct {
	name string
	run  func(p policy.Policy, in input) []int
}

// input holds the random data of one run: s unsorted, a and b sorted.
type input struct {
	s, a, b []int
}

var (
	less  pstl.Less[int]            = func(x, y int) bool { return x < y }
	equal pstl.BinaryPredicate[int] = func(x, y int) bool { return x == y }
	odd   pstl.Predicate[int]       = func(x int) bool { return x%2 != 0 }
	plus  pstl.BinaryOp[int]        = func(x, y int) int { return x + y }
)

func setOp(op func(policy.Policy, []int, []int, []int, func(x, y int) bool) int) func(policy.Policy, input) []int {
	return func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.a)+len(in.b))
		return dst[:op(p, in.a, in.b, dst, less)]
	}
}

var algorithms = []algorithm{
	{"for_each", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.ForEach(p, s, func(x *int) { *x = *x*3 + 1 })
		return s
	}},
	{"transform", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.s))
		pattern.Transform(p, in.s, dst, func(x int) int { return x / 2 })
		return dst
	}},
	{"find_if", func(p policy.Policy, in input) []int {
		n := len(in.s)
		return []int{pattern.FindIf(p, in.s, func(x int) bool { return x == n-1 })}
	}},
	{"search", func(p policy.Policy, in input) []int {
		return []int{pattern.Search(p, in.s, in.s[len(in.s)*3/4:][:min(3, len(in.s)/4)], equal)}
	}},
	{"count_if", func(p policy.Policy, in input) []int {
		return []int{pattern.CountIf(p, in.s, odd)}
	}},
	{"min_max_element", func(p policy.Policy, in input) []int {
		lo, hi := pattern.MinMaxElement(p, in.s, less)
		return []int{lo, hi}
	}},
	{"reduce", func(p policy.Policy, in input) []int {
		return []int{pattern.Reduce(p, in.s, 0, plus)}
	}},
	{"inclusive_scan", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.s))
		pattern.InclusiveScan(p, in.s, dst, plus)
		return dst
	}},
	{"exclusive_scan", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.s))
		pattern.ExclusiveScan(p, in.s, dst, 0, plus)
		return dst
	}},
	{"adjacent_difference", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.s))
		pattern.AdjacentDifference(p, in.s, dst, func(x, y int) int { return x - y })
		return dst
	}},
	{"copy_if", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.s))
		return dst[:pattern.CopyIf(p, in.s, dst, odd)]
	}},
	{"remove_if", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		return s[:pattern.RemoveIf(p, s, odd)]
	}},
	{"unique", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.a)
		return s[:pattern.Unique(p, s, equal)]
	}},
	{"partition", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		k := pattern.Partition(p, s, odd)
		// The order within either group is unspecified.
		slices.Sort(s[:k])
		slices.Sort(s[k:])
		return s
	}},
	{"stable_partition", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.StablePartition(p, s, odd)
		return s
	}},
	{"nth_element", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		nth := len(s) / 3
		pattern.NthElement(p, s, nth, less)
		return []int{s[nth]}
	}},
	{"sort", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.Sort(p, s, less)
		return s
	}},
	{"stable_sort", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.StableSort(p, s, less)
		return s
	}},
	{"merge", func(p policy.Policy, in input) []int {
		dst := make([]int, len(in.a)+len(in.b))
		pattern.Merge(p, in.a, in.b, dst, less)
		return dst
	}},
	{"inplace_merge", func(p policy.Policy, in input) []int {
		s := append(slices.Clone(in.a), in.b...)
		pattern.InplaceMerge(p, s, len(in.a), less)
		return s
	}},
	{"includes", func(p policy.Policy, in input) []int {
		if pattern.Includes(p, in.a, in.b, less) {
			return []int{1}
		}
		return []int{0}
	}},
	{"set_union", setOp(pattern.SetUnion[int])},
	{"set_intersection", setOp(pattern.SetIntersection[int])},
	{"set_difference", setOp(pattern.SetDifference[int])},
	{"set_symmetric_difference", setOp(pattern.SetSymmetricDifference[int])},
	{"reverse", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.Reverse(p, s)
		return s
	}},
	{"rotate", func(p policy.Policy, in input) []int {
		s := slices.Clone(in.s)
		pattern.Rotate(p, s, len(s)/3)
		return s
	}},
}
