package sort

import (
	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
)

func medianOfThree[T any](s []T, less func(x, y T) bool, l, m, r int) int {
	if less(s[l], s[m]) {
		if less(s[m], s[r]) {
			return m
		} else if less(s[l], s[r]) {
			return r
		}
	} else if less(s[r], s[m]) {
		return m
	} else if less(s[r], s[l]) {
		return r
	}
	return l
}

func pseudoMedianOfNine[T any](s []T, less func(x, y T) bool) int {
	size := len(s)
	offset := size / 8
	return medianOfThree(s, less,
		medianOfThree(s, less, 0, offset, offset*2),
		medianOfThree(s, less, offset*3, offset*4, offset*5),
		medianOfThree(s, less, offset*6, offset*7, size-1),
	)
}

/*
Sort sorts s using a parallel quicksort implementation. Sort is not stable.

It is good for small core counts and small slice sizes, and needs no scratch
memory.
*/
func Sort[T any](p policy.Policy, s []T, less func(x, y T) bool) {
	cutoff := max(config.Default().SortCutoff, serialCutoff)
	if !p.PreferParallel(policy.RandomAccess) || len(s) < cutoff {
		SequentialSort(s, less)
		return
	}
	ex := p.Executor()
	var pSort func([]T)
	pSort = func(s []T) {
		size := len(s)
		if size < cutoff {
			SequentialSort(s, less)
			return
		}
		if m := pseudoMedianOfNine(s, less); m > 0 {
			s[0], s[m] = s[m], s[0]
		}
		i, j := 0, size
	outer:
		for {
			for {
				j--
				if !less(s[0], s[j]) {
					break
				}
			}
			for {
				if i == j {
					break outer
				}
				i++
				if !less(s[i], s[0]) {
					break
				}
			}
			if i == j {
				break outer
			}
			s[i], s[j] = s[j], s[i]
		}
		s[j], s[0] = s[0], s[j]
		ex.Invoke(
			func() { pSort(s[:j]) },
			func() { pSort(s[j+1:]) },
		)
	}
	if !IsSorted(p, s, less) {
		pSort(s)
	}
}
