package pattern

import (
	"iter"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/policy"
)

// Forward-only sequences can be traversed only once, so no policy can split
// them. These patterns accept any policy and always run serially.

func checkForward(p policy.Policy) {
	if st := p.Select(policy.Forward); st != policy.Serial {
		config.Logger().Debug("forward sequence runs serially", "policy", p, "strategy", st)
	}
}

// ForEachSeq invokes f for every element of seq, in order.
func ForEachSeq[T any](p policy.Policy, seq iter.Seq[T], f func(T)) {
	checkForward(p)
	for x := range seq {
		f(x)
	}
}

// CountIfSeq returns the number of elements of seq that satisfy pred.
func CountIfSeq[T any](p policy.Policy, seq iter.Seq[T], pred func(T) bool) (count int) {
	checkForward(p)
	for x := range seq {
		if pred(x) {
			count++
		}
	}
	return
}

// FindIfSeq returns the position of the first element of seq that satisfies
// pred, and that element. It returns -1 and the zero value if there is none.
// FindIfSeq stops drawing elements from seq once it finds one.
func FindIfSeq[T any](p policy.Policy, seq iter.Seq[T], pred func(T) bool) (int, T) {
	checkForward(p)
	i := 0
	for x := range seq {
		if pred(x) {
			return i, x
		}
		i++
	}
	var zero T
	return -1, zero
}
