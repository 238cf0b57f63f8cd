package pstl

import (
	"fmt"

	"github.com/exascience/pstl/config"
)

type (
	// A Predicate is a function that receives an element and returns a
	// bool.
	Predicate[T any] func(x T) bool

	// A BinaryPredicate is a function that receives two elements and
	// returns a bool, such as an equivalence test.
	BinaryPredicate[T any] func(x, y T) bool

	// A Less is a strict weak ordering of elements.
	Less[T any] func(x, y T) bool

	// A BinaryOp combines two elements into one.
	BinaryOp[T any] func(x, y T) T
)

/*
ComputeEffectiveThreshold determines a grain for the algorithms of
pstl/pattern, to be passed to policy.Policy.WithGrain.

It takes a low and high integer as input, with 0 <= low <= high, as
well as an input threshold designator.

Useful threshold parameter values are 1 to evenly divide up the range
across the configured workers (as determined by config.Default().Workers);
or 2 or higher to additionally divide that number by the threshold
parameter. Use 1 if you expect no load imbalance, between 2 and 10 if you
expect some load imbalance, or 10 or more if you expect even more load
imbalance.

A threshold parameter value of 0 divides up the input range into
subranges of size 1 and yields the most fine-grained parallelism.

A threshold parameter value below zero can be used to specify the
subrange size directly, which becomes the absolute value of the
threshold parameter value.

More specifically:

If the input threshold is > 0, the return value is ceiling((high -
low) / (threshold * config.Default().Workers)).

If the input threshold is == 0, the return value is 1.

If the input threshold is < 0, the return value is abs(threshold).
*/
func ComputeEffectiveThreshold(low, high, threshold int) int {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if threshold > 0 {
		threshold = ((high - low - 1) / (threshold * config.Default().Workers)) + 1
	} else if threshold < 0 {
		return -1 * threshold
	}
	if threshold == 0 {
		threshold = 1
	}
	return threshold
}
