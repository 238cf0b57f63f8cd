// Package brick provides the element-wise building blocks that patterns are
// composed of.
//
// Every brick comes in two forms. The serial form processes one element at a
// time, in order, and has exactly the semantics of the corresponding
// sequential algorithm. The vectorized form processes the input in blocks of
// lanes.Of[T]() elements: it first evaluates the user function for a whole
// block into a mask, and only then inspects the mask. The vectorized form
// therefore may evaluate the user function for elements past the one that
// decides the result, and in a different order, but it always produces the
// same result as the serial form.
//
// Brick functions select the form with their vector argument. Bricks that
// patterns accept from users implement the Brick interface instead.
//
// Bricks that search return len(s) when nothing is found. Patterns translate
// that to -1.
package brick

import "github.com/exascience/pstl/lanes"

// A Brick is an operation over an index range that has a serial and a
// vectorized form. Both forms must produce the same result.
type Brick[R any] interface {
	ApplySerial(low, high int) R
	ApplyVector(low, high int) R
}

// Func adapts a pair of range functions to the Brick interface. If Vector is
// nil, Serial is used for both forms.
type Func[R any] struct {
	Serial func(low, high int) R
	Vector func(low, high int) R
}

// ApplySerial implements the method of the Brick interface.
func (f Func[R]) ApplySerial(low, high int) R {
	return f.Serial(low, high)
}

// ApplyVector implements the method of the Brick interface.
func (f Func[R]) ApplyVector(low, high int) R {
	if f.Vector == nil {
		return f.Serial(low, high)
	}
	return f.Vector(low, high)
}

// Run applies the vectorized form of b to the range if vector is true, and
// the serial form otherwise.
func Run[R any](b Brick[R], low, high int, vector bool) R {
	if vector {
		return b.ApplyVector(low, high)
	}
	return b.ApplySerial(low, high)
}

// mask holds the predicate results of one block.
type mask [lanes.Max]bool

// fill evaluates pred for every index of the block starting at base, and
// returns the number of true results.
func (m *mask) fill(base, n int, pred func(i int) bool) (count int) {
	for j := 0; j < n; j++ {
		b := pred(base + j)
		m[j] = b
		if b {
			count++
		}
	}
	return
}

// first returns the index of the first true entry among the first n, or n.
func (m *mask) first(n int) int {
	for j := 0; j < n; j++ {
		if m[j] {
			return j
		}
	}
	return n
}

// last returns the index of the last true entry among the first n, or -1.
func (m *mask) last(n int) int {
	for j := n - 1; j >= 0; j-- {
		if m[j] {
			return j
		}
	}
	return -1
}
