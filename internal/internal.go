package internal

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// ComputeNofBatches divides the size of the range (high - low) into a number
// of batches. If n is 0, a default is used that takes the given number of
// workers into account, or runtime.GOMAXPROCS(0) if workers is not positive.
func ComputeNofBatches(low, high, n, workers int) (batches int) {
	switch size := high - low; {
	case size > 0:
		switch {
		case n == 0:
			if workers <= 0 {
				workers = runtime.GOMAXPROCS(0)
			}
			batches = 2 * workers
		case n > 0:
			batches = n
		default:
			panic(fmt.Sprintf("invalid number of batches: %v", n))
		}
		if batches > size {
			batches = size
		}
	case size == 0:
		batches = 1
	default:
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return
}

// ComputeNofBatchesForGrain returns the number of batches needed so that no
// batch is larger than grain. A grain below 1 is treated as 1.
func ComputeNofBatchesForGrain(low, high, grain int) int {
	size := high - low
	if size < 0 {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if size == 0 {
		return 1
	}
	if grain < 1 {
		grain = 1
	}
	return (size-1)/grain + 1
}

type runtimeError struct{ error }

func (runtimeError) RuntimeError() {}

func (e runtimeError) Unwrap() error { return e.error }

// WrapPanic adds stack trace information to a recovered panic. Error values
// stay inspectable with errors.Is and errors.As, and runtime errors remain
// runtime errors.
func WrapPanic(p interface{}) interface{} {
	if p != nil {
		if err, isError := p.(error); isError {
			wrapped := fmt.Errorf("%w\n%s\nrethrown at", err, debug.Stack())
			if _, isRuntimeError := p.(runtime.Error); isRuntimeError {
				return runtimeError{wrapped}
			}
			return wrapped
		}
		return fmt.Sprintf("%v\n%s\nrethrown at", p, debug.Stack())
	}
	return nil
}

// CheckRange panics if low:high does not describe a valid range.
func CheckRange(low, high int) {
	if (low < 0) || (high < low) {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
}
