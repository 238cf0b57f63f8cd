package internal

import (
	"errors"
	"io"
	"runtime"
	"strings"
	"testing"
)

func TestComputeNofBatches(t *testing.T) {
	tests := []struct {
		low, high, n, workers int
		want                  int
	}{
		{0, 0, 0, 4, 1},
		{0, 100, 0, 4, 8},
		{0, 5, 0, 4, 5},
		{10, 20, 3, 4, 3},
		{0, 2, 7, 4, 2},
	}
	for _, tt := range tests {
		if got := ComputeNofBatches(tt.low, tt.high, tt.n, tt.workers); got != tt.want {
			t.Errorf("ComputeNofBatches(%v, %v, %v, %v) = %v, want %v",
				tt.low, tt.high, tt.n, tt.workers, got, tt.want)
		}
	}
}

func TestComputeNofBatchesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for an inverted range")
		}
	}()
	ComputeNofBatches(5, 1, 0, 1)
}

func TestComputeNofBatchesForGrain(t *testing.T) {
	tests := []struct{ low, high, grain, want int }{
		{0, 0, 10, 1},
		{0, 10, 10, 1},
		{0, 11, 10, 2},
		{0, 100, 0, 100},
		{3, 9, 2, 3},
	}
	for _, tt := range tests {
		if got := ComputeNofBatchesForGrain(tt.low, tt.high, tt.grain); got != tt.want {
			t.Errorf("ComputeNofBatchesForGrain(%v, %v, %v) = %v, want %v",
				tt.low, tt.high, tt.grain, got, tt.want)
		}
	}
}

func TestWrapPanic(t *testing.T) {
	if WrapPanic(nil) != nil {
		t.Error("WrapPanic(nil) should be nil")
	}

	wrapped, ok := WrapPanic(io.EOF).(error)
	if !ok {
		t.Fatal("wrapped error panic is not an error")
	}
	if !errors.Is(wrapped, io.EOF) {
		t.Error("wrapped error lost its identity")
	}
	if !strings.Contains(wrapped.Error(), "rethrown at") {
		t.Error("wrapped error carries no stack trace")
	}

	var rerr runtime.Error
	func() {
		defer func() {
			p := WrapPanic(recover())
			rerr, _ = p.(runtime.Error)
		}()
		var s []int
		_ = s[3]
	}()
	if rerr == nil {
		t.Error("runtime error panic is no longer a runtime.Error")
	}

	if s, ok := WrapPanic("boom").(string); !ok || !strings.HasPrefix(s, "boom\n") {
		t.Errorf("unexpected wrapping of a string panic: %v", s)
	}
}
