// Package storage provides the scratch memory that patterns borrow for masks,
// staging buffers and per-tile partial results.
//
// Acquiring scratch memory may fail. Failure is reported by a false result,
// never by a panic, so that a pattern can fall back to a serial code path that
// needs no scratch memory at all.
package storage

import (
	"sync/atomic"
	"unsafe"

	"github.com/exascience/pstl/config"
)

// A Provider hands out scratch memory budgets.
type Provider interface {
	// Reserve attempts to reserve the given number of bytes, and reports
	// whether it succeeded.
	Reserve(bytes int64) bool

	// Release returns a reservation previously made with Reserve.
	Release(bytes int64)
}

// Budget is a Provider that allows at most a fixed number of bytes to be
// reserved at the same time. A Budget with a limit of 0 never refuses.
type Budget struct {
	limit int64
	used  atomic.Int64
}

// NewBudget returns a Budget with the given limit in bytes.
func NewBudget(limit int64) *Budget {
	if limit < 0 {
		limit = 0
	}
	return &Budget{limit: limit}
}

// Reserve implements the method of the Provider interface.
func (b *Budget) Reserve(bytes int64) bool {
	if bytes < 0 {
		return false
	}
	if b.limit == 0 {
		b.used.Add(bytes)
		return true
	}
	for {
		used := b.used.Load()
		if used+bytes > b.limit {
			return false
		}
		if b.used.CompareAndSwap(used, used+bytes) {
			return true
		}
	}
}

// Release implements the method of the Provider interface.
func (b *Budget) Release(bytes int64) {
	b.used.Add(-bytes)
}

// InUse returns the number of bytes currently reserved.
func (b *Budget) InUse() int64 {
	return b.used.Load()
}

type exhausted struct{}

func (exhausted) Reserve(int64) bool { return false }
func (exhausted) Release(int64)      {}

// Exhausted is a Provider that refuses every reservation. It forces patterns
// onto their serial fallback paths.
var Exhausted Provider = exhausted{}

type unlimited struct{}

func (unlimited) Reserve(bytes int64) bool { return bytes >= 0 }
func (unlimited) Release(int64)            {}

// Unlimited is a Provider that grants every reservation without accounting.
var Unlimited Provider = unlimited{}

var defaultProvider atomic.Pointer[Budget]

// Default returns the process-wide provider, a Budget limited by
// config.Default().ScratchLimit. A new Budget replaces it when a later
// config.Set changes the limit; buffers acquired from the old one still
// release into it.
func Default() Provider {
	limit := config.Default().ScratchLimit
	for {
		b := defaultProvider.Load()
		if b != nil && b.limit == limit {
			return b
		}
		if next := NewBudget(limit); defaultProvider.CompareAndSwap(b, next) {
			return next
		}
	}
}

// A Buffer is scratch storage for n elements of type T. Its slots start out
// as zero values. Release zeroes them again, so that the buffer keeps no
// references alive, and returns the reservation to the provider.
type Buffer[T any] struct {
	data     []T
	provider Provider
	bytes    int64
}

// Acquire reserves and allocates scratch storage for n elements. It reports
// false if the provider refuses the reservation; the returned buffer is nil
// in that case.
func Acquire[T any](p Provider, n int) (*Buffer[T], bool) {
	if n < 0 {
		return nil, false
	}
	if p == nil {
		p = Default()
	}
	var zero T
	bytes := int64(n) * int64(unsafe.Sizeof(zero))
	if !p.Reserve(bytes) {
		config.Logger().Debug("scratch allocation refused", "elements", n, "bytes", bytes)
		return nil, false
	}
	return &Buffer[T]{data: make([]T, n), provider: p, bytes: bytes}, true
}

// Data returns the buffer's slots. It returns nil after Release.
func (b *Buffer[T]) Data() []T {
	if b == nil {
		return nil
	}
	return b.data
}

// Len returns the number of slots.
func (b *Buffer[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Release destroys the slots and returns the reservation. It is safe to call
// Release more than once, and on a nil buffer.
func (b *Buffer[T]) Release() {
	if b == nil || b.provider == nil {
		return
	}
	clear(b.data)
	b.data = nil
	b.provider.Release(b.bytes)
	b.provider = nil
}
