package executor

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exascience/pstl/config"
)

func executors() map[string]Executor {
	return map[string]Executor{
		"forkjoin":   NewForkJoin(4),
		"single":     NewForkJoin(1),
		"sequential": Sequential{},
	}
}

func TestForCoversRange(t *testing.T) {
	for name, ex := range executors() {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{1, 2, 7, 100, 1000, 4097} {
				for _, grain := range []int{1, 3, 64, 10000} {
					hits := make([]int32, n)
					ex.For(context.Background(), 0, n, grain, func(low, high int) {
						assert.LessOrEqual(t, high-low, grain)
						assert.Less(t, low, high)
						for i := low; i < high; i++ {
							atomic.AddInt32(&hits[i], 1)
						}
					})
					for i, h := range hits {
						require.EqualValuesf(t, 1, h, "n=%d grain=%d index %d", n, grain, i)
					}
				}
			}
		})
	}
}

func TestForEmptyRange(t *testing.T) {
	for name, ex := range executors() {
		t.Run(name, func(t *testing.T) {
			ex.For(context.Background(), 5, 5, 1, func(int, int) {
				t.Fatal("body invoked for an empty range")
			})
			require.Panics(t, func() {
				ex.For(context.Background(), 5, 4, 1, func(int, int) {})
			})
		})
	}
}

func TestForDefaultGrain(t *testing.T) {
	var calls atomic.Int32
	NewForkJoin(4).For(context.Background(), 0, 100, 0, func(int, int) {
		calls.Add(1)
	})
	require.EqualValues(t, 8, calls.Load())

	calls.Store(0)
	Sequential{}.For(context.Background(), 0, 100, -1, func(int, int) {
		calls.Add(1)
	})
	require.EqualValues(t, 2, calls.Load())

	sum := Reduce(NewForkJoin(3), 0, 4, 0, 0,
		func(low, high int, acc int) int { return acc + high - low },
		func(x, y int) int { return x + y },
	)
	require.Equal(t, 4, sum)
}

func TestForCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	NewForkJoin(4).For(ctx, 0, 1000, 1, func(int, int) {
		calls.Add(1)
	})
	require.Zero(t, calls.Load())
}

func TestReduce(t *testing.T) {
	for name, ex := range executors() {
		t.Run(name, func(t *testing.T) {
			sum := Reduce(ex, 0, 10001, 7, 0,
				func(low, high int, acc int) int {
					for i := low; i < high; i++ {
						acc += i
					}
					return acc
				},
				func(x, y int) int { return x + y })
			require.Equal(t, 10000*10001/2, sum)

			// Concatenation is associative but not commutative.
			s := Reduce(ex, 0, 26, 2, "",
				func(low, high int, acc string) string {
					for i := low; i < high; i++ {
						acc += string(rune('a' + i))
					}
					return acc
				},
				func(x, y string) string { return x + y })
			require.Equal(t, "abcdefghijklmnopqrstuvwxyz", s)

			require.Equal(t, 42, Reduce(ex, 3, 3, 1, 42,
				func(int, int, int) int { panic("unreachable") },
				func(int, int) int { panic("unreachable") }))
		})
	}
}

func TestInvokePanics(t *testing.T) {
	ex := NewForkJoin(4)
	errBoom := errors.New("boom")
	defer func() {
		p := recover()
		require.NotNil(t, p)
		err, ok := p.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, errBoom)
	}()
	var ran atomic.Int32
	ex.Invoke(
		func() { ran.Add(1) },
		func() { panic(errBoom) },
		func() { ran.Add(1) },
	)
	t.Fatal("panic was not propagated")
}

func TestInvokeLeftmostPanicWins(t *testing.T) {
	ex := NewForkJoin(2)
	defer func() {
		p := recover()
		require.NotNil(t, p)
		require.True(t, strings.HasPrefix(p.(string), "left"))
	}()
	ex.Invoke(
		func() { panic("left") },
		func() { panic("right") },
	)
}

func TestConcurrency(t *testing.T) {
	require.Equal(t, 3, NewForkJoin(3).Concurrency())
	require.Positive(t, NewForkJoin(0).Concurrency())
	require.Equal(t, 1, Sequential{}.Concurrency())
	require.NotNil(t, Default())
}

func TestDefaultFollowsConfig(t *testing.T) {
	previous := config.Set(config.Config{Workers: 3})
	defer config.Set(previous)
	ex := Default()
	require.Equal(t, 3, ex.Concurrency())
	require.Same(t, ex, Default())

	config.Set(config.Config{Workers: 5})
	require.Equal(t, 5, Default().Concurrency())
}

func TestOffloadFunc(t *testing.T) {
	var sum int
	OffloadFunc(func(n int, body func(int)) {
		for i := 0; i < n; i++ {
			body(i)
		}
	}).ParallelFor(5, func(i int) { sum += i })
	require.Equal(t, 10, sum)
}
