package executor_test

import (
	"context"
	"fmt"

	"github.com/exascience/pstl/executor"
)

func ExampleExecutor_Invoke() {
	var fib func(int) int
	fib = func(n int) int {
		if n < 2 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}

	ex := executor.NewForkJoin(0)

	var parallelFib func(int) int
	parallelFib = func(n int) int {
		if n < 20 {
			return fib(n)
		}
		var n1, n2 int
		ex.Invoke(
			func() { n1 = parallelFib(n - 1) },
			func() { n2 = parallelFib(n - 2) },
		)
		return n1 + n2
	}

	fmt.Println(parallelFib(30))

	// Output:
	// 832040
}

func numDivisors(ex executor.Executor, n int) int {
	return executor.Reduce(
		ex, 1, n+1, 16, 0,
		func(low, high int, sum int) int {
			for i := low; i < high; i++ {
				if (n % i) == 0 {
					sum++
				}
			}
			return sum
		},
		func(x, y int) int { return x + y },
	)
}

func ExampleReduce() {
	fmt.Println(numDivisors(executor.Default(), 12))

	// Output:
	// 6
}

func ExampleReduce_primes() {
	ex := executor.Default()
	findPrimes := func(n int) []int {
		return executor.Reduce(
			ex, 2, n, 4, nil,
			func(low, high int, primes []int) []int {
				for i := low; i < high; i++ {
					if numDivisors(ex, i) == 2 {
						primes = append(primes, i)
					}
				}
				return primes
			},
			func(x, y []int) []int {
				return append(x, y...)
			},
		)
	}

	fmt.Println(findPrimes(20))

	// Output:
	// [2 3 5 7 11 13 17 19]
}

func ExampleExecutor_For() {
	f := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	ex := executor.Default()
	ex.For(context.Background(), 0, len(f), 3, func(low, high int) {
		for i := low; i < high; i++ {
			f[i] *= f[i]
		}
	})
	fmt.Println(f)

	// Output:
	// [1 4 9 16 25 36 49 64 81 100]
}
