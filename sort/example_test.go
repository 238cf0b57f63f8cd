// Copyright 2011 The Go Authors. All rights reserved. Use of this source code
// is governed by a BSD-style license that can be found in the LICENSE file.

// Adapted by Pascal Costanza for the Pargo package.

package sort_test

import (
	"fmt"

	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/sort"
)

type Person struct {
	Name string
	Age  int
}

func (p Person) String() string {
	return fmt.Sprintf("%s: %d", p.Name, p.Age)
}

func byAge(a, b Person) bool { return a.Age < b.Age }

func Example() {
	people := []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
	}

	fmt.Println(people)
	sort.Sort(policy.Par, people, byAge)
	fmt.Println(people)

	people = []Person{
		{"Bob", 31},
		{"John", 42},
		{"Michael", 17},
		{"Jenny", 26},
	}

	fmt.Println(people)
	sort.StableSort(policy.Par, people, byAge)
	fmt.Println(people)

	// Output:
	// [Bob: 31 John: 42 Michael: 17 Jenny: 26]
	// [Michael: 17 Jenny: 26 Bob: 31 John: 42]
	// [Bob: 31 John: 42 Michael: 17 Jenny: 26]
	// [Michael: 17 Jenny: 26 Bob: 31 John: 42]
}

func ExampleMerge() {
	a := []int{1, 3, 5}
	b := []int{2, 4, 6}
	dst := make([]int, len(a)+len(b))
	sort.Merge(policy.Par, a, b, dst, func(x, y int) bool { return x < y })
	fmt.Println(dst)

	// Output:
	// [1 2 3 4 5 6]
}
