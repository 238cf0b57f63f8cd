package sort

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/exascience/pstl/config"
	"github.com/exascience/pstl/executor"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/storage"
)

func makeRandomSlice(size, limit int) []int {
	result := make([]int, size)
	for i := 0; i < size; i++ {
		result[i] = rand.Intn(limit)
	}
	return result
}

func intLess(i, j int) bool { return i < j }

func policies() map[string]policy.Policy {
	return map[string]policy.Policy{
		"seq":       policy.Seq,
		"par":       policy.Par,
		"par/1":     policy.Par.WithExecutor(executor.NewForkJoin(1)),
		"exhausted": policy.Par.WithStorage(storage.Exhausted),
	}
}

func TestSort(t *testing.T) {
	orgSlice := makeRandomSlice(100*0x600, 100*100*0x600)
	s1 := make([]int, len(orgSlice))
	copy(s1, orgSlice)
	sort.Ints(s1)

	for name, p := range policies() {
		t.Run(name, func(t *testing.T) {
			t.Run("ParallelStableSort", func(t *testing.T) {
				s2 := append([]int(nil), orgSlice...)
				StableSort(p, s2, intLess)
				if !reflect.DeepEqual(s1, s2) {
					t.Errorf("Parallel stable sort incorrect.")
				}
			})

			t.Run("ParallelSort", func(t *testing.T) {
				s3 := append([]int(nil), orgSlice...)
				Sort(p, s3, intLess)
				if !reflect.DeepEqual(s1, s3) {
					t.Errorf("Parallel sort incorrect.")
				}
			})
		})
	}
}

type record struct{ key, seq int }

func TestStableSortIsStable(t *testing.T) {
	previous := config.Set(config.Config{SortCutoff: 16, MergeCutoff: 16})
	defer config.Set(previous)

	keys := makeRandomSlice(50000, 20)
	s := make([]record, len(keys))
	for i, k := range keys {
		s[i] = record{k, i}
	}
	StableSort(policy.Par, s, func(x, y record) bool { return x.key < y.key })
	for i := 1; i < len(s); i++ {
		if s[i].key < s[i-1].key || (s[i].key == s[i-1].key && s[i].seq < s[i-1].seq) {
			t.Fatalf("not stable at %d: %v %v", i, s[i-1], s[i])
		}
	}
}

func TestMerge(t *testing.T) {
	previous := config.Set(config.Config{MergeCutoff: 8})
	defer config.Set(previous)

	for _, sizes := range [][2]int{{0, 0}, {0, 100}, {100, 0}, {1, 1000}, {1000, 1}, {5000, 3000}} {
		a := makeRandomSlice(sizes[0], 50)
		b := makeRandomSlice(sizes[1], 50)
		sort.Ints(a)
		sort.Ints(b)
		as := make([]record, len(a))
		for i, x := range a {
			as[i] = record{x, 0}
		}
		bs := make([]record, len(b))
		for i, x := range b {
			bs[i] = record{x, 1}
		}
		want := make([]record, len(a)+len(b))
		sMerge(as, bs, want, func(x, y record) bool { return x.key < y.key })
		for name, p := range policies() {
			dst := make([]record, len(a)+len(b))
			Merge(p, as, bs, dst, func(x, y record) bool { return x.key < y.key })
			if !reflect.DeepEqual(want, dst) {
				t.Errorf("%s: Merge(%d, %d) incorrect", name, sizes[0], sizes[1])
			}
		}
		for i := 1; i < len(want); i++ {
			if want[i].key < want[i-1].key || (want[i].key == want[i-1].key && want[i].seq < want[i-1].seq) {
				t.Fatalf("sequential merge not stable at %d", i)
			}
		}
	}
}

func TestIsSorted(t *testing.T) {
	s := make([]int, 100000)
	for i := range s {
		s[i] = i
	}
	for name, p := range policies() {
		if !IsSorted(p, s, intLess) || IsSortedUntil(p, s, intLess) != len(s) {
			t.Errorf("%s: sorted slice reported unsorted", name)
		}
		for _, k := range []int{1, 5, 9, 10, 11, 5000, len(s) - 1} {
			s[k] = -1
			if IsSorted(p, s, intLess) {
				t.Errorf("%s: unsorted slice at %d reported sorted", name, k)
			}
			if got := IsSortedUntil(p, s, intLess); got != k {
				t.Errorf("%s: IsSortedUntil = %d, want %d", name, got, k)
			}
			s[k] = k
		}
	}
	if !IsSorted(policy.Par, []int(nil), intLess) || IsSortedUntil(policy.Par, []int{}, intLess) != 0 {
		t.Error("empty slices are sorted")
	}
}

func BenchmarkSort(b *testing.B) {
	orgSlice := makeRandomSlice(100*0x6000, 100*100*0x6000)
	s1 := make([]int, len(orgSlice))

	b.Run("SequentialSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s1, orgSlice)
			b.StartTimer()
			SequentialSort(s1, intLess)
		}
	})

	b.Run("ParallelStableSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s1, orgSlice)
			b.StartTimer()
			StableSort(policy.Par, s1, intLess)
		}
	})

	b.Run("ParallelSort", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			copy(s1, orgSlice)
			b.StartTimer()
			Sort(policy.Par, s1, intLess)
		}
	})
}
