package pattern

import (
	"slices"
	"sync"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/exascience/pstl/brick"
	"github.com/exascience/pstl/policy"
	"github.com/exascience/pstl/storage"
)

func TestSort(t *testing.T) {
	src := randomInts(20000, 1000, 16)
	want := slices.Clone(src)
	slices.Sort(want)
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		s := slices.Clone(src)
		require.False(t, IsSorted(p, s, less))
		Sort(p, s, less)
		diff(t, want, s)
		require.True(t, IsSorted(p, s, less))
		require.Equal(t, len(s), IsSortedUntil(p, s, less))

		s[12345] = -1
		require.Equal(t, 12345, IsSortedUntil(p, s, less))
		require.False(t, IsSorted(p, s, less))
	})
}

func TestStableSort(t *testing.T) {
	src := items(20000, 100, 17)
	want := slices.Clone(src)
	slices.SortStableFunc(want, func(x, y item) int { return x.key - y.key })
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		s := slices.Clone(src)
		StableSort(p, s, byKey)
		diff(t, want, s)
	})
}

func TestPartialSort(t *testing.T) {
	src := randomInts(5000, 1000, 18)
	want := slices.Clone(src)
	slices.Sort(want)
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		for _, k := range []int{0, 1, 100, 4999, 5000} {
			s := slices.Clone(src)
			PartialSort(p, s, k, less)
			diff(t, want[:k], s[:k])
			require.ElementsMatch(t, src, s)
		}
	})
}

func TestMerge(t *testing.T) {
	a := items(6000, 100, 19)
	b := items(5000, 100, 20)
	slices.SortStableFunc(a, func(x, y item) int { return x.key - y.key })
	slices.SortStableFunc(b, func(x, y item) int { return x.key - y.key })
	want := make([]item, len(a)+len(b))
	brick.Merge(a, b, want, byKey)
	forPolicies(t, func(t *testing.T, p policy.Policy) {
		dst := make([]item, len(a)+len(b))
		require.Equal(t, len(dst), Merge(p, a, b, dst, byKey))
		diff(t, want, dst)

		dst = make([]item, len(a))
		require.Equal(t, len(a), Merge(p, a, nil, dst, byKey))
		diff(t, a, dst)

		s := append(slices.Clone(a), b...)
		InplaceMerge(p, s, len(a), byKey)
		diff(t, want, s)

		s = slices.Clone(a)
		InplaceMerge(p, s, 0, byKey)
		diff(t, a, s)
	})
}

// recordingProvider remembers the sizes of the reservations it grants.
type recordingProvider struct {
	storage.Provider
	mu      sync.Mutex
	granted []int64
}

func (r *recordingProvider) Reserve(bytes int64) bool {
	if !r.Provider.Reserve(bytes) {
		return false
	}
	r.mu.Lock()
	r.granted = append(r.granted, bytes)
	r.mu.Unlock()
	return true
}

func TestInplaceMergeSmallBudget(t *testing.T) {
	a := items(6000, 100, 21)
	b := items(5000, 100, 22)
	slices.SortStableFunc(a, func(x, y item) int { return x.key - y.key })
	slices.SortStableFunc(b, func(x, y item) int { return x.key - y.key })
	want := make([]item, len(a)+len(b))
	brick.Merge(a, b, want, byKey)
	size := int64(unsafe.Sizeof(item{}))
	for _, p := range policy.All {
		t.Run(p.String(), func(t *testing.T) {
			for _, mid := range []int{len(a), len(b)} {
				s := append(slices.Clone(a), b...)
				if mid == len(b) {
					s = append(slices.Clone(b), a...)
					slices.SortStableFunc(s[:mid], func(x, y item) int { return x.key - y.key })
					slices.SortStableFunc(s[mid:], func(x, y item) int { return x.key - y.key })
				}
				expected := make([]item, len(s))
				brick.Merge(s[:mid], s[mid:], expected, byKey)
				short := int64(min(mid, len(s)-mid))
				provider := &recordingProvider{Provider: storage.NewBudget(8000 * size)}
				InplaceMerge(p.WithStorage(provider), s, mid, byKey)
				diff(t, expected, s)
				require.Equal(t, []int64{short * size}, provider.granted)
			}
		})
	}
	s := append(slices.Clone(a), b...)
	InplaceMerge(policy.Par.WithStorage(storage.NewBudget(8000*size)), s, len(a), byKey)
	diff(t, want, s)
}
