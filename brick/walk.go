package brick

import "github.com/exascience/pstl/lanes"

// Walk1 invokes f for a pointer to every element of s.
func Walk1[T any](s []T, f func(*T), vector bool) {
	if !vector {
		for i := range s {
			f(&s[i])
		}
		return
	}
	n := len(s)
	l := lanes.Of[T]()
	i := 0
	for ; i+l <= n; i += l {
		block := s[i : i+l : i+l]
		for j := range block {
			f(&block[j])
		}
	}
	for ; i < n; i++ {
		f(&s[i])
	}
}

// Walk2 invokes f for pointers to the corresponding elements of a and b, up
// to the length of the shorter slice.
func Walk2[T, U any](a []T, b []U, f func(*T, *U), vector bool) {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]
	if !vector {
		for i := range a {
			f(&a[i], &b[i])
		}
		return
	}
	l := min(lanes.Of[T](), lanes.Of[U]())
	i := 0
	for ; i+l <= n; i += l {
		ba, bb := a[i:i+l:i+l], b[i:i+l:i+l]
		for j := range ba {
			f(&ba[j], &bb[j])
		}
	}
	for ; i < n; i++ {
		f(&a[i], &b[i])
	}
}

// Walk3 invokes f for pointers to the corresponding elements of a, b and c,
// up to the length of the shortest slice.
func Walk3[T, U, V any](a []T, b []U, c []V, f func(*T, *U, *V), vector bool) {
	n := min(len(a), len(b), len(c))
	a, b, c = a[:n], b[:n], c[:n]
	if !vector {
		for i := range a {
			f(&a[i], &b[i], &c[i])
		}
		return
	}
	l := min(lanes.Of[T](), lanes.Of[U](), lanes.Of[V]())
	i := 0
	for ; i+l <= n; i += l {
		ba, bb, bc := a[i:i+l:i+l], b[i:i+l:i+l], c[i:i+l:i+l]
		for j := range ba {
			f(&ba[j], &bb[j], &bc[j])
		}
	}
	for ; i < n; i++ {
		f(&a[i], &b[i], &c[i])
	}
}

// WalkIndex invokes f for every index in [low, high).
func WalkIndex(low, high int, f func(i int), vector bool) {
	if !vector {
		for i := low; i < high; i++ {
			f(i)
		}
		return
	}
	l := lanes.Min
	i := low
	for ; i+l <= high; i += l {
		f(i)
		f(i + 1)
		f(i + 2)
		f(i + 3)
	}
	for ; i < high; i++ {
		f(i)
	}
}

// Transform stores f(src[i]) into dst[i], up to the length of the shorter
// slice.
func Transform[T, U any](src []T, dst []U, f func(T) U, vector bool) {
	Walk2(src, dst, func(x *T, y *U) { *y = f(*x) }, vector)
}

// Transform2 stores f(a[i], b[i]) into dst[i], up to the length of the
// shortest slice.
func Transform2[T, U, V any](a []T, b []U, dst []V, f func(T, U) V, vector bool) {
	Walk3(a, b, dst, func(x *T, y *U, z *V) { *z = f(*x, *y) }, vector)
}
