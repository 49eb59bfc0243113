package algokit

import (
	"cmp"
	"slices"

	"go.llib.dev/prelude/pkg/compare"
)

func Sort[S ~[]E, E cmp.Ordered](s S) {
	slices.Sort(s)
}

func SortFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	slices.SortFunc(s, fn)
}

// StableSort sorts s in ascending order, keeping the order of equal elements.
func StableSort[S ~[]E, E cmp.Ordered](s S) {
	slices.SortStableFunc(s, compare.Ordered[E])
}

func StableSortFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	slices.SortStableFunc(s, fn)
}

// PartialSort puts the middle smallest elements of s in ascending order into s[:middle].
// The order of the remaining elements is unspecified.
func PartialSort[S ~[]E, E cmp.Ordered](s S, middle int) {
	PartialSortFunc(s, middle, compare.Ordered[E])
}

func PartialSortFunc[S ~[]E, E any](s S, middle int, fn func(a, b E) int) {
	middle = max(0, min(middle, len(s)))
	head := s[:middle]
	MakeHeapFunc(head, fn)
	for i := middle; i < len(s); i++ {
		if 0 < middle && fn(s[i], head[0]) < 0 {
			head[0], s[i] = s[i], head[0]
			siftDown(head, 0, middle, fn)
		}
	}
	SortHeapFunc(head, fn)
}

// PartialSortCopy copies the smallest elements of src into dst in ascending order.
// It returns the number of elements written, which is the smaller of the two lengths.
func PartialSortCopy[S ~[]E, E cmp.Ordered](dst, src S) int {
	return PartialSortCopyFunc(dst, src, compare.Ordered[E])
}

func PartialSortCopyFunc[S ~[]E, E any](dst, src S, fn func(a, b E) int) int {
	n := copy(dst, src)
	head := dst[:n]
	MakeHeapFunc(head, fn)
	for _, v := range src[n:] {
		if 0 < n && fn(v, head[0]) < 0 {
			head[0] = v
			siftDown(head, 0, n, fn)
		}
	}
	SortHeapFunc(head, fn)
	return n
}

// NthElement reorders s so that s[n] holds the element that would be there if s was sorted.
// Elements before n are not greater, and elements after n are not less than s[n].
func NthElement[S ~[]E, E cmp.Ordered](s S, n int) {
	NthElementFunc(s, n, compare.Ordered[E])
}

func NthElementFunc[S ~[]E, E any](s S, n int, fn func(a, b E) int) {
	if n < 0 || len(s) <= n {
		return
	}
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partitionAround(s, lo, hi, fn)
		switch {
		case n == p:
			return
		case n < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partitionAround partitions s[lo:hi+1] around its middle element and returns the pivot's final index.
func partitionAround[S ~[]E, E any](s S, lo, hi int, fn func(a, b E) int) int {
	mid := lo + (hi-lo)/2
	s[mid], s[hi] = s[hi], s[mid]
	store := lo
	for i := lo; i < hi; i++ {
		if fn(s[i], s[hi]) < 0 {
			s[i], s[store] = s[store], s[i]
			store++
		}
	}
	s[store], s[hi] = s[hi], s[store]
	return store
}

func IsSorted[S ~[]E, E cmp.Ordered](s S) bool {
	return slices.IsSorted(s)
}

func IsSortedFunc[S ~[]E, E any](s S, fn func(a, b E) int) bool {
	return slices.IsSortedFunc(s, fn)
}

// IsSortedUntil returns the length of the longest sorted prefix of s.
func IsSortedUntil[S ~[]E, E cmp.Ordered](s S) int {
	return IsSortedUntilFunc(s, compare.Ordered[E])
}

func IsSortedUntilFunc[S ~[]E, E any](s S, fn func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if fn(s[i], s[i-1]) < 0 {
			return i
		}
	}
	return len(s)
}
