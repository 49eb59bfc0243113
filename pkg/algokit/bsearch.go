package algokit

import (
	"cmp"
	"sort"

	"go.llib.dev/prelude/pkg/compare"
)

// LowerBound returns the index of the first element of the sorted s that is not less than v.
func LowerBound[S ~[]E, E cmp.Ordered](s S, v E) int {
	return LowerBoundFunc(s, v, compare.Ordered[E])
}

func LowerBoundFunc[S ~[]E, E any](s S, v E, fn func(a, b E) int) int {
	return sort.Search(len(s), func(i int) bool { return 0 <= fn(s[i], v) })
}

// UpperBound returns the index of the first element of the sorted s that is greater than v.
func UpperBound[S ~[]E, E cmp.Ordered](s S, v E) int {
	return UpperBoundFunc(s, v, compare.Ordered[E])
}

func UpperBoundFunc[S ~[]E, E any](s S, v E, fn func(a, b E) int) int {
	return sort.Search(len(s), func(i int) bool { return 0 < fn(s[i], v) })
}

// EqualRange returns the half-open index range of the elements equal to v.
func EqualRange[S ~[]E, E cmp.Ordered](s S, v E) (int, int) {
	return EqualRangeFunc(s, v, compare.Ordered[E])
}

func EqualRangeFunc[S ~[]E, E any](s S, v E, fn func(a, b E) int) (int, int) {
	return LowerBoundFunc(s, v, fn), UpperBoundFunc(s, v, fn)
}

// BinarySearch reports whether the sorted s holds an element equal to v.
func BinarySearch[S ~[]E, E cmp.Ordered](s S, v E) bool {
	return BinarySearchFunc(s, v, compare.Ordered[E])
}

func BinarySearchFunc[S ~[]E, E any](s S, v E, fn func(a, b E) int) bool {
	i := LowerBoundFunc(s, v, fn)
	return i < len(s) && fn(s[i], v) == 0
}
