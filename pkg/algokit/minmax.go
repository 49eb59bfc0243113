package algokit

import (
	"cmp"

	"go.llib.dev/prelude/pkg/compare"
)

// Min returns the smaller of a and b, preferring a when they are equal.
func Min[E cmp.Ordered](a, b E) E {
	return MinFunc(a, b, compare.Ordered[E])
}

func MinFunc[E any](a, b E, fn func(a, b E) int) E {
	if fn(b, a) < 0 {
		return b
	}
	return a
}

// Max returns the greater of a and b, preferring a when they are equal.
func Max[E cmp.Ordered](a, b E) E {
	return MaxFunc(a, b, compare.Ordered[E])
}

func MaxFunc[E any](a, b E, fn func(a, b E) int) E {
	if fn(a, b) < 0 {
		return b
	}
	return a
}

// MinMax returns a and b in ascending order, keeping their order when they are equal.
func MinMax[E cmp.Ordered](a, b E) (E, E) {
	return MinMaxFunc(a, b, compare.Ordered[E])
}

func MinMaxFunc[E any](a, b E, fn func(a, b E) int) (E, E) {
	if fn(b, a) < 0 {
		return b, a
	}
	return a, b
}

// MinElement returns the index of the first smallest element, or -1 for an empty s.
func MinElement[S ~[]E, E cmp.Ordered](s S) int {
	return MinElementFunc(s, compare.Ordered[E])
}

func MinElementFunc[S ~[]E, E any](s S, fn func(a, b E) int) int {
	if len(s) == 0 {
		return -1
	}
	var m int
	for i := 1; i < len(s); i++ {
		if fn(s[i], s[m]) < 0 {
			m = i
		}
	}
	return m
}

// MaxElement returns the index of the first greatest element, or -1 for an empty s.
func MaxElement[S ~[]E, E cmp.Ordered](s S) int {
	return MaxElementFunc(s, compare.Ordered[E])
}

func MaxElementFunc[S ~[]E, E any](s S, fn func(a, b E) int) int {
	if len(s) == 0 {
		return -1
	}
	var m int
	for i := 1; i < len(s); i++ {
		if fn(s[m], s[i]) < 0 {
			m = i
		}
	}
	return m
}

// MinMaxElement returns the index of the first smallest and the last greatest element.
// Both are -1 for an empty s.
func MinMaxElement[S ~[]E, E cmp.Ordered](s S) (int, int) {
	return MinMaxElementFunc(s, compare.Ordered[E])
}

func MinMaxElementFunc[S ~[]E, E any](s S, fn func(a, b E) int) (int, int) {
	if len(s) == 0 {
		return -1, -1
	}
	var lo, hi int
	for i := 1; i < len(s); i++ {
		if fn(s[i], s[lo]) < 0 {
			lo = i
		}
		if 0 <= fn(s[i], s[hi]) {
			hi = i
		}
	}
	return lo, hi
}
