package algokit

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// AllOf reports whether pred holds for every element. It is true for an empty slice.
func AllOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	return lo.EveryBy(s, pred)
}

// AnyOf reports whether pred holds for at least one element.
func AnyOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	return lo.SomeBy(s, pred)
}

// NoneOf reports whether pred holds for no element.
func NoneOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	return lo.NoneBy(s, pred)
}

func ForEach[S ~[]E, E any](s S, fn func(E)) {
	lo.ForEach(s, func(v E, _ int) { fn(v) })
}

// Find returns the index of the first element equal to v, or -1.
func Find[S ~[]E, E comparable](s S, v E) int {
	return slices.Index(s, v)
}

// FindIf returns the index of the first element satisfying pred, or -1.
func FindIf[S ~[]E, E any](s S, pred func(E) bool) int {
	return slices.IndexFunc(s, pred)
}

// FindIfNot returns the index of the first element not satisfying pred, or -1.
func FindIfNot[S ~[]E, E any](s S, pred func(E) bool) int {
	return slices.IndexFunc(s, func(v E) bool { return !pred(v) })
}

// FindEnd returns the index where the last occurrence of sub starts, or -1.
// An empty sub is never found.
func FindEnd[S ~[]E, E comparable](s, sub S) int {
	return FindEndFunc(s, sub, equal[E])
}

func FindEndFunc[S ~[]E, E any](s, sub S, eq func(a, b E) bool) int {
	if len(sub) == 0 || len(s) < len(sub) {
		return -1
	}
	for i := len(s) - len(sub); 0 <= i; i-- {
		if slices.EqualFunc(s[i:i+len(sub)], sub, eq) {
			return i
		}
	}
	return -1
}

// FindFirstOf returns the index of the first element that is equal to any element of set, or -1.
func FindFirstOf[S ~[]E, E comparable](s, set S) int {
	return FindFirstOfFunc(s, set, equal[E])
}

func FindFirstOfFunc[S ~[]E, E any](s, set S, eq func(a, b E) bool) int {
	return slices.IndexFunc(s, func(v E) bool {
		return slices.ContainsFunc(set, func(c E) bool { return eq(v, c) })
	})
}

// AdjacentFind returns the index of the first element that equals its successor, or -1.
func AdjacentFind[S ~[]E, E comparable](s S) int {
	return AdjacentFindFunc(s, equal[E])
}

func AdjacentFindFunc[S ~[]E, E any](s S, eq func(a, b E) bool) int {
	for i := 1; i < len(s); i++ {
		if eq(s[i-1], s[i]) {
			return i - 1
		}
	}
	return -1
}

func Count[S ~[]E, E comparable](s S, v E) int {
	return lo.Count(s, v)
}

func CountIf[S ~[]E, E any](s S, pred func(E) bool) int {
	return lo.CountBy(s, pred)
}

// Mismatch returns the first index where a and b differ.
// When one is the prefix of the other, the length of the shorter one is returned.
func Mismatch[S ~[]E, E comparable](a, b S) int {
	return MismatchFunc(a, b, equal[E])
}

func MismatchFunc[S ~[]E, E any](a, b S, eq func(a, b E) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !eq(a[i], b[i]) {
			return i
		}
	}
	return n
}

func Equal[S ~[]E, E comparable](a, b S) bool {
	return slices.Equal(a, b)
}

func EqualFunc[S ~[]E, E any](a, b S, eq func(a, b E) bool) bool {
	return slices.EqualFunc(a, b, eq)
}

// Search returns the index where the first occurrence of sub starts, or -1.
// An empty sub is found at index 0.
func Search[S ~[]E, E comparable](s, sub S) int {
	return SearchFunc(s, sub, equal[E])
}

func SearchFunc[S ~[]E, E any](s, sub S, eq func(a, b E) bool) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if slices.EqualFunc(s[i:i+len(sub)], sub, eq) {
			return i
		}
	}
	return -1
}

// SearchN returns the index of the first run of n consecutive elements equal to v, or -1.
func SearchN[S ~[]E, E comparable](s S, n int, v E) int {
	if n <= 0 {
		return 0
	}
	var run int
	for i, e := range s {
		if e != v {
			run = 0
			continue
		}
		run++
		if run == n {
			return i - n + 1
		}
	}
	return -1
}

// IsPermutation reports whether b is a reordering of a.
func IsPermutation[S ~[]E, E comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}

func IsPermutationFunc[S ~[]E, E any](a, b S, eq func(a, b E) bool) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
next:
	for _, v := range a {
		for j, o := range b {
			if !used[j] && eq(v, o) {
				used[j] = true
				continue next
			}
		}
		return false
	}
	return true
}

// LexicographicalCompare compares a and b element by element.
func LexicographicalCompare[S ~[]E, E cmp.Ordered](a, b S) int {
	return slices.Compare(a, b)
}

func LexicographicalCompareFunc[S ~[]E, E any](a, b S, fn func(a, b E) int) int {
	return slices.CompareFunc(a, b, fn)
}
