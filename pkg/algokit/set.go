package algokit

import (
	"cmp"

	"go.llib.dev/prelude/pkg/compare"
)

// The set functions work on sorted slices with multiset semantics:
// an element present m times in a and n times in b is treated as m and n separate members.

// Merge appends the sorted union of a and b, duplicates included, to dst.
// Equal elements of a precede those of b.
func Merge[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return MergeFunc(dst, a, b, compare.Ordered[E])
}

func MergeFunc[S ~[]E, E any](dst, a, b S, fn func(a, b E) int) S {
	var i, j int
	for i < len(a) && j < len(b) {
		if fn(b[j], a[i]) < 0 {
			dst = append(dst, b[j])
			j++
		} else {
			dst = append(dst, a[i])
			i++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// InplaceMerge merges the sorted s[:mid] and s[mid:] into one sorted s.
func InplaceMerge[S ~[]E, E cmp.Ordered](s S, mid int) {
	InplaceMergeFunc(s, mid, compare.Ordered[E])
}

func InplaceMergeFunc[S ~[]E, E any](s S, mid int, fn func(a, b E) int) {
	if mid <= 0 || len(s) <= mid {
		return
	}
	left := append(make(S, 0, mid), s[:mid]...)
	merged := MergeFunc(s[:0:0], left, s[mid:], fn)
	copy(s, merged)
}

// Includes reports whether every member of the sorted b is a member of the sorted a.
func Includes[S ~[]E, E cmp.Ordered](a, b S) bool {
	return IncludesFunc(a, b, compare.Ordered[E])
}

func IncludesFunc[S ~[]E, E any](a, b S, fn func(a, b E) int) bool {
	var i int
	for _, v := range b {
		for i < len(a) && fn(a[i], v) < 0 {
			i++
		}
		if len(a) <= i || fn(v, a[i]) < 0 {
			return false
		}
		i++
	}
	return true
}

// SetUnion appends the members of a or b to dst.
func SetUnion[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetUnionFunc(dst, a, b, compare.Ordered[E])
}

func SetUnionFunc[S ~[]E, E any](dst, a, b S, fn func(a, b E) int) S {
	var i, j int
	for i < len(a) && j < len(b) {
		switch c := fn(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case 0 < c:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// SetIntersection appends the members of both a and b to dst.
func SetIntersection[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetIntersectionFunc(dst, a, b, compare.Ordered[E])
}

func SetIntersectionFunc[S ~[]E, E any](dst, a, b S, fn func(a, b E) int) S {
	var i, j int
	for i < len(a) && j < len(b) {
		switch c := fn(a[i], b[j]); {
		case c < 0:
			i++
		case 0 < c:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	return dst
}

// SetDifference appends the members of a that are not members of b to dst.
func SetDifference[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetDifferenceFunc(dst, a, b, compare.Ordered[E])
}

func SetDifferenceFunc[S ~[]E, E any](dst, a, b S, fn func(a, b E) int) S {
	var i, j int
	for i < len(a) && j < len(b) {
		switch c := fn(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case 0 < c:
			j++
		default:
			i++
			j++
		}
	}
	return append(dst, a[i:]...)
}

// SetSymmetricDifference appends the members of exactly one of a and b to dst.
func SetSymmetricDifference[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetSymmetricDifferenceFunc(dst, a, b, compare.Ordered[E])
}

func SetSymmetricDifferenceFunc[S ~[]E, E any](dst, a, b S, fn func(a, b E) int) S {
	var i, j int
	for i < len(a) && j < len(b) {
		switch c := fn(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case 0 < c:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}
