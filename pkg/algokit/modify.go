package algokit

import (
	"math/rand/v2"
	"slices"

	"github.com/samber/lo"
)

// Copy copies src into dst and returns the number of elements copied.
func Copy[S ~[]E, E any](dst, src S) int {
	return copy(dst, src)
}

// CopyIf appends the elements of src satisfying pred to dst.
func CopyIf[S ~[]E, E any](dst, src S, pred func(E) bool) S {
	return append(dst, lo.Filter(src, func(v E, _ int) bool { return pred(v) })...)
}

// CopyN copies at most n elements from src into dst.
func CopyN[S ~[]E, E any](dst, src S, n int) int {
	if n <= 0 {
		return 0
	}
	return copy(dst, src[:min(n, len(src))])
}

// CopyBackward copies the tail of src onto the tail of dst, aligned on their last elements.
func CopyBackward[S ~[]E, E any](dst, src S) int {
	n := min(len(dst), len(src))
	return copy(dst[len(dst)-n:], src[len(src)-n:])
}

// Move copies src into dst and zeroes the moved elements of src.
func Move[S ~[]E, E any](dst, src S) int {
	n := copy(dst, src)
	clear(src[:n])
	return n
}

func Fill[S ~[]E, E any](s S, v E) {
	for i := range s {
		s[i] = v
	}
}

// Generate assigns the successive results of fn to the elements of s.
func Generate[S ~[]E, E any](s S, fn func() E) {
	for i := range s {
		s[i] = fn()
	}
}

// Transform appends fn(v) to dst for every v of src.
func Transform[I, O any](dst []O, src []I, fn func(I) O) []O {
	return append(dst, lo.Map(src, func(v I, _ int) O { return fn(v) })...)
}

// TransformBinary appends fn(a[i], b[i]) to dst for the common length of a and b.
func TransformBinary[A, B, O any](dst []O, a []A, b []B, fn func(A, B) O) []O {
	n := min(len(a), len(b))
	dst = slices.Grow(dst, n)
	for i := 0; i < n; i++ {
		dst = append(dst, fn(a[i], b[i]))
	}
	return dst
}

// Replace overwrites every element equal to old with repl and returns how many were replaced.
func Replace[S ~[]E, E comparable](s S, old, repl E) int {
	return ReplaceIf(s, func(v E) bool { return v == old }, repl)
}

func ReplaceIf[S ~[]E, E any](s S, pred func(E) bool, repl E) int {
	var n int
	for i, v := range s {
		if pred(v) {
			s[i] = repl
			n++
		}
	}
	return n
}

// ReplaceCopy appends src to dst with every element equal to old replaced by repl.
func ReplaceCopy[S ~[]E, E comparable](dst, src S, old, repl E) S {
	return ReplaceCopyIf(dst, src, func(v E) bool { return v == old }, repl)
}

func ReplaceCopyIf[S ~[]E, E any](dst, src S, pred func(E) bool, repl E) S {
	dst = slices.Grow(dst, len(src))
	for _, v := range src {
		if pred(v) {
			v = repl
		}
		dst = append(dst, v)
	}
	return dst
}

// Remove drops the elements equal to v and returns the shortened slice.
// The elements past the new length are zeroed.
func Remove[S ~[]E, E comparable](s S, v E) S {
	return slices.DeleteFunc(s, func(e E) bool { return e == v })
}

func RemoveIf[S ~[]E, E any](s S, pred func(E) bool) S {
	return slices.DeleteFunc(s, pred)
}

// RemoveCopy appends the elements of src that are not equal to v to dst.
func RemoveCopy[S ~[]E, E comparable](dst, src S, v E) S {
	return append(dst, lo.Without(src, v)...)
}

func RemoveCopyIf[S ~[]E, E any](dst, src S, pred func(E) bool) S {
	return append(dst, lo.Reject(src, func(v E, _ int) bool { return pred(v) })...)
}

// Unique collapses runs of equal elements into one and returns the shortened slice.
func Unique[S ~[]E, E comparable](s S) S {
	return slices.Compact(s)
}

func UniqueFunc[S ~[]E, E any](s S, eq func(a, b E) bool) S {
	return slices.CompactFunc(s, eq)
}

// UniqueCopy appends src to dst with runs of equal elements collapsed into one.
// src is left untouched.
func UniqueCopy[S ~[]E, E comparable](dst, src S) S {
	return UniqueCopyFunc(dst, src, equal[E])
}

func UniqueCopyFunc[S ~[]E, E any](dst, src S, eq func(a, b E) bool) S {
	for i, v := range src {
		if 0 < i && eq(src[i-1], v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

func Reverse[S ~[]E, E any](s S) {
	slices.Reverse(s)
}

// ReverseCopy appends src to dst in reverse order.
func ReverseCopy[S ~[]E, E any](dst, src S) S {
	dst = slices.Grow(dst, len(src))
	for i := len(src) - 1; 0 <= i; i-- {
		dst = append(dst, src[i])
	}
	return dst
}

// Rotate moves s[mid] to the front, keeping the cyclic order of the elements.
// It returns the new index of the former first element.
func Rotate[S ~[]E, E any](s S, mid int) int {
	if mid <= 0 {
		return len(s)
	}
	if len(s) <= mid {
		return 0
	}
	slices.Reverse(s[:mid])
	slices.Reverse(s[mid:])
	slices.Reverse(s)
	return len(s) - mid
}

// RotateCopy appends src to dst as if it was rotated around mid.
func RotateCopy[S ~[]E, E any](dst, src S, mid int) S {
	mid = max(0, min(mid, len(src)))
	dst = append(dst, src[mid:]...)
	return append(dst, src[:mid]...)
}

// SwapRanges exchanges the elements of a and b over their common length.
func SwapRanges[S ~[]E, E any](a, b S) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
	return n
}

// Shuffle permutes s in place.
// rnd must return a number in [0, n); nil falls back to math/rand/v2.
func Shuffle[S ~[]E, E any](s S, rnd func(n int) int) {
	if rnd == nil {
		rnd = rand.IntN
	}
	for i := len(s) - 1; 0 < i; i-- {
		j := rnd(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// Append concatenates the elements of srcs onto dst in place.
func Append[S ~[]E, E any](dst *S, srcs ...S) {
	for _, src := range srcs {
		*dst = append(*dst, src...)
	}
}

// AppendCopy returns a new slice holding the concatenation of ss.
func AppendCopy[S ~[]E, E any](ss ...S) S {
	return slices.Concat(ss...)
}
