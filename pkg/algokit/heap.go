package algokit

import (
	"cmp"

	"go.llib.dev/prelude/pkg/compare"
)

// The heap functions maintain a max-heap: s[0] is the greatest element.

// PushHeap sifts the last element of s into the heap formed by s[:len(s)-1].
func PushHeap[S ~[]E, E cmp.Ordered](s S) {
	PushHeapFunc(s, compare.Ordered[E])
}

func PushHeapFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	if len(s) == 0 {
		return
	}
	siftUp(s, len(s)-1, fn)
}

// PopHeap moves the greatest element to the end of s and restores the heap on s[:len(s)-1].
func PopHeap[S ~[]E, E cmp.Ordered](s S) {
	PopHeapFunc(s, compare.Ordered[E])
}

func PopHeapFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	n := len(s) - 1
	if n <= 0 {
		return
	}
	s[0], s[n] = s[n], s[0]
	siftDown(s, 0, n, fn)
}

// PushHeapValue appends v to the heap.
func PushHeapValue[S ~[]E, E cmp.Ordered](s *S, v E) {
	PushHeapValueFunc(s, v, compare.Ordered[E])
}

func PushHeapValueFunc[S ~[]E, E any](s *S, v E, fn func(a, b E) int) {
	*s = append(*s, v)
	PushHeapFunc(*s, fn)
}

// PopHeapValue removes and returns the greatest element of the heap.
// It reports false on an empty heap.
func PopHeapValue[S ~[]E, E cmp.Ordered](s *S) (E, bool) {
	return PopHeapValueFunc(s, compare.Ordered[E])
}

func PopHeapValueFunc[S ~[]E, E any](s *S, fn func(a, b E) int) (E, bool) {
	var zero E
	if len(*s) == 0 {
		return zero, false
	}
	PopHeapFunc(*s, fn)
	n := len(*s) - 1
	v := (*s)[n]
	(*s)[n] = zero
	*s = (*s)[:n]
	return v, true
}

// MakeHeap rearranges s into a heap.
func MakeHeap[S ~[]E, E cmp.Ordered](s S) {
	MakeHeapFunc(s, compare.Ordered[E])
}

func MakeHeapFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	for i := len(s)/2 - 1; 0 <= i; i-- {
		siftDown(s, i, len(s), fn)
	}
}

// SortHeap turns a heap into an ascending slice.
func SortHeap[S ~[]E, E cmp.Ordered](s S) {
	SortHeapFunc(s, compare.Ordered[E])
}

func SortHeapFunc[S ~[]E, E any](s S, fn func(a, b E) int) {
	for n := len(s); 1 < n; n-- {
		PopHeapFunc(s[:n], fn)
	}
}

func IsHeap[S ~[]E, E cmp.Ordered](s S) bool {
	return IsHeapUntil(s) == len(s)
}

func IsHeapFunc[S ~[]E, E any](s S, fn func(a, b E) int) bool {
	return IsHeapUntilFunc(s, fn) == len(s)
}

// IsHeapUntil returns the length of the longest prefix of s that is a heap.
func IsHeapUntil[S ~[]E, E cmp.Ordered](s S) int {
	return IsHeapUntilFunc(s, compare.Ordered[E])
}

func IsHeapUntilFunc[S ~[]E, E any](s S, fn func(a, b E) int) int {
	for i := 1; i < len(s); i++ {
		if fn(s[(i-1)/2], s[i]) < 0 {
			return i
		}
	}
	return len(s)
}

func siftUp[S ~[]E, E any](s S, i int, fn func(a, b E) int) {
	for 0 < i {
		parent := (i - 1) / 2
		if 0 <= fn(s[parent], s[i]) {
			return
		}
		s[parent], s[i] = s[i], s[parent]
		i = parent
	}
}

func siftDown[S ~[]E, E any](s S, i, n int, fn func(a, b E) int) {
	for {
		child := 2*i + 1
		if n <= child {
			return
		}
		if child+1 < n && fn(s[child], s[child+1]) < 0 {
			child++
		}
		if 0 <= fn(s[i], s[child]) {
			return
		}
		s[i], s[child] = s[child], s[i]
		i = child
	}
}
