package algokit

import (
	"cmp"
	"slices"

	"go.llib.dev/prelude/pkg/compare"
)

// NextPermutation rearranges s into the next lexicographically greater permutation.
// When s already is the greatest permutation, it is rearranged into the smallest one and false is returned.
func NextPermutation[S ~[]E, E cmp.Ordered](s S) bool {
	return NextPermutationFunc(s, compare.Ordered[E])
}

func NextPermutationFunc[S ~[]E, E any](s S, fn func(a, b E) int) bool {
	return permute(s, fn)
}

// PrevPermutation rearranges s into the next lexicographically smaller permutation.
// When s already is the smallest permutation, it is rearranged into the greatest one and false is returned.
func PrevPermutation[S ~[]E, E cmp.Ordered](s S) bool {
	return PrevPermutationFunc(s, compare.Ordered[E])
}

func PrevPermutationFunc[S ~[]E, E any](s S, fn func(a, b E) int) bool {
	return permute(s, compare.Reverse(fn))
}

func permute[S ~[]E, E any](s S, fn func(a, b E) int) bool {
	i := len(s) - 2
	for 0 <= i && 0 <= fn(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		slices.Reverse(s)
		return false
	}
	j := len(s) - 1
	for fn(s[i], s[j]) >= 0 {
		j--
	}
	s[i], s[j] = s[j], s[i]
	slices.Reverse(s[i+1:])
	return true
}
