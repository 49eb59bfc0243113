package algokit

import "sort"

// IsPartitioned reports whether every element satisfying pred precedes every element that does not.
func IsPartitioned[S ~[]E, E any](s S, pred func(E) bool) bool {
	i := FindIfNot(s, pred)
	if i < 0 {
		return true
	}
	return NoneOf(s[i:], pred)
}

// Partition reorders s so that the elements satisfying pred come first.
// It returns the index of the first element of the second group.
// The relative order inside the groups is not preserved.
func Partition[S ~[]E, E any](s S, pred func(E) bool) int {
	i, j := 0, len(s)
	for {
		for i < j && pred(s[i]) {
			i++
		}
		for i < j && !pred(s[j-1]) {
			j--
		}
		if j <= i {
			return i
		}
		s[i], s[j-1] = s[j-1], s[i]
		i++
		j--
	}
}

// StablePartition is Partition that keeps the relative order inside both groups.
func StablePartition[S ~[]E, E any](s S, pred func(E) bool) int {
	rest := make(S, 0, len(s))
	var n int
	for _, v := range s {
		if pred(v) {
			s[n] = v
			n++
			continue
		}
		rest = append(rest, v)
	}
	copy(s[n:], rest)
	return n
}

// PartitionCopy appends the elements satisfying pred to in, and the rest to out.
func PartitionCopy[S ~[]E, E any](in, out, src S, pred func(E) bool) (S, S) {
	for _, v := range src {
		if pred(v) {
			in = append(in, v)
		} else {
			out = append(out, v)
		}
	}
	return in, out
}

// PartitionPoint returns the index of the first element of the second group of a partitioned slice.
func PartitionPoint[S ~[]E, E any](s S, pred func(E) bool) int {
	return sort.Search(len(s), func(i int) bool { return !pred(s[i]) })
}
