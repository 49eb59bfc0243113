// Package compare holds the three-way comparison vocabulary shared by predkit and algokit.
//
// A comparison result follows the cmp.Compare convention:
// negative when a < b, zero when a == b, positive when a > b.
package compare

import (
	"cmp"
	"strings"

	"go.llib.dev/prelude/internal/constraints"
)

// Func is a three-way comparator.
type Func[T any] func(a, b T) int

// Interface defines how comparison can be implemented.
//
// Example usage:
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsNotEqual reports whether two values differ based on their comparison result.
func IsNotEqual(cmp int) bool {
	return cmp != 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsGreater reports whether the receiver is greater than another value.
func IsGreater(cmp int) bool {
	return 0 < cmp
}

// IsGreaterOrEqual reports whether the receiver is greater than or equal to another value.
func IsGreaterOrEqual(cmp int) bool {
	return 0 <= cmp
}

// Ordered is the natural comparator of ordered types.
func Ordered[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

func Numbers[T constraints.Number](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func Strings[S ~string](a, b S) int {
	return strings.Compare(string(a), string(b))
}

// ByInterface adapts an Interface implementation into a comparator.
func ByInterface[T Interface[T]](a, b T) int {
	return a.Compare(b)
}

// Reverse flips the ordering of a comparator.
func Reverse[T any](fn func(a, b T) int) Func[T] {
	return func(a, b T) int { return fn(b, a) }
}

// Less turns a comparator into a strict weak ordering predicate.
func Less[T any](fn func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool { return fn(a, b) < 0 }
}
