// Package predkit provides composable single argument predicates.
//
// A bound predicate captures a value and a comparison, and reports how its argument relates to it:
//
//	IsLessThan(3)(2) // true
//	IsLessThan(3)(3) // false
//
// Predicates combine with And, Or and Not into new predicates.
// They carry no state beyond the captured value and are safe to reuse.
package predkit

import (
	"github.com/go-softwarelab/common/pkg/is"
	"github.com/go-softwarelab/common/pkg/types"

	"go.llib.dev/prelude/internal/constraints"
)

type Predicate[T any] func(T) bool

// And returns a predicate that holds when both p and oth hold.
func (p Predicate[T]) And(oth func(T) bool) Predicate[T] {
	return And[T](p, oth)
}

// Or returns a predicate that holds when either p or oth holds.
func (p Predicate[T]) Or(oth func(T) bool) Predicate[T] {
	return Or[T](p, oth)
}

func (p Predicate[T]) Not() Predicate[T] {
	return Not[T](p)
}

// And holds when every one of ps holds. It short-circuits on the first failing predicate.
func And[T any](ps ...func(T) bool) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or holds when any of ps holds. It short-circuits on the first passing predicate.
func Or[T any](ps ...func(T) bool) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

func Not[T any](p func(T) bool) Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// Compare binds v to a comparator.
// The returned predicate calls is with the comparison of its argument against v.
//
//	Compare(strings.Compare, "b", compare.IsLess)("a") // true
func Compare[T any](fn func(a, b T) int, v T, is func(c int) bool) Predicate[T] {
	return func(arg T) bool { return is(fn(arg, v)) }
}

func IsLessThan[T types.Ordered](v T) Predicate[T] {
	return is.LessThan(v)
}

func IsGreaterThan[T types.Ordered](v T) Predicate[T] {
	return is.GreaterThan(v)
}

func IsLessThanOrEqualTo[T types.Ordered](v T) Predicate[T] {
	return is.LessOrEqualTo(v)
}

func IsGreaterThanOrEqualTo[T types.Ordered](v T) Predicate[T] {
	return is.GreaterOrEqualTo(v)
}

func IsEqualTo[T comparable](v T) Predicate[T] {
	return is.EqualTo(v)
}

func IsNotEqualTo[T comparable](v T) Predicate[T] {
	return Not[T](is.EqualTo(v))
}

// IsBetween holds for values in the closed interval [lo, hi].
func IsBetween[T types.Ordered](lo, hi T) Predicate[T] {
	return is.BetweenThe(lo, hi)
}

// IsZero holds for the zero value of T.
func IsZero[T comparable]() Predicate[T] {
	return is.Zero[T]
}

// Short aliases.

func IsLess[T types.Ordered](v T) Predicate[T]         { return IsLessThan(v) }
func IsGreater[T types.Ordered](v T) Predicate[T]      { return IsGreaterThan(v) }
func IsLessEqual[T types.Ordered](v T) Predicate[T]    { return IsLessThanOrEqualTo(v) }
func IsGreaterEqual[T types.Ordered](v T) Predicate[T] { return IsGreaterThanOrEqualTo(v) }
func IsEqual[T comparable](v T) Predicate[T]           { return IsEqualTo(v) }

// IsDivisibleBy holds for multiples of d.
// Only zero is a multiple of zero.
func IsDivisibleBy[T constraints.Integer](d T) Predicate[T] {
	return func(v T) bool {
		if d == 0 {
			return v == 0
		}
		return v%d == 0
	}
}

// Odd reports whether v is odd. Negative numbers are handled by their magnitude.
func Odd[T constraints.Integer](v T) bool {
	return v%2 != 0
}

func Even[T constraints.Integer](v T) bool {
	return v%2 == 0
}

func IsOdd[T constraints.Integer]() Predicate[T] {
	return Odd[T]
}

func IsEven[T constraints.Integer]() Predicate[T] {
	return Even[T]
}

func IsTrue() Predicate[bool] {
	return func(v bool) bool { return v }
}

func IsFalse() Predicate[bool] {
	return func(v bool) bool { return !v }
}
