package predkit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/prelude/pkg/algokit"
	"go.llib.dev/prelude/pkg/compare"
	"go.llib.dev/prelude/pkg/predkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleIsLessThan() {
	vs := []int{5, 1, 4, 2}
	_ = algokit.CountIf(vs, predkit.IsLessThan(3)) // 2
}

func ExamplePredicate_And() {
	inRange := predkit.IsGreaterThanOrEqualTo(10).And(predkit.IsLessThan(20))
	_ = inRange(15) // true
}

func TestBoundPredicates(t *testing.T) {
	tests := []struct {
		name string
		pred predkit.Predicate[int]
		arg  int
		want bool
	}{
		{"less than below", predkit.IsLessThan(3), 2, true},
		{"less than at bound", predkit.IsLessThan(3), 3, false},
		{"less than above", predkit.IsLessThan(3), 4, false},
		{"less or equal at bound", predkit.IsLessThanOrEqualTo(3), 3, true},
		{"less or equal above", predkit.IsLessThanOrEqualTo(3), 4, false},
		{"greater than at bound", predkit.IsGreaterThan(3), 3, false},
		{"greater than above", predkit.IsGreaterThan(3), 4, true},
		{"greater or equal at bound", predkit.IsGreaterThanOrEqualTo(3), 3, true},
		{"greater or equal below", predkit.IsGreaterThanOrEqualTo(3), 2, false},
		{"equal", predkit.IsEqualTo(3), 3, true},
		{"not equal", predkit.IsEqualTo(3), 4, false},
		{"is not equal", predkit.IsNotEqualTo(3), 4, true},
		{"alias less", predkit.IsLess(3), 3, false},
		{"alias less equal", predkit.IsLessEqual(3), 3, true},
		{"alias greater", predkit.IsGreater(3), 3, false},
		{"alias greater equal", predkit.IsGreaterEqual(3), 3, true},
		{"alias equal", predkit.IsEqual(3), 3, true},
		{"divisible", predkit.IsDivisibleBy(3), 9, true},
		{"not divisible", predkit.IsDivisibleBy(3), 10, false},
		{"negative divisible", predkit.IsDivisibleBy(3), -9, true},
		{"divisible by zero", predkit.IsDivisibleBy(0), 0, true},
		{"not divisible by zero", predkit.IsDivisibleBy(0), 1, false},
		{"odd", predkit.IsOdd[int](), 3, true},
		{"negative odd", predkit.IsOdd[int](), -3, true},
		{"even", predkit.IsEven[int](), -4, true},
		{"zero is even", predkit.IsEven[int](), 0, true},
		{"between lower bound", predkit.IsBetween(1, 5), 1, true},
		{"between upper bound", predkit.IsBetween(1, 5), 5, true},
		{"not between", predkit.IsBetween(1, 5), 6, false},
		{"zero", predkit.IsZero[int](), 0, true},
		{"not zero", predkit.IsZero[int](), 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.pred(tt.arg))
		})
	}
}

func TestCompare(t *testing.T) {
	isBefore := predkit.Compare(strings.Compare, "b", compare.IsLess)
	require.True(t, isBefore("a"))
	require.False(t, isBefore("b"))

	fold := func(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }
	require.True(t, predkit.Compare(fold, "FOO", compare.IsEqual)("foo"))
}

func TestBooleans(t *testing.T) {
	require.True(t, predkit.IsTrue()(true))
	require.False(t, predkit.IsTrue()(false))
	require.True(t, predkit.IsFalse()(false))
	require.False(t, predkit.IsFalse()(true))
	require.True(t, predkit.Odd(uint8(7)))
	require.True(t, predkit.Even(int64(-2)))
}

func TestCombinators(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		bound = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-100, 100) })
		arg   = testcase.Let(s, func(t *testcase.T) int { return t.Random.IntBetween(-100, 100) })
	)

	s.Test("not negates", func(t *testcase.T) {
		p := predkit.IsLessThan(bound.Get(t))
		assert.Equal(t, !p(arg.Get(t)), p.Not()(arg.Get(t)))
		assert.Equal(t, p(arg.Get(t)), predkit.Not[int](predkit.Not[int](p))(arg.Get(t)))
	})

	s.Test("less than or equal is less than or equal to", func(t *testcase.T) {
		lt := predkit.IsLessThan(bound.Get(t))
		eq := predkit.IsEqualTo(bound.Get(t))
		assert.Equal(t, predkit.IsLessThanOrEqualTo(bound.Get(t))(arg.Get(t)), lt.Or(eq)(arg.Get(t)))
	})

	s.Test("greater than or equal is not less than", func(t *testcase.T) {
		assert.Equal(t,
			predkit.IsGreaterThanOrEqualTo(bound.Get(t))(arg.Get(t)),
			predkit.IsLessThan(bound.Get(t)).Not()(arg.Get(t)))
	})

	s.Test("and", func(t *testcase.T) {
		p := predkit.IsGreaterThan(bound.Get(t)).And(predkit.IsEven[int]())
		exp := bound.Get(t) < arg.Get(t) && arg.Get(t)%2 == 0
		assert.Equal(t, exp, p(arg.Get(t)))
	})

	s.Test("empty and holds, empty or fails", func(t *testcase.T) {
		assert.True(t, predkit.And[int]()(arg.Get(t)))
		assert.False(t, predkit.Or[int]()(arg.Get(t)))
	})

	s.Test("short circuit", func(t *testcase.T) {
		var called bool
		spy := func(int) bool { called = true; return true }
		predkit.And[int](predkit.IsLessThan(0), predkit.IsGreaterThan(0), spy)(0)
		assert.False(t, called)
		predkit.Or[int](predkit.IsEqualTo(0), spy)(0)
		assert.False(t, called)
	})
}
