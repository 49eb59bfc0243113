// Package iterkitcontract holds the behavioural contract every iterkit.Iterator backend must satisfy.
package iterkitcontract

import (
	"go.llib.dev/prelude/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// MakeFunc creates an Iterator that yields exactly the given values.
type MakeFunc[T any] func(t *testcase.T, vs []T) iterkit.Iterator[T]

// Iterator registers the Iterator contract as tests of s.
func Iterator[T any](s *testcase.Spec, mk MakeFunc[T], gen func(t *testcase.T) T) {
	values := testcase.Let(s, func(t *testcase.T) []T {
		n := t.Random.IntBetween(1, 12)
		vs := make([]T, 0, n)
		for i := 0; i < n; i++ {
			vs = append(vs, gen(t))
		}
		return vs
	})
	subject := testcase.Let(s, func(t *testcase.T) iterkit.Iterator[T] {
		return mk(t, values.Get(t))
	})

	s.Test("peek/advance visits every element exactly once", func(t *testcase.T) {
		it := subject.Get(t)
		var steps int
		for cur := it.Peek(); cur != nil; cur = it.Advance().Peek() {
			assert.Equal(t, values.Get(t)[steps], *cur)
			steps++
		}
		assert.Equal(t, len(values.Get(t)), steps)
		assert.Nil(t, it.Peek())
	})

	s.Test("exhaustion is monotonic", func(t *testcase.T) {
		it := subject.Get(t)
		it.Count()
		for i := 0; i < 3; i++ {
			assert.Nil(t, it.Advance().Peek())
		}
		assert.Equal(t, 0, it.Count())
		assert.Nil(t, it.Last())
		assert.Nil(t, it.Nth(0))
	})

	s.Test("Peek does not advance", func(t *testcase.T) {
		it := subject.Get(t)
		assert.Equal(t, values.Get(t)[0], *it.Peek())
		assert.Equal(t, values.Get(t)[0], *it.Peek())
	})

	s.Test("Deref returns the current element", func(t *testcase.T) {
		assert.Equal(t, values.Get(t)[0], subject.Get(t).Deref())
	})

	s.Test("Deref on an exhausted iterator panics with ErrExhausted", func(t *testcase.T) {
		it := subject.Get(t)
		it.Count()
		out := assert.Panic(t, func() { it.Deref() })
		err, ok := out.(error)
		assert.True(t, ok)
		assert.ErrorIs(t, iterkit.ErrExhausted, err)
	})

	s.Test("Count returns the number of elements and exhausts", func(t *testcase.T) {
		it := subject.Get(t)
		assert.Equal(t, len(values.Get(t)), it.Count())
		assert.Nil(t, it.Peek())
	})

	s.Test("Count after a partial walk counts the remaining elements", func(t *testcase.T) {
		it := subject.Get(t)
		it.Advance()
		assert.Equal(t, len(values.Get(t))-1, it.Count())
	})

	s.Test("Last returns the final element and exhausts", func(t *testcase.T) {
		it := subject.Get(t)
		last := it.Last()
		assert.NotNil(t, last)
		vs := values.Get(t)
		assert.Equal(t, vs[len(vs)-1], *last)
		assert.Nil(t, it.Peek())
	})

	s.Test("Nth within bounds repositions the cursor on the element", func(t *testcase.T) {
		it := subject.Get(t)
		vs := values.Get(t)
		n := t.Random.IntN(len(vs))
		got := it.Nth(n)
		assert.NotNil(t, got)
		assert.Equal(t, vs[n], *got)
		assert.NotNil(t, it.Peek())
		assert.Equal(t, vs[n], *it.Peek())
		assert.Equal(t, len(vs)-n, it.Count())
	})

	s.Test("Nth out of bounds returns nil and exhausts", func(t *testcase.T) {
		it := subject.Get(t)
		n := len(values.Get(t)) + t.Random.IntN(3)
		assert.Nil(t, it.Nth(n))
		assert.Nil(t, it.Peek())
	})

	s.Test("size bounds are consistent with Count", func(t *testcase.T) {
		it := subject.Get(t)
		n := len(values.Get(t))
		if lower, ok := it.MinSize(); ok {
			assert.True(t, lower <= n)
		}
		if upper, ok := it.MaxSize(); ok {
			assert.True(t, n <= upper)
		}
		assert.Equal(t, n, it.Count())
	})

	s.Test("empty sequence", func(t *testcase.T) {
		it := mk(t, nil)
		assert.Nil(t, it.Peek())
		assert.Equal(t, 0, mk(t, nil).Count())
		assert.Nil(t, mk(t, nil).Last())
		assert.Nil(t, mk(t, nil).Nth(0))
	})
}
