package compare_test

import (
	"testing"

	"go.llib.dev/prelude/pkg/compare"
	"go.llib.dev/testcase/assert"
)

type MyNumber int

func (m MyNumber) Compare(other MyNumber) int {
	return compare.Numbers(m, other)
}

func TestIsPredicates(t *testing.T) {
	assert.True(t, compare.IsEqual(0))
	assert.False(t, compare.IsEqual(-1))
	assert.True(t, compare.IsNotEqual(1))
	assert.True(t, compare.IsLess(-1))
	assert.False(t, compare.IsLess(0))
	assert.True(t, compare.IsLessOrEqual(0))
	assert.True(t, compare.IsLessOrEqual(-1))
	assert.False(t, compare.IsLessOrEqual(1))
	assert.True(t, compare.IsGreater(1))
	assert.False(t, compare.IsGreater(0))
	assert.True(t, compare.IsGreaterOrEqual(0))
	assert.False(t, compare.IsGreaterOrEqual(-1))
}

func TestNumbers(t *testing.T) {
	assert.Equal(t, -1, compare.Numbers(1, 2))
	assert.Equal(t, 0, compare.Numbers(2.5, 2.5))
	assert.Equal(t, 1, compare.Numbers(uint8(3), uint8(2)))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, -1, compare.Strings("a", "b"))
	assert.Equal(t, 0, compare.Strings("a", "a"))
	assert.Equal(t, 1, compare.Strings("b", "a"))
}

func TestByInterface(t *testing.T) {
	assert.Equal(t, -1, compare.ByInterface(MyNumber(1), MyNumber(2)))
	assert.Equal(t, 1, compare.ByInterface(MyNumber(3), MyNumber(2)))
}

func TestReverse(t *testing.T) {
	rev := compare.Reverse(compare.Ordered[int])
	assert.Equal(t, 1, rev(1, 2))
	assert.Equal(t, -1, rev(2, 1))
	assert.Equal(t, 0, rev(2, 2))
}

func TestLess(t *testing.T) {
	less := compare.Less(compare.Ordered[string])
	assert.True(t, less("a", "b"))
	assert.False(t, less("b", "b"))
}
