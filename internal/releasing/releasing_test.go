package releasing_test

import (
	"testing"

	"go.llib.dev/prelude/internal/releasing"
	"go.llib.dev/testcase/assert"
)

type valueReleaser struct{ n *int }

func (r valueReleaser) Release() { *r.n++ }

type pointerReleaser struct{ n int }

func (r *pointerReleaser) Release() { r.n++ }

func TestRelease(t *testing.T) {
	t.Run("value receiver", func(t *testing.T) {
		var n int
		v := valueReleaser{n: &n}
		releasing.Release(&v)
		assert.Equal(t, 1, n)
	})
	t.Run("pointer receiver", func(t *testing.T) {
		var v pointerReleaser
		releasing.Release(&v)
		assert.Equal(t, 1, v.n)
	})
	t.Run("plain value", func(t *testing.T) {
		v := 42
		assert.NotPanic(t, func() { releasing.Release(&v) })
	})
	t.Run("nil", func(t *testing.T) {
		assert.NotPanic(t, func() { releasing.Release[int](nil) })
	})
}
