package errorkit_test

import (
	"errors"
	"testing"

	"go.llib.dev/prelude/pkg/errorkit"
	"go.llib.dev/testcase/assert"
)

func TestMerge(t *testing.T) {
	t.Run("no error", func(t *testing.T) {
		assert.Nil(t, errorkit.Merge())
		assert.Nil(t, errorkit.Merge(nil, nil))
	})
	t.Run("single error is returned as is", func(t *testing.T) {
		exp := errors.New("boom")
		assert.Equal(t, exp, errorkit.Merge(nil, exp, nil))
	})
	t.Run("multiple errors", func(t *testing.T) {
		err1 := errors.New("one")
		err2 := errors.New("two")
		got := errorkit.Merge(err1, nil, err2)
		assert.ErrorIs(t, err1, got)
		assert.ErrorIs(t, err2, got)
	})
}

func TestRecover(t *testing.T) {
	const ErrBoom errorkit.Error = "ErrBoom"

	t.Run("error panic is returned", func(t *testing.T) {
		fn := func() (err error) {
			defer errorkit.Recover(&err)
			panic(ErrBoom)
		}
		assert.ErrorIs(t, ErrBoom, fn())
	})
	t.Run("no panic", func(t *testing.T) {
		fn := func() (err error) {
			defer errorkit.Recover(&err)
			return nil
		}
		assert.NoError(t, fn())
	})
	t.Run("non error panic is re-raised", func(t *testing.T) {
		fn := func() (err error) {
			defer errorkit.Recover(&err)
			panic("boom")
		}
		got := assert.Panic(t, func() { _ = fn() })
		assert.Equal[any](t, "boom", got)
	})
}
