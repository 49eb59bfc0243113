package result_test

import (
	"errors"
	"strconv"
	"testing"

	"go.llib.dev/prelude/pkg/result"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleFromError() {
	n, err := strconv.Atoi("42")
	res := result.FromError(n, err)
	_ = res.Unwrap() // 42
}

type Payload struct {
	Released *int
}

func (p Payload) Release() { *p.Released++ }

func TestResult(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Describe("Ok", func(s *testcase.Spec) {
		value := testcase.Let(s, func(t *testcase.T) int { return t.Random.Int() })
		subject := testcase.Let(s, func(t *testcase.T) result.Result[int, string] {
			return result.Ok[int, string](value.Get(t))
		})

		s.Then("it is a success", func(t *testcase.T) {
			assert.True(t, subject.Get(t).IsOk())
			assert.False(t, subject.Get(t).IsErr())
		})

		s.Then("accessors point into the success storage", func(t *testcase.T) {
			res := subject.Get(t)
			assert.NotNil(t, res.AsOk())
			assert.Equal(t, value.Get(t), *res.AsOk())
			assert.Nil(t, res.AsErr())
		})

		s.Then("Unwrap returns the value", func(t *testcase.T) {
			assert.Equal(t, value.Get(t), subject.Get(t).Unwrap())
			assert.Equal(t, value.Get(t), subject.Get(t).Expect("msg"))
			assert.Equal(t, value.Get(t), subject.Get(t).UnwrapOr(0))
		})

		s.Then("UnwrapErr panics", func(t *testcase.T) {
			out := assert.Panic(t, func() { subject.Get(t).UnwrapErr() })
			assert.ErrorIs(t, result.ErrNotErr, out.(error))
		})

		s.Then("Map transforms the value", func(t *testcase.T) {
			got := result.Map(subject.Get(t), strconv.Itoa)
			assert.Equal(t, strconv.Itoa(value.Get(t)), got.Unwrap())
		})

		s.Then("MapErr keeps the value", func(t *testcase.T) {
			got := result.MapErr(subject.Get(t), func(e string) error { return errors.New(e) })
			assert.Equal(t, value.Get(t), got.Unwrap())
		})
	})

	s.Describe("Err", func(s *testcase.Spec) {
		errValue := testcase.Let(s, func(t *testcase.T) string { return t.Random.String() })
		subject := testcase.Let(s, func(t *testcase.T) result.Result[int, string] {
			return result.Err[int](errValue.Get(t))
		})

		s.Then("it is an error", func(t *testcase.T) {
			assert.False(t, subject.Get(t).IsOk())
			assert.True(t, subject.Get(t).IsErr())
		})

		s.Then("accessors point into the error storage", func(t *testcase.T) {
			res := subject.Get(t)
			assert.Nil(t, res.AsOk())
			assert.NotNil(t, res.AsErr())
			assert.Equal(t, errValue.Get(t), *res.AsErr())
		})

		s.Then("Unwrap panics with ErrNotOk", func(t *testcase.T) {
			out := assert.Panic(t, func() { subject.Get(t).Unwrap() })
			assert.ErrorIs(t, result.ErrNotOk, out.(error))
		})

		s.Then("Expect panics with the message", func(t *testcase.T) {
			out := assert.Panic(t, func() { subject.Get(t).Expect("custom message") })
			assert.ErrorIs(t, result.ErrNotOk, out.(error))
			assert.Contain(t, out.(error).Error(), "custom message")
		})

		s.Then("fallbacks are used", func(t *testcase.T) {
			assert.Equal(t, 42, subject.Get(t).UnwrapOr(42))
			assert.Equal(t, len(errValue.Get(t)), subject.Get(t).UnwrapOrElse(func(e string) int { return len(e) }))
		})

		s.Then("Map keeps the error", func(t *testcase.T) {
			got := result.Map(subject.Get(t), strconv.Itoa)
			assert.Equal(t, errValue.Get(t), got.UnwrapErr())
		})

		s.Then("AndThen short circuits", func(t *testcase.T) {
			got := result.AndThen(subject.Get(t), func(n int) result.Result[string, string] {
				t.Fatal("should not be called")
				return result.Ok[string, string]("")
			})
			assert.True(t, got.IsErr())
		})
	})
}

func TestResult_assignment(t *testing.T) {
	var res result.Result[int, string]
	assert.Equal(t, "boom", res.SetErr("boom").UnwrapErr())
	assert.Equal(t, 42, res.SetOk(42).Unwrap())
	assert.Equal(t, "Ok(42)", res.String())
	res.SetErr("x")
	assert.Equal(t, "Err(x)", res.String())
}

func TestResult_release(t *testing.T) {
	var (
		okReleased  int
		errReleased int
		okPayload   = Payload{Released: &okReleased}
		errPayload  = Payload{Released: &errReleased}
	)

	res := result.Ok[Payload, Payload](okPayload)
	res.SetErr(errPayload) // releases ok
	res.SetOk(okPayload)   // releases err
	res.SetOk(okPayload)   // releases ok
	res.Release()          // releases ok
	res.Release()

	assert.Equal(t, 3, okReleased)
	assert.Equal(t, 1, errReleased)
}

func TestResult_releaseFromZeroValue(t *testing.T) {
	var (
		okReleased  int
		errReleased int
		okPayload   = Payload{Released: &okReleased}
		errPayload  = Payload{Released: &errReleased}
	)

	var res result.Result[Payload, Payload]
	res.Release()          // nothing is owned yet
	res.SetOk(okPayload)   // nothing to release
	res.SetErr(errPayload) // releases ok
	res.Release()          // releases err
	res.SetErr(errPayload) // nothing to release
	res.Release()          // releases err

	assert.Equal(t, 1, okReleased)
	assert.Equal(t, 2, errReleased)
	assert.True(t, res.IsOk())
}

func TestFromError(t *testing.T) {
	exp := errors.New("boom")
	assert.ErrorIs(t, exp, result.FromError(0, exp).UnwrapErr())
	assert.Equal(t, 42, result.FromError(42, nil).Unwrap())
}

func TestUnpack(t *testing.T) {
	v, err := result.Unpack(result.Ok[int, error](42))
	assert.NoError(t, err)
	assert.Equal(t, 42, v)

	exp := errors.New("boom")
	_, err = result.Unpack(result.Err[int](exp))
	assert.ErrorIs(t, exp, err)
}

func TestTry(t *testing.T) {
	t.Run("value", func(t *testing.T) {
		r := result.Try(func() int { return 42 })
		assert.Equal(t, 42, r.Unwrap())
	})
	t.Run("error panic", func(t *testing.T) {
		r := result.Try(func() int {
			return result.Err[int]("boom").Unwrap()
		})
		err, isErr := r.GetErr()
		assert.True(t, isErr)
		assert.ErrorIs(t, result.ErrNotOk, err)
	})
	t.Run("non error panic", func(t *testing.T) {
		got := assert.Panic(t, func() {
			result.Try(func() int { panic("boom") })
		})
		assert.Equal[any](t, "boom", got)
	})
}
