package env_test

import (
	"strings"
	"testing"
	"time"

	"go.llib.dev/prelude/pkg/env"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func ExampleLookup() {
	level, ok, err := env.Lookup[string]("LOG_LEVEL", env.DefaultValue("info"))
	_, _, _ = level, ok, err
}

const key = "PRELUDE_ENV_TEST_KEY"

func TestLookup(t *testing.T) {
	s := testcase.NewSpec(t)

	s.When("the variable is missing", func(s *testcase.Spec) {
		s.Before(func(t *testcase.T) {
			testcase.UnsetEnv(t, key)
		})

		s.Then("it is reported as not found", func(t *testcase.T) {
			_, ok, err := env.Lookup[string](key)
			assert.NoError(t, err)
			assert.False(t, ok)
		})

		s.Then("the default value is used", func(t *testcase.T) {
			got, ok, err := env.Lookup[int](key, env.DefaultValue("42"))
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, 42, got)
		})

		s.Then("a required variable yields an error", func(t *testcase.T) {
			_, ok, err := env.Lookup[string](key, env.Required())
			assert.False(t, ok)
			assert.ErrorIs(t, env.ErrMissingValue, err)
		})
	})

	s.When("the variable is present", func(s *testcase.Spec) {
		s.Test("string", func(t *testcase.T) {
			exp := t.Random.StringNC(5, "abcdef")
			testcase.SetEnv(t, key, exp)
			got, ok, err := env.Lookup[string](key)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		})

		s.Test("bool", func(t *testcase.T) {
			testcase.SetEnv(t, key, "true")
			got, _, err := env.Lookup[bool](key)
			assert.NoError(t, err)
			assert.True(t, got)
		})

		s.Test("duration", func(t *testcase.T) {
			testcase.SetEnv(t, key, "1m")
			got, _, err := env.Lookup[time.Duration](key)
			assert.NoError(t, err)
			assert.Equal(t, time.Minute, got)
		})

		s.Test("json list", func(t *testcase.T) {
			testcase.SetEnv(t, key, `[1,2,3]`)
			got, _, err := env.Lookup[[]int](key)
			assert.NoError(t, err)
			assert.Equal(t, []int{1, 2, 3}, got)
		})

		s.Test("invalid value", func(t *testcase.T) {
			testcase.SetEnv(t, key, "not-a-number")
			_, ok, err := env.Lookup[int](key)
			assert.False(t, ok)
			assert.ErrorIs(t, env.ErrInvalidValue, err)
		})

		s.Test("custom parser", func(t *testcase.T) {
			testcase.SetEnv(t, key, "Hello")
			got, ok, err := env.Lookup[string](key, env.ParseWith(func(v string) (string, error) {
				return strings.ToUpper(v), nil
			}))
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "HELLO", got)
		})
	})
}
