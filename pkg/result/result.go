// Package result implements Result, a value that holds either a success value or an error value.
//
// A Result is never both and never neither.
// Like option.Option, a Result releases its payload through the payload's Release method,
// exactly once, whenever the payload leaves the Result.
package result

import (
	"fmt"

	"go.llib.dev/prelude/internal/releasing"
	"go.llib.dev/prelude/pkg/errorkit"
)

const (
	// ErrNotOk is the panic value of Unwrap on an error Result.
	ErrNotOk errorkit.Error = "tried to unwrap the success value of an error result"
	// ErrNotErr is the panic value of UnwrapErr on a success Result.
	ErrNotErr errorkit.Error = "tried to unwrap the error value of a success result"
)

// Result is a tagged union of T and E.
//
// The zero value is a success Result holding the zero value of T.
// That zero value is not owned by the Result, so it is never released.
type Result[T, E any] struct {
	ok    T
	err   E
	isErr bool
	live  bool
}

// Ok creates a success Result.
//
//	r := result.Ok[int, string](42)
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: v, live: true}
}

// Err creates an error Result.
//
//	r := result.Err[int]("boom")
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true, live: true}
}

// FromError bridges the (value, error) return idiom into a Result.
func FromError[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

func (r Result[T, E]) IsOk() bool { return !r.isErr }

func (r Result[T, E]) IsErr() bool { return r.isErr }

// AsOk returns a pointer to the success value in the Result's storage,
// or nil when the Result holds an error.
func (r *Result[T, E]) AsOk() *T {
	if r.isErr {
		return nil
	}
	return &r.ok
}

// AsErr returns a pointer to the error value in the Result's storage,
// or nil when the Result holds a success value.
func (r *Result[T, E]) AsErr() *E {
	if !r.isErr {
		return nil
	}
	return &r.err
}

func (r Result[T, E]) Get() (T, bool) {
	return r.ok, !r.isErr
}

func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, r.isErr
}

// Unwrap returns the success value, or panics with ErrNotOk.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		panic(ErrNotOk.F("%v", r.err))
	}
	return r.ok
}

// Expect returns the success value, or panics with an error that wraps ErrNotOk and carries msg.
func (r Result[T, E]) Expect(msg string) T {
	if r.isErr {
		panic(ErrNotOk.F("%s: %v", msg, r.err))
	}
	return r.ok
}

// UnwrapErr returns the error value, or panics with ErrNotErr.
func (r Result[T, E]) UnwrapErr() E {
	if !r.isErr {
		panic(ErrNotErr)
	}
	return r.err
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isErr {
		return def
	}
	return r.ok
}

func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.isErr {
		return fn(r.err)
	}
	return r.ok
}

// SetOk replaces the current payload with a success value.
// The previous payload is released first.
func (r *Result[T, E]) SetOk(v T) *Result[T, E] {
	r.destroy()
	r.ok = v
	r.isErr = false
	r.live = true
	return r
}

// SetErr replaces the current payload with an error value.
// The previous payload is released first.
func (r *Result[T, E]) SetErr(e E) *Result[T, E] {
	r.destroy()
	r.err = e
	r.isErr = true
	r.live = true
	return r
}

// Release ends the lifetime of the held payload.
// After Release the Result holds the zero success value, which is not released again.
func (r *Result[T, E]) Release() {
	r.destroy()
	r.isErr = false
}

func (r *Result[T, E]) destroy() {
	if !r.live {
		return
	}
	r.live = false
	if r.isErr {
		releasing.Release(&r.err)
		var zero E
		r.err = zero
		return
	}
	releasing.Release(&r.ok)
	var zero T
	r.ok = zero
}

func (r Result[T, E]) String() string {
	if r.isErr {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.ok)
}

// Map transforms the success value, leaving an error Result untouched.
func Map[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	if e, isErr := r.GetErr(); isErr {
		return Err[U](e)
	}
	return Ok[U, E](fn(r.ok))
}

// MapErr transforms the error value, leaving a success Result untouched.
func MapErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if e, isErr := r.GetErr(); isErr {
		return Err[T](fn(e))
	}
	return Ok[T, F](r.ok)
}

// AndThen chains a Result returning function on the success value.
func AndThen[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if e, isErr := r.GetErr(); isErr {
		return Err[U](e)
	}
	return fn(r.ok)
}

// Unpack converts a Result with an error value back into the (value, error) idiom.
func Unpack[T any](r Result[T, error]) (T, error) {
	if e, isErr := r.GetErr(); isErr {
		var zero T
		return zero, e
	}
	return r.ok, nil
}

// Try runs fn and turns a panic carrying an error value, like ErrNotOk, into an error Result.
// Panics with non-error values propagate.
func Try[T any](fn func() T) (r Result[T, error]) {
	var err error
	defer func() {
		if err != nil {
			r = Err[T](err)
		}
	}()
	defer errorkit.Recover(&err)
	return Ok[T, error](fn())
}
