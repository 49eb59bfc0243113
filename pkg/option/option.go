// Package option implements Option, a value that is either present (Some) or absent (None).
//
// Option is the prelude answer to "the query legitimately has no answer":
// absence is an ordinary value, and only skipping the presence check
// (Unwrap or Expect on None) is treated as a programming error.
//
// The zero value of Option is None.
//
// # Lifecycle
//
// Go has no destructors, so an Option tells its payload that it is no longer owned
// through the Release method of the payload, when the payload implements it.
// Set, Clear and Release release the previously held payload exactly once,
// before the new state is installed.
package option

import (
	"encoding/json"
	"fmt"
	"iter"

	"go.llib.dev/prelude/internal/releasing"
	"go.llib.dev/prelude/pkg/errorkit"
	"go.llib.dev/prelude/pkg/result"
)

// ErrNoneValue is the panic value of Unwrap when the Option holds no value.
const ErrNoneValue errorkit.Error = "tried to dereference the option when there was no held value"

// Releaser is implemented by payloads that want to be notified when an Option stops owning them.
type Releaser = releasing.Releaser

type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an Option that holds v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// Of creates an Option from the comma-ok idiom.
//
//	v, ok := m[key]
//	opt := option.Of(v, ok)
func Of[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr creates an Option from a pointer, nil pointer means None.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// Get returns the held value and whether it was present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Ptr returns a pointer to the held value, or nil when the Option is None.
// The pointer refers to the storage of this Option instance.
func (o *Option[T]) Ptr() *T {
	if o == nil || !o.ok {
		return nil
	}
	return &o.value
}

// Unwrap returns the held value.
// It panics with ErrNoneValue when the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic(ErrNoneValue)
	}
	return o.value
}

// Expect returns the held value.
// It panics with an error wrapping ErrNoneValue that carries msg, when the Option is None.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(ErrNoneValue.F("%s", msg))
	}
	return o.value
}

func (o Option[T]) UnwrapOr(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.ok {
		return fn()
	}
	return o.value
}

// Set replaces the current state with v.
// The previous payload is released before v is installed.
func (o *Option[T]) Set(v T) *Option[T] {
	o.destroy()
	o.value = v
	o.ok = true
	return o
}

// Clear turns the Option into None, releasing the previous payload.
func (o *Option[T]) Clear() *Option[T] {
	o.destroy()
	return o
}

// Release ends the lifetime of the Option's payload.
// It is safe to call on a None Option, and calling it twice releases only once.
func (o *Option[T]) Release() {
	o.destroy()
}

func (o *Option[T]) destroy() {
	if !o.ok {
		return
	}
	releasing.Release(&o.value)
	var zero T
	o.value = zero
	o.ok = false
}

// Seq yields the held value once, or nothing for None.
func (o Option[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func (o Option[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Option[T]) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		o.Clear()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Set(v)
	return nil
}

// Map transforms the held value with fn.
// None stays None and fn is not called.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(fn(v))
	}
	return None[U]()
}

// MapOr returns fn applied to the held value, or def when the Option is None.
func MapOr[T, U any](o Option[T], def U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return def
}

// MapOrElse returns fn applied to the held value, or the result of defFn when the Option is None.
func MapOrElse[T, U any](o Option[T], defFn func() U, fn func(T) U) U {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return defFn()
}

// AndThen chains an Option returning function.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return fn(v)
	}
	return None[U]()
}

// OkOr converts the Option into a Result, using err as the error value for None.
func OkOr[T, E any](o Option[T], err E) result.Result[T, E] {
	if v, ok := o.Get(); ok {
		return result.Ok[T, E](v)
	}
	return result.Err[T](err)
}

// OkOrElse is like OkOr, but the error value is only constructed when needed.
func OkOrElse[T, E any](o Option[T], errFn func() E) result.Result[T, E] {
	if v, ok := o.Get(); ok {
		return result.Ok[T, E](v)
	}
	return result.Err[T](errFn())
}
