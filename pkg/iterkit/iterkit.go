// Package iterkit implements a polymorphic, pull based external iterator.
//
// # Summary
//
// An Iterator decouples the consumer of a sequence from the storage that backs it.
// A consumer that needs "any sequence of T" as a single concrete type holds an Iterator[T],
// regardless of whether the elements come from a slice, a generator function or an iter.Seq.
//
// The pull protocol is made of two operations:
// Peek returns the current element (nil once the iterator is exhausted),
// and Advance steps to the next element.
// Exhaustion is monotonic: once Peek returned nil, it keeps returning nil.
//
// Every other operation (Count, Last, Nth, MinSize, MaxSize) has a default derived from
// Peek and Advance. Backends with stronger guarantees, such as random access storage,
// override them with O(1) variants. See New for how a Cursor is upgraded.
//
// Iterators are not safe for concurrent use.
package iterkit

import (
	"go.llib.dev/prelude/pkg/errorkit"
)

// ErrExhausted is the panic value of Deref on an exhausted iterator.
const ErrExhausted errorkit.Error = "dereference of an exhausted iterator"

// Iterator is the full contract of a polymorphic cursor.
type Iterator[T any] interface {
	// Advance moves the cursor forward by one element.
	// Advancing an exhausted iterator is a no-op.
	Advance() Iterator[T]
	// Peek returns the current element, or nil when the iterator is exhausted.
	// Peek does not advance.
	Peek() *T
	// Deref returns the current element.
	// It panics with ErrExhausted when the iterator is exhausted,
	// so callers should check Peek first.
	Deref() T
	// MinSize reports a lower bound on the remaining elements.
	MinSize() (int, bool)
	// MaxSize reports an upper bound on the remaining elements.
	// The boolean is false when the bound is unknown.
	MaxSize() (int, bool)
	// Count consumes the iterator and returns the number of elements seen.
	Count() int
	// Last consumes the iterator and returns the final element seen.
	Last() *T
	// Nth skips n elements and returns the following one,
	// leaving the iterator positioned on it.
	// When fewer than n+1 elements remain, the iterator is exhausted and nil is returned.
	Nth(n int) *T
}

// Cursor is the minimal contract a sequence backend has to implement.
type Cursor[T any] interface {
	Advance()
	Peek() *T
}

// MinSizer is implemented by cursors that know a lower bound of their remaining elements.
type MinSizer interface {
	MinSize() (int, bool)
}

// MaxSizer is implemented by cursors that know an upper bound of their remaining elements.
type MaxSizer interface {
	MaxSize() (int, bool)
}

// Counter is implemented by cursors that can count their remaining elements faster than walking them.
type Counter interface {
	Count() int
}

// Laster is implemented by cursors that can jump to their last element.
type Laster[T any] interface {
	Last() *T
}

// Nther is implemented by cursors that can skip elements without walking them.
type Nther[T any] interface {
	Nth(n int) *T
}

// New turns a Cursor into an Iterator.
//
// Operations the cursor implements itself (MinSizer, MaxSizer, Counter, Laster, Nther)
// are used as is, everything else falls back to the defaults built on Peek and Advance.
func New[T any](c Cursor[T]) Iterator[T] {
	return &iterator[T]{Cursor: c}
}

type iterator[T any] struct {
	Cursor Cursor[T]
}

func (i *iterator[T]) Advance() Iterator[T] {
	i.Cursor.Advance()
	return i
}

func (i *iterator[T]) Peek() *T {
	return i.Cursor.Peek()
}

func (i *iterator[T]) Deref() T {
	return Deref[T](i.Cursor)
}

func (i *iterator[T]) MinSize() (int, bool) {
	if ms, ok := i.Cursor.(MinSizer); ok {
		return ms.MinSize()
	}
	return DefaultMinSize()
}

func (i *iterator[T]) MaxSize() (int, bool) {
	if ms, ok := i.Cursor.(MaxSizer); ok {
		return ms.MaxSize()
	}
	return DefaultMaxSize()
}

func (i *iterator[T]) Count() int {
	if c, ok := i.Cursor.(Counter); ok {
		return c.Count()
	}
	return DefaultCount(i.Cursor)
}

func (i *iterator[T]) Last() *T {
	if l, ok := i.Cursor.(Laster[T]); ok {
		return l.Last()
	}
	return DefaultLast(i.Cursor)
}

func (i *iterator[T]) Nth(n int) *T {
	if nth, ok := i.Cursor.(Nther[T]); ok {
		return nth.Nth(n)
	}
	return DefaultNth(i.Cursor, n)
}

// Deref returns the current element of c, or panics with ErrExhausted.
func Deref[T any](c interface{ Peek() *T }) T {
	ptr := c.Peek()
	if ptr == nil {
		panic(ErrExhausted)
	}
	return *ptr
}

// DefaultMinSize is the lower bound every sequence satisfies.
func DefaultMinSize() (int, bool) { return 0, true }

// DefaultMaxSize reports an unknown upper bound.
func DefaultMaxSize() (int, bool) { return 0, false }

// DefaultCount walks c to exhaustion and returns the number of elements seen.
func DefaultCount[T any](c Cursor[T]) int {
	var n int
	for ; c.Peek() != nil; n++ {
		c.Advance()
	}
	return n
}

// DefaultLast walks c to exhaustion and returns the final element seen.
func DefaultLast[T any](c Cursor[T]) *T {
	var last *T
	for cur := c.Peek(); cur != nil; cur = c.Peek() {
		last = cur
		c.Advance()
	}
	return last
}

// DefaultNth walks past n elements of c and returns the next one.
func DefaultNth[T any](c Cursor[T], n int) *T {
	if n < 0 {
		return nil
	}
	for cur := c.Peek(); cur != nil; cur = c.Peek() {
		if n == 0 {
			return cur
		}
		n--
		c.Advance()
	}
	return nil
}
