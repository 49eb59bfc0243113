package iterkit

import "iter"

// FromSeq turns a push iterator into a forward-only Iterator.
// The returned stop function releases the underlying iter.Pull resources,
// and it must be called when the Iterator is abandoned before exhaustion.
//
// The element pointers returned by Peek stay valid after Advance.
func FromSeq[T any](seq iter.Seq[T]) (Iterator[T], func()) {
	next, stop := iter.Pull(seq)
	c := &funcCursor[T]{next: next, stop: stop}
	return New[T](c), c.close
}

// FromFunc turns a generator function into a forward-only Iterator.
// The generator signals the end of the sequence by returning false,
// and it is not called again after that.
func FromFunc[T any](next func() (T, bool)) Iterator[T] {
	return New[T](&funcCursor[T]{next: next})
}

type funcCursor[T any] struct {
	next   func() (T, bool)
	stop   func()
	cur    *T
	primed bool
	done   bool
}

func (c *funcCursor[T]) Advance() {
	c.prime()
	c.pull()
}

func (c *funcCursor[T]) Peek() *T {
	c.prime()
	return c.cur
}

func (c *funcCursor[T]) prime() {
	if c.primed {
		return
	}
	c.primed = true
	c.pull()
}

func (c *funcCursor[T]) pull() {
	if c.done {
		return
	}
	v, ok := c.next()
	if !ok {
		c.cur = nil
		c.close()
		return
	}
	c.cur = &v
}

func (c *funcCursor[T]) close() {
	if c.done {
		return
	}
	c.done = true
	c.cur = nil
	if c.stop != nil {
		c.stop()
	}
}

// Seq bridges an Iterator into a range-over-func sequence.
// Ranging over the returned sequence consumes the Iterator.
func Seq[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := it.Peek(); cur != nil; cur = it.Advance().Peek() {
			if !yield(*cur) {
				return
			}
		}
	}
}

// Collect consumes the Iterator and returns its elements.
func Collect[T any](it Iterator[T]) []T {
	var vs []T
	if n, ok := it.MinSize(); ok && 0 < n {
		vs = make([]T, 0, n)
	}
	for v := range Seq(it) {
		vs = append(vs, v)
	}
	return vs
}
