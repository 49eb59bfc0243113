package iterkit

import "go.llib.dev/prelude/pkg/cursor"

// SliceIterator is the random access Iterator over a slice.
//
// It captures the start and end of the slice when it is created,
// and does not observe later structural changes of the backing storage.
// Using a SliceIterator after the backing slice was resized or truncated is undefined;
// writes through the returned element pointers are visible in the slice.
type SliceIterator[T any] struct {
	data    []T
	current int
	end     int
}

// Slice returns an Iterator over the elements of s.
func Slice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{data: s, end: len(s)}
}

// FromRange returns an Iterator over the half-open position pair of r.
func FromRange[T any](r cursor.Range[T]) *SliceIterator[T] {
	return Slice(r.Slice())
}

func (i *SliceIterator[T]) Advance() Iterator[T] {
	if i.current < i.end {
		i.current++
	}
	return i
}

func (i *SliceIterator[T]) Peek() *T {
	if i.current < i.end {
		return &i.data[i.current]
	}
	return nil
}

func (i *SliceIterator[T]) Deref() T {
	return Deref[T](i)
}

func (i *SliceIterator[T]) MinSize() (int, bool) {
	return i.end - i.current, true
}

func (i *SliceIterator[T]) MaxSize() (int, bool) {
	return i.MinSize()
}

func (i *SliceIterator[T]) Count() int {
	n := i.end - i.current
	i.current = i.end
	return n
}

func (i *SliceIterator[T]) Last() *T {
	if i.end <= i.current {
		i.current = i.end
		return nil
	}
	i.current = i.end
	return &i.data[i.end-1]
}

func (i *SliceIterator[T]) Nth(n int) *T {
	if n < 0 {
		return nil
	}
	if i.end-i.current <= n {
		i.current = i.end
		return nil
	}
	i.current += n
	return &i.data[i.current]
}

// Remaining returns the not yet visited elements as a view into the backing slice.
func (i *SliceIterator[T]) Remaining() []T {
	return i.data[i.current:i.end]
}
