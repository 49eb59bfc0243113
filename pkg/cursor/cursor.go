// Package cursor provides raw traversal positions over slices and sentinel terminated sequences.
//
// A Pos is not an iterator: it is a plain value that can be copied, compared and moved
// in both directions, and it never owns the sequence it points into.
// Positions are only comparable when they were derived from the same sequence.
//
// Fixed-size arrays are handled through slicing (arr[:]),
// and End always denotes the one-past-last position.
package cursor

import (
	"iter"
)

type Pos[T any] struct {
	data []T
	i    int
}

// Begin returns the position of the first element of s.
func Begin[T any](s []T) Pos[T] {
	return Pos[T]{data: s}
}

// End returns the one-past-last position of s.
func End[T any](s []T) Pos[T] {
	return Pos[T]{data: s, i: len(s)}
}

// EndNull scans s for its terminating zero value and returns its position.
// When s has no terminator, the end of s is returned.
func EndNull[T comparable](s []T) Pos[T] {
	var zero T
	for i, v := range s {
		if v == zero {
			return Pos[T]{data: s, i: i}
		}
	}
	return End(s)
}

// BeginString returns the first position of a null-terminated character sequence.
func BeginString(s string) Pos[byte] {
	return Begin([]byte(s))
}

// EndString returns the position of the terminating NUL byte of s,
// or the end of s when it contains no NUL byte.
func EndString(s string) Pos[byte] {
	return EndNull([]byte(s))
}

// Index is the offset of the position from the start of the underlying sequence.
func (p Pos[T]) Index() int { return p.i }

func (p Pos[T]) Next() Pos[T] { return p.Add(1) }

func (p Pos[T]) Prev() Pos[T] { return p.Add(-1) }

// Add moves the position by n, which may be negative.
func (p Pos[T]) Add(n int) Pos[T] {
	p.i += n
	return p
}

// Get returns a pointer to the element at the position,
// or nil when the position is outside of the sequence.
func (p Pos[T]) Get() *T {
	if p.i < 0 || len(p.data) <= p.i {
		return nil
	}
	return &p.data[p.i]
}

func (p Pos[T]) Equal(oth Pos[T]) bool { return p.i == oth.i }

func (p Pos[T]) Less(oth Pos[T]) bool { return p.i < oth.i }

// Distance returns the number of steps from p to to.
func (p Pos[T]) Distance(to Pos[T]) int { return to.i - p.i }

// Distance returns the number of elements in [first, last).
func Distance[T any](first, last Pos[T]) int {
	return first.Distance(last)
}

// Sequenceable is anything that can resolve its begin and end positions.
type Sequenceable[T any] interface {
	Begin() Pos[T]
	End() Pos[T]
}

// Range is a half-open position pair [First, Last).
type Range[T any] struct {
	First Pos[T]
	Last  Pos[T]
}

// Of returns the Range that covers s.
func Of[T any](s []T) Range[T] {
	return Range[T]{First: Begin(s), Last: End(s)}
}

// OfNull returns the Range from the start of s up to its zero value terminator.
func OfNull[T comparable](s []T) Range[T] {
	return Range[T]{First: Begin(s), Last: EndNull(s)}
}

// OfString returns the Range of a null-terminated character sequence.
func OfString(s string) Range[byte] {
	return OfNull([]byte(s))
}

// Span resolves the begin and end positions of seq.
func Span[T any](seq Sequenceable[T]) Range[T] {
	return Range[T]{First: seq.Begin(), Last: seq.End()}
}

// Values returns the elements of seq as a slice view that shares its storage.
func Values[T any](seq Sequenceable[T]) []T {
	return Span(seq).Slice()
}

func (r Range[T]) Begin() Pos[T] { return r.First }

func (r Range[T]) End() Pos[T] { return r.Last }

func (r Range[T]) Len() int {
	lo, hi := r.bounds()
	return hi - lo
}

// Slice returns the elements of the Range as a sub-slice of the underlying sequence.
// Writes through the returned slice are visible in the sequence.
// Positions outside of the sequence are clamped to its bounds.
func (r Range[T]) Slice() []T {
	lo, hi := r.bounds()
	return r.First.data[lo:hi:hi]
}

func (r Range[T]) bounds() (int, int) {
	n := len(r.First.data)
	lo := max(0, min(r.First.i, n))
	hi := max(lo, min(r.Last.i, n))
	return lo, hi
}

// Seq yields the elements of the Range in order.
func (r Range[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range r.Slice() {
			if !yield(v) {
				return
			}
		}
	}
}
