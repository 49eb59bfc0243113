package iterkit

import (
	"context"

	"go.llib.dev/prelude/pkg/logging"
)

// Trace wraps an Iterator and writes a debug log entry for every operation made on it.
// When l is nil, logging.Default is used.
func Trace[T any](ctx context.Context, it Iterator[T], l *logging.Logger) Iterator[T] {
	if l == nil {
		l = logging.Default
	}
	return &traced[T]{ctx: ctx, it: it, logger: l}
}

type traced[T any] struct {
	ctx    context.Context
	it     Iterator[T]
	logger *logging.Logger
	steps  int
}

func (t *traced[T]) log(op string, ds ...logging.Detail) {
	if !t.logger.Enabled(logging.LevelDebug) {
		return
	}
	ds = append(ds, logging.Fields{"op": op, "steps": t.steps})
	t.logger.Debug(t.ctx, "iterator", ds...)
}

func (t *traced[T]) Advance() Iterator[T] {
	t.it.Advance()
	t.steps++
	t.log("advance", logging.LazyDetail(func() logging.Detail {
		return logging.Field("exhausted", t.it.Peek() == nil)
	}))
	return t
}

func (t *traced[T]) Peek() *T {
	cur := t.it.Peek()
	t.log("peek", logging.Field("exhausted", cur == nil))
	return cur
}

func (t *traced[T]) Deref() T {
	if t.it.Peek() == nil {
		t.log("deref", logging.ErrField(ErrExhausted))
	}
	return t.it.Deref()
}

func (t *traced[T]) MinSize() (int, bool) {
	n, ok := t.it.MinSize()
	t.log("min_size", logging.Fields{"size": n, "known": ok})
	return n, ok
}

func (t *traced[T]) MaxSize() (int, bool) {
	n, ok := t.it.MaxSize()
	t.log("max_size", logging.Fields{"size": n, "known": ok})
	return n, ok
}

func (t *traced[T]) Count() int {
	n := t.it.Count()
	t.steps += n
	t.log("count", logging.Field("count", n))
	return n
}

func (t *traced[T]) Last() *T {
	last := t.it.Last()
	t.log("last", logging.Field("found", last != nil))
	return last
}

func (t *traced[T]) Nth(n int) *T {
	cur := t.it.Nth(n)
	t.log("nth", logging.Fields{"n": n, "found": cur != nil})
	return cur
}
