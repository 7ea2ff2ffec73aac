// Package stream provides Stream, a lazy sequence of values which can be
// consumed once.
//
// Building a stream out of another one consumes the original: every
// operation hands the underlying iterator over to the stream it returns, and
// using a stream which was already consumed panics with ErrStreamConsumed.
package stream

import (
	"bufio"
	"github.com/fp4php/functional-collection/collection/option"
	"github.com/fp4php/functional-collection/collection/seq"
	"github.com/fp4php/functional-collection/util"
	"github.com/pkg/errors"
	"io"
	"iter"
)

// ErrStreamConsumed is what using a stream twice panics with
var ErrStreamConsumed = errors.New("stream has already been consumed")

type Stream[A any] struct {
	values   iter.Seq[A]
	consumed *bool
}

// FromSeq wraps values, which is iterated at most once
func FromSeq[A any](values iter.Seq[A]) Stream[A] {
	return Stream[A]{values: values, consumed: new(bool)}
}

// Emits is a stream of items
func Emits[A any](items ...A) Stream[A] {
	return FromSeq(func(yield func(A) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	})
}

// Range emits start, start+step... up to but excluding end. step must be positive
func Range(start, end, step int) Stream[int] {
	if step <= 0 {
		panic(errors.Errorf("stream: non-positive step %d", step))
	}
	return FromSeq(func(yield func(int) bool) {
		for i := start; i < end; i += step {
			if !yield(i) {
				return
			}
		}
	})
}

// Lines emits the lines read from r, without their line terminator.
// Reading stops at the first error
func Lines(r io.Reader) Stream[string] {
	return FromSeq(func(yield func(string) bool) {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
	})
}

// take marks s as consumed and returns its values
func (s Stream[A]) take() iter.Seq[A] {
	if s.consumed == nil {
		// the zero stream is empty
		s.consumed = new(bool)
		s.values = func(func(A) bool) {}
	}
	if *s.consumed {
		panic(ErrStreamConsumed)
	}
	*s.consumed = true
	return s.values
}

func (s Stream[A]) Filter(pred func(A) bool) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		for v := range values {
			if pred(v) && !yield(v) {
				return
			}
		}
	})
}

func (s Stream[A]) Take(n int) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		if n <= 0 {
			return
		}
		taken := 0
		for v := range values {
			if !yield(v) {
				return
			}
			if taken++; taken == n {
				return
			}
		}
	})
}

func (s Stream[A]) Drop(n int) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		dropped := 0
		for v := range values {
			if dropped < n {
				dropped++
				continue
			}
			if !yield(v) {
				return
			}
		}
	})
}

func (s Stream[A]) TakeWhile(pred func(A) bool) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		for v := range values {
			if !pred(v) || !yield(v) {
				return
			}
		}
	})
}

func (s Stream[A]) DropWhile(pred func(A) bool) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		dropping := true
		for v := range values {
			if dropping && pred(v) {
				continue
			}
			dropping = false
			if !yield(v) {
				return
			}
		}
	})
}

// Intersperse emits sep between every two values
func (s Stream[A]) Intersperse(sep A) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		first := true
		for v := range values {
			if !first && !yield(sep) {
				return
			}
			first = false
			if !yield(v) {
				return
			}
		}
	})
}

// Tap calls f on every value as it is emitted
func (s Stream[A]) Tap(f func(A)) Stream[A] {
	values := s.take()
	return FromSeq(func(yield func(A) bool) {
		for v := range values {
			f(v)
			if !yield(v) {
				return
			}
		}
	})
}

// terminal operations

// All hands the values of s over to a range loop
func (s Stream[A]) All() iter.Seq[A] {
	return s.take()
}

func (s Stream[A]) ToSlice() []A {
	var out []A
	for v := range s.take() {
		out = append(out, v)
	}
	return out
}

func (s Stream[A]) ToArrayList() seq.ArrayList[A] {
	return seq.ArrayListFrom(s.take())
}

// Head consumes s up to its first value
func (s Stream[A]) Head() option.Option[A] {
	for v := range s.take() {
		return option.Some(v)
	}
	return option.None[A]()
}

func (s Stream[A]) Last() option.Option[A] {
	last := option.None[A]()
	for v := range s.take() {
		last = option.Some(v)
	}
	return last
}

func (s Stream[A]) Count() int {
	count := 0
	for range s.take() {
		count++
	}
	return count
}

// Drain runs s for its side effects
func (s Stream[A]) Drain() {
	for range s.take() {
	}
}

func Map[A, B any](s Stream[A], f func(A) B) Stream[B] {
	return FromSeq(util.MapIter(s.take(), f))
}

// Concat emits the values of s followed by those of other
func Concat[A any](s, other Stream[A]) Stream[A] {
	return FromSeq(util.ConcatIter(s.take(), other.take()))
}

func FlatMap[A, B any](s Stream[A], f func(A) Stream[B]) Stream[B] {
	values := s.take()
	return FromSeq(func(yield func(B) bool) {
		for v := range values {
			for w := range f(v).take() {
				if !yield(w) {
					return
				}
			}
		}
	})
}

// FilterNotNull drops nil values
func FilterNotNull[A any](s Stream[*A]) Stream[*A] {
	return s.Filter(func(a *A) bool { return a != nil })
}

// Chunks groups values by n. The last chunk may be shorter
func Chunks[A any](s Stream[A], n int) Stream[seq.ArrayList[A]] {
	if n <= 0 {
		panic(errors.Errorf("stream: non-positive chunk size %d", n))
	}
	values := s.take()
	return FromSeq(func(yield func(seq.ArrayList[A]) bool) {
		var chunk seq.ArrayList[A]
		for v := range values {
			if chunk = chunk.Appended(v); chunk.Len() == n {
				if !yield(chunk) {
					return
				}
				chunk = seq.ArrayList[A]{}
			}
		}
		if !chunk.IsEmpty() {
			yield(chunk)
		}
	})
}

func Fold[A, B any](s Stream[A], zero B, f func(B, A) B) B {
	acc := zero
	for v := range s.take() {
		acc = f(acc, v)
	}
	return acc
}
