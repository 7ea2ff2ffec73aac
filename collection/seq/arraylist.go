package seq

import (
	"github.com/benbjohnson/immutable"
	"github.com/fp4php/functional-collection/collection/option"
	"iter"
)

// ArrayList is an indexed sequence with effectively constant time access,
// append and prepend. The zero ArrayList is empty and ready to use
type ArrayList[A any] struct {
	list *immutable.List[A]
}

func ArrayListOf[A any](items ...A) ArrayList[A] {
	return ArrayList[A]{list: immutable.NewList(items...)}
}

// ArrayListFrom collects values
func ArrayListFrom[A any](values iter.Seq[A]) ArrayList[A] {
	b := immutable.NewListBuilder[A]()
	for v := range values {
		b.Append(v)
	}
	return ArrayList[A]{list: b.List()}
}

func (l ArrayList[A]) Len() int {
	if l.list == nil {
		return 0
	}
	return l.list.Len()
}

func (l ArrayList[A]) IsEmpty() bool { return l.Len() == 0 }

func (l ArrayList[A]) At(i int) option.Option[A] {
	if i < 0 || i >= l.Len() {
		return option.None[A]()
	}
	return option.Some(l.list.Get(i))
}

func (l ArrayList[A]) Head() option.Option[A] { return l.At(0) }
func (l ArrayList[A]) Last() option.Option[A] { return l.At(l.Len() - 1) }

// Tail drops the first element, if any
func (l ArrayList[A]) Tail() ArrayList[A] { return l.Drop(1) }

func (l ArrayList[A]) underlying() *immutable.List[A] {
	if l.list == nil {
		return immutable.NewList[A]()
	}
	return l.list
}

func (l ArrayList[A]) Appended(a A) ArrayList[A] {
	return ArrayList[A]{list: l.underlying().Append(a)}
}

func (l ArrayList[A]) Prepended(a A) ArrayList[A] {
	return ArrayList[A]{list: l.underlying().Prepend(a)}
}

// Updated replaces the element at i, or returns l unchanged if i is out of range
func (l ArrayList[A]) Updated(i int, a A) ArrayList[A] {
	if i < 0 || i >= l.Len() {
		return l
	}
	return ArrayList[A]{list: l.list.Set(i, a)}
}

// Concat appends all the elements of other
func (l ArrayList[A]) Concat(other Seq[A]) ArrayList[A] {
	b := immutable.NewListBuilder[A]()
	for v := range l.Values() {
		b.Append(v)
	}
	for v := range other.Values() {
		b.Append(v)
	}
	return ArrayList[A]{list: b.List()}
}

// Filter keeps the elements satisfying pred
func (l ArrayList[A]) Filter(pred func(A) bool) ArrayList[A] {
	b := immutable.NewListBuilder[A]()
	for v := range l.Values() {
		if pred(v) {
			b.Append(v)
		}
	}
	return ArrayList[A]{list: b.List()}
}

func (l ArrayList[A]) Reverse() ArrayList[A] {
	b := immutable.NewListBuilder[A]()
	for i := l.Len() - 1; i >= 0; i-- {
		b.Append(l.list.Get(i))
	}
	return ArrayList[A]{list: b.List()}
}

// Take keeps the first n elements
func (l ArrayList[A]) Take(n int) ArrayList[A] {
	n = clamp(n, l.Len())
	if n == l.Len() {
		return l
	}
	return ArrayList[A]{list: l.underlying().Slice(0, n)}
}

// Drop removes the first n elements
func (l ArrayList[A]) Drop(n int) ArrayList[A] {
	n = clamp(n, l.Len())
	if n == 0 {
		return l
	}
	return ArrayList[A]{list: l.underlying().Slice(n, l.Len())}
}

// Tap calls f on every element and returns l unchanged
func (l ArrayList[A]) Tap(f func(A)) ArrayList[A] {
	for v := range l.Values() {
		f(v)
	}
	return l
}

func (l ArrayList[A]) All() iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		if l.list == nil {
			return
		}
		it := l.list.Iterator()
		for !it.Done() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

func (l ArrayList[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, v := range l.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (l ArrayList[A]) ToSlice() []A {
	out := make([]A, 0, l.Len())
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

func clamp(n, size int) int {
	return max(0, min(n, size))
}

func Map[A, B any](l ArrayList[A], f func(A) B) ArrayList[B] {
	b := immutable.NewListBuilder[B]()
	for v := range l.Values() {
		b.Append(f(v))
	}
	return ArrayList[B]{list: b.List()}
}

func FlatMap[A, B any](l ArrayList[A], f func(A) Seq[B]) ArrayList[B] {
	b := immutable.NewListBuilder[B]()
	for v := range l.Values() {
		for w := range f(v).Values() {
			b.Append(w)
		}
	}
	return ArrayList[B]{list: b.List()}
}

// FilterNotNull drops the nil elements of l
func FilterNotNull[A any](l ArrayList[*A]) ArrayList[*A] {
	return l.Filter(func(a *A) bool { return a != nil })
}
