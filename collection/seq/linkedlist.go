package seq

import (
	"github.com/fp4php/functional-collection/collection/option"
	"iter"
)

type cons[A any] struct {
	head A
	tail *cons[A]
}

// LinkedList is a singly linked list. Prepending and taking the tail are
// constant time, indexed access is linear. The zero LinkedList is empty
type LinkedList[A any] struct {
	first *cons[A]
	size  int
}

func LinkedListOf[A any](items ...A) LinkedList[A] {
	var l LinkedList[A]
	for i := len(items) - 1; i >= 0; i-- {
		l = l.Prepended(items[i])
	}
	return l
}

// LinkedListFrom collects values
func LinkedListFrom[A any](values iter.Seq[A]) LinkedList[A] {
	var items []A
	for v := range values {
		items = append(items, v)
	}
	return LinkedListOf(items...)
}

func (l LinkedList[A]) Len() int      { return l.size }
func (l LinkedList[A]) IsEmpty() bool { return l.size == 0 }

func (l LinkedList[A]) At(i int) option.Option[A] {
	if i < 0 || i >= l.size {
		return option.None[A]()
	}
	c := l.first
	for ; i > 0; i-- {
		c = c.tail
	}
	return option.Some(c.head)
}

func (l LinkedList[A]) Head() option.Option[A] {
	if l.first == nil {
		return option.None[A]()
	}
	return option.Some(l.first.head)
}

func (l LinkedList[A]) Last() option.Option[A] { return l.At(l.size - 1) }

// Tail shares every cell of l but the first
func (l LinkedList[A]) Tail() LinkedList[A] {
	if l.first == nil {
		return l
	}
	return LinkedList[A]{first: l.first.tail, size: l.size - 1}
}

func (l LinkedList[A]) Prepended(a A) LinkedList[A] {
	return LinkedList[A]{first: &cons[A]{head: a, tail: l.first}, size: l.size + 1}
}

// Appended copies every cell of l
func (l LinkedList[A]) Appended(a A) LinkedList[A] {
	return LinkedListOf(append(l.ToSlice(), a)...)
}

func (l LinkedList[A]) Filter(pred func(A) bool) LinkedList[A] {
	var kept []A
	for v := range l.Values() {
		if pred(v) {
			kept = append(kept, v)
		}
	}
	if len(kept) == l.size {
		return l
	}
	return LinkedListOf(kept...)
}

func (l LinkedList[A]) Reverse() LinkedList[A] {
	var reversed LinkedList[A]
	for v := range l.Values() {
		reversed = reversed.Prepended(v)
	}
	return reversed
}

func (l LinkedList[A]) Take(n int) LinkedList[A] {
	n = clamp(n, l.size)
	if n == l.size {
		return l
	}
	return LinkedListOf(l.ToSlice()[:n]...)
}

// Drop shares the cells of l it keeps
func (l LinkedList[A]) Drop(n int) LinkedList[A] {
	for n = clamp(n, l.size); n > 0; n-- {
		l = l.Tail()
	}
	return l
}

func (l LinkedList[A]) Tap(f func(A)) LinkedList[A] {
	for v := range l.Values() {
		f(v)
	}
	return l
}

func (l LinkedList[A]) All() iter.Seq2[int, A] {
	return indexed(l.Values())
}

func (l LinkedList[A]) Values() iter.Seq[A] {
	return func(yield func(A) bool) {
		for c := l.first; c != nil; c = c.tail {
			if !yield(c.head) {
				return
			}
		}
	}
}

func (l LinkedList[A]) ToSlice() []A {
	out := make([]A, 0, l.size)
	for v := range l.Values() {
		out = append(out, v)
	}
	return out
}

// ToArrayList copies l into an ArrayList
func (l LinkedList[A]) ToArrayList() ArrayList[A] {
	return ArrayListFrom(l.Values())
}

func MapLinked[A, B any](l LinkedList[A], f func(A) B) LinkedList[B] {
	out := make([]B, 0, l.size)
	for v := range l.Values() {
		out = append(out, f(v))
	}
	return LinkedListOf(out...)
}
