package seq

import (
	"github.com/fp4php/functional-collection/collection/option"
	"iter"
)

// NonEmptyArrayList is an ArrayList with at least one element.
// Filtering may remove every element, so Filter returns a plain ArrayList
type NonEmptyArrayList[A any] struct {
	list ArrayList[A]
}

func NonEmptyArrayListOf[A any](head A, tail ...A) NonEmptyArrayList[A] {
	return NonEmptyArrayList[A]{list: ArrayListOf(tail...).Prepended(head)}
}

// NonEmptyArrayListFrom is None when l is empty
func NonEmptyArrayListFrom[A any](l ArrayList[A]) option.Option[NonEmptyArrayList[A]] {
	return option.When(!l.IsEmpty(), NonEmptyArrayList[A]{list: l})
}

func (l NonEmptyArrayList[A]) Len() int                  { return l.list.Len() }
func (l NonEmptyArrayList[A]) IsEmpty() bool             { return false }
func (l NonEmptyArrayList[A]) At(i int) option.Option[A] { return l.list.At(i) }
func (l NonEmptyArrayList[A]) Head() option.Option[A]    { return l.list.Head() }
func (l NonEmptyArrayList[A]) Last() option.Option[A]    { return l.list.Last() }
func (l NonEmptyArrayList[A]) All() iter.Seq2[int, A]    { return l.list.All() }
func (l NonEmptyArrayList[A]) Values() iter.Seq[A]       { return l.list.Values() }
func (l NonEmptyArrayList[A]) ToSlice() []A              { return l.list.ToSlice() }

// First is the first element, which always exists
func (l NonEmptyArrayList[A]) First() A { return l.list.list.Get(0) }

func (l NonEmptyArrayList[A]) ToArrayList() ArrayList[A] { return l.list }

func (l NonEmptyArrayList[A]) Appended(a A) NonEmptyArrayList[A] {
	return NonEmptyArrayList[A]{list: l.list.Appended(a)}
}

func (l NonEmptyArrayList[A]) Prepended(a A) NonEmptyArrayList[A] {
	return NonEmptyArrayList[A]{list: l.list.Prepended(a)}
}

func (l NonEmptyArrayList[A]) Reverse() NonEmptyArrayList[A] {
	return NonEmptyArrayList[A]{list: l.list.Reverse()}
}

func (l NonEmptyArrayList[A]) Tail() ArrayList[A] { return l.list.Tail() }

func (l NonEmptyArrayList[A]) Filter(pred func(A) bool) ArrayList[A] {
	return l.list.Filter(pred)
}

func (l NonEmptyArrayList[A]) Tap(f func(A)) NonEmptyArrayList[A] {
	l.list.Tap(f)
	return l
}

func MapNonEmpty[A, B any](l NonEmptyArrayList[A], f func(A) B) NonEmptyArrayList[B] {
	return NonEmptyArrayList[B]{list: Map(l.list, f)}
}

// NonEmptyLinkedList is a LinkedList with at least one element
type NonEmptyLinkedList[A any] struct {
	list LinkedList[A]
}

func NonEmptyLinkedListOf[A any](head A, tail ...A) NonEmptyLinkedList[A] {
	return NonEmptyLinkedList[A]{list: LinkedListOf(tail...).Prepended(head)}
}

// NonEmptyLinkedListFrom is None when l is empty
func NonEmptyLinkedListFrom[A any](l LinkedList[A]) option.Option[NonEmptyLinkedList[A]] {
	return option.When(!l.IsEmpty(), NonEmptyLinkedList[A]{list: l})
}

func (l NonEmptyLinkedList[A]) Len() int                  { return l.list.Len() }
func (l NonEmptyLinkedList[A]) IsEmpty() bool             { return false }
func (l NonEmptyLinkedList[A]) At(i int) option.Option[A] { return l.list.At(i) }
func (l NonEmptyLinkedList[A]) Head() option.Option[A]    { return l.list.Head() }
func (l NonEmptyLinkedList[A]) Last() option.Option[A]    { return l.list.Last() }
func (l NonEmptyLinkedList[A]) All() iter.Seq2[int, A]    { return l.list.All() }
func (l NonEmptyLinkedList[A]) Values() iter.Seq[A]       { return l.list.Values() }
func (l NonEmptyLinkedList[A]) ToSlice() []A              { return l.list.ToSlice() }

func (l NonEmptyLinkedList[A]) First() A { return l.list.first.head }

func (l NonEmptyLinkedList[A]) ToLinkedList() LinkedList[A] { return l.list }

func (l NonEmptyLinkedList[A]) Prepended(a A) NonEmptyLinkedList[A] {
	return NonEmptyLinkedList[A]{list: l.list.Prepended(a)}
}

func (l NonEmptyLinkedList[A]) Appended(a A) NonEmptyLinkedList[A] {
	return NonEmptyLinkedList[A]{list: l.list.Appended(a)}
}

func (l NonEmptyLinkedList[A]) Reverse() NonEmptyLinkedList[A] {
	return NonEmptyLinkedList[A]{list: l.list.Reverse()}
}

func (l NonEmptyLinkedList[A]) Tail() LinkedList[A] { return l.list.Tail() }

func (l NonEmptyLinkedList[A]) Filter(pred func(A) bool) LinkedList[A] {
	return l.list.Filter(pred)
}
