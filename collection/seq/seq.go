// Package seq provides persistent sequences: ArrayList, backed by a
// bit-partitioned trie, and LinkedList, a cons list, along with their
// NonEmpty variants.
//
// Operations never modify their receiver. They return new sequences
// sharing as much structure with it as possible.
package seq

import (
	"github.com/fp4php/functional-collection/collection/option"
	"iter"
)

// Seq is implemented by every sequence of this package
type Seq[A any] interface {
	Len() int
	IsEmpty() bool
	At(i int) option.Option[A]
	Head() option.Option[A]
	Last() option.Option[A]
	// All iterates over indices and elements
	All() iter.Seq2[int, A]
	Values() iter.Seq[A]
	ToSlice() []A
}

var (
	_ Seq[int] = ArrayList[int]{}
	_ Seq[int] = LinkedList[int]{}
	_ Seq[int] = NonEmptyArrayList[int]{}
	_ Seq[int] = NonEmptyLinkedList[int]{}
)

func indexed[A any](values iter.Seq[A]) iter.Seq2[int, A] {
	return func(yield func(int, A) bool) {
		i := 0
		for v := range values {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}

// Fold combines the elements of s from first to last, starting from zero
func Fold[A, B any](s Seq[A], zero B, f func(B, A) B) B {
	acc := zero
	for v := range s.Values() {
		acc = f(acc, v)
	}
	return acc
}

// Exists reports whether any element of s satisfies pred
func Exists[A any](s Seq[A], pred func(A) bool) bool {
	for v := range s.Values() {
		if pred(v) {
			return true
		}
	}
	return false
}

// Every reports whether all elements of s satisfy pred
func Every[A any](s Seq[A], pred func(A) bool) bool {
	return !Exists(s, func(a A) bool { return !pred(a) })
}

// Find returns the first element of s satisfying pred
func Find[A any](s Seq[A], pred func(A) bool) option.Option[A] {
	for v := range s.Values() {
		if pred(v) {
			return option.Some(v)
		}
	}
	return option.None[A]()
}
