// Package set provides persistent hash sets.
package set

import (
	"cmp"
	"github.com/benbjohnson/immutable"
	"github.com/fp4php/functional-collection/collection/internal/hashing"
	"github.com/fp4php/functional-collection/collection/option"
	"iter"
	"slices"
)

// HashSet is a persistent set of comparable elements.
// The zero HashSet is empty and ready to use
type HashSet[A comparable] struct {
	set *immutable.Set[A]
}

func HashSetOf[A comparable](items ...A) HashSet[A] {
	s := immutable.NewSet[A](hashing.For[A](), items...)
	return HashSet[A]{set: &s}
}

// HashSetFrom collects values
func HashSetFrom[A comparable](values iter.Seq[A]) HashSet[A] {
	s := immutable.NewSet[A](hashing.For[A]())
	for v := range values {
		s = s.Add(v)
	}
	return HashSet[A]{set: &s}
}

func (s HashSet[A]) underlying() immutable.Set[A] {
	if s.set == nil {
		return immutable.NewSet[A](hashing.For[A]())
	}
	return *s.set
}

func (s HashSet[A]) Len() int      { return s.underlying().Len() }
func (s HashSet[A]) IsEmpty() bool { return s.Len() == 0 }

func (s HashSet[A]) Contains(a A) bool {
	return s.set != nil && s.set.Has(a)
}

func (s HashSet[A]) Updated(a A) HashSet[A] {
	updated := s.underlying().Add(a)
	return HashSet[A]{set: &updated}
}

func (s HashSet[A]) Removed(a A) HashSet[A] {
	if !s.Contains(a) {
		return s
	}
	removed := s.set.Delete(a)
	return HashSet[A]{set: &removed}
}

func (s HashSet[A]) Filter(pred func(A) bool) HashSet[A] {
	return HashSetFrom(func(yield func(A) bool) {
		for v := range s.All() {
			if pred(v) && !yield(v) {
				return
			}
		}
	})
}

func (s HashSet[A]) Union(other HashSet[A]) HashSet[A] {
	union := s
	for v := range other.All() {
		union = union.Updated(v)
	}
	return union
}

func (s HashSet[A]) Intersect(other HashSet[A]) HashSet[A] {
	return s.Filter(other.Contains)
}

func (s HashSet[A]) Diff(other HashSet[A]) HashSet[A] {
	return s.Filter(func(a A) bool { return !other.Contains(a) })
}

// Subset reports whether every element of s is in other
func (s HashSet[A]) Subset(other HashSet[A]) bool {
	for v := range s.All() {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}

// Head is any element of s
func (s HashSet[A]) Head() option.Option[A] {
	for v := range s.All() {
		return option.Some(v)
	}
	return option.None[A]()
}

func (s HashSet[A]) Tap(f func(A)) HashSet[A] {
	for v := range s.All() {
		f(v)
	}
	return s
}

// All iterates over the elements of s in no particular order
func (s HashSet[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		if s.set == nil {
			return
		}
		it := s.set.Iterator()
		for !it.Done() {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

func (s HashSet[A]) ToSlice() []A {
	return slices.Collect(s.All())
}

func Map[A, B comparable](s HashSet[A], f func(A) B) HashSet[B] {
	return HashSetFrom(func(yield func(B) bool) {
		for v := range s.All() {
			if !yield(f(v)) {
				return
			}
		}
	})
}

// Sorted returns the elements of s in ascending order
func Sorted[A cmp.Ordered](s HashSet[A]) []A {
	return slices.Sorted(s.All())
}

// FilterNotNull drops the nil element of s, if any
func FilterNotNull[A any](s HashSet[*A]) HashSet[*A] {
	return s.Removed(nil)
}

// NonEmptyHashSet is a HashSet with at least one element
type NonEmptyHashSet[A comparable] struct {
	set HashSet[A]
}

func NonEmptyHashSetOf[A comparable](head A, tail ...A) NonEmptyHashSet[A] {
	return NonEmptyHashSet[A]{set: HashSetOf(tail...).Updated(head)}
}

// NonEmptyHashSetFrom is None when s is empty
func NonEmptyHashSetFrom[A comparable](s HashSet[A]) option.Option[NonEmptyHashSet[A]] {
	return option.When(!s.IsEmpty(), NonEmptyHashSet[A]{set: s})
}

func (s NonEmptyHashSet[A]) Len() int              { return s.set.Len() }
func (s NonEmptyHashSet[A]) Contains(a A) bool     { return s.set.Contains(a) }
func (s NonEmptyHashSet[A]) All() iter.Seq[A]      { return s.set.All() }
func (s NonEmptyHashSet[A]) ToSlice() []A          { return s.set.ToSlice() }
func (s NonEmptyHashSet[A]) ToHashSet() HashSet[A] { return s.set }

// Any is an element of s, which always exists
func (s NonEmptyHashSet[A]) Any() A {
	return s.set.Head().MustGet()
}

func (s NonEmptyHashSet[A]) Updated(a A) NonEmptyHashSet[A] {
	return NonEmptyHashSet[A]{set: s.set.Updated(a)}
}

// Removed may remove the last element, so the guarantee is dropped
func (s NonEmptyHashSet[A]) Removed(a A) HashSet[A] { return s.set.Removed(a) }

func (s NonEmptyHashSet[A]) Filter(pred func(A) bool) HashSet[A] {
	return s.set.Filter(pred)
}
