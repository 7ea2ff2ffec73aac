// Package hmap provides persistent hash maps.
package hmap

import (
	"github.com/benbjohnson/immutable"
	"github.com/fp4php/functional-collection/collection/internal/hashing"
	"github.com/fp4php/functional-collection/collection/option"
	"github.com/fp4php/functional-collection/collection/seq"
	"github.com/fp4php/functional-collection/util"
	"iter"
)

// HashMap is a persistent map. The zero HashMap is empty and ready to use
type HashMap[K comparable, V any] struct {
	m *immutable.Map[K, V]
}

func New[K comparable, V any]() HashMap[K, V] {
	return HashMap[K, V]{m: immutable.NewMap[K, V](hashing.For[K]())}
}

// Of builds a map out of pairs. Later pairs win over earlier ones with the same key
func Of[K comparable, V any](pairs ...util.Pair[K, V]) HashMap[K, V] {
	b := immutable.NewMapBuilder[K, V](hashing.For[K]())
	for _, p := range pairs {
		b.Set(p.Fst, p.Snd)
	}
	return HashMap[K, V]{m: b.Map()}
}

// FromMap copies a Go map
func FromMap[K comparable, V any](m map[K]V) HashMap[K, V] {
	b := immutable.NewMapBuilder[K, V](hashing.For[K]())
	for k, v := range m {
		b.Set(k, v)
	}
	return HashMap[K, V]{m: b.Map()}
}

// From collects pairs, like Of
func From[K comparable, V any](pairs iter.Seq2[K, V]) HashMap[K, V] {
	b := immutable.NewMapBuilder[K, V](hashing.For[K]())
	for k, v := range pairs {
		b.Set(k, v)
	}
	return HashMap[K, V]{m: b.Map()}
}

func (h HashMap[K, V]) underlying() *immutable.Map[K, V] {
	if h.m == nil {
		return immutable.NewMap[K, V](hashing.For[K]())
	}
	return h.m
}

func (h HashMap[K, V]) Len() int {
	if h.m == nil {
		return 0
	}
	return h.m.Len()
}

func (h HashMap[K, V]) IsEmpty() bool { return h.Len() == 0 }

func (h HashMap[K, V]) Get(k K) option.Option[V] {
	if h.m == nil {
		return option.None[V]()
	}
	v, ok := h.m.Get(k)
	return option.When(ok, v)
}

func (h HashMap[K, V]) Contains(k K) bool {
	return h.Get(k).IsSome()
}

func (h HashMap[K, V]) Updated(k K, v V) HashMap[K, V] {
	return HashMap[K, V]{m: h.underlying().Set(k, v)}
}

func (h HashMap[K, V]) Removed(k K) HashMap[K, V] {
	if !h.Contains(k) {
		return h
	}
	return HashMap[K, V]{m: h.m.Delete(k)}
}

// Filter keeps the entries satisfying pred
func (h HashMap[K, V]) Filter(pred func(K, V) bool) HashMap[K, V] {
	b := immutable.NewMapBuilder[K, V](hashing.For[K]())
	for k, v := range h.All() {
		if pred(k, v) {
			b.Set(k, v)
		}
	}
	return HashMap[K, V]{m: b.Map()}
}

func (h HashMap[K, V]) FilterKeys(pred func(K) bool) HashMap[K, V] {
	return h.Filter(func(k K, _ V) bool { return pred(k) })
}

func (h HashMap[K, V]) FilterValues(pred func(V) bool) HashMap[K, V] {
	return h.Filter(func(_ K, v V) bool { return pred(v) })
}

func (h HashMap[K, V]) Tap(f func(K, V)) HashMap[K, V] {
	for k, v := range h.All() {
		f(k, v)
	}
	return h
}

// All iterates over the entries of h in no particular order
func (h HashMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if h.m == nil {
			return
		}
		it := h.m.Iterator()
		for !it.Done() {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

func (h HashMap[K, V]) Keys() seq.ArrayList[K] {
	return seq.ArrayListFrom(func(yield func(K) bool) {
		for k := range h.All() {
			if !yield(k) {
				return
			}
		}
	})
}

func (h HashMap[K, V]) Values() seq.ArrayList[V] {
	return seq.ArrayListFrom(func(yield func(V) bool) {
		for _, v := range h.All() {
			if !yield(v) {
				return
			}
		}
	})
}

// Pairs returns the entries of h as pairs
func (h HashMap[K, V]) Pairs() seq.ArrayList[util.Pair[K, V]] {
	return seq.ArrayListFrom(func(yield func(util.Pair[K, V]) bool) {
		for k, v := range h.All() {
			if !yield(util.NewPair(k, v)) {
				return
			}
		}
	})
}

// ToMap copies h into a Go map
func (h HashMap[K, V]) ToMap() map[K]V {
	out := make(map[K]V, h.Len())
	for k, v := range h.All() {
		out[k] = v
	}
	return out
}

func MapValues[K comparable, V, W any](h HashMap[K, V], f func(V) W) HashMap[K, W] {
	b := immutable.NewMapBuilder[K, W](hashing.For[K]())
	for k, v := range h.All() {
		b.Set(k, f(v))
	}
	return HashMap[K, W]{m: b.Map()}
}

// Fold combines the entries of h, in no particular order, starting from zero
func Fold[K comparable, V, B any](h HashMap[K, V], zero B, f func(B, K, V) B) B {
	acc := zero
	for k, v := range h.All() {
		acc = f(acc, k, v)
	}
	return acc
}

// GroupBy groups values by key, preserving the order values came in
func GroupBy[A any, K comparable](values iter.Seq[A], key func(A) K) HashMap[K, seq.ArrayList[A]] {
	groups := New[K, seq.ArrayList[A]]()
	for v := range values {
		k := key(v)
		group, _ := groups.Get(k).Get()
		groups = groups.Updated(k, group.Appended(v))
	}
	return groups
}

// NonEmptyHashMap is a HashMap with at least one entry
type NonEmptyHashMap[K comparable, V any] struct {
	m HashMap[K, V]
}

func NonEmptyOf[K comparable, V any](head util.Pair[K, V], tail ...util.Pair[K, V]) NonEmptyHashMap[K, V] {
	return NonEmptyHashMap[K, V]{m: Of(tail...).Updated(head.Fst, head.Snd)}
}

// NonEmptyFrom is None when h is empty
func NonEmptyFrom[K comparable, V any](h HashMap[K, V]) option.Option[NonEmptyHashMap[K, V]] {
	return option.When(!h.IsEmpty(), NonEmptyHashMap[K, V]{m: h})
}

func (h NonEmptyHashMap[K, V]) Len() int                  { return h.m.Len() }
func (h NonEmptyHashMap[K, V]) Get(k K) option.Option[V]  { return h.m.Get(k) }
func (h NonEmptyHashMap[K, V]) All() iter.Seq2[K, V]      { return h.m.All() }
func (h NonEmptyHashMap[K, V]) ToHashMap() HashMap[K, V]  { return h.m }
func (h NonEmptyHashMap[K, V]) Keys() seq.ArrayList[K]    { return h.m.Keys() }
func (h NonEmptyHashMap[K, V]) Values() seq.ArrayList[V]  { return h.m.Values() }
func (h NonEmptyHashMap[K, V]) Removed(k K) HashMap[K, V] { return h.m.Removed(k) }

func (h NonEmptyHashMap[K, V]) Updated(k K, v V) NonEmptyHashMap[K, V] {
	return NonEmptyHashMap[K, V]{m: h.m.Updated(k, v)}
}

func (h NonEmptyHashMap[K, V]) Filter(pred func(K, V) bool) HashMap[K, V] {
	return h.m.Filter(pred)
}

func (h NonEmptyHashMap[K, V]) FilterKeys(pred func(K) bool) HashMap[K, V] {
	return h.m.FilterKeys(pred)
}

func (h NonEmptyHashMap[K, V]) FilterValues(pred func(V) bool) HashMap[K, V] {
	return h.m.FilterValues(pred)
}
