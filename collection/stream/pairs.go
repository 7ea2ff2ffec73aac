package stream

import (
	"github.com/fp4php/functional-collection/collection/hmap"
	"github.com/fp4php/functional-collection/util"
	"iter"
)

// Zip pairs up the values of a and b, stopping with the shorter of them
func Zip[A, B any](a Stream[A], b Stream[B]) Stream[util.Pair[A, B]] {
	left, right := a.take(), b.take()
	return FromSeq(func(yield func(util.Pair[A, B]) bool) {
		nextRight, stop := iter.Pull(right)
		defer stop()
		for l := range left {
			r, ok := nextRight()
			if !ok || !yield(util.NewPair(l, r)) {
				return
			}
		}
	})
}

// FromPairs emits the entries of pairs
func FromPairs[K, V any](pairs iter.Seq2[K, V]) Stream[util.Pair[K, V]] {
	return FromSeq(func(yield func(util.Pair[K, V]) bool) {
		for k, v := range pairs {
			if !yield(util.NewPair(k, v)) {
				return
			}
		}
	})
}

// FilterKeys keeps the pairs whose first element satisfies pred
func FilterKeys[K, V any](s Stream[util.Pair[K, V]], pred func(K) bool) Stream[util.Pair[K, V]] {
	return s.Filter(func(p util.Pair[K, V]) bool { return pred(p.Fst) })
}

// FilterValues keeps the pairs whose second element satisfies pred
func FilterValues[K, V any](s Stream[util.Pair[K, V]], pred func(V) bool) Stream[util.Pair[K, V]] {
	return s.Filter(func(p util.Pair[K, V]) bool { return pred(p.Snd) })
}

func Keys[K, V any](s Stream[util.Pair[K, V]]) Stream[K] {
	return Map(s, func(p util.Pair[K, V]) K { return p.Fst })
}

func Values[K, V any](s Stream[util.Pair[K, V]]) Stream[V] {
	return Map(s, func(p util.Pair[K, V]) V { return p.Snd })
}

// ToHashMap collects pairs. Later pairs win over earlier ones with the same key
func ToHashMap[K comparable, V any](s Stream[util.Pair[K, V]]) hmap.HashMap[K, V] {
	return hmap.Of(s.ToSlice()...)
}
