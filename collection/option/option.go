// Package option provides Option, a value which may be absent.
package option

import (
	"fmt"
)

// Option holds either a value (Some) or nothing (None).
// The zero Option is None
type Option[A any] struct {
	value A
	ok    bool
}

func Some[A any](a A) Option[A] {
	return Option[A]{value: a, ok: true}
}

func None[A any]() Option[A] {
	return Option[A]{}
}

// FromPointer is None for nil pointers and Some of the pointed-to value otherwise
func FromPointer[A any](p *A) Option[A] {
	if p == nil {
		return None[A]()
	}
	return Some(*p)
}

// When is Some(a) if cond holds
func When[A any](cond bool, a A) Option[A] {
	if !cond {
		return None[A]()
	}
	return Some(a)
}

func (o Option[A]) IsSome() bool { return o.ok }
func (o Option[A]) IsNone() bool { return !o.ok }

// Get returns the value, and whether there is one
func (o Option[A]) Get() (A, bool) {
	return o.value, o.ok
}

// MustGet panics on None
func (o Option[A]) MustGet() A {
	if !o.ok {
		panic("option: MustGet called on None")
	}
	return o.value
}

func (o Option[A]) GetOrElse(fallback A) A {
	if !o.ok {
		return fallback
	}
	return o.value
}

// OrElse returns o if it is Some and other otherwise
func (o Option[A]) OrElse(other Option[A]) Option[A] {
	if o.ok {
		return o
	}
	return other
}

// Filter turns Some into None when the value does not satisfy pred
func (o Option[A]) Filter(pred func(A) bool) Option[A] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[A]()
}

// Tap calls f with the value, if any, and returns o unchanged
func (o Option[A]) Tap(f func(A)) Option[A] {
	if o.ok {
		f(o.value)
	}
	return o
}

func (o Option[A]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

func Map[A, B any](o Option[A], f func(A) B) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return Some(f(o.value))
}

func FlatMap[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if !o.ok {
		return None[B]()
	}
	return f(o.value)
}

// Fold returns ifNone() for None and ifSome of the value otherwise
func Fold[A, B any](o Option[A], ifNone func() B, ifSome func(A) B) B {
	if !o.ok {
		return ifNone()
	}
	return ifSome(o.value)
}
