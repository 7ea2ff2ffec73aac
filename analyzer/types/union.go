// Package types implements the union type model the analyzer reasons about.
//
// A Union is an immutable, duplicate-free, ordered list of Atomic types.
// The order atomics were added in is preserved so that types print the
// way they were written, e.g. `int|null`.
package types

import (
	"github.com/hashicorp/go-set/v3"
	"slices"
	"strings"
)

type Union struct {
	atomics []Atomic
}

// NewUnion builds a Union out of atomics, dropping duplicates.
// Calling NewUnion with no atomics yields the empty (never) type
func NewUnion(atomics ...Atomic) *Union {
	seen := set.New[uint64](len(atomics))
	deduped := make([]Atomic, 0, len(atomics))
	for _, a := range atomics {
		if a == nil || !seen.Insert(a.Hash()) {
			continue
		}
		deduped = append(deduped, a)
	}
	return &Union{atomics: deduped}
}

// Combine returns the union of all of unions
func Combine(unions ...*Union) *Union {
	var all []Atomic
	for _, u := range unions {
		if u != nil {
			all = append(all, u.atomics...)
		}
	}
	return NewUnion(all...)
}

func Null() *Union   { return NewUnion(TNull{}) }
func Int() *Union    { return NewUnion(TInt{}) }
func Float() *Union  { return NewUnion(TFloat{}) }
func String() *Union { return NewUnion(TString{}) }
func Bool() *Union   { return NewUnion(TBool{}) }
func Mixed() *Union  { return NewUnion(TMixed{}) }
func Never() *Union  { return NewUnion() }

func Named(name string) *Union { return NewUnion(TNamedObject{Name: name}) }

func Generic(name string, params ...*Union) *Union {
	return NewUnion(TGenericObject{Name: name, Params: params})
}

// List is the list-shaped keyed array list{items...}
func List(items ...*Union) *Union {
	return NewUnion(TKeyedArray{Items: items, IsList: true})
}

// Nullable returns u|null
func Nullable(u *Union) *Union {
	return Combine(u, Null())
}

// Atomics returns a copy of the atomic types of u
func (u *Union) Atomics() []Atomic {
	return slices.Clone(u.atomics)
}

// Len is the number of atomic types in u
func (u *Union) Len() int { return len(u.atomics) }

// IsNever is true for the empty union, which no value inhabits
func (u *Union) IsNever() bool { return len(u.atomics) == 0 }

// Single returns the only atomic of u, if u has exactly one
func (u *Union) Single() (Atomic, bool) {
	if len(u.atomics) != 1 {
		return nil, false
	}
	return u.atomics[0], true
}

// Has reports whether any atomic of u satisfies pred
func (u *Union) Has(pred func(Atomic) bool) bool {
	return slices.ContainsFunc(u.atomics, pred)
}

// IsNullable reports whether null inhabits u
func (u *Union) IsNullable() bool {
	return u.Has(func(a Atomic) bool {
		switch a := a.(type) {
		case TNull:
			return true
		case TMixed:
			return !a.NonNull
		default:
			return false
		}
	})
}

// Filter returns a Union with the atomics of u for which keep returns true
func (u *Union) Filter(keep func(Atomic) bool) *Union {
	var kept []Atomic
	for _, a := range u.atomics {
		if keep(a) {
			kept = append(kept, a)
		}
	}
	return NewUnion(kept...)
}

// Map returns a Union with f applied to each atomic of u.
// f may return several atomics, or none to drop the atomic
func (u *Union) Map(f func(Atomic) []Atomic) *Union {
	var mapped []Atomic
	for _, a := range u.atomics {
		mapped = append(mapped, f(a)...)
	}
	return NewUnion(mapped...)
}

func (u *Union) String() string {
	if u == nil {
		return "<nil>"
	}
	if len(u.atomics) == 0 {
		return "never"
	}
	strs := make([]string, len(u.atomics))
	for i, a := range u.atomics {
		strs[i] = a.String()
	}
	return strings.Join(strs, "|")
}

// Hash is independent of the order of the atomics in u
func (u *Union) Hash() uint64 {
	hashes := make([]uint64, len(u.atomics))
	for i, a := range u.atomics {
		hashes[i] = a.Hash()
	}
	slices.Sort(hashes)
	return hashOf("Union", hashes...)
}

// Equal compares unions regardless of the order of their atomics
func (u *Union) Equal(other *Union) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.Hash() == other.Hash()
}
