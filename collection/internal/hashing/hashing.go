// Package hashing picks the immutable.Hasher used by hash-based collections.
package hashing

import (
	"fmt"
	"github.com/benbjohnson/immutable"
	"hash/fnv"
)

// For returns the built-in hasher of immutable for primitive types, and a
// hasher over the printed value of a otherwise
func For[A comparable]() immutable.Hasher[A] {
	var zero A
	switch any(zero).(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, uintptr, string:
		return immutable.NewHasher(zero)
	}
	return printedHasher[A]{}
}

type printedHasher[A comparable] struct{}

func (printedHasher[A]) Hash(a A) uint32 {
	h := fnv.New32a()
	_, _ = fmt.Fprintf(h, "%#v", a)
	return h.Sum32()
}

func (printedHasher[A]) Equal(a, b A) bool { return a == b }
