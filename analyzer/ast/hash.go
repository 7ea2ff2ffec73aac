package ast

import (
	"encoding/binary"
	"go/token"
	"hash/fnv"
)

// hasher accumulates the structural characteristics of a node
// before hashing them with fnv
type hasher struct {
	arr []byte
}

func newHasher(kind string) *hasher {
	return &hasher{arr: []byte(kind)}
}

func (h *hasher) str(s string) *hasher {
	h.arr = binary.LittleEndian.AppendUint64(h.arr, uint64(len(s)))
	h.arr = append(h.arr, s...)
	return h
}

func (h *hasher) pos(p token.Pos) *hasher {
	h.arr = binary.LittleEndian.AppendUint64(h.arr, uint64(p))
	return h
}

func (h *hasher) flag(b bool) *hasher {
	if b {
		h.arr = append(h.arr, 1)
	} else {
		h.arr = append(h.arr, 0)
	}
	return h
}

func (h *hasher) rng(r Range) *hasher {
	h.arr = binary.LittleEndian.AppendUint64(h.arr, r.Hash())
	return h
}

func (h *hasher) node(n Node) *hasher {
	if n == nil {
		h.arr = append(h.arr, 0)
		return h
	}
	h.arr = binary.LittleEndian.AppendUint64(h.arr, n.Hash())
	return h
}

func (h *hasher) sum() uint64 {
	f := fnv.New64a()
	_, _ = f.Write(h.arr)
	return f.Sum64()
}

func nodes[N Node](h *hasher, ns []N) *hasher {
	h.arr = binary.LittleEndian.AppendUint64(h.arr, uint64(len(ns)))
	for _, n := range ns {
		h.node(n)
	}
	return h
}
