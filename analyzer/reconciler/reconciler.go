// Package reconciler narrows the types of variables given assertions about them.
package reconciler

import (
	"cmp"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/internal/log"
	"maps"
	"slices"
	"strconv"
	"strings"
)

var logger = log.Section("reconciler")

// Input bundles the arguments of ReconcileKeyedTypes
type Input struct {
	// New holds, per variable id, a conjunction of disjunctions of assertions
	New map[string][][]string

	// ActiveNew holds the assertions of New which should actually be applied
	ActiveNew map[string][][]string

	// Existing are the types of variables before reconciliation
	Existing map[string]*types.Union

	// Changed, if not nil, receives the ids of the variables whose type changed
	Changed map[string]bool

	// Referenced ids are not reported as unused when they are dropped
	Referenced map[string]bool

	Codebase *codebase.Codebase
}

// ReconcileKeyedTypes returns Existing updated with what the assertions imply.
//
// Variables whose assertions contradict each other, or use tokens outside
// the assertion language, are omitted from the result. Assertions about
// variables with no known type are ignored, except for offsets of list-shaped
// arrays, which are narrowed in place inside their base variable
func ReconcileKeyedTypes(in Input) map[string]*types.Union {
	result := maps.Clone(in.Existing)
	if result == nil {
		result = make(map[string]*types.Union)
	}
	cb := in.Codebase
	if cb == nil {
		cb = codebase.New()
	}

	// deeper keys go first, so that narrowing $a[0] happens before assertions on $a itself
	keys := slices.SortedFunc(maps.Keys(in.New), func(a, b string) int {
		return cmp.Or(cmp.Compare(len(b), len(a)), strings.Compare(a, b))
	})
	dropped := make(map[string]bool)

	for _, key := range keys {
		assertions, active := in.ActiveNew[key]
		if !active || dropped[key] {
			continue
		}
		existing, known := result[key]
		base, offset, isOffset := splitOffsetKey(key)
		if !known && isOffset {
			existing, known = offsetType(result[base], offset)
		}
		if !known {
			logger.Debug("no type known for key, skipping", "key", key)
			continue
		}

		narrowed, ok := reconcileAll(existing, assertions, cb)
		if !ok || narrowed.IsNever() {
			logger.Debug("assertions could not be reconciled", "key", key, "type", existing, "assertions", assertions)
			if !in.Referenced[key] {
				logger.Info("impossible condition on unreferenced variable", "key", key)
			}
			delete(result, key)
			dropped[key] = true
			if isOffset {
				delete(result, base)
				dropped[base] = true
			}
			continue
		}
		if narrowed.Equal(existing) {
			continue
		}
		if in.Changed != nil {
			in.Changed[key] = true
		}
		if _, hasKey := in.Existing[key]; hasKey || !isOffset {
			result[key] = narrowed
			continue
		}
		if updated, ok := withOffsetType(result[base], offset, narrowed); ok {
			result[base] = updated
			if in.Changed != nil {
				in.Changed[base] = true
			}
		}
	}
	return result
}

// reconcileAll applies every disjunction in assertions to u in turn
func reconcileAll(u *types.Union, assertions [][]string, cb *codebase.Codebase) (*types.Union, bool) {
	for _, anyOf := range assertions {
		alternatives := make([]*types.Union, 0, len(anyOf))
		for _, assertion := range anyOf {
			narrowed, ok := reconcileAssertion(u, assertion, cb)
			if !ok {
				return nil, false
			}
			alternatives = append(alternatives, narrowed)
		}
		u = types.Combine(alternatives...)
	}
	return u, true
}

// splitOffsetKey splits `$a[0]` into `$a` and 0
func splitOffsetKey(key string) (string, int, bool) {
	if !strings.HasSuffix(key, "]") {
		return "", 0, false
	}
	open := strings.LastIndexByte(key, '[')
	if open <= 0 {
		return "", 0, false
	}
	offset, err := strconv.Atoi(key[open+1 : len(key)-1])
	if err != nil {
		return "", 0, false
	}
	return key[:open], offset, true
}

// offsetType is the type of base[offset], when base is made of list shapes with that offset
func offsetType(base *types.Union, offset int) (*types.Union, bool) {
	if base == nil || base.IsNever() {
		return nil, false
	}
	var items []*types.Union
	for _, a := range base.Atomics() {
		shape, ok := a.(types.TKeyedArray)
		if !ok || !shape.IsList || offset < 0 || offset >= len(shape.Items) {
			return nil, false
		}
		items = append(items, shape.Items[offset])
	}
	return types.Combine(items...), true
}

func withOffsetType(base *types.Union, offset int, narrowed *types.Union) (*types.Union, bool) {
	if base == nil {
		return nil, false
	}
	return base.Map(func(a types.Atomic) []types.Atomic {
		shape := a.(types.TKeyedArray)
		items := slices.Clone(shape.Items)
		items[offset] = narrowed
		return []types.Atomic{types.TKeyedArray{Items: items, IsList: shape.IsList}}
	}), true
}
