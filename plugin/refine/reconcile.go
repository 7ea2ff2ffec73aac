package refine

import (
	"github.com/fp4php/functional-collection/analyzer/reconciler"
	"github.com/fp4php/functional-collection/analyzer/types"
)

// Reconcile narrows original, the type of the predicate parameter, with assertions
func Reconcile(assertions AssertionSet, original *types.Union, rc Context) (*types.Union, bool) {
	if len(assertions) == 0 {
		return nil, false
	}
	reconciled := reconciler.ReconcileKeyedTypes(reconciler.Input{
		New:        assertions,
		ActiveNew:  assertions,
		Existing:   map[string]*types.Union{ConstKey: original},
		Referenced: map[string]bool{ConstKey: true},
		Codebase:   rc.Codebase,
	})
	narrowed, ok := reconciled[ConstKey]
	return narrowed, ok
}
