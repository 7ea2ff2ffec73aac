package refine

import (
	"github.com/fp4php/functional-collection/analyzer/types"
	"strings"
)

// Target is the type argument of a collection a filter call narrows
type Target struct {
	Target *types.Union
	// Substitute rebuilds the collection type the call returns, with the narrowed
	// type in place of Target. NonEmpty families rebuild their possibly empty counterpart
	Substitute func(narrowed *types.Union) *types.Union
}

type dispatchRule struct {
	name    string
	matches func(kind Kind, method string) bool
	resolve func(family string, args []*types.Union) (Target, bool)
}

// dispatchTable is tried in order, and the first matching rule resolves the target
var dispatchTable = []dispatchRule{
	{
		name:    "map keys",
		matches: kindAndMethod(KindMap, "filterkeys"),
		resolve: mapSlot(0),
	},
	{
		name:    "map values",
		matches: kindAndMethod(KindMap, "filtervalues"),
		resolve: mapSlot(1),
	},
	{
		name:    "stream pair keys",
		matches: kindAndMethod(KindStream, "filterkeys"),
		resolve: pairSlot(0),
	},
	{
		name:    "stream pair values",
		matches: kindAndMethod(KindStream, "filtervalues"),
		resolve: pairSlot(1),
	},
	{
		name: "elements",
		matches: func(kind Kind, method string) bool {
			return kind != KindMap && (method == "filter" || method == "filternotnull")
		},
		resolve: elementSlot,
	},
}

// ResolveTarget finds which type argument of family a call to method narrows.
// args are the type arguments of the receiver
func ResolveTarget(family, method string, args []*types.Union) (Target, bool) {
	kind, ok := KindOf(family)
	if !ok {
		return Target{}, false
	}
	method = strings.ToLower(method)
	for _, rule := range dispatchTable {
		if !rule.matches(kind, method) {
			continue
		}
		logger.Debug("resolving target", "rule", rule.name, "family", family, "method", method)
		return rule.resolve(family, args)
	}
	return Target{}, false
}

func kindAndMethod(kind Kind, method string) func(Kind, string) bool {
	return func(k Kind, m string) bool {
		return k == kind && m == method
	}
}

func rebuild(family string, params ...*types.Union) *types.Union {
	return types.Generic(withoutNonEmpty(family), params...)
}

func elementSlot(family string, args []*types.Union) (Target, bool) {
	if len(args) != 1 {
		return Target{}, false
	}
	return Target{
		Target: args[0],
		Substitute: func(narrowed *types.Union) *types.Union {
			return rebuild(family, narrowed)
		},
	}, true
}

func mapSlot(slot int) func(string, []*types.Union) (Target, bool) {
	return func(family string, args []*types.Union) (Target, bool) {
		if len(args) != 2 {
			return Target{}, false
		}
		return Target{
			Target: args[slot],
			Substitute: func(narrowed *types.Union) *types.Union {
				params := []*types.Union{args[0], args[1]}
				params[slot] = narrowed
				return rebuild(family, params...)
			},
		}, true
	}
}

// pairSlot resolves an element of the `list{K, V}` pairs a Stream emits
func pairSlot(slot int) func(string, []*types.Union) (Target, bool) {
	return func(family string, args []*types.Union) (Target, bool) {
		if len(args) != 1 {
			return Target{}, false
		}
		atomic, ok := args[0].Single()
		if !ok {
			return Target{}, false
		}
		pair, ok := atomic.(types.TKeyedArray)
		if !ok || !pair.IsList || len(pair.Items) != 2 {
			return Target{}, false
		}
		return Target{
			Target: pair.Items[slot],
			Substitute: func(narrowed *types.Union) *types.Union {
				items := []*types.Union{pair.Items[0], pair.Items[1]}
				items[slot] = narrowed
				return rebuild(family, types.List(items...))
			},
		}, true
	}
}
