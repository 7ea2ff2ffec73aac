package refine

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/internal/log"
	"slices"
)

var logger = ast.ExprLogger(log.Section("refine"))

// FilterProvider refines the return type of the filter calls of Families
type FilterProvider struct{}

var _ hook.MethodReturnTypeProvider = FilterProvider{}

// MethodReturnType returns nil whenever the call cannot be refined
func (FilterProvider) MethodReturnType(event *hook.MethodReturnTypeEvent) *types.Union {
	decline := func(stage string) *types.Union {
		logger.Debug("not refining call", "stage", stage, "class", event.FQClassName, "method", event.MethodNameLowercase)
		return nil
	}
	if event.Source == nil || !event.Source.Analyzable() {
		return decline("receiver is not analyzable")
	}
	if slices.Contains(event.TemplateTypeParameters, nil) {
		return decline("unknown type arguments")
	}
	target, ok := ResolveTarget(event.FQClassName, event.MethodNameLowercase, event.TemplateTypeParameters)
	if !ok {
		return decline("no target")
	}
	predicate, ok := ExtractPredicate(event)
	if !ok {
		return decline("no predicate")
	}
	rc := Context{
		Predicate: predicate,
		Scope:     event.Context,
		Codebase:  event.Codebase,
		Source:    event.Source,
	}
	assertions, ok := Translate(rc)
	if !ok {
		return decline("predicate not understood")
	}
	narrowed, ok := Reconcile(assertions, target.Target, rc)
	if !ok {
		return decline("nothing to reconcile")
	}
	refined := target.Substitute(narrowed)
	logger.Debug("refined call", "class", event.FQClassName, "method", event.MethodNameLowercase, "to", refined.String())
	return refined
}
