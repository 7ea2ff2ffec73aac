// Package refine narrows the element types of collections flowing out of
// filter-style calls, using what the predicate passed to the call proves
// about the elements it keeps.
//
// Given
//
//	/** @var ArrayList<int|null> $xs */
//	$ys = $xs->filter(fn($x) => $x !== null);
//
// the return type of the call is ArrayList<int> rather than ArrayList<int|null>.
//
// The predicate is understood with the same machinery the analyzer uses for
// if conditions: its first return expression is turned into a formula, whose
// truths about the predicate parameter are reconciled against the element
// type. Every stage declines rather than fails, in which case the analyzer
// keeps the return type it inferred on its own.
package refine

import (
	"github.com/fp4php/functional-collection/analyzer/algebra"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/scope"
)

// ConstKey is the key the predicate parameter is rewritten to in an AssertionSet
const ConstKey = "$__const"

// AssertionSet maps keys rooted at ConstKey, like `$__const` or `$__const[0]`,
// to a conjunction of disjunctions of assertions
type AssertionSet = map[string][][]string

// Context is what the translator needs to understand a predicate
type Context struct {
	Predicate ast.FunctionLike
	Scope     *scope.Context
	Codebase  *codebase.Codebase
	Source    hook.StatementsSource
}

func (rc Context) formulaGenerator() algebra.FormulaGenerator {
	if rc.Source != nil {
		return rc.Source.FormulaGenerator()
	}
	return algebra.FormulaGenerator{Codebase: rc.Codebase}
}

func (rc Context) self() string {
	if rc.Scope == nil {
		return ""
	}
	return rc.Scope.Self
}
