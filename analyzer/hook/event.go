// Package hook defines the extension points plugins use to take part in the analysis.
package hook

import (
	"github.com/fp4php/functional-collection/analyzer/algebra"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
)

// StatementsSource is what is analyzing the code an event fired from
type StatementsSource interface {
	FilePath() string
	// Analyzable is false for sources whose types cannot be trusted,
	// such as code scanned without being analyzed
	Analyzable() bool
	FormulaGenerator() algebra.FormulaGenerator
}

// MethodReturnTypeEvent fires at every method call whose return type is being inferred
type MethodReturnTypeEvent struct {
	Source StatementsSource

	// FQClassName is the class of the receiver, as declared in the codebase
	FQClassName string

	// MethodNameLowercase is the called method, lowercased
	MethodNameLowercase string
	Args                []*ast.Arg

	// TemplateTypeParameters are the type arguments of the receiver, in declaration order
	TemplateTypeParameters []*types.Union
	Context                *scope.Context
	Codebase               *codebase.Codebase
	Call                   *ast.MethodCall
}

// MethodReturnTypeProvider may refine the return type of calls on the classes it is registered for
type MethodReturnTypeProvider interface {
	// MethodReturnType returns nil when the provider has nothing to say,
	// in which case the analyzer keeps the type it inferred on its own
	MethodReturnType(event *MethodReturnTypeEvent) *types.Union
}

// BeforeAddIssueEvent fires before an issue is reported
type BeforeAddIssueEvent struct {
	Issue    ierr.Issue
	Codebase *codebase.Codebase
}

// BeforeAddIssueHandler can veto reporting an issue
type BeforeAddIssueHandler interface {
	// BeforeAddIssue returns false to suppress the issue
	BeforeAddIssue(event *BeforeAddIssueEvent) bool
}
