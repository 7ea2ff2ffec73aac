// Package analyzer infers the types of variables in snippets, firing the
// plugin hooks of a hook.Registry as it goes.
package analyzer

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/parser"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/internal/log"
	"github.com/pkg/errors"
)

var logger = ast.ExprLogger(log.Section("analyzer"))

// Analyzer is safe to share between goroutines once plugins are registered,
// as every analysis builds its own StatementsAnalyzer
type Analyzer struct {
	Codebase *codebase.Codebase
	Registry *hook.Registry
	// Globals are the variables every file starts with
	Globals map[string]*types.Union
}

func New(cb *codebase.Codebase, registry *hook.Registry) *Analyzer {
	if cb == nil {
		cb = codebase.WithCollections()
	}
	if registry == nil {
		registry = hook.NewRegistry()
	}
	return &Analyzer{Codebase: cb, Registry: registry}
}

// Result is the outcome of analyzing a file
type Result struct {
	File *ast.File
	// Context holds the types of variables at the end of the file
	Context *scope.Context
	Issues  *ierr.Issues
	// ExprTypes holds the type inferred for every analyzed expression
	ExprTypes map[ast.Expr]*types.Union
}

// TypeOf returns the type of the variable id, such as `$x`, at the end of the file
func (r *Result) TypeOf(id string) (*types.Union, bool) {
	return r.Context.Lookup(id)
}

// AnalyzeSource parses and analyzes src
func (a *Analyzer) AnalyzeSource(name, src string) (*Result, error) {
	file, err := parser.ParseFile(name, src)
	if err != nil {
		return nil, errors.Wrap(err, "could not analyze source")
	}
	return a.AnalyzeFile(file), nil
}

// AnalyzeFile analyzes the statements of file in a fresh scope
func (a *Analyzer) AnalyzeFile(file *ast.File) *Result {
	sa := &StatementsAnalyzer{
		analyzer:  a,
		filePath:  file.Name,
		exprTypes: make(map[ast.Expr]*types.Union),
	}
	ctx := scope.New("")
	for id, t := range a.Globals {
		ctx.Assign(id, t)
	}
	sa.analyzeStmts(file.Stmts, ctx)
	logger.Debug("analyzed file", "file", file.Name, "issues", sa.issues)
	return &Result{
		File:      file,
		Context:   ctx,
		Issues:    sa.issues,
		ExprTypes: sa.exprTypes,
	}
}
