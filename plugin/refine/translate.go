package refine

import (
	"github.com/fp4php/functional-collection/analyzer/algebra"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/util"
	"slices"
	"strings"
)

// Translate turns what the predicate of rc proves about its parameter into an
// AssertionSet keyed by ConstKey.
//
// It returns false when the predicate cannot be understood, which is not the
// same as an empty AssertionSet: a predicate proving nothing about its parameter
func Translate(rc Context) (AssertionSet, bool) {
	bound, ok := boundName(rc.Predicate)
	if !ok {
		logger.Debug("predicate does not bind a plain parameter", "predicate", rc.Predicate)
		return nil, false
	}
	ret, preceding, ok := firstReturn(rc.Predicate.Statements())
	if !ok || ret.Expr == nil {
		logger.Debug("predicate returns no expression", "predicate", rc.Predicate)
		return nil, false
	}
	if preceding > maxPrecedingStatements {
		logger.Debug("predicate body is too complex", "predicate", rc.Predicate, "preceding", preceding)
		return nil, false
	}

	formula := rc.formulaGenerator().Formula(ret.Expr, rc.self())
	truths := algebra.Truths(formula)

	assertions := make(AssertionSet, len(truths))
	for key, clauses := range truths {
		if rest, ok := rootedAt(key, bound); ok {
			assertions[ConstKey+rest] = clauses
		}
	}
	logger.Debug("translated predicate", "return", ret.Expr, "formula", formula.String(), "assertions", assertions)
	return assertions, true
}

// boundName is the id, like `$x`, of the first parameter of predicate
func boundName(predicate ast.FunctionLike) (string, bool) {
	if predicate == nil {
		return "", false
	}
	params := predicate.Parameters()
	if len(params) == 0 || params[0].Variadic {
		return "", false
	}
	v, ok := params[0].Var.(*ast.Variable)
	if !ok {
		return "", false
	}
	return v.Id(), true
}

// maxPrecedingStatements bounds how many statements may run before the return
// a predicate is understood by. Only the returned expression is looked at, so
// the more statements precede it, the more likely they invalidate what it proves
const maxPrecedingStatements = 1

// firstReturn searches stmts depth-first, in source order, for a return statement.
// It also returns how many statements were visited before it
func firstReturn(stmts []ast.Stmt) (*ast.Return, int, bool) {
	var pending util.Stack[ast.Stmt]
	pushAll := func(stmts []ast.Stmt) {
		for _, stmt := range slices.Backward(stmts) {
			pending.Push(stmt)
		}
	}
	pushAll(stmts)
	for visited := 0; ; visited++ {
		stmt, ok := pending.Pop()
		if !ok {
			return nil, visited, false
		}
		if ret, isReturn := stmt.(*ast.Return); isReturn {
			return ret, visited, true
		}
		pushAll(ast.Children(stmt))
	}
}

// rootedAt returns what follows bound in key, if key is about bound itself or
// one of its properties or offsets. `$xs` is not rooted at `$x`
func rootedAt(key, bound string) (string, bool) {
	rest, ok := strings.CutPrefix(key, bound)
	if !ok {
		return "", false
	}
	if rest == "" || strings.HasPrefix(rest, "->") || strings.HasPrefix(rest, "[") {
		return rest, true
	}
	return "", false
}
