package refine

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"strings"
)

// ExtractPredicate returns the literal function the call filters with.
//
// Only arrow functions and closures written in place as the first positional
// argument are understood: there is no way to look into a predicate passed as
// a variable or a callable name.
// filterNotNull() takes no predicate and behaves as `fn($elem) => isset($elem)`
func ExtractPredicate(event *hook.MethodReturnTypeEvent) (ast.FunctionLike, bool) {
	if event.Call != nil && event.Call.FirstClassCallable {
		return nil, false
	}
	if len(event.Args) == 0 {
		if strings.EqualFold(event.MethodNameLowercase, "filterNotNull") {
			return notNullPredicate(), true
		}
		return nil, false
	}
	arg := event.Args[0]
	if arg.Unpack || arg.Name != "" {
		return nil, false
	}
	switch predicate := arg.Value.(type) {
	case *ast.ArrowFunction:
		return predicate, true
	case *ast.Closure:
		return predicate, true
	}
	return nil, false
}

func notNullPredicate() *ast.ArrowFunction {
	elem := &ast.Variable{Name: "elem"}
	return &ast.ArrowFunction{
		Params: []*ast.Param{{Var: elem}},
		Expr:   &ast.Isset{Vars: []ast.Expr{elem}},
	}
}
