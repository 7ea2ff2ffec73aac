package analyzer

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
	"strconv"
	"strings"
)

var closureType = types.Named("Closure")

func (sa *StatementsAnalyzer) analyzeExpr(expr ast.Expr, ctx *scope.Context) *types.Union {
	t := sa.inferExpr(expr, ctx)
	sa.exprTypes[expr] = t
	return t
}

func (sa *StatementsAnalyzer) inferExpr(expr ast.Expr, ctx *scope.Context) *types.Union {
	switch expr := expr.(type) {
	case *ast.Variable:
		if t, ok := ctx.Lookup(expr.Id()); ok {
			return t
		}
		sa.addIssue(ierr.New(ierr.NewUndefinedVariable{Positioner: expr, Name: expr.Name}))
		return types.Mixed()
	case *ast.Literal:
		switch expr.Kind {
		case ast.LitInt:
			return types.Int()
		case ast.LitFloat:
			return types.Float()
		default:
			return types.String()
		}
	case *ast.ConstFetch:
		switch expr.Name {
		case "null":
			return types.Null()
		case "true":
			return types.NewUnion(types.TTrue{})
		case "false":
			return types.NewUnion(types.TFalse{})
		}
		return types.Mixed()
	case *ast.Assign:
		t := sa.analyzeExpr(expr.Expr, ctx)
		sa.assign(expr.Var, t, ctx)
		return t
	case *ast.MethodCall:
		t, _ := sa.analyzeMethodCall(expr, ctx)
		return t
	case *ast.FuncCall:
		sa.analyzeArgs(expr.Args, ctx)
		if expr.FirstClassCallable {
			return closureType
		}
		if strings.HasPrefix(strings.ToLower(expr.Name), "is_") {
			return types.Bool()
		}
		return types.Mixed()
	case *ast.PropertyFetch:
		sa.analyzeExpr(expr.Var, ctx)
		return types.Mixed()
	case *ast.ArrayDimFetch:
		base := sa.analyzeExpr(expr.Var, ctx)
		sa.analyzeExpr(expr.Dim, ctx)
		if t, ok := listItem(base, expr.Dim); ok {
			return t
		}
		return types.Mixed()
	case *ast.ArrayLit:
		items := make([]*types.Union, len(expr.Items))
		for i, item := range expr.Items {
			items[i] = sa.analyzeExpr(item, ctx)
		}
		return types.List(items...)
	case *ast.BinaryOp:
		sa.analyzeExpr(expr.Left, ctx)
		sa.analyzeExpr(expr.Right, ctx)
		return types.Bool()
	case *ast.Not:
		sa.analyzeExpr(expr.Expr, ctx)
		return types.Bool()
	case *ast.Instanceof:
		sa.analyzeExpr(expr.Expr, ctx)
		return types.Bool()
	case *ast.Isset:
		// isset never reports undefined variables
		return types.Bool()
	case *ast.ArrowFunction, *ast.Closure:
		return closureType
	}
	logger.Warn("unexpected expression", "expr", expr)
	return types.Mixed()
}

// assign stores t into target, destructuring list shapes into `[$a, $b]` patterns
func (sa *StatementsAnalyzer) assign(target ast.Expr, t *types.Union, ctx *scope.Context) {
	switch target := target.(type) {
	case *ast.Variable:
		ctx.Assign(target.Id(), t)
	case *ast.ArrayLit:
		shape, _ := t.Single()
		keyed, isList := shape.(types.TKeyedArray)
		for i, item := range target.Items {
			itemType := types.Mixed()
			if isList && i < len(keyed.Items) {
				itemType = keyed.Items[i]
			}
			sa.assign(item, itemType, ctx)
		}
	default:
		sa.analyzeExpr(target, ctx)
	}
}

func listItem(base *types.Union, dim ast.Expr) (*types.Union, bool) {
	lit, ok := dim.(*ast.Literal)
	if !ok || lit.Kind != ast.LitInt {
		return nil, false
	}
	offset, err := strconv.Atoi(lit.Value)
	if err != nil {
		return nil, false
	}
	shape, ok := base.Single()
	if !ok {
		return nil, false
	}
	keyed, ok := shape.(types.TKeyedArray)
	if !ok || offset < 0 || offset >= len(keyed.Items) {
		return nil, false
	}
	return keyed.Items[offset], true
}

func (sa *StatementsAnalyzer) analyzeArgs(args []*ast.Arg, ctx *scope.Context) {
	for _, arg := range args {
		sa.analyzeExpr(arg.Value, ctx)
	}
}

// analyzeMethodCall infers the return type of call, giving registered
// providers the last word. It also returns the ids of the mutation-free
// methods call may resolve to
func (sa *StatementsAnalyzer) analyzeMethodCall(call *ast.MethodCall, ctx *scope.Context) (*types.Union, []string) {
	receiver := sa.analyzeExpr(call.Var, ctx)
	sa.analyzeArgs(call.Args, ctx)

	var results []*types.Union
	var pure []string
	for _, atomic := range receiver.Atomics() {
		var class string
		var params []*types.Union
		switch atomic := atomic.(type) {
		case types.TNull:
			continue
		case types.TNamedObject:
			class = atomic.Name
		case types.TGenericObject:
			class, params = atomic.Name, atomic.Params
		default:
			sa.addIssue(ierr.New(ierr.NewMixedMethodCall{Positioner: call, Method: call.Name}))
			results = append(results, types.Mixed())
			continue
		}
		t, methodId, mutationFree := sa.methodReturnType(call, class, params, ctx)
		results = append(results, t)
		if mutationFree {
			pure = append(pure, methodId)
		}
	}
	if call.FirstClassCallable {
		return closureType, nil
	}
	if len(results) == 0 {
		return types.Mixed(), pure
	}
	return types.Combine(results...), pure
}

func (sa *StatementsAnalyzer) methodReturnType(
	call *ast.MethodCall,
	className string,
	params []*types.Union,
	ctx *scope.Context,
) (t *types.Union, methodId string, mutationFree bool) {
	cb := sa.analyzer.Codebase
	class, ok := cb.Class(className)
	if !ok {
		sa.addIssue(ierr.New(ierr.NewUndefinedClass{Positioner: call, Name: className}))
		return types.Mixed(), "", false
	}
	methodId = class.Name + "::" + call.Name
	stub, _, ok := cb.FindMethod(class.Name, call.Name)
	if !ok {
		sa.addIssue(ierr.New(ierr.NewUndefinedMethod{Positioner: call, MethodId: methodId}))
		return types.Mixed(), methodId, false
	}

	// raw generic receivers have mixed type arguments
	bound := make([]*types.Union, len(class.Templates))
	bindings := make(map[string]*types.Union, len(class.Templates))
	for i, template := range class.Templates {
		bound[i] = types.Mixed()
		if i < len(params) {
			bound[i] = params[i]
		}
		bindings[template] = bound[i]
	}
	t = types.ReplaceTemplates(stub.Return, bindings)

	event := &hook.MethodReturnTypeEvent{
		Source:                 sa,
		FQClassName:            class.Name,
		MethodNameLowercase:    strings.ToLower(call.Name),
		Args:                   call.Args,
		TemplateTypeParameters: bound,
		Context:                ctx,
		Codebase:               cb,
		Call:                   call,
	}
	if provided := sa.analyzer.Registry.MethodReturnType(event); provided != nil {
		logger.Debug("return type provided by plugin", "call", call, "default", t.String(), "provided", provided.String())
		t = provided
	}
	return t, methodId, stub.MutationFree
}
