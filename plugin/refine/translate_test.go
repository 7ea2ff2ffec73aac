package refine

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/parser"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testContext(t *testing.T, predicate string) Context {
	t.Helper()
	expr, err := parser.ParseExpr(predicate)
	require.NoError(t, err)
	fn, ok := expr.(ast.FunctionLike)
	require.True(t, ok, "expected a function, got %T", expr)
	return Context{Predicate: fn, Codebase: codebase.WithCollections()}
}

func TestTranslate(t *testing.T) {
	tests := []struct {
		predicate string
		expected  AssertionSet
	}{
		{"fn($x) => $x !== null", AssertionSet{"$__const": {{"!null"}}}},
		{"fn($x) => null === $x", AssertionSet{"$__const": {{"null"}}}},
		{"fn($x) => isset($x)", AssertionSet{"$__const": {{"isset"}}}},
		{"fn($x) => $x", AssertionSet{"$__const": {{"!falsy"}}}},
		{"fn($x) => $x->value !== null", AssertionSet{"$__const->value": {{"!null"}}}},
		{"fn($x) => $x[0] !== null", AssertionSet{"$__const[0]": {{"!null"}}}},
		{"fn($x) => $xs !== null", AssertionSet{}},
		{"fn($x) => $y === null && $x !== null", AssertionSet{"$__const": {{"!null"}}}},
		{"fn($x) => $x === true || $x === false", AssertionSet{"$__const": {{"false", "true"}}}},
		{"fn($x) => $x > 2", AssertionSet{}},
		{"fn($x) => $x == null", AssertionSet{"$__const": {{"falsy"}}}},
		{"fn($x) => $x != null", AssertionSet{"$__const": {{"!falsy"}}}},
		{"fn($x) => $x == true", AssertionSet{"$__const": {{"!falsy"}}}},
		{"fn($x) => false != $x", AssertionSet{"$__const": {{"!falsy"}}}},
		{"function($x) use ($y) { return $x instanceof Foo; }", AssertionSet{"$__const": {{"Foo"}}}},
		{"function($x) { $y = 1; return is_string($x); }", AssertionSet{"$__const": {{"string"}}}},
	}
	for _, test := range tests {
		t.Run(test.predicate, func(t *testing.T) {
			assertions, ok := Translate(testContext(t, test.predicate))
			require.True(t, ok)
			assert.Equal(t, test.expected, assertions)
		})
	}
}

func TestTranslateFails(t *testing.T) {
	predicates := []string{
		"fn() => true",
		"fn([$a]) => $a !== null",
		"fn(...$x) => $x !== null",
		"function($x) { return; }",
		"function($x) { $x; }",
		"function($x) { $a = 1; $b = 2; return $x !== null; }",
	}
	for _, predicate := range predicates {
		t.Run(predicate, func(t *testing.T) {
			_, ok := Translate(testContext(t, predicate))
			assert.False(t, ok)
		})
	}
}

func TestFirstReturn(t *testing.T) {
	rc := testContext(t, "function($x) { if ($x) { if ($y) { return 1; } } else { return 2; } return 3; }")
	ret, preceding, ok := firstReturn(rc.Predicate.Statements())
	require.True(t, ok)
	assert.Equal(t, "1", ret.Expr.(*ast.Literal).Value)
	assert.Equal(t, 2, preceding)
}

func TestRootedAt(t *testing.T) {
	for key, expected := range map[string]string{"$x": "", "$x->a": "->a", "$x[0]": "[0]", "$x->a->b": "->a->b"} {
		rest, ok := rootedAt(key, "$x")
		assert.True(t, ok, key)
		assert.Equal(t, expected, rest)
	}
	for _, key := range []string{"$xs", "$y", "$x_1", "x"} {
		_, ok := rootedAt(key, "$x")
		assert.False(t, ok, key)
	}
}

func TestReconcile(t *testing.T) {
	rc := Context{Codebase: codebase.WithCollections()}
	original := types.MustParseType("int|null")

	_, ok := Reconcile(AssertionSet{}, original, rc)
	assert.False(t, ok)

	narrowed, ok := Reconcile(AssertionSet{ConstKey: {{"!null"}}}, original, rc)
	require.True(t, ok)
	assert.Equal(t, "int", narrowed.String())

	_, ok = Reconcile(AssertionSet{ConstKey: {{"null"}, {"!null"}}}, original, rc)
	assert.False(t, ok)

	_, ok = Reconcile(AssertionSet{ConstKey: {{"~unknown"}}}, original, rc)
	assert.False(t, ok)
}

func TestExtractPredicate(t *testing.T) {
	event := func(method string, args ...ast.Expr) *hook.MethodReturnTypeEvent {
		e := &hook.MethodReturnTypeEvent{MethodNameLowercase: method}
		for _, arg := range args {
			e.Args = append(e.Args, &ast.Arg{Value: arg})
		}
		return e
	}
	arrow := &ast.ArrowFunction{Params: []*ast.Param{{Var: &ast.Variable{Name: "x"}}}, Expr: &ast.Variable{Name: "x"}}
	closure := &ast.Closure{Params: arrow.Params}

	predicate, ok := ExtractPredicate(event("filter", arrow))
	require.True(t, ok)
	assert.Same(t, arrow, predicate)

	predicate, ok = ExtractPredicate(event("filter", closure, arrow))
	require.True(t, ok)
	assert.Same(t, closure, predicate)

	_, ok = ExtractPredicate(event("filter", &ast.Variable{Name: "f"}))
	assert.False(t, ok)
	_, ok = ExtractPredicate(event("filter"))
	assert.False(t, ok)

	named := event("filter", arrow)
	named.Args[0].Name = "predicate"
	_, ok = ExtractPredicate(named)
	assert.False(t, ok)

	predicate, ok = ExtractPredicate(event("filternotnull"))
	require.True(t, ok)
	assert.Equal(t, "fn($elem) => isset($elem)", ast.ExprString(predicate))
}
