package parser

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestParseExpr(t *testing.T) {
	tests := []struct {
		src, expected string
	}{
		{"$x", "$x"},
		{"42", "42"},
		{"4.5", "4.5"},
		{`"it's"`, `'it\'s'`},
		{"NULL", "null"},
		{"$x->prop->other", "$x->prop->other"},
		{"$x[0]['key']", "$x[0]['key']"},
		{"$xs->filter(fn($x) => $x !== null)", "$xs->filter(fn($x) => $x !== null)"},
		{"$xs->map(...)", "$xs->map(...)"},
		{"strlen(...$args, key: $v)", "strlen(...$args, key: $v)"},
		{"isset($x, $y->z)", "isset($x, $y->z)"},
		{"$x instanceof Foo", "$x instanceof Foo"},
		{"!$x", "!$x"},
		{"!($x && $y)", "!($x && $y)"},
		{"$a && $b || $c", "$a && $b || $c"},
		{"($a || $b) && $c", "($a || $b) && $c"},
		{"$a === null && $b", "$a === null && $b"},
		{"$a < 1 || $a >= 10", "$a < 1 || $a >= 10"},
		{"[$a, $b] = $pair", "[$a, $b] = $pair"},
		{"$x = $y = 1", "$x = $y = 1"},
		{"fn(?Foo &...$xs): bool => true", "fn(?Foo &...$xs) => true"},
		{"fn([$k, $v]) => $v", "fn([$k, $v]) => $v"},
		{"function($x) use ($y, &$z) { return $x; }", "function($x) use ($y, $z) {\n  return $x;\n}"},
		{"function(): ?int {}", "function() {}"},
		{"$x; // trailing", "$x"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			expr, err := ParseExpr(tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ast.ExprString(expr))
		})
	}
}

func TestParseExprFails(t *testing.T) {
	for _, src := range []string{"", "$", "$x +", "FOO", "$x $y", "1 = $x", "fn($x) $x", "'open", "/* open", "$x->", "function($x) { return $x;"} {
		t.Run(src, func(t *testing.T) {
			_, err := ParseExpr(src)
			assert.Error(t, err)
		})
	}
}

func TestParseFile(t *testing.T) {
	src := `<?php
/**
 * @var ArrayList<int|null> $xs
 */
$ys = $xs->filter(function($x) {
	if ($x === null) {
		return false;
	} else if ($x > 0) {
		return true;
	} else {
		return;
	}
});
# a comment
$ys->tap(fn($y) => $y);
`
	file, err := ParseFile("test.php", src)
	require.NoError(t, err)
	assert.Equal(t, "test.php", file.Name)
	require.Len(t, file.Stmts, 3)

	doc, ok := file.Stmts[0].(*ast.VarDoc)
	require.True(t, ok)
	assert.Equal(t, "ArrayList<int|null>", doc.Type)
	assert.Equal(t, "$xs", doc.Var.Id())

	assert.Equal(t, `$ys = $xs->filter(function($x) {
  if ($x === null) {
    return false;
  } else {
    if ($x > 0) {
      return true;
    } else {
      return;
    }
  }
});`, ast.StmtString(file.Stmts[1]))
	assert.Equal(t, "$ys->tap(fn($y) => $y);", ast.StmtString(file.Stmts[2]))
}

func TestSyntaxErrors(t *testing.T) {
	_, err := ParseFile("broken.php", "$x = 1;\n$y = ;")
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not parse broken.php")
	assert.ErrorContains(t, err, "syntax error at offset 13")

	_, err = ParseFile("doc.php", "/** not a var */ $x;")
	assert.ErrorContains(t, err, "@var Type $name")

	_, err = ParseFile("block.php", "if ($x) { $y;")
	assert.Error(t, err)
}

func TestPositions(t *testing.T) {
	expr, err := ParseExpr("  $xs->filter($f)")
	require.NoError(t, err)
	call, ok := expr.(*ast.MethodCall)
	require.True(t, ok)
	// positions are offsets plus one
	assert.EqualValues(t, 3, call.Pos())
	assert.EqualValues(t, 18, call.End())
	assert.EqualValues(t, 15, call.Args[0].Pos())
}
