package refine

import (
	"github.com/fp4php/functional-collection/analyzer/algebra"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/parser"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

type testSource struct {
	cb         *codebase.Codebase
	analyzable bool
}

func (s testSource) FilePath() string { return "test.php" }
func (s testSource) Analyzable() bool { return s.analyzable }
func (s testSource) FormulaGenerator() algebra.FormulaGenerator {
	return algebra.FormulaGenerator{Codebase: s.cb}
}

// testEvent builds the event of calling `$receiver->call` on a receiver of type receiver
func testEvent(t *testing.T, receiver, call string) *hook.MethodReturnTypeEvent {
	t.Helper()
	expr, err := parser.ParseExpr("$receiver->" + call)
	require.NoError(t, err)
	methodCall, ok := expr.(*ast.MethodCall)
	require.True(t, ok, "expected a method call, got %T", expr)

	atomic, ok := types.MustParseType(receiver).Single()
	require.True(t, ok)
	generic, ok := atomic.(types.TGenericObject)
	require.True(t, ok, "expected a generic receiver, got %s", receiver)

	cb := codebase.WithCollections()
	return &hook.MethodReturnTypeEvent{
		Source:                 testSource{cb: cb, analyzable: true},
		FQClassName:            generic.Name,
		MethodNameLowercase:    methodCall.Name,
		Args:                   methodCall.Args,
		TemplateTypeParameters: generic.Params,
		Context:                scope.New(""),
		Codebase:               cb,
		Call:                   methodCall,
	}
}

func testRefine(t *testing.T, receiver, call string) *types.Union {
	t.Helper()
	return FilterProvider{}.MethodReturnType(testEvent(t, receiver, call))
}

func testRefined(t *testing.T, receiver, call, expected string) {
	t.Helper()
	refined := testRefine(t, receiver, call)
	require.NotNil(t, refined, "%s->%s was not refined", receiver, call)
	assert.Equal(t, expected, refined.String())
}

func TestScenarios(t *testing.T) {
	t.Run("filter not null", func(t *testing.T) {
		testRefined(t, "ArrayList<int|null>", "filter(fn($x) => $x !== null)", "ArrayList<int>")
	})
	t.Run("filter map values with yoda condition", func(t *testing.T) {
		testRefined(t, "HashMap<string, int|null>", "filterValues(fn($v) => null !== $v)", "HashMap<string, int>")
	})
	t.Run("instanceof drops the non empty guarantee", func(t *testing.T) {
		testRefined(t, "NonEmptyHashSet<Foo|null>", "filter(fn($x) => $x instanceof Foo)", "HashSet<Foo>")
	})
	t.Run("filterNotNull without arguments", func(t *testing.T) {
		testRefined(t, "ArrayList<int|null>", "filterNotNull()", "ArrayList<int>")
	})
	t.Run("predicate passed as a variable", func(t *testing.T) {
		assert.Nil(t, testRefine(t, "ArrayList<int|null>", "filter($externalCallableVariable)"))
	})
}

func TestNullCheckNarrowsExactly(t *testing.T) {
	for _, elem := range []string{"int", "string", "Foo", "list{int, string}", "int|float", "ArrayList<int|null>"} {
		t.Run(elem, func(t *testing.T) {
			receiver := "ArrayList<" + elem + "|null>"
			refined := testRefine(t, receiver, "filter(fn($x) => $x !== null)")
			require.NotNil(t, refined)
			expected := types.Generic("ArrayList", types.MustParseType(elem))
			assert.True(t, expected.Equal(refined), "expected %s, got %s", expected, refined)
		})
	}
}

func TestAmbiguousPredicatesAreNotRefined(t *testing.T) {
	calls := []string{
		"filter(function($x) { $a = 1; $b = 2; return $x !== null; })",
		"filter(function($x) { $a = 1; if ($a) { $b = 2; } return $x !== null; })",
		"filter(fn() => true)",
		"filter(function() { return true; })",
		"filter(function($x) { return; })",
		"filter(function($x) { $x; })",
		"filter(fn([$a, $b]) => $a !== null)",
		"filter(fn(...$xs) => $xs !== null)",
		"filter('is_int')",
		"filter(is_int(...))",
		"filter(...$predicates)",
		"filter(fn($x) => $x > 1)",
		"filter(fn($x) => $y !== null)",
		"filterValues(fn($x) => $x !== null)",
		"map(fn($x) => $x !== null)",
		"filter(...)",
		"filter(other: fn($x) => $x !== null)",
		"filter(predicate: fn($x) => $x !== null)",
	}
	for _, call := range calls {
		t.Run(call, func(t *testing.T) {
			assert.Nil(t, testRefine(t, "ArrayList<int|null>", call))
		})
	}
}

func TestNonEmptyFamiliesRebuildPossiblyEmptyFamilies(t *testing.T) {
	for _, family := range []string{"NonEmptySeq", "NonEmptyArrayList", "NonEmptyLinkedList", "NonEmptySet", "NonEmptyHashSet"} {
		t.Run(family, func(t *testing.T) {
			refined := testRefine(t, family+"<int|null>", "filter(fn($x) => $x !== null)")
			require.NotNil(t, refined)
			assert.Equal(t, family[len("NonEmpty"):]+"<int>", refined.String())
		})
	}
	testRefined(t, "NonEmptyHashMap<int|null, string|null>", "filterKeys(fn($k) => $k !== null)", "HashMap<int, string|null>")
}

func TestMapSlotsAreIndependent(t *testing.T) {
	testRefined(t, "HashMap<int|null, string|null>", "filterKeys(fn($k) => $k !== null)", "HashMap<int, string|null>")
	testRefined(t, "HashMap<int|null, string|null>", "filterValues(fn($v) => $v !== null)", "HashMap<int|null, string>")
	testRefined(t, "Map<int|null, string|null>", "filterValues(fn($v) => is_string($v))", "Map<int|null, string>")
}

func TestFilterNotNullIsIssetFilter(t *testing.T) {
	for _, receiver := range []string{"ArrayList<int|null>", "HashSet<Foo|null>", "Stream<string|null>", "LinkedList<mixed>"} {
		t.Run(receiver, func(t *testing.T) {
			implicit := testRefine(t, receiver, "filterNotNull()")
			explicit := testRefine(t, receiver, "filter(fn($x) => isset($x))")
			require.NotNil(t, implicit)
			require.NotNil(t, explicit)
			assert.Equal(t, explicit.String(), implicit.String())
		})
	}
	testRefined(t, "LinkedList<mixed>", "FilterNotNull()", "LinkedList<non-null-mixed>")
}

func TestStreamPairs(t *testing.T) {
	testRefined(t, "Stream<list{int|null, string|null}>", "filterKeys(fn($k) => $k !== null)", "Stream<list{int, string|null}>")
	testRefined(t, "Stream<list{int|null, string|null}>", "filterValues(fn($v) => $v !== null)", "Stream<list{int|null, string}>")
	testRefined(t, "Stream<list{int|null, string|null}>", "filter(fn($p) => $p[1] !== null)", "Stream<list{int|null, string}>")

	assert.Nil(t, testRefine(t, "Stream<int|null>", "filterKeys(fn($k) => $k !== null)"))
	assert.Nil(t, testRefine(t, "Stream<list{int|null}>", "filterValues(fn($v) => $v !== null)"))
	assert.Nil(t, testRefine(t, "Stream<list{int, int, int}>", "filterValues(fn($v) => $v !== null)"))
}

func TestPredicateForms(t *testing.T) {
	receiver := "ArrayList<int|string|null>"
	testRefined(t, receiver, "filter(function($x) { return $x !== null; })", "ArrayList<int|string>")
	testRefined(t, receiver, "filter(function($x) { if ($x !== null) { return is_int($x); } return false; })", "ArrayList<int>")
	// only the first return is looked at, and `false` proves nothing
	assert.Nil(t, testRefine(t, receiver, "filter(function($x) { if ($x === null) { return false; } return true; })"))
	testRefined(t, receiver, "filter(fn($x) => is_int($x))", "ArrayList<int>")
	testRefined(t, receiver, "filter(fn($x) => !is_int($x) && $x !== null)", "ArrayList<string>")
	testRefined(t, receiver, "filter(fn($x) => is_int($x) || is_string($x))", "ArrayList<int|string>")
	testRefined(t, receiver, "filter(fn($x) => $x !== null && $y > 1)", "ArrayList<int|string>")
	testRefined(t, receiver, "filter(fn(?int $x): bool => $x != null)", "ArrayList<int|string>")
	testRefined(t, "ArrayList<Foo|Bar>", "filter(fn($x) => !($x instanceof Foo))", "ArrayList<Bar>")
}

func TestLooseComparisonsKeepLooselyEqualValues(t *testing.T) {
	tests := []struct {
		receiver, call, expected string
	}{
		// 0 == null
		{"ArrayList<int|null>", "filter(fn($x) => $x == null)", "ArrayList<int|null>"},
		{"ArrayList<Foo|null>", "filter(fn($x) => $x == null)", "ArrayList<null>"},
		{"ArrayList<int|null>", "filter(fn($x) => $x != null)", "ArrayList<int>"},
		// 1 == true
		{"ArrayList<int|bool>", "filter(fn($x) => $x == true)", "ArrayList<int|true>"},
		{"ArrayList<int|bool>", "filter(fn($x) => $x != true)", "ArrayList<int|false>"},
		// "" == false
		{"ArrayList<string|false>", "filter(fn($x) => $x == false)", "ArrayList<string|false>"},
		{"ArrayList<string|false>", "filter(fn($x) => false != $x)", "ArrayList<string>"},
		{"ArrayList<Foo|false|null>", "filter(fn($x) => $x == false)", "ArrayList<false|null>"},
	}
	for _, test := range tests {
		t.Run(test.receiver+"->"+test.call, func(t *testing.T) {
			testRefined(t, test.receiver, test.call, test.expected)
		})
	}
}

func TestContradictionsAreNotRefined(t *testing.T) {
	assert.Nil(t, testRefine(t, "ArrayList<int|null>", "filter(fn($x) => $x === null && $x !== null)"))
}

func TestUnanalyzableSources(t *testing.T) {
	event := testEvent(t, "ArrayList<int|null>", "filter(fn($x) => $x !== null)")
	event.Source = testSource{cb: event.Codebase, analyzable: false}
	assert.Nil(t, FilterProvider{}.MethodReturnType(event))

	event.Source = nil
	assert.Nil(t, FilterProvider{}.MethodReturnType(event))
}

func TestMalformedEvents(t *testing.T) {
	event := testEvent(t, "ArrayList<int|null>", "filter(fn($x) => $x !== null)")
	event.TemplateTypeParameters = nil
	assert.Nil(t, FilterProvider{}.MethodReturnType(event))

	event.TemplateTypeParameters = []*types.Union{nil}
	assert.Nil(t, FilterProvider{}.MethodReturnType(event))

	event = testEvent(t, "ArrayList<int|null>", "filter(fn($x) => $x !== null)")
	event.FQClassName = "Option"
	assert.Nil(t, FilterProvider{}.MethodReturnType(event))
}
