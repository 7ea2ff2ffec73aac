package reconciler

import (
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func testCodebase() *codebase.Codebase {
	cb := codebase.WithCollections()
	cb.AddClass(&codebase.ClassLike{Name: "Base"})
	cb.AddClass(&codebase.ClassLike{Name: "Foo", Parent: "Base"})
	cb.AddClass(&codebase.ClassLike{Name: "Bar", Parent: "Base"})
	return cb
}

// reconcile narrows a variable of type typ, returning false when it is dropped
func reconcile(t *testing.T, typ string, assertions [][]string) (string, bool) {
	t.Helper()
	in := map[string][][]string{"$x": assertions}
	result := ReconcileKeyedTypes(Input{
		New:        in,
		ActiveNew:  in,
		Existing:   map[string]*types.Union{"$x": types.MustParseType(typ)},
		Referenced: map[string]bool{"$x": true},
		Codebase:   testCodebase(),
	})
	narrowed, ok := result["$x"]
	if !ok {
		return "", false
	}
	return narrowed.String(), true
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		typ        string
		assertions [][]string
		expected   string
	}{
		{"int|null", [][]string{{"!null"}}, "int"},
		{"int|null", [][]string{{"null"}}, "null"},
		{"int|null", [][]string{{"isset"}}, "int"},
		{"int|null", [][]string{{"!isset"}}, "null"},
		{"mixed", [][]string{{"!null"}}, "non-null-mixed"},
		{"mixed", [][]string{{"isset"}}, "non-null-mixed"},
		{"mixed", [][]string{{"null"}}, "null"},
		{"mixed", [][]string{{"int"}}, "int"},
		{"mixed", [][]string{{"Foo"}}, "Foo"},
		{"int|string|null", [][]string{{"int", "string"}}, "int|string"},
		{"int|string", [][]string{{"!int"}}, "string"},
		{"int|float|null", [][]string{{"!null"}, {"!int"}}, "float"},
		{"bool|null", [][]string{{"!falsy"}}, "true"},
		{"bool|null", [][]string{{"falsy"}}, "false|null"},
		{"bool", [][]string{{"!true"}}, "false"},
		{"bool", [][]string{{"true"}}, "true"},
		{"list{int}|false", [][]string{{"!falsy"}}, "list{int}"},
		{"Foo|Bar|null", [][]string{{"Foo"}}, "Foo"},
		{"Foo|Bar|null", [][]string{{"!Foo"}}, "Bar|null"},
		{"Base|null", [][]string{{"foo"}}, "Foo"},
		{"Foo|int", [][]string{{"Base"}}, "Foo"},
		{"ArrayList<int>|null", [][]string{{"Seq"}}, "ArrayList<int>"},
		{"ArrayList<int>|string", [][]string{{"object"}}, "ArrayList<int>"},
		{"array<int, int>|list{int}|int", [][]string{{"array"}}, "array<int, int>|list{int}"},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			got, ok := reconcile(t, tt.typ, tt.assertions)
			require.True(t, ok, "variable was dropped")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestContradictions(t *testing.T) {
	tests := []struct {
		typ        string
		assertions [][]string
	}{
		{"int", [][]string{{"null"}}},
		{"int|null", [][]string{{"!null"}, {"null"}}},
		{"Foo", [][]string{{"Bar"}}},
		// not part of the assertion language
		{"int", [][]string{{"=5"}}},
		{"int", [][]string{{"<int>"}}},
	}
	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			_, ok := reconcile(t, tt.typ, tt.assertions)
			assert.False(t, ok)
		})
	}
}

func TestUnknownKeys(t *testing.T) {
	in := map[string][][]string{"$y": {{"!null"}}, "$x->prop": {{"int"}}}
	existing := map[string]*types.Union{"$x": types.MustParseType("Foo")}
	result := ReconcileKeyedTypes(Input{New: in, ActiveNew: in, Existing: existing})
	assert.Equal(t, existing, result)
}

func TestInactiveAssertions(t *testing.T) {
	existing := map[string]*types.Union{"$x": types.MustParseType("int|null")}
	result := ReconcileKeyedTypes(Input{
		New:       map[string][][]string{"$x": {{"!null"}}},
		ActiveNew: map[string][][]string{},
		Existing:  existing,
	})
	assert.Equal(t, "int|null", result["$x"].String())
}

func TestOffsets(t *testing.T) {
	in := map[string][][]string{"$a[0]": {{"!null"}}, "$a[1]": {{"Foo"}}}
	changed := make(map[string]bool)
	result := ReconcileKeyedTypes(Input{
		New:       in,
		ActiveNew: in,
		Existing:  map[string]*types.Union{"$a": types.MustParseType("list{int|null, Base|string}")},
		Changed:   changed,
		Codebase:  testCodebase(),
	})
	assert.Equal(t, "list{int, Foo}", result["$a"].String())
	assert.Equal(t, map[string]bool{"$a[0]": true, "$a[1]": true, "$a": true}, changed)
	_, hasOffset := result["$a[0]"]
	assert.False(t, hasOffset)

	// impossible offsets drop their base
	in = map[string][][]string{"$a[0]": {{"string"}}}
	result = ReconcileKeyedTypes(Input{
		New:       in,
		ActiveNew: in,
		Existing:  map[string]*types.Union{"$a": types.MustParseType("list{int|null}")},
	})
	assert.NotContains(t, result, "$a")

	// out of range offsets and non-list shapes are left alone
	for _, key := range []string{"$a[5]", "$b[0]", "$c[0]"} {
		in = map[string][][]string{key: {{"int"}}}
		result = ReconcileKeyedTypes(Input{
			New:       in,
			ActiveNew: in,
			Existing: map[string]*types.Union{
				"$a": types.MustParseType("list{int|null}"),
				"$b": types.MustParseType("array{int|null}"),
				"$c": types.MustParseType("array<int, int>"),
			},
		})
		assert.Len(t, result, 3, key)
		assert.Equal(t, "list{int|null}", result["$a"].String())
	}
}

func TestSplitOffsetKey(t *testing.T) {
	base, offset, ok := splitOffsetKey("$a[1][2]")
	require.True(t, ok)
	assert.Equal(t, "$a[1]", base)
	assert.Equal(t, 2, offset)

	for _, key := range []string{"$a", `$a["k"]`, "[0]", "$a->b"} {
		_, _, ok := splitOffsetKey(key)
		assert.False(t, ok, key)
	}
}
