package analyzer_test

import (
	"embed"
	"github.com/fp4php/functional-collection/analyzer"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/plugin"
	"github.com/fp4php/functional-collection/plugin/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io/fs"
	"path"
	"strings"
	"testing"
)

// embeds the test folder
//
//go:embed testdata
var testSet embed.FS

type directives struct {
	expected map[string]string
	issues   []string
}

// directives are comments of the form
//
//	//fpc:expect $variable | type at the end of the file
//	//fpc:issues IssueCode, IssueCode
func extractDirectives(t *testing.T, content string) directives {
	d := directives{expected: make(map[string]string)}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if expect, ok := strings.CutPrefix(line, "//fpc:expect "); ok {
			variable, typ, found := strings.Cut(expect, "|")
			if !found {
				t.Fatalf("could not parse directive: '%v'", line)
			}
			d.expected[strings.TrimSpace(variable)] = strings.TrimSpace(typ)
		}
		if issues, ok := strings.CutPrefix(line, "//fpc:issues "); ok {
			for _, issue := range strings.Split(issues, ",") {
				d.issues = append(d.issues, strings.TrimSpace(issue))
			}
		}
	}
	return d
}

func newAnalyzer(t *testing.T) *analyzer.Analyzer {
	registry := hook.NewRegistry()
	require.NoError(t, plugin.Register(registry, config.Default()))
	return analyzer.New(codebase.WithCollections(), registry)
}

func TestEndToEnd(t *testing.T) {
	files, err := testSet.ReadDir("testdata")
	require.NoError(t, err)
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".php") {
			continue
		}
		testFile(t, f)
	}
}

func testFile(t *testing.T, f fs.DirEntry) bool {
	return t.Run(f.Name(), func(t *testing.T) {
		content, err := testSet.ReadFile(path.Join("testdata", f.Name()))
		require.NoError(t, err)
		d := extractDirectives(t, string(content))

		result, err := newAnalyzer(t).AnalyzeSource(f.Name(), string(content))
		require.NoError(t, err)

		for variable, expected := range d.expected {
			actual, ok := result.TypeOf(variable)
			if assert.True(t, ok, "%s is not defined", variable) {
				assert.Equal(t, expected, actual.String(), "type of %s", variable)
			}
		}
		var codes []string
		for _, issue := range result.Issues.Issues() {
			codes = append(codes, issue.Code().String())
		}
		assert.Equal(t, d.issues, codes, "issues: %v", result.Issues.Issues())
	})
}

func TestWithoutPlugin(t *testing.T) {
	src := `
/** @var NonEmptyArrayList<int|null> $xs */
$ys = $xs->filter(fn($x) => $x !== null);
$xs->tap(fn($x) => $x);
`
	result, err := analyzer.New(nil, nil).AnalyzeSource("test.php", src)
	require.NoError(t, err)

	ys, ok := result.TypeOf("$ys")
	require.True(t, ok)
	assert.Equal(t, "ArrayList<int|null>", ys.String())
	assert.Len(t, result.Issues.Issues(), 1)
}

func TestExprTypes(t *testing.T) {
	src := `
/** @var ArrayList<int|null> $xs */
$ys = $xs->filter(fn($x) => $x !== null)->reverse();
`
	result, err := newAnalyzer(t).AnalyzeSource("test.php", src)
	require.NoError(t, err)

	var inferred []string
	for _, typ := range result.ExprTypes {
		inferred = append(inferred, typ.String())
	}
	assert.Contains(t, inferred, "ArrayList<int|null>")
	assert.Contains(t, inferred, "ArrayList<int>")
	assert.Contains(t, inferred, "Closure")
}

func TestSyntaxErrors(t *testing.T) {
	_, err := newAnalyzer(t).AnalyzeSource("broken.php", "$x = ;")
	assert.ErrorContains(t, err, "broken.php")
}

func TestGlobals(t *testing.T) {
	a := newAnalyzer(t)
	a.Globals = map[string]*types.Union{"$xs": types.MustParseType("HashSet<string|null>")}

	result, err := a.AnalyzeSource("globals.php", "$ys = $xs->filterNotNull();")
	require.NoError(t, err)
	assert.False(t, result.Issues.HasIssue())
	ys, ok := result.TypeOf("$ys")
	require.True(t, ok)
	assert.Equal(t, "HashSet<string>", ys.String())
}
