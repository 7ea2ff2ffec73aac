// Package playground analyzes snippets submitted from a browser
package playground

import (
	"fmt"
	"github.com/fp4php/functional-collection/analyzer"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/plugin"
	"github.com/fp4php/functional-collection/plugin/config"
	"strings"
)

// CheckAndShowTypes analyzes program with the collection plugin enabled
// and returns the types of its variables, or the issues it has
func CheckAndShowTypes(program string) string {
	registry := hook.NewRegistry()
	if err := plugin.Register(registry, config.Default()); err != nil {
		return fmt.Sprintf("the analyzer encountered a failure:\n\n%s", err)
	}
	result, err := analyzer.New(nil, registry).AnalyzeSource("program.php", program)
	if err != nil {
		return fmt.Sprintf("the program does not parse:\n\n%s", err)
	}

	sb := strings.Builder{}
	if result.Issues.HasIssue() {
		sb.WriteString("the program has the following issues:\n")
		for _, issue := range result.Issues.Issues() {
			sb.WriteString(ierr.FormatWithCode(issue))
			sb.WriteByte('\n')
		}
		sb.WriteByte('\n')
	}
	for _, id := range result.Context.Vars() {
		t, _ := result.TypeOf(id)
		sb.WriteString(id + ": " + t.String() + "\n")
	}
	return sb.String()
}
