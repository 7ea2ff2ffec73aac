package cmd

import (
	"fmt"
	"github.com/davecgh/go-spew/spew"
	"github.com/fp4php/functional-collection/analyzer"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/parser"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/internal/log"
	"github.com/fp4php/functional-collection/plugin"
	"github.com/fp4php/functional-collection/plugin/config"
	"github.com/fp4php/functional-collection/plugin/refine"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"io"
)

var RefineCmd = &cobra.Command{
	Use:   "refine --receiver TYPE --method METHOD [--predicate FN]",
	Short: "Print the type a filter call on a collection returns",
	Example: `  fpc refine --receiver 'ArrayList<int|null>' --method filter --predicate 'fn($x) => $x !== null'
  fpc refine --receiver 'HashMap<string, Foo|null>' --method filter_values --predicate 'fn($v) => $v instanceof Foo'`,
	RunE:         runRefine,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
}

var (
	refineReceiver  *string
	refineMethod    *string
	refinePredicate *string
	refineDump      *bool
)

func init() {
	refineReceiver = RefineCmd.Flags().StringP("receiver", "r", "", "type of the collection, like ArrayList<int|null>")
	refineMethod = RefineCmd.Flags().StringP("method", "m", "filter", "called method, in camel or snake case")
	refinePredicate = RefineCmd.Flags().StringP("predicate", "p", "", "predicate passed to the method")
	refineDump = RefineCmd.Flags().Bool("dump", false, "dump the assertions the predicate proves")
	_ = RefineCmd.MarkFlagRequired("receiver")
}

var cliLogger = log.Section("cli")

// refinedCall is the snippet a refine invocation is analyzed as
func refinedCall(receiver, method, predicate string) string {
	return fmt.Sprintf("/** @var %s $receiver */\n$refined = $receiver->%s(%s);\n", receiver, method, predicate)
}

// refineWith analyzes the call with or without the collection plugin registered
func refineWith(withPlugin bool, snippet string) (*types.Union, *ierr.Issues, error) {
	registry := hook.NewRegistry()
	if withPlugin {
		if err := plugin.Register(registry, config.Default()); err != nil {
			return nil, nil, err
		}
	}
	result, err := analyzer.New(codebase.WithCollections(), registry).AnalyzeSource("refine.php", snippet)
	if err != nil {
		return nil, nil, err
	}
	refined, ok := result.TypeOf("$refined")
	if !ok {
		return nil, nil, errors.New("call was not analyzed")
	}
	return refined, result.Issues, nil
}

func runRefine(cmd *cobra.Command, args []string) error {
	if _, err := types.ParseType(*refineReceiver); err != nil {
		return errors.Wrap(err, "invalid receiver type")
	}
	method := strcase.ToLowerCamel(*refineMethod)
	snippet := refinedCall(*refineReceiver, method, *refinePredicate)
	cliLogger.Debug("refining", "snippet", snippet)

	refined, issues, err := refineWith(true, snippet)
	if err != nil {
		return err
	}
	if issues.HasIssue() {
		printIssues(cmd.OutOrStdout(), issues, nil)
		return errors.Errorf("could not analyze the call to %s", method)
	}
	unrefined, _, err := refineWith(false, snippet)
	if err != nil {
		return err
	}

	if refined.String() == unrefined.String() {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), refined.String(), "(not refined)")
	} else {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), refined.String())
	}

	if *refineDump {
		return dumpAssertions(cmd.OutOrStdout(), *refinePredicate)
	}
	return nil
}

func dumpAssertions(w io.Writer, predicate string) error {
	if predicate == "" {
		_, _ = fmt.Fprintln(w, "no predicate")
		return nil
	}
	expr, err := parser.ParseExpr(predicate)
	if err != nil {
		return errors.Wrap(err, "invalid predicate")
	}
	fn, ok := expr.(ast.FunctionLike)
	if !ok {
		return errors.Errorf("predicate %s is not a function literal", ast.ExprString(expr))
	}
	assertions, ok := refine.Translate(refine.Context{
		Predicate: fn,
		Scope:     scope.New(""),
		Codebase:  codebase.WithCollections(),
	})
	if !ok {
		_, _ = fmt.Fprintln(w, "predicate could not be translated")
		return nil
	}
	spew.Fdump(w, assertions)
	return nil
}
