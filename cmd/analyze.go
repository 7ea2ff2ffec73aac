package cmd

import (
	"context"
	"fmt"
	"github.com/fatih/color"
	"github.com/fp4php/functional-collection/analyzer"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/types"
	"github.com/fp4php/functional-collection/plugin"
	"github.com/fp4php/functional-collection/plugin/config"
	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go/token"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

var AnalyzeCmd = &cobra.Command{
	Use:          "analyze FILE...",
	Short:        "Print the types of the variables of snippets, and the issues found in them",
	RunE:         runAnalyze,
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

var (
	analyzeConfig *string
	analyzeVars   *string
	analyzeWatch  *bool
)

func init() {
	analyzeConfig = AnalyzeCmd.Flags().StringP("config", "c", "", "plugin config file")
	analyzeVars = AnalyzeCmd.Flags().String("vars", "", "YAML file mapping variables every snippet starts with to their types")
	analyzeWatch = AnalyzeCmd.Flags().BoolP("watch", "w", false, "analyze again whenever a file changes")
}

var (
	fileColour  = color.New(color.Bold)
	typeColour  = color.New(color.FgCyan)
	issueColour = color.New(color.FgRed)
)

// fileReport is the outcome of analyzing a single file
type fileReport struct {
	path   string
	src    string
	result *analyzer.Result
}

func (r fileReport) position(pos token.Pos) token.Position {
	fset := token.NewFileSet()
	f := fset.AddFile(r.path, 1, len(r.src)+1)
	f.SetLinesForContent([]byte(r.src))
	return fset.Position(pos)
}

func newAnalyzer() (*analyzer.Analyzer, error) {
	cfg := config.Default()
	if *analyzeConfig != "" {
		var err error
		if cfg, err = config.Load(*analyzeConfig); err != nil {
			return nil, err
		}
	}
	registry := hook.NewRegistry()
	if err := plugin.Register(registry, cfg); err != nil {
		return nil, err
	}
	a := analyzer.New(codebase.WithCollections(), registry)
	if *analyzeVars != "" {
		globals, err := loadGlobals(*analyzeVars)
		if err != nil {
			return nil, err
		}
		a.Globals = globals
	}
	return a, nil
}

// loadGlobals reads a YAML mapping like `xs: ArrayList<int|null>`
func loadGlobals(path string) (map[string]*types.Union, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not read vars")
	}
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "could not parse vars %s", path)
	}
	var result *multierror.Error
	globals := make(map[string]*types.Union, len(raw))
	for name, typ := range raw {
		parsed, err := types.ParseType(typ)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid type of %s", name))
			continue
		}
		if !strings.HasPrefix(name, "$") {
			name = "$" + name
		}
		globals[name] = parsed
	}
	return globals, result.ErrorOrNil()
}

// analyzeAll analyzes paths in parallel. Files which cannot be read or parsed
// do not stop the others from being analyzed
func analyzeAll(ctx context.Context, a *analyzer.Analyzer, paths []string) ([]fileReport, error) {
	reports := make([]fileReport, len(paths))
	failures := make([]error, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := os.ReadFile(path)
			if err != nil {
				failures[i] = errors.Wrapf(err, "could not read %s", path)
				return nil
			}
			result, err := a.AnalyzeSource(path, string(src))
			if err != nil {
				failures[i] = err
				return nil
			}
			reports[i] = fileReport{path: path, src: string(src), result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var result *multierror.Error
	for _, err := range failures {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	return slices.DeleteFunc(reports, func(r fileReport) bool { return r.result == nil }), result.ErrorOrNil()
}

func printReport(w io.Writer, r fileReport) {
	_, _ = fileColour.Fprintln(w, r.path)
	ctx := r.result.Context
	for _, id := range ctx.Vars() {
		t, _ := ctx.Lookup(id)
		_, _ = fmt.Fprintf(w, "  %s: %s\n", id, typeColour.Sprint(t.String()))
	}
	printIssues(w, r.result.Issues, r.position)
}

func printIssues(w io.Writer, issues *ierr.Issues, position func(token.Pos) token.Position) {
	for _, issue := range issues.Issues() {
		line := ierr.FormatWithCode(issue)
		if position != nil {
			line = position(issue.Pos()).String() + ": " + line
		}
		_, _ = fmt.Fprintln(w, "  "+issueColour.Sprint(line))
	}
}

func analyzeOnce(ctx context.Context, w io.Writer, a *analyzer.Analyzer, paths []string) error {
	reports, failed := analyzeAll(ctx, a, paths)
	found := 0
	for _, r := range reports {
		printReport(w, r)
		found += len(r.result.Issues.Issues())
	}
	if failed != nil {
		return failed
	}
	if found > 0 {
		return errors.Errorf("found %d issues", found)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a, err := newAnalyzer()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	err = analyzeOnce(ctx, cmd.OutOrStdout(), a, args)
	if !*analyzeWatch {
		return err
	}
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
	}
	return watch(ctx, cmd, a, args)
}

// watch analyzes paths again whenever one of them is written to, until ctx is done
func watch(ctx context.Context, cmd *cobra.Command, a *analyzer.Analyzer, paths []string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not watch files")
	}
	defer func() {
		_ = watcher.Close()
	}()

	watched := make(map[string]bool, len(paths))
	for _, path := range paths {
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(err, "could not get absolute path of %s", path)
		}
		watched[abs] = true
		// editors often replace files rather than writing them, so watch the folder
		if err := watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.Wrapf(err, "could not watch %s", path)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			cliLogger.Warn("watch error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !watched[event.Name] || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cliLogger.Info("file changed", "file", event.Name)
			if err := analyzeOnce(ctx, cmd.OutOrStdout(), a, paths); err != nil {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		}
	}
}
