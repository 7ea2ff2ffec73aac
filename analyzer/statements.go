package analyzer

import (
	"github.com/fp4php/functional-collection/analyzer/algebra"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/analyzer/ierr"
	"github.com/fp4php/functional-collection/analyzer/reconciler"
	"github.com/fp4php/functional-collection/analyzer/scope"
	"github.com/fp4php/functional-collection/analyzer/types"
)

// StatementsAnalyzer analyzes the statements of a single file
type StatementsAnalyzer struct {
	analyzer  *Analyzer
	filePath  string
	issues    *ierr.Issues
	exprTypes map[ast.Expr]*types.Union
}

var _ hook.StatementsSource = (*StatementsAnalyzer)(nil)

func (sa *StatementsAnalyzer) FilePath() string { return sa.filePath }
func (sa *StatementsAnalyzer) Analyzable() bool { return true }

func (sa *StatementsAnalyzer) FormulaGenerator() algebra.FormulaGenerator {
	return algebra.FormulaGenerator{Codebase: sa.analyzer.Codebase}
}

func (sa *StatementsAnalyzer) addIssue(issue ierr.Issue) {
	event := &hook.BeforeAddIssueEvent{Issue: issue, Codebase: sa.analyzer.Codebase}
	if !sa.analyzer.Registry.ShouldAddIssue(event) {
		logger.Debug("issue suppressed by plugin", "issue", issue.Error())
		return
	}
	sa.issues = sa.issues.With(issue)
}

// analyzeStmts reports whether stmts always return
func (sa *StatementsAnalyzer) analyzeStmts(stmts []ast.Stmt, ctx *scope.Context) bool {
	for _, stmt := range stmts {
		if sa.analyzeStmt(stmt, ctx) {
			return true
		}
	}
	return false
}

func (sa *StatementsAnalyzer) analyzeStmt(stmt ast.Stmt, ctx *scope.Context) (exits bool) {
	switch stmt := stmt.(type) {
	case *ast.VarDoc:
		t, err := types.ParseType(stmt.Type)
		if err != nil {
			sa.addIssue(ierr.New(ierr.NewInvalidDocblock{Positioner: stmt, From: err}))
			return false
		}
		ctx.Assign(stmt.Var.Id(), t)
	case *ast.ExprStmt:
		call, isCall := stmt.X.(*ast.MethodCall)
		if !isCall {
			sa.analyzeExpr(stmt.X, ctx)
			return false
		}
		_, pure := sa.analyzeMethodCall(call, ctx)
		for _, methodId := range pure {
			sa.addIssue(ierr.New(ierr.NewUnusedMethodCall{Positioner: call, MethodId: methodId}))
		}
	case *ast.Return:
		if stmt.Expr != nil {
			sa.analyzeExpr(stmt.Expr, ctx)
		}
		return true
	case *ast.If:
		return sa.analyzeIf(stmt, ctx)
	default:
		logger.Warn("unexpected statement", "stmt", ast.StmtString(stmt))
	}
	return false
}

// analyzeIf analyzes each branch in a scope narrowed by the condition, or
// its negation, and then merges back the scopes of branches that fall through
func (sa *StatementsAnalyzer) analyzeIf(stmt *ast.If, ctx *scope.Context) bool {
	sa.analyzeExpr(stmt.Cond, ctx)
	formula := sa.FormulaGenerator().Formula(stmt.Cond, ctx.Self)

	thenCtx := sa.narrow(ctx, formula)
	thenExits := sa.analyzeStmts(stmt.Then, thenCtx)
	elseCtx := sa.narrow(ctx, algebra.NegateFormula(formula))
	elseExits := sa.analyzeStmts(stmt.Else, elseCtx)

	var reaching []*scope.Context
	if !thenExits {
		reaching = append(reaching, thenCtx)
	}
	if !elseExits {
		reaching = append(reaching, elseCtx)
	}
	if len(reaching) == 0 {
		return true
	}
	merged := make(map[string][]*types.Union)
	for _, branch := range reaching {
		for id, t := range branch.Types() {
			merged[id] = append(merged[id], t)
		}
	}
	for id, ts := range merged {
		// variables assigned in one branch only may be undefined afterwards
		if len(ts) == len(reaching) {
			ctx.Assign(id, types.Combine(ts...))
		}
	}
	return false
}

// narrow returns a copy of ctx where what formula implies holds
func (sa *StatementsAnalyzer) narrow(ctx *scope.Context, formula algebra.Formula) *scope.Context {
	truths := algebra.Truths(formula)
	existing := ctx.Types()
	narrowed := reconciler.ReconcileKeyedTypes(reconciler.Input{
		New:       truths,
		ActiveNew: truths,
		Existing:  existing,
		Codebase:  sa.analyzer.Codebase,
	})
	out := scope.New(ctx.Self)
	for id := range existing {
		if n, ok := narrowed[id]; ok {
			out.Assign(id, n)
		} else {
			// contradicted: this branch cannot be reached
			out.Assign(id, types.Never())
		}
	}
	return out
}
