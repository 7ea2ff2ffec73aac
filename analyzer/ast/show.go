package ast

import (
	"strings"
)

// ExprString renders expr back into source syntax
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

// StmtString renders stmt back into source syntax
func StmtString(stmt Stmt) string {
	ctx := newShowContext()
	ctx.showStmt(stmt)
	return ctx.String()
}

type showContext struct {
	*strings.Builder
	indent    int
	indentStr string
}

func newShowContext() *showContext {
	return &showContext{
		Builder:   &strings.Builder{},
		indentStr: "  ",
		indent:    0,
	}
}

func (ctx *showContext) currentIndent() string {
	return strings.Repeat(ctx.indentStr, ctx.indent)
}

func (ctx *showContext) showArgs(args []*Arg, firstClass bool) {
	ctx.WriteString("(")
	if firstClass {
		ctx.WriteString("...")
	}
	for i, arg := range args {
		if i > 0 {
			ctx.WriteString(", ")
		}
		if arg.Unpack {
			ctx.WriteString("...")
		}
		if arg.Name != "" {
			ctx.WriteString(arg.Name + ": ")
		}
		ctx.showExprWalker(arg.Value, 0)
	}
	ctx.WriteString(")")
}

func (ctx *showContext) showParams(params []*Param) {
	ctx.WriteString("(")
	for i, p := range params {
		if i > 0 {
			ctx.WriteString(", ")
		}
		if p.Type != "" {
			ctx.WriteString(p.Type + " ")
		}
		if p.ByRef {
			ctx.WriteString("&")
		}
		if p.Variadic {
			ctx.WriteString("...")
		}
		ctx.showExprWalker(p.Var, 0)
	}
	ctx.WriteString(")")
}

func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int16) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Variable:
		ctx.WriteString(expr.Id())
	case *Literal:
		if expr.Kind == LitString {
			ctx.WriteString("'" + strings.ReplaceAll(expr.Value, "'", `\'`) + "'")
		} else {
			ctx.WriteString(expr.Value)
		}
	case *ConstFetch:
		ctx.WriteString(expr.Name)
	case *PropertyFetch:
		ctx.showExprWalker(expr.Var, 10)
		ctx.WriteString("->" + expr.Name)
	case *ArrayDimFetch:
		ctx.showExprWalker(expr.Var, 10)
		ctx.WriteString("[")
		if expr.Dim != nil {
			ctx.showExprWalker(expr.Dim, 0)
		}
		ctx.WriteString("]")
	case *MethodCall:
		ctx.showExprWalker(expr.Var, 10)
		ctx.WriteString("->" + expr.Name)
		ctx.showArgs(expr.Args, expr.FirstClassCallable)
	case *FuncCall:
		ctx.WriteString(expr.Name)
		ctx.showArgs(expr.Args, expr.FirstClassCallable)
	case *Isset:
		ctx.WriteString("isset(")
		for i, v := range expr.Vars {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExprWalker(v, 0)
		}
		ctx.WriteString(")")
	case *Instanceof:
		ctx.showExprWalker(expr.Expr, 10)
		ctx.WriteString(" instanceof " + expr.Class)
	case *Not:
		ctx.WriteString("!")
		ctx.showExprWalker(expr.Expr, 10)
	case *BinaryOp:
		prec := expr.Op.precedence()
		if outerPrecedence > prec {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.showExprWalker(expr.Left, prec)
		ctx.WriteString(" " + expr.Op.String() + " ")
		ctx.showExprWalker(expr.Right, prec+1)
	case *Assign:
		ctx.showExprWalker(expr.Var, 0)
		ctx.WriteString(" = ")
		ctx.showExprWalker(expr.Expr, 0)
	case *ArrayLit:
		ctx.WriteString("[")
		for i, item := range expr.Items {
			if i > 0 {
				ctx.WriteString(", ")
			}
			ctx.showExprWalker(item, 0)
		}
		ctx.WriteString("]")
	case *ArrowFunction:
		if outerPrecedence > 0 {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		ctx.WriteString("fn")
		ctx.showParams(expr.Params)
		ctx.WriteString(" => ")
		ctx.showExprWalker(expr.Expr, 0)
	case *Closure:
		ctx.WriteString("function")
		ctx.showParams(expr.Params)
		if len(expr.Uses) > 0 {
			ctx.WriteString(" use (")
			for i, u := range expr.Uses {
				if i > 0 {
					ctx.WriteString(", ")
				}
				ctx.WriteString(u.Id())
			}
			ctx.WriteString(")")
		}
		ctx.WriteString(" {")
		ctx.showBlock(expr.Stmts)
		ctx.WriteString("}")
	default:
		ctx.WriteString("<?>")
	}
}

func (ctx *showContext) showBlock(stmts []Stmt) {
	if len(stmts) == 0 {
		return
	}
	ctx.indent++
	for _, s := range stmts {
		ctx.WriteString("\n" + ctx.currentIndent())
		ctx.showStmt(s)
	}
	ctx.indent--
	ctx.WriteString("\n" + ctx.currentIndent())
}

func (ctx *showContext) showStmt(stmt Stmt) {
	switch stmt := stmt.(type) {
	case *ExprStmt:
		ctx.showExprWalker(stmt.X, 0)
		ctx.WriteString(";")
	case *Return:
		ctx.WriteString("return")
		if stmt.Expr != nil {
			ctx.WriteString(" ")
			ctx.showExprWalker(stmt.Expr, 0)
		}
		ctx.WriteString(";")
	case *If:
		ctx.WriteString("if (")
		ctx.showExprWalker(stmt.Cond, 0)
		ctx.WriteString(") {")
		ctx.showBlock(stmt.Then)
		ctx.WriteString("}")
		if len(stmt.Else) > 0 {
			ctx.WriteString(" else {")
			ctx.showBlock(stmt.Else)
			ctx.WriteString("}")
		}
	case *VarDoc:
		ctx.WriteString("/** @var " + stmt.Type + " " + stmt.Var.Id() + " */")
	default:
		ctx.WriteString("<?>")
	}
}
