package algebra

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/fp4php/functional-collection/analyzer/codebase"
	"strconv"
	"strings"
)

// maxCombinedClauses bounds the size of the cartesian product computed when
// combining disjunctions. Bigger products give up and yield a wedge
const maxCombinedClauses = 256

// typeCheckFunctions maps type-checking functions to the assertion they imply on their argument
var typeCheckFunctions = map[string]string{
	"is_int":     "int",
	"is_integer": "int",
	"is_long":    "int",
	"is_float":   "float",
	"is_double":  "float",
	"is_string":  "string",
	"is_bool":    "bool",
	"is_null":    "null",
	"is_array":   "array",
	"is_object":  "object",
}

// FormulaGenerator translates conditions into formulas, the same way whether
// the condition guards an if statement or is returned from a predicate
type FormulaGenerator struct {
	Codebase *codebase.Codebase
}

// Formula returns what must hold for expr to evaluate to true.
// self is the class `self` and `static` refer to, and may be empty
func (g FormulaGenerator) Formula(expr ast.Expr, self string) Formula {
	switch expr := expr.(type) {
	case *ast.BinaryOp:
		switch expr.Op {
		case ast.OpAnd:
			return simplify(append(g.Formula(expr.Left, self), g.Formula(expr.Right, self)...))
		case ast.OpOr:
			return CombineOred(g.Formula(expr.Left, self), g.Formula(expr.Right, self))
		case ast.OpIdentical:
			return comparisonFormula(expr.Left, expr.Right, identityAssertions, false)
		case ast.OpNotIdentical:
			return comparisonFormula(expr.Left, expr.Right, identityAssertions, true)
		case ast.OpEqual:
			return comparisonFormula(expr.Left, expr.Right, looseAssertions, false)
		case ast.OpNotEqual:
			return comparisonFormula(expr.Left, expr.Right, looseAssertions, true)
		}
	case *ast.Not:
		return NegateFormula(g.Formula(expr.Expr, self))
	case *ast.Isset:
		var formula Formula
		for _, v := range expr.Vars {
			key, ok := VarId(v)
			if !ok {
				formula = append(formula, wedge())
				continue
			}
			formula = append(formula, NewClause(key, "isset"))
		}
		return formula
	case *ast.Instanceof:
		if key, ok := VarId(expr.Expr); ok {
			return Formula{NewClause(key, g.className(expr.Class, self))}
		}
	case *ast.FuncCall:
		assertion, isTypeCheck := typeCheckFunctions[strings.ToLower(expr.Name)]
		if isTypeCheck && len(expr.Args) == 1 && !expr.Args[0].Unpack {
			if key, ok := VarId(expr.Args[0].Value); ok {
				return Formula{NewClause(key, assertion)}
			}
		}
	case *ast.Variable, *ast.PropertyFetch, *ast.ArrayDimFetch:
		if key, ok := VarId(expr); ok {
			return Formula{NewClause(key, "!falsy")}
		}
	case *ast.ConstFetch:
		if expr.Name == "true" {
			return Formula{}
		}
	}
	return Formula{wedge()}
}

func (g FormulaGenerator) className(name, self string) string {
	lower := strings.ToLower(name)
	if (lower == "self" || lower == "static") && self != "" {
		return self
	}
	if g.Codebase != nil {
		if class, ok := g.Codebase.Class(name); ok {
			return class.Name
		}
	}
	return name
}

// identityAssertions maps the constants a variable can be compared to with === onto the matching assertion
var identityAssertions = map[string]string{
	"null":  "null",
	"true":  "true",
	"false": "false",
}

// looseAssertions is identityAssertions for ==, which converts both sides first:
// `$x == null` and `$x == false` also hold for 0, "" and [].
// `"0" == null` does not hold, but no type is precise enough to tell "0" apart
var looseAssertions = map[string]string{
	"null":  "falsy",
	"true":  "!falsy",
	"false": "falsy",
}

func comparisonFormula(left, right ast.Expr, assertions map[string]string, negated bool) Formula {
	subject, constant := left, right
	if _, isConst := left.(*ast.ConstFetch); isConst {
		subject, constant = right, left
	}
	c, isConst := constant.(*ast.ConstFetch)
	key, isVar := VarId(subject)
	if !isConst || !isVar {
		return Formula{wedge()}
	}
	assertion, known := assertions[c.Name]
	if !known {
		return Formula{wedge()}
	}
	if negated {
		assertion = Negate(assertion)
	}
	return Formula{NewClause(key, assertion)}
}

// VarId returns the assertion key of expr, like `$x`, `$x->prop` or `$x[0]`,
// when expr is a variable or a fetch from one with a literal offset
func VarId(expr ast.Expr) (string, bool) {
	switch expr := expr.(type) {
	case *ast.Variable:
		return expr.Id(), true
	case *ast.PropertyFetch:
		base, ok := VarId(expr.Var)
		return base + "->" + expr.Name, ok
	case *ast.ArrayDimFetch:
		base, ok := VarId(expr.Var)
		lit, isLit := expr.Dim.(*ast.Literal)
		if !ok || !isLit {
			return "", false
		}
		switch lit.Kind {
		case ast.LitInt:
			return base + "[" + lit.Value + "]", true
		case ast.LitString:
			return base + "[" + strconv.Quote(lit.Value) + "]", true
		}
	}
	return "", false
}

// NegateFormula returns the formula that holds exactly when f does not
func NegateFormula(f Formula) Formula {
	if len(f) == 0 {
		return Formula{wedge()}
	}
	var negated Formula
	for i, clause := range f {
		negatedClause := negateClause(clause)
		if i == 0 {
			negated = negatedClause
			continue
		}
		negated = CombineOred(negated, negatedClause)
	}
	return negated
}

// negateClause turns the disjunction in clause into a conjunction of negated assertions
func negateClause(clause Clause) Formula {
	if clause.Wedge {
		return Formula{wedge()}
	}
	var negated Formula
	for _, key := range clause.Keys() {
		for _, assertion := range clause.Possibilities[key] {
			negated = append(negated, NewClause(key, Negate(assertion)))
		}
	}
	return negated
}

// CombineOred returns the formula for `left || right`
func CombineOred(left, right Formula) Formula {
	// an empty formula is always true, and so is anything ored with it
	if len(left) == 0 || len(right) == 0 {
		return Formula{}
	}
	if len(left)*len(right) > maxCombinedClauses {
		return Formula{wedge()}
	}
	combined := make(Formula, 0, len(left)*len(right))
	for _, l := range left {
		for _, r := range right {
			combined = append(combined, l.merge(r))
		}
	}
	return simplify(combined)
}

// simplify drops tautological and duplicate clauses
func simplify(f Formula) Formula {
	seen := make(map[string]struct{}, len(f))
	simplified := make(Formula, 0, len(f))
	for _, clause := range f {
		if !clause.Wedge && clause.isTautology() {
			continue
		}
		if _, dup := seen[clause.key()]; dup {
			continue
		}
		seen[clause.key()] = struct{}{}
		simplified = append(simplified, clause)
	}
	return simplified
}
