package parser

import (
	"github.com/fp4php/functional-collection/analyzer/ast"
	"strings"
)

func (p *parser) parseExpr() (ast.Expr, error) {
	return p.parseAssign()
}

func isAssignable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Variable, *ast.PropertyFetch, *ast.ArrayDimFetch, *ast.ArrayLit:
		return true
	default:
		return false
	}
}

func (p *parser) parseAssign() (ast.Expr, error) {
	lhs, err := p.parseBinary(1)
	if err != nil {
		return nil, err
	}
	if !p.peek().is("=") {
		return lhs, nil
	}
	if !isAssignable(lhs) {
		return nil, p.unexpected("end of expression")
	}
	p.advance()
	rhs, err := p.parseAssign()
	if err != nil {
		return nil, err
	}
	return &ast.Assign{Range: ast.RangeBetween(lhs, rhs), Var: lhs, Expr: rhs}, nil
}

var binaryOps = map[string]ast.Op{
	"||":  ast.OpOr,
	"&&":  ast.OpAnd,
	"===": ast.OpIdentical,
	"!==": ast.OpNotIdentical,
	"==":  ast.OpEqual,
	"!=":  ast.OpNotEqual,
	"<":   ast.OpLess,
	">":   ast.OpGreater,
	"<=":  ast.OpLessEqual,
	">=":  ast.OpGreaterEqual,
}

func binaryPrecedence(op ast.Op) int {
	switch op {
	case ast.OpOr:
		return 1
	case ast.OpAnd:
		return 2
	case ast.OpIdentical, ast.OpNotIdentical, ast.OpEqual, ast.OpNotEqual:
		return 3
	default:
		return 4
	}
}

// parseBinary is a precedence climbing parser over binaryOps
func (p *parser) parseBinary(minPrec int) (ast.Expr, error) {
	lhs, err := p.parseInstanceof()
	if err != nil {
		return nil, err
	}
	for {
		tok := p.peek()
		if tok.kind != tPunct {
			return lhs, nil
		}
		op, ok := binaryOps[tok.text]
		if !ok || binaryPrecedence(op) < minPrec {
			return lhs, nil
		}
		p.advance()
		rhs, err := p.parseBinary(binaryPrecedence(op) + 1)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryOp{Range: ast.RangeBetween(lhs, rhs), Op: op, Left: lhs, Right: rhs}
	}
}

func (p *parser) parseInstanceof() (ast.Expr, error) {
	expr, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if !p.peek().is("instanceof") {
		return expr, nil
	}
	p.advance()
	class := p.peek()
	if class.kind != tIdent {
		return nil, p.unexpected("class name")
	}
	p.advance()
	return &ast.Instanceof{
		Range: ast.Range{PosStart: expr.Pos(), PosEnd: class.end},
		Expr:  expr,
		Class: class.text,
	}, nil
}

func (p *parser) parseUnary() (ast.Expr, error) {
	if tok := p.peek(); tok.is("!") {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Range: ast.Range{PosStart: tok.pos, PosEnd: operand.End()}, Expr: operand}, nil
	}
	return p.parsePostfix()
}

func (p *parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch tok := p.peek(); {
		case tok.is("->"):
			p.advance()
			name := p.peek()
			if name.kind != tIdent {
				return nil, p.unexpected("property or method name")
			}
			p.advance()
			if !p.peek().is("(") {
				expr = &ast.PropertyFetch{Range: ast.Range{PosStart: expr.Pos(), PosEnd: name.end}, Var: expr, Name: name.text}
				continue
			}
			args, firstClass, end, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			expr = &ast.MethodCall{
				Range:              ast.Range{PosStart: expr.Pos(), PosEnd: end.end},
				Var:                expr,
				Name:               name.text,
				Args:               args,
				FirstClassCallable: firstClass,
			}
		case tok.is("["):
			p.advance()
			var dim ast.Expr
			if !p.peek().is("]") {
				if dim, err = p.parseExpr(); err != nil {
					return nil, err
				}
			}
			closing, err := p.expect("]")
			if err != nil {
				return nil, err
			}
			expr = &ast.ArrayDimFetch{Range: ast.Range{PosStart: expr.Pos(), PosEnd: closing.end}, Var: expr, Dim: dim}
		default:
			return expr, nil
		}
	}
}

func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.peek()
	rng := ast.Range{PosStart: tok.pos, PosEnd: tok.end}
	switch tok.kind {
	case tVariable:
		p.advance()
		return &ast.Variable{Range: rng, Name: tok.text}, nil
	case tInt:
		p.advance()
		return &ast.Literal{Range: rng, Kind: ast.LitInt, Value: tok.text}, nil
	case tFloat:
		p.advance()
		return &ast.Literal{Range: rng, Kind: ast.LitFloat, Value: tok.text}, nil
	case tString:
		p.advance()
		return &ast.Literal{Range: rng, Kind: ast.LitString, Value: tok.text}, nil
	case tIdent:
		return p.parseIdentExpr()
	}

	switch {
	case tok.is("("):
		p.advance()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
		return inner, nil
	case tok.is("["):
		p.advance()
		items, end, err := p.parseExprList("]")
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLit{Range: ast.Range{PosStart: tok.pos, PosEnd: end.end}, Items: items}, nil
	}
	return nil, p.unexpected("expression")
}

func (p *parser) parseIdentExpr() (ast.Expr, error) {
	tok := p.peek()
	rng := ast.Range{PosStart: tok.pos, PosEnd: tok.end}
	switch {
	case tok.is("true"), tok.is("false"), tok.is("null"):
		p.advance()
		return &ast.ConstFetch{Range: rng, Name: strings.ToLower(tok.text)}, nil
	case tok.is("fn"):
		return p.parseArrowFunction()
	case tok.is("function"):
		return p.parseClosure()
	case tok.is("isset"):
		p.advance()
		if _, err := p.expect("("); err != nil {
			return nil, err
		}
		vars, end, err := p.parseExprList(")")
		if err != nil {
			return nil, err
		}
		if len(vars) == 0 {
			return nil, &SyntaxError{Pos: tok.pos, Msg: "isset requires at least one argument"}
		}
		return &ast.Isset{Range: ast.Range{PosStart: tok.pos, PosEnd: end.end}, Vars: vars}, nil
	}

	p.advance()
	if !p.peek().is("(") {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "bare constant '" + tok.text + "' is not supported"}
	}
	args, firstClass, end, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	return &ast.FuncCall{
		Range:              ast.Range{PosStart: tok.pos, PosEnd: end.end},
		Name:               tok.text,
		Args:               args,
		FirstClassCallable: firstClass,
	}, nil
}

// parseExprList parses comma separated expressions up to and including closing
func (p *parser) parseExprList(closing string) ([]ast.Expr, lexToken, error) {
	var items []ast.Expr
	for !p.peek().is(closing) {
		item, err := p.parseExpr()
		if err != nil {
			return nil, lexToken{}, err
		}
		items = append(items, item)
		if !p.peek().is(",") {
			break
		}
		p.advance()
	}
	end, err := p.expect(closing)
	return items, end, err
}

// parseArgs parses `(args)` and reports whether the call is the first-class callable syntax `(...)`
func (p *parser) parseArgs() ([]*ast.Arg, bool, lexToken, error) {
	if _, err := p.expect("("); err != nil {
		return nil, false, lexToken{}, err
	}
	if p.peek().is("...") && p.peekAt(1).is(")") {
		p.advance()
		end := p.advance()
		return nil, true, end, nil
	}
	var args []*ast.Arg
	for !p.peek().is(")") {
		start := p.peek()
		arg := &ast.Arg{}
		if start.is("...") {
			p.advance()
			arg.Unpack = true
		} else if start.kind == tIdent && p.peekAt(1).is(":") {
			p.advance()
			p.advance()
			arg.Name = start.text
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, false, lexToken{}, err
		}
		arg.Value = value
		arg.Range = ast.Range{PosStart: start.pos, PosEnd: value.End()}
		args = append(args, arg)
		if !p.peek().is(",") {
			break
		}
		p.advance()
	}
	end, err := p.expect(")")
	return args, false, end, err
}

func (p *parser) parseParams() ([]*ast.Param, error) {
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	var params []*ast.Param
	for !p.peek().is(")") {
		param, err := p.parseParam()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if !p.peek().is(",") {
			break
		}
		p.advance()
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *parser) parseParam() (*ast.Param, error) {
	start := p.peek()
	param := &ast.Param{}
	if start.is("?") {
		p.advance()
		param.Type = "?"
	}
	if tok := p.peek(); tok.kind == tIdent {
		p.advance()
		param.Type += tok.text
	}
	if p.peek().is("&") {
		p.advance()
		param.ByRef = true
	}
	if p.peek().is("...") {
		p.advance()
		param.Variadic = true
	}
	switch tok := p.peek(); {
	case tok.kind == tVariable:
		p.advance()
		param.Var = &ast.Variable{Range: ast.Range{PosStart: tok.pos, PosEnd: tok.end}, Name: tok.text}
	case tok.is("["):
		pattern, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		param.Var = pattern
	default:
		return nil, p.unexpected("parameter")
	}
	param.Range = ast.Range{PosStart: start.pos, PosEnd: param.Var.End()}
	return param, nil
}

func (p *parser) parseArrowFunction() (ast.Expr, error) {
	start := p.advance()
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	if p.peek().is(":") {
		if err := p.skipReturnType(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect("=>"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ArrowFunction{Range: ast.Range{PosStart: start.pos, PosEnd: body.End()}, Params: params, Expr: body}, nil
}

func (p *parser) parseClosure() (ast.Expr, error) {
	start := p.advance()
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	closure := &ast.Closure{Params: params}
	if p.peek().is("use") {
		p.advance()
		if _, err := p.expect("("); err != nil {
			return nil, err
		}
		for !p.peek().is(")") {
			if p.peek().is("&") {
				p.advance()
			}
			tok := p.peek()
			if tok.kind != tVariable {
				return nil, p.unexpected("variable")
			}
			p.advance()
			closure.Uses = append(closure.Uses, &ast.Variable{Range: ast.Range{PosStart: tok.pos, PosEnd: tok.end}, Name: tok.text})
			if !p.peek().is(",") {
				break
			}
			p.advance()
		}
		if _, err := p.expect(")"); err != nil {
			return nil, err
		}
	}
	if p.peek().is(":") {
		if err := p.skipReturnType(); err != nil {
			return nil, err
		}
	}
	stmts, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	closure.Stmts = stmts
	closure.Range = ast.Range{PosStart: start.pos, PosEnd: end}
	return closure, nil
}

func (p *parser) skipReturnType() error {
	p.advance()
	if p.peek().is("?") {
		p.advance()
	}
	if p.peek().kind != tIdent {
		return p.unexpected("return type")
	}
	p.advance()
	return nil
}
