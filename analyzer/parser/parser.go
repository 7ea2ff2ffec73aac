// Package parser turns snippet sources into analyzer/ast trees.
//
// The accepted language is the small expression and statement subset the
// analyzer understands: variables, scalar literals, property and offset
// fetches, method and function calls, isset, instanceof, boolean and
// comparison operators, arrow functions, closures, assignments, return,
// if/else and `@var` doc comments.
package parser

import (
	"fmt"
	"github.com/fp4php/functional-collection/analyzer/ast"
	"github.com/pkg/errors"
	"go/token"
	"regexp"
	"strings"
)

// SyntaxError is returned when the source cannot be parsed
type SyntaxError struct {
	Pos token.Pos
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", int(e.Pos)-1, e.Msg)
}

// ParseFile parses a whole snippet as a list of statements
func ParseFile(name, src string) (*ast.File, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not lex %s", name)
	}
	var stmts []ast.Stmt
	for !p.at(tEOF) {
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse %s", name)
		}
		stmts = append(stmts, stmt)
	}
	return &ast.File{
		Range: ast.Range{PosStart: token.Pos(1), PosEnd: p.peek().end},
		Name:  name,
		Stmts: stmts,
	}, nil
}

// ParseExpr parses a single expression, such as a predicate `fn($x) => $x !== null`
func ParseExpr(src string) (ast.Expr, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, errors.Wrap(err, "could not lex expression")
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse expression")
	}
	if p.peek().is(";") {
		p.advance()
	}
	if !p.at(tEOF) {
		return nil, errors.Wrap(p.unexpected("end of expression"), "could not parse expression")
	}
	return expr, nil
}

type parser struct {
	toks []lexToken
	idx  int
}

func newParser(src string) (*parser, error) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	return &parser{toks: toks}, nil
}

func (p *parser) peek() lexToken { return p.toks[p.idx] }

func (p *parser) peekAt(n int) lexToken {
	if p.idx+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.idx+n]
}

func (p *parser) at(kind tokenKind) bool { return p.peek().kind == kind }

func (p *parser) advance() lexToken {
	tok := p.toks[p.idx]
	if tok.kind != tEOF {
		p.idx++
	}
	return tok
}

func (p *parser) unexpected(wanted string) error {
	tok := p.peek()
	return &SyntaxError{Pos: tok.pos, Msg: fmt.Sprintf("expected %s, found %s", wanted, tok)}
}

func (p *parser) expect(text string) (lexToken, error) {
	if !p.peek().is(text) {
		return lexToken{}, p.unexpected("'" + text + "'")
	}
	return p.advance(), nil
}

// statements

func (p *parser) parseStmt() (ast.Stmt, error) {
	tok := p.peek()
	switch {
	case tok.kind == tDocComment:
		p.advance()
		return parseVarDoc(tok)
	case tok.is("return"):
		p.advance()
		if semi := p.peek(); semi.is(";") {
			p.advance()
			return &ast.Return{Range: ast.Range{PosStart: tok.pos, PosEnd: semi.end}}, nil
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		semi, err := p.expect(";")
		if err != nil {
			return nil, err
		}
		return &ast.Return{Range: ast.Range{PosStart: tok.pos, PosEnd: semi.end}, Expr: expr}, nil
	case tok.is("if"):
		return p.parseIf()
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(";")
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Range: ast.Range{PosStart: expr.Pos(), PosEnd: semi.end}, X: expr}, nil
}

func (p *parser) parseIf() (ast.Stmt, error) {
	start := p.advance()
	if _, err := p.expect("("); err != nil {
		return nil, err
	}
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(")"); err != nil {
		return nil, err
	}
	then, end, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Cond: cond, Then: then}
	if p.peek().is("else") {
		p.advance()
		if p.peek().is("if") {
			nested, err := p.parseIf()
			if err != nil {
				return nil, err
			}
			stmt.Else = []ast.Stmt{nested}
			end = nested.End()
		} else {
			stmt.Else, end, err = p.parseBlock()
			if err != nil {
				return nil, err
			}
		}
	}
	stmt.Range = ast.Range{PosStart: start.pos, PosEnd: end}
	return stmt, nil
}

func (p *parser) parseBlock() ([]ast.Stmt, token.Pos, error) {
	if _, err := p.expect("{"); err != nil {
		return nil, token.NoPos, err
	}
	var stmts []ast.Stmt
	for !p.peek().is("}") {
		if p.at(tEOF) {
			return nil, token.NoPos, p.unexpected("'}'")
		}
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, token.NoPos, err
		}
		stmts = append(stmts, stmt)
	}
	closing := p.advance()
	return stmts, closing.end, nil
}

var varDocPattern = regexp.MustCompile(`@var\s+(.+?)\s+\$([A-Za-z_][A-Za-z0-9_]*)`)

func parseVarDoc(tok lexToken) (ast.Stmt, error) {
	body := strings.TrimSuffix(strings.TrimPrefix(tok.text, "/**"), "*/")
	body = strings.Join(strings.Fields(strings.ReplaceAll(body, "*", " ")), " ")
	match := varDocPattern.FindStringSubmatch(body)
	if match == nil {
		return nil, &SyntaxError{Pos: tok.pos, Msg: "doc comment must be of the form /** @var Type $name */"}
	}
	rng := ast.Range{PosStart: tok.pos, PosEnd: tok.end}
	return &ast.VarDoc{
		Range: rng,
		Var:   &ast.Variable{Range: rng, Name: match[2]},
		Type:  match[1],
	}, nil
}
