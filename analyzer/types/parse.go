package types

import (
	"github.com/pkg/errors"
	"slices"
	"strings"
	"unicode"
)

// ParseType parses a type string such as `HashMap<string, int|null>` or `Stream<list{int, ?Foo}>`
func ParseType(s string) (*Union, error) {
	return ParseTypeWithTemplates(s, nil)
}

// MustParseType is like ParseType but panics on malformed input. It is meant for
// types written as literals in code and tests
func MustParseType(s string) *Union {
	u, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return u
}

// ParseTypeWithTemplates is like ParseType, but identifiers in templates are
// parsed as TTemplateParam rather than as class names
func ParseTypeWithTemplates(s string, templates []string) (*Union, error) {
	p := &typeParser{src: s, templates: templates}
	u, err := p.parseUnion()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid type '%s'", s)
	}
	p.skipSpace()
	if p.off != len(p.src) {
		return nil, errors.Errorf("invalid type '%s': unexpected '%s' at offset %d", s, p.src[p.off:], p.off)
	}
	return u, nil
}

type typeParser struct {
	src       string
	off       int
	templates []string
}

func (p *typeParser) skipSpace() {
	for p.off < len(p.src) && unicode.IsSpace(rune(p.src[p.off])) {
		p.off++
	}
}

func (p *typeParser) peekByte() byte {
	p.skipSpace()
	if p.off >= len(p.src) {
		return 0
	}
	return p.src[p.off]
}

func (p *typeParser) consume(b byte) bool {
	if p.peekByte() == b {
		p.off++
		return true
	}
	return false
}

func (p *typeParser) expect(b byte) error {
	if !p.consume(b) {
		return errors.Errorf("expected '%c' at offset %d", b, p.off)
	}
	return nil
}

func (p *typeParser) ident() string {
	p.skipSpace()
	start := p.off
	for p.off < len(p.src) {
		c := rune(p.src[p.off])
		if c == '_' || c == '\\' || c == '-' || unicode.IsLetter(c) || unicode.IsDigit(c) {
			p.off++
			continue
		}
		break
	}
	return strings.TrimPrefix(p.src[start:p.off], "\\")
}

func (p *typeParser) parseUnion() (*Union, error) {
	var atomics []Atomic
	for {
		next, err := p.parseAtomic()
		if err != nil {
			return nil, err
		}
		atomics = append(atomics, next...)
		if !p.consume('|') {
			return NewUnion(atomics...), nil
		}
	}
}

func (p *typeParser) parseList(closing byte) ([]*Union, error) {
	var params []*Union
	for {
		param, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		params = append(params, param)
		if p.consume(closing) {
			return params, nil
		}
		if err := p.expect(','); err != nil {
			return nil, err
		}
	}
}

var scalars = map[string]Atomic{
	"null":           TNull{},
	"int":            TInt{},
	"integer":        TInt{},
	"float":          TFloat{},
	"string":         TString{},
	"bool":           TBool{},
	"boolean":        TBool{},
	"true":           TTrue{},
	"false":          TFalse{},
	"mixed":          TMixed{},
	"non-null-mixed": TMixed{NonNull: true},
	"object":         TObject{},
}

func (p *typeParser) parseAtomic() ([]Atomic, error) {
	if p.consume('?') {
		inner, err := p.parseAtomic()
		if err != nil {
			return nil, err
		}
		return append(inner, TNull{}), nil
	}
	if p.consume('(') {
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return inner.atomics, nil
	}

	start := p.off
	name := p.ident()
	if name == "" {
		return nil, errors.Errorf("expected a type at offset %d", start)
	}
	lower := strings.ToLower(name)

	switch {
	case (lower == "list" || lower == "array") && p.peekByte() == '{':
		p.off++
		items, err := p.parseList('}')
		if err != nil {
			return nil, err
		}
		return []Atomic{TKeyedArray{Items: items, IsList: lower == "list"}}, nil
	case lower == "array" && p.peekByte() == '<':
		p.off++
		params, err := p.parseList('>')
		if err != nil {
			return nil, err
		}
		switch len(params) {
		case 1:
			return []Atomic{TArray{Key: NewUnion(TInt{}, TString{}), Value: params[0]}}, nil
		case 2:
			return []Atomic{TArray{Key: params[0], Value: params[1]}}, nil
		default:
			return nil, errors.Errorf("array expects 1 or 2 type parameters, got %d", len(params))
		}
	case lower == "array":
		return []Atomic{TArray{Key: NewUnion(TInt{}, TString{}), Value: Mixed()}}, nil
	}

	if scalar, ok := scalars[lower]; ok {
		return []Atomic{scalar}, nil
	}
	if slices.Contains(p.templates, name) {
		return []Atomic{TTemplateParam{Name: name, As: Mixed()}}, nil
	}
	if p.peekByte() == '<' {
		p.off++
		params, err := p.parseList('>')
		if err != nil {
			return nil, err
		}
		return []Atomic{TGenericObject{Name: name, Params: params}}, nil
	}
	return []Atomic{TNamedObject{Name: name}}, nil
}
