package parser

import (
	"fmt"
	"go/token"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tEOF tokenKind = iota
	tVariable
	tIdent
	tInt
	tFloat
	tString
	tDocComment
	tPunct
)

var tokenKindNames = map[tokenKind]string{
	tEOF:        "end of input",
	tVariable:   "variable",
	tIdent:      "identifier",
	tInt:        "integer",
	tFloat:      "float",
	tString:     "string",
	tDocComment: "doc comment",
	tPunct:      "punctuation",
}

type lexToken struct {
	kind tokenKind
	text string
	pos  token.Pos
	end  token.Pos
}

func (t lexToken) String() string {
	if t.kind == tEOF {
		return tokenKindNames[t.kind]
	}
	return fmt.Sprintf("%s '%s'", tokenKindNames[t.kind], t.text)
}

// is reports whether t is the punctuation or (case-insensitive) keyword text
func (t lexToken) is(text string) bool {
	switch t.kind {
	case tPunct:
		return t.text == text
	case tIdent:
		return strings.EqualFold(t.text, text)
	default:
		return false
	}
}

// puncts is ordered so that longer operators are matched first
var puncts = []string{
	"===", "!==", "...",
	"==", "!=", "<=", ">=", "&&", "||", "=>", "->", "::",
	"(", ")", "[", "]", "{", "}", ",", ";", "=", "!", "<", ">", "&", "?", ":",
}

type lexer struct {
	src  string
	off  int
	toks []lexToken
}

func lex(src string) ([]lexToken, error) {
	l := &lexer{src: strings.TrimPrefix(src, "\ufeff")}
	l.skipOpenTag()
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		l.toks = append(l.toks, tok)
		if tok.kind == tEOF {
			return l.toks, nil
		}
	}
}

func (l *lexer) skipOpenTag() {
	trimmed := strings.TrimLeftFunc(l.src, unicode.IsSpace)
	if strings.HasPrefix(trimmed, "<?php") {
		l.off = len(l.src) - len(trimmed) + len("<?php")
	}
}

func (l *lexer) posAt(off int) token.Pos { return token.Pos(off + 1) }

func (l *lexer) errorf(off int, format string, args ...any) error {
	return &SyntaxError{Pos: l.posAt(off), Msg: fmt.Sprintf(format, args...)}
}

func (l *lexer) skipSpaceAndComments() error {
	for l.off < len(l.src) {
		rest := l.src[l.off:]
		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case unicode.IsSpace(r):
			l.off += size
		case strings.HasPrefix(rest, "//") || strings.HasPrefix(rest, "#"):
			end := strings.IndexByte(rest, '\n')
			if end < 0 {
				l.off = len(l.src)
			} else {
				l.off += end + 1
			}
		case strings.HasPrefix(rest, "/*") && !strings.HasPrefix(rest, "/**"):
			end := strings.Index(rest[2:], "*/")
			if end < 0 {
				return l.errorf(l.off, "unterminated comment")
			}
			l.off += end + 4
		default:
			return nil
		}
	}
	return nil
}

func isIdentStart(r rune) bool { return r == '_' || r == '\\' || unicode.IsLetter(r) }
func isIdentPart(r rune) bool  { return isIdentStart(r) || unicode.IsDigit(r) }

func (l *lexer) takeWhile(start int, pred func(rune) bool) int {
	off := start
	for off < len(l.src) {
		r, size := utf8.DecodeRuneInString(l.src[off:])
		if !pred(r) {
			break
		}
		off += size
	}
	return off
}

func (l *lexer) emit(kind tokenKind, start, end int, text string) lexToken {
	l.off = end
	return lexToken{kind: kind, text: text, pos: l.posAt(start), end: l.posAt(end)}
}

func (l *lexer) next() (lexToken, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return lexToken{}, err
	}
	start := l.off
	if start >= len(l.src) {
		return l.emit(tEOF, start, start, ""), nil
	}
	rest := l.src[start:]
	r, size := utf8.DecodeRuneInString(rest)

	switch {
	case strings.HasPrefix(rest, "/**"):
		end := strings.Index(rest[3:], "*/")
		if end < 0 {
			return lexToken{}, l.errorf(start, "unterminated doc comment")
		}
		stop := start + 3 + end + 2
		return l.emit(tDocComment, start, stop, l.src[start:stop]), nil

	case r == '$':
		end := l.takeWhile(start+size, isIdentPart)
		if end == start+size {
			return lexToken{}, l.errorf(start, "expected variable name after '$'")
		}
		return l.emit(tVariable, start, end, l.src[start+size:end]), nil

	case isIdentStart(r):
		end := l.takeWhile(start, isIdentPart)
		return l.emit(tIdent, start, end, l.src[start:end]), nil

	case unicode.IsDigit(r):
		end := l.takeWhile(start, unicode.IsDigit)
		if end < len(l.src) && l.src[end] == '.' && end+1 < len(l.src) && unicode.IsDigit(rune(l.src[end+1])) {
			end = l.takeWhile(end+1, unicode.IsDigit)
			return l.emit(tFloat, start, end, l.src[start:end]), nil
		}
		return l.emit(tInt, start, end, l.src[start:end]), nil

	case r == '\'' || r == '"':
		return l.lexString(start, byte(r))
	}

	for _, p := range puncts {
		if strings.HasPrefix(rest, p) {
			return l.emit(tPunct, start, start+len(p), p), nil
		}
	}
	return lexToken{}, l.errorf(start, "unexpected character %q", r)
}

func (l *lexer) lexString(start int, quote byte) (lexToken, error) {
	sb := strings.Builder{}
	off := start + 1
	for off < len(l.src) {
		c := l.src[off]
		switch {
		case c == quote:
			return l.emit(tString, start, off+1, sb.String()), nil
		case c == '\\' && off+1 < len(l.src):
			next := l.src[off+1]
			switch {
			case next == quote || next == '\\':
				sb.WriteByte(next)
			case next == 'n' && quote == '"':
				sb.WriteByte('\n')
			case next == 't' && quote == '"':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(c)
				sb.WriteByte(next)
			}
			off += 2
		default:
			sb.WriteByte(c)
			off++
		}
	}
	return lexToken{}, l.errorf(start, "unterminated string literal")
}
