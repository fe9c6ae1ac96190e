// Package lexer tokenizes function-call expression source text.
//
// The lexer is total: it never fails. Runes that begin no token are emitted
// as [token.Invalid] tokens, and the parser converts them into syntax
// errors. Numeric literals are scanned permissively; validating the text as
// a 64-bit float is the value builder's job.
package lexer

import (
	"strings"
	"unicode"

	"github.com/ardnew/fcall/fc/token"
)

// Lexer holds the scanned token stream for one input.
type Lexer struct {
	Input  []rune
	Tokens []*token.Token

	pos  int
	line int
	col  int
}

// New scans the entire input and returns the lexer with its token stream.
// The final token is always [token.EOF].
func New(input []rune) *Lexer {
	l := &Lexer{Input: input, line: 1, col: 1}
	l.scan()

	return l
}

func (l *Lexer) scan() {
	for {
		l.skipWhitespace()

		if l.eof() {
			l.emit(token.EOF, "", l.pos, l.line, l.col)

			return
		}

		lext, line, col := l.pos, l.line, l.col
		ch := l.peek()

		switch {
		case ch == '"':
			l.scanQuoted(lext, line, col)

		case ch == '<' && l.hasPrefix(token.EscapeSentinel):
			l.scanRawBlock(lext, line, col)

		case isNumberStart(ch):
			l.scanNumber(lext, line, col)

		case isIdentStart(ch):
			l.scanIdent(lext, line, col)

		default:
			if typ, ok := punct[ch]; ok {
				l.advance()
				l.emit(typ, string(ch), lext, line, col)

				continue
			}

			l.advance()
			l.emit(token.Invalid, string(ch), lext, line, col)
		}
	}
}

// scanQuoted scans a double-quoted string literal. The literal text is the
// raw interior: no escape sequences are interpreted, but a backslash shields
// the following rune from terminating the literal. An unterminated literal
// becomes an Invalid token spanning the rest of the input.
func (l *Lexer) scanQuoted(lext, line, col int) {
	l.advance() // opening quote

	start := l.pos

	for !l.eof() {
		switch l.peek() {
		case '\\':
			l.advance()

			if !l.eof() {
				l.advance()
			}

		case '"':
			lit := string(l.Input[start:l.pos])
			l.advance() // closing quote
			l.emit(token.String, lit, lext, line, col)

			return

		default:
			l.advance()
		}
	}

	l.emit(token.Invalid, string(l.Input[lext:l.pos]), lext, line, col)
}

// scanRawBlock scans an escape-sentinel-delimited string. The literal keeps
// both markers; if the closing marker is missing, the block extends to EOF
// and the literal keeps only the opening marker.
func (l *Lexer) scanRawBlock(lext, line, col int) {
	l.advanceN(len(token.EscapeSentinel))

	for !l.eof() {
		if l.peek() == '<' && l.hasPrefix(token.EscapeSentinel) {
			l.advanceN(len(token.EscapeSentinel))

			break
		}

		l.advance()
	}

	l.emit(token.String, string(l.Input[lext:l.pos]), lext, line, col)
}

// scanNumber consumes a permissive numeric run. Malformed runs such as
// "1.2.3" are deliberately accepted here and rejected by strconv.ParseFloat
// during value construction.
func (l *Lexer) scanNumber(lext, line, col int) {
	l.advance()

	for !l.eof() && isNumberContinue(l.peek()) {
		l.advance()
	}

	l.emit(token.Number, string(l.Input[lext:l.pos]), lext, line, col)
}

func (l *Lexer) scanIdent(lext, line, col int) {
	l.advance()

	for !l.eof() && isIdentContinue(l.peek()) {
		l.advance()
	}

	lit := string(l.Input[lext:l.pos])

	switch lit {
	case "true", "false":
		l.emit(token.Boolean, lit, lext, line, col)
	case "null":
		l.emit(token.Null, lit, lext, line, col)
	default:
		l.emit(token.Ident, lit, lext, line, col)
	}
}

var punct = map[rune]token.Type{
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBrack,
	']': token.RBrack,
	':': token.Colon,
	',': token.Comma,
}

func (l *Lexer) emit(typ token.Type, lit string, lext, line, col int) {
	l.Tokens = append(l.Tokens, token.New(typ, lit, lext, line, col))
}

func (l *Lexer) skipWhitespace() {
	for !l.eof() && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

func (l *Lexer) peek() rune {
	if l.eof() {
		return 0
	}

	return l.Input[l.pos]
}

func (l *Lexer) hasPrefix(s string) bool {
	return strings.HasPrefix(string(l.Input[l.pos:min(l.pos+len(s), len(l.Input))]), s)
}

func (l *Lexer) advance() {
	if l.eof() {
		return
	}

	if l.Input[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}

	l.pos++
}

func (l *Lexer) advanceN(n int) {
	for range n {
		l.advance()
	}
}

func (l *Lexer) eof() bool { return l.pos >= len(l.Input) }

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinue(r rune) bool {
	return r == '_' || r == '.' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isNumberStart(r rune) bool {
	return r == '-' || r == '+' || r == '.' || unicode.IsDigit(r)
}

func isNumberContinue(r rune) bool {
	switch r {
	case '.', '-', '+', 'e', 'E', 'x', 'X':
		return true
	}

	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
