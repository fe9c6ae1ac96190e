package parser

import (
	"strconv"
	"strings"

	"github.com/ardnew/fcall/fc/token"
)

// Error describes the first syntax error encountered by the parser.
type Error struct {
	Token    *token.Token // the offending token
	Line     int          // 1-based
	Column   int          // 1-based
	Expected []string     // token names acceptable at this position
}

func unexpected(tok *token.Token, expected ...string) *Error {
	return &Error{
		Token:    tok,
		Line:     tok.Line(),
		Column:   tok.Col(),
		Expected: expected,
	}
}

// String formats the error as a single-line diagnostic.
func (e *Error) String() string {
	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Column))
	buf.WriteString(": unexpected ")
	buf.WriteString(e.Token.String())

	if len(e.Expected) > 0 {
		buf.WriteString(", expected ")
		buf.WriteString(strings.Join(e.Expected, " or "))
	}

	return buf.String()
}

// Error implements the error interface.
func (e *Error) Error() string { return e.String() }
