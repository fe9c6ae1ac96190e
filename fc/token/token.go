// Package token defines the lexical tokens of the function-call expression
// grammar and the positions they occupy in the source text.
package token

import "strconv"

// EscapeSentinel is the fixed marker wrapping long-form string literals in
// the source syntax. The lexer keeps it in the literal; the value builder
// strips one occurrence from each end of the string, if present.
const EscapeSentinel = "<escape>"

// Type identifies the lexical class of a token.
type Type int

const (
	// EOF marks the end of the token stream.
	EOF Type = iota

	// Ident is an identifier: a call name or an object key.
	Ident

	// String is a string literal. The literal text excludes surrounding
	// quotes but retains any escape-sentinel markers for the builder to
	// strip.
	String

	// Number is a numeric literal. The lexer is permissive; the text is
	// validated when converted to a value.
	Number

	// Boolean is the literal "true" or "false".
	Boolean

	// Null is the literal "null".
	Null

	// LParen, RParen delimit a call's argument list.
	LParen
	RParen

	// LBrace, RBrace delimit a nested object.
	LBrace
	RBrace

	// LBrack, RBrack delimit an array.
	LBrack
	RBrack

	// Colon separates an object key from its value.
	Colon

	// Comma separates pairs, array elements, and calls.
	Comma

	// Invalid is produced for runes that begin no token.
	Invalid
)

// String returns the grammar name of the token type.
func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case Ident:
		return "identifier"
	case String:
		return "string"
	case Number:
		return "number"
	case Boolean:
		return "boolean"
	case Null:
		return "null"
	case LParen:
		return `"("`
	case RParen:
		return `")"`
	case LBrace:
		return `"{"`
	case RBrace:
		return `"}"`
	case LBrack:
		return `"["`
	case RBrack:
		return `"]"`
	case Colon:
		return `":"`
	case Comma:
		return `","`
	default:
		return "invalid"
	}
}

// Token is a single lexeme with its type and source position.
type Token struct {
	typ  Type
	lit  string
	lext int // offset of the first rune
	line int // 1-based
	col  int // 1-based
}

// New creates a token of the given type and literal at the given position.
func New(typ Type, lit string, lext, line, col int) *Token {
	return &Token{typ: typ, lit: lit, lext: lext, line: line, col: col}
}

// Type returns the lexical class of the token.
func (t *Token) Type() Type { return t.typ }

// LiteralString returns the literal text of the token.
func (t *Token) LiteralString() string { return t.lit }

// Lext returns the source offset of the token's first rune.
func (t *Token) Lext() int { return t.lext }

// Line returns the 1-based source line of the token.
func (t *Token) Line() int { return t.line }

// Col returns the 1-based source column of the token.
func (t *Token) Col() int { return t.col }

// String returns a compact representation for diagnostics.
func (t *Token) String() string {
	return t.typ.String() + " " + strconv.Quote(t.lit)
}
