// Package parser builds a concrete syntax tree from the lexer's token
// stream using recursive descent.
//
// The parser bails on the first error: no recovery is attempted, and no
// partial tree is returned. Tree nodes expose their children as typed
// fields; converting them into the value model is the fc package's job.
package parser

import (
	"strings"

	"github.com/ardnew/fcall/fc/lexer"
	"github.com/ardnew/fcall/fc/token"
)

// Start is the root node: the ordered list of function calls in the input.
type Start struct {
	Calls []*FunctionCall
}

// FunctionCall is one call construct: an optional name and an optional
// argument object.
type FunctionCall struct {
	Name *token.Token // nil when the call is nameless
	Args *Object      // nil when the call has no argument list
}

// Object is an ordered list of key/value pairs, produced by both a call's
// parenthesized argument list and a braced nested object.
type Object struct {
	Pairs []*Pair
}

// Pair is one key/value pair inside an object.
type Pair struct {
	Key   *token.Token
	Value *Value
}

// Value is a single value node. Exactly one field is non-nil. Ident is an
// alternative the value model does not cover; it exists so that malformed
// scalars surface as conversion errors with their source text rather than
// as crashes.
type Value struct {
	Str   *token.Token
	Num   *token.Token
	Bool  *token.Token
	Null  *token.Token
	Ident *token.Token
	Obj   *Object
	Arr   *Array
}

// Array is an ordered list of value nodes.
type Array struct {
	Values []*Value
}

// Text reconstructs the source form of the value node for diagnostics.
func (v *Value) Text() string {
	switch {
	case v == nil:
		return ""
	case v.Str != nil:
		return v.Str.LiteralString()
	case v.Num != nil:
		return v.Num.LiteralString()
	case v.Bool != nil:
		return v.Bool.LiteralString()
	case v.Null != nil:
		return v.Null.LiteralString()
	case v.Ident != nil:
		return v.Ident.LiteralString()
	case v.Obj != nil:
		return v.Obj.Text()
	case v.Arr != nil:
		return v.Arr.Text()
	default:
		return ""
	}
}

// Text reconstructs the source form of the object for diagnostics.
func (o *Object) Text() string {
	part := make([]string, 0, len(o.Pairs))
	for _, p := range o.Pairs {
		part = append(part, p.Key.LiteralString()+": "+p.Value.Text())
	}

	return "{" + strings.Join(part, ", ") + "}"
}

// Text reconstructs the source form of the array for diagnostics.
func (a *Array) Text() string {
	part := make([]string, 0, len(a.Values))
	for _, v := range a.Values {
		part = append(part, v.Text())
	}

	return "[" + strings.Join(part, ", ") + "]"
}

// Listener receives tree events during a walk.
type Listener interface {
	// EnterFunctionCall is invoked once per call construct, in source
	// order. The walk itself never stops early; a listener that has
	// already failed simply ignores further events.
	EnterFunctionCall(*FunctionCall)
}

// Walk traverses the tree top to bottom, delivering every function-call
// node to the listener. The traversal always runs to completion.
func Walk(start *Start, l Listener) {
	for _, call := range start.Calls {
		l.EnterFunctionCall(call)
	}
}

// Parse consumes the lexer's token stream and returns the syntax tree, or
// the first error encountered.
func Parse(l *lexer.Lexer) (*Start, *Error) {
	p := &parser{toks: l.Tokens}

	return p.parseStart()
}

type parser struct {
	toks []*token.Token
	pos  int
}

func (p *parser) current() *token.Token {
	if p.pos >= len(p.toks) {
		// The lexer always terminates the stream with EOF.
		return p.toks[len(p.toks)-1]
	}

	return p.toks[p.pos]
}

func (p *parser) at(typ token.Type) bool { return p.current().Type() == typ }

func (p *parser) take(typ token.Type) (*token.Token, *Error) {
	tok := p.current()
	if tok.Type() != typ {
		return nil, unexpected(tok, typ.String())
	}

	p.pos++

	return tok, nil
}

// Start → Call (","? Call)* EOF.
func (p *parser) parseStart() (*Start, *Error) {
	start := &Start{}

	for !p.at(token.EOF) {
		call, err := p.parseCall()
		if err != nil {
			return nil, err
		}

		start.Calls = append(start.Calls, call)

		if p.at(token.Comma) {
			p.pos++
		}
	}

	return start, nil
}

// Call → ident Args? | Args.
func (p *parser) parseCall() (*FunctionCall, *Error) {
	call := &FunctionCall{}

	if p.at(token.Ident) {
		call.Name = p.current()
		p.pos++

		if p.at(token.LParen) {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}

			call.Args = args
		}

		return call, nil
	}

	if p.at(token.LParen) {
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}

		call.Args = args

		return call, nil
	}

	return nil, unexpected(p.current(), token.Ident.String(), token.LParen.String())
}

// Args → "(" Pairs? ")".
func (p *parser) parseArgs() (*Object, *Error) {
	if _, err := p.take(token.LParen); err != nil {
		return nil, err
	}

	obj := &Object{}

	if !p.at(token.RParen) {
		pairs, err := p.parsePairs()
		if err != nil {
			return nil, err
		}

		obj.Pairs = pairs
	}

	if _, err := p.take(token.RParen); err != nil {
		return nil, err
	}

	return obj, nil
}

// Object → "{" Pairs? "}".
func (p *parser) parseObject() (*Object, *Error) {
	if _, err := p.take(token.LBrace); err != nil {
		return nil, err
	}

	obj := &Object{}

	if !p.at(token.RBrace) {
		pairs, err := p.parsePairs()
		if err != nil {
			return nil, err
		}

		obj.Pairs = pairs
	}

	if _, err := p.take(token.RBrace); err != nil {
		return nil, err
	}

	return obj, nil
}

// Pairs → Pair ("," Pair)*.
func (p *parser) parsePairs() ([]*Pair, *Error) {
	pairs := make([]*Pair, 0, 4)

	for {
		pair, err := p.parsePair()
		if err != nil {
			return nil, err
		}

		pairs = append(pairs, pair)

		if !p.at(token.Comma) {
			return pairs, nil
		}

		p.pos++
	}
}

// Pair → ident ":" Value. String tokens are admitted as keys so that
// escape-wrapped keys surface as builder errors, not syntax errors.
func (p *parser) parsePair() (*Pair, *Error) {
	key := p.current()

	switch key.Type() {
	case token.Ident, token.String:
		p.pos++
	default:
		return nil, unexpected(key, token.Ident.String())
	}

	if _, err := p.take(token.Colon); err != nil {
		return nil, err
	}

	val, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &Pair{Key: key, Value: val}, nil
}

// Value → string | number | boolean | null | Object | Array | ident.
func (p *parser) parseValue() (*Value, *Error) {
	tok := p.current()

	switch tok.Type() {
	case token.String:
		p.pos++

		return &Value{Str: tok}, nil

	case token.Number:
		p.pos++

		return &Value{Num: tok}, nil

	case token.Boolean:
		p.pos++

		return &Value{Bool: tok}, nil

	case token.Null:
		p.pos++

		return &Value{Null: tok}, nil

	case token.Ident:
		p.pos++

		return &Value{Ident: tok}, nil

	case token.LBrace:
		obj, err := p.parseObject()
		if err != nil {
			return nil, err
		}

		return &Value{Obj: obj}, nil

	case token.LBrack:
		arr, err := p.parseArray()
		if err != nil {
			return nil, err
		}

		return &Value{Arr: arr}, nil

	default:
		return nil, unexpected(tok,
			token.String.String(), token.Number.String(),
			token.Boolean.String(), token.Null.String(),
			token.LBrace.String(), token.LBrack.String(),
		)
	}
}

// Array → "[" (Value ("," Value)*)? "]".
func (p *parser) parseArray() (*Array, *Error) {
	if _, err := p.take(token.LBrack); err != nil {
		return nil, err
	}

	arr := &Array{}

	for !p.at(token.RBrack) {
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		arr.Values = append(arr.Values, val)

		if !p.at(token.Comma) {
			break
		}

		p.pos++
	}

	if _, err := p.take(token.RBrack); err != nil {
		return nil, err
	}

	return arr, nil
}
