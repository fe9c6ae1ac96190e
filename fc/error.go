package fc

import (
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/ardnew/fcall/fc/parser"
)

// Predefined errors (sentinel values).
var (
	ErrEmptyKey         = NewError("object key is empty")
	ErrPairMissingID    = NewError("invalid pair in object: key missing")
	ErrPairMissingValue = NewError("invalid pair in object: value missing")
	ErrNumberParse      = NewError("failed to parse number")
	ErrUnhandledValue   = NewError("unhandled value type")
	ErrKeyValue         = NewError("parse value for key")
	ErrSerialize        = NewError("serialize tool calls")
	ErrUnformattable    = NewError("string not representable in source syntax")
	ErrFilterCompile    = NewError("compile filter expression")
	ErrFilterEval       = NewError("evaluate filter expression")
	ErrReadInput        = NewError("failed to read input")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is an [Error] carrying the same base message.
// Derived errors produced by [Error.With] and [Error.Wrap] therefore still
// match their sentinel under [errors.Is].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// ParseError wraps the parser's bail error together with the source input
// for contextual rendering.
type ParseError struct {
	Err    *parser.Error
	Source string
}

// NewParseError creates a ParseError for the given parser error and source.
func NewParseError(err *parser.Error, source string) *ParseError {
	return &ParseError{Err: err, Source: source}
}

// Error implements the error interface. When the source is available the
// message includes the offending line with a caret marking the column.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return "syntax error"
	}

	if e.Source == "" {
		return e.Err.String()
	}

	return e.formatWithContext()
}

// formatWithContext renders the parse error with a source code snippet.
func (e *ParseError) formatWithContext() string {
	lines := strings.Split(e.Source, "\n")

	var buf strings.Builder

	buf.WriteString("syntax error at line ")
	buf.WriteString(strconv.Itoa(e.Err.Line))
	buf.WriteString(", column ")
	buf.WriteString(strconv.Itoa(e.Err.Column))
	buf.WriteString(":\n")

	if e.Err.Line > 0 && e.Err.Line <= len(lines) {
		line := lines[e.Err.Line-1]

		buf.WriteString("  ")
		buf.WriteString(strconv.Itoa(e.Err.Line))
		buf.WriteString(" | ")
		buf.WriteString(line)
		buf.WriteRune('\n')

		// +5 accounts for: 2 leading spaces + " | " (3 chars)
		padding := len(strconv.Itoa(e.Err.Line)) + 5

		if e.Err.Column > 0 {
			padding += e.Err.Column - 1
		}

		buf.WriteString(strings.Repeat(" ", padding))
		buf.WriteString("^\n")
	}

	if len(e.Err.Expected) > 0 {
		exp := slices.Clone(e.Err.Expected)
		slices.Sort(exp)

		buf.WriteString("\texpected: ")
		buf.WriteString(strings.Join(exp, ", "))
	}

	return buf.String()
}
