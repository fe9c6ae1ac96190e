package repl

import "errors"

// Sentinel errors.
var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUnknownFormat  = errors.New("unknown format")
)
