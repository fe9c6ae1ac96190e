package cmd

import (
	"context"
	"os"
	"strings"

	"github.com/ardnew/fcall/fc"
)

// Fmt parses tool call expressions and reprints them in canonical source
// syntax. With a positive indent, each argument pair is placed on its own
// line; with indent zero, calls are printed on a single line.
type Fmt struct {
	Text []string `arg:"" help:"Expression text to reformat" name:"text" optional:""`

	Indent int `default:"0" help:"Indent width for formatted output" short:"i"`
}

// Run executes the fmt command.
func (f *Fmt) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var calls *fc.ToolCalls

	if len(f.Text) > 0 {
		calls, err = fc.ParseString(ctx, strings.Join(f.Text, ","))
	} else {
		src := sourceFilesFrom(ctx)
		if src == nil {
			return ErrNoInput
		}

		defer func() { _ = src.Close() }()

		calls, err = fc.ParseReader(ctx, src)
	}

	if err != nil {
		return err
	}

	return calls.Format(ctx, os.Stdout, f.Indent)
}
