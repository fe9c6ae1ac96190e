package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ardnew/fcall/fc"
	"github.com/ardnew/fcall/log"
)

// Parse parses tool call expressions and prints the typed calls.
//
// Expression text is taken from positional arguments when given, otherwise
// from the source files configured on the top-level command.
type Parse struct {
	Text []string `arg:"" help:"Expression text to parse" name:"text" optional:""`

	Format string `default:"json" enum:"json,yaml,text" help:"Output format"                    short:"o"`
	Indent int    `default:"2"                          help:"Indent width for output"          short:"i"`
	Filter string `default:""                           help:"Keep only calls matching filter." short:"F"`
}

// Run executes the parse command.
func (p *Parse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	calls, err := parseInput(ctx, p.Text)
	if err != nil {
		return err
	}

	if p.Filter != "" {
		prog, err := fc.CompileFilter(p.Filter)
		if err != nil {
			return err
		}

		calls, err = calls.Filter(prog)
		if err != nil {
			return err
		}

		log.DebugContext(ctx, "filter applied",
			slog.String("expression", p.Filter),
			slog.Int("remaining", calls.Len()),
		)
	}

	return writeCalls(ctx, calls, p.Format, p.Indent)
}

// parseInput parses the positional expression text if present, otherwise the
// configured source files.
func parseInput(ctx context.Context, text []string) (*fc.ToolCalls, error) {
	if len(text) > 0 {
		return fc.ParseString(ctx, strings.Join(text, ","))
	}

	src := sourceFilesFrom(ctx)
	if src == nil {
		return nil, ErrNoInput
	}

	defer func() { _ = src.Close() }()

	return fc.ParseReader(ctx, src)
}

// writeCalls writes calls to stdout in the named format.
func writeCalls(
	ctx context.Context,
	calls *fc.ToolCalls,
	format string,
	indent int,
) error {
	return formatTo(ctx, os.Stdout, calls, format, indent)
}

func formatTo(
	ctx context.Context,
	w io.Writer,
	calls *fc.ToolCalls,
	format string,
	indent int,
) error {
	switch format {
	case "json":
		return calls.FormatJSON(ctx, w, indent)
	case "yaml":
		return calls.FormatYAML(ctx, w, indent)
	case "text":
		return calls.Format(ctx, w, indent)
	default:
		return ErrUnknownFormat.With(slog.String("format", format))
	}
}
