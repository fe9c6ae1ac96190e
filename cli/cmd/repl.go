package cmd

import (
	"context"
	"path/filepath"

	"github.com/ardnew/fcall/cli/cmd/repl"
	"github.com/ardnew/fcall/log"
)

// Repl runs an interactive parser session.
type Repl struct {
	Format string `default:"json"     enum:"json,yaml,text" help:"Output format"           short:"o"`
	Indent int    `default:"0"                              help:"Indent width for output" short:"i"`
	Dir    string `default:"${cache}"                       help:"History file directory"            type:"path"`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	return repl.Run(
		ctx,
		filepath.Join(r.Dir, "history.utf8"),
		log.Default(),
		repl.WithFormat(r.Format),
		repl.WithIndent(r.Indent),
	)
}
