package fc

import (
	"context"
	"io"
	"log/slog"

	"github.com/ardnew/fcall/fc/lexer"
	"github.com/ardnew/fcall/fc/parser"
	"github.com/ardnew/fcall/log"
)

// config holds per-invocation conversion settings.
type config struct {
	logger log.Logger
}

// Option configures one conversion invocation.
type Option func(*config)

// WithLogger sets the structured logger receiving duplicate-key
// diagnostics and per-call trace events. If not provided, the logger is
// zero-valued and all diagnostics are discarded.
func WithLogger(logger log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// ParseString converts one function-call expression into its collected
// tool calls.
//
// Empty input is a valid "no tool calls requested" result: it yields an
// empty ToolCalls and no error. Non-empty input is tokenized and parsed
// with a bail-on-first-error strategy; a syntax error anywhere aborts the
// whole parse. On a successful parse the tree is walked top to bottom and
// each call construct is converted; the first conversion failure wins and
// all subsequent tree content is ignored for result purposes.
//
// Each invocation is independent: nothing is cached or shared, so
// concurrent calls are safe without coordination.
func ParseString(
	ctx context.Context,
	input string,
	opts ...Option,
) (*ToolCalls, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(input) == 0 {
		return &ToolCalls{}, nil
	}

	cfg.logger.TraceContext(ctx, "parse start",
		slog.Int("source_length", len(input)),
	)

	start, perr := parser.Parse(lexer.New([]rune(input)))
	if perr != nil {
		return nil, NewParseError(perr, input)
	}

	c := newCollector(ctx, builder{logger: cfg.logger})
	parser.Walk(start, c)

	calls, err := c.result()
	if err != nil {
		return nil, err
	}

	cfg.logger.TraceContext(ctx, "parse complete",
		slog.Int("call_count", calls.Len()),
	)

	return calls, nil
}

// ParseReader converts a function-call expression read from r.
func ParseReader(
	ctx context.Context,
	r io.Reader,
	opts ...Option,
) (*ToolCalls, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ErrReadInput.Wrap(err)
	}

	return ParseString(ctx, string(data), opts...)
}

// Result is the outcome handed across the runtime boundary: exactly one of
// a serialized ToolCalls payload (possibly representing zero calls) or a
// human-readable error message.
type Result struct {
	Serialized []byte
	OK         bool
	Err        string
}

// ParseExpression runs the full conversion pipeline (parse, collect,
// serialize) and folds every failure into the returned [Result]. It never
// returns an error and never panics; callers decide whether to retry with
// corrected input.
func ParseExpression(
	ctx context.Context,
	input string,
	opts ...Option,
) Result {
	calls, err := ParseString(ctx, input, opts...)
	if err != nil {
		return Result{Err: err.Error()}
	}

	data, err := Serialize(calls)
	if err != nil {
		return Result{Err: err.Error()}
	}

	return Result{Serialized: data, OK: true}
}
