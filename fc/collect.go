package fc

import (
	"context"
	"log/slog"

	"github.com/ardnew/fcall/fc/parser"
)

// collector accumulates tool calls while the parse tree is walked.
//
// The accumulator is either "ok so far, with the calls collected" or
// "failed, with the first error retained". Once failed, further tree
// events are ignored: the walk itself is owned by the traversal driver
// and runs to completion, but this listener's reaction becomes a no-op.
// Calls collected before the failure are left untouched.
type collector struct {
	builder

	ctx   context.Context
	calls *ToolCalls
	err   error
}

func newCollector(ctx context.Context, b builder) *collector {
	return &collector{
		builder: b,
		ctx:     ctx,
		calls:   &ToolCalls{},
	}
}

// EnterFunctionCall implements [parser.Listener].
func (c *collector) EnterFunctionCall(node *parser.FunctionCall) {
	if c.err != nil {
		return
	}

	// A call with no name is structurally valid; the name is empty.
	var name string
	if node.Name != nil {
		name = node.Name.LiteralString()
	}

	call := &ToolCall{Name: name}

	if node.Args != nil {
		args, err := c.buildObject(c.ctx, node.Args)
		if err != nil {
			c.err = err

			return
		}

		call.Arguments = args
	}

	c.logger.TraceContext(c.ctx, "collected tool call",
		slog.String("name", name),
		slog.Int("argument_count", call.Arguments.Len()),
	)

	c.calls.Calls = append(c.calls.Calls, call)
}

// result returns the accumulated calls, or the first error encountered.
func (c *collector) result() (*ToolCalls, error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.calls, nil
}
