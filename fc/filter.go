package fc

import (
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// callEnv is the environment visible to filter expressions: the call name
// and its arguments as native Go values.
type callEnv struct {
	Name string         `expr:"name"`
	Args map[string]any `expr:"args"`
}

// CompileFilter compiles a boolean expr-lang predicate over tool calls.
// The expression sees "name" (string) and "args" (map); for example:
//
//	name == "get_weather"
//	name startsWith "fs_" && args.path != nil
func CompileFilter(src string) (*vm.Program, error) {
	prog, err := expr.Compile(src, expr.Env(callEnv{}), expr.AsBool())
	if err != nil {
		return nil, ErrFilterCompile.
			With(slog.String("expression", src)).
			Wrap(err)
	}

	return prog, nil
}

// Filter returns the calls for which the compiled predicate holds,
// preserving encounter order. The receiver is not modified. An evaluation
// failure aborts with no partial result.
func (tc *ToolCalls) Filter(prog *vm.Program) (*ToolCalls, error) {
	out := &ToolCalls{}

	for _, call := range tc.Calls {
		env := callEnv{Name: call.Name, Args: map[string]any{}}
		if call.Arguments != nil {
			env.Args = call.Arguments.ToNative()
		}

		keep, err := expr.Run(prog, env)
		if err != nil {
			return nil, ErrFilterEval.
				With(slog.String("name", call.Name)).
				Wrap(err)
		}

		if ok, _ := keep.(bool); ok {
			out.Calls = append(out.Calls, call)
		}
	}

	return out, nil
}
