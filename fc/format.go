package fc

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/fcall/fc/token"
)

// Format writes the calls in native function-call expression syntax.
// With indent 0 the output is a single line; otherwise nested objects and
// arrays break across lines with the given indent width.
func (tc *ToolCalls) Format(_ context.Context, w io.Writer, indent int) error {
	for i, call := range tc.Calls {
		if i > 0 {
			sep := ", "
			if indent > 0 {
				sep = ",\n"
			}

			if _, err := fmt.Fprint(w, sep); err != nil {
				return err
			}
		}

		if err := formatCall(call, w, indent); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

// FormatJSON writes the calls as JSON.
func (tc *ToolCalls) FormatJSON(
	_ context.Context,
	w io.Writer,
	indent int,
) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(tc, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(tc)
	}

	if err != nil {
		return ErrSerialize.Wrap(err)
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the calls as YAML.
func (tc *ToolCalls) FormatYAML(
	ctx context.Context,
	w io.Writer,
	indent int,
) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, tc.ToNative(), opts...)
	if err != nil {
		return ErrSerialize.Wrap(err)
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// formatCall writes one call as name(pairs) in source syntax.
func formatCall(call *ToolCall, w io.Writer, indent int) error {
	if _, err := fmt.Fprint(w, call.Name); err != nil {
		return err
	}

	if call.Arguments == nil {
		// A nameless call without arguments cannot be round-tripped;
		// an empty argument list keeps the output parseable.
		if call.Name != "" {
			return nil
		}
	}

	if _, err := fmt.Fprint(w, "("); err != nil {
		return err
	}

	if call.Arguments != nil {
		if err := formatFields(call.Arguments, w, indent, 1); err != nil {
			return err
		}
	}

	_, err := fmt.Fprint(w, ")")

	return err
}

// formatFields writes the fields of a struct as key: value pairs.
func formatFields(s *Struct, w io.Writer, indent, depth int) error {
	for i, f := range s.Fields {
		if i > 0 {
			// The multi-line form breaks immediately after the comma, so
			// no line ends with trailing whitespace.
			sep := ", "
			if indent > 0 && len(s.Fields) > 1 {
				sep = ","
			}

			if _, err := fmt.Fprint(w, sep); err != nil {
				return err
			}
		}

		if indent > 0 && len(s.Fields) > 1 {
			if _, err := fmt.Fprint(
				w, "\n", strings.Repeat(" ", depth*indent),
			); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprint(w, f.Name, ": "); err != nil {
			return err
		}

		if err := formatValue(f.Value, w, indent, depth); err != nil {
			return err
		}
	}

	return nil
}

// formatValue writes one value in source syntax.
func formatValue(v *Value, w io.Writer, indent, depth int) error {
	switch v.Kind {
	case KindString:
		str, err := formatString(v.Str)
		if err != nil {
			return err
		}

		_, err = fmt.Fprint(w, str)

		return err

	case KindNumber:
		_, err := fmt.Fprint(w, strconv.FormatFloat(v.Num, 'g', -1, 64))

		return err

	case KindBool:
		_, err := fmt.Fprint(w, strconv.FormatBool(v.Bool))

		return err

	case KindNull:
		_, err := fmt.Fprint(w, "null")

		return err

	case KindObject:
		if _, err := fmt.Fprint(w, "{"); err != nil {
			return err
		}

		if v.Object != nil {
			if err := formatFields(v.Object, w, indent, depth+1); err != nil {
				return err
			}
		}

		_, err := fmt.Fprint(w, "}")

		return err

	case KindArray:
		if _, err := fmt.Fprint(w, "["); err != nil {
			return err
		}

		if v.Array != nil {
			for i, elem := range v.Array.Values {
				if i > 0 {
					if _, err := fmt.Fprint(w, ", "); err != nil {
						return err
					}
				}

				if err := formatValue(elem, w, indent, depth+1); err != nil {
					return err
				}
			}
		}

		_, err := fmt.Fprint(w, "]")

		return err

	default:
		_, err := fmt.Fprint(w, "null")

		return err
	}
}

// formatString renders a string in a form the lexer reads back verbatim:
// plain quotes when the text contains neither a quote nor a backslash,
// the escape-sentinel form otherwise.
//
// A string that needs the sentinel form but itself contains the sentinel
// marker cannot be expressed: the lexer would end the raw block at the
// interior marker. Such values fail with [ErrUnformattable] rather than
// emit text that does not read back.
func formatString(s string) (string, error) {
	if !strings.ContainsAny(s, `"\`) {
		return `"` + s + `"`, nil
	}

	if strings.Contains(s, token.EscapeSentinel) {
		return "", ErrUnformattable.With(slog.String("text", s))
	}

	return token.EscapeSentinel + s + token.EscapeSentinel, nil
}
