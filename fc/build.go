package fc

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ardnew/fcall/fc/parser"
	"github.com/ardnew/fcall/fc/token"
	"github.com/ardnew/fcall/log"
)

// builder converts syntax-tree value nodes into the closed value model.
// Conversion is deterministic and free of side effects other than
// diagnostics on the injected logger.
type builder struct {
	logger log.Logger
}

// stripEscapeSentinels removes the escape-sentinel marker from the start
// and the end of the text, each independently, if present. Only a prefix
// match at the very start and a suffix match at the very end are stripped;
// stripping is never repeated or applied to interior occurrences.
func stripEscapeSentinels(text string) string {
	text = strings.TrimPrefix(text, token.EscapeSentinel)

	return strings.TrimSuffix(text, token.EscapeSentinel)
}

// buildValue maps one value node to exactly one [Value] variant,
// recursively for nested objects and arrays.
func (b *builder) buildValue(
	ctx context.Context,
	node *parser.Value,
) (*Value, error) {
	switch {
	case node.Str != nil:
		text := stripEscapeSentinels(node.Str.LiteralString())

		b.logger.TraceContext(ctx, "build value",
			slog.String("kind", KindString.String()),
			slog.String("text", text),
		)

		return NewString(text), nil

	case node.Num != nil:
		text := node.Num.LiteralString()

		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, ErrNumberParse.With(slog.String("text", text))
		}

		b.logger.TraceContext(ctx, "build value",
			slog.String("kind", KindNumber.String()),
			slog.Float64("value", f),
		)

		return NewNumber(f), nil

	case node.Obj != nil:
		s, err := b.buildObject(ctx, node.Obj)
		if err != nil {
			return nil, err
		}

		return NewObject(s), nil

	case node.Arr != nil:
		l, err := b.buildArray(ctx, node.Arr)
		if err != nil {
			return nil, err
		}

		return NewArray(l), nil

	case node.Bool != nil:
		// Direct text equality: anything other than the exact literal
		// "true" yields false.
		v := node.Bool.LiteralString() == "true"

		b.logger.TraceContext(ctx, "build value",
			slog.String("kind", KindBool.String()),
			slog.Bool("value", v),
		)

		return NewBool(v), nil

	case node.Null != nil:
		return NewNull(), nil

	default:
		return nil, ErrUnhandledValue.With(slog.String("text", node.Text()))
	}
}

// buildObject maps an object node to a [Struct], iterating its pairs in
// source order.
//
// A pair missing its key or its value aborts the whole object. An empty
// key aborts the whole object. A key already accepted into the result is
// not an error: the later pair is skipped with a diagnostic, and the first
// occurrence wins. A failure while building a pair's value is wrapped with
// the offending key and aborts the object.
func (b *builder) buildObject(
	ctx context.Context,
	node *parser.Object,
) (*Struct, error) {
	obj := &Struct{}
	seen := make(map[string]struct{}, len(node.Pairs))

	for _, pair := range node.Pairs {
		if pair == nil || pair.Key == nil {
			return nil, ErrPairMissingID
		}

		if pair.Value == nil {
			return nil, ErrPairMissingValue
		}

		key := stripEscapeSentinels(pair.Key.LiteralString())
		if key == "" {
			return nil, ErrEmptyKey
		}

		if _, dup := seen[key]; dup {
			b.logger.WarnContext(ctx, "ignoring duplicate key",
				slog.String("key", key),
			)

			continue
		}

		seen[key] = struct{}{}

		val, err := b.buildValue(ctx, pair.Value)
		if err != nil {
			return nil, ErrKeyValue.With(slog.String("key", key)).Wrap(err)
		}

		obj.Fields = append(obj.Fields, Field{Name: key, Value: val})
	}

	return obj, nil
}

// buildArray maps an array node to a [ListValue], building each element in
// source order. The first element failure propagates with no partial
// result.
func (b *builder) buildArray(
	ctx context.Context,
	node *parser.Array,
) (*ListValue, error) {
	list := &ListValue{Values: make([]*Value, 0, len(node.Values))}

	for _, elem := range node.Values {
		val, err := b.buildValue(ctx, elem)
		if err != nil {
			return nil, err
		}

		list.Values = append(list.Values, val)
	}

	return list, nil
}
