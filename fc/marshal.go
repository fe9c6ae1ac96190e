package fc

import (
	"bytes"
	"encoding/json"
)

// Serialize encodes the collected calls as JSON for transport across the
// runtime boundary. Encoding failures are wrapped as [ErrSerialize].
func Serialize(calls *ToolCalls) ([]byte, error) {
	data, err := json.Marshal(calls)
	if err != nil {
		return nil, ErrSerialize.Wrap(err)
	}

	return data, nil
}

// MarshalJSON implements json.Marshaler for ToolCalls.
func (tc *ToolCalls) MarshalJSON() ([]byte, error) {
	calls := tc.Calls
	if calls == nil {
		calls = []*ToolCall{}
	}

	var buf bytes.Buffer

	buf.WriteString(`{"tool_calls":`)

	data, err := json.Marshal(calls)
	if err != nil {
		return nil, err
	}

	buf.Write(data)
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler for ToolCall. The arguments member
// is omitted when the call carried no argument list.
func (c *ToolCall) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"name":`)

	name, err := json.Marshal(c.Name)
	if err != nil {
		return nil, err
	}

	buf.Write(name)

	if c.Arguments != nil {
		buf.WriteString(`,"arguments":`)

		args, err := json.Marshal(c.Arguments)
		if err != nil {
			return nil, err
		}

		buf.Write(args)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler for Struct, emitting fields in
// their stored (source) order. A map would lose that order, which is why
// Struct is a field list in the first place.
func (s *Struct) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, f := range s.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(f.Name)
		if err != nil {
			return nil, err
		}

		buf.Write(name)
		buf.WriteByte(':')

		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler for ListValue.
func (l *ListValue) MarshalJSON() ([]byte, error) {
	values := l.Values
	if values == nil {
		values = []*Value{}
	}

	return json.Marshal(values)
}

// MarshalJSON implements json.Marshaler for Value.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	case KindNull:
		return []byte("null"), nil
	case KindObject:
		return json.Marshal(v.Object)
	case KindArray:
		return json.Marshal(v.Array)
	default:
		return []byte("null"), nil
	}
}

// ToNative converts the collected calls to native Go types: a slice with
// one map per call.
func (tc *ToolCalls) ToNative() []any {
	result := make([]any, 0, tc.Len())
	for _, call := range tc.Calls {
		result = append(result, call.ToNative())
	}

	return result
}

// ToNative converts the call to a native Go map.
func (c *ToolCall) ToNative() map[string]any {
	result := map[string]any{"name": c.Name}

	if c.Arguments != nil {
		result["arguments"] = c.Arguments.ToNative()
	}

	return result
}

// ToNative converts the struct to a native Go map. Field order is not
// preserved; use the JSON encoding when order matters.
func (s *Struct) ToNative() map[string]any {
	result := make(map[string]any, s.Len())
	for _, f := range s.Fields {
		result[f.Name] = f.Value.ToNative()
	}

	return result
}

// ToNative converts the list to a native Go slice.
func (l *ListValue) ToNative() []any {
	result := make([]any, 0, l.Len())
	for _, v := range l.Values {
		result = append(result, v.ToNative())
	}

	return result
}

// ToNative converts a Value to its native Go type.
func (v *Value) ToNative() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBool:
		return v.Bool
	case KindObject:
		return v.Object.ToNative()
	case KindArray:
		return v.Array.ToNative()
	default:
		return nil
	}
}
