package fc

import (
	"context"
	"strings"
	"testing"
)

func TestSerialize_FieldOrder(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`f(zebra: 1, apple: 2, mango: 3)`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Serialize(calls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Argument fields must appear in source order, not sorted.
	want := `{"tool_calls":[{"name":"f",` +
		`"arguments":{"zebra":1,"apple":2,"mango":3}}]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestSerialize_EmptyCalls(t *testing.T) {
	data, err := Serialize(&ToolCalls{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != `{"tool_calls":[]}` {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestSerialize_ArgumentsOmittedWhenAbsent(t *testing.T) {
	calls, err := ParseString(context.Background(), "refresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Serialize(calls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(string(data), "arguments") {
		t.Errorf("expected arguments omitted, got %s", data)
	}

	if string(data) != `{"tool_calls":[{"name":"refresh"}]}` {
		t.Errorf("unexpected output: %s", data)
	}
}

func TestSerialize_ValueVariants(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`f(s: "x", n: -2.5, b: true, z: null, o: {k: 1}, a: [1, "y"])`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := Serialize(calls)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{"tool_calls":[{"name":"f","arguments":` +
		`{"s":"x","n":-2.5,"b":true,"z":null,"o":{"k":1},"a":[1,"y"]}}]}`
	if string(data) != want {
		t.Errorf("expected %s, got %s", want, data)
	}
}

func TestToNative(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`f(n: 1, list: [true, null])`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	native := calls.ToNative()
	if len(native) != 1 {
		t.Fatalf("expected 1 call, got %d", len(native))
	}

	call, ok := native[0].(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", native[0])
	}

	if call["name"] != "f" {
		t.Errorf("expected name f, got %v", call["name"])
	}

	args, ok := call["arguments"].(map[string]any)
	if !ok {
		t.Fatalf("expected arguments map, got %T", call["arguments"])
	}

	if args["n"] != float64(1) {
		t.Errorf("expected n=1, got %v", args["n"])
	}

	list, ok := args["list"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("expected 2-element list, got %v", args["list"])
	}

	if list[0] != true || list[1] != nil {
		t.Errorf("unexpected list contents: %v", list)
	}
}
