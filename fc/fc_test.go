package fc

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestParseString_EmptyInput(t *testing.T) {
	calls, err := ParseString(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls == nil || calls.Len() != 0 {
		t.Errorf("expected empty result, got %+v", calls)
	}
}

func TestParseString_SingleCall(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`get_weather(location: "Boston, MA", unit: "celsius")`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls.Len() != 1 {
		t.Fatalf("expected 1 call, got %d", calls.Len())
	}

	call := calls.Calls[0]
	if call.Name != "get_weather" {
		t.Errorf("expected name get_weather, got %q", call.Name)
	}

	loc, ok := call.Arguments.Get("location")
	if !ok || loc.Str != "Boston, MA" {
		t.Errorf("unexpected location: %+v", loc)
	}
}

func TestParseString_MultipleCallsInOrder(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`first(a: 1), second(b: 2) third()`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if calls.Len() != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), calls.Len())
	}

	for i, name := range want {
		if calls.Calls[i].Name != name {
			t.Errorf("call %d: expected %q, got %q",
				i, name, calls.Calls[i].Name)
		}
	}
}

func TestParseString_BareNameCall(t *testing.T) {
	calls, err := ParseString(context.Background(), "refresh")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := calls.Calls[0]
	if call.Name != "refresh" {
		t.Errorf("expected name refresh, got %q", call.Name)
	}

	if call.Arguments != nil {
		t.Errorf("expected nil arguments, got %+v", call.Arguments)
	}
}

func TestParseString_NamelessCall(t *testing.T) {
	calls, err := ParseString(context.Background(), `(x: 1)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := calls.Calls[0]
	if call.Name != "" {
		t.Errorf("expected empty name, got %q", call.Name)
	}

	if call.Arguments.Len() != 1 {
		t.Errorf("expected 1 argument, got %d", call.Arguments.Len())
	}
}

func TestParseString_NestedStructures(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		`configure(servers: [{host: "a", port: 1}, {host: "b", port: 2}])`,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	servers, ok := calls.Calls[0].Arguments.Get("servers")
	if !ok || servers.Kind != KindArray {
		t.Fatalf("expected array, got %+v", servers)
	}

	if servers.Array.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", servers.Array.Len())
	}

	second := servers.Array.Values[1]
	if second.Kind != KindObject {
		t.Fatalf("expected object element, got %+v", second)
	}

	host, _ := second.Object.Get("host")
	if host.Str != "b" {
		t.Errorf("expected host b, got %q", host.Str)
	}
}

func TestParseString_SyntaxError(t *testing.T) {
	calls, err := ParseString(context.Background(), `f(x: 1`)
	if err == nil {
		t.Fatalf("expected error, got %+v", calls)
	}

	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ParseError, got %T", err)
	}

	msg := err.Error()
	if !strings.Contains(msg, "syntax error") {
		t.Errorf("unexpected message: %q", msg)
	}

	// The rendered message includes the offending line and a caret.
	if !strings.Contains(msg, "f(x: 1") || !strings.Contains(msg, "^") {
		t.Errorf("expected source snippet in message: %q", msg)
	}
}

func TestParseString_FirstSemanticErrorWins(t *testing.T) {
	// Calls collected before the failure are discarded; the error from the
	// second call is reported even though a third call follows.
	_, err := ParseString(
		context.Background(),
		`ok(a: 1), bad(b: 1.2.3), ignored(c: not_a_value)`,
	)
	if !errors.Is(err, ErrNumberParse) {
		t.Errorf("expected ErrNumberParse from second call, got %v", err)
	}
}

func TestParseReader(t *testing.T) {
	calls, err := ParseReader(
		context.Background(),
		strings.NewReader(`f(x: 1)`),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls.Len() != 1 {
		t.Errorf("expected 1 call, got %d", calls.Len())
	}
}

type failReader struct{}

func (failReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestParseReader_ReadFailure(t *testing.T) {
	_, err := ParseReader(context.Background(), failReader{})
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("expected ErrReadInput, got %v", err)
	}
}

func TestParseExpression(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "valid call", input: `f(x: 1)`, wantOK: true},
		{name: "empty input", input: "", wantOK: true},
		{name: "syntax error", input: `f(x:`, wantOK: false},
		{name: "semantic error", input: `f(x: 1.2.3)`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ParseExpression(context.Background(), tt.input)

			if res.OK != tt.wantOK {
				t.Fatalf("expected OK=%v, got %+v", tt.wantOK, res)
			}

			if res.OK {
				if len(res.Serialized) == 0 {
					t.Errorf("expected serialized payload")
				}

				if res.Err != "" {
					t.Errorf("unexpected error message: %q", res.Err)
				}
			} else {
				if res.Err == "" {
					t.Errorf("expected error message")
				}

				if res.Serialized != nil {
					t.Errorf("unexpected payload: %q", res.Serialized)
				}
			}
		})
	}
}

func TestParseString_WhitespaceTolerance(t *testing.T) {
	calls, err := ParseString(
		context.Background(),
		"\n  f(\n    x: 1,\n    y: \"two\"\n  )\n",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls.Len() != 1 || calls.Calls[0].Arguments.Len() != 2 {
		t.Errorf("unexpected result: %+v", calls)
	}
}
