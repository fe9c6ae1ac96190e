package parser

import (
	"strings"
	"testing"

	"github.com/ardnew/fcall/fc/lexer"
)

func parse(t *testing.T, input string) *Start {
	t.Helper()

	start, err := Parse(lexer.New([]rune(input)))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return start
}

func TestParse_Calls(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int // number of calls
	}{
		{
			name:  "empty input",
			input: "",
			want:  0,
		},
		{
			name:  "bare name",
			input: "refresh",
			want:  1,
		},
		{
			name:  "empty argument list",
			input: "refresh()",
			want:  1,
		},
		{
			name:  "two calls comma separated",
			input: `f(x: 1), g(y: 2)`,
			want:  2,
		},
		{
			name:  "two calls no separator",
			input: `f(x: 1) g(y: 2)`,
			want:  2,
		},
		{
			name:  "nameless call",
			input: `(x: 1)`,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := parse(t, tt.input)

			if len(start.Calls) != tt.want {
				t.Errorf("expected %d calls, got %d",
					tt.want, len(start.Calls))
			}
		})
	}
}

func TestParse_CallShape(t *testing.T) {
	start := parse(t, `get_weather(location: "Boston", days: 3)`)

	call := start.Calls[0]
	if call.Name == nil || call.Name.LiteralString() != "get_weather" {
		t.Fatalf("unexpected call name: %v", call.Name)
	}

	if call.Args == nil || len(call.Args.Pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %v", call.Args)
	}

	if call.Args.Pairs[0].Key.LiteralString() != "location" {
		t.Errorf("unexpected first key: %q",
			call.Args.Pairs[0].Key.LiteralString())
	}

	if call.Args.Pairs[1].Value.Num == nil {
		t.Errorf("expected number value for days")
	}
}

func TestParse_NamelessCall(t *testing.T) {
	start := parse(t, `(x: 1)`)

	call := start.Calls[0]
	if call.Name != nil {
		t.Errorf("expected nil name, got %q", call.Name.LiteralString())
	}

	if call.Args == nil || len(call.Args.Pairs) != 1 {
		t.Fatalf("expected 1 pair, got %v", call.Args)
	}
}

func TestParse_NestedValues(t *testing.T) {
	start := parse(t, `f(a: {b: [1, "two", true, null], c: {d: 0}})`)

	outer := start.Calls[0].Args.Pairs[0].Value.Obj
	if outer == nil {
		t.Fatal("expected object value for a")
	}

	arr := outer.Pairs[0].Value.Arr
	if arr == nil || len(arr.Values) != 4 {
		t.Fatalf("expected 4 array elements, got %v", arr)
	}

	inner := outer.Pairs[1].Value.Obj
	if inner == nil || len(inner.Pairs) != 1 {
		t.Fatalf("expected nested object with 1 pair, got %v", inner)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "unbalanced paren", input: `f(x: 1`},
		{name: "missing colon", input: `f(x 1)`},
		{name: "missing value", input: `f(x:)`},
		{name: "lone comma", input: `,`},
		{name: "unbalanced brace", input: `f(x: {a: 1)`},
		{name: "unbalanced bracket", input: `f(x: [1, 2)`},
		{name: "invalid rune", input: `f(x: @)`},
		{name: "unterminated string", input: `f(x: "abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(lexer.New([]rune(tt.input)))
			if err == nil {
				t.Fatalf("expected error, got tree %+v", start)
			}

			if err.Line < 1 || err.Column < 1 {
				t.Errorf("expected positive position, got %d:%d",
					err.Line, err.Column)
			}

			if !strings.Contains(err.String(), "syntax error") {
				t.Errorf("unexpected message: %q", err.String())
			}
		})
	}
}

func TestParse_BailsOnFirstError(t *testing.T) {
	// The second call is malformed; no tree should be produced even though
	// the first call is valid.
	start, err := Parse(lexer.New([]rune(`f(x: 1), g(y:`)))
	if err == nil {
		t.Fatalf("expected error, got tree %+v", start)
	}

	if start != nil {
		t.Errorf("expected nil tree on error")
	}
}

func TestWalk_VisitsAllCallsInOrder(t *testing.T) {
	start := parse(t, `a(), b(), c()`)

	var names []string

	Walk(start, listenerFunc(func(call *FunctionCall) {
		names = append(names, call.Name.LiteralString())
	}))

	want := []string{"a", "b", "c"}
	if len(names) != len(want) {
		t.Fatalf("expected %d calls, got %d", len(want), len(names))
	}

	for i := range want {
		if names[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q", i, want[i], names[i])
		}
	}
}

type listenerFunc func(*FunctionCall)

func (f listenerFunc) EnterFunctionCall(call *FunctionCall) { f(call) }

func TestValue_Text(t *testing.T) {
	start := parse(t, `f(a: {b: [1, "x"]})`)

	text := start.Calls[0].Args.Pairs[0].Value.Text()
	if text != `{b: [1, x]}` {
		t.Errorf("unexpected text: %q", text)
	}
}
