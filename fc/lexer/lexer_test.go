package lexer

import (
	"testing"

	"github.com/ardnew/fcall/fc/token"
)

// kinds returns the token types of the stream, excluding the trailing EOF.
func kinds(l *Lexer) []token.Type {
	types := make([]token.Type, 0, len(l.Tokens))

	for _, tok := range l.Tokens {
		if tok.Type() == token.EOF {
			break
		}

		types = append(types, tok.Type())
	}

	return types
}

func TestLexer_TokenTypes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []token.Type
	}{
		{
			name:  "empty input",
			input: "",
			want:  []token.Type{},
		},
		{
			name:  "bare identifier",
			input: "get_weather",
			want:  []token.Type{token.Ident},
		},
		{
			name:  "call with one pair",
			input: `f(x: 1)`,
			want: []token.Type{
				token.Ident, token.LParen,
				token.Ident, token.Colon, token.Number,
				token.RParen,
			},
		},
		{
			name:  "quoted string",
			input: `"hello"`,
			want:  []token.Type{token.String},
		},
		{
			name:  "booleans and null",
			input: "true false null",
			want:  []token.Type{token.Boolean, token.Boolean, token.Null},
		},
		{
			name:  "uppercase boolean stays identifier",
			input: "True",
			want:  []token.Type{token.Ident},
		},
		{
			name:  "negative number",
			input: "-12.5",
			want:  []token.Type{token.Number},
		},
		{
			name:  "braces brackets comma",
			input: "{ } [ ] ,",
			want: []token.Type{
				token.LBrace, token.RBrace,
				token.LBrack, token.RBrack,
				token.Comma,
			},
		},
		{
			name:  "unknown rune",
			input: "@",
			want:  []token.Type{token.Invalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]rune(tt.input))

			got := kinds(l)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tokens, got %d: %v",
					len(tt.want), len(got), got)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d: expected %v, got %v",
						i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLexer_AlwaysEmitsEOF(t *testing.T) {
	for _, input := range []string{"", "f(x: 1)", "@#%", `"unterminated`} {
		l := New([]rune(input))

		if len(l.Tokens) == 0 {
			t.Fatalf("input %q: empty token stream", input)
		}

		last := l.Tokens[len(l.Tokens)-1]
		if last.Type() != token.EOF {
			t.Errorf("input %q: last token is %v, expected EOF",
				input, last.Type())
		}
	}
}

func TestLexer_QuotedString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantTyp token.Type
	}{
		{
			name:    "plain",
			input:   `"hello world"`,
			want:    "hello world",
			wantTyp: token.String,
		},
		{
			name:    "backslash shields quote",
			input:   `"say \"hi\""`,
			want:    `say \"hi\"`,
			wantTyp: token.String,
		},
		{
			name:    "empty",
			input:   `""`,
			want:    "",
			wantTyp: token.String,
		},
		{
			name:    "unterminated",
			input:   `"oops`,
			want:    `"oops`,
			wantTyp: token.Invalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]rune(tt.input))

			tok := l.Tokens[0]
			if tok.Type() != tt.wantTyp {
				t.Fatalf("expected %v, got %v", tt.wantTyp, tok.Type())
			}

			if tok.LiteralString() != tt.want {
				t.Errorf("expected literal %q, got %q",
					tt.want, tok.LiteralString())
			}
		})
	}
}

func TestLexer_RawBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "delimited both ends",
			input: "<escape>line one\nline two<escape>",
			want:  "<escape>line one\nline two<escape>",
		},
		{
			name:  "unterminated runs to end of input",
			input: "<escape>no closing marker",
			want:  "<escape>no closing marker",
		},
		{
			name:  "interior quote preserved",
			input: `<escape>he said "no"<escape>`,
			want:  `<escape>he said "no"<escape>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New([]rune(tt.input))

			tok := l.Tokens[0]
			if tok.Type() != token.String {
				t.Fatalf("expected String, got %v", tok.Type())
			}

			if tok.LiteralString() != tt.want {
				t.Errorf("expected literal %q, got %q",
					tt.want, tok.LiteralString())
			}
		})
	}
}

func TestLexer_PermissiveNumbers(t *testing.T) {
	// The lexer accepts malformed numeric runs as single Number tokens;
	// rejecting them is the value builder's job.
	for _, input := range []string{"1.2.3", "1e", "--5", "0x1f"} {
		l := New([]rune(input))

		tok := l.Tokens[0]
		if tok.Type() != token.Number {
			t.Errorf("input %q: expected Number, got %v", input, tok.Type())
		}

		if tok.LiteralString() != input {
			t.Errorf("input %q: expected full run, got %q",
				input, tok.LiteralString())
		}
	}
}

func TestLexer_LineColumnTracking(t *testing.T) {
	l := New([]rune("f(\n  x: 1)"))

	// Token order: f ( x : 1 )
	xTok := l.Tokens[2]
	if xTok.LiteralString() != "x" {
		t.Fatalf("expected token x, got %q", xTok.LiteralString())
	}

	if xTok.Line() != 2 {
		t.Errorf("expected line 2, got %d", xTok.Line())
	}

	if xTok.Col() != 3 {
		t.Errorf("expected column 3, got %d", xTok.Col())
	}
}

func BenchmarkLexer(b *testing.B) {
	input := []rune(
		`get_weather(location: "Boston, MA", unit: "celsius", ` +
			`days: [1, 2, 3], opts: {retry: true, timeout: 1.5})`,
	)

	b.ResetTimer()

	for range b.N {
		New(input)
	}
}
