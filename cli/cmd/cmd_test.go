package cmd

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}

	return path
}

func TestBuildSourceFiles(t *testing.T) {
	a := writeTemp(t, "a.txt", "f(x: 1)")
	b := writeTemp(t, "b.txt", ", g(y: 2)")

	src := buildSourceFiles([]string{a, b})
	if src == nil {
		t.Fatal("expected source files")
	}

	data, err := io.ReadAll(src)
	if err != nil {
		t.Fatalf("read error: %v", err)
	}

	if string(data) != "f(x: 1), g(y: 2)" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestBuildSourceFiles_Close(t *testing.T) {
	a := writeTemp(t, "a.txt", "f(x: 1)")
	b := writeTemp(t, "b.txt", ", g(y: 2)")

	src := buildSourceFiles([]string{a, b})
	if src == nil {
		t.Fatal("expected source files")
	}

	if _, err := io.ReadAll(src); err != nil {
		t.Fatalf("read error: %v", err)
	}

	if err := src.Close(); err != nil {
		t.Errorf("close error: %v", err)
	}

	// Already closed: the underlying files report the failure.
	if err := src.Close(); err == nil {
		t.Error("expected error on second close")
	}
}

func TestBuildSourceFiles_Empty(t *testing.T) {
	if src := buildSourceFiles(nil); src != nil {
		t.Errorf("expected nil for no sources, got %+v", src)
	}

	// Unopenable paths are skipped; nothing remains.
	if src := buildSourceFiles([]string{"/nonexistent/path"}); src != nil {
		t.Errorf("expected nil for unopenable sources, got %+v", src)
	}
}

func TestSourceFilesContext(t *testing.T) {
	path := writeTemp(t, "in.txt", "refresh()")

	ctx := WithSourceFiles(context.Background(), []string{path})

	src := sourceFilesFrom(ctx)
	if src == nil {
		t.Fatal("expected source files in context")
	}

	if src.IsZero() {
		t.Error("expected non-zero source files")
	}

	if sourceFilesFrom(context.Background()) != nil {
		t.Error("expected nil from bare context")
	}
}

func TestParseInput_NoInput(t *testing.T) {
	_, err := parseInput(context.Background(), nil)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("expected ErrNoInput, got %v", err)
	}
}

func TestParseInput_TextArgs(t *testing.T) {
	// Positional arguments are joined with commas so the shell may split
	// calls across arguments.
	calls, err := parseInput(
		context.Background(),
		[]string{`f(x: 1)`, `g(y: 2)`},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls.Len() != 2 {
		t.Errorf("expected 2 calls, got %d", calls.Len())
	}
}

func TestParseInput_SourceFiles(t *testing.T) {
	path := writeTemp(t, "in.txt", `f(x: 1)`)
	ctx := WithSourceFiles(context.Background(), []string{path})

	calls, err := parseInput(ctx, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls.Len() != 1 || calls.Calls[0].Name != "f" {
		t.Errorf("unexpected result: %+v", calls)
	}
}

func TestFormatTo(t *testing.T) {
	calls, err := parseInput(context.Background(), []string{`f(x: 1)`})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"name":"f"`},
		{format: "yaml", want: "name: f"},
		{format: "text", want: "f(x: 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf strings.Builder

			err := formatTo(context.Background(), &buf, calls, tt.format, 0)
			if err != nil {
				t.Fatalf("format error: %v", err)
			}

			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("expected %q in output %q", tt.want, buf.String())
			}
		})
	}

	var buf strings.Builder
	if err := formatTo(
		context.Background(), &buf, calls, "toml", 0,
	); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestError(t *testing.T) {
	base := NewError("read input")

	if base.Error() != "read input" {
		t.Errorf("unexpected message: %q", base.Error())
	}

	wrapped := base.Wrap(errors.New("permission denied"))
	if wrapped.Error() != "read input: permission denied" {
		t.Errorf("unexpected message: %q", wrapped.Error())
	}

	if !errors.Is(wrapped, wrapped.Unwrap()) {
		t.Error("expected unwrap to match cause")
	}

	// Adding attributes or a cause must not break sentinel identity.
	derived := ErrUnknownFormat.With(slog.String("format", "toml"))
	if !errors.Is(derived, ErrUnknownFormat) {
		t.Error("expected derived error to match its sentinel")
	}

	if !errors.Is(base.Wrap(errors.New("io")), base) {
		t.Error("expected wrapped error to match its sentinel")
	}
}
