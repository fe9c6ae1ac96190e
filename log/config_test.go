package log

import (
	"slices"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{in: "trace", want: LevelTrace},
		{in: "debug", want: LevelDebug},
		{in: "info", want: LevelInfo},
		{in: "warn", want: LevelWarn},
		{in: "error", want: LevelError},
		{in: "TRACE", want: LevelTrace},
		{in: "Error", want: LevelError},
		{in: "bogus", want: DefaultLevel},
		{in: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v",
				tt.in, tt.want, got)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{in: "json", want: FormatJSON},
		{in: "text", want: FormatText},
		{in: "JSON", want: FormatJSON},
		{in: "bogus", want: DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q): expected %v, got %v",
				tt.in, tt.want, got)
		}
	}
}

func TestLevels(t *testing.T) {
	got := slices.Collect(Levels())

	for _, name := range []string{"trace", "debug", "info", "warn", "error"} {
		if !slices.Contains(got, name) {
			t.Errorf("expected level %q in %v", name, got)
		}
	}
}

func TestFormats(t *testing.T) {
	got := slices.Collect(Formats())

	for _, name := range []string{"json", "text"} {
		if !slices.Contains(got, name) {
			t.Errorf("expected format %q in %v", name, got)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{level: LevelTrace, want: "trace"},
		{level: LevelDebug, want: "debug"},
		{level: LevelInfo, want: "info"},
		{level: LevelWarn, want: "warn"},
		{level: LevelError, want: "error"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String(): expected %q, got %q",
				tt.level, tt.want, got)
		}
	}
}

func TestMakeFormatTimeFunc_NamedLayouts(t *testing.T) {
	for _, name := range []string{"RFC3339", "RFC3339Nano", "Kitchen"} {
		if makeFormatTimeFunc(name) == nil {
			t.Errorf("expected formatter for layout %q", name)
		}
	}

	// Unknown names are treated as literal layouts.
	if makeFormatTimeFunc("2006-01-02") == nil {
		t.Error("expected formatter for literal layout")
	}
}
