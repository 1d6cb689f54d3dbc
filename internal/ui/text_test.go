package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func forceColor(t *testing.T) {
	t.Helper()
	original := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = original })
}

func TestFormatterWithColor(t *testing.T) {
	forceColor(t)

	result := Code.Sprint("zpass vault add -n work")
	if strings.Contains(result, "`") {
		t.Errorf("Code.Sprint should not contain backticks with color, got: %s", result)
	}
	if !strings.Contains(result, "\x1b[") {
		t.Errorf("Code.Sprint should contain ANSI escape codes with color, got: %s", result)
	}
}

func TestFormatterWithNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name      string
		formatter Formatter
		input     string
		want      string
	}{
		{"Code adds backticks", Code, "zpass vault list", "`zpass vault list`"},
		{"Path has no decoration", Path, ".zpass/work.toml", ".zpass/work.toml"},
		{"Flag has no decoration", Flag, "--vault", "--vault"},
		{"Success has no decoration", Success, "✓", "✓"},
		{"Error has no decoration", Error, "✗", "✗"},
		{"Warning has no decoration", Warning, "⚠", "⚠"},
		{"Info has no decoration", Info, "→", "→"},
		{"Highlight adds quotes", Highlight, "github.com", "'github.com'"},
		{"Muted adds parentheses", Muted, "default", "(default)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.formatter.Sprint(tt.input); got != tt.want {
				t.Errorf("Sprint(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatterSprintf(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	if got, want := Highlight.Sprintf("%s/%s", "work", "github.com"), "'work/github.com'"; got != want {
		t.Errorf("Highlight.Sprintf() = %q, want %q", got, want)
	}
	if got, want := Code.Sprint("zpass", " ", "vault"), "`zpass vault`"; got != want {
		t.Errorf("Code.Sprint with multiple args = %q, want %q", got, want)
	}
}

func TestMarkers(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		got  string
		want string
	}{
		{Succeeded("Vault created"), "✓ Vault created"},
		{Failed("Vault not found"), "✗ Vault not found"},
		{Hint("Run zpass vault list"), "→ Run zpass vault list"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestEnsureNewline(t *testing.T) {
	for input, want := range map[string]string{
		"":       "\n",
		"done":   "done\n",
		"done\n": "done\n",
	} {
		if got := EnsureNewline(input); got != want {
			t.Errorf("EnsureNewline(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if !noColor() {
		t.Error("noColor() should return true when NO_COLOR is set")
	}
}
