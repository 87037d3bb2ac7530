package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func writeLines(t *testing.T, n int) (string, []string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tally.log")
	var content strings.Builder
	var lines []string
	for i := 1; i <= n; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		lines = append(lines, line)
	}
	if err := os.WriteFile(path, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path, lines
}

func TestRead(t *testing.T) {
	path, all := writeLines(t, 10)

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{name: "zero", maxLines: 0, expected: nil},
		{name: "negative", maxLines: -1, expected: nil},
		{name: "partial", maxLines: 5, expected: all[5:]},
		{name: "exact", maxLines: 10, expected: all},
		{name: "more than exists", maxLines: 20, expected: all},
		{name: "wraps unevenly", maxLines: 3, expected: all[7:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(path, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(filepath.Join(t.TempDir(), "nope.log"), 10)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil", err)
	}
	if got != nil {
		t.Fatalf("Read() = %v, want nil", got)
	}
}

func TestSplit(t *testing.T) {
	stamp, msg := Split("2026/10/19 14:32:15 animation started")
	if stamp != "2026/10/19 14:32:15" || msg != "animation started" {
		t.Fatalf("Split = (%q, %q)", stamp, msg)
	}

	stamp, msg = Split("no timestamp here")
	if stamp != "" || msg != "no timestamp here" {
		t.Fatalf("Split(untimed) = (%q, %q)", stamp, msg)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		msg  string
		want Level
	}{
		{"animation started", LevelInfo},
		{"fetch 1234: cat fact failed: timeout", LevelError},
		{"fetch 1234: falling back to advice", LevelWarn},
		{"unexpected ERROR in prefs", LevelError},
	}
	for _, tt := range tests {
		if got := Classify(tt.msg); got != tt.want {
			t.Errorf("Classify(%q) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestHighlight_PreservesText(t *testing.T) {
	plain := Styles{
		Timestamp: lipgloss.NewStyle(),
		Info:      lipgloss.NewStyle(),
		Warn:      lipgloss.NewStyle(),
		Error:     lipgloss.NewStyle(),
	}
	line := "2026/10/19 14:32:15 fetch abc: cat fact failed"
	if got := Highlight(line, plain); got != line {
		t.Fatalf("Highlight = %q, want %q", got, line)
	}
	if got := Highlight("   ", plain); got != "   " {
		t.Fatalf("Highlight(blank) = %q", got)
	}

	lines := HighlightLines([]string{"a", "b"}, plain)
	if !reflect.DeepEqual(lines, []string{"a", "b"}) {
		t.Fatalf("HighlightLines = %v", lines)
	}
}
