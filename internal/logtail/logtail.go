package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path.
func Read(path string, maxLines int) ([]string, error) {
	if maxLines <= 0 {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	ring := make([]string, maxLines)
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	total := 0
	for scanner.Scan() {
		ring[total%maxLines] = scanner.Text()
		total++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if total <= maxLines {
		return ring[:total:total], nil
	}
	start := total % maxLines
	lines := make([]string, 0, maxLines)
	lines = append(lines, ring[start:]...)
	lines = append(lines, ring[:start]...)
	return lines, nil
}

// Level is the severity inferred from a log line's wording.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Styles controls how Highlight renders each part of a line.
type Styles struct {
	Timestamp lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
}

// Matches the standard library logger's LstdFlags prefix.
var timestampPattern = regexp.MustCompile(`^(\d{4}/\d{2}/\d{2} \d{2}:\d{2}:\d{2}(?:\.\d+)?) (.*)$`)

// Split separates the logger timestamp from the message. Lines without a
// timestamp return an empty stamp and the whole line.
func Split(line string) (stamp, msg string) {
	m := timestampPattern.FindStringSubmatch(line)
	if m == nil {
		return "", line
	}
	return m[1], m[2]
}

// Classify infers a level from the message text.
func Classify(msg string) Level {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "failed"), strings.Contains(lower, "error"):
		return LevelError
	case strings.Contains(lower, "falling back"), strings.Contains(lower, "warn"):
		return LevelWarn
	default:
		return LevelInfo
	}
}

// Highlight renders one log line with the given styles.
func Highlight(line string, s Styles) string {
	if strings.TrimSpace(line) == "" {
		return line
	}
	stamp, msg := Split(line)

	var body string
	switch Classify(msg) {
	case LevelError:
		body = s.Error.Render(msg)
	case LevelWarn:
		body = s.Warn.Render(msg)
	default:
		body = s.Info.Render(msg)
	}
	if stamp == "" {
		return body
	}
	return s.Timestamp.Render(stamp) + " " + body
}

// HighlightLines applies Highlight to every line.
func HighlightLines(lines []string, s Styles) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Highlight(line, s)
	}
	return out
}
