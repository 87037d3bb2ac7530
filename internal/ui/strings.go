package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncate shortens a string to the given cell width, adding an ellipsis if
// needed. Wide runes such as emoji count as two cells.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return runewidth.Truncate(value, limit, "")
	}
	return runewidth.Truncate(value, limit, "...")
}

// wrap breaks text into lines no wider than width cells, splitting on spaces
// and hard-breaking words that do not fit on their own.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line strings.Builder
		lineWidth := 0
		for _, w := range words {
			ww := runewidth.StringWidth(w)
			for ww > width {
				if lineWidth > 0 {
					lines = append(lines, line.String())
					line.Reset()
					lineWidth = 0
				}
				head := runewidth.Truncate(w, width, "")
				if head == "" {
					// A single rune wider than the line.
					head = string([]rune(w)[:1])
				}
				lines = append(lines, head)
				w = w[len(head):]
				ww = runewidth.StringWidth(w)
			}
			if ww == 0 {
				continue
			}
			switch {
			case lineWidth == 0:
				line.WriteString(w)
				lineWidth = ww
			case lineWidth+1+ww <= width:
				line.WriteByte(' ')
				line.WriteString(w)
				lineWidth += 1 + ww
			default:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(w)
				lineWidth = ww
			}
		}
		if lineWidth > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}

// cellWidth is the display width of s in terminal cells.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}
