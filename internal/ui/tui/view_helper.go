package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/aalvaropc/phonebook/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderBook renders the directory one record per line, clamped to width.
func renderBook(dir *domain.Directory, width int) string {
	lines := strings.Split(dir.String(), "\n")
	if width <= 0 {
		return strings.Join(lines, "\n")
	}
	for i, l := range lines {
		lines[i] = clampString(l, width)
	}
	return strings.Join(lines, "\n")
}
