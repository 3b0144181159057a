package ui

import (
	"strconv"
	"strings"
)

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a string by removing characters from the middle,
// preserving both the beginning and end. URLs keep their file extension.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}

	ellipsis := []rune("…")
	if limit <= 3 {
		return string(runes[:limit])
	}

	// Keep a short extension such as ".jpg" when it follows the last slash.
	lastDot := strings.LastIndex(value, ".")
	lastSlash := strings.LastIndex(value, "/")
	if lastDot > lastSlash && lastDot > 0 {
		ext := []rune(value[lastDot:])
		base := []rune(value[:lastDot])
		if len(ext) < 6 && len(ext) < limit/2 {
			baseLimit := limit - len(ext) - len(ellipsis)
			if baseLimit > 0 && len(base) > baseLimit {
				prefix := baseLimit / 2
				suffix := baseLimit - prefix
				return string(base[:prefix]) + string(ellipsis) + string(base[len(base)-suffix:]) + string(ext)
			}
		}
	}

	keep := limit - len(ellipsis)
	prefix := keep / 2
	suffix := keep - prefix
	return string(runes[:prefix]) + string(ellipsis) + string(runes[len(runes)-suffix:])
}

// wrap breaks text into lines of at most width runes on word boundaries.
// Words longer than width are hard-split.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line []rune
	for _, w := range words {
		word := []rune(w)
		for len(word) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = line[:0]
			}
			lines = append(lines, string(word[:width]))
			word = word[width:]
		}
		switch {
		case len(line) == 0:
			line = append(line, word...)
		case len(line)+1+len(word) <= width:
			line = append(line, ' ')
			line = append(line, word...)
		default:
			lines = append(lines, string(line))
			line = append(line[:0], word...)
		}
	}
	if len(line) > 0 {
		lines = append(lines, string(line))
	}
	return lines
}

// pluralize returns "1 movie" or "n movies".
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return strconv.Itoa(n) + " " + plural
}

// maxInt returns the larger of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
