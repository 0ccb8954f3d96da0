package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNoticeLines = 6
	minLineWidth   = 10
	truncationMark = "..."
)

// wrapMessage word-wraps message for terminal display.
// The first line leaves room for prefix. Output is limited to
// maxNoticeLines lines; anything beyond is replaced by "...".
func wrapMessage(prefix, message string, maxWidth int) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return prefix + "unknown error"
	}

	firstLineWidth := maxWidth - utf8.RuneCountInString(prefix)
	if firstLineWidth < minLineWidth {
		firstLineWidth = minLineWidth
	}
	otherLineWidth := maxWidth
	if otherLineWidth < minLineWidth {
		otherLineWidth = minLineWidth
	}

	words := strings.Fields(message)

	var lines []string
	var currentLine strings.Builder
	currentLineWidth := firstLineWidth
	truncated := false

	for i, word := range words {
		wordLen := utf8.RuneCountInString(word)
		currentLen := utf8.RuneCountInString(currentLine.String())

		if currentLen > 0 && currentLen+1+wordLen > currentLineWidth {
			lines = append(lines, currentLine.String())
			currentLine.Reset()

			if len(lines) >= maxNoticeLines {
				truncated = i < len(words)
				break
			}
			currentLineWidth = otherLineWidth
		}

		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 && len(lines) < maxNoticeLines {
		lines = append(lines, currentLine.String())
	}

	if truncated {
		last := lines[len(lines)-1]
		truncLen := utf8.RuneCountInString(truncationMark)
		if utf8.RuneCountInString(last)+truncLen > otherLineWidth {
			runes := []rune(last)
			keep := otherLineWidth - truncLen
			if keep > 0 && len(runes) > keep {
				last = string(runes[:keep])
			}
		}
		lines[len(lines)-1] = last + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}
