package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapMessage(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		width    int
		expected string
	}{
		{
			name:     "short message",
			message:  "bad revision",
			width:    80,
			expected: "Error: bad revision",
		},
		{
			name:     "empty message",
			message:  "  ",
			width:    80,
			expected: "Error: unknown error",
		},
		{
			name:     "wraps on words",
			message:  "fatal: ambiguous argument 'nope'",
			width:    25,
			expected: "Error: fatal: ambiguous\nargument 'nope'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, wrapMessage("Error: ", tt.message, tt.width))
		})
	}
}

func TestWrapMessage_Truncates(t *testing.T) {
	message := strings.Repeat("word ", 200)

	result := wrapMessage("Error: ", message, 20)

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, maxNoticeLines)
	assert.True(t, strings.HasSuffix(result, truncationMark))
	for _, line := range lines[1:] {
		assert.LessOrEqual(t, len(line), 20)
	}
}
