package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRevision_Valid(t *testing.T) {
	for _, expr := range []string{"abc1234", "HEAD~3", "origin/main", "v1.2.3^{}", "main@{1}"} {
		t.Run(expr, func(t *testing.T) {
			assert.NoError(t, ValidateRevision(expr, false))
		})
	}
}

func TestValidateRevision_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains string
	}{
		{"empty", "", "empty"},
		{"spaces only", "   ", "empty"},
		{"control char", "main\x00", "control characters"},
		{"inner space", "main branch", "whitespace"},
		{"flag like", "--output=/tmp/x", "cannot start with '-'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRevision(tt.input, false)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestValidateRevision_FlagLikeAllowed(t *testing.T) {
	assert.NoError(t, ValidateRevision("--cached", true))
}
