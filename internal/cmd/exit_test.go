package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"success", nil, ExitOK},
		{"canceled", fmt.Errorf("base: %w", domain.ErrSelectionCanceled), ExitOK},
		{"no changes", domain.ErrNoChanges, ExitOK},
		{"backend", fmt.Errorf("%w: /tmp", domain.ErrBackendUnavailable), ExitBackendUnavailable},
		{"locked", domain.ErrRunInProgress, ExitRunInProgress},
		{"command failed", &domain.CommandFailedError{Message: "fatal"}, ExitFailure},
		{"write failed", &domain.WriteFailedError{Path: "x", Reason: "denied"}, ExitFailure},
		{"other", errors.New("boom"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestReportError(t *testing.T) {
	assert.NoError(t, reportError(domain.ErrSelectionCanceled))
	assert.NoError(t, reportError(domain.ErrNoChanges))

	err := reportError(&domain.CommandFailedError{Message: "fatal: bad revision"})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)

	var cmdErr *domain.CommandFailedError
	assert.ErrorAs(t, err, &cmdErr)
}
