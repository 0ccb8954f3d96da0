package cmd

import (
	"errors"
	"os"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/ui"
)

// Exit codes
const (
	ExitOK                 = 0
	ExitFailure            = 1
	ExitBackendUnavailable = 2
	ExitRunInProgress      = 3
)

// ExitError carries a process exit code for an error already shown to the user
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a pipeline error to the process exit code
func ExitCode(err error) int {
	switch {
	case err == nil,
		errors.Is(err, domain.ErrSelectionCanceled),
		errors.Is(err, domain.ErrNoChanges):
		return ExitOK
	case errors.Is(err, domain.ErrBackendUnavailable):
		return ExitBackendUnavailable
	case errors.Is(err, domain.ErrRunInProgress):
		return ExitRunInProgress
	default:
		return ExitFailure
	}
}

// reportError shows the notice for err and converts it to an *ExitError.
// Canceled selections and empty diffs end the command successfully.
func reportError(err error) error {
	kind, message, show := ui.NoticeForError(err)
	if show {
		ui.Notify(os.Stderr, kind, message)
	}

	code := ExitCode(err)
	if code == ExitOK {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}
