package domain

import (
	"errors"
	"fmt"
)

var (
	ErrBackendUnavailable = errors.New("no git repository found")
	ErrNoChanges          = errors.New("no differences between the selected references")
	ErrRunInProgress      = errors.New("another report is being generated for this repository")
	ErrSelectionCanceled  = errors.New("selection canceled")
)

// CommandFailedError reports a diff subprocess that could not produce usable output
type CommandFailedError struct {
	Message string
}

func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("git diff failed: %s", e.Message)
}

// WriteFailedError reports an export that could not be written to disk
type WriteFailedError struct {
	Path   string
	Reason string
}

func (e *WriteFailedError) Error() string {
	return fmt.Sprintf("failed to write %s: %s", e.Path, e.Reason)
}
