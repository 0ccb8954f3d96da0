package ports

import (
	"context"

	"github.com/renato0307/diffreport/internal/domain"
)

// Prompter asks the user questions in the terminal.
// Every method returns domain.ErrSelectionCanceled when the user aborts.
type Prompter interface {
	// Input asks for one line of text. validate may be nil.
	Input(ctx context.Context, title, placeholder, value string, validate func(string) error) (string, error)
	// SelectFlags lets the user pick zero or more diff flags
	SelectFlags(ctx context.Context, title string, flags []domain.DiffOptionFlag) ([]domain.DiffOptionFlag, error)
	// SelectOption lets the user pick exactly one option
	SelectOption(ctx context.Context, title string, options []domain.SelectionOption) (domain.SelectionOption, error)
}
