package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// selectHeight keeps long reference lists scrollable
const selectHeight = 15

// Prompter asks questions with huh forms
type Prompter struct {
	accessible bool
}

// Verify interface compliance at compile time
var _ ports.Prompter = (*Prompter)(nil)

// NewPrompter creates a Prompter. Accessible mode drops the TUI widgets
// and reads plain lines, which is used when stdin is not a terminal.
func NewPrompter(accessible bool) *Prompter {
	return &Prompter{accessible: accessible}
}

// Input asks for one line of text
func (p *Prompter) Input(ctx context.Context, title, placeholder, value string, validate func(string) error) (string, error) {
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)
	if validate != nil {
		input = input.Validate(func(s string) error {
			return validate(strings.TrimSpace(s))
		})
	}

	if err := p.run(ctx, huh.NewForm(huh.NewGroup(input))); err != nil {
		return "", err
	}

	return strings.TrimSpace(value), nil
}

// SelectOption lets the user pick exactly one option
func (p *Prompter) SelectOption(ctx context.Context, title string, options []domain.SelectionOption) (domain.SelectionOption, error) {
	if len(options) == 0 {
		return nil, fmt.Errorf("no options to select from")
	}

	var selected int
	field := huh.NewSelect[int]().
		Title(title).
		Options(selectOptions(options)...).
		Height(selectHeight).
		Value(&selected)

	if err := p.run(ctx, huh.NewForm(huh.NewGroup(field))); err != nil {
		return nil, err
	}

	logging.Logger.Debug("Option selected", "title", title, "label", options[selected].Label())
	return options[selected], nil
}

// SelectFlags lets the user pick zero or more diff flags
func (p *Prompter) SelectFlags(ctx context.Context, title string, flags []domain.DiffOptionFlag) ([]domain.DiffOptionFlag, error) {
	var selected []int
	field := huh.NewMultiSelect[int]().
		Title(title).
		Options(flagOptions(flags)...).
		Value(&selected)

	if err := p.run(ctx, huh.NewForm(huh.NewGroup(field))); err != nil {
		return nil, err
	}

	result := make([]domain.DiffOptionFlag, 0, len(selected))
	for _, i := range selected {
		result = append(result, flags[i])
	}
	return result, nil
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	err := form.WithAccessible(p.accessible).RunWithContext(ctx)
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
		return domain.ErrSelectionCanceled
	}
	return fmt.Errorf("prompt failed: %w", err)
}

// selectOptions keeps the option index as value so the caller gets back
// the exact SelectionOption, including its concrete type
func selectOptions(options []domain.SelectionOption) []huh.Option[int] {
	result := make([]huh.Option[int], len(options))
	for i, opt := range options {
		result[i] = huh.NewOption(OptionText(opt), i)
	}
	return result
}

func flagOptions(flags []domain.DiffOptionFlag) []huh.Option[int] {
	result := make([]huh.Option[int], len(flags))
	for i, f := range flags {
		result[i] = huh.NewOption(FlagText(f), i)
	}
	return result
}

// OptionText formats an option as "label  description · detail"
func OptionText(opt domain.SelectionOption) string {
	var b strings.Builder
	b.WriteString(opt.Label())
	if desc := opt.Description(); desc != "" {
		b.WriteString("  ")
		b.WriteString(desc)
	}
	if detail := opt.Detail(); detail != "" {
		b.WriteString(" · ")
		b.WriteString(detail)
	}
	return b.String()
}

// FlagText formats a diff flag as "flag  description"
func FlagText(flag domain.DiffOptionFlag) string {
	if flag.Description == "" {
		return flag.Flag
	}
	return fmt.Sprintf("%s  %s", flag.Flag, flag.Description)
}
