package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
)

// Prompt titles
const (
	BaseTitle     = "Select the base to compare from"
	CurrentTitle  = "Select the current point to compare to"
	FlagsTitle    = "Select git diff options"
	RevisionTitle = "Enter a commit, tag or revision expression"
)

// SelectionParams pre-answers prompts from the command line.
// Empty fields are asked interactively.
type SelectionParams struct {
	Base    string
	Current string
	Flags   []string
	// SkipFlagPrompt uses Flags as is, even when empty
	SkipFlagPrompt bool
	Staged         bool
}

// SelectionService drives the base, current and flags pickers
type SelectionService struct {
	allowFlagLike bool
	filter        string
	prompter      ports.Prompter
}

// NewSelectionService creates a new SelectionService. A non-empty filter
// is appended verbatim after the chosen flags.
func NewSelectionService(prompter ports.Prompter, allowFlagLike bool, filter string) *SelectionService {
	return &SelectionService{
		allowFlagLike: allowFlagLike,
		filter:        filter,
		prompter:      prompter,
	}
}

// Select runs SelectBase, SelectCurrent then SelectFlags.
// Returns domain.ErrSelectionCanceled when the user aborts a ref prompt.
func (s *SelectionService) Select(ctx context.Context, refs []domain.ReferenceOption, params SelectionParams) (domain.Selection, []string, error) {
	base, err := s.SelectBase(ctx, refs, params.Base)
	if err != nil {
		return domain.Selection{}, nil, err
	}

	current, err := s.SelectCurrent(ctx, refs, params.Current, params.Staged)
	if err != nil {
		return domain.Selection{}, nil, err
	}

	flags, err := s.SelectFlags(ctx, params.Flags, params.SkipFlagPrompt)
	if err != nil {
		return domain.Selection{}, nil, err
	}

	selection := domain.Selection{Base: base, Current: current}
	logging.Logger.Info("Comparison selected",
		"base", base.Label(), "current", current.Label(), "flags", flags)
	return selection, flags, nil
}

// SelectBase picks the base over HEAD, free text and the references
func (s *SelectionService) SelectBase(ctx context.Context, refs []domain.ReferenceOption, preset string) (domain.SelectionOption, error) {
	if preset != "" {
		return s.resolvePreset(preset, refs, false)
	}
	return s.pick(ctx, BaseTitle, domain.BaseOptions(refs))
}

// SelectCurrent picks the current point; the staged index is offered second
func (s *SelectionService) SelectCurrent(ctx context.Context, refs []domain.ReferenceOption, preset string, staged bool) (domain.SelectionOption, error) {
	if staged {
		if preset != "" {
			return nil, fmt.Errorf("--staged and --current cannot be combined")
		}
		return domain.StagedOption{}, nil
	}
	if preset != "" {
		return s.resolvePreset(preset, refs, true)
	}
	return s.pick(ctx, CurrentTitle, domain.CurrentOptions(refs))
}

// SelectFlags returns the chosen diff flags with the filter appended last.
// Canceling the flags prompt means no flags.
func (s *SelectionService) SelectFlags(ctx context.Context, preset []string, skipPrompt bool) ([]string, error) {
	var flags []string

	if skipPrompt || len(preset) > 0 {
		for _, flag := range preset {
			if !domain.IsKnownDiffFlag(flag) {
				return nil, fmt.Errorf("unsupported diff option %q", flag)
			}
		}
		flags = append(flags, preset...)
	} else {
		chosen, err := s.prompter.SelectFlags(ctx, FlagsTitle, domain.DiffOptionFlags)
		switch {
		case errors.Is(err, domain.ErrSelectionCanceled):
			logging.Logger.Debug("Flags prompt canceled, using no flags")
		case err != nil:
			return nil, err
		}
		for _, f := range chosen {
			flags = append(flags, f.Flag)
		}
	}

	if s.filter != "" {
		flags = append(flags, s.filter)
	}
	return flags, nil
}

func (s *SelectionService) pick(ctx context.Context, title string, options []domain.SelectionOption) (domain.SelectionOption, error) {
	chosen, err := s.prompter.SelectOption(ctx, title, options)
	if err != nil {
		return nil, err
	}

	if _, ok := chosen.(domain.FreeTextOption); ok {
		return s.askRevision(ctx)
	}
	return chosen, nil
}

// askRevision treats empty input like a cancel
func (s *SelectionService) askRevision(ctx context.Context) (domain.SelectionOption, error) {
	validate := func(v string) error {
		if v == "" {
			return nil
		}
		return domain.ValidateRevision(v, s.allowFlagLike)
	}

	value, err := s.prompter.Input(ctx, RevisionTitle, "HEAD~1", "", validate)
	if err != nil {
		return nil, err
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, domain.ErrSelectionCanceled
	}
	if err := domain.ValidateRevision(value, s.allowFlagLike); err != nil {
		return nil, err
	}
	return domain.RevisionOption{Expr: value}, nil
}

// resolvePreset maps a command-line value to an option. Known reference
// names keep their ReferenceOption, anything else is a revision expression.
func (s *SelectionService) resolvePreset(value string, refs []domain.ReferenceOption, allowStaged bool) (domain.SelectionOption, error) {
	value = strings.TrimSpace(value)

	switch value {
	case domain.HeadLabel:
		return domain.HeadOption{}, nil
	case domain.StagedLabel:
		if allowStaged {
			return domain.StagedOption{}, nil
		}
		return nil, fmt.Errorf("the staged index can only be the current side")
	}

	for _, ref := range refs {
		if ref.Entry.Name == value {
			return ref, nil
		}
	}

	if err := domain.ValidateRevision(value, s.allowFlagLike); err != nil {
		return nil, err
	}
	return domain.RevisionOption{Expr: value}, nil
}
