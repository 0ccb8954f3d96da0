package services

import (
	"context"
	"fmt"

	"github.com/renato0307/diffreport/internal/config"
	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
	"github.com/renato0307/diffreport/internal/report"
)

// Progress receives the name of each pipeline stage as it starts
type Progress interface {
	Update(message string)
}

type noProgress struct{}

func (noProgress) Update(string) {}

// ReportService runs git diff and renders the report document
type ReportService struct {
	cfg      config.Report
	locker   ports.RunLocker
	progress Progress
	renderer *report.Renderer
	runner   ports.DiffRunner
}

// NewReportService creates a new ReportService. locker may be nil when
// exclusive runs are disabled.
func NewReportService(cfg config.Report, runner ports.DiffRunner, locker ports.RunLocker) *ReportService {
	return &ReportService{
		cfg:      cfg,
		locker:   locker,
		progress: noProgress{},
		renderer: report.NewRenderer(cfg.Layout, cfg.SyntaxHighlight),
		runner:   runner,
	}
}

// WithProgress sets the stage observer
func (s *ReportService) WithProgress(p Progress) *ReportService {
	if p == nil {
		p = noProgress{}
	}
	s.progress = p
	return s
}

// NewInvocation builds the diff invocation for a selection
func (s *ReportService) NewInvocation(selection domain.Selection, flags []string) domain.DiffInvocation {
	return domain.NewDiffInvocation(selection, flags, s.cfg.Encoding, s.cfg.MaxDiffOutputBytes)
}

// Generate runs Lock, RunDiff, Render and Count in order.
// Returns domain.ErrNoChanges when the diff is empty.
func (s *ReportService) Generate(ctx context.Context, rootPath string, inv domain.DiffInvocation) (domain.ReportDocument, error) {
	release, err := s.Lock(rootPath)
	if err != nil {
		return domain.ReportDocument{}, err
	}
	defer func() {
		if err := release(); err != nil {
			logging.Logger.Warn("Failed to release run lock", "error", err)
		}
	}()

	text, err := s.RunDiff(ctx, rootPath, inv)
	if err != nil {
		return domain.ReportDocument{}, err
	}

	body, err := s.Render(text)
	if err != nil {
		return domain.ReportDocument{}, err
	}

	doc := s.Count(ctx, rootPath, inv)
	doc.HTMLBody = body
	return doc, nil
}

// Lock takes the per-repository run lock when exclusive runs are enabled
func (s *ReportService) Lock(rootPath string) (func() error, error) {
	if !s.cfg.ExclusiveRuns || s.locker == nil {
		return func() error { return nil }, nil
	}
	release, err := s.locker.TryLock(rootPath)
	if err != nil {
		return nil, err
	}
	return release, nil
}

// RunDiff returns the unified diff text
func (s *ReportService) RunDiff(ctx context.Context, rootPath string, inv domain.DiffInvocation) (string, error) {
	s.progress.Update("Running git diff...")
	outcome := s.runner.Run(ctx, rootPath, inv.Encoding, inv.MaxOutputBytes, inv.DiffArgs())
	logging.Logger.Info("git diff finished", "outcome", outcome.Kind.String(), "bytes", len(outcome.Text))
	if err := outcome.Err(); err != nil {
		return "", err
	}
	return outcome.Text, nil
}

// Render turns diff text into the report body
func (s *ReportService) Render(text string) (string, error) {
	s.progress.Update("Generating report...")
	body, err := s.renderer.Render(text)
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return body, nil
}

// Count runs the numstat variant and sums it. Counting is skipped when
// draw_line_count is off; a failed count leaves the document uncounted.
func (s *ReportService) Count(ctx context.Context, rootPath string, inv domain.DiffInvocation) domain.ReportDocument {
	if !s.cfg.DrawLineCount {
		return domain.ReportDocument{}
	}

	s.progress.Update("Counting changed lines...")
	outcome := s.runner.Run(ctx, rootPath, inv.Encoding, inv.MaxOutputBytes, inv.NumstatArgs())
	switch outcome.Kind {
	case domain.OutcomeSuccess:
		return report.Summarize(outcome.Text)
	case domain.OutcomeNoChanges:
		return report.Summarize("")
	default:
		logging.Logger.Warn("Line count failed", "error", outcome.Message)
		return domain.ReportDocument{}
	}
}
