package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
	"github.com/renato0307/diffreport/internal/ports"
	"github.com/renato0307/diffreport/internal/report"
)

// ExportRequest is one "save as HTML" request coming from the preview
type ExportRequest struct {
	// Body is the markup posted by the preview page, or the rendered body
	Body        string
	Destination string
	Document    domain.ReportDocument
	Options     domain.ExportOptions
	Selection   domain.Selection
}

// ExportService assembles and writes standalone documents
type ExportService struct {
	assembler *report.Assembler
	mu        sync.Mutex
	now       func() time.Time
	recorder  ports.ExportRecorder
	rootPath  string
}

// NewExportService creates a new ExportService. recorder may be nil when
// exports are not recorded.
func NewExportService(assembler *report.Assembler, recorder ports.ExportRecorder, rootPath string) *ExportService {
	return &ExportService{
		assembler: assembler,
		now:       time.Now,
		recorder:  recorder,
		rootPath:  rootPath,
	}
}

// DefaultDestination returns <root>/diff-report-<YYYY-MM-DD>.html
func (s *ExportService) DefaultDestination() string {
	name := fmt.Sprintf("diff-report-%s.html", s.now().Format("2006-01-02"))
	return filepath.Join(s.rootPath, name)
}

// Page builds the page content shared by the preview and the export
func Page(selection domain.Selection, doc domain.ReportDocument, body string) report.Page {
	return report.Page{
		Body:       body,
		Comparison: Comparison(selection),
		Summary:    report.LineCountSummary(doc),
		Title:      report.DefaultTitle,
	}
}

// Comparison formats "base → current"
func Comparison(selection domain.Selection) string {
	if selection.Base == nil || selection.Current == nil {
		return ""
	}
	return fmt.Sprintf("%s → %s", selection.Base.Label(), selection.Current.Label())
}

// Export assembles the document and writes it. Concurrent exports are
// serialized. A failed ledger write is logged and does not fail the export.
func (s *ExportService) Export(ctx context.Context, req ExportRequest) domain.ExportResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	dest := strings.TrimSpace(req.Destination)
	if dest == "" {
		dest = s.DefaultDestination()
	}

	body := req.Body
	if strings.TrimSpace(body) == "" {
		body = req.Document.HTMLBody
	}

	content, err := s.assembler.Assemble(Page(req.Selection, req.Document, body), req.Options)
	if err != nil {
		logging.Logger.Error("Failed to assemble export", "error", err)
		return domain.ExportResult{Path: dest, Reason: err.Error()}
	}

	if err := report.Export(dest, content); err != nil {
		var writeErr *domain.WriteFailedError
		if errors.As(err, &writeErr) {
			return domain.ExportResult{Path: dest, Reason: writeErr.Reason}
		}
		return domain.ExportResult{Path: dest, Reason: err.Error()}
	}

	s.record(ctx, dest, req)
	return domain.ExportResult{Path: dest}
}

func (s *ExportService) record(ctx context.Context, dest string, req ExportRequest) {
	if s.recorder == nil {
		return
	}

	record := domain.ExportRecord{
		Path:         dest,
		RepoRoot:     s.rootPath,
		TotalAdded:   req.Document.TotalAdded,
		TotalDeleted: req.Document.TotalDeleted,
		ExportedAt:   s.now(),
	}
	if req.Selection.Base != nil {
		record.BaseRef = req.Selection.Base.Label()
	}
	if req.Selection.Current != nil {
		record.CurrentRef = req.Selection.Current.Label()
	}

	if err := s.recorder.Record(ctx, record); err != nil {
		logging.Logger.Warn("Failed to record export", "path", dest, "error", err)
	}
}
