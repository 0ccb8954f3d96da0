package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/diffreport/internal/domain"
	portsmocks "github.com/renato0307/diffreport/internal/ports/mocks"
	"github.com/renato0307/diffreport/internal/report"
)

func newTestExportService(t *testing.T, recorder *portsmocks.MockExportLedger) (*ExportService, string) {
	t.Helper()
	root := t.TempDir()
	assembler := report.NewAssembler(domain.ResourcesInlined, "", false)

	var service *ExportService
	if recorder != nil {
		service = NewExportService(assembler, recorder, root)
	} else {
		service = NewExportService(assembler, nil, root)
	}
	service.now = func() time.Time { return time.Date(2024, 3, 9, 15, 4, 5, 0, time.UTC) }
	return service, root
}

func testSelection() domain.Selection {
	return domain.Selection{
		Base:    domain.ReferenceOption{Entry: domain.ReferenceEntry{Kind: domain.RefLocal, Name: "main"}},
		Current: domain.StagedOption{},
	}
}

func TestDefaultDestination(t *testing.T) {
	service, root := newTestExportService(t, nil)

	assert.Equal(t, filepath.Join(root, "diff-report-2024-03-09.html"), service.DefaultDestination())
}

func TestExport_WritesPostedBodyAndRecords(t *testing.T) {
	ledger := portsmocks.NewMockExportLedger(t)
	service, root := newTestExportService(t, ledger)
	dest := filepath.Join(root, "out.html")

	ledger.EXPECT().Record(mock.Anything, mock.MatchedBy(func(r domain.ExportRecord) bool {
		return r.Path == dest && r.BaseRef == "main" && r.CurrentRef == "--staged" &&
			r.TotalAdded == 3 && r.TotalDeleted == 6 && r.RepoRoot == root
	})).Return(nil)

	result := service.Export(context.Background(), ExportRequest{
		Body:        `<div class="posted">from preview</div>`,
		Destination: dest,
		Document:    domain.ReportDocument{Counted: true, HTMLBody: "<p>rendered</p>", TotalAdded: 3, TotalDeleted: 6},
		Options:     domain.ExportOptions{IncludeFileList: false},
		Selection:   testSelection(),
	})

	require.NoError(t, result.Err())
	assert.Equal(t, dest, result.Path)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(content), "from preview")
	assert.NotContains(t, string(content), "rendered")
	assert.Contains(t, string(content), report.FileListSuppressionRule)
	assert.Contains(t, string(content), "main → --staged")
	assert.Contains(t, string(content), "0 files changed, 3 lines added, 6 lines deleted")
}

func TestExport_DefaultsToRenderedBodyAndDestination(t *testing.T) {
	service, root := newTestExportService(t, nil)

	result := service.Export(context.Background(), ExportRequest{
		Document:  domain.ReportDocument{HTMLBody: "<p>rendered</p>"},
		Options:   domain.ExportOptions{IncludeFileList: true},
		Selection: testSelection(),
	})

	require.NoError(t, result.Err())
	assert.Equal(t, filepath.Join(root, "diff-report-2024-03-09.html"), result.Path)
	content, err := os.ReadFile(result.Path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<p>rendered</p>")
	assert.NotContains(t, string(content), report.FileListSuppressionRule)
}

func TestExport_WriteFailed(t *testing.T) {
	ledger := portsmocks.NewMockExportLedger(t)
	service, root := newTestExportService(t, ledger)
	dest := filepath.Join(root, "missing", "out.html")

	result := service.Export(context.Background(), ExportRequest{
		Destination: dest,
		Document:    domain.ReportDocument{HTMLBody: "<p>x</p>"},
		Selection:   testSelection(),
	})

	var writeErr *domain.WriteFailedError
	require.ErrorAs(t, result.Err(), &writeErr)
	assert.Equal(t, dest, writeErr.Path)
	assert.NotEmpty(t, result.Reason)
	ledger.AssertNotCalled(t, "Record", mock.Anything, mock.Anything)
}

func TestExport_LedgerFailureDoesNotFailExport(t *testing.T) {
	ledger := portsmocks.NewMockExportLedger(t)
	service, root := newTestExportService(t, ledger)
	ledger.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("database is locked"))

	result := service.Export(context.Background(), ExportRequest{
		Destination: filepath.Join(root, "out.html"),
		Document:    domain.ReportDocument{HTMLBody: "<p>x</p>"},
		Selection:   testSelection(),
	})

	assert.NoError(t, result.Err())
}
