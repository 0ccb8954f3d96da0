package domain

import "time"

// Layout selects how hunks are laid out in the report
type Layout string

const (
	LayoutLineByLine Layout = "line-by-line"
	LayoutSideBySide Layout = "side-by-side"
)

// Valid reports whether l is a known layout
func (l Layout) Valid() bool {
	return l == LayoutLineByLine || l == LayoutSideBySide
}

// ResourceMode selects how stylesheets reach the exported document
type ResourceMode int

const (
	ResourcesInlined ResourceMode = iota
	ResourcesLinked
)

// LineStat holds one numstat record. Binary files count 0/0.
type LineStat struct {
	Added   int
	Deleted int
	File    string
}

// ReportDocument is a rendered report plus its line-change summary.
// Counted is false when line counting was turned off.
type ReportDocument struct {
	Counted      bool
	HTMLBody     string
	PerFile      []LineStat
	TotalAdded   int
	TotalDeleted int
}

// ExportOptions are chosen by the viewer at export time
type ExportOptions struct {
	IncludeFileList bool
}

// ExportRecord is one successful export kept in the export ledger
type ExportRecord struct {
	BaseRef      string
	CurrentRef   string
	ExportedAt   time.Time
	ID           string
	Path         string
	RepoRoot     string
	TotalAdded   int
	TotalDeleted int
}

// ExportResult is the outcome of one export. Reason is set when the write failed.
type ExportResult struct {
	Path   string
	Reason string
}

// Err returns a *WriteFailedError for a failed export, nil otherwise
func (r ExportResult) Err() error {
	if r.Reason == "" {
		return nil
	}
	return &WriteFailedError{Path: r.Path, Reason: r.Reason}
}
