package config

import (
	"fmt"
	"net"
	"strings"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
)

// Defaults for the report pipeline
const (
	DefaultEncoding           = "utf8"
	DefaultLayout             = string(domain.LayoutLineByLine)
	DefaultMaxDiffOutputBytes = int64(64 * 1024 * 1024)
	DefaultPreviewAddress     = "127.0.0.1:0"
)

// DefaultSettings returns a settings file with every default spelled out
func DefaultSettings() *Settings {
	no := false
	yes := true
	maxBytes := DefaultMaxDiffOutputBytes
	maxLogFiles := logging.DefaultMaxLogFiles
	return &Settings{
		AllowFlagLikeRefs:  &no,
		Debug:              &no,
		DefaultViewType:    DefaultLayout,
		DrawLineCount:      &yes,
		Encoding:           DefaultEncoding,
		ExclusiveRuns:      &no,
		MaxDiffOutputBytes: &maxBytes,
		MaxLogFiles:        &maxLogFiles,
		PreviewAddress:     DefaultPreviewAddress,
		RecordExports:      &no,
		SyntaxHighlight:    &yes,
		UseOnlineResources: &no,
	}
}

// Report is the configuration read once at pipeline start.
// It is passed by value and never mutated afterwards.
type Report struct {
	AllowFlagLikeRefs  bool
	DrawLineCount      bool
	Encoding           string
	ExclusiveRuns      bool
	Filter             string
	Layout             domain.Layout
	MaxDiffOutputBytes int64
	PreviewAddress     string
	RecordExports      bool
	StylesheetPath     string
	SyntaxHighlight    bool
	UseOnlineResources bool
}

// ResourceMode maps UseOnlineResources to the export resource mode
func (r Report) ResourceMode() domain.ResourceMode {
	if r.UseOnlineResources {
		return domain.ResourcesLinked
	}
	return domain.ResourcesInlined
}

// NewReport builds the report configuration from loaded settings.
// Missing values fall back to defaults; invalid values are errors.
func NewReport(s *Settings) (Report, error) {
	if s == nil {
		s = &Settings{}
	}

	r := Report{
		AllowFlagLikeRefs:  boolOr(s.AllowFlagLikeRefs, false),
		DrawLineCount:      boolOr(s.DrawLineCount, true),
		Encoding:           strings.TrimSpace(s.Encoding),
		ExclusiveRuns:      boolOr(s.ExclusiveRuns, false),
		Filter:             s.Filter,
		Layout:             domain.Layout(strings.TrimSpace(s.DefaultViewType)),
		MaxDiffOutputBytes: DefaultMaxDiffOutputBytes,
		PreviewAddress:     strings.TrimSpace(s.PreviewAddress),
		RecordExports:      boolOr(s.RecordExports, false),
		StylesheetPath:     s.StylesheetPath,
		SyntaxHighlight:    boolOr(s.SyntaxHighlight, true),
		UseOnlineResources: boolOr(s.UseOnlineResources, false),
	}

	if r.Encoding == "" {
		r.Encoding = DefaultEncoding
	}
	if r.Layout == "" {
		r.Layout = domain.Layout(DefaultLayout)
	}
	if r.PreviewAddress == "" {
		r.PreviewAddress = DefaultPreviewAddress
	}
	if s.MaxDiffOutputBytes != nil {
		r.MaxDiffOutputBytes = *s.MaxDiffOutputBytes
	}

	if err := r.Validate(); err != nil {
		return Report{}, err
	}
	return r, nil
}

// Validate checks the configuration values
func (r Report) Validate() error {
	if !r.Layout.Valid() {
		return fmt.Errorf("invalid default_view_type %q (expected line-by-line or side-by-side)", r.Layout)
	}
	if r.MaxDiffOutputBytes <= 0 {
		return fmt.Errorf("max_diff_output_bytes must be positive, got %d", r.MaxDiffOutputBytes)
	}
	host, _, err := net.SplitHostPort(r.PreviewAddress)
	if err != nil {
		return fmt.Errorf("invalid preview_address %q: %w", r.PreviewAddress, err)
	}
	if ip := net.ParseIP(host); host != "localhost" && (ip == nil || !ip.IsLoopback()) {
		return fmt.Errorf("preview_address must be a loopback address, got %q", host)
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
