package report

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
)

const (
	// RemoteStylesheetURL is linked instead of inlining in online mode
	RemoteStylesheetURL = "https://cdn.jsdelivr.net/npm/diff2html/bundles/css/diff2html.min.css"

	// FileListSuppressionRule hides the file list when the viewer opts out of it
	FileListSuppressionRule = ".d2h-file-list-wrapper { display: none !important; }"

	// DefaultTitle heads every report
	DefaultTitle = "Diff Report"
)

// Page is the content of a report document
type Page struct {
	Body       string
	Comparison string
	Summary    string
	Title      string
}

type exportView struct {
	Body       template.HTML
	Comparison string
	Resources  template.HTML
	Summary    string
	Title      string
}

// Assembler merges a rendered report with its stylesheet into one document
type Assembler struct {
	highlight      bool
	mode           domain.ResourceMode
	stylesheetPath string
}

// NewAssembler creates an assembler. stylesheetPath overrides the embedded
// stylesheet when non-empty.
func NewAssembler(mode domain.ResourceMode, stylesheetPath string, highlight bool) *Assembler {
	return &Assembler{
		highlight:      highlight,
		mode:           mode,
		stylesheetPath: stylesheetPath,
	}
}

// Stylesheet returns the local stylesheet plus highlight rules
func (a *Assembler) Stylesheet() ([]byte, error) {
	css := EmbeddedStylesheet()
	if a.stylesheetPath != "" {
		data, err := os.ReadFile(a.stylesheetPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read stylesheet %s: %w", a.stylesheetPath, err)
		}
		css = data
	}

	if !a.highlight {
		return css, nil
	}

	hl, err := HighlightCSS()
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(css)+len(hl)+1)
	out = append(out, css...)
	out = append(out, '\n')
	return append(out, hl...), nil
}

// Assemble builds the standalone export document. Inlined mode embeds the
// stylesheet in a <style> block, linked mode references the remote one.
// Without a file list the suppression rule is appended in both modes.
func (a *Assembler) Assemble(page Page, opts domain.ExportOptions) ([]byte, error) {
	resources, err := a.resources(opts)
	if err != nil {
		return nil, err
	}

	title := page.Title
	if title == "" {
		title = DefaultTitle
	}

	view := exportView{
		// The body is markup produced by Render or posted back by the preview page
		Body:       template.HTML(page.Body),
		Comparison: page.Comparison,
		Resources:  resources,
		Summary:    page.Summary,
		Title:      title,
	}

	var buf bytes.Buffer
	if err := exportTemplate.ExecuteTemplate(&buf, "export", view); err != nil {
		return nil, fmt.Errorf("failed to assemble document: %w", err)
	}

	logging.Logger.Debug("Document assembled",
		"mode", a.mode, "include_file_list", opts.IncludeFileList, "bytes", buf.Len())
	return buf.Bytes(), nil
}

func (a *Assembler) resources(opts domain.ExportOptions) (template.HTML, error) {
	var b strings.Builder

	switch a.mode {
	case domain.ResourcesLinked:
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=\"%s\">\n", RemoteStylesheetURL)
		var extra []string
		if a.highlight {
			hl, err := HighlightCSS()
			if err != nil {
				return "", err
			}
			extra = append(extra, hl)
		}
		if !opts.IncludeFileList {
			extra = append(extra, FileListSuppressionRule)
		}
		if len(extra) > 0 {
			fmt.Fprintf(&b, "<style>\n%s\n</style>\n", strings.Join(extra, "\n"))
		}
	default:
		css, err := a.Stylesheet()
		if err != nil {
			return "", err
		}
		b.WriteString("<style>\n")
		b.Write(css)
		if !opts.IncludeFileList {
			b.WriteString("\n")
			b.WriteString(FileListSuppressionRule)
		}
		b.WriteString("\n</style>\n")
	}

	return template.HTML(b.String()), nil
}

// Export writes the document to dest. The parent directory must exist.
// Failures are returned as *domain.WriteFailedError.
func Export(dest string, content []byte) error {
	if err := os.WriteFile(dest, content, 0644); err != nil {
		logging.Logger.Error("Failed to write export", "path", dest, "error", err)
		return &domain.WriteFailedError{Path: dest, Reason: err.Error()}
	}
	logging.Logger.Info("Report exported", "path", dest, "bytes", len(content))
	return nil
}
