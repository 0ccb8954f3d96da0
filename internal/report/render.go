package report

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"html/template"
	"strconv"
	"strings"

	"github.com/bluekeyes/go-gitdiff/gitdiff"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/logging"
)

type lineKind int

const (
	lineContext lineKind = iota
	lineDelete
	lineInsert
	lineInfo
	lineEmpty
)

// codeLine is one rendered cell row. Numbers are 0 when absent.
type codeLine struct {
	Changed   bool
	Content   template.HTML
	Kind      lineKind
	NewNumber int64
	Number    int64 // side-by-side cells only
	OldNumber int64
}

// Class returns the diff2html classes for the line
func (l codeLine) Class() string {
	switch l.Kind {
	case lineDelete:
		if l.Changed {
			return "d2h-del d2h-change"
		}
		return "d2h-del"
	case lineInsert:
		if l.Changed {
			return "d2h-ins d2h-change"
		}
		return "d2h-ins"
	case lineInfo:
		return "d2h-info"
	case lineEmpty:
		return "d2h-cntx d2h-emptyplaceholder"
	default:
		return "d2h-cntx"
	}
}

// Prefix returns the unified diff marker for the line
func (l codeLine) Prefix() string {
	switch l.Kind {
	case lineDelete:
		return "-"
	case lineInsert:
		return "+"
	case lineContext:
		return " "
	default:
		return ""
	}
}

// IsInfo reports whether the line is a hunk header or notice
func (l codeLine) IsInfo() bool {
	return l.Kind == lineInfo
}

type sideRow struct {
	Left  codeLine
	Right codeLine
}

type fileView struct {
	Added    int64
	Deleted  int64
	ID       string
	Language string
	Lines    []codeLine
	Name     string
	Rows     []sideRow
	Tag      string
	TagClass string
}

type reportView struct {
	Files      []fileView
	SideBySide bool
}

// Renderer turns unified diff text into a diff2html-compatible HTML fragment
type Renderer struct {
	highlight bool
	layout    domain.Layout
}

// NewRenderer creates a renderer for the given layout
func NewRenderer(layout domain.Layout, highlight bool) *Renderer {
	return &Renderer{highlight: highlight, layout: layout}
}

// Render parses diffText and renders a file list followed by one wrapper per
// file. Output depends only on the inputs. Parse failures are returned as
// *domain.CommandFailedError.
func (r *Renderer) Render(diffText string) (string, error) {
	files, _, err := gitdiff.Parse(strings.NewReader(diffText))
	if err != nil {
		logging.Logger.Error("Failed to parse diff", "error", err)
		return "", &domain.CommandFailedError{Message: fmt.Sprintf("failed to parse diff output: %v", err)}
	}

	view := reportView{
		Files:      make([]fileView, 0, len(files)),
		SideBySide: r.layout == domain.LayoutSideBySide,
	}
	for _, f := range files {
		view.Files = append(view.Files, r.renderFile(f))
	}

	var buf bytes.Buffer
	if err := reportTemplate.ExecuteTemplate(&buf, "report", view); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	logging.Logger.Debug("Diff rendered", "files", len(files), "layout", r.layout, "bytes", buf.Len())
	return buf.String(), nil
}

func (r *Renderer) renderFile(f *gitdiff.File) fileView {
	name := displayName(f)
	tag, tagClass := fileTag(f)

	var hl *highlighter
	if r.highlight {
		source := f.NewName
		if source == "" {
			source = f.OldName
		}
		hl = newHighlighter(source)
	}

	fv := fileView{
		ID:       fileID(f.OldName, f.NewName),
		Language: hl.Language(),
		Name:     name,
		Tag:      tag,
		TagClass: tagClass,
	}

	var lines []codeLine
	switch {
	case f.IsBinary:
		lines = append(lines, infoLine("Binary files differ"))
	case len(f.TextFragments) == 0 && (f.IsRename || f.IsCopy):
		lines = append(lines, infoLine("File renamed without changes"))
	case len(f.TextFragments) == 0:
		lines = append(lines, infoLine("File without changes"))
	}

	for _, frag := range f.TextFragments {
		fv.Added += frag.LinesAdded
		fv.Deleted += frag.LinesDeleted
		lines = append(lines, renderFragment(frag, hl)...)
	}

	if r.layout == domain.LayoutSideBySide {
		fv.Rows = toSideBySide(lines)
	} else {
		fv.Lines = lines
	}
	return fv
}

// renderFragment emits the hunk header and its lines with change blocks
// paired by similarity
func renderFragment(frag *gitdiff.TextFragment, hl *highlighter) []codeLine {
	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", frag.OldPosition, frag.OldLines, frag.NewPosition, frag.NewLines)
	if frag.Comment != "" {
		header += " " + frag.Comment
	}
	out := []codeLine{infoLine(header)}

	oldNum, newNum := frag.OldPosition, frag.NewPosition
	var dels, adds []string

	flush := func() {
		if len(dels) == 0 && len(adds) == 0 {
			return
		}
		out = append(out, renderBlock(dels, adds, oldNum, newNum, hl)...)
		oldNum += int64(len(dels))
		newNum += int64(len(adds))
		dels, adds = nil, nil
	}

	for _, line := range frag.Lines {
		text := strings.TrimRight(line.Line, "\r\n")
		switch line.Op {
		case gitdiff.OpDelete:
			dels = append(dels, text)
		case gitdiff.OpAdd:
			adds = append(adds, text)
		default:
			flush()
			out = append(out, codeLine{
				Content:   hl.Line(text),
				Kind:      lineContext,
				NewNumber: newNum,
				OldNumber: oldNum,
			})
			oldNum++
			newNum++
		}
	}
	flush()

	return out
}

// renderBlock renders one run of deletions and additions. Paired lines get
// <del>/<ins> around the part that differs.
func renderBlock(dels, adds []string, oldStart, newStart int64, hl *highlighter) []codeLine {
	var out []codeLine
	for _, g := range matchLines(dels, adds) {
		if g.paired {
			oldHTML, newHTML := inlineDiff(dels[g.dels[0]], adds[g.adds[0]])
			out = append(out,
				codeLine{Changed: true, Content: oldHTML, Kind: lineDelete, OldNumber: oldStart + int64(g.dels[0])},
				codeLine{Changed: true, Content: newHTML, Kind: lineInsert, NewNumber: newStart + int64(g.adds[0])},
			)
			continue
		}
		for _, i := range g.dels {
			out = append(out, codeLine{Content: hl.Line(dels[i]), Kind: lineDelete, OldNumber: oldStart + int64(i)})
		}
		for _, i := range g.adds {
			out = append(out, codeLine{Content: hl.Line(adds[i]), Kind: lineInsert, NewNumber: newStart + int64(i)})
		}
	}
	return out
}

func inlineDiff(oldText, newText string) (template.HTML, template.HTML) {
	a, b := []rune(oldText), []rune(newText)
	prefix, suffix := inlineSplit(a, b)

	wrap := func(r []rune, tag string) template.HTML {
		var sb strings.Builder
		sb.WriteString(template.HTMLEscapeString(string(r[:prefix])))
		if middle := r[prefix : len(r)-suffix]; len(middle) > 0 {
			fmt.Fprintf(&sb, "<%s>%s</%s>", tag, template.HTMLEscapeString(string(middle)), tag)
		}
		sb.WriteString(template.HTMLEscapeString(string(r[len(r)-suffix:])))
		return template.HTML(sb.String())
	}

	return wrap(a, "del"), wrap(b, "ins")
}

// toSideBySide lays lines out in two columns. Deletions and additions of the
// same run share rows; missing cells become placeholders.
func toSideBySide(lines []codeLine) []sideRow {
	var rows []sideRow
	var dels, adds []codeLine

	flush := func() {
		for i := 0; i < max(len(dels), len(adds)); i++ {
			row := sideRow{Left: codeLine{Kind: lineEmpty}, Right: codeLine{Kind: lineEmpty}}
			if i < len(dels) {
				row.Left = dels[i]
				row.Left.Number = dels[i].OldNumber
			}
			if i < len(adds) {
				row.Right = adds[i]
				row.Right.Number = adds[i].NewNumber
			}
			rows = append(rows, row)
		}
		dels, adds = nil, nil
	}

	for i, l := range lines {
		switch l.Kind {
		case lineDelete:
			// A paired deletion closes the previous run so it lines up with its addition
			if l.Changed && (len(dels) > 0 || len(adds) > 0) {
				flush()
			}
			dels = append(dels, l)
		case lineInsert:
			adds = append(adds, l)
			if l.Changed && i > 0 && lines[i-1].Changed && lines[i-1].Kind == lineDelete {
				flush()
			}
		default:
			flush()
			left, right := l, l
			left.Number = l.OldNumber
			right.Number = l.NewNumber
			rows = append(rows, sideRow{Left: left, Right: right})
		}
	}
	flush()

	return rows
}

func infoLine(text string) codeLine {
	return codeLine{Content: template.HTML(template.HTMLEscapeString(text)), Kind: lineInfo}
}

func displayName(f *gitdiff.File) string {
	switch {
	case f.IsRename || f.IsCopy:
		return f.OldName + " → " + f.NewName
	case f.IsDelete:
		return f.OldName
	default:
		return f.NewName
	}
}

func fileTag(f *gitdiff.File) (string, string) {
	switch {
	case f.IsNew:
		return "ADDED", "d2h-added d2h-added-tag"
	case f.IsDelete:
		return "DELETED", "d2h-deleted d2h-deleted-tag"
	case f.IsRename:
		return "RENAMED", "d2h-moved d2h-moved-tag"
	case f.IsCopy:
		return "COPIED", "d2h-moved d2h-moved-tag"
	default:
		return "CHANGED", "d2h-changed d2h-changed-tag"
	}
}

// fileID derives a stable anchor id from the file names
func fileID(oldName, newName string) string {
	h := fnv.New32a()
	h.Write([]byte(oldName))
	h.Write([]byte{0})
	h.Write([]byte(newName))
	return "d2h-" + strconv.FormatUint(uint64(h.Sum32()), 16)
}
