package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/diffreport/internal/domain"
	"github.com/renato0307/diffreport/internal/theme"
)

const defaultWidth = 100

// NoticeKind selects the style of a terminal notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

func (k NoticeKind) prefix() string {
	switch k {
	case NoticeSuccess:
		return "✓ "
	case NoticeWarning:
		return "! "
	case NoticeError:
		return "Error: "
	default:
		return "• "
	}
}

func (k NoticeKind) style() lipgloss.Style {
	switch k {
	case NoticeSuccess:
		return theme.SuccessStyle
	case NoticeWarning:
		return theme.WarningStyle
	case NoticeError:
		return theme.ErrorStyle
	default:
		return theme.InfoStyle
	}
}

// FormatNotice returns a styled, wrapped notice
func FormatNotice(kind NoticeKind, message string) string {
	return kind.style().Render(wrapMessage(kind.prefix(), message, terminalWidth()))
}

// Notify writes a notice followed by a newline
func Notify(w io.Writer, kind NoticeKind, message string) {
	fmt.Fprintln(w, FormatNotice(kind, message))
}

// NoticeForError maps a pipeline error to the notice shown to the user.
// Returns false for errors that end the command silently.
func NoticeForError(err error) (NoticeKind, string, bool) {
	switch {
	case err == nil:
		return NoticeInfo, "", false
	case errors.Is(err, domain.ErrSelectionCanceled):
		return NoticeInfo, "", false
	case errors.Is(err, domain.ErrNoChanges):
		return NoticeInfo, "No changes between the selected references.", true
	default:
		return NoticeError, err.Error(), true
	}
}

// FormatLineCount renders "N files changed, +A -D" with diff colors
func FormatLineCount(doc domain.ReportDocument) string {
	if !doc.Counted {
		return ""
	}
	return fmt.Sprintf("%s, %s %s",
		theme.NormalStyle.Render(fmt.Sprintf("%d files changed", len(doc.PerFile))),
		theme.AdditionsStyle.Render(fmt.Sprintf("+%d", doc.TotalAdded)),
		theme.DeletionsStyle.Render(fmt.Sprintf("-%d", doc.TotalDeleted)))
}

func terminalWidth() int {
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return defaultWidth
}
