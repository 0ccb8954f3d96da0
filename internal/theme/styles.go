package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	PathStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Underline(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

// Reference kind styles used by "diffreport refs"
var (
	LocalRefStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	RemoteRefStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TagRefStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Git diff styles
var (
	AdditionsStyle = lipgloss.NewStyle().
			Foreground(ColorAdditions)

	DeletionsStyle = lipgloss.NewStyle().
			Foreground(ColorDeletions)
)

// Version styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Notice styles
var (
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Table styles used by "diffreport history"
var (
	TableHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Bold(true).
				PaddingRight(2)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorNormal).
			PaddingRight(2)
)
