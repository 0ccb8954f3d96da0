package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - links, paths
)

// Notice colors
const (
	ColorError   Color = "196" // Bright red
	ColorInfo    Color = "33"  // Blue - informational notices
	ColorSuccess Color = "2"   // Green - export saved
	ColorWarning Color = "214" // Orange
)

// UI semantic colors
const (
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorSpinner Color = "205" // Pink
)

// Git colors
const (
	ColorAdditions Color = "2" // Green
	ColorDeletions Color = "1" // Red
)
