package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Colors — initialized to dark theme defaults. Updated via SetTheme().
var (
	Primary   color.Color = lipgloss.Color("#2563EB")
	Secondary color.Color = lipgloss.Color("#14B8A6")
	Success   color.Color = lipgloss.Color("#22C55E")
	Warning   color.Color = lipgloss.Color("#F59E0B")
	Error     color.Color = lipgloss.Color("#EF4444")
	Muted     color.Color = lipgloss.Color("#6B7280")
	Dim       color.Color = lipgloss.Color("#374151")
	Border    color.Color = lipgloss.Color("#4B5563")

	SelectionBgColor color.Color = lipgloss.Color("#1E3A8A")
	CardBgColor      color.Color = lipgloss.Color("#1F2937")
	StatusBgColor    color.Color = lipgloss.Color("#111827")

	// Gradient endpoints — default to dark theme blue→teal
	GradColorA color.Color = lipgloss.Color("#2563EB")
	GradColorB color.Color = lipgloss.Color("#14B8A6")
)

// Base styles — rebuilt when the theme changes via rebuildStyles().
var (
	Bold      lipgloss.Style
	Faint     lipgloss.Style
	ErrorText lipgloss.Style

	// Header
	HeaderVersion   lipgloss.Style
	HeaderPoints    lipgloss.Style
	HeaderUnread    lipgloss.Style
	HeaderSeparator lipgloss.Style

	// View tabs
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	// List rows
	RowTitle    lipgloss.Style
	RowMeta     lipgloss.Style
	RowSelected lipgloss.Style
	RowDivider  lipgloss.Style

	// Cards (admission case grid)
	CardBorder lipgloss.Style
	CardTitle  lipgloss.Style
	CardMeta   lipgloss.Style

	// Outcome badges
	BadgeAdmitted   lipgloss.Style
	BadgeWaitlisted lipgloss.Style
	BadgeRejected   lipgloss.Style

	// Recommendation tiers
	TierReach  lipgloss.Style
	TierMatch  lipgloss.Style
	TierSafety lipgloss.Style

	// Status bar
	StatusBar   lipgloss.Style
	StatusError lipgloss.Style
	StatusOK    lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpSep     lipgloss.Style

	// Toasts
	ToastInfo    lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style

	// Search palette
	PaletteBorder lipgloss.Style
	PalettePrompt lipgloss.Style
	PaletteRecent lipgloss.Style

	// Misc
	SpinnerStyle lipgloss.Style
	EmptyState   lipgloss.Style
	Hint         lipgloss.Style
)

func init() {
	rebuildStyles()
}

// SetTheme applies a named theme, updating all color vars and rebuilding styles.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if !ok {
		return false
	}
	CurrentThemeName = name
	Primary = t.Primary
	Secondary = t.Secondary
	Success = t.Success
	Warning = t.Warning
	Error = t.Error
	Muted = t.Muted
	Dim = t.Dim
	Border = t.Border
	SelectionBgColor = t.SelectionBg
	CardBgColor = t.CardBg
	StatusBgColor = t.StatusBg
	GradColorA = t.GradA
	GradColorB = t.GradB
	rebuildStyles()
	return true
}

// IsDark returns whether the current theme is dark.
func IsDark() bool {
	return CurrentThemeName != "light"
}

func rebuildStyles() {
	Bold = lipgloss.NewStyle().Bold(true)
	Faint = lipgloss.NewStyle().Foreground(Muted)
	ErrorText = lipgloss.NewStyle().Foreground(Error).Bold(true)

	HeaderVersion = lipgloss.NewStyle().Foreground(Muted)
	HeaderPoints = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	HeaderUnread = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HeaderSeparator = lipgloss.NewStyle().Foreground(Dim)

	TabActive = lipgloss.NewStyle().Foreground(Primary).Bold(true).Underline(true)
	TabInactive = lipgloss.NewStyle().Foreground(Muted)

	RowTitle = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	RowMeta = lipgloss.NewStyle().Foreground(Muted)
	RowSelected = lipgloss.NewStyle().Background(SelectionBgColor).Bold(true)
	RowDivider = lipgloss.NewStyle().Foreground(Dim)

	CardBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
	CardTitle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	CardMeta = lipgloss.NewStyle().Foreground(Muted)

	BadgeAdmitted = lipgloss.NewStyle().Foreground(Success).Bold(true)
	BadgeWaitlisted = lipgloss.NewStyle().Foreground(Warning).Bold(true)
	BadgeRejected = lipgloss.NewStyle().Foreground(Error).Bold(true)

	TierReach = lipgloss.NewStyle().Foreground(Error)
	TierMatch = lipgloss.NewStyle().Foreground(Primary)
	TierSafety = lipgloss.NewStyle().Foreground(Success)

	StatusBar = lipgloss.NewStyle().Foreground(Muted).Background(StatusBgColor).PaddingLeft(1)
	StatusError = lipgloss.NewStyle().Foreground(Error).Background(StatusBgColor).Bold(true).PaddingLeft(1)
	StatusOK = lipgloss.NewStyle().Foreground(Success).Background(StatusBgColor).PaddingLeft(1)
	HelpKey = lipgloss.NewStyle().Foreground(Secondary).Bold(true)
	HelpDesc = lipgloss.NewStyle().Foreground(Muted)
	HelpSep = lipgloss.NewStyle().Foreground(Dim)

	ToastInfo = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Secondary).
		Padding(0, 1)
	ToastSuccess = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(0, 1)
	ToastError = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Error).
		Padding(0, 1)

	PaletteBorder = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(0, 1)
	PalettePrompt = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	PaletteRecent = lipgloss.NewStyle().Foreground(Dim)

	SpinnerStyle = lipgloss.NewStyle().Foreground(Primary)
	EmptyState = lipgloss.NewStyle().Foreground(Muted).Italic(true)
	Hint = lipgloss.NewStyle().Foreground(Dim)
}

// OutcomeBadge returns the style for an admission-case outcome.
func OutcomeBadge(outcome string) lipgloss.Style {
	switch outcome {
	case "admitted":
		return BadgeAdmitted
	case "waitlisted":
		return BadgeWaitlisted
	default:
		return BadgeRejected
	}
}

// TierStyle returns the style for a recommendation tier.
func TierStyle(tier string) lipgloss.Style {
	switch tier {
	case "reach":
		return TierReach
	case "safety":
		return TierSafety
	default:
		return TierMatch
	}
}
