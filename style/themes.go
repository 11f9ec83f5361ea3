package style

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette for the TUI.
type Theme struct {
	Name                                        string
	Primary, Secondary, Success, Warning, Error color.Color
	Muted, Dim, Border                          color.Color

	// Selection / surfaces
	SelectionBg color.Color
	CardBg      color.Color
	StatusBg    color.Color

	// Gradient endpoints (A=from, B=to)
	GradA color.Color
	GradB color.Color
}

// Built-in themes.
var (
	darkTheme = Theme{
		Name:        "dark",
		Primary:     lipgloss.Color("#2563EB"),
		Secondary:   lipgloss.Color("#14B8A6"),
		Success:     lipgloss.Color("#22C55E"),
		Warning:     lipgloss.Color("#F59E0B"),
		Error:       lipgloss.Color("#EF4444"),
		Muted:       lipgloss.Color("#6B7280"),
		Dim:         lipgloss.Color("#374151"),
		Border:      lipgloss.Color("#4B5563"),
		SelectionBg: lipgloss.Color("#1E3A8A"),
		CardBg:      lipgloss.Color("#1F2937"),
		StatusBg:    lipgloss.Color("#111827"),
		GradA:       lipgloss.Color("#2563EB"),
		GradB:       lipgloss.Color("#14B8A6"),
	}

	lightTheme = Theme{
		Name:        "light",
		Primary:     lipgloss.Color("#1D4ED8"),
		Secondary:   lipgloss.Color("#0D9488"),
		Success:     lipgloss.Color("#16A34A"),
		Warning:     lipgloss.Color("#D97706"),
		Error:       lipgloss.Color("#DC2626"),
		Muted:       lipgloss.Color("#9CA3AF"),
		Dim:         lipgloss.Color("#D1D5DB"),
		Border:      lipgloss.Color("#9CA3AF"),
		SelectionBg: lipgloss.Color("#DBEAFE"),
		CardBg:      lipgloss.Color("#F3F4F6"),
		StatusBg:    lipgloss.Color("#E5E7EB"),
		GradA:       lipgloss.Color("#1D4ED8"),
		GradB:       lipgloss.Color("#0D9488"),
	}
)

// Themes maps theme names to their definitions.
var Themes = map[string]Theme{
	"dark":  darkTheme,
	"light": lightTheme,
}

// ThemeNames lists available themes in display order.
var ThemeNames = []string{"dark", "light"}

// CurrentThemeName tracks the active theme name.
var CurrentThemeName = "dark"
