// Package palette provides the school search palette: a centered popup with a
// free-text query and the user's recent searches. Selecting a recent search
// fills the query; enter submits it.
package palette

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/style"
)

const maxRecent = 5

// SubmitMsg is emitted when the user runs a search. An empty query clears the
// active filter.
type SubmitMsg struct {
	Query string
}

// DismissMsg is emitted when the user presses esc.
type DismissMsg struct{}

// Model is the palette state.
type Model struct {
	query   string
	recent  []string
	cursor  int // 0 = query line, 1..len(recent) = recent entries
	visible bool
	width   int
	keyMap  KeyMap
}

// New returns a hidden palette with default key bindings.
func New() Model {
	return Model{keyMap: DefaultKeyMap()}
}

// Show opens the palette with the given recent searches (most recent first).
func (m *Model) Show(recent []string, width int) {
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	m.recent = recent
	m.width = width
	m.query = ""
	m.cursor = 0
	m.visible = true
}

// Hide closes the palette.
func (m *Model) Hide() {
	m.visible = false
	m.query = ""
	m.cursor = 0
}

// IsVisible reports whether the palette is currently shown.
func (m Model) IsVisible() bool { return m.visible }

// Query returns the current query text.
func (m Model) Query() string { return m.query }

// Update handles keyboard input while the palette is visible.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kp, m.keyMap.Up):
		if m.cursor > 0 {
			m.cursor--
			m.syncQueryToCursor()
		}

	case key.Matches(kp, m.keyMap.Down):
		if m.cursor < len(m.recent) {
			m.cursor++
			m.syncQueryToCursor()
		}

	case key.Matches(kp, m.keyMap.Submit):
		query := strings.TrimSpace(m.query)
		m.Hide()
		return m, func() tea.Msg { return SubmitMsg{Query: query} }

	case key.Matches(kp, m.keyMap.Dismiss):
		m.Hide()
		return m, func() tea.Msg { return DismissMsg{} }

	case key.Matches(kp, m.keyMap.Clear):
		m.query = ""
		m.cursor = 0

	default:
		switch kp.String() {
		case "backspace":
			if m.query != "" {
				runes := []rune(m.query)
				m.query = string(runes[:len(runes)-1])
			}
			m.cursor = 0
		default:
			// Append printable text; typing drops any recent selection.
			if text := kp.Text; text != "" {
				m.query += text
				m.cursor = 0
			}
		}
	}

	return m, nil
}

// syncQueryToCursor fills the query from the highlighted recent entry.
func (m *Model) syncQueryToCursor() {
	if m.cursor == 0 {
		m.query = ""
		return
	}
	m.query = m.recent[m.cursor-1]
}

// View renders the palette box. Returns "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := 48
	if m.width > 0 && boxWidth > m.width-4 {
		boxWidth = m.width - 4
	}
	if boxWidth < 20 {
		boxWidth = 20
	}

	var sb strings.Builder
	sb.WriteString(style.PalettePrompt.Render("search ▸ "))
	sb.WriteString(m.query)
	sb.WriteString(lipgloss.NewStyle().Foreground(style.Primary).Render("▎"))

	if len(m.recent) > 0 {
		sb.WriteString("\n")
		sb.WriteString(style.PaletteRecent.Render("recent"))
		for i, q := range m.recent {
			sb.WriteString("\n")
			if m.cursor == i+1 {
				sb.WriteString(style.RowSelected.Render("▸ " + q))
			} else {
				sb.WriteString("  " + style.Faint.Render(q))
			}
		}
	}

	return style.PaletteBorder.Width(boxWidth).Render(sb.String())
}
