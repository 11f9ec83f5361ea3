// Package status provides the bottom status bar for the Studyport TUI. It
// renders the scroll position, a transient message, and key hints for the
// active view.
package status

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/style"
)

// Level classifies the transient message.
type Level int

const (
	Neutral Level = iota
	OK
	Error
)

// Hint is a single key binding shown in the footer.
type Hint struct {
	Key  string
	Desc string
}

// Model is the status bar state. Drive it via setter methods; it has no
// Update loop.
type Model struct {
	message  string
	level    Level
	position string
	hints    []Hint
	width    int
}

// New returns a zero-value Model.
func New() Model {
	return Model{}
}

// SetMessage sets the transient message shown on the left.
func (m *Model) SetMessage(text string, level Level) {
	m.message = text
	m.level = level
}

// ClearMessage resets the transient message.
func (m *Model) ClearMessage() {
	m.message = ""
	m.level = Neutral
}

// SetPosition sets the scroll indicator, e.g. "37/480".
func (m *Model) SetPosition(current, total int) {
	if total <= 0 {
		m.position = ""
		return
	}
	m.position = fmt.Sprintf("%d/%d", current, total)
}

// SetHints replaces the key hints for the active view.
func (m *Model) SetHints(hints []Hint) {
	m.hints = hints
}

// SetWidth updates the bar width.
func (m *Model) SetWidth(w int) { m.width = w }

// View renders the one-line status bar: message or hints on the left,
// position on the right.
func (m Model) View() string {
	left := m.leftSide()
	right := ""
	if m.position != "" {
		right = style.Faint.Render(m.position) + " "
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		pad = 1
	}
	return left + strings.Repeat(" ", pad) + right
}

func (m Model) leftSide() string {
	if m.message != "" {
		switch m.level {
		case OK:
			return style.StatusOK.Render(m.message)
		case Error:
			return style.StatusError.Render(m.message)
		default:
			return style.StatusBar.Render(m.message)
		}
	}

	var parts []string
	for _, h := range m.hints {
		parts = append(parts, style.HelpKey.Render(h.Key)+" "+style.HelpDesc.Render(h.Desc))
	}
	return " " + strings.Join(parts, style.HelpSep.Render("  │  "))
}
