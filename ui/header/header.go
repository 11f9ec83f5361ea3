// Package header renders the one-line top bar: brand, version, points
// balance and unread notification count.
package header

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/style"
)

// Model holds the state for the compact TUI header.
type Model struct {
	version string
	points  int
	unread  int
	online  bool
	width   int
}

// New returns a Model with the given version string.
func New(version string) Model {
	return Model{version: version}
}

// SetVersion applies the server-reported version from the health check.
func (m *Model) SetVersion(v string) {
	if v != "" {
		m.version = v
	}
}

// SetPoints updates the displayed points balance.
func (m *Model) SetPoints(n int) { m.points = n }

// SetUnread updates the displayed unread notification count.
func (m *Model) SetUnread(n int) { m.unread = n }

// SetOnline marks the backend as reachable or not.
func (m *Model) SetOnline(v bool) { m.online = v }

// SetWidth updates the terminal width used for separator sizing.
func (m *Model) SetWidth(w int) { m.width = w }

// View returns the compact one-line header.
func (m Model) View() string {
	sep := style.HeaderSeparator.Render(" · ")

	brand := style.Wordmark("Studyport")
	version := style.HeaderVersion.Render(m.version)

	line := brand + " " + version
	line += sep + style.HeaderPoints.Render(fmt.Sprintf("◆ %d pts", m.points))
	if m.unread > 0 {
		line += sep + style.HeaderUnread.Render(fmt.Sprintf("● %d unread", m.unread))
	}
	if !m.online {
		line += sep + style.ErrorText.Render("offline")
	}
	return line
}

// HeaderView returns the header plus a thin separator line.
func (m Model) HeaderView() string {
	rule := lipgloss.NewStyle().Foreground(style.Border).Render(strings.Repeat("─", max(m.width, 0)))
	return m.View() + "\n" + rule
}
