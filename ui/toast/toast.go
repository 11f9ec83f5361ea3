// Package toast provides auto-dismissing notification toasts for the
// Studyport TUI. Load failures, verify decisions and points awards surface
// here instead of interrupting the active view.
package toast

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/style"
)

// Level classifies toast severity.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Error
)

const (
	maxToasts = 3
	toastTTL  = 4 * time.Second
)

type toast struct {
	message string
	level   Level
	expiry  time.Time
}

// Model manages a queue of auto-dismissing toast notifications.
type Model struct {
	queue []toast
}

// New creates an empty toast queue.
func New() Model {
	return Model{}
}

// Add enqueues a toast. Oldest toasts are dropped when the queue exceeds
// maxToasts.
func (m *Model) Add(message string, level Level) {
	m.queue = append(m.queue, toast{
		message: message,
		level:   level,
		expiry:  time.Now().Add(toastTTL),
	})
	if len(m.queue) > maxToasts {
		m.queue = m.queue[len(m.queue)-maxToasts:]
	}
}

// Tick prunes expired toasts. Call on every tick message.
func (m *Model) Tick() {
	now := time.Now()
	alive := m.queue[:0]
	for _, t := range m.queue {
		if now.Before(t.expiry) {
			alive = append(alive, t)
		}
	}
	m.queue = alive
}

// HasToasts reports whether any toasts are currently visible.
func (m Model) HasToasts() bool {
	return len(m.queue) > 0
}

// View renders visible toasts as right-aligned colored lines.
func (m Model) View(termWidth int) string {
	if len(m.queue) == 0 {
		return ""
	}
	var lines []string
	for _, t := range m.queue {
		icon, col := iconColor(t.level)
		text := fmt.Sprintf(" %s %s ", icon, t.message)
		rendered := lipgloss.NewStyle().Foreground(col).Render(text)
		w := lipgloss.Width(rendered)
		pad := termWidth - w
		if pad < 0 {
			pad = 0
		}
		lines = append(lines, strings.Repeat(" ", pad)+rendered)
	}
	return strings.Join(lines, "\n")
}

func iconColor(level Level) (string, color.Color) {
	switch level {
	case Success:
		return "✓", style.Success
	case Warning:
		return "⚠", style.Warning
	case Error:
		return "✘", style.Error
	default:
		return "ℹ", style.Secondary
	}
}
