// Package anim provides the loading spinner used across the Studyport TUI.
//
//   - Braille-dot glyphs colored with the theme gradient
//   - ID-keyed TickMsg so concurrent spinners don't cross-talk
//   - Ellipsis cycling through "", ".", "..", "..." on the label
//   - 20 FPS tick rate (50ms per frame)
package anim

import (
	"math"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/style"
)

const (
	fps           = 20
	frameDuration = time.Second / fps
	// ellipsisEvery is how many frames elapse per ellipsis state (8 × 50ms = 400ms).
	ellipsisEvery = 8
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var ellipsisStates = []string{"", ".", "..", "..."}

// idCounter gives each Model a unique ID so TickMsg events address one spinner.
var idCounter atomic.Int64

// TickMsg is sent every animation frame. Only the spinner whose ID matches
// responds.
type TickMsg struct {
	ID int64
}

// Opts configures the spinner.
type Opts struct {
	// Label is rendered to the right of the glyph, with an animated ellipsis.
	Label string
}

// Model is a gradient Braille spinner following the usual component pattern:
// value receiver Update/View, pointer receiver mutators.
type Model struct {
	id          int64
	label       string
	spinning    bool
	frame       int
	ellipsisIdx int
}

// New creates a spinner. It starts stopped; call Start then schedule Tick().
func New(opts Opts) Model {
	return Model{
		id:    idCounter.Add(1),
		label: opts.Label,
	}
}

// Update advances the animation on each TickMsg addressed to this model.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != m.id || !m.spinning {
		return m, nil
	}
	m.frame = (m.frame + 1) % len(frames)
	if m.frame%ellipsisEvery == 0 {
		m.ellipsisIdx = (m.ellipsisIdx + 1) % len(ellipsisStates)
	}
	return m, m.Tick()
}

// View renders the current frame, or "" when stopped.
func (m Model) View() string {
	if !m.spinning {
		return ""
	}
	n := len(frames)
	// Sine oscillation so the gradient bounces between the endpoints instead
	// of wrapping abruptly at the last frame.
	t := (math.Sin(math.Pi*float64(m.frame)/float64(n-1)) + 1) / 2
	c := style.LerpColor(style.GradColorA, style.GradColorB, t)
	glyph := lipgloss.NewStyle().Foreground(c).Render(frames[m.frame])

	if m.label == "" {
		return glyph + ellipsisStates[m.ellipsisIdx]
	}
	label := style.Faint.Render(m.label + ellipsisStates[m.ellipsisIdx])
	return glyph + " " + label
}

// Tick schedules the next animation frame. Subsequent frames are
// self-scheduled via Update.
func (m Model) Tick() tea.Cmd {
	id := m.id
	return tea.Tick(frameDuration, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}

// SetLabel changes the displayed label text.
func (m *Model) SetLabel(s string) {
	m.label = s
}

// IsSpinning reports whether the animation is currently running.
func (m Model) IsSpinning() bool {
	return m.spinning
}

// Start begins the animation. Use Tick() to schedule the first frame command.
func (m *Model) Start() {
	m.spinning = true
}

// Stop halts the animation. View returns "" until Start is called again.
func (m *Model) Stop() {
	m.spinning = false
}
