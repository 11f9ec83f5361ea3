package vlist

import (
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// Breakpoint maps a minimum terminal width to a column count. A table of
// breakpoints resolves the responsive column layout of a Grid.
type Breakpoint struct {
	MinWidth int
	Columns  int
}

// DefaultBreakpoints is the standard responsive table: one column on narrow
// terminals, up to three on wide ones.
var DefaultBreakpoints = []Breakpoint{
	{MinWidth: 120, Columns: 3},
	{MinWidth: 84, Columns: 2},
	{MinWidth: 0, Columns: 1},
}

// CellFunc renders one grid cell. The result is clipped to the row height and
// the resolved cell width.
type CellFunc[T any] func(item T, index int) string

// ---------------------------------------------------------------------------
// Grid
// ---------------------------------------------------------------------------

// Grid is a windowed grid over a caller-owned item slice. Items are grouped
// into logical rows of the resolved column count; the Virtualizer runs over
// rows, and only visible rows render their cells. The trailing row may be
// short — only existing items render, no phantom cells.
type Grid[T any] struct {
	items  []T
	v      Virtualizer
	width  int
	height int

	renderCell CellFunc[T]

	breakpoints []Breakpoint
	cols        int
	gutter      int // blank columns between cells
	rowHeight   int // estimated lines per row

	emptyState string
	trigger    loadTrigger
}

// NewGrid constructs a Grid rendering cells with renderCell, using
// DefaultBreakpoints and a row height of rowHeight lines.
func NewGrid[T any](renderCell CellFunc[T], rowHeight int) Grid[T] {
	if rowHeight < 1 {
		rowHeight = 1
	}
	g := Grid[T]{
		renderCell:  renderCell,
		breakpoints: DefaultBreakpoints,
		cols:        1,
		gutter:      2,
		rowHeight:   rowHeight,
		trigger:     newLoadTrigger(),
	}
	g.v = NewVirtualizer(0, FixedEstimate(rowHeight))
	return g
}

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

// SetBreakpoints replaces the responsive table. Entries are sorted by
// MinWidth descending; column counts below 1 are clamped when resolved.
func (g *Grid[T]) SetBreakpoints(bps []Breakpoint) {
	g.breakpoints = make([]Breakpoint, len(bps))
	copy(g.breakpoints, bps)
	sort.Slice(g.breakpoints, func(i, j int) bool {
		return g.breakpoints[i].MinWidth > g.breakpoints[j].MinWidth
	})
	g.reflow()
}

// SetSize updates the viewport and re-resolves the column count, the terminal
// analogue of a resize-observer firing.
func (g *Grid[T]) SetSize(w, h int) {
	g.width = w
	g.height = h
	g.v.SetViewport(h)
	g.reflow()
}

// SetGap sets the blank lines between rows and blank columns between cells.
func (g *Grid[T]) SetGap(rows, cols int) {
	g.v.SetGap(rows)
	if cols >= 0 {
		g.gutter = cols
	}
}

// SetOverscan sets how many extra rows render beyond each viewport edge.
func (g *Grid[T]) SetOverscan(n int) { g.v.SetOverscan(n) }

// SetEmptyState sets the string rendered when the item collection is empty.
func (g *Grid[T]) SetEmptyState(s string) { g.emptyState = s }

// SetLoadMore installs the near-end load command; same gating as List.
func (g *Grid[T]) SetLoadMore(cmd tea.Cmd) { g.trigger.load = cmd }

// SetHasMore records whether more pages exist.
func (g *Grid[T]) SetHasMore(v bool) { g.trigger.hasMore = v }

// SetLoadingMore records the caller's in-flight flag.
func (g *Grid[T]) SetLoadingMore(v bool) { g.trigger.setLoading(v) }

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// SetItems replaces the item slice wholesale and recomputes the row count.
func (g *Grid[T]) SetItems(items []T) {
	g.items = items
	g.v.SetCount(g.RowCount())
}

// AppendItems adds items to the end, keeping the scroll position stable.
func (g *Grid[T]) AppendItems(items ...T) {
	g.items = append(g.items, items...)
	g.v.SetCount(g.RowCount())
}

// Len returns the item count.
func (g *Grid[T]) Len() int { return len(g.items) }

// Columns returns the currently resolved column count, always ≥ 1.
func (g *Grid[T]) Columns() int { return g.cols }

// RowCount returns ceil(len(items) / columns).
func (g *Grid[T]) RowCount() int {
	return (len(g.items) + g.cols - 1) / g.cols
}

// ---------------------------------------------------------------------------
// Scrolling
// ---------------------------------------------------------------------------

// ScrollBy moves by delta lines and returns a load-more command when the
// proximity threshold is crossed. An emitted command marks the request in
// flight; the caller resets it via SetLoadingMore(false) when the page lands.
func (g *Grid[T]) ScrollBy(delta int) tea.Cmd {
	g.v.ScrollBy(delta)
	cmd := g.trigger.check(g.v.Remaining(), loadThresholdItems*g.rowHeight)
	if cmd != nil {
		g.trigger.setLoading(true)
	}
	return cmd
}

// PageDown scrolls down one viewport height.
func (g *Grid[T]) PageDown() tea.Cmd { return g.ScrollBy(g.height) }

// PageUp scrolls up one viewport height.
func (g *Grid[T]) PageUp() tea.Cmd { return g.ScrollBy(-g.height) }

// GotoTop scrolls to the first row.
func (g *Grid[T]) GotoTop() tea.Cmd { return g.ScrollBy(-g.v.Offset()) }

// AtBottom reports whether the viewport shows the last row.
func (g *Grid[T]) AtBottom() bool { return g.v.AtBottom() }

// Update handles mouse wheel scrolling.
func (g Grid[T]) Update(msg tea.Msg) (Grid[T], tea.Cmd) {
	if wheel, ok := msg.(tea.MouseWheelMsg); ok {
		switch wheel.Button {
		case tea.MouseWheelUp:
			return g, g.ScrollBy(-wheelLines)
		case tea.MouseWheelDown:
			return g, g.ScrollBy(wheelLines)
		}
	}
	return g, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View paints the visible rows. Each row joins up to Columns() equal-width
// cells separated by the gutter; its lines land at the row slot's offset.
func (g Grid[T]) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	if len(g.items) == 0 {
		return g.emptyState
	}

	top := g.v.Offset()
	buf := make([]string, g.height)
	cellWidth := g.cellWidth()

	for _, slot := range g.v.Slots() {
		start := slot.Index * g.cols
		if start >= len(g.items) {
			break
		}
		end := start + g.cols
		if end > len(g.items) {
			end = len(g.items)
		}

		cells := make([]string, 0, (end-start)*2)
		for i := start; i < end; i++ {
			if i > start && g.gutter > 0 {
				cells = append(cells, strings.Repeat(" ", g.gutter))
			}
			cell := lipgloss.NewStyle().
				Width(cellWidth).
				MaxHeight(slot.Size).
				Render(g.renderCell(g.items[i], i))
			cells = append(cells, cell)
		}

		lines := strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, cells...), "\n")
		if len(lines) > slot.Size {
			lines = lines[:slot.Size]
		}
		for j, line := range lines {
			y := slot.Start + j - top
			if y < 0 || y >= g.height {
				continue
			}
			buf[y] = line
		}
	}

	return strings.Join(buf, "\n")
}

// ---------------------------------------------------------------------------
// Internal
// ---------------------------------------------------------------------------

// reflow re-resolves the column count from the breakpoint table and, when it
// changes, recomputes the row count. Column counts are clamped to 1 so the
// row-count division can never be by zero.
func (g *Grid[T]) reflow() {
	cols := 1
	for _, bp := range g.breakpoints {
		if g.width >= bp.MinWidth {
			cols = bp.Columns
			break
		}
	}
	if cols < 1 {
		cols = 1
	}
	if cols != g.cols {
		g.cols = cols
		g.v.SetCount(g.RowCount())
	}
}

// cellWidth returns the equal track width for the resolved column count.
func (g *Grid[T]) cellWidth() int {
	w := (g.width - g.gutter*(g.cols-1)) / g.cols
	if w < 1 {
		w = 1
	}
	return w
}
