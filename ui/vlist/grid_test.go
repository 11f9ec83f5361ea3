package vlist

import (
	"fmt"
	"strings"
	"testing"
)

func plainCell(item string, _ int) string { return item }

func newTestGrid(n, w, h int) Grid[string] {
	g := NewGrid[string](plainCell, 1)
	g.SetSize(w, h)
	g.SetItems(labels(n))
	return g
}

// ---------------------------------------------------------------------------
// Breakpoints
// ---------------------------------------------------------------------------

func TestGrid_BreakpointResolution(t *testing.T) {
	cases := []struct {
		width int
		want  int
	}{
		{200, 3},
		{120, 3},
		{100, 2},
		{84, 2},
		{60, 1},
		{10, 1},
	}
	for _, c := range cases {
		g := NewGrid[string](plainCell, 1)
		g.SetSize(c.width, 20)
		if g.Columns() != c.want {
			t.Errorf("width %d: want %d columns, got %d", c.width, c.want, g.Columns())
		}
	}
}

func TestGrid_ColumnsNeverBelowOne(t *testing.T) {
	g := NewGrid[string](plainCell, 1)
	g.SetBreakpoints([]Breakpoint{{MinWidth: 0, Columns: 0}})
	g.SetSize(80, 20)
	if g.Columns() != 1 {
		t.Errorf("want columns clamped to 1, got %d", g.Columns())
	}
	g.SetBreakpoints(nil)
	g.SetSize(80, 20)
	if g.Columns() != 1 {
		t.Errorf("empty breakpoint table must resolve to 1 column, got %d", g.Columns())
	}
}

func TestGrid_ReflowOnResize(t *testing.T) {
	g := newTestGrid(12, 130, 20) // 3 columns
	if g.RowCount() != 4 {
		t.Fatalf("want 4 rows at 3 columns, got %d", g.RowCount())
	}
	g.SetSize(90, 20) // 2 columns
	if g.RowCount() != 6 {
		t.Errorf("want 6 rows at 2 columns after resize, got %d", g.RowCount())
	}
}

// ---------------------------------------------------------------------------
// Row geometry
// ---------------------------------------------------------------------------

func TestGrid_RowCountIsCeil(t *testing.T) {
	g := newTestGrid(7, 130, 20) // 3 columns
	if g.RowCount() != 3 {
		t.Errorf("want ceil(7/3)=3 rows, got %d", g.RowCount())
	}
}

func TestGrid_ExactlyOneRowWhenCountEqualsColumns(t *testing.T) {
	rendered := 0
	g := NewGrid[string](func(item string, _ int) string {
		rendered++
		return item
	}, 1)
	g.SetSize(130, 20) // 3 columns
	g.SetItems(labels(3))

	if g.RowCount() != 1 {
		t.Fatalf("want exactly 1 row, got %d", g.RowCount())
	}
	_ = g.View()
	if rendered != 3 {
		t.Errorf("want exactly 3 cells rendered (no phantom cells), got %d", rendered)
	}
}

func TestGrid_ShortTrailingRow(t *testing.T) {
	rendered := map[int]bool{}
	g := NewGrid[string](func(item string, index int) string {
		rendered[index] = true
		return item
	}, 1)
	g.SetSize(130, 20) // 3 columns
	g.SetItems(labels(4))

	out := g.View() // must not panic on the 1-item trailing row
	if !rendered[3] {
		t.Error("trailing row item must render")
	}
	if len(rendered) != 4 {
		t.Errorf("want 4 cells rendered, got %d", len(rendered))
	}
	if !strings.Contains(out, "item-003") {
		t.Errorf("trailing item missing from view: %q", out)
	}
}

// ---------------------------------------------------------------------------
// Windowing
// ---------------------------------------------------------------------------

func TestGrid_RendersOnlyVisibleRows(t *testing.T) {
	renderedRows := map[int]bool{}
	g := NewGrid[string](func(_ string, index int) string {
		renderedRows[index/3] = true
		return fmt.Sprintf("cell-%d", index)
	}, 2)
	g.SetSize(130, 10) // 3 columns, 5 visible rows of height 2
	g.SetOverscan(1)
	g.SetItems(labels(300)) // 100 rows

	_ = g.View()
	for row := range renderedRows {
		if row > 6 {
			t.Errorf("row %d rendered far outside the window", row)
		}
	}
	if !renderedRows[0] {
		t.Error("first row must render")
	}
}

func TestGrid_EmptyState(t *testing.T) {
	g := NewGrid[string](plainCell, 1)
	g.SetSize(80, 10)
	g.SetEmptyState("no cases yet")
	if g.View() != "no cases yet" {
		t.Errorf("want empty state, got %q", g.View())
	}
}

func TestGrid_ScrollAndLoadMore(t *testing.T) {
	g := newTestGrid(60, 90, 5) // 2 columns → 30 rows of height 1
	g.SetLoadMore(loadCmd)
	g.SetHasMore(true)

	if cmd := g.ScrollBy(1); cmd != nil {
		t.Error("load-more must not fire far from the end")
	}
	if cmd := g.ScrollBy(1000); cmd == nil {
		t.Error("want load-more at the end of the grid")
	}
	if cmd := g.ScrollBy(1); cmd != nil {
		t.Error("load-more fired twice before the in-flight reset")
	}
	g.SetLoadingMore(true)
	g.SetLoadingMore(false)
	if cmd := g.ScrollBy(1); cmd == nil {
		t.Error("want load-more to re-fire after the reset")
	}
}

func TestGrid_LoadMore_NotWhileInFlight(t *testing.T) {
	g := newTestGrid(60, 90, 5)
	g.SetLoadMore(loadCmd)
	g.SetHasMore(true)

	if cmd := g.ScrollBy(1000); cmd == nil {
		t.Fatal("want load-more at the end of the grid")
	}
	g.ScrollBy(-1000)
	if cmd := g.ScrollBy(1000); cmd != nil {
		t.Error("load-more re-fired while the first request is in flight")
	}
	g.SetLoadingMore(false)
	g.ScrollBy(-1000)
	if cmd := g.ScrollBy(1000); cmd == nil {
		t.Error("want load-more again after the in-flight flag resets")
	}
}

func TestGrid_ShrinkWhileScrolledDeep(t *testing.T) {
	g := newTestGrid(300, 130, 10)
	_ = g.ScrollBy(80)
	g.SetItems(labels(5))
	out := g.View() // must not panic
	if !strings.Contains(out, "item-00") {
		t.Errorf("want clamped view over remaining items, got %q", out)
	}
}
