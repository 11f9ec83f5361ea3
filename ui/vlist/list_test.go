package vlist

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%03d", i)
	}
	return out
}

func plainRender(item string, _ int, _ Slot) string { return item }

func newTestList(items []string, w, h int) List[string] {
	l := NewList[string](plainRender)
	l.SetAnimated(false)
	l.SetSize(w, h)
	l.SetItems(items)
	return l
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestList_ZeroDimensions_ReturnsEmpty(t *testing.T) {
	l := NewList[string](plainRender)
	l.SetItems(labels(5))
	if l.View() != "" {
		t.Error("zero-dimension viewport must return empty string")
	}
}

func TestList_EmptyState(t *testing.T) {
	l := newTestList(nil, 40, 10)
	l.SetEmptyState("no schools found")
	if l.View() != "no schools found" {
		t.Errorf("want empty state, got %q", l.View())
	}
}

func TestList_RendersOnlyVisibleWindow(t *testing.T) {
	rendered := map[int]bool{}
	l := NewList[string](func(item string, index int, _ Slot) string {
		rendered[index] = true
		return item
	})
	l.SetAnimated(false)
	l.SetSize(40, 10)
	l.SetItems(labels(1000))

	_ = l.View()
	if !rendered[0] || !rendered[9] {
		t.Error("strictly-visible items 0-9 must render")
	}
	// 10 visible + default overscan of 5 below; nothing deeper.
	for idx := range rendered {
		if idx > 15 {
			t.Errorf("item %d rendered far outside the window", idx)
		}
	}
}

func TestList_ViewNeverExceedsViewportHeight(t *testing.T) {
	l := newTestList(labels(50), 40, 7)
	lines := strings.Split(l.View(), "\n")
	if len(lines) != 7 {
		t.Errorf("want exactly 7 lines, got %d", len(lines))
	}
}

func TestList_GapLeavesBlankLines(t *testing.T) {
	l := newTestList(labels(3), 40, 10)
	l.SetGap(1)
	lines := strings.Split(l.View(), "\n")
	if lines[0] != "item-000" || lines[1] != "" || lines[2] != "item-001" {
		t.Errorf("want item/blank/item layout, got %q", lines[:3])
	}
}

func TestList_ScrollChangesView(t *testing.T) {
	l := newTestList(labels(100), 40, 5)
	before := l.View()
	_ = l.ScrollBy(5)
	after := l.View()
	if before == after {
		t.Error("scrolling should change the rendered window")
	}
	if !strings.Contains(after, "item-005") {
		t.Errorf("want item-005 at top after scrolling 5 lines, got %q", after)
	}
}

func TestList_MultiLineItemsClippedToSlot(t *testing.T) {
	l := NewList[string](func(item string, _ int, _ Slot) string {
		return item + "\nsecond\nthird"
	})
	l.SetAnimated(false)
	l.SetSize(40, 10)
	l.SetItemHeight(2) // estimate shorter than the render
	l.SetItems(labels(3))

	out := l.View()
	if strings.Contains(out, "third") {
		t.Error("render output must be clipped to the slot size")
	}
}

// ---------------------------------------------------------------------------
// Shrinking collections
// ---------------------------------------------------------------------------

func TestList_ShrinkWhileScrolledDeep(t *testing.T) {
	l := newTestList(labels(100), 40, 10)
	_ = l.ScrollTo(55)

	l.SetItems(labels(10)) // filter applied mid-scroll
	out := l.View()        // must not panic or read out of range
	if !strings.Contains(out, "item-00") {
		t.Errorf("want clamped window over the 10 remaining items, got %q", out)
	}
}

func TestList_ShrinkToEmptyShowsEmptyState(t *testing.T) {
	l := newTestList(labels(100), 40, 10)
	l.SetEmptyState("nothing here")
	_ = l.ScrollTo(200)
	l.SetItems(nil)
	if l.View() != "nothing here" {
		t.Errorf("want empty state after shrink to zero, got %q", l.View())
	}
}

// ---------------------------------------------------------------------------
// Infinite scroll
// ---------------------------------------------------------------------------

func TestList_LoadMore_FiresExactlyOnce(t *testing.T) {
	l := newTestList(labels(20), 40, 5)
	l.SetLoadMore(loadCmd)
	l.SetHasMore(true)

	cmd := l.GotoBottom()
	if cmd == nil {
		t.Fatal("want load-more command near the end")
	}
	// A second scroll before loadingMore is reset must not fire again.
	if cmd := l.ScrollBy(1); cmd != nil {
		t.Error("load-more fired twice before the in-flight reset")
	}
	_ = l.SetLoadingMore(true)
	if cmd := l.ScrollBy(1); cmd != nil {
		t.Error("load-more fired while in flight")
	}
	_ = l.SetLoadingMore(false)
	if cmd := l.ScrollBy(1); cmd == nil {
		t.Error("want load-more to re-fire after the in-flight flag resets")
	}
}

func TestList_LoadMore_NotWhileInFlight(t *testing.T) {
	l := newTestList(labels(20), 40, 5)
	l.SetLoadMore(loadCmd)
	l.SetHasMore(true)

	if cmd := l.GotoBottom(); cmd == nil {
		t.Fatal("want load-more command near the end")
	}
	// Leave the threshold zone and come back while the page request is
	// still in flight: the re-armed latch must stay gated by loadingMore.
	_ = l.ScrollBy(-1000)
	if cmd := l.ScrollBy(1000); cmd != nil {
		t.Error("load-more re-fired while the first request is in flight")
	}
	_ = l.SetLoadingMore(false)
	_ = l.ScrollBy(-1000)
	if cmd := l.ScrollBy(1000); cmd == nil {
		t.Error("want load-more again after the in-flight flag resets")
	}
}

func TestList_SpinnerVisibleAtBottomWhileLoading(t *testing.T) {
	l := newTestList(labels(20), 40, 5)
	_ = l.GotoBottom()
	_ = l.SetLoadingMore(true)
	if !strings.Contains(l.View(), "loading more") {
		t.Errorf("want the loading row visible at the bottom, got %q", l.View())
	}
}

func TestList_LoadMore_NotWithoutHasMore(t *testing.T) {
	l := newTestList(labels(20), 40, 5)
	l.SetLoadMore(loadCmd)
	l.SetHasMore(false)
	if cmd := l.GotoBottom(); cmd != nil {
		t.Error("load-more must not fire when hasMore=false")
	}
}

func TestList_AppendKeepsOffset(t *testing.T) {
	l := newTestList(labels(20), 40, 5)
	_ = l.ScrollTo(8)
	l.AppendItems("extra-1", "extra-2")
	if l.Offset() != 8 {
		t.Errorf("appending a page must keep the scroll offset, got %d", l.Offset())
	}
	if l.Len() != 22 {
		t.Errorf("want 22 items after append, got %d", l.Len())
	}
}

// ---------------------------------------------------------------------------
// Reveal animation
// ---------------------------------------------------------------------------

func TestList_RevealTickDrainsPendingKeys(t *testing.T) {
	l := NewList[string](plainRender)
	l.SetAnimated(true)
	l.SetSize(40, 5)
	l.SetItems(labels(3))

	_ = l.View() // registers visible keys as pending
	if len(l.reveal) == 0 {
		t.Fatal("want pending reveal entries after first View")
	}

	for i := 0; i < 20; i++ {
		l, _ = l.Update(RevealTickMsg{ID: l.id})
	}
	for k, n := range l.reveal {
		if n != 0 {
			t.Errorf("key %q still pending after draining ticks: %d", k, n)
		}
	}
}

func TestList_RevealCmdNilWhenDisabled(t *testing.T) {
	l := NewList[string](plainRender)
	l.SetAnimated(false)
	if l.RevealCmd() != nil {
		t.Error("reveal command must be nil when animation is disabled")
	}
}

func TestList_RevealTickIgnoresOtherLists(t *testing.T) {
	l := NewList[string](plainRender)
	l.SetAnimated(true)
	l.SetSize(40, 5)
	l.SetItems(labels(2))
	_ = l.View()

	before := make(map[string]int, len(l.reveal))
	for k, v := range l.reveal {
		before[k] = v
	}
	l, _ = l.Update(RevealTickMsg{ID: l.id + 999})
	for k, v := range before {
		if l.reveal[k] != v {
			t.Error("tick for another list must not advance this one")
		}
	}
}

// ---------------------------------------------------------------------------
// Mouse
// ---------------------------------------------------------------------------

func TestList_MouseWheelScrolls(t *testing.T) {
	l := newTestList(labels(100), 40, 5)
	l, _ = l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if l.Offset() == 0 {
		t.Error("wheel down should scroll the list")
	}
	l, _ = l.Update(tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if l.Offset() != 0 {
		t.Errorf("wheel up should scroll back to the top, got offset %d", l.Offset())
	}
}
