package vlist

import (
	"os"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/studyport/studyport-tui/ui/anim"
)

// RenderFunc produces the rendered lines for one item. The result is clipped
// to the slot's estimated size; shorter output is padded with blank lines.
// Panics inside the render function are deliberately not recovered here.
type RenderFunc[T any] func(item T, index int, slot Slot) string

// KeyFunc returns a stable key for an item, used to track reveal animation
// state. Keys must be unique within the currently-rendered window; collisions
// make newly-appeared items skip their reveal, nothing worse.
type KeyFunc[T any] func(item T, index int) string

const (
	revealFrame = 50 * time.Millisecond
	revealTicks = 3
	// wheelLines is how many lines one mouse wheel notch scrolls.
	wheelLines = 3
	// loadThresholdItems is the small multiple of the average item size used
	// as the infinite-scroll proximity threshold.
	loadThresholdItems = 3
)

// listID disambiguates RevealTickMsg between concurrent lists.
var listID atomic.Int64

// RevealTickMsg advances the staggered reveal animation of the list whose ID
// matches.
type RevealTickMsg struct {
	ID int64
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List is a windowed scrollable list over a caller-owned item slice. Only the
// slots intersecting the viewport (plus overscan) invoke the render function;
// everything else is skipped entirely.
//
// The item slice is read-only to the list and replaced wholesale via SetItems
// or grown via AppendItems (paginated results).
type List[T any] struct {
	id     int64
	items  []T
	v      Virtualizer
	width  int
	height int

	render RenderFunc[T]
	keyFor KeyFunc[T]

	emptyState string
	animated   bool

	// reveal maps item keys to remaining faint-render ticks. Entries at zero
	// mark keys already revealed; the map grows with keys ever seen, like a
	// render cache.
	reveal map[string]int

	trigger loadTrigger
	spinner anim.Model
}

// NewList constructs a List rendering items with render. Items default to a
// height estimate of 1 line; see SetEstimate. The reveal animation is on
// unless the platform signals reduced motion via NO_COLOR.
func NewList[T any](render RenderFunc[T]) List[T] {
	l := List[T]{
		id:       listID.Add(1),
		render:   render,
		animated: os.Getenv("NO_COLOR") == "",
		reveal:   make(map[string]int),
		trigger:  newLoadTrigger(),
		spinner:  anim.New(anim.Opts{Label: "loading more"}),
	}
	l.v = NewVirtualizer(0, FixedEstimate(1))
	l.keyFor = func(_ T, index int) string { return strconv.Itoa(index) }
	return l
}

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

// SetSize updates the viewport dimensions.
func (l *List[T]) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.v.SetViewport(h)
}

// SetEstimate sets the per-index height estimate. Cached offsets are rebuilt.
func (l *List[T]) SetEstimate(f EstimateFunc) { l.v.SetEstimate(f) }

// SetItemHeight sets a fixed height estimate for every item.
func (l *List[T]) SetItemHeight(lines int) { l.v.SetEstimate(FixedEstimate(lines)) }

// SetGap sets the number of blank lines between items.
func (l *List[T]) SetGap(g int) { l.v.SetGap(g) }

// SetOverscan sets how many extra items render beyond each viewport edge.
func (l *List[T]) SetOverscan(n int) { l.v.SetOverscan(n) }

// SetKeyFunc sets the key extractor used for reveal-animation tracking.
func (l *List[T]) SetKeyFunc(f KeyFunc[T]) {
	if f != nil {
		l.keyFor = f
	}
}

// SetEmptyState sets the string rendered when the item collection is empty.
func (l *List[T]) SetEmptyState(s string) { l.emptyState = s }

// SetAnimated toggles the staggered reveal of newly-visible items.
func (l *List[T]) SetAnimated(on bool) { l.animated = on }

// SetLoadMore installs the command fired when the viewport nears the end of
// the content. hasMore and loadingMore gate it; see SetHasMore and
// SetLoadingMore.
func (l *List[T]) SetLoadMore(cmd tea.Cmd) { l.trigger.load = cmd }

// SetHasMore records whether more pages exist beyond the current items.
func (l *List[T]) SetHasMore(v bool) { l.trigger.hasMore = v }

// SetLoadingMore records the caller's in-flight flag. Setting it back to
// false (success or failure) re-arms the trigger. The returned command, when
// non-nil, drives the loading spinner and must be dispatched.
func (l *List[T]) SetLoadingMore(v bool) tea.Cmd {
	l.trigger.setLoading(v)
	if v {
		l.spinner.Start()
		return l.spinner.Tick()
	}
	l.spinner.Stop()
	return nil
}

// LoadingMore reports the current in-flight flag.
func (l *List[T]) LoadingMore() bool { return l.trigger.loading }

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// SetItems replaces the item slice wholesale. A shrinking collection
// re-clamps the scroll offset before the next render, so stale out-of-range
// slots are never dereferenced.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	l.v.SetCount(len(items))
}

// AppendItems adds items to the end, keeping the scroll position stable.
// Used when a new page of results arrives.
func (l *List[T]) AppendItems(items ...T) {
	l.items = append(l.items, items...)
	l.v.SetCount(len(l.items))
}

// Items returns the current item slice.
func (l *List[T]) Items() []T { return l.items }

// Len returns the item count.
func (l *List[T]) Len() int { return len(l.items) }

// ---------------------------------------------------------------------------
// Scrolling
// ---------------------------------------------------------------------------

// ScrollBy moves by delta lines and returns a load-more command when the
// proximity threshold is crossed.
func (l *List[T]) ScrollBy(delta int) tea.Cmd {
	l.v.ScrollBy(delta)
	return l.maybeLoadMore()
}

// ScrollTo jumps to an absolute line offset.
func (l *List[T]) ScrollTo(offset int) tea.Cmd {
	l.v.ScrollTo(offset)
	return l.maybeLoadMore()
}

// PageDown scrolls down one viewport height.
func (l *List[T]) PageDown() tea.Cmd { return l.ScrollBy(l.height) }

// PageUp scrolls up one viewport height.
func (l *List[T]) PageUp() tea.Cmd { return l.ScrollBy(-l.height) }

// HalfPageDown scrolls down half a viewport.
func (l *List[T]) HalfPageDown() tea.Cmd { return l.ScrollBy(l.height / 2) }

// HalfPageUp scrolls up half a viewport.
func (l *List[T]) HalfPageUp() tea.Cmd { return l.ScrollBy(-l.height / 2) }

// GotoTop scrolls to the first item.
func (l *List[T]) GotoTop() tea.Cmd { return l.ScrollTo(0) }

// GotoBottom scrolls to the end of the content.
func (l *List[T]) GotoBottom() tea.Cmd { return l.ScrollTo(l.v.Total()) }

// AtBottom reports whether the viewport shows the end of the content.
func (l *List[T]) AtBottom() bool { return l.v.AtBottom() }

// Offset returns the current scroll offset in lines.
func (l *List[T]) Offset() int { return l.v.Offset() }

// Total returns the total scrollable length in lines.
func (l *List[T]) Total() int { return l.v.Total() }

func (l *List[T]) maybeLoadMore() tea.Cmd {
	cmd := l.trigger.check(l.v.Remaining(), loadThresholdItems*l.v.AvgSize())
	if cmd == nil {
		return nil
	}
	// Mark the request in flight right away so scroll events arriving before
	// the page lands cannot fire a duplicate fetch.
	return tea.Batch(cmd, l.SetLoadingMore(true))
}

// ---------------------------------------------------------------------------
// Update / animation
// ---------------------------------------------------------------------------

// RevealCmd returns the command that drives the staggered reveal. Call it
// after mutating items while animation is enabled; it returns nil when the
// animation is off.
func (l *List[T]) RevealCmd() tea.Cmd {
	if !l.animated {
		return nil
	}
	id := l.id
	return tea.Tick(revealFrame, func(time.Time) tea.Msg {
		return RevealTickMsg{ID: id}
	})
}

// Update handles mouse wheel scrolling, reveal ticks, and spinner frames.
func (l List[T]) Update(msg tea.Msg) (List[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseWheelMsg:
		switch msg.Button {
		case tea.MouseWheelUp:
			return l, l.ScrollBy(-wheelLines)
		case tea.MouseWheelDown:
			return l, l.ScrollBy(wheelLines)
		}
	case RevealTickMsg:
		if msg.ID != l.id {
			return l, nil
		}
		pending := false
		for k, n := range l.reveal {
			if n > 0 {
				l.reveal[k] = n - 1
				if n > 1 {
					pending = true
				}
			}
		}
		if pending {
			return l, l.RevealCmd()
		}
	case anim.TickMsg:
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

// View paints the visible window. Each slot's rendered lines are placed at
// slot.Start relative to the scroll offset — the line-buffer analogue of
// absolute positioning — and clipped to the viewport.
func (l List[T]) View() string {
	if l.width <= 0 || l.height <= 0 {
		return ""
	}
	if len(l.items) == 0 {
		return l.emptyState
	}

	top := l.v.Offset()
	buf := make([]string, l.height)

	for pos, slot := range l.v.Slots() {
		if slot.Index >= len(l.items) {
			// Collection shrank since the slots were computed; never read
			// past the new end.
			break
		}
		content := l.render(l.items[slot.Index], slot.Index, slot)
		lines := strings.Split(content, "\n")
		if len(lines) > slot.Size {
			lines = lines[:slot.Size]
		}

		faint := l.revealingKey(slot, pos)
		for j, line := range lines {
			y := slot.Start + j - top
			if y < 0 || y >= l.height {
				continue
			}
			if faint {
				line = lipgloss.NewStyle().Faint(true).Render(line)
			}
			buf[y] = line
		}
	}

	if l.trigger.loading {
		// When scrolled fully to the bottom the clamp puts the end of the
		// content exactly at the viewport edge; claim the last line so the
		// spinner stays visible.
		y := l.v.Total() - top
		if y >= l.height {
			y = l.height - 1
		}
		if y >= 0 {
			buf[y] = l.spinner.View()
		}
	}

	return strings.Join(buf, "\n")
}

// revealingKey registers first-seen keys and reports whether the slot should
// still render faint. Map writes through a value receiver follow the render
// cache precedent: the map is shared state, View stays a value method.
func (l List[T]) revealingKey(slot Slot, pos int) bool {
	if !l.animated {
		return false
	}
	key := l.keyFor(l.items[slot.Index], slot.Index)
	n, seen := l.reveal[key]
	if !seen {
		// Stagger: later slots in the window stay faint slightly longer.
		n = revealTicks + pos/2
		l.reveal[key] = n
	}
	return n > 0
}
