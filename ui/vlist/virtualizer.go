// Package vlist provides windowed (virtualized) list and grid widgets for the
// Studyport TUI. Collections of thousands of items are rendered by computing
// only the slots that intersect the current viewport, plus a configurable
// overscan buffer on each side.
//
// Key properties:
//   - Offset-based scrolling over a prefix table of estimated item sizes;
//     the table is rebuilt whenever the count, gap, or estimate function
//     changes, so no stale size survives a reconfiguration.
//   - The visible range is always a contiguous, clamped span of indices.
//   - Item collections are caller-owned and never mutated here.
//   - An infinite-scroll trigger fires a caller-supplied load command at most
//     once per approach to the end of the list.
package vlist

import "sort"

// DefaultOverscan is the number of extra items computed beyond each viewport
// edge when no explicit overscan is configured.
const DefaultOverscan = 5

// EstimateFunc returns the estimated height in terminal lines for the item at
// the given index. Non-positive results are treated as 1.
type EstimateFunc func(index int) int

// FixedEstimate returns an EstimateFunc that reports the same height for
// every index.
func FixedEstimate(lines int) EstimateFunc {
	return func(int) int { return lines }
}

// Slot describes one item's computed position within the scrollable content:
// its index, its first line offset, and its estimated height. Slots are
// ephemeral — recomputed on every visible-range query, never stored.
type Slot struct {
	Index int
	Start int
	Size  int
}

// ---------------------------------------------------------------------------
// Virtualizer
// ---------------------------------------------------------------------------

// Virtualizer computes the total scrollable length and the set of slots
// intersecting the current viewport. It holds no item data, only counts and
// size estimates.
//
// The zero value is usable: zero count, zero total, no slots.
type Virtualizer struct {
	count    int
	estimate EstimateFunc
	gap      int
	overscan int
	offset   int
	viewport int

	// Prefix table: starts[i] is the line offset of item i, sizes[i] its
	// clamped estimated height. Rebuilt lazily when dirty.
	starts []int
	sizes  []int
	total  int
	dirty  bool
}

// NewVirtualizer constructs a Virtualizer over count items sized by estimate.
func NewVirtualizer(count int, estimate EstimateFunc) Virtualizer {
	v := Virtualizer{
		estimate: estimate,
		overscan: DefaultOverscan,
		dirty:    true,
	}
	if count > 0 {
		v.count = count
	}
	return v
}

// ---------------------------------------------------------------------------
// Mutators
// ---------------------------------------------------------------------------

// SetCount replaces the item count. Shrinking the count re-clamps the scroll
// offset so no out-of-range slot can be produced afterwards.
func (v *Virtualizer) SetCount(n int) {
	if n < 0 {
		n = 0
	}
	v.count = n
	v.dirty = true
}

// SetEstimate replaces the estimate function and discards all cached offsets.
func (v *Virtualizer) SetEstimate(f EstimateFunc) {
	v.estimate = f
	v.dirty = true
}

// SetGap sets the number of blank lines between consecutive items.
func (v *Virtualizer) SetGap(g int) {
	if g >= 0 {
		v.gap = g
		v.dirty = true
	}
}

// SetOverscan sets how many extra items are included beyond each viewport edge.
func (v *Virtualizer) SetOverscan(n int) {
	if n >= 0 {
		v.overscan = n
	}
}

// SetViewport sets the viewport height in lines.
func (v *Virtualizer) SetViewport(h int) {
	if h < 0 {
		h = 0
	}
	v.viewport = h
	v.ensure()
	v.clampOffset()
}

// ScrollTo jumps to an absolute line offset, clamped to the valid range.
func (v *Virtualizer) ScrollTo(offset int) {
	v.ensure()
	v.offset = offset
	v.clampOffset()
}

// ScrollBy moves the scroll position by delta lines (positive = down).
func (v *Virtualizer) ScrollBy(delta int) {
	v.ScrollTo(v.offset + delta)
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// Offset returns the current scroll offset in lines.
func (v *Virtualizer) Offset() int {
	v.ensure()
	v.clampOffset()
	return v.offset
}

// Total returns the total scrollable length: the sum of all estimated item
// sizes plus inter-item gaps.
func (v *Virtualizer) Total() int {
	v.ensure()
	return v.total
}

// Count returns the item count.
func (v *Virtualizer) Count() int { return v.count }

// Viewport returns the viewport height in lines.
func (v *Virtualizer) Viewport() int { return v.viewport }

// Remaining returns how many content lines lie below the bottom of the
// viewport, clamped to zero.
func (v *Virtualizer) Remaining() int {
	v.ensure()
	v.clampOffset()
	r := v.total - (v.offset + v.viewport)
	if r < 0 {
		r = 0
	}
	return r
}

// AvgSize returns the average estimated item size, at least 1.
func (v *Virtualizer) AvgSize() int {
	v.ensure()
	if v.count == 0 {
		return 1
	}
	content := v.total - v.gap*(v.count-1)
	avg := content / v.count
	if avg < 1 {
		avg = 1
	}
	return avg
}

// AtBottom reports whether the viewport shows the end of the content.
func (v *Virtualizer) AtBottom() bool {
	return v.Remaining() == 0
}

// Slots returns the slots whose line ranges intersect the window
// [offset, offset+viewport), expanded by overscan items on each side.
// The result is a contiguous span of indices clamped to [0, count).
func (v *Virtualizer) Slots() []Slot {
	v.ensure()
	v.clampOffset()
	if v.count == 0 || v.viewport <= 0 {
		return nil
	}

	top := v.offset
	bottom := v.offset + v.viewport

	// First item whose end extends past the window top.
	lo := sort.Search(v.count, func(i int) bool {
		return v.starts[i]+v.sizes[i] > top
	})
	// First item starting at or past the window bottom; the one before it is
	// the last visible item.
	hi := sort.Search(v.count, func(i int) bool {
		return v.starts[i] >= bottom
	}) - 1

	lo -= v.overscan
	hi += v.overscan
	if lo < 0 {
		lo = 0
	}
	if hi > v.count-1 {
		hi = v.count - 1
	}
	if lo > hi {
		return nil
	}

	slots := make([]Slot, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		slots = append(slots, Slot{Index: i, Start: v.starts[i], Size: v.sizes[i]})
	}
	return slots
}

// ---------------------------------------------------------------------------
// Internal
// ---------------------------------------------------------------------------

// ensure rebuilds the prefix table when a mutation has invalidated it.
func (v *Virtualizer) ensure() {
	if !v.dirty {
		return
	}
	v.starts = v.starts[:0]
	v.sizes = v.sizes[:0]
	pos := 0
	for i := 0; i < v.count; i++ {
		size := 1
		if v.estimate != nil {
			if s := v.estimate(i); s > 0 {
				size = s
			}
		}
		v.starts = append(v.starts, pos)
		v.sizes = append(v.sizes, size)
		pos += size
		if i < v.count-1 {
			pos += v.gap
		}
	}
	v.total = pos
	v.dirty = false
	v.clampOffset()
}

// clampOffset keeps the scroll offset within [0, max(0, total-viewport)].
func (v *Virtualizer) clampOffset() {
	max := v.total - v.viewport
	if max < 0 {
		max = 0
	}
	if v.offset > max {
		v.offset = max
	}
	if v.offset < 0 {
		v.offset = 0
	}
}
