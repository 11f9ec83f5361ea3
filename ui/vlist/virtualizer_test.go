package vlist

import "testing"

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func slotsContiguous(t *testing.T, slots []Slot, count int) {
	t.Helper()
	for i, s := range slots {
		if s.Index < 0 || s.Index >= count {
			t.Fatalf("slot %d index %d out of [0,%d)", i, s.Index, count)
		}
		if i > 0 && s.Index != slots[i-1].Index+1 {
			t.Fatalf("slots not contiguous: %d follows %d", s.Index, slots[i-1].Index)
		}
	}
}

// ---------------------------------------------------------------------------
// Totals
// ---------------------------------------------------------------------------

func TestVirtualizer_EmptyCount(t *testing.T) {
	v := NewVirtualizer(0, FixedEstimate(50))
	v.SetViewport(500)
	if v.Total() != 0 {
		t.Errorf("want total=0 for empty count, got %d", v.Total())
	}
	if slots := v.Slots(); slots != nil {
		t.Errorf("want no slots for empty count, got %d", len(slots))
	}
}

func TestVirtualizer_TotalLength(t *testing.T) {
	v := NewVirtualizer(1000, FixedEstimate(50))
	if v.Total() != 50_000 {
		t.Errorf("want total=50000, got %d", v.Total())
	}
}

func TestVirtualizer_TotalWithGap(t *testing.T) {
	v := NewVirtualizer(3, FixedEstimate(2))
	v.SetGap(1)
	// 2 + 1 + 2 + 1 + 2
	if v.Total() != 8 {
		t.Errorf("want total=8 with gap, got %d", v.Total())
	}
}

func TestVirtualizer_TotalMonotonicInCount(t *testing.T) {
	prev := 0
	for count := 0; count <= 50; count += 10 {
		v := NewVirtualizer(count, FixedEstimate(3))
		if v.Total() < prev {
			t.Fatalf("total decreased at count=%d: %d < %d", count, v.Total(), prev)
		}
		prev = v.Total()
	}
}

func TestVirtualizer_NonPositiveEstimateClampedToOne(t *testing.T) {
	v := NewVirtualizer(10, FixedEstimate(0))
	if v.Total() != 10 {
		t.Errorf("zero estimates should clamp to 1 line each: want 10, got %d", v.Total())
	}
}

// ---------------------------------------------------------------------------
// Visible range
// ---------------------------------------------------------------------------

func TestVirtualizer_WindowAtTop(t *testing.T) {
	// Scenario: 1000 items, viewport 500, estimate 50, overscan 5.
	v := NewVirtualizer(1000, FixedEstimate(50))
	v.SetViewport(500)
	v.ScrollTo(0)

	slots := v.Slots()
	if len(slots) == 0 {
		t.Fatal("want slots at top of list")
	}
	if slots[0].Index != 0 {
		t.Errorf("want first slot index 0, got %d", slots[0].Index)
	}
	// Indices 0..9 fill the viewport exactly; they must all be present.
	last := slots[len(slots)-1].Index
	if last < 9 {
		t.Errorf("want at least indices 0-9 visible, last=%d", last)
	}
	// Overscan must not exceed 5 items past the strictly-visible range.
	if last > 14 {
		t.Errorf("overscan too wide: last=%d, want <= 14", last)
	}
	slotsContiguous(t, slots, 1000)
}

func TestVirtualizer_RangeContiguousAndClamped(t *testing.T) {
	v := NewVirtualizer(100, FixedEstimate(3))
	v.SetViewport(20)
	for offset := -10; offset <= 400; offset += 7 {
		v.ScrollTo(offset)
		slotsContiguous(t, v.Slots(), 100)
	}
}

func TestVirtualizer_SlotStartsMatchPrefixSums(t *testing.T) {
	sizes := []int{2, 5, 1, 3, 4}
	v := NewVirtualizer(len(sizes), func(i int) int { return sizes[i] })
	v.SetGap(1)
	v.SetViewport(100)
	v.ScrollTo(0)

	want := 0
	slots := v.Slots()
	if len(slots) != len(sizes) {
		t.Fatalf("want all %d slots visible, got %d", len(sizes), len(slots))
	}
	for i, s := range slots {
		if s.Start != want {
			t.Errorf("slot %d: want start=%d, got %d", i, want, s.Start)
		}
		if s.Size != sizes[i] {
			t.Errorf("slot %d: want size=%d, got %d", i, sizes[i], s.Size)
		}
		want += sizes[i] + 1
	}
}

func TestVirtualizer_Idempotent(t *testing.T) {
	v := NewVirtualizer(200, FixedEstimate(4))
	v.SetViewport(30)
	v.ScrollTo(333)

	first := v.Slots()
	second := v.Slots()
	if len(first) != len(second) {
		t.Fatalf("slot count drifted: %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("slot %d drifted: %+v then %+v", i, first[i], second[i])
		}
	}
}

func TestVirtualizer_OverscanLargerThanCount(t *testing.T) {
	v := NewVirtualizer(3, FixedEstimate(2))
	v.SetViewport(10)
	v.SetOverscan(50)
	slots := v.Slots()
	if len(slots) != 3 {
		t.Errorf("want 3 slots (clamped), got %d", len(slots))
	}
	slotsContiguous(t, slots, 3)
}

// ---------------------------------------------------------------------------
// Invalidation / clamping
// ---------------------------------------------------------------------------

func TestVirtualizer_ShrinkClampsRange(t *testing.T) {
	// Scrolled so that indices around 50-60 are visible, then the collection
	// shrinks to 10 items: every slot must land inside [0,10).
	v := NewVirtualizer(100, FixedEstimate(5))
	v.SetViewport(50)
	v.ScrollTo(50 * 5)

	v.SetCount(10)
	slots := v.Slots()
	if len(slots) == 0 {
		t.Fatal("want slots after shrink")
	}
	slotsContiguous(t, slots, 10)
	if v.Offset() > v.Total() {
		t.Errorf("offset %d beyond total %d after shrink", v.Offset(), v.Total())
	}
}

func TestVirtualizer_EstimateChangeInvalidatesOffsets(t *testing.T) {
	v := NewVirtualizer(10, FixedEstimate(2))
	if v.Total() != 20 {
		t.Fatalf("want total=20, got %d", v.Total())
	}
	v.SetEstimate(FixedEstimate(7))
	if v.Total() != 70 {
		t.Errorf("estimate change must rebuild offsets: want 70, got %d", v.Total())
	}
}

func TestVirtualizer_ScrollClampedToBounds(t *testing.T) {
	v := NewVirtualizer(10, FixedEstimate(2))
	v.SetViewport(5)
	v.ScrollTo(10_000)
	if v.Offset() != 20-5 {
		t.Errorf("want offset clamped to %d, got %d", 15, v.Offset())
	}
	v.ScrollTo(-50)
	if v.Offset() != 0 {
		t.Errorf("want offset clamped to 0, got %d", v.Offset())
	}
}

func TestVirtualizer_ContentShorterThanViewport(t *testing.T) {
	v := NewVirtualizer(2, FixedEstimate(2))
	v.SetViewport(40)
	v.ScrollTo(10)
	if v.Offset() != 0 {
		t.Errorf("short content must pin offset to 0, got %d", v.Offset())
	}
	if !v.AtBottom() {
		t.Error("short content should report AtBottom")
	}
}

func TestVirtualizer_Remaining(t *testing.T) {
	v := NewVirtualizer(10, FixedEstimate(10))
	v.SetViewport(20)
	v.ScrollTo(0)
	if v.Remaining() != 80 {
		t.Errorf("want remaining=80, got %d", v.Remaining())
	}
	v.ScrollTo(100)
	if v.Remaining() != 0 {
		t.Errorf("want remaining=0 at bottom, got %d", v.Remaining())
	}
}
