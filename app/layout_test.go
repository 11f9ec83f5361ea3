package app

import "testing"

func TestComputeLayout_BodyGetsRemainder(t *testing.T) {
	l := ComputeLayout(100, 40)
	want := 40 - headerHeight - tabsHeight - statusHeight
	if l.BodyHeight != want {
		t.Errorf("BodyHeight = %d, want %d", l.BodyHeight, want)
	}
	if l.BodyWidth != 100 {
		t.Errorf("BodyWidth = %d, want 100", l.BodyWidth)
	}
}

func TestComputeLayout_MinimumBodyHeight(t *testing.T) {
	l := ComputeLayout(80, 4)
	if l.BodyHeight < 3 {
		t.Errorf("BodyHeight = %d, want at least 3", l.BodyHeight)
	}
}

func TestComputeLayout_CompactBelowBreakpoint(t *testing.T) {
	if l := ComputeLayout(compactBreakpoint-1, 24); !l.Compact {
		t.Error("want compact layout below the breakpoint")
	}
	if l := ComputeLayout(compactBreakpoint, 24); l.Compact {
		t.Error("want full layout at the breakpoint")
	}
}
