package vlist

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type fired struct{}

func loadCmd() tea.Msg { return fired{} }

func newTestTrigger() loadTrigger {
	t := newLoadTrigger()
	t.load = loadCmd
	t.hasMore = true
	return t
}

func TestTrigger_FiresOncePerCrossing(t *testing.T) {
	tr := newTestTrigger()

	if cmd := tr.check(5, 10); cmd == nil {
		t.Fatal("want load command on first threshold crossing")
	}
	// Second scroll event before loadingMore is reset: must not fire again.
	if cmd := tr.check(3, 10); cmd != nil {
		t.Error("trigger fired twice without a loading reset")
	}
}

func TestTrigger_RearmsAfterLoadingResets(t *testing.T) {
	tr := newTestTrigger()
	if tr.check(5, 10) == nil {
		t.Fatal("want initial fire")
	}
	tr.setLoading(true)
	if cmd := tr.check(2, 10); cmd != nil {
		t.Error("must not fire while loading")
	}
	tr.setLoading(false)
	if cmd := tr.check(2, 10); cmd == nil {
		t.Error("want re-fire after loading reset to false")
	}
}

func TestTrigger_RearmsWhenLeavingThreshold(t *testing.T) {
	tr := newTestTrigger()
	if tr.check(5, 10) == nil {
		t.Fatal("want initial fire")
	}
	// Scroll back out of the threshold zone, then approach again.
	if cmd := tr.check(100, 10); cmd != nil {
		t.Error("must not fire outside the threshold")
	}
	if cmd := tr.check(5, 10); cmd == nil {
		t.Error("want fire after leaving and re-entering the threshold")
	}
}

func TestTrigger_GatedByHasMore(t *testing.T) {
	tr := newTestTrigger()
	tr.hasMore = false
	if cmd := tr.check(0, 10); cmd != nil {
		t.Error("must not fire when hasMore=false")
	}
}

func TestTrigger_NilLoadIsNoop(t *testing.T) {
	tr := newLoadTrigger()
	tr.hasMore = true
	if cmd := tr.check(0, 10); cmd != nil {
		t.Error("must not fire without a load command")
	}
}
