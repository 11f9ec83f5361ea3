package anim

import "testing"

func TestUpdate_AdvancesAndReschedules(t *testing.T) {
	m := New(Opts{Label: "loading"})
	m.Start()

	m, cmd := m.Update(TickMsg{ID: m.id})
	if cmd == nil {
		t.Fatal("want the next frame scheduled after a tick")
	}
	if m.frame != 1 {
		t.Errorf("frame = %d, want 1 after one tick", m.frame)
	}
}

func TestUpdate_IgnoresOtherSpinners(t *testing.T) {
	m := New(Opts{})
	m.Start()

	m, cmd := m.Update(TickMsg{ID: m.id + 1})
	if cmd != nil || m.frame != 0 {
		t.Error("tick for another spinner must not advance this one")
	}
}

func TestView_EmptyWhenStopped(t *testing.T) {
	m := New(Opts{Label: "x"})
	if m.View() != "" {
		t.Errorf("stopped spinner must render nothing, got %q", m.View())
	}
}
