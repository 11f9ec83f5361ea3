package vlist

import tea "charm.land/bubbletea/v2"

// loadTrigger gates the infinite-scroll load command. It guarantees at most
// one emission per approach to the end of the list: once fired it stays
// disarmed until the caller resets loadingMore to false (load finished or
// failed) or the scroll position leaves the threshold zone again.
//
// The trigger never retries and never inspects the load's outcome — request
// lifecycle is entirely the caller's responsibility.
type loadTrigger struct {
	load    tea.Cmd
	hasMore bool
	loading bool
	armed   bool
}

func newLoadTrigger() loadTrigger {
	return loadTrigger{armed: true}
}

// check evaluates the gate for the given distance-to-end. Returns the load
// command when all conditions hold, nil otherwise.
func (t *loadTrigger) check(remaining, threshold int) tea.Cmd {
	if remaining >= threshold {
		// Out of the threshold zone: re-arm for the next crossing.
		t.armed = true
		return nil
	}
	if !t.armed || t.loading || !t.hasMore || t.load == nil {
		return nil
	}
	t.armed = false
	return t.load
}

// setLoading records the caller-supplied in-flight flag. A true→false edge
// re-arms the trigger so the next crossing can fire again.
func (t *loadTrigger) setLoading(v bool) {
	if t.loading && !v {
		t.armed = true
	}
	t.loading = v
}
