// Package fsm provides a small explicit finite-state machine with an
// enumerated transition table. It replaces ad hoc state variables scattered
// across update handlers: every legal move is declared up front and illegal
// moves return a typed error instead of silently corrupting state.
package fsm

import "fmt"

// TransitionError reports an attempted move not present in the table.
type TransitionError[S comparable] struct {
	From S
	To   S
}

func (e TransitionError[S]) Error() string {
	return fmt.Sprintf("fsm: illegal transition %v -> %v", e.From, e.To)
}

// Machine holds a current state and the set of legal transitions.
// The zero value is not usable; construct with New.
type Machine[S comparable] struct {
	current     S
	transitions map[S][]S
}

// New constructs a Machine starting in initial with the given transition
// table. The table maps each state to the states reachable from it.
func New[S comparable](initial S, transitions map[S][]S) Machine[S] {
	return Machine[S]{current: initial, transitions: transitions}
}

// Current returns the current state.
func (m *Machine[S]) Current() S { return m.current }

// Can reports whether a transition to the given state is legal from the
// current one.
func (m *Machine[S]) Can(to S) bool {
	for _, s := range m.transitions[m.current] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves the machine to the given state, or returns a
// TransitionError when the move is not in the table. The state is unchanged
// on error.
func (m *Machine[S]) Transition(to S) error {
	if !m.Can(to) {
		return TransitionError[S]{From: m.current, To: to}
	}
	m.current = to
	return nil
}
