package fsm

import (
	"errors"
	"testing"
)

type genState int

const (
	genIdle genState = iota
	genRunning
	genDone
	genFailed
)

func newGenMachine() Machine[genState] {
	return New(genIdle, map[genState][]genState{
		genIdle:    {genRunning},
		genRunning: {genDone, genFailed},
		genDone:    {genRunning},
		genFailed:  {genRunning},
	})
}

func TestMachine_LegalPath(t *testing.T) {
	m := newGenMachine()
	for _, to := range []genState{genRunning, genDone, genRunning, genFailed} {
		if err := m.Transition(to); err != nil {
			t.Fatalf("legal transition to %v failed: %v", to, err)
		}
	}
	if m.Current() != genFailed {
		t.Errorf("want current=genFailed, got %v", m.Current())
	}
}

func TestMachine_IllegalTransitionRejected(t *testing.T) {
	m := newGenMachine()
	err := m.Transition(genDone) // idle -> done is not in the table
	if err == nil {
		t.Fatal("want error for illegal transition")
	}
	var terr TransitionError[genState]
	if !errors.As(err, &terr) {
		t.Fatalf("want TransitionError, got %T", err)
	}
	if terr.From != genIdle || terr.To != genDone {
		t.Errorf("want From=idle To=done, got %+v", terr)
	}
	if m.Current() != genIdle {
		t.Error("state must be unchanged after a rejected transition")
	}
}

func TestMachine_Can(t *testing.T) {
	m := newGenMachine()
	if !m.Can(genRunning) {
		t.Error("idle should allow running")
	}
	if m.Can(genFailed) {
		t.Error("idle should not allow failed")
	}
}

func TestMachine_SelfTransitionNotImplicit(t *testing.T) {
	m := newGenMachine()
	if err := m.Transition(genIdle); err == nil {
		t.Error("self-transition must be rejected unless declared")
	}
}
