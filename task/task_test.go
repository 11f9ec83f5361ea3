package task

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunner_ExecutesAtInterval(t *testing.T) {
	var calls atomic.Int32
	r := Every(10*time.Millisecond, func(context.Context) {
		calls.Add(1)
	})
	r.Start(context.Background())
	time.Sleep(60 * time.Millisecond)
	r.Stop()

	if n := calls.Load(); n < 2 {
		t.Errorf("want at least 2 executions over 60ms at 10ms interval, got %d", n)
	}
}

func TestRunner_ImmediateFirstRun(t *testing.T) {
	var calls atomic.Int32
	r := Every(time.Hour, func(context.Context) {
		calls.Add(1)
	}, WithImmediate())
	r.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	r.Stop()

	if calls.Load() != 1 {
		t.Errorf("want exactly 1 immediate execution, got %d", calls.Load())
	}
}

func TestRunner_StopCancelsContext(t *testing.T) {
	cancelled := make(chan struct{})
	started := make(chan struct{})
	r := Every(time.Hour, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		close(cancelled)
	}, WithImmediate())
	r.Start(context.Background())

	<-started
	r.Stop()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("Stop must cancel the context seen by the task function")
	}
}

func TestRunner_StopWaitsForExit(t *testing.T) {
	r := Every(5*time.Millisecond, func(context.Context) {})
	r.Start(context.Background())
	r.Stop()
	if r.Running() {
		t.Error("runner must not report running after Stop")
	}
}

func TestRunner_StopIdempotent(t *testing.T) {
	r := Every(time.Hour, func(context.Context) {})
	r.Stop() // never started
	r.Start(context.Background())
	r.Stop()
	r.Stop() // second stop must not panic or block
}

func TestRunner_DoubleStartIsNoop(t *testing.T) {
	var calls atomic.Int32
	r := Every(time.Hour, func(context.Context) {
		calls.Add(1)
	}, WithImmediate())
	r.Start(context.Background())
	r.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	r.Stop()

	if calls.Load() != 1 {
		t.Errorf("double start must not spawn a second loop, got %d calls", calls.Load())
	}
}

func TestRunner_ParentContextStopsLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	r := Every(time.Hour, func(ctx context.Context) {
		<-ctx.Done()
		close(exited)
	}, WithImmediate())
	r.Start(ctx)
	cancel()

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("cancelling the parent context must reach the task function")
	}
	r.Stop()
}
